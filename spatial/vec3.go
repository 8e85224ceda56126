// Copyright 2024 The Gofeather Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package spatial implements the value types of spatial-algebra rigid
// body mechanics: 3-vectors, 3x3 matrices, unit quaternions, poses and
// 6-component twist/wrench spatial vectors. Every type here is an
// immutable value; operations return new values and never mutate a
// receiver.
package spatial

import "math"

// Vec3 is an immutable 3-element vector, used for points, directions,
// angular/linear velocities and forces.
type Vec3 struct {
	X, Y, Z float64
}

// Zero3 is the additive identity.
var Zero3 = Vec3{}

func NewVec3(x, y, z float64) Vec3 { return Vec3{x, y, z} }

func (a Vec3) Add(b Vec3) Vec3 { return Vec3{a.X + b.X, a.Y + b.Y, a.Z + b.Z} }
func (a Vec3) Sub(b Vec3) Vec3 { return Vec3{a.X - b.X, a.Y - b.Y, a.Z - b.Z} }
func (a Vec3) Neg() Vec3       { return Vec3{-a.X, -a.Y, -a.Z} }
func (a Vec3) Scale(s float64) Vec3 {
	return Vec3{a.X * s, a.Y * s, a.Z * s}
}

func (a Vec3) Dot(b Vec3) float64 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

func (a Vec3) Cross(b Vec3) Vec3 {
	return Vec3{
		a.Y*b.Z - a.Z*b.Y,
		a.Z*b.X - a.X*b.Z,
		a.X*b.Y - a.Y*b.X,
	}
}

func (a Vec3) Norm() float64 { return math.Sqrt(a.Dot(a)) }

// Unit returns a normalised copy of a and ok=false if a is the zero
// vector (no direction to normalise).
func (a Vec3) Unit() (Vec3, bool) {
	n := a.Norm()
	if n == 0 {
		return Zero3, false
	}
	return a.Scale(1 / n), true
}

// Aeq reports whether a and b are equal to within tol.
func (a Vec3) Aeq(b Vec3, tol float64) bool {
	return math.Abs(a.X-b.X) <= tol && math.Abs(a.Y-b.Y) <= tol && math.Abs(a.Z-b.Z) <= tol
}

// Skew returns the 3x3 cross-product matrix [a]x such that
// [a]x * b == a.Cross(b) for any b.
func (a Vec3) Skew() Mat3 {
	return Mat3{
		0, -a.Z, a.Y,
		a.Z, 0, -a.X,
		-a.Y, a.X, 0,
	}
}
