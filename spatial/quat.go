// Copyright 2024 The Gofeather Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spatial

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// Quat is an immutable (w, x, y, z) quaternion. It is a rotation only
// when unit-magnitude; a zero-magnitude quaternion is not a rotation
// (spec 3: Quat invariant).
type Quat struct {
	W, X, Y, Z float64
}

// IdentityQuat is the identity rotation.
var IdentityQuat = Quat{W: 1}

// FromAxisAngle builds a unit quaternion representing a rotation of θ
// radians about axis. It panics if axis has zero magnitude (spec 4.1:
// Quat.from_axis_angle fails on a zero axis); InvalidRotationAxis.
func FromAxisAngle(axis Vec3, theta float64) Quat {
	u, ok := axis.Unit()
	if !ok {
		chk.Panic("spatial: FromAxisAngle: InvalidRotationAxis: axis has zero magnitude")
	}
	s, c := math.Sincos(theta / 2)
	return Quat{W: c, X: u.X * s, Y: u.Y * s, Z: u.Z * s}
}

func (q Quat) Norm() float64 {
	return math.Sqrt(q.W*q.W + q.X*q.X + q.Y*q.Y + q.Z*q.Z)
}

func (q Quat) Conj() Quat { return Quat{q.W, -q.X, -q.Y, -q.Z} }

// TryInvert returns the multiplicative inverse of q and ok=true, or
// ok=false if q has zero magnitude (spec 3: inversion of a
// zero-magnitude quaternion fails).
func (q Quat) TryInvert() (Quat, bool) {
	n2 := q.W*q.W + q.X*q.X + q.Y*q.Y + q.Z*q.Z
	if n2 == 0 {
		return Quat{}, false
	}
	c := q.Conj()
	inv := 1 / n2
	return Quat{c.W * inv, c.X * inv, c.Y * inv, c.Z * inv}, true
}

// Mul composes rotations: (a.Mul(b)) applied to v equals
// a.Rotate(b.Rotate(v)).
func (a Quat) Mul(b Quat) Quat {
	return Quat{
		W: a.W*b.W - a.X*b.X - a.Y*b.Y - a.Z*b.Z,
		X: a.W*b.X + a.X*b.W + a.Y*b.Z - a.Z*b.Y,
		Y: a.W*b.Y - a.X*b.Z + a.Y*b.W + a.Z*b.X,
		Z: a.W*b.Z + a.X*b.Y - a.Y*b.X + a.Z*b.W,
	}
}

// Rotate applies q's rotation to b using the optimised double
// cross-product formula b + 2*v x (v x b + w*b), where v is q's vector
// part (spec 3).
func (q Quat) Rotate(b Vec3) Vec3 {
	v := Vec3{q.X, q.Y, q.Z}
	t := v.Cross(b).Add(b.Scale(q.W))
	return b.Add(v.Cross(t).Scale(2))
}

func (q Quat) Aeq(r Quat, tol float64) bool {
	return math.Abs(q.W-r.W) <= tol && math.Abs(q.X-r.X) <= tol &&
		math.Abs(q.Y-r.Y) <= tol && math.Abs(q.Z-r.Z) <= tol
}
