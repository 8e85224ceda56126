// Copyright 2024 The Gofeather Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spatial

// Mat3 is an immutable row-major 3x3 matrix.
type Mat3 struct {
	M00, M01, M02 float64
	M10, M11, M12 float64
	M20, M21, M22 float64
}

// Identity3 is the 3x3 identity matrix.
var Identity3 = Mat3{
	1, 0, 0,
	0, 1, 0,
	0, 0, 1,
}

func (a Mat3) Add(b Mat3) Mat3 {
	return Mat3{
		a.M00 + b.M00, a.M01 + b.M01, a.M02 + b.M02,
		a.M10 + b.M10, a.M11 + b.M11, a.M12 + b.M12,
		a.M20 + b.M20, a.M21 + b.M21, a.M22 + b.M22,
	}
}

func (a Mat3) Sub(b Mat3) Mat3 {
	return Mat3{
		a.M00 - b.M00, a.M01 - b.M01, a.M02 - b.M02,
		a.M10 - b.M10, a.M11 - b.M11, a.M12 - b.M12,
		a.M20 - b.M20, a.M21 - b.M21, a.M22 - b.M22,
	}
}

func (a Mat3) Scale(s float64) Mat3 {
	return Mat3{
		a.M00 * s, a.M01 * s, a.M02 * s,
		a.M10 * s, a.M11 * s, a.M12 * s,
		a.M20 * s, a.M21 * s, a.M22 * s,
	}
}

func (a Mat3) Transpose() Mat3 {
	return Mat3{
		a.M00, a.M10, a.M20,
		a.M01, a.M11, a.M21,
		a.M02, a.M12, a.M22,
	}
}

func (a Mat3) MulVec(v Vec3) Vec3 {
	return Vec3{
		a.M00*v.X + a.M01*v.Y + a.M02*v.Z,
		a.M10*v.X + a.M11*v.Y + a.M12*v.Z,
		a.M20*v.X + a.M21*v.Y + a.M22*v.Z,
	}
}

func (a Mat3) Mul(b Mat3) Mat3 {
	return Mat3{
		a.M00*b.M00 + a.M01*b.M10 + a.M02*b.M20,
		a.M00*b.M01 + a.M01*b.M11 + a.M02*b.M21,
		a.M00*b.M02 + a.M01*b.M12 + a.M02*b.M22,

		a.M10*b.M00 + a.M11*b.M10 + a.M12*b.M20,
		a.M10*b.M01 + a.M11*b.M11 + a.M12*b.M21,
		a.M10*b.M02 + a.M11*b.M12 + a.M12*b.M22,

		a.M20*b.M00 + a.M21*b.M10 + a.M22*b.M20,
		a.M20*b.M01 + a.M21*b.M11 + a.M22*b.M21,
		a.M20*b.M02 + a.M21*b.M12 + a.M22*b.M22,
	}
}

func (a Mat3) Det() float64 {
	return a.M00*(a.M11*a.M22-a.M12*a.M21) -
		a.M01*(a.M10*a.M22-a.M12*a.M20) +
		a.M02*(a.M10*a.M21-a.M11*a.M20)
}

// TryInvert returns the inverse of a and ok=true, or ok=false iff the
// determinant is exactly zero (spec 4.1).
func (a Mat3) TryInvert() (Mat3, bool) {
	det := a.Det()
	if det == 0 {
		return Mat3{}, false
	}
	inv := 1 / det
	return Mat3{
		(a.M11*a.M22 - a.M12*a.M21) * inv,
		(a.M02*a.M21 - a.M01*a.M22) * inv,
		(a.M01*a.M12 - a.M02*a.M11) * inv,

		(a.M12*a.M20 - a.M10*a.M22) * inv,
		(a.M00*a.M22 - a.M02*a.M20) * inv,
		(a.M02*a.M10 - a.M00*a.M12) * inv,

		(a.M10*a.M21 - a.M11*a.M20) * inv,
		(a.M01*a.M20 - a.M00*a.M21) * inv,
		(a.M00*a.M11 - a.M01*a.M10) * inv,
	}, true
}

// FromQuat builds the rotation matrix equivalent to q (spec testable
// property 6: q.Rotate(v) == Mat3.FromQuat(q).MulVec(v)).
func FromQuat(q Quat) Mat3 {
	x, y, z, w := q.X, q.Y, q.Z, q.W
	x2, y2, z2 := x+x, y+y, z+z
	xx, yy, zz := x*x2, y*y2, z*z2
	xy, xz, yz := x*y2, x*z2, y*z2
	wx, wy, wz := w*x2, w*y2, w*z2
	return Mat3{
		1 - (yy + zz), xy - wz, xz + wy,
		xy + wz, 1 - (xx + zz), yz - wx,
		xz - wy, yz + wx, 1 - (xx + yy),
	}
}
