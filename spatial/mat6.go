// Copyright 2024 The Gofeather Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spatial

// Mat6 is an immutable 6x6 matrix expressed as four 3x3 blocks acting
// on a Vec6's (Linear, Angular) halves:
//
//	result.Linear  = LL*v.Linear + LA*v.Angular
//	result.Angular = AL*v.Linear + AA*v.Angular
//
// SpatialInertia (spec 3) is the principal user of this shape.
type Mat6 struct {
	LL, LA, AL, AA Mat3
}

var Zero6x6 = Mat6{}
var Identity6 = Mat6{LL: Identity3, AA: Identity3}

// SpatialInertia builds the 6x6 symmetric spatial inertia of a body of
// mass m with centre of mass c (offset from the chosen origin, in the
// same frame) and rotational inertia ic about that centre of mass
// (spec 3):
//
//	[[m*1, -m*[c]x], [m*[c]x, ic - m*[c]x*[c]x]]
func SpatialInertia(m float64, c Vec3, ic Mat3) Mat6 {
	cx := c.Skew()
	return Mat6{
		LL: Identity3.Scale(m),
		LA: cx.Scale(-m),
		AL: cx.Scale(m),
		AA: ic.Sub(cx.Mul(cx).Scale(m)),
	}
}

func (a Mat6) Add(b Mat6) Mat6 {
	return Mat6{a.LL.Add(b.LL), a.LA.Add(b.LA), a.AL.Add(b.AL), a.AA.Add(b.AA)}
}

func (a Mat6) Sub(b Mat6) Mat6 {
	return Mat6{a.LL.Sub(b.LL), a.LA.Sub(b.LA), a.AL.Sub(b.AL), a.AA.Sub(b.AA)}
}

func (a Mat6) Scale(s float64) Mat6 {
	return Mat6{a.LL.Scale(s), a.LA.Scale(s), a.AL.Scale(s), a.AA.Scale(s)}
}

func (a Mat6) MulVec(v Vec6) Vec6 {
	return Vec6{
		Linear:  a.LL.MulVec(v.Linear).Add(a.LA.MulVec(v.Angular)),
		Angular: a.AL.MulVec(v.Linear).Add(a.AA.MulVec(v.Angular)),
	}
}

func (a Mat6) Mul(b Mat6) Mat6 {
	return Mat6{
		LL: a.LL.Mul(b.LL).Add(a.LA.Mul(b.AL)),
		LA: a.LL.Mul(b.LA).Add(a.LA.Mul(b.AA)),
		AL: a.AL.Mul(b.LL).Add(a.AA.Mul(b.AL)),
		AA: a.AL.Mul(b.LA).Add(a.AA.Mul(b.AA)),
	}
}

// Outer builds the rank-1 spatial matrix a*b^T used by the projector
// RU = I - T*s^T in the articulated-inertia pass (spec 4.4).
func Outer(a, b Vec6) Mat6 {
	outer3 := func(u, v Vec3) Mat3 {
		return Mat3{
			u.X * v.X, u.X * v.Y, u.X * v.Z,
			u.Y * v.X, u.Y * v.Y, u.Y * v.Z,
			u.Z * v.X, u.Z * v.Y, u.Z * v.Z,
		}
	}
	return Mat6{
		LL: outer3(a.Linear, b.Linear),
		LA: outer3(a.Linear, b.Angular),
		AL: outer3(a.Angular, b.Linear),
		AA: outer3(a.Angular, b.Angular),
	}
}
