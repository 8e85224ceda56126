// Copyright 2024 The Gofeather Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spatial

// Vec6 is a 6-component spatial vector: a Twist (linear, angular)
// velocity/acceleration, or a Wrench (force, moment). The field names
// follow the twist convention; callers treating a Vec6 as a wrench
// read Linear as force and Angular as moment (spec 3).
type Vec6 struct {
	Linear  Vec3
	Angular Vec3
}

var Zero6 = Vec6{}

func NewTwist(linear, angular Vec3) Vec6 { return Vec6{linear, angular} }
func NewWrench(force, moment Vec3) Vec6  { return Vec6{force, moment} }

func (a Vec6) Add(b Vec6) Vec6 {
	return Vec6{a.Linear.Add(b.Linear), a.Angular.Add(b.Angular)}
}

func (a Vec6) Sub(b Vec6) Vec6 {
	return Vec6{a.Linear.Sub(b.Linear), a.Angular.Sub(b.Angular)}
}

func (a Vec6) Scale(s float64) Vec6 {
	return Vec6{a.Linear.Scale(s), a.Angular.Scale(s)}
}

func (a Vec6) Dot(b Vec6) float64 {
	return a.Linear.Dot(b.Linear) + a.Angular.Dot(b.Angular)
}

// CrossTwistTwist is the motion x motion Lie bracket, used to form the
// bias acceleration of a twist against itself or another twist:
// (ω1xv2 + v1xω2, ω1xω2) (spec 3).
func (a Vec6) CrossTwistTwist(b Vec6) Vec6 {
	return Vec6{
		Linear:  a.Angular.Cross(b.Linear).Add(a.Linear.Cross(b.Angular)),
		Angular: a.Angular.Cross(b.Angular),
	}
}

// CrossTwistWrench is the motion x force Lie bracket, used to form the
// momentum-rate bias force: (ωxf, vxf + ωxm) (spec 3).
func (a Vec6) CrossTwistWrench(w Vec6) Vec6 {
	return Vec6{
		Linear:  a.Angular.Cross(w.Linear),
		Angular: a.Linear.Cross(w.Linear).Add(a.Angular.Cross(w.Angular)),
	}
}

func (a Vec6) Aeq(b Vec6, tol float64) bool {
	return a.Linear.Aeq(b.Linear, tol) && a.Angular.Aeq(b.Angular, tol)
}
