// Copyright 2024 The Gofeather Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spatial

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func TestSpatialInertiaMomentum(tst *testing.T) {
	chk.PrintTitle("SpatialInertiaMomentum")

	m := 2.0
	c := NewVec3(0.1, 0, 0)
	ic := Mat3{
		0.01, 0, 0,
		0, 0.02, 0,
		0, 0, 0.02,
	}
	I := SpatialInertia(m, c, ic)

	v := NewTwist(Zero3, NewVec3(0, 0, 1))
	p := I.MulVec(v)

	// linear momentum for a pure angular velocity about z with offset
	// centre of mass c is m*(omega x c).
	wantLinear := NewVec3(0, 0, 1).Cross(c).Scale(m)
	if !p.Linear.Aeq(wantLinear, 1e-12) {
		tst.Errorf("linear momentum mismatch: got %v, want %v", p.Linear, wantLinear)
	}
}

func TestMat6ProjectorIdempotence(tst *testing.T) {
	chk.PrintTitle("Mat6ProjectorIdempotence")

	// spec testable property 2: the projector RU = I - T*s^T, with
	// T = IA*s/j, is idempotent (RU*(RU*x) == RU*x) and annihilates
	// IA*s. RU*s itself is not zero unless IA*s is parallel to s.
	IA := SpatialInertia(1.5, NewVec3(0, 0.2, 0), Mat3{0.05, 0, 0, 0, 0.05, 0, 0, 0, 0.05})
	s := NewTwist(Zero3, NewVec3(0, 0, 1))

	L := IA.MulVec(s)
	j := s.Dot(L)
	if j == 0 {
		tst.Fatal("degenerate test fixture: j must be nonzero")
	}
	T := L.Scale(1 / j)
	RU := Identity6.Sub(Outer(T, s))

	result := RU.MulVec(L)
	if !result.Aeq(Zero6, 1e-10) {
		tst.Errorf("RU*(IA*s) should be ~0: got %v", result)
	}
	RUs := RU.MulVec(s)
	if !RU.MulVec(RUs).Aeq(RUs, 1e-10) {
		tst.Errorf("RU*(RU*s) should equal RU*s: got %v, want %v", RU.MulVec(RUs), RUs)
	}
}
