// Copyright 2024 The Gofeather Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spatial

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func TestVec3Algebra(tst *testing.T) {

	chk.PrintTitle("Vec3Algebra")

	a := NewVec3(1, 2, 3)
	b := NewVec3(4, -5, 6)

	chk.Scalar(tst, "a.Dot(b)", 1e-15, a.Dot(b), 1*4+2*-5+3*6)

	c := a.Cross(b)
	chk.Scalar(tst, "a.Dot(a x b)", 1e-14, a.Dot(c), 0)
	chk.Scalar(tst, "b.Dot(a x b)", 1e-14, b.Dot(c), 0)

	u, ok := NewVec3(3, 0, 4).Unit()
	if !ok {
		tst.Fatal("Unit should succeed on a non-zero vector")
	}
	chk.Scalar(tst, "|unit|", 1e-15, u.Norm(), 1)

	if _, ok := Zero3.Unit(); ok {
		tst.Fatal("Unit of the zero vector must fail")
	}
}

func TestVec3Skew(tst *testing.T) {
	chk.PrintTitle("Vec3Skew")
	a := NewVec3(1, -2, 0.5)
	b := NewVec3(-3, 1, 2)
	skewed := a.Skew().MulVec(b)
	cross := a.Cross(b)
	if !skewed.Aeq(cross, 1e-14) {
		tst.Errorf("[a]x * b should equal a x b: got %v, want %v", skewed, cross)
	}
}
