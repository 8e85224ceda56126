// Copyright 2024 The Gofeather Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spatial

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
)

// TestQuatRotateEquivalence checks testable property 6: q.Rotate(v) ==
// Mat3.FromQuat(q) * v.
func TestQuatRotateEquivalence(tst *testing.T) {
	chk.PrintTitle("QuatRotateEquivalence")
	q := FromAxisAngle(NewVec3(0, 0, 1), math.Pi/3)
	v := NewVec3(1, 0, 0)
	byQuat := q.Rotate(v)
	byMat := FromQuat(q).MulVec(v)
	if !byQuat.Aeq(byMat, 1e-14) {
		tst.Errorf("q.Rotate != Mat3.FromQuat * v: got %v, want %v", byQuat, byMat)
	}
}

func TestQuatInvert(tst *testing.T) {
	chk.PrintTitle("QuatInvert")
	q := FromAxisAngle(NewVec3(1, 1, 1), 0.9)
	qInv, ok := q.TryInvert()
	if !ok {
		tst.Fatal("TryInvert should succeed on a unit quaternion")
	}
	id := q.Mul(qInv)
	if !id.Aeq(IdentityQuat, 1e-14) {
		tst.Errorf("q * q^-1 should be identity: got %v", id)
	}
	if _, ok := (Quat{}).TryInvert(); ok {
		tst.Fatal("TryInvert of the zero quaternion must fail")
	}
}

func TestFromAxisAnglePanicsOnZeroAxis(tst *testing.T) {
	chk.PrintTitle("FromAxisAnglePanicsOnZeroAxis")
	defer func() {
		if recover() == nil {
			tst.Fatal("FromAxisAngle should panic on a zero-magnitude axis")
		}
	}()
	FromAxisAngle(Zero3, 1.0)
}
