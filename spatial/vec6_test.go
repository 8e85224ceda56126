// Copyright 2024 The Gofeather Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spatial

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func TestVec6CrossBrackets(tst *testing.T) {
	chk.PrintTitle("Vec6CrossBrackets")

	v1 := NewTwist(NewVec3(1, 0, 0), NewVec3(0, 0, 1))
	v2 := NewTwist(NewVec3(0, 1, 0), NewVec3(1, 0, 0))

	got := v1.CrossTwistTwist(v2)
	want := Vec6{
		Linear:  v1.Angular.Cross(v2.Linear).Add(v1.Linear.Cross(v2.Angular)),
		Angular: v1.Angular.Cross(v2.Angular),
	}
	if !got.Aeq(want, 1e-15) {
		tst.Errorf("CrossTwistTwist mismatch: got %v, want %v", got, want)
	}

	w := NewWrench(NewVec3(0, 0, 1), NewVec3(0, 1, 0))
	gotW := v1.CrossTwistWrench(w)
	wantW := Vec6{
		Linear:  v1.Angular.Cross(w.Linear),
		Angular: v1.Linear.Cross(w.Linear).Add(v1.Angular.Cross(w.Angular)),
	}
	if !gotW.Aeq(wantW, 1e-15) {
		tst.Errorf("CrossTwistWrench mismatch: got %v, want %v", gotW, wantW)
	}
}
