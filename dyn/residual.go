// Copyright 2024 The Gofeather Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dyn

import (
	"math"

	"github.com/cpmech/gofeather/mech"
	"github.com/cpmech/gofeather/spatial"
)

// Residual recomputes, per body, the Newton-Euler residual (spec 4.6):
//
//	r_i = (f_i - sum_children f_n + w_i) - (I_i*a_i + p_i)
//
// which must be approximately zero for a well-posed configuration.
// Diagnostics are separable and best-effort: computing a residual
// never alters dynJ, kin or any integrated state (spec.md §7).
func Residual(flat mech.Flattened, kin []KinJoint, dynJ []DynJoint) []spatial.Vec6 {
	n := len(flat.Joints)
	res := make([]spatial.Vec6, n)
	for i := 0; i < n; i++ {
		childSum := spatial.Zero6
		for _, c := range flat.Children[i] {
			childSum = childSum.Add(dynJ[c].F)
		}
		lhs := dynJ[i].F.Sub(childSum) // + w_i == 0 (spec 9c)
		rhs := kin[i].I.MulVec(dynJ[i].A).Add(kin[i].P)
		res[i] = lhs.Sub(rhs)
	}
	return res
}

// MaxNormInf returns max_i |r_i|_infinity over a slice of residuals.
func MaxNormInf(res []spatial.Vec6) float64 {
	max := 0.0
	for _, r := range res {
		for _, v := range [...]float64{r.Linear.X, r.Linear.Y, r.Linear.Z, r.Angular.X, r.Angular.Y, r.Angular.Z} {
			if a := math.Abs(v); a > max {
				max = a
			}
		}
	}
	return max
}
