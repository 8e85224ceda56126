// Copyright 2024 The Gofeather Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dyn

import (
	"github.com/cpmech/gofeather/gferr"
	"github.com/cpmech/gofeather/mech"
	"github.com/cpmech/gofeather/spatial"
)

// ArtJoint holds one joint's articulated-inertia pass results (spec
// 4.4).
type ArtJoint struct {
	IA spatial.Mat6 // articulated inertia
	PA spatial.Vec6 // articulated bias force
}

// Articulated runs the inward pass (i = n-1..0, spec 4.4). known[i]
// and tau[i] select the applied generalised force contributed by
// Forcing-driven children; Acceleration-driven children contribute
// nothing here (they contribute via the outward Dynamics pass
// instead). A single descending loop suffices: by the time joint i is
// visited, every child of i (necessarily index > i) has already been
// finalised.
func Articulated(flat mech.Flattened, kin []KinJoint, known []mech.Known, tau []float64) ([]ArtJoint, error) {
	n := len(flat.Joints)
	art := make([]ArtJoint, n)

	for i := n - 1; i >= 0; i-- {
		art[i].IA = kin[i].I
		art[i].PA = kin[i].P // w_i == 0 always (spec 9c)

		for _, c := range flat.Children[i] {
			s := kin[c].S
			L := art[c].IA.MulVec(s)
			j := s.Dot(L)
			if j == 0 {
				return nil, gferr.New(gferr.SingularArticulation,
					"joint %d: s.IA.s == 0 (zero mass or degenerate inertia along the joint axis)", c)
			}
			T := L.Scale(1 / j)
			RU := spatial.Identity6.Sub(spatial.Outer(T, s))

			Q := 0.0
			if known[c] == mech.KnownForcing {
				Q = tau[c]
			}

			art[i].IA = art[i].IA.Add(RU.Mul(art[c].IA))
			art[i].PA = art[i].PA.Add(T.Scale(Q)).Add(RU.MulVec(art[c].IA.MulVec(kin[c].Kappa).Add(art[c].PA)))
		}
	}
	return art, nil
}
