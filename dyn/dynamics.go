// Copyright 2024 The Gofeather Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dyn

import (
	"github.com/cpmech/gofeather/gferr"
	"github.com/cpmech/gofeather/mech"
	"github.com/cpmech/gofeather/spatial"
)

// DynJoint holds one joint's outward dynamics-pass results (spec 4.5).
type DynJoint struct {
	A spatial.Vec6 // spatial acceleration
	F spatial.Vec6 // net spatial force
}

// Dynamics runs the outward pass (i = 0..n-1, spec 4.5), writing the
// generalised acceleration qddot[i] for Forcing-driven joints and the
// reaction generalised force tau[i] for Acceleration-driven joints.
// gravity enters solely through the base acceleration (-g, 0) applied
// at every root's parent (spec 9c); the gravity wrench itself is
// always zero.
func Dynamics(flat mech.Flattened, kin []KinJoint, art []ArtJoint, known []mech.Known, qddot, tau []float64, gravity spatial.Vec3) ([]DynJoint, error) {
	n := len(flat.Joints)
	dynJ := make([]DynJoint, n)
	base := spatial.NewTwist(gravity.Neg(), spatial.Zero3)

	for i := 0; i < n; i++ {
		aP := base
		if p := flat.Parents[i]; p >= 0 {
			aP = dynJ[p].A
		}

		s := kin[i].S
		switch known[i] {
		case mech.KnownForcing:
			L := art[i].IA.MulVec(s)
			j := s.Dot(L)
			if j == 0 {
				return nil, gferr.New(gferr.SingularArticulation,
					"joint %d: s.IA.s == 0 in the dynamics pass", i)
			}
			rhs := tau[i] - s.Dot(art[i].IA.MulVec(aP.Add(kin[i].Kappa)).Add(art[i].PA))
			qddot[i] = rhs / j
		case mech.KnownAcceleration:
			aTotal := aP.Add(kin[i].Kappa).Add(s.Scale(qddot[i]))
			tau[i] = s.Dot(art[i].IA.MulVec(aTotal).Add(art[i].PA))
		}

		a := s.Scale(qddot[i]).Add(aP).Add(kin[i].Kappa)
		f := art[i].IA.MulVec(a).Add(art[i].PA)
		dynJ[i] = DynJoint{A: a, F: f}
	}
	return dynJ, nil
}
