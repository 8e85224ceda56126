// Copyright 2024 The Gofeather Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dyn implements the three-pass Featherstone articulated-body
// recursion (spec.md §4.3-§4.6): outward kinematics, inward articulated
// inertia, and outward dynamics, plus the per-step residual diagnostic.
package dyn

import (
	"github.com/cpmech/gofeather/mech"
	"github.com/cpmech/gofeather/spatial"
)

// KinJoint holds one joint's outward-pass results (spec 4.3).
type KinJoint struct {
	Top   spatial.Pose // world pose of the joint's top frame
	S     spatial.Vec6 // spatial joint axis, expressed about the world origin
	V     spatial.Vec6 // spatial velocity (twist)
	Kappa spatial.Vec6 // bias acceleration v_i x (s_i*qdot_i)
	I     spatial.Mat6 // spatial inertia about the world origin
	P     spatial.Vec6 // bias force v_i x (I_i*v_i)
}

// Kinematics runs the outward pass (i = 0..n-1, spec 4.3). A joint is
// processed only after its parent since flat.Parents[i] < i.
func Kinematics(flat mech.Flattened, q, qdot []float64) []KinJoint {
	n := len(flat.Joints)
	kin := make([]KinJoint, n)
	for i := 0; i < n; i++ {
		j := &flat.Joints[i]

		poseP := spatial.IdentityPose
		vP := spatial.Zero6
		if p := flat.Parents[i]; p >= 0 {
			poseP = kin[p].Top
			vP = kin[p].V
		}

		top := poseP.Compose(j.GetLocalStep(q[i]))
		s := j.GetSpatialAxis(top)
		sqdot := s.Scale(qdot[i])
		v := vP.Add(sqdot)
		kappa := v.CrossTwistTwist(sqdot)

		I := j.WorldSpatialInertia(top)
		momentum := I.MulVec(v)
		p := v.CrossTwistWrench(momentum)

		kin[i] = KinJoint{Top: top, S: s, V: v, Kappa: kappa, I: I, P: p}
	}
	return kin
}
