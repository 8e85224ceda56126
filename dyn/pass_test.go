// Copyright 2024 The Gofeather Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dyn

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/gofeather/gferr"
	"github.com/cpmech/gofeather/mech"
	"github.com/cpmech/gofeather/spatial"
)

// singleRodPendulum builds the rod described in spec.md scenario 1:
// a thin rod of mass 1kg, length 0.30m, revolute about +Z at the
// origin, CoM at (0.14905, 0, 0). Gravity points along +X -- the same
// direction as the CoM offset at q=0 -- so q is the pendulum's swing
// angle away from its hanging equilibrium; gravity along the joint's
// own +Z axis would make every rotation torque-free (r x F has no Z
// component when F is parallel to Z), which is degenerate here.
func singleRodPendulum() mech.Flattened {
	w := mech.NewWorld(mech.MKS(), spatial.NewVec3(9.80665, 0, 0))
	j := w.NewRevolute(spatial.IdentityPose, spatial.NewVec3(0, 0, 1))
	L := 0.30
	Izz := (1.0 / 12.0) * (0.02*0.02 + L*L)
	j.AddMassProperties(1, spatial.NewVec3(0.14905, 0, 0), spatial.Mat3{
		0.02, 0, 0,
		0, 0.02, 0,
		0, 0, Izz,
	})
	j.SetMotor(mech.ConstForcing(0))
	j.SetInitialConditions(math.Pi/6, 0)
	return w.Flatten()
}

func runFeatherstone(flat mech.Flattened, q, qdot []float64, known []mech.Known, tau, qddot []float64) ([]KinJoint, []ArtJoint, []DynJoint, error) {
	for i := range flat.Joints {
		j := &flat.Joints[i]
		switch known[i] {
		case mech.KnownForcing:
			tau[i] = j.Motor.Compile(0, q[i], qdot[i])
		case mech.KnownAcceleration:
			qddot[i] = j.Motor.Compile(0, q[i], qdot[i])
		}
	}
	kin := Kinematics(flat, q, qdot)
	art, err := Articulated(flat, kin, known, tau)
	if err != nil {
		return nil, nil, nil, err
	}
	dynJ, err := Dynamics(flat, kin, art, known, qddot, tau, flat.Gravity)
	if err != nil {
		return nil, nil, nil, err
	}
	return kin, art, dynJ, nil
}

func TestPendulumInitialAcceleration(tst *testing.T) {
	chk.PrintTitle("PendulumInitialAcceleration")

	flat := singleRodPendulum()
	q := []float64{math.Pi / 6}
	qdot := []float64{0}
	tau := []float64{0}
	qddot := []float64{0}
	known := []mech.Known{mech.KnownForcing}

	_, _, _, err := runFeatherstone(flat, q, qdot, known, tau, qddot)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}

	m, L, g := 1.0, 0.14905, 9.80665
	Izz := (1.0 / 12.0) * (0.02*0.02 + 0.30*0.30)
	want := -m * g * L * math.Sin(math.Pi/6) / (Izz + m*L*L)

	chk.Scalar(tst, "qddot[0]", 1e-2, qddot[0], want)
}

// TestKinematicsMonotonicity checks testable property 1.
func TestKinematicsMonotonicity(tst *testing.T) {
	chk.PrintTitle("KinematicsMonotonicity")

	w := mech.NewWorld(mech.MKS(), spatial.Zero3)
	root := w.NewRevolute(spatial.IdentityPose, spatial.NewVec3(0, 0, 1))
	root.AddMassProperties(1, spatial.Zero3, spatial.Mat3{1, 0, 0, 0, 1, 0, 0, 0, 1})
	child := root.AddPrismatic(spatial.Pose{Position: spatial.NewVec3(1, 0, 0)}, spatial.NewVec3(1, 0, 0))
	child.AddMassProperties(1, spatial.Zero3, spatial.Mat3{1, 0, 0, 0, 1, 0, 0, 0, 1})

	flat := w.Flatten()
	q := []float64{0.3, 0.1}
	qdot := []float64{0.7, -0.2}
	kin := Kinematics(flat, q, qdot)

	for i, p := range flat.Parents {
		vP := spatial.Zero6
		if p >= 0 {
			vP = kin[p].V
		}
		want := vP.Add(kin[i].S.Scale(qdot[i]))
		if !kin[i].V.Aeq(want, 1e-13) {
			tst.Errorf("joint %d: v_i != v_parent + s_i*qdot_i: got %v, want %v", i, kin[i].V, want)
		}
	}
}

// TestResidualNearZero checks testable property 3 for a single
// Featherstone call on a well-posed tree.
func TestResidualNearZero(tst *testing.T) {
	chk.PrintTitle("ResidualNearZero")

	flat := singleRodPendulum()
	q := []float64{0.2}
	qdot := []float64{0.5}
	tau := []float64{0}
	qddot := []float64{0}
	known := []mech.Known{mech.KnownForcing}

	kin, _, dynJ, err := runFeatherstone(flat, q, qdot, known, tau, qddot)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	res := Residual(flat, kin, dynJ)
	if max := MaxNormInf(res); max > 1e-8 {
		tst.Errorf("residual too large: %g", max)
	}
}

func TestSingularArticulationOnZeroMass(tst *testing.T) {
	chk.PrintTitle("SingularArticulationOnZeroMass")

	w := mech.NewWorld(mech.MKS(), spatial.Zero3)
	w.NewPrismatic(spatial.IdentityPose, spatial.NewVec3(1, 0, 0))
	// no mass properties attached: zero mass along the joint axis
	flat := w.Flatten()

	q := []float64{0}
	qdot := []float64{0}
	tau := []float64{1}
	qddot := []float64{0}
	known := []mech.Known{mech.KnownForcing}

	_, _, _, err := runFeatherstone(flat, q, qdot, known, tau, qddot)
	if err == nil {
		tst.Fatal("expected SingularArticulation error for a zero-mass prismatic joint")
	}
	if !gferr.As(err, gferr.SingularArticulation) {
		tst.Errorf("expected SingularArticulation, got %v", err)
	}
}
