// Copyright 2024 The Gofeather Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mech implements the mechanism topology: joints, mass
// properties, motors and the World tree they hang from (spec.md §4.2).
package mech

import (
	"math"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/gofeather/spatial"
)

// Kind is a joint's 1-DOF type. It is a plain enum: the axis and pitch
// it applies to are separate Joint fields, not carried by the Kind
// value. GetLocalStep/GetSpatialAxis dispatch on Kind.
type Kind int

const (
	Revolute Kind = iota
	Prismatic
	Screw
)

func (k Kind) String() string {
	switch k {
	case Revolute:
		return "Revolute"
	case Prismatic:
		return "Prismatic"
	case Screw:
		return "Screw"
	default:
		return "Unknown"
	}
}

// MassProps is the rigidly-attached mass of a joint's moving body,
// expressed in the joint's own (local) top frame: mass m, centre of
// mass cg, and rotational inertia about the centre of mass icm.
type MassProps struct {
	Mass float64
	CG   spatial.Vec3
	Icm  spatial.Mat3
}

// Joint is one node of the mechanism tree: a 1-DOF connection to its
// parent (or the world, if it is a root), the mass rigidly attached to
// its moving body, and its drive.
type Joint struct {
	Kind      Kind
	LocalPose spatial.Pose // offset from the parent's top frame
	Axis      spatial.Vec3 // unit axis, in the joint's local frame
	Pitch     float64      // 0 for Revolute, +Inf for Prismatic, finite for Screw

	Mass  MassProps
	Motor Motor

	Q0, QDot0 float64 // initial conditions

	children []*Joint
}

// NewRevolute creates an un-parented revolute joint. axis must be
// non-zero (InvalidRotationAxis, spec 4.1/7).
func NewRevolute(localPose spatial.Pose, axis spatial.Vec3) *Joint {
	return newJoint(Revolute, localPose, axis, 0)
}

// NewPrismatic creates an un-parented prismatic joint.
func NewPrismatic(localPose spatial.Pose, axis spatial.Vec3) *Joint {
	return newJoint(Prismatic, localPose, axis, math.Inf(1))
}

// NewScrew creates an un-parented screw joint with the given pitch
// (translation per radian of rotation).
func NewScrew(localPose spatial.Pose, axis spatial.Vec3, pitch float64) *Joint {
	return newJoint(Screw, localPose, axis, pitch)
}

func newJoint(kind Kind, localPose spatial.Pose, axis spatial.Vec3, pitch float64) *Joint {
	u, ok := axis.Unit()
	if !ok {
		chk.Panic("mech: Joint: InvalidRotationAxis: joint axis has zero magnitude")
	}
	return &Joint{
		Kind:      kind,
		LocalPose: localPose,
		Axis:      u,
		Pitch:     pitch,
		Motor:     ConstForcing(0),
	}
}

// AddRevolute/AddPrismatic/AddScrew attach a new child joint to j.
func (j *Joint) AddRevolute(localPose spatial.Pose, axis spatial.Vec3) *Joint {
	c := NewRevolute(localPose, axis)
	j.children = append(j.children, c)
	return c
}

func (j *Joint) AddPrismatic(localPose spatial.Pose, axis spatial.Vec3) *Joint {
	c := NewPrismatic(localPose, axis)
	j.children = append(j.children, c)
	return c
}

func (j *Joint) AddScrew(localPose spatial.Pose, axis spatial.Vec3, pitch float64) *Joint {
	c := NewScrew(localPose, axis, pitch)
	j.children = append(j.children, c)
	return c
}

// Children returns j's direct children, in traversal order.
func (j *Joint) Children() []*Joint { return j.children }

// SetInitialConditions sets q0, qdot0.
func (j *Joint) SetInitialConditions(q0, qdot0 float64) { j.Q0, j.QDot0 = q0, qdot0 }

// SetMotor replaces j's drive.
func (j *Joint) SetMotor(m Motor) { j.Motor = m }

// AddMassProperties rigidly attaches mass m, centre of mass cg and
// rotational inertia icm about cg, all in j's local top frame.
func (j *Joint) AddMassProperties(m float64, cg spatial.Vec3, icm spatial.Mat3) {
	j.Mass = MassProps{Mass: m, CG: cg, Icm: icm}
}

// GetLocalStep returns the Pose produced by displacing j from its
// fixed mount (LocalPose) by qi along its axis (spec 4.2).
func (j *Joint) GetLocalStep(qi float64) spatial.Pose {
	return j.LocalPose.Compose(j.displacement(qi))
}

func (j *Joint) displacement(qi float64) spatial.Pose {
	switch j.Kind {
	case Revolute:
		return spatial.Pose{
			Position:    spatial.Zero3,
			Orientation: spatial.FromAxisAngle(j.Axis, qi),
		}
	case Prismatic:
		return spatial.Pose{
			Position:    j.Axis.Scale(qi),
			Orientation: spatial.IdentityQuat,
		}
	case Screw:
		return spatial.Pose{
			Position:    j.Axis.Scale(qi * j.Pitch),
			Orientation: spatial.FromAxisAngle(j.Axis, qi),
		}
	default:
		chk.Panic("mech: Joint.GetLocalStep: unknown joint kind %v", j.Kind)
		return spatial.IdentityPose
	}
}

// GetSpatialAxis returns the 6-vector s_i for this joint, given its
// top (world) pose (spec 4.2): (r x z, z) for revolute, (z, 0) for
// prismatic, (r x z + pitch*z, z) for screw -- z is the joint axis
// rotated into the top frame, r is the top-frame position.
func (j *Joint) GetSpatialAxis(top spatial.Pose) spatial.Vec6 {
	z := top.Orientation.Rotate(j.Axis)
	r := top.Position
	switch j.Kind {
	case Revolute:
		return spatial.NewTwist(r.Cross(z), z)
	case Prismatic:
		return spatial.NewTwist(z, spatial.Zero3)
	case Screw:
		return spatial.NewTwist(r.Cross(z).Add(z.Scale(j.Pitch)), z)
	default:
		chk.Panic("mech: Joint.GetSpatialAxis: unknown joint kind %v", j.Kind)
		return spatial.Zero6
	}
}

// WorldSpatialInertia returns this joint's rigidly-attached mass,
// expressed as a SpatialInertia about the world origin, given the
// joint's current top (world) pose (spec 4.3 step 5).
func (j *Joint) WorldSpatialInertia(top spatial.Pose) spatial.Mat6 {
	R := spatial.FromQuat(top.Orientation)
	cWorld := top.Position.Add(R.MulVec(j.Mass.CG))
	icmWorld := R.Mul(j.Mass.Icm).Mul(R.Transpose())
	return spatial.SpatialInertia(j.Mass.Mass, cWorld, icmWorld)
}
