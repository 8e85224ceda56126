// Copyright 2024 The Gofeather Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mech

import (
	"log"

	"github.com/cpmech/gofeather/spatial"
)

// Units is a minimal coherent unit system: multiplicative factors that
// convert a caller's units into MKS. Full unit-conversion tables are
// an external collaborator (spec.md §1 non-goal); this is just enough
// for World.Flatten to bring joints and gravity expressed in another
// system into the MKS system the recursion integrates in (spec 6).
type Units struct {
	LengthToMeters float64
	MassToKg       float64
}

// MKS is the identity unit system.
func MKS() Units { return Units{LengthToMeters: 1, MassToKg: 1} }

func (u Units) scaleLength(v spatial.Vec3) spatial.Vec3 { return v.Scale(u.LengthToMeters) }

func (u Units) scaleMassProps(m MassProps) MassProps {
	l := u.LengthToMeters
	return MassProps{
		Mass: m.Mass * u.MassToKg,
		CG:   m.CG.Scale(l),
		// inertia scales as mass * length^2
		Icm: m.Icm.Scale(u.MassToKg * l * l),
	}
}

// World is the root container of a joint tree: gravity and the list
// of root joints (spec 3).
type World struct {
	Gravity spatial.Vec3
	Units   Units
	roots   []*Joint
}

// NewWorld creates an empty World with gravity expressed in the given
// unit system.
func NewWorld(units Units, gravity spatial.Vec3) *World {
	return &World{Gravity: gravity, Units: units}
}

// NewRevolute/NewPrismatic/NewScrew add a new root joint to the world.
func (w *World) NewRevolute(localPose spatial.Pose, axis spatial.Vec3) *Joint {
	j := NewRevolute(localPose, axis)
	w.roots = append(w.roots, j)
	return j
}

func (w *World) NewPrismatic(localPose spatial.Pose, axis spatial.Vec3) *Joint {
	j := NewPrismatic(localPose, axis)
	w.roots = append(w.roots, j)
	return j
}

func (w *World) NewScrew(localPose spatial.Pose, axis spatial.Vec3, pitch float64) *Joint {
	j := NewScrew(localPose, axis, pitch)
	w.roots = append(w.roots, j)
	return j
}

// Roots returns the world's root joints, in insertion order.
func (w *World) Roots() []*Joint { return w.roots }

// Flattened is the tree flattened into a topologically ordered array:
// Joints[i] is a unit-converted copy of a tree node, Parents[i] < i
// for every i (parents[i] == -1 for a root), and Children[i] lists the
// indices of i's direct children (spec 3/4.2).
type Flattened struct {
	Joints   []Joint
	Parents  []int
	Children [][]int
	Gravity  spatial.Vec3 // converted to MKS
}

// Flatten performs a pre-order traversal of every root, converting
// each node from the world's declared unit system into MKS, and returns an
// array with Parents[i] < i for all i (spec 4.2).
func (w *World) Flatten() Flattened {
	var out Flattened
	out.Gravity = w.Units.scaleLength(w.Gravity)

	var visit func(j *Joint, parent int)
	visit = func(j *Joint, parent int) {
		idx := len(out.Joints)
		converted := *j
		converted.LocalPose.Position = w.Units.scaleLength(j.LocalPose.Position)
		converted.Mass = w.Units.scaleMassProps(j.Mass)
		if j.Kind == Screw {
			converted.Pitch = j.Pitch * w.Units.LengthToMeters
		}
		out.Joints = append(out.Joints, converted)
		out.Parents = append(out.Parents, parent)
		out.Children = append(out.Children, nil)
		if parent >= 0 {
			out.Children[parent] = append(out.Children[parent], idx)
		}
		for _, c := range j.children {
			visit(c, idx)
		}
	}
	for _, r := range w.roots {
		visit(r, -1)
	}

	log.Printf("mech: World.Flatten: %d joints flattened", len(out.Joints))
	return out
}
