// Copyright 2024 The Gofeather Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mech

import (
	"github.com/cpmech/gosl/fun"

	"github.com/cpmech/gofeather/gferr"
)

// DefKind is a motor's definition kind: how its drive function was
// specified by the caller, before lifting (spec 3).
type DefKind int

const (
	Position DefKind = iota
	Velocity
	Acceleration
	Forcing
)

func (k DefKind) String() string {
	switch k {
	case Position:
		return "Position"
	case Velocity:
		return "Velocity"
	case Acceleration:
		return "Acceleration"
	case Forcing:
		return "Forcing"
	default:
		return "Unknown"
	}
}

// Known is a motor's post-lifting kind: the only two kinds the
// Featherstone dynamics pass actually dispatches on (spec 4.5).
type Known int

const (
	KnownAcceleration Known = iota
	KnownForcing
)

// driveFunc adapts a plain Go scalar function to gosl/fun.Func, the
// same interface gofem's elements use for time/space-varying loads
// (ele/solid/beam.go's Gfcn, ele/diffusion/diffusion.go's Sfun). Here
// F's second argument x is always []float64{q, qdot} rather than a
// spatial coordinate (spec 9b: the core accepts only the compiled
// scalar function and its post-lifting kind).
type driveFunc struct {
	fn func(t, q, qdot float64) float64
}

var _ fun.Func = driveFunc{}

func (d driveFunc) F(t float64, x []float64) float64 {
	q, qdot := 0.0, 0.0
	if len(x) > 0 {
		q = x[0]
	}
	if len(x) > 1 {
		qdot = x[1]
	}
	return d.fn(t, q, qdot)
}

// Motor carries a joint's drive: its definition kind, the already-
// compiled scalar function f(t, q, qdot) -> R (the symbolic
// differentiation that produces this function for Position/Velocity
// kinds is an external collaborator, spec 3/9b), and the post-lifting
// kind the dynamics pass actually consumes.
type Motor struct {
	Def   DefKind
	Known Known
	Drive fun.Func
	Prms  fun.Prms
}

// Compile evaluates the motor's drive at (t, q, qdot) -- the three
// distinct arguments, correcting the source's Drive(t,q,q) typo (spec
// 9d).
func (m Motor) Compile(t, q, qdot float64) float64 {
	return m.Drive.F(t, []float64{q, qdot})
}

// GetPrms returns the motor's named parameters, if any (empty for
// motors built from a raw function rather than a named constructor),
// mirroring msolid.OnedModel's parameter introspection.
func (m Motor) GetPrms() fun.Prms { return m.Prms }

// ConstForcing returns a Forcing motor applying a constant generalised
// force v.
func ConstForcing(v float64) Motor {
	return Motor{
		Def:   Forcing,
		Known: KnownForcing,
		Drive: driveFunc{fn: func(t, q, qdot float64) float64 { return v }},
		Prms:  fun.Prms{&fun.Prm{N: "v", V: v}},
	}
}

// ConstAcceleration returns an Acceleration motor prescribing a
// constant generalised acceleration v.
func ConstAcceleration(v float64) Motor {
	return Motor{
		Def:   Acceleration,
		Known: KnownAcceleration,
		Drive: driveFunc{fn: func(t, q, qdot float64) float64 { return v }},
		Prms:  fun.Prms{&fun.Prm{N: "v", V: v}},
	}
}

// SpringDamper returns a Forcing motor implementing a linear
// spring-damper: tau = -k*(q-preload) - c*qdot.
func SpringDamper(k, preload, c float64) Motor {
	return Motor{
		Def:   Forcing,
		Known: KnownForcing,
		Drive: driveFunc{fn: func(t, q, qdot float64) float64 { return -k*(q-preload) - c*qdot }},
		Prms: fun.Prms{
			&fun.Prm{N: "k", V: k},
			&fun.Prm{N: "preload", V: preload},
			&fun.Prm{N: "c", V: c},
		},
	}
}

// FunctionOfTime returns a motor whose drive depends only on t.
// Position/Velocity kinds are lifted to Acceleration once, here: f
// must already be the caller's differentiated acceleration function
// (spec 9b) -- this package never differentiates one kind into
// another, it only records which kind the caller started from.
func FunctionOfTime(kind DefKind, f func(t float64) float64) (Motor, error) {
	return functionOf(kind, func(t, q, qdot float64) float64 { return f(t) })
}

// FunctionOfPosition returns a motor whose drive depends on t and q.
func FunctionOfPosition(kind DefKind, f func(t, q float64) float64) (Motor, error) {
	return functionOf(kind, func(t, q, qdot float64) float64 { return f(t, q) })
}

// FunctionOfPositionAndSpeed returns a motor whose drive depends on t,
// q and qdot -- the general (t, q, qdot) -> R signature of spec 3.
func FunctionOfPositionAndSpeed(kind DefKind, f func(t, q, qdot float64) float64) (Motor, error) {
	return functionOf(kind, f)
}

func functionOf(kind DefKind, f func(t, q, qdot float64) float64) (Motor, error) {
	var known Known
	switch kind {
	case Position, Velocity, Acceleration:
		// Position/Velocity are lifted to Acceleration at construction
		// (spec 9b): f is already the caller's differentiated
		// acceleration function, so the lift is just relabelling Known
		// -- Def still records which kind the caller started from.
		known = KnownAcceleration
	case Forcing:
		known = KnownForcing
	default:
		return Motor{}, gferr.New(gferr.UnsupportedMotorKind,
			"motor definition kind %v is not one of Position, Velocity, Acceleration or Forcing", kind)
	}
	return Motor{Def: kind, Known: known, Drive: driveFunc{fn: f}}, nil
}
