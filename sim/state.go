// Copyright 2024 The Gofeather Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package sim implements the stacked state and RK4 time integrator
// (spec.md §4.7): Simulation drives the three Featherstone passes once
// per derivative evaluation and advances (q, q̇) in time.
package sim

import "github.com/cpmech/gofeather/mech"

// State is a Simulation's current time and per-joint arrays, sized by
// DOF. Q and QDot are advanced by Integrate. QDDot and Tau are only
// cleared by Reset: DoFeatherstone evaluates drives and the three
// passes into buffers it allocates on every call.
type State struct {
	T     float64
	Q     []float64
	QDot  []float64
	QDDot []float64
	Tau   []float64
	Known []mech.Known
}

func newState(flat mech.Flattened) State {
	n := len(flat.Joints)
	st := State{
		Q:     make([]float64, n),
		QDot:  make([]float64, n),
		QDDot: make([]float64, n),
		Tau:   make([]float64, n),
		Known: make([]mech.Known, n),
	}
	for i := range flat.Joints {
		st.Q[i] = flat.Joints[i].Q0
		st.QDot[i] = flat.Joints[i].QDot0
		st.Known[i] = flat.Joints[i].Motor.Known
	}
	return st
}
