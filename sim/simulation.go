// Copyright 2024 The Gofeather Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sim

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/cpmech/gofeather/dyn"
	"github.com/cpmech/gofeather/gferr"
	"github.com/cpmech/gofeather/mech"
	"github.com/cpmech/gofeather/stacked"
)

// Snapshot is one recorded point of a Simulation's trajectory: time t
// and the 2-partition stacked vector Y = [q | q̇] (spec.md §6).
type Snapshot struct {
	T float64
	Y stacked.Vector
}

// Simulation owns a mechanism's flattened topology, its current State
// and its history. A Simulation is single-threaded and non-suspending
// (spec.md §5); driving several mechanisms concurrently means owning
// one Simulation per goroutine (see package batch).
type Simulation struct {
	Flat    mech.Flattened
	State   State
	history []Snapshot
	q0      []float64
	qdot0   []float64
	verbose bool
}

// ToSimulation builds a Simulation from a flattened World, recording
// Y0 as the first history entry. A free function, not a World method,
// to avoid mech importing sim (spec.md §6 World::to_simulation).
func ToSimulation(w *mech.World) *Simulation {
	return NewSimulation(w.Flatten())
}

// NewSimulation builds a Simulation directly from an already-flattened
// mechanism.
func NewSimulation(flat mech.Flattened) *Simulation {
	st := newState(flat)
	s := &Simulation{
		Flat:  flat,
		State: st,
		q0:    append([]float64(nil), st.Q...),
		qdot0: append([]float64(nil), st.QDot...),
	}
	s.recordHistory()
	return s
}

// SetVerbose turns step narration on or off (spec.md §5 supplemented
// feature): each Integrate call then prints t, h and the step's
// maximum residual via io.Pfgrey.
func (s *Simulation) SetVerbose(v bool) { s.verbose = v }

// History returns the ordered (t, Y) trajectory recorded so far,
// including the initial point pushed by NewSimulation/Reset.
func (s *Simulation) History() []Snapshot { return s.history }

// Reset rewinds the Simulation to t=0 with every joint's initial
// conditions, discarding history and re-recording Y0.
func (s *Simulation) Reset() {
	s.State.T = 0
	copy(s.State.Q, s.q0)
	copy(s.State.QDot, s.qdot0)
	for i := range s.State.QDDot {
		s.State.QDDot[i] = 0
		s.State.Tau[i] = 0
	}
	s.history = s.history[:0]
	s.recordHistory()
}

func (s *Simulation) recordHistory() {
	n := len(s.Flat.Joints)
	Y := stacked.NewVector([]int{n, n})
	mustSetPart(Y, 0, s.State.Q)
	mustSetPart(Y, 1, s.State.QDot)
	s.history = append(s.history, Snapshot{T: s.State.T, Y: Y})
}

func mustSetPart(v stacked.Vector, k int, val []float64) {
	if err := v.SetPart(k, val); err != nil {
		chk.Panic("sim: internal stacked-vector partition mismatch: %v", err)
	}
}

// evalMotors evaluates each joint's drive at (t, q[i], qdot[i]),
// writing tau[i] for Forcing-driven joints and qddot[i] for
// Acceleration-driven joints (spec.md §4.7 data flow).
func (s *Simulation) evalMotors(t float64, q, qdot, tau, qddot []float64) {
	for i := range s.Flat.Joints {
		j := &s.Flat.Joints[i]
		switch s.State.Known[i] {
		case mech.KnownForcing:
			tau[i] = j.Motor.Compile(t, q[i], qdot[i])
		case mech.KnownAcceleration:
			qddot[i] = j.Motor.Compile(t, q[i], qdot[i])
		}
	}
}

// DoFeatherstone runs the three Featherstone passes (Kinematics,
// Articulated, Dynamics) for the given (t, q, q̇), returning the
// generalised acceleration and the diagnostic maximum residual
// (spec.md §4.7 data flow, §4.6).
func (s *Simulation) DoFeatherstone(t float64, q, qdot []float64) (qddot []float64, maxResidual float64, err error) {
	n := len(s.Flat.Joints)
	tau := make([]float64, n)
	qddot = make([]float64, n)
	s.evalMotors(t, q, qdot, tau, qddot)

	kin := dyn.Kinematics(s.Flat, q, qdot)
	art, err := dyn.Articulated(s.Flat, kin, s.State.Known, tau)
	if err != nil {
		return nil, 0, err
	}
	dynJ, err := dyn.Dynamics(s.Flat, kin, art, s.State.Known, qddot, tau, s.Flat.Gravity)
	if err != nil {
		return nil, 0, err
	}
	res := dyn.Residual(s.Flat, kin, dynJ)
	return qddot, dyn.MaxNormInf(res), nil
}

// derivative evaluates Y' = [q̇ | q̈(t,Y)] (spec.md §4.7).
func (s *Simulation) derivative(t float64, Y stacked.Vector) (stacked.Vector, float64, error) {
	q, qdot := Y.Part(0), Y.Part(1)
	qddot, maxRes, err := s.DoFeatherstone(t, q, qdot)
	if err != nil {
		return stacked.Vector{}, 0, err
	}
	n := len(q)
	Yp := stacked.NewVector([]int{n, n})
	mustSetPart(Yp, 0, qdot)
	mustSetPart(Yp, 1, qddot)
	return Yp, maxRes, nil
}

// addScaled returns y + c*k; partitions always match by construction
// here, so a mismatch is an internal invariant violation, not a
// reportable error.
func addScaled(y, k stacked.Vector, c float64) stacked.Vector {
	out, err := y.Add(k.Scale(c))
	if err != nil {
		chk.Panic("sim: internal stacked-vector partition mismatch: %v", err)
	}
	return out
}

// Integrate advances the Simulation by one RK4 step of nominal size h,
// clamped so no joint rotates more than 1 degree in the step
// (spec.md §4.7 point 1), and returns the maximum of the four stage
// residuals as a best-effort diagnostic.
func (s *Simulation) Integrate(h float64) (maxResidual float64, err error) {
	n := len(s.Flat.Joints)
	Y := stacked.NewVector([]int{n, n})
	mustSetPart(Y, 0, s.State.Q)
	mustSetPart(Y, 1, s.State.QDot)

	qdotMax := 0.0
	for _, v := range s.State.QDot {
		if a := math.Abs(v); a > qdotMax {
			qdotMax = a
		}
	}
	if qdotMax > 0 {
		if hEst := math.Pi / (180 * qdotMax); hEst < h {
			h = hEst
		}
	}

	t := s.State.T
	K0, res0, err := s.derivative(t, Y)
	if err != nil {
		return 0, err
	}
	K1, res1, err := s.derivative(t+h/2, addScaled(Y, K0, h/2))
	if err != nil {
		return 0, err
	}
	K2, res2, err := s.derivative(t+h/2, addScaled(Y, K1, h/2))
	if err != nil {
		return 0, err
	}
	K3, res3, err := s.derivative(t+h, addScaled(Y, K2, h))
	if err != nil {
		return 0, err
	}

	combo := addScaled(addScaled(addScaled(K0, K1, 2), K2, 2), K3, 1)
	Ynext := addScaled(Y, combo, h/6)

	s.State.T = t + h
	copy(s.State.Q, Ynext.Part(0))
	copy(s.State.QDot, Ynext.Part(1))
	s.history = append(s.history, Snapshot{T: s.State.T, Y: Ynext})

	maxResidual = res0
	for _, r := range [...]float64{res1, res2, res3} {
		if r > maxResidual {
			maxResidual = r
		}
	}

	if s.verbose {
		io.Pfgrey("sim: t=%.6f  h=%.6g  max|residual|=%.3e\n", s.State.T, h, maxResidual)
	}
	return maxResidual, nil
}

// RunTo advances the Simulation from its current time to endTime in N
// equal nominal sub-steps, reducing the last sub-step so the run lands
// exactly on endTime (spec.md §4.7). Where Integrate's 1-degree clamp
// shortens a sub-step, further steps are taken until endTime is
// reached. It returns the maximum of every sub-step's residual.
func (s *Simulation) RunTo(endTime float64, n int) (maxResidual float64, err error) {
	if n <= 0 {
		return 0, gferr.New(gferr.DimensionMismatch, "sim.Simulation.RunTo: n must be positive, got %d", n)
	}
	step := (endTime - s.State.T) / float64(n)
	for i := 0; s.State.T < endTime; i++ {
		h := step
		if i >= n-1 || s.State.T+h > endTime {
			h = endTime - s.State.T
		}
		res, err := s.Integrate(h)
		if err != nil {
			return maxResidual, err
		}
		if res > maxResidual {
			maxResidual = res
		}
	}
	return maxResidual, nil
}

// KineticEnergy is a diagnostic (spec.md §5 supplemented feature):
// sum over joints of (1/2) v_i . (I_i . v_i) at the current state.
func (s *Simulation) KineticEnergy() float64 {
	kin := dyn.Kinematics(s.Flat, s.State.Q, s.State.QDot)
	e := 0.0
	for _, k := range kin {
		e += 0.5 * k.V.Dot(k.I.MulVec(k.V))
	}
	return e
}
