// Copyright 2024 The Gofeather Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mech

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func TestConstForcing(tst *testing.T) {
	chk.PrintTitle("ConstForcing")
	m := ConstForcing(5)
	if m.Known != KnownForcing {
		tst.Fatal("ConstForcing should lift to KnownForcing")
	}
	chk.Scalar(tst, "drive(t,q,qdot)", 1e-15, m.Compile(1, 2, 3), 5)
}

func TestSpringDamper(tst *testing.T) {
	chk.PrintTitle("SpringDamper")
	m := SpringDamper(10, 0.1, 2)
	got := m.Compile(0, 0.3, 1.5)
	want := -10*(0.3-0.1) - 2*1.5
	chk.Scalar(tst, "spring-damper torque", 1e-15, got, want)
}

// TestFunctionOfTimeLiftsPositionToAcceleration checks scenario 3
// (motor lift): a Position-kind drive, once the caller has already
// differentiated position(t) = 0.2*sin(10t) twice into an acceleration
// function, is accepted and evaluated as Acceleration -- not rejected.
func TestFunctionOfTimeLiftsPositionToAcceleration(tst *testing.T) {
	chk.PrintTitle("FunctionOfTimeLiftsPositionToAcceleration")

	// stands in for the caller's own (numeric or symbolic)
	// differentiator: d^2/dt^2 [0.2*sin(10t)] = -0.2*10^2*sin(10t).
	accel := func(t float64) float64 { return -0.2 * 100 * math.Sin(10*t) }

	m, err := FunctionOfTime(Position, accel)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	if m.Known != KnownAcceleration {
		tst.Fatal("Position motor should lift to KnownAcceleration")
	}

	for n := 1; n <= 16; n++ {
		t := math.Pi / (10 * float64(n))
		want := -0.2 * 100 * math.Sin(10*t)
		got := m.Compile(t, 0, 0)
		chk.Scalar(tst, io.Sf("qddot at n=%d", n), 1e-6, got, want)
	}
}

func TestFunctionOfPositionAndSpeed(tst *testing.T) {
	chk.PrintTitle("FunctionOfPositionAndSpeed")
	m, err := FunctionOfPositionAndSpeed(Acceleration, func(t, q, qdot float64) float64 {
		return -q - 0.1*qdot
	})
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	chk.Scalar(tst, "drive", 1e-15, m.Compile(0, 2, 3), -2-0.1*3)
}
