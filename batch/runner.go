// Copyright 2024 The Gofeather Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package batch fans a set of independent Simulations out over a fixed
// pool of goroutines (spec.md §5 supplemented feature). The core
// itself is single-threaded and non-suspending; concurrency here is
// purely at the level of "one goroutine per in-flight Simulation",
// the same boundary gofem drew with its per-run GoroutineId
// (inp.Simulation.GoroutineId, fem.NewFEM's goroutineId parameter) when
// several of its Main/FEM runs executed side by side -- gofem used the
// id to keep per-run output directories and caches from colliding;
// here each worker's Simulation is a wholly separate value, so no id
// bookkeeping is needed at all.
package batch

import "github.com/cpmech/gofeather/sim"

// Job names one Simulation to run to completion.
type Job struct {
	Name    string
	Sim     *sim.Simulation
	EndTime float64
	Steps   int
}

// Result is a Job's outcome: the maximum residual reported by RunTo,
// or the error it failed with.
type Result struct {
	Name        string
	MaxResidual float64
	Err         error
}

// Run executes every Job's Simulation.RunTo, distributing work over
// workers goroutines (workers <= 0 means one goroutine per job).
// Results are returned in the same order as jobs, regardless of
// completion order.
func Run(jobs []Job, workers int) []Result {
	results := make([]Result, len(jobs))
	if len(jobs) == 0 {
		return results
	}
	if workers <= 0 || workers > len(jobs) {
		workers = len(jobs)
	}

	indices := make(chan int)
	done := make(chan struct{})

	for w := 0; w < workers; w++ {
		go func() {
			for idx := range indices {
				j := jobs[idx]
				maxRes, err := j.Sim.RunTo(j.EndTime, j.Steps)
				results[idx] = Result{Name: j.Name, MaxResidual: maxRes, Err: err}
			}
			done <- struct{}{}
		}()
	}

	for i := range jobs {
		indices <- i
	}
	close(indices)
	for w := 0; w < workers; w++ {
		<-done
	}

	return results
}
