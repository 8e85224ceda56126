// Copyright 2024 The Gofeather Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package stacked implements partition-indexed block algebra over a
// flat backing array (spec.md §4.8): StackedVector, StackedMatrix, and
// the dense LU solve they share (spec.md §4.9). The integrator (sim
// package) uses a 2-partition Vector [q | qdot] to express the
// combined state Y.
package stacked

import (
	"github.com/cpmech/gofeather/gferr"
)

// Vector is a fixed ordered partition over a flat backing array:
// partition k occupies [offset(k), offset(k)+Parts[k]).
type Vector struct {
	Parts []int
	Data  []float64
}

// NewVector allocates a zeroed stacked vector with the given partition
// sizes.
func NewVector(parts []int) Vector {
	total := 0
	for _, p := range parts {
		total += p
	}
	return Vector{Parts: append([]int(nil), parts...), Data: make([]float64, total)}
}

// offset returns the flat-array start index of partition k.
func (v Vector) offset(k int) int {
	o := 0
	for i := 0; i < k; i++ {
		o += v.Parts[i]
	}
	return o
}

// Part returns a contiguous copy of partition k (spec 4.8: slicing
// returns contiguous copies).
func (v Vector) Part(k int) []float64 {
	o := v.offset(k)
	out := make([]float64, v.Parts[k])
	copy(out, v.Data[o:o+v.Parts[k]])
	return out
}

// SetPart writes val into partition k in place; len(val) must equal
// Parts[k]. Writing back a value previously read with Part leaves the
// backing array unchanged (spec testable property 8).
func (v Vector) SetPart(k int, val []float64) error {
	if len(val) != v.Parts[k] {
		return gferr.New(gferr.DimensionMismatch,
			"stacked.Vector.SetPart: partition %d has size %d, got %d", k, v.Parts[k], len(val))
	}
	o := v.offset(k)
	copy(v.Data[o:o+v.Parts[k]], val)
	return nil
}

func samePartitions(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func (v Vector) Clone() Vector {
	data := make([]float64, len(v.Data))
	copy(data, v.Data)
	return Vector{Parts: v.Parts, Data: data}
}

func (v Vector) elementwise(w Vector, op func(a, b float64) float64) (Vector, error) {
	if !samePartitions(v.Parts, w.Parts) {
		return Vector{}, gferr.New(gferr.DimensionMismatch, "stacked.Vector: partition mismatch (%v vs %v)", v.Parts, w.Parts)
	}
	out := v.Clone()
	for i := range out.Data {
		out.Data[i] = op(v.Data[i], w.Data[i])
	}
	return out, nil
}

// Add requires v and w to share the same partition list (spec 4.8).
func (v Vector) Add(w Vector) (Vector, error) {
	return v.elementwise(w, func(a, b float64) float64 { return a + b })
}

// Sub requires v and w to share the same partition list.
func (v Vector) Sub(w Vector) (Vector, error) {
	return v.elementwise(w, func(a, b float64) float64 { return a - b })
}

// Scale multiplies every element of v by s.
func (v Vector) Scale(s float64) Vector {
	out := v.Clone()
	for i := range out.Data {
		out.Data[i] *= s
	}
	return out
}
