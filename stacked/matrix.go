// Copyright 2024 The Gofeather Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stacked

import (
	"github.com/cpmech/gosl/la"

	"github.com/cpmech/gofeather/gferr"
)

// Matrix is a dense matrix with row- and column- partitions indexed
// independently (spec 4.8). Backing storage is a plain dense
// [nrows][ncols] array, matching how gofem's element matrices (e.g.
// ele/solid/beam.go's K) are built up and passed to la.MatVecMul.
type Matrix struct {
	RowParts []int
	ColParts []int
	Data     [][]float64
}

func NewMatrix(rowParts, colParts []int) Matrix {
	nr, nc := sumOf(rowParts), sumOf(colParts)
	data := make([][]float64, nr)
	for i := range data {
		data[i] = make([]float64, nc)
	}
	return Matrix{
		RowParts: append([]int(nil), rowParts...),
		ColParts: append([]int(nil), colParts...),
		Data:     data,
	}
}

func sumOf(parts []int) int {
	n := 0
	for _, p := range parts {
		n += p
	}
	return n
}

func offsetOf(parts []int, k int) int {
	o := 0
	for i := 0; i < k; i++ {
		o += parts[i]
	}
	return o
}

// Block returns a copy of the (rowPart, colPart) block.
func (m Matrix) Block(rowPart, colPart int) [][]float64 {
	ro, co := offsetOf(m.RowParts, rowPart), offsetOf(m.ColParts, colPart)
	nr, nc := m.RowParts[rowPart], m.ColParts[colPart]
	out := make([][]float64, nr)
	for i := 0; i < nr; i++ {
		out[i] = make([]float64, nc)
		copy(out[i], m.Data[ro+i][co:co+nc])
	}
	return out
}

// SetBlock writes block into the (rowPart, colPart) block in place.
func (m Matrix) SetBlock(rowPart, colPart int, block [][]float64) error {
	nr, nc := m.RowParts[rowPart], m.ColParts[colPart]
	if len(block) != nr || (nr > 0 && len(block[0]) != nc) {
		return gferr.New(gferr.DimensionMismatch,
			"stacked.Matrix.SetBlock: block (%d,%d) has size %dx%d", rowPart, colPart, nr, nc)
	}
	ro, co := offsetOf(m.RowParts, rowPart), offsetOf(m.ColParts, colPart)
	for i := 0; i < nr; i++ {
		copy(m.Data[ro+i][co:co+nc], block[i])
	}
	return nil
}

// MulVec computes A*x; A.ColParts must equal x.Parts (spec 4.8).
func (m Matrix) MulVec(x Vector) (Vector, error) {
	if !samePartitions(m.ColParts, x.Parts) {
		return Vector{}, gferr.New(gferr.DimensionMismatch,
			"stacked.Matrix.MulVec: A.ColParts %v != x.Parts %v", m.ColParts, x.Parts)
	}
	out := NewVector(m.RowParts)
	la.MatVecMul(out.Data, 1, m.Data, x.Data)
	return out, nil
}

// Solve solves A*x = b by dense LU (stacked/lu.go) and returns x
// (partitioned like A.ColParts) together with the maximum residual
// |A*x - b|_infinity. It fails with SingularMatrix if a pivot is at or
// below tolerance (spec 4.9).
func (m Matrix) Solve(b Vector) (Vector, float64, error) {
	if !samePartitions(m.RowParts, b.Parts) {
		return Vector{}, 0, gferr.New(gferr.DimensionMismatch,
			"stacked.Matrix.Solve: A.RowParts %v != b.Parts %v", m.RowParts, b.Parts)
	}
	xData, maxRes, err := SystemSolve(m.Data, b.Data)
	if err != nil {
		return Vector{}, maxRes, err
	}
	return Vector{Parts: append([]int(nil), m.ColParts...), Data: xData}, maxRes, nil
}
