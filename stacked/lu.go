// Copyright 2024 The Gofeather Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stacked

import (
	"math"

	"github.com/cpmech/gofeather/gferr"
)

// pivotTolerance is the minimum acceptable pivot magnitude; below it the
// system is reported singular (spec 4.9).
const pivotTolerance = 1e-12

// SystemSolve solves a*x = b by Doolittle LU decomposition with partial
// pivoting, choosing at each column the row with the largest pivot
// magnitude -- math.Abs(candidate), not the raw signed value, correcting
// the source's sign-only comparison (spec 9a). a is square and is not
// modified; b is left untouched. Returns x together with the maximum
// absolute residual |a*x-b|_infinity, a cheap accuracy check the caller
// can log or assert on.
func SystemSolve(a [][]float64, b []float64) (x []float64, maxResidual float64, err error) {
	n := len(a)
	if n == 0 || len(b) != n {
		return nil, 0, gferr.New(gferr.DimensionMismatch,
			"stacked.SystemSolve: a is %dx%d, b has length %d", n, n, len(b))
	}
	for _, row := range a {
		if len(row) != n {
			return nil, 0, gferr.New(gferr.DimensionMismatch, "stacked.SystemSolve: a is not square")
		}
	}

	// lu starts as a copy of a; factorisation proceeds in place.
	lu := make([][]float64, n)
	for i := range a {
		lu[i] = append([]float64(nil), a[i]...)
	}
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}

	for k := 0; k < n; k++ {
		piv, pivRow := math.Abs(lu[k][k]), k
		for i := k + 1; i < n; i++ {
			if v := math.Abs(lu[i][k]); v > piv {
				piv, pivRow = v, i
			}
		}
		if piv <= pivotTolerance {
			return nil, math.NaN(), gferr.New(gferr.SingularMatrix, "stacked.SystemSolve: pivot %g at column %d is at or below tolerance %g", piv, k, pivotTolerance)
		}
		if pivRow != k {
			lu[k], lu[pivRow] = lu[pivRow], lu[k]
			perm[k], perm[pivRow] = perm[pivRow], perm[k]
		}
		for i := k + 1; i < n; i++ {
			factor := lu[i][k] / lu[k][k]
			lu[i][k] = factor
			for j := k + 1; j < n; j++ {
				lu[i][j] -= factor * lu[k][j]
			}
		}
	}

	// forward substitution: L*y = P*b
	y := make([]float64, n)
	for i := 0; i < n; i++ {
		sum := b[perm[i]]
		for j := 0; j < i; j++ {
			sum -= lu[i][j] * y[j]
		}
		y[i] = sum
	}

	// back substitution: U*x = y
	x = make([]float64, n)
	for i := n - 1; i >= 0; i-- {
		sum := y[i]
		for j := i + 1; j < n; j++ {
			sum -= lu[i][j] * x[j]
		}
		x[i] = sum / lu[i][i]
	}

	maxResidual = 0
	for i := 0; i < n; i++ {
		sum := 0.0
		for j := 0; j < n; j++ {
			sum += a[i][j] * x[j]
		}
		if r := math.Abs(sum - b[i]); r > maxResidual {
			maxResidual = r
		}
	}

	return x, maxResidual, nil
}
