// SPDX-License-Identifier: MIT
// Package matrix provides the matrix-vector kernels used to verify solutions.
// All functions perform strict fail-fast validation and return clear errors
// on dimension mismatches.
//
// Notes:
//   - All kernels use the central validators and wrap sentinels via matrixErrorf.

package matrix

import (
	"fmt"
	"math"
)

// ZeroSum is the initial sum value for dot products and accumulations.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping.
const (
	opMatVec      = "MatVec"
	opResidual    = "Residual"
	opTridiagonal = "NewTridiagonal"
	opAllClose    = "VecAllClose"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// MatVec computes y = m · x.
//
// Implementation:
//   - Stage 1: validate m non-nil and len(x) == Cols(m).
//   - Stage 2: fast path for *Dense (flat row-major dot products);
//     otherwise fall back to At with fixed i→j order.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (wrapped with "MatVec").
//
// Complexity:
//   - Time O(r*c), Space O(r) for the result.
func MatVec(m Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	rows, cols := m.Rows(), m.Cols()
	y := make([]float64, rows)

	// Fast-path: *Dense allows flat, row-major dot-products.
	if d, ok := m.(*Dense); ok {
		var i, j, base int
		var acc float64
		for i = 0; i < d.r; i++ {
			acc = ZeroSum
			base = i * d.c
			for j = 0; j < d.c; j++ {
				acc += d.data[base+j] * x[j]
			}
			y[i] = acc
		}

		return y, nil
	}

	// Fallback: interface-based dot-products via At.
	var i, j int
	var mv float64
	var err error
	for i = 0; i < rows; i++ {
		y[i] = ZeroSum
		for j = 0; j < cols; j++ {
			mv, err = m.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opMatVec, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			y[i] += mv * x[j]
		}
	}

	return y, nil
}

// VecAllClose reports whether |a[i]-b[i]| <= atol + rtol*|b[i]| for every i.
// NaN is never close to anything.
//
// Errors:
//   - ErrNilMatrix for nil vectors, ErrDimensionMismatch for unequal lengths,
//     ErrNaNInf for negative or non-finite tolerances.
func VecAllClose(a, b []float64, rtol, atol float64) (bool, error) {
	if a == nil || b == nil {
		return false, matrixErrorf(opAllClose, ErrNilMatrix)
	}
	if len(a) != len(b) {
		return false, matrixErrorf(opAllClose, ErrDimensionMismatch)
	}
	if !(rtol >= 0) || !(atol >= 0) || math.IsInf(rtol, 0) || math.IsInf(atol, 0) {
		return false, matrixErrorf(opAllClose, ErrNaNInf)
	}
	for i := range a {
		if !(math.Abs(a[i]-b[i]) <= atol+rtol*math.Abs(b[i])) {
			return false, nil
		}
	}

	return true, nil
}
