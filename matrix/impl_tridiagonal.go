// SPDX-License-Identifier: MIT

// Package matrix - assembly of tridiagonal systems for verification.
//
// Indexing convention (shared with package tridiag):
//   - lower[i] multiplies x[i-1] in equation i; lower[0] is a placeholder.
//   - diag[i] is the main-diagonal coefficient of equation i.
//   - upper[i] multiplies x[i+1] in equation i; upper[n-1] is a placeholder.
//
// Placeholders are never read, so any value (even NaN) is accepted there.

package matrix

import "fmt"

// NewTridiagonal assembles the dense n×n matrix A with
// A[i][i-1] = lower[i], A[i][i] = diag[i], A[i][i+1] = upper[i].
//
// Errors:
//   - ErrInvalidDimensions when n == 0.
//   - ErrDimensionMismatch when the three lengths disagree.
//   - ErrNaNInf when a structurally used coefficient is not finite.
//
// Complexity:
//   - Time O(n²) for zeroing + O(n) writes, Space O(n²).
func NewTridiagonal(lower, diag, upper []float64) (*Dense, error) {
	n := len(diag)
	if len(lower) != n || len(upper) != n {
		return nil, matrixErrorf(opTridiagonal, fmt.Errorf("len(lower)=%d len(diag)=%d len(upper)=%d: %w",
			len(lower), n, len(upper), ErrDimensionMismatch))
	}
	a, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opTridiagonal, err)
	}

	var i int
	for i = 0; i < n; i++ {
		if i > 0 {
			if err = a.Set(i, i-1, lower[i]); err != nil {
				return nil, matrixErrorf(opTridiagonal, err)
			}
		}
		if err = a.Set(i, i, diag[i]); err != nil {
			return nil, matrixErrorf(opTridiagonal, err)
		}
		if i < n-1 {
			if err = a.Set(i, i+1, upper[i]); err != nil {
				return nil, matrixErrorf(opTridiagonal, err)
			}
		}
	}

	return a, nil
}

// Residual returns r = A·x − rhs.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (from MatVec or the rhs length check).
func Residual(a Matrix, x, rhs []float64) ([]float64, error) {
	y, err := MatVec(a, x)
	if err != nil {
		return nil, matrixErrorf(opResidual, err)
	}
	if err = ValidateVecLen(rhs, a.Rows()); err != nil {
		return nil, matrixErrorf(opResidual, err)
	}
	for i := range y {
		y[i] -= rhs[i]
	}

	return y, nil
}
