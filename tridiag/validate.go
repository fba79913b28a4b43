package tridiag

import "fmt"

// Validate checks that lower, diag, upper and rhs describe a solvable system.
//
// Stage 1 (dimensions): all four lengths must be equal and positive,
// otherwise ErrDimensionMismatch.
//
// Stage 2 (coefficients): equations are scanned in order i = 0..n-1 and at
// each index the inequalities are tested in the order
//
//	upper[i] > 0                 (i < n-1)
//	lower[i] > 0                 (i > 0)
//	diag[i]  < 0
//	-diag[i] >= lower[i] + upper[i]   (placeholders read as 0)
//
// The first violation is returned as a *CoefficientError. Every comparison
// is phrased so that NaN fails it. rhs is never inspected beyond its length.
//
// Finally at least one equation must satisfy the dominance inequality
// strictly (CheckStrictRow). Equality in every row makes all row sums zero,
// so A is singular and the last elimination denominator is exactly 0.
//
// Validate is pure and allocates only on failure.
func Validate(lower, diag, upper, rhs []float64) error {
	if err := checkDims(len(lower), len(diag), len(upper), len(rhs)); err != nil {
		return err
	}

	return checkCoefficients(lower, diag, upper)
}

// checkDims requires equal, positive lengths.
func checkDims(nl, nd, nu, nf int) error {
	if nd == 0 {
		return fmt.Errorf("%w: empty system", ErrDimensionMismatch)
	}
	if nl != nd || nu != nd || nf != nd {
		return fmt.Errorf("%w: len(lower)=%d len(diag)=%d len(upper)=%d len(rhs)=%d",
			ErrDimensionMismatch, nl, nd, nu, nf)
	}

	return nil
}

// checkCoefficients assumes equal, positive lengths.
func checkCoefficients(lower, diag, upper []float64) error {
	n := len(diag)
	var l, u float64
	strict := false
	for i := 0; i < n; i++ {
		l, u = lowerAt(lower, i), upperAt(upper, i)
		if i < n-1 && !(u > 0) {
			return &CoefficientError{Check: CheckUpperPositive, Index: i, N: n, Value: u}
		}
		if i > 0 && !(l > 0) {
			return &CoefficientError{Check: CheckLowerPositive, Index: i, N: n, Value: l}
		}
		if !(diag[i] < 0) {
			return &CoefficientError{Check: CheckDiagonalNegative, Index: i, N: n, Value: diag[i]}
		}
		if !(-diag[i] >= l+u) {
			return &CoefficientError{Check: CheckDominance, Index: i, N: n, Value: -diag[i], Bound: l + u}
		}
		if -diag[i] > l+u {
			strict = true
		}
	}
	if !strict {
		return &CoefficientError{Check: CheckStrictRow, Index: n - 1, N: n, Value: -diag[n-1], Bound: l + u}
	}

	return nil
}

// lowerAt returns lower[i], or 0 for the placeholder lower[0].
func lowerAt(lower []float64, i int) float64 {
	if i == 0 {
		return 0
	}

	return lower[i]
}

// upperAt returns upper[i], or 0 for the placeholder upper[n-1].
func upperAt(upper []float64, i int) float64 {
	if i == len(upper)-1 {
		return 0
	}

	return upper[i]
}
