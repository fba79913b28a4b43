package tridiag

import "fmt"

// System is a validated, factorised tridiagonal matrix. The forward
// coefficients alpha and the elimination denominators depend only on the
// matrix, so they are computed once and reused for every right-hand side.
//
// A System is immutable after NewSystem and safe for concurrent use.
type System struct {
	lower []float64 // copy with the placeholder lower[0] replaced by 0
	alpha []float64 // len n+1, alpha[0] = 0
	denom []float64 // len n
}

// NewSystem validates lower, diag and upper and factorises them.
//
// Errors:
//   - ErrDimensionMismatch: unequal lengths or n == 0.
//   - ErrInvalidCoefficients: stability condition violated (*CoefficientError).
//
// The input slices are copied; later changes to them do not affect the System.
func NewSystem(lower, diag, upper []float64) (*System, error) {
	n := len(diag)
	if err := checkDims(len(lower), n, len(upper), n); err != nil {
		return nil, solveErrorf("NewSystem", err)
	}
	if err := checkCoefficients(lower, diag, upper); err != nil {
		return nil, err
	}

	s := &System{
		lower: make([]float64, n),
		alpha: make([]float64, n+1),
		denom: make([]float64, n),
	}
	for i := 0; i < n; i++ {
		s.lower[i] = lowerAt(lower, i)
		s.denom[i], s.alpha[i+1] = eliminate(diag[i], s.lower[i], upperAt(upper, i), s.alpha[i])
	}

	return s, nil
}

// Size returns the number of unknowns n.
func (s *System) Size() int { return len(s.denom) }

// Solve returns x with A·x = rhs. The result is bit-identical to the
// package-level Solve on the same coefficients.
//
// Errors:
//   - ErrDimensionMismatch: len(rhs) != Size().
//   - ErrOptionViolation: a nil Option.
func (s *System) Solve(rhs []float64, opts ...Option) ([]float64, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	n := s.Size()
	if len(rhs) != n {
		return nil, solveErrorf("System.Solve",
			fmt.Errorf("%w: len(rhs)=%d, want %d", ErrDimensionMismatch, len(rhs), n))
	}

	beta := make([]float64, n+1)
	for i := 0; i < n; i++ {
		beta[i+1] = carry(rhs[i], s.lower[i], beta[i], s.denom[i])
		o.OnForward(i, s.alpha[i+1], beta[i+1])
	}

	return backward(s.alpha, beta, o.OnBackward), nil
}
