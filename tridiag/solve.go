package tridiag

// Solve returns x with A·x = rhs for the tridiagonal A given by lower, diag
// and upper (see the package documentation for the indexing convention).
//
// Algorithm Outline:
//  1. Validate dimensions and the stability condition; nothing is computed
//     if either fails.
//  2. Forward sweep: alpha[i+1] = -upper[i]/denom,
//     beta[i+1] = (rhs[i] - lower[i]*beta[i])/denom,
//     denom = diag[i] + alpha[i]*lower[i], starting from alpha[0] = beta[0] = 0.
//  3. Backward sweep: x[i] = alpha[i+1]*x[i+1] + beta[i+1] from x[n] = 0.
//
// Complexity:
//
//	Time   = O(n)
//	Memory = O(n)
//
// Errors:
//   - ErrDimensionMismatch: unequal lengths or n == 0.
//   - ErrInvalidCoefficients: stability condition violated (*CoefficientError).
//   - ErrOptionViolation: a nil Option.
//
// Inputs are never modified. Identical inputs yield bit-identical output.
func Solve(lower, diag, upper, rhs []float64, opts ...Option) ([]float64, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	if err = Validate(lower, diag, upper, rhs); err != nil {
		return nil, err
	}

	alpha, beta := forward(lower, diag, upper, rhs, o.OnForward)

	return backward(alpha, beta, o.OnBackward), nil
}
