package tridiag

// The three step functions below are the only places where arithmetic on
// coefficients happens. Solve and System share them so that both paths
// evaluate identical expressions and return bit-identical results.

// eliminate returns the denominator and alpha[i+1] for one forward step.
// Under a validated system denom is strictly negative.
func eliminate(d, l, u, alphaPrev float64) (denom, alpha float64) {
	denom = d + alphaPrev*l

	return denom, -u / denom
}

// carry returns beta[i+1] for one forward step.
func carry(f, l, betaPrev, denom float64) float64 {
	return (f - l*betaPrev) / denom
}

// substitute returns x[i] from x[i+1] for one backward step.
func substitute(alpha, beta, xNext float64) float64 {
	return alpha*xNext + beta
}

// forward runs the elimination recurrence over a validated system.
//
//	alpha[0] = beta[0] = 0
//	for i = 0..n-1:
//	  denom      = diag[i] + alpha[i]*lower[i]
//	  alpha[i+1] = -upper[i] / denom
//	  beta[i+1]  = (rhs[i] - lower[i]*beta[i]) / denom
//
// Placeholders are read through lowerAt/upperAt. Each step depends on the
// previous one, so the loop is strictly sequential.
func forward(lower, diag, upper, rhs []float64, onStep func(i int, alpha, beta float64)) (alpha, beta []float64) {
	n := len(diag)
	alpha = make([]float64, n+1)
	beta = make([]float64, n+1)

	var l, denom float64
	for i := 0; i < n; i++ {
		l = lowerAt(lower, i)
		denom, alpha[i+1] = eliminate(diag[i], l, upperAt(upper, i), alpha[i])
		beta[i+1] = carry(rhs[i], l, beta[i], denom)
		onStep(i, alpha[i+1], beta[i+1])
	}

	return alpha, beta
}

// backward runs back-substitution from the forward coefficients only.
//
//	x[n] = 0
//	for i = n-1..0: x[i] = alpha[i+1]*x[i+1] + beta[i+1]
//
// The auxiliary x[n] is dropped from the result.
func backward(alpha, beta []float64, onStep func(i int, x float64)) []float64 {
	n := len(alpha) - 1
	x := make([]float64, n+1)

	for i := n - 1; i >= 0; i-- {
		x[i] = substitute(alpha[i+1], beta[i+1], x[i+1])
		onStep(i, x[i])
	}

	return x[:n:n]
}
