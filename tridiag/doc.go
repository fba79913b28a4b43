// Package tridiag solves tridiagonal linear systems A·x = F with the
// double-sweep (Thomas) algorithm in O(n) time and O(n) memory.
//
// 🚀 What is a tridiagonal system?
//
//	A matrix whose nonzero entries sit on the main diagonal and its two
//	neighbours. Such systems arise from:
//	  • Finite-difference discretisations of 1-D boundary value problems
//	  • Cubic spline interpolation
//	  • Implicit time stepping (Crank–Nicolson, ADI)
//
// ✨ Key features:
//   - strict up-front validation: a system that violates the stability
//     condition is rejected, never solved approximately
//   - deterministic, bit-identical output for identical input
//   - NewSystem factorises the coefficients once for many right-hand sides
//   - SolveAll runs independent systems concurrently with a bounded pool
//   - observer hooks (OnForward, OnBackward) for tracing the sweeps
//
// Indexing convention:
//
//	All four sequences have length n. In equation i (zero-based)
//
//	  lower[i]·x[i-1] + diag[i]·x[i] + upper[i]·x[i+1] = rhs[i]
//
//	lower[0] and upper[n-1] have no unknown to multiply. They are
//	placeholders: callers must supply a value, but it is neither
//	validated nor read.
//
// Stability condition (checked by Validate):
//
//	lower[i] > 0           for i = 1..n-1
//	upper[i] > 0           for i = 0..n-2
//	diag[i]  < 0           for all i
//	-diag[i] >= lower[i] + upper[i], with the placeholders counted as 0
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/sweep/tridiag"
//
//	x, err := tridiag.Solve(lower, diag, upper, rhs)
//	if errors.Is(err, tridiag.ErrInvalidCoefficients) {
//	  var ce *tridiag.CoefficientError
//	  errors.As(err, &ce) // ce.Check, ce.Index
//	}
//
// Performance:
//
//   - Time:   O(n) per solve; both sweeps are strictly sequential
//   - Memory: O(n) auxiliary (alpha, beta)
//
// Package matrix can assemble the dense A from the same sequences for
// residual checks.
package tridiag
