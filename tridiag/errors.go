package tridiag

import (
	"errors"
	"fmt"
)

// Sentinel errors for tridiagonal solves.
var (
	// ErrDimensionMismatch is returned when the input lengths disagree or the system is empty.
	ErrDimensionMismatch = errors.New("tridiag: dimension mismatch")

	// ErrInvalidCoefficients is returned when the coefficients violate the
	// stability condition. The concrete error is a *CoefficientError.
	ErrInvalidCoefficients = errors.New("tridiag: invalid coefficients")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("tridiag: invalid option supplied")
)

// Check identifies one family of the stability inequalities.
type Check int

const (
	// CheckUpperPositive requires upper[i] > 0 for i < n-1.
	CheckUpperPositive Check = iota + 1

	// CheckLowerPositive requires lower[i] > 0 for i > 0.
	CheckLowerPositive

	// CheckDiagonalNegative requires diag[i] < 0.
	CheckDiagonalNegative

	// CheckDominance requires -diag[i] >= lower[i] + upper[i] (placeholders as 0).
	CheckDominance

	// CheckStrictRow requires -diag[i] > lower[i] + upper[i] for at least one i.
	CheckStrictRow
)

// String returns the inequality in short form.
func (c Check) String() string {
	switch c {
	case CheckUpperPositive:
		return "upper > 0"
	case CheckLowerPositive:
		return "lower > 0"
	case CheckDiagonalNegative:
		return "diag < 0"
	case CheckDominance:
		return "-diag >= lower + upper"
	case CheckStrictRow:
		return "-diag > lower + upper for some row"
	default:
		return fmt.Sprintf("Check(%d)", int(c))
	}
}

// CoefficientError reports the first violated inequality.
//
// Value is the tested quantity: the coefficient itself for the sign checks,
// -diag[Index] for CheckDominance. Bound is the right-hand side of the
// inequality: 0 for the sign checks, lower+upper for CheckDominance.
type CoefficientError struct {
	Check Check
	Index int
	N     int
	Value float64
	Bound float64
}

// Boundary reports whether the failure is in the first or last equation,
// where the dominance check involves a single off-diagonal neighbour.
func (e *CoefficientError) Boundary() bool {
	return e.Index == 0 || e.Index == e.N-1
}

func (e *CoefficientError) Error() string {
	var detail string
	switch e.Check {
	case CheckUpperPositive:
		detail = fmt.Sprintf("upper[%d] = %g must be > 0", e.Index, e.Value)
	case CheckLowerPositive:
		detail = fmt.Sprintf("lower[%d] = %g must be > 0", e.Index, e.Value)
	case CheckDiagonalNegative:
		detail = fmt.Sprintf("diag[%d] = %g must be < 0", e.Index, e.Value)
	case CheckStrictRow:
		detail = "no row is strictly diagonally dominant, matrix is singular"
	default:
		row := "interior row"
		if e.Boundary() {
			row = "boundary row"
		}
		detail = fmt.Sprintf("%s %d not diagonally dominant: -diag = %g < lower+upper = %g",
			row, e.Index, e.Value, e.Bound)
	}

	return ErrInvalidCoefficients.Error() + ": " + detail
}

// Unwrap lets errors.Is match ErrInvalidCoefficients.
func (e *CoefficientError) Unwrap() error { return ErrInvalidCoefficients }

// solveErrorf wraps err with an operation tag, preserving it via %w.
func solveErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
