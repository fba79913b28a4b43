// Package tridiag defines options, hooks and batch inputs for the solver.
package tridiag

import "fmt"

// Option configures a solve via functional arguments.
// A nil Option is recorded and surfaced as ErrOptionViolation.
type Option func(*Options)

// Options holds observer hooks for the two sweeps.
// Hooks only observe; they cannot alter the computation.
type Options struct {
	// OnForward is called after each forward-elimination step with the
	// zero-based equation index i and the new coefficients alpha[i+1], beta[i+1].
	OnForward func(i int, alpha, beta float64)

	// OnBackward is called after each back-substitution step with the
	// equation index i and the solved x[i]. Indices arrive in n-1..0 order.
	OnBackward func(i int, x float64)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with no-op hooks.
func DefaultOptions() Options {
	return Options{
		OnForward:  func(int, float64, float64) {},
		OnBackward: func(int, float64) {},
	}
}

// WithOnForward registers a callback for every forward-elimination step.
func WithOnForward(fn func(i int, alpha, beta float64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnForward = fn
		}
	}
}

// WithOnBackward registers a callback for every back-substitution step.
func WithOnBackward(fn func(i int, x float64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnBackward = fn
		}
	}
}

// buildOptions applies opts over the defaults.
func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for i, opt := range opts {
		if opt == nil {
			o.err = fmt.Errorf("%w: option %d is nil", ErrOptionViolation, i)
			continue
		}
		opt(&o)
	}

	return o, o.err
}

// Problem is one independent system for SolveAll.
type Problem struct {
	Lower []float64
	Diag  []float64
	Upper []float64
	RHS   []float64
}
