package tridiag_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/sweep/matrix"
	"github.com/stretchr/testify/require"
)

// laplacian returns the 5×5 second-difference system with rhs [1,0,0,0,1],
// whose solution is x = -1 everywhere. Interior rows are dominant with
// equality, boundary rows strictly.
func laplacian() (lower, diag, upper, rhs []float64) {
	return []float64{0, 1, 1, 1, 1},
		[]float64{-2, -2, -2, -2, -2},
		[]float64{1, 1, 1, 1, 0},
		[]float64{1, 0, 0, 0, 1}
}

// randomSystem builds a valid system of size n with strict dominance and a
// random right-hand side. Placeholders are filled with junk on purpose.
func randomSystem(rng *rand.Rand, n int) (lower, diag, upper, rhs []float64) {
	lower = make([]float64, n)
	diag = make([]float64, n)
	upper = make([]float64, n)
	rhs = make([]float64, n)
	for i := 0; i < n; i++ {
		lower[i] = 0.01 + rng.Float64()*3
		upper[i] = 0.01 + rng.Float64()*3
		rhs[i] = rng.Float64()*200 - 100
	}
	lower[0] = rng.Float64()*10 - 5
	upper[n-1] = rng.Float64()*10 - 5
	for i := 0; i < n; i++ {
		var l, u float64
		if i > 0 {
			l = lower[i]
		}
		if i < n-1 {
			u = upper[i]
		}
		diag[i] = -(l + u) - 0.1 - rng.Float64()
	}

	return lower, diag, upper, rhs
}

// requireSolves asserts A·x ≈ rhs using the dense assembly from package matrix.
func requireSolves(t *testing.T, lower, diag, upper, rhs, x []float64) {
	t.Helper()
	a, err := matrix.NewTridiagonal(lower, diag, upper)
	require.NoError(t, err)
	ax, err := matrix.MatVec(a, x)
	require.NoError(t, err)
	ok, err := matrix.VecAllClose(ax, rhs, 1e-9, 1e-9)
	require.NoError(t, err)
	require.Truef(t, ok, "A·x = %v, want %v", ax, rhs)
}

// clone copies a slice so tests can detect mutation of inputs.
func clone(s []float64) []float64 {
	return append([]float64(nil), s...)
}
