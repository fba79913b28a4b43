// Package matrix_test contains unit tests for the matrix-vector kernels.
package matrix_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/sweep/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMatVec_FastPath checks a hand-computed product on *Dense.
func TestMatVec_FastPath(t *testing.T) {
	t.Parallel()

	m := NewFilledDense(t, 2, 3, []float64{
		1, 2, 3,
		4, 5, 6,
	})
	y, err := matrix.MatVec(m, []float64{1, 0, -1})
	require.NoError(t, err)
	assert.Equal(t, []float64{-2, -2}, y)
}

// TestMatVec_FallbackMatchesFastPath ensures the interface path yields
// bitwise-identical results to the *Dense path.
func TestMatVec_FallbackMatchesFastPath(t *testing.T) {
	t.Parallel()

	const n = 6
	rng := rand.New(rand.NewSource(7))
	m := MustDense(t, n, n)
	x := make([]float64, n)
	var i, j int
	for i = 0; i < n; i++ {
		x[i] = rng.Float64()*2 - 1
		for j = 0; j < n; j++ {
			MustSet(t, m, i, j, rng.Float64()*2-1)
		}
	}

	fast, err := matrix.MatVec(m, x)
	require.NoError(t, err)
	slow, err := matrix.MatVec(hide{m}, x)
	require.NoError(t, err)
	for i = 0; i < n; i++ {
		assert.Equal(t, math.Float64bits(fast[i]), math.Float64bits(slow[i]), "row %d", i)
	}
}

func TestMatVec_Errors(t *testing.T) {
	t.Parallel()

	_, err := matrix.MatVec(nil, []float64{1})
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)

	_, err = matrix.MatVec(MustDense(t, 2, 2), []float64{1})
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.MatVec(MustDense(t, 2, 2), nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestVecAllClose(t *testing.T) {
	t.Parallel()

	ok, err := matrix.VecAllClose([]float64{1, 2}, []float64{1 + 1e-12, 2}, 1e-9, 0)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = matrix.VecAllClose([]float64{1, 2}, []float64{1.1, 2}, 1e-9, 1e-9)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = matrix.VecAllClose([]float64{math.NaN()}, []float64{math.NaN()}, 1, 1)
	require.NoError(t, err)
	assert.False(t, ok, "NaN is never close")

	_, err = matrix.VecAllClose([]float64{1}, []float64{1, 2}, 0, 0)
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.VecAllClose([]float64{1}, []float64{1}, -1, 0)
	assert.ErrorIs(t, err, matrix.ErrNaNInf)
}
