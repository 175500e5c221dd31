package distmat_test

import (
	"testing"

	"github.com/katalvlaran/dendro/distmat"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDense_AtAndShape(t *testing.T) {
	// A 3-leaf path metric: D[i][j] = |i-j|.
	data := []float64{
		0, 1, 2,
		1, 0, 1,
		2, 1, 0,
	}
	m, err := distmat.NewDense(data, 3)
	require.NoError(t, err)
	assert.Equal(t, 3, m.Dim())

	v, err := m.At(0, 2)
	require.NoError(t, err)
	assert.Equal(t, 2.0, v)

	_, err = m.At(0, 3)
	assert.ErrorIs(t, err, distmat.ErrOutOfRange)
}

func TestNewDense_ShapeMismatch(t *testing.T) {
	_, err := distmat.NewDense([]float64{0, 1, 1, 0}, 3)
	assert.ErrorIs(t, err, distmat.ErrDistanceShapeMismatch)
}

func TestCondensed_MatchesDenseEquivalent(t *testing.T) {
	// n=4 path metric. Condensed upper triangle, row-major:
	// (0,1)=1 (0,2)=2 (0,3)=3 (1,2)=1 (1,3)=2 (2,3)=1
	cond, err := distmat.NewCondensed([]float64{1, 2, 3, 1, 2, 1}, 4)
	require.NoError(t, err)

	dense := [][]float64{
		{0, 1, 2, 3},
		{1, 0, 1, 2},
		{2, 1, 0, 1},
		{3, 2, 1, 0},
	}
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			v, err := cond.At(i, j)
			require.NoError(t, err)
			assert.Equal(t, dense[i][j], v, "At(%d,%d)", i, j)
		}
	}
}

func TestNewCondensed_ShapeMismatch(t *testing.T) {
	_, err := distmat.NewCondensed([]float64{1, 2, 3}, 4) // needs 6
	assert.ErrorIs(t, err, distmat.ErrDistanceShapeMismatch)
}

func TestValidate_RejectsNonzeroDiagonal(t *testing.T) {
	m, err := distmat.NewDense([]float64{1, 1, 1, 0}, 2)
	require.NoError(t, err)
	assert.ErrorIs(t, distmat.Validate(m), distmat.ErrInvalidDistance)
}

func TestValidate_RejectsNegative(t *testing.T) {
	m, err := distmat.NewDense([]float64{0, -1, -1, 0}, 2)
	require.NoError(t, err)
	assert.ErrorIs(t, distmat.Validate(m), distmat.ErrInvalidDistance)
}

func TestValidate_RejectsAsymmetry(t *testing.T) {
	m, err := distmat.NewDense([]float64{0, 1, 2, 0}, 2)
	require.NoError(t, err)
	assert.ErrorIs(t, distmat.Validate(m), distmat.ErrInvalidDistance)
}

func TestValidate_RejectsNaN(t *testing.T) {
	nan := 0.0
	nan = nan / nan
	m, err := distmat.NewDense([]float64{0, nan, nan, 0}, 2)
	require.NoError(t, err)
	assert.ErrorIs(t, distmat.Validate(m), distmat.ErrInvalidDistance)
}

func TestValidate_AcceptsCondensed(t *testing.T) {
	m, err := distmat.NewCondensed([]float64{5}, 2)
	require.NoError(t, err)
	assert.NoError(t, distmat.Validate(m))
}
