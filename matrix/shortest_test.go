package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rebalance/matrix"
)

// TestShortestPaths: a path 0–1–2 plus an isolated node 3.
func TestShortestPaths(t *testing.T) {
	links, err := matrix.FromRows([][]float64{
		{0, 2, 0, 0},
		{2, 0, 3, 0},
		{0, 3, 0, 0},
		{0, 0, 0, 0},
	})
	require.NoError(t, err)

	d, err := matrix.ShortestPaths(links)
	require.NoError(t, err)

	row, err := d.Row(0)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 2, 5, math.Inf(1)}, row)

	row, err = d.Row(3)
	require.NoError(t, err)
	assert.Equal(t, []float64{math.Inf(1), math.Inf(1), math.Inf(1), 0}, row)

	// Input is not modified.
	v, err := links.At(0, 2)
	require.NoError(t, err)
	assert.Zero(t, v)
}

// TestShortestPaths_Shortcut prefers a two-hop path over a long direct link.
func TestShortestPaths_Shortcut(t *testing.T) {
	links, err := matrix.FromRows([][]float64{
		{0, 1, 10},
		{1, 0, 1},
		{10, 1, 0},
	})
	require.NoError(t, err)

	d, err := matrix.ShortestPaths(links)
	require.NoError(t, err)
	v, err := d.At(0, 2)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, v, 1e-12)
}

func TestShortestPaths_Nil(t *testing.T) {
	_, err := matrix.ShortestPaths(nil)
	assert.ErrorIs(t, err, matrix.ErrBadShape)
}
