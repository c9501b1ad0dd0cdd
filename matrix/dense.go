// Package matrix: Dense is a concrete, row-major implementation of the
// Distances interface, storing elements in a flat slice.
package matrix

import (
	"fmt"
	"math"

	"github.com/katalvlaran/rebalance/core"
)

// Distances is the accessor the neighbor index reads distance rows from.
type Distances interface {
	// Size returns the number of nodes covered by the matrix.
	Size() int

	// Row returns the distances from node i to every node, ordered by index.
	Row(i int) ([]float64, error)
}

// denseErrorf wraps an underlying error with Dense method context.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is an n×n row-major matrix of distances.
type Dense struct {
	n    int       // order of the square matrix
	data []float64 // flat backing storage, length == n*n
}

// NewDense creates an n×n Dense matrix initialized to zeros (no edges).
// n == 0 yields an empty matrix; n < 0 is ErrBadShape.
// Complexity: O(n²) time and memory.
func NewDense(n int) (*Dense, error) {
	if n < 0 {
		return nil, fmt.Errorf("NewDense(%d): %w", n, ErrBadShape)
	}

	return &Dense{n: n, data: make([]float64, n*n)}, nil
}

// FromRows builds a Dense matrix from a square slice of rows.
// Stage 1 (Validate): every row must have len(rows) entries (ErrBadShape).
// Stage 2 (Execute): copy values through Set, which rejects bad distances.
// Complexity: O(n²).
func FromRows(rows [][]float64) (*Dense, error) {
	n := len(rows)
	m, err := NewDense(n)
	if err != nil {
		return nil, err
	}

	var i, j int
	for i = 0; i < n; i++ {
		if len(rows[i]) != n {
			return nil, fmt.Errorf("FromRows: row %d has %d entries, want %d: %w", i, len(rows[i]), n, ErrBadShape)
		}
		for j = 0; j < n; j++ {
			if err = m.Set(i, j, rows[i][j]); err != nil {
				return nil, fmt.Errorf("FromRows: %w", err)
			}
		}
	}

	return m, nil
}

// Size returns the order of the matrix.
func (m *Dense) Size() int { return m.n }

// indexOf computes the flat index for (row, col) or returns core.ErrInvalidIndex.
func (m *Dense) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.n || col < 0 || col >= m.n {
		return 0, denseErrorf(method, row, col, core.ErrInvalidIndex)
	}

	return row*m.n + col, nil
}

// At retrieves the distance from row to col.
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set assigns the distance from row to col.
// NaN and negative values are rejected with ErrBadDistance; +Inf is allowed.
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	if math.IsNaN(v) || v < 0 {
		return denseErrorf("Set", row, col, fmt.Errorf("%w: %v", ErrBadDistance, v))
	}
	m.data[idx] = v

	return nil
}

// SetSymmetric assigns v to both (i,j) and (j,i).
func (m *Dense) SetSymmetric(i, j int, v float64) error {
	if err := m.Set(i, j, v); err != nil {
		return err
	}

	return m.Set(j, i, v)
}

// Row returns a copy of row i.
// Complexity: O(n).
func (m *Dense) Row(i int) ([]float64, error) {
	if i < 0 || i >= m.n {
		return nil, fmt.Errorf("Dense.Row(%d): %w", i, core.ErrInvalidIndex)
	}
	out := make([]float64, m.n)
	copy(out, m.data[i*m.n:(i+1)*m.n])

	return out, nil
}

var _ Distances = (*Dense)(nil)
