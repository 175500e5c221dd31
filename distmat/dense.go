// Package distmat: square (full n×n) distance storage.
//
// Grounded on matrix/dense.go's flat row-major buffer and bounds-checked
// accessors, specialized here to a read-only distance oracle rather than a
// general mutable linear-algebra matrix.
package distmat

import "fmt"

// Dense is a square n×n distance matrix, stored as a flat row-major slice of
// length n*n. The caller supplies the full matrix, including both triangles
// (Validate checks they agree).
type Dense struct {
	n    int
	data []float64
}

var _ Matrix = (*Dense)(nil)

// NewDense wraps data as an n×n Dense matrix. data is not copied; the
// caller must not mutate it afterward. Returns ErrDistanceShapeMismatch if
// len(data) != n*n.
func NewDense(data []float64, n int) (*Dense, error) {
	if n <= 0 || len(data) != n*n {
		return nil, ErrDistanceShapeMismatch
	}

	return &Dense{n: n, data: data}, nil
}

// Dim returns n.
func (m *Dense) Dim() int { return m.n }

// At returns D[i][j] in O(1).
func (m *Dense) At(i, j int) (float64, error) {
	if i < 0 || i >= m.n || j < 0 || j >= m.n {
		return 0, fmt.Errorf("Dense.At(%d,%d): %w", i, j, ErrOutOfRange)
	}

	return m.data[i*m.n+j], nil
}
