// Package distmat: condensed (upper-triangle) distance storage.
//
// Condensed mirrors the scipy "condensed distance matrix" layout: a flat
// buffer of length n(n-1)/2 holding only the strict upper triangle,
// row-major, with the diagonal and lower triangle implied.
package distmat

import "fmt"

// Condensed is an upper-triangle distance matrix of length n(n-1)/2.
// Symmetric and zero-diagonal by construction — there is no way to express
// an asymmetric or nonzero-diagonal value in this layout.
type Condensed struct {
	n    int
	data []float64
}

var _ Matrix = (*Condensed)(nil)

// NewCondensed wraps data as an n-leaf Condensed matrix. data is not
// copied. Returns ErrDistanceShapeMismatch if len(data) != n*(n-1)/2.
func NewCondensed(data []float64, n int) (*Condensed, error) {
	if n <= 0 || len(data) != n*(n-1)/2 {
		return nil, ErrDistanceShapeMismatch
	}

	return &Condensed{n: n, data: data}, nil
}

// Dim returns n.
func (m *Condensed) Dim() int { return m.n }

// At returns D[i][j] in O(1) via the condensed offset formula from spec.md
// §4.2: for i != j, letting lo = min(i,j), hi = max(i,j),
//
//	offset = lo*(2n - lo - 1)/2 + (hi - lo - 1).
func (m *Condensed) At(i, j int) (float64, error) {
	if i < 0 || i >= m.n || j < 0 || j >= m.n {
		return 0, fmt.Errorf("Condensed.At(%d,%d): %w", i, j, ErrOutOfRange)
	}
	if i == j {
		return 0, nil
	}

	lo, hi := i, j
	if lo > hi {
		lo, hi = hi, lo
	}
	offset := lo*(2*m.n-lo-1)/2 + (hi - lo - 1)

	return m.data[offset], nil
}
