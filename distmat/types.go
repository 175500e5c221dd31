// Package distmat is the read-only distance oracle consumed by package olo.
//
// A Matrix answers d(i, j) for leaf indices i, j in O(1), backed either by a
// full square buffer (Dense) or an upper-triangle condensed buffer
// (Condensed) — see spec.md §4.2 / §9 for why both forms are accepted
// explicitly rather than sniffed from length.
package distmat

// Matrix is the read-only distance oracle the DP engine consults. D[i][i]
// must be 0 and D must be symmetric and nonnegative — Validate checks this
// once; At itself does not recheck per call.
type Matrix interface {
	// Dim returns n, the number of leaves.
	Dim() int

	// At returns D[i][j]. Returns ErrOutOfRange if i or j is outside
	// [0, Dim()).
	At(i, j int) (float64, error)
}
