// Package distmat: sentinel error set.
//
// All public functions return these sentinels (never a bare fmt.Errorf) so
// callers can branch with errors.Is; positional context is attached with
// %w wrapping at the call site.
package distmat

import "errors"

var (
	// ErrDistanceShapeMismatch indicates the supplied backing slice does
	// not have the length required for the declared leaf count n (n*n for
	// Dense, n*(n-1)/2 for Condensed).
	ErrDistanceShapeMismatch = errors.New("distmat: distance data does not match leaf count")

	// ErrOutOfRange indicates a leaf index outside [0, n) was requested.
	ErrOutOfRange = errors.New("distmat: leaf index out of range")

	// ErrInvalidDistance indicates a NaN, ±Inf, or negative entry, or a
	// nonzero diagonal, or (for Dense) an asymmetric entry.
	ErrInvalidDistance = errors.New("distmat: invalid distance value")
)
