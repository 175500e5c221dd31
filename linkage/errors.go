// Package linkage: sentinel error.
//
// New returns this sentinel — never a raw fmt.Errorf with no %w wrapping —
// so callers can branch with errors.Is. Positional context (offending
// row/child index) is attached via %w wrapping at the call site; the
// sentinel itself carries no runtime values.
package linkage

import "errors"

// ErrMalformedTree indicates a child index out of range, a row count
// that does not match n-1 for the implied leaf count, or a topology
// that is not exactly binary (a node reachable from more than one
// parent, or not reachable from the root at all).
var ErrMalformedTree = errors.New("linkage: malformed tree")
