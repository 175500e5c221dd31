// Package olo: sentinel error set.
//
// olo re-exports nothing from linkage/distmat/costtable; callers branch
// with errors.Is against whichever package's sentinel the failure
// originated in (linkage.ErrMalformedTree, distmat.ErrDistanceShapeMismatch,
// distmat.ErrInvalidDistance, costtable.ErrOutOfMemory) or the two defined
// here for olo-level concerns.
package olo

import "errors"

var (
	// ErrEmptyInput indicates a degenerate call with no rows and no
	// leaves in the supplied distance matrix either.
	ErrEmptyInput = errors.New("olo: empty input")

	// ErrBadOptions indicates an invalid Options combination.
	ErrBadOptions = errors.New("olo: invalid options")
)
