// Package olo ties linkage, distmat, and costtable together into the
// public OptimalLeafOrdering entry point.
//
//	rows := []linkage.Row{ /* ... */ }
//	d, err := distmat.NewDense(flat, n)
//	ordered, err := olo.OptimalLeafOrdering(rows, d, olo.DefaultOptions())
//
// The returned rows describe the same tree — same children (up to
// Left/Right order), same heights, same sizes — with each internal node's
// children possibly swapped so that the induced leaf order minimizes the
// sum of adjacent distances.
package olo
