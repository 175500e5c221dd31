// Package linkage is the tree model consumed by package olo.
//
// It reconstructs an immutable binary hierarchical-clustering tree from a
// linkage table (the format scipy/fastcluster call a linkage matrix) and
// caches, once per node, the ordered set of leaves beneath it. Nothing
// about a Tree ever changes after New returns.
//
//	rows := []linkage.Row{
//	    {Left: 0, Right: 1, Height: 1, Size: 2},
//	    {Left: 2, Right: 3, Height: 1, Size: 2},
//	    {Left: 4, Right: 5, Height: 2, Size: 4},
//	}
//	tree, err := linkage.New(rows)
//
// package olo builds the boundary-cost table over this Tree; linkage itself
// has no notion of distances or optimality.
package linkage
