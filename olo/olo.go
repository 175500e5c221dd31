// Package olo: entry point.
package olo

import (
	"context"

	"github.com/katalvlaran/dendro/distmat"
	"github.com/katalvlaran/dendro/linkage"
)

// OptimalLeafOrdering reorders the linkage table rows to minimize the sum
// of adjacent-leaf distances in the induced leaf layout, without changing
// the tree's topology, merge heights, or subtree sizes. Equivalent to
// OptimalLeafOrderingContext(context.Background(), ...).
func OptimalLeafOrdering(rows []linkage.Row, d distmat.Matrix, opts Options) ([]linkage.Row, error) {
	return OptimalLeafOrderingContext(context.Background(), rows, d, opts)
}

// OptimalLeafOrderingContext is OptimalLeafOrdering with cancellation.
//
// Stage 1 (Validate): reject malformed Options, an empty tree paired with
// an empty distance matrix, a tree/matrix leaf-count mismatch, or an
// invalid distance matrix (spec.md §6).
// Stage 2 (Execute): build the Tree, fill the boundary-cost table, and
// reconstruct the optimal per-node swap decisions.
// Stage 3 (Execute): apply the swaps and return the reordered rows.
//
// For n = 1 (rows empty, d either nil or describing a single leaf), there
// is nothing to order: rows is returned unchanged with no tree built and no
// table allocated.
func OptimalLeafOrderingContext(ctx context.Context, rows []linkage.Row, d distmat.Matrix, opts Options) ([]linkage.Row, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	if len(rows) == 0 {
		if d != nil && d.Dim() == 0 {
			return nil, ErrEmptyInput
		}
		if d != nil && d.Dim() != 1 {
			return nil, distmat.ErrDistanceShapeMismatch
		}

		return rows, nil
	}

	tree, err := linkage.New(rows)
	if err != nil {
		return nil, err
	}

	if d == nil || d.Dim() != tree.NumLeaves() {
		return nil, distmat.ErrDistanceShapeMismatch
	}
	if err := distmat.Validate(d); err != nil {
		return nil, err
	}

	table, err := FillContext(ctx, tree, d, opts)
	if err != nil {
		return nil, err
	}

	swaps := Reconstruct(tree, d, table)

	return ApplySwaps(rows, swaps), nil
}
