package olo

import "github.com/katalvlaran/dendro/linkage"

// ApplySwaps produces the reordered linkage table: row i's Left/Right are
// exchanged wherever swaps[i] is true, and left untouched otherwise. Height
// and Size are preserved verbatim — swapping children changes the layout,
// never the topology or the merge heights (spec.md §5, "topology and
// heights preservation").
func ApplySwaps(rows []linkage.Row, swaps []bool) []linkage.Row {
	out := make([]linkage.Row, len(rows))
	for i, row := range rows {
		if i < len(swaps) && swaps[i] {
			row.Left, row.Right = row.Right, row.Left
		}
		out[i] = row
	}

	return out
}
