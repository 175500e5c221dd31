package olo

import (
	"github.com/katalvlaran/dendro/costtable"
	"github.com/katalvlaran/dendro/linkage"
)

// crossPair is one candidate partner leaf on the side of a child subtree
// opposite a fixed boundary leaf, together with the already-memoized cost
// of reaching it from that boundary.
type crossPair struct {
	partner int
	cost    float64
}

// crossPairs returns, for boundary leaf b of subtree child, every valid
// "other boundary" m together with M[child][b][m] (or, symmetrically,
// M[child][m][b] — the cost table does not care which side supplied b).
//
// If child is a leaf, b is its own sole leaf and the only valid partner is
// b itself at cost 0 — this is the base-case sentinel M[leaf][b][b] = 0
// that the recursive formula relies on (spec.md §4.4 base cases).
func crossPairs(tree *linkage.Tree, table *costtable.Table, child, b int) []crossPair {
	if tree.IsLeaf(child) {
		return []crossPair{{partner: b, cost: 0}}
	}

	row := tree.Row(child)
	left := tree.Leaves(row.Left)
	right := tree.Leaves(row.Right)
	block := table.Block(child)

	idx, onLeft, _ := table.LocalIndex(child, b)
	if onLeft {
		out := make([]crossPair, len(right))
		for j, m := range right {
			out[j] = crossPair{partner: m, cost: block.Get(idx, j)}
		}

		return out
	}

	out := make([]crossPair, len(left))
	for i, m := range left {
		out[i] = crossPair{partner: m, cost: block.Get(i, idx)}
	}

	return out
}

// preferred reports whether candidate (cost, leaf) should replace the
// current best (bestCost, bestLeaf) under olo's fixed tie-break rule:
// strictly lower cost wins outright; an exact tie prefers the smaller leaf
// index, so the result is deterministic regardless of map/slice iteration
// order (spec.md §4.6).
func preferred(cost float64, leaf int, bestCost float64, bestLeaf int) bool {
	if cost < bestCost {
		return true
	}

	return cost == bestCost && leaf < bestLeaf
}
