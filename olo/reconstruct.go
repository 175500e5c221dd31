// Package olo: top-down reconstruction (spec.md §4.5).
package olo

import (
	"math"

	"github.com/katalvlaran/dendro/costtable"
	"github.com/katalvlaran/dendro/distmat"
	"github.com/katalvlaran/dendro/linkage"
)

// Reconstruct walks the filled cost table top-down from the root's global
// argmin, returning one swap decision per linkage row: swaps[i] reports
// whether internal node tree.NumLeaves()+i must swap its Left/Right
// children to realize the optimal layout.
//
// The walk is iterative (an explicit stack), not recursive, so
// reconstruction does not grow the call stack proportionally to tree depth
// — spec.md §9 calls out skewed trees of n in the tens of thousands as a
// realistic input.
func Reconstruct(tree *linkage.Tree, d distmat.Matrix, table *costtable.Table) []bool {
	n := tree.NumLeaves()
	if n < 2 {
		return nil
	}
	swaps := make([]bool, n-1)

	u, w := globalArgmin(tree, table)

	type frame struct {
		v, a, b int
	}
	stack := []frame{{v: tree.Root(), a: u, b: w}}

	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if tree.IsLeaf(f.v) {
			continue
		}

		row := tree.Row(f.v)
		i := f.v - n

		// f.a is always this subtree's own leftmost boundary leaf, f.b its
		// rightmost (an invariant maintained by every push below, seeded at
		// the root by globalArgmin's (u, w) convention). a and b straddle
		// row.Left/row.Right by construction, so exactly one is found on
		// the left side.
		var leftLeaf, rightLeaf int
		var swap bool
		if _, onLeft, _ := table.LocalIndex(f.v, f.a); onLeft {
			leftLeaf, rightLeaf = f.a, f.b
			swap = false // the subtree's leftmost leaf is already in Left.
		} else {
			leftLeaf, rightLeaf = f.b, f.a
			swap = true // the subtree's leftmost leaf is in Right instead.
		}
		swaps[i] = swap

		storedM, storedK, ok := argminFor(tree, table, d, f.v, leftLeaf, rightLeaf)
		if !ok {
			continue
		}

		// storedM is the other boundary of row.Left's own layout, storedK
		// the other boundary of row.Right's — independent of which side
		// plays "leftmost" vs "rightmost" at this node.
		if !swap {
			stack = append(stack,
				frame{v: row.Left, a: f.a, b: storedM},
				frame{v: row.Right, a: storedK, b: f.b},
			)
		} else {
			stack = append(stack,
				frame{v: row.Right, a: f.a, b: storedK},
				frame{v: row.Left, a: storedM, b: f.b},
			)
		}
	}

	return swaps
}

// globalArgmin finds the (u, w) pair minimizing M[root][u][w], the overall
// optimal layout's outer boundary leaves.
func globalArgmin(tree *linkage.Tree, table *costtable.Table) (int, int) {
	root := tree.Root()
	row := tree.Row(root)
	leavesL := tree.Leaves(row.Left)
	leavesR := tree.Leaves(row.Right)
	block := table.Block(root)

	bestCost := math.Inf(1)
	bestU, bestW := leavesL[0], leavesR[0]
	for uLocal, u := range leavesL {
		for wLocal, w := range leavesR {
			cost := block.Get(uLocal, wLocal)
			if cost < bestCost || (cost == bestCost && (u < bestU || (u == bestU && w < bestW))) {
				bestCost = cost
				bestU, bestW = u, w
			}
		}
	}

	return bestU, bestW
}

// argminFor returns the join leaves (m, k) for node v's boundary pair
// (leftLeaf ∈ leaves(row.Left), rightLeaf ∈ leaves(row.Right)), from
// stored argmin data if available, or by re-deriving it from the already
// filled child tables otherwise. ok is false only if v is a leaf (no
// further recursion needed).
func argminFor(tree *linkage.Tree, table *costtable.Table, d distmat.Matrix, v, leftLeaf, rightLeaf int) (m, k int, ok bool) {
	if tree.IsLeaf(v) {
		return 0, 0, false
	}

	row := tree.Row(v)
	block := table.Block(v)

	aIdx, _, _ := table.LocalIndex(v, leftLeaf)
	bIdx, _, _ := table.LocalIndex(v, rightLeaf)

	if sm, sk, stored := block.Argmin(aIdx, bIdx); stored {
		return sm, sk, true
	}

	return recomputeArgmin(tree, table, d, row, leftLeaf, rightLeaf)
}

// recomputeArgmin re-derives the join leaves for one boundary pair by
// re-scanning the same recurrence fillNode used, without the C(u, k)
// amortization across the whole node — acceptable because, unlike fillNode,
// it runs once per internal node during reconstruction rather than once per
// boundary pair (costtable.Recompute, spec.md §4.5).
func recomputeArgmin(tree *linkage.Tree, table *costtable.Table, d distmat.Matrix, row linkage.Row, leftLeaf, rightLeaf int) (int, int, bool) {
	pairsL := crossPairs(tree, table, row.Left, leftLeaf)
	pairsR := crossPairs(tree, table, row.Right, rightLeaf)

	bestCost := math.Inf(1)
	bestM, bestK := -1, -1
	for _, pl := range pairsL {
		for _, pr := range pairsR {
			dmk, err := d.At(pl.partner, pr.partner)
			if err != nil {
				continue
			}
			cand := pl.cost + dmk + pr.cost
			if cand < bestCost ||
				(cand == bestCost && (pl.partner < bestM || (pl.partner == bestM && pr.partner < bestK))) {
				bestCost = cand
				bestM, bestK = pl.partner, pr.partner
			}
		}
	}

	return bestM, bestK, true
}
