// Package olo: the bottom-up DP fill (spec.md §4.4).
package olo

import (
	"context"
	"math"

	"github.com/katalvlaran/dendro/costtable"
	"github.com/katalvlaran/dendro/distmat"
	"github.com/katalvlaran/dendro/linkage"
	"golang.org/x/sync/errgroup"
)

// Fill allocates and fills the boundary-cost table for tree under distance
// oracle d, equivalent to FillContext(context.Background(), ...).
func Fill(tree *linkage.Tree, d distmat.Matrix, opts Options) (*costtable.Table, error) {
	return FillContext(context.Background(), tree, d, opts)
}

// FillContext is Fill with cancellation: ctx is checked between nodes (or,
// in parallel mode, between tree levels), not inside a single node's fill —
// a node's cost is always computed as an atomic unit.
func FillContext(ctx context.Context, tree *linkage.Tree, d distmat.Matrix, opts Options) (*costtable.Table, error) {
	argmin := resolveArgmin(opts.Argmin, tree.NumLeaves())
	table, err := costtable.Alloc(tree, costtable.Options{Argmin: argmin, MaxTableBytes: opts.MaxTableBytes})
	if err != nil {
		return nil, err
	}
	if tree.NumLeaves() < 2 {
		return table, nil
	}

	if opts.Parallel {
		if err := fillParallel(ctx, tree, d, table, opts); err != nil {
			return nil, err
		}

		return table, nil
	}

	for v := tree.NumLeaves(); v < tree.NumNodes(); v++ {
		if err := fillNode(tree, d, table, v); err != nil {
			return nil, err
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}
	}

	return table, nil
}

// fillNode computes M[v][u][w] for every boundary pair of internal node v.
//
// For a fixed u ∈ leaves(L), crossPairs(L, u) enumerates every valid "other
// boundary" m of L together with M[L][u][m] (or the trivial zero-cost
// sentinel if L is itself a leaf). C(u, k) — the cubic-time trick of
// spec.md §4.4 — then folds those in with D(m, k) once per k ∈ leaves(R),
// letting every w share the same precomputed C(u, ·) rather than
// re-scanning leaves(L) per (u, w) pair. The symmetric crossPairs(R, w)
// lookup plays the same role on the R side.
//
// Complexity per v: O(|L|·|R|·(|L|+|R|)) — spec.md §4.4.
func fillNode(tree *linkage.Tree, d distmat.Matrix, table *costtable.Table, v int) error {
	row := tree.Row(v)
	leavesL := tree.Leaves(row.Left)
	leavesR := tree.Leaves(row.Right)
	block := table.Block(v)

	type partial struct {
		cost float64
		m    int
	}

	for uLocal, u := range leavesL {
		pairsL := crossPairs(tree, table, row.Left, u)

		// C(u, k) for every k ∈ leaves(R), tracking the minimizing m.
		c := make(map[int]partial, len(leavesR))
		for _, k := range leavesR {
			best := partial{cost: math.Inf(1), m: -1}
			for _, pl := range pairsL {
				dmk, err := d.At(pl.partner, k)
				if err != nil {
					return err
				}
				cand := pl.cost + dmk
				if preferred(cand, pl.partner, best.cost, best.m) {
					best = partial{cost: cand, m: pl.partner}
				}
			}
			c[k] = best
		}

		for wLocal, w := range leavesR {
			pairsR := crossPairs(tree, table, row.Right, w)

			bestCost := math.Inf(1)
			bestM, bestK := -1, -1
			for _, pr := range pairsR {
				ck := c[pr.partner]
				cand := ck.cost + pr.cost
				if preferred(cand, pr.partner, bestCost, bestK) {
					bestCost = cand
					bestK = pr.partner
					bestM = ck.m
				}
			}

			block.Set(uLocal, wLocal, bestCost)
			block.SetArgmin(uLocal, wLocal, bestM, bestK)
		}
	}

	return nil
}

// nodeLevels groups internal nodes by height (leaves are height 0), in
// ascending order, so that every node in level i depends only on nodes in
// levels < i — the schedule fillParallel needs to fan a level out across
// goroutines while still respecting the bottom-up dependency order.
func nodeLevels(tree *linkage.Tree) [][]int {
	numNodes := tree.NumNodes()
	level := make([]int, numNodes)

	levels := map[int][]int{}
	maxLevel := 0
	for v := tree.NumLeaves(); v < numNodes; v++ {
		row := tree.Row(v)
		lvl := 1 + max(level[row.Left], level[row.Right])
		level[v] = lvl
		levels[lvl] = append(levels[lvl], v)
		if lvl > maxLevel {
			maxLevel = lvl
		}
	}

	out := make([][]int, maxLevel)
	for lvl := 1; lvl <= maxLevel; lvl++ {
		out[lvl-1] = levels[lvl]
	}

	return out
}

// fillParallel fills one level of the tree at a time, fanning the nodes
// within each level out across an errgroup before moving to the next
// level — grounded on golang.org/x/sync/errgroup's worker-pool pattern for
// bounding concurrency with SetLimit.
func fillParallel(ctx context.Context, tree *linkage.Tree, d distmat.Matrix, table *costtable.Table, opts Options) error {
	for _, nodesAtLevel := range nodeLevels(tree) {
		g, gctx := errgroup.WithContext(ctx)
		if opts.MaxWorkers > 0 {
			g.SetLimit(opts.MaxWorkers)
		}

		for _, v := range nodesAtLevel {
			g.Go(func() error {
				select {
				case <-gctx.Done():
					return gctx.Err()
				default:
				}

				return fillNode(tree, d, table, v)
			})
		}

		if err := g.Wait(); err != nil {
			return err
		}
	}

	return nil
}
