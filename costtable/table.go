// Package costtable: table allocation.
package costtable

import (
	"fmt"

	"github.com/katalvlaran/dendro/linkage"
)

// Table is the per-node collection of Blocks for a Tree. Only internal
// nodes have a non-nil Block; leaves never do.
type Table struct {
	blocks []*Block // indexed by node v, len == tree.NumNodes()

	// leftLocal/rightLocal give leaf -> local index within leaves(row.Left)
	// / leaves(row.Right) for each internal node v, built once here so
	// LocalIndex is O(1) instead of a linear scan over tree.Leaves(...).
	leftLocal, rightLocal []map[int]int32
}

// Alloc allocates one Block per internal node of tree, sized
// |leaves(L)| × |leaves(R)|. Returns ErrOutOfMemory, wrapped with the
// projected total size in bytes, before any Block is allocated if the
// projected total allocation would exceed opts.MaxTableBytes
// (0 = unlimited) — the systems-language stand-in for spec.md §7's resource
// errors, since a failing make call in Go panics rather than returning an
// error.
//
// Complexity: O(n^2) total across all blocks (spec.md §4.3).
func Alloc(tree *linkage.Tree, opts Options) (*Table, error) {
	n := tree.NumLeaves()
	if n == 1 {
		return &Table{blocks: make([]*Block, 1)}, nil
	}

	blocks := make([]*Block, tree.NumNodes())
	leftLocal := make([]map[int]int32, tree.NumNodes())
	rightLocal := make([]map[int]int32, tree.NumNodes())

	if opts.MaxTableBytes > 0 {
		var totalCells int64
		for v := n; v < tree.NumNodes(); v++ {
			row := tree.Row(v)
			rows := int64(len(tree.Leaves(row.Left)))
			cols := int64(len(tree.Leaves(row.Right)))
			totalCells += rows * cols
		}
		bytesPerCell := int64(8)
		if opts.Argmin == Stored {
			bytesPerCell += 8 // two int32 argmin slots
		}
		if totalCells*bytesPerCell > opts.MaxTableBytes {
			return nil, fmt.Errorf("costtable.Alloc(%d bytes): %w", totalCells*bytesPerCell, ErrOutOfMemory)
		}
	}

	for v := n; v < tree.NumNodes(); v++ {
		row := tree.Row(v)
		leavesL := tree.Leaves(row.Left)
		leavesR := tree.Leaves(row.Right)

		b := &Block{rows: len(leavesL), cols: len(leavesR), data: make([]float64, len(leavesL)*len(leavesR))}
		if opts.Argmin == Stored {
			b.argM = make([]int32, len(leavesL)*len(leavesR))
			b.argK = make([]int32, len(leavesL)*len(leavesR))
		}
		blocks[v] = b

		lm := make(map[int]int32, len(leavesL))
		for i, leaf := range leavesL {
			lm[leaf] = int32(i)
		}
		leftLocal[v] = lm

		rm := make(map[int]int32, len(leavesR))
		for j, leaf := range leavesR {
			rm[leaf] = int32(j)
		}
		rightLocal[v] = rm
	}

	return &Table{blocks: blocks, leftLocal: leftLocal, rightLocal: rightLocal}, nil
}

// LocalIndex resolves leaf's local position within internal node v's left
// or right child leaf set in O(1), via the per-node maps built once above —
// in place of a linear scan over tree.Leaves(...). onLeft reports which
// side the leaf was found on; ok is false if v has no Block (a leaf, or
// out of range) or leaf is not one of v's boundary leaves.
func (t *Table) LocalIndex(v, leaf int) (idx int, onLeft bool, ok bool) {
	if v < 0 || v >= len(t.blocks) || t.blocks[v] == nil {
		return 0, false, false
	}
	if i, found := t.leftLocal[v][leaf]; found {
		return int(i), true, true
	}
	if j, found := t.rightLocal[v][leaf]; found {
		return int(j), false, true
	}

	return 0, false, false
}

// Block returns the Block for internal node v, or nil if v is a leaf or out
// of range.
func (t *Table) Block(v int) *Block {
	if v < 0 || v >= len(t.blocks) {
		return nil
	}

	return t.blocks[v]
}
