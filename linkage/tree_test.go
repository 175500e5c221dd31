package linkage_test

import (
	"testing"

	"github.com/katalvlaran/dendro/linkage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_SingleLeaf(t *testing.T) {
	tree, err := linkage.New(nil)
	require.NoError(t, err)
	assert.Equal(t, 1, tree.NumLeaves())
	assert.Equal(t, 1, tree.NumNodes())
	assert.Equal(t, 0, tree.Root())
	assert.Equal(t, []int{0}, tree.Leaves(0))
}

func TestNew_BalancedQuartet(t *testing.T) {
	// (0,1) and (2,3) merge, then the two pairs merge at the root.
	rows := []linkage.Row{
		{Left: 0, Right: 1, Height: 1, Size: 2},
		{Left: 2, Right: 3, Height: 1, Size: 2},
		{Left: 4, Right: 5, Height: 2, Size: 4},
	}
	tree, err := linkage.New(rows)
	require.NoError(t, err)

	assert.Equal(t, 4, tree.NumLeaves())
	assert.Equal(t, 7, tree.NumNodes())
	assert.Equal(t, 6, tree.Root())

	assert.Equal(t, []int{0, 1}, tree.Leaves(4))
	assert.Equal(t, []int{2, 3}, tree.Leaves(5))
	assert.Equal(t, []int{0, 1, 2, 3}, tree.Leaves(tree.Root()))

	assert.True(t, tree.IsLeaf(0))
	assert.False(t, tree.IsLeaf(4))
	assert.Equal(t, linkage.Row{Left: 0, Right: 1, Height: 1, Size: 2}, tree.Row(4))
}

func TestNew_RejectsOutOfRangeChild(t *testing.T) {
	rows := []linkage.Row{
		{Left: 0, Right: 9, Height: 1, Size: 2}, // 9 is out of range for n=2
	}
	_, err := linkage.New(rows)
	assert.ErrorIs(t, err, linkage.ErrMalformedTree)
}

func TestNew_RejectsRootSelfReference(t *testing.T) {
	// n=4 ⇒ root is node 6. A row claiming a child of 6 at its own index
	// (which can only happen for the row defining node 6 itself) must fail.
	rows := []linkage.Row{
		{Left: 0, Right: 1, Height: 1, Size: 2},
		{Left: 2, Right: 3, Height: 1, Size: 2},
		{Left: 4, Right: 6, Height: 2, Size: 4}, // 6 == this row's own node index
	}
	_, err := linkage.New(rows)
	assert.ErrorIs(t, err, linkage.ErrMalformedTree)
}

func TestNew_RejectsSharedChild(t *testing.T) {
	// Node 1 used as a child of two different internal nodes: not a tree.
	rows := []linkage.Row{
		{Left: 0, Right: 1, Height: 1, Size: 2},
		{Left: 1, Right: 2, Height: 1, Size: 2},
		{Left: 3, Right: 4, Height: 2, Size: 4},
	}
	_, err := linkage.New(rows)
	assert.ErrorIs(t, err, linkage.ErrMalformedTree)
}

func TestNew_RejectsEqualChildren(t *testing.T) {
	rows := []linkage.Row{
		{Left: 0, Right: 0, Height: 1, Size: 2},
	}
	_, err := linkage.New(rows)
	assert.ErrorIs(t, err, linkage.ErrMalformedTree)
}

func TestNew_SkewedChain(t *testing.T) {
	// A caterpillar tree: each internal node merges the previous internal
	// node (or leaf 0) with the next leaf.
	rows := []linkage.Row{
		{Left: 0, Right: 1, Height: 1, Size: 2},
		{Left: 4, Right: 2, Height: 2, Size: 3},
		{Left: 5, Right: 3, Height: 3, Size: 4},
	}
	tree, err := linkage.New(rows)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3}, tree.Leaves(tree.Root()))
}
