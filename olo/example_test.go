package olo_test

import (
	"fmt"

	"github.com/katalvlaran/dendro/distmat"
	"github.com/katalvlaran/dendro/linkage"
	"github.com/katalvlaran/dendro/olo"
)

// Example_optimalLeafOrdering reorders a 4-leaf tree along a path metric so
// that adjacent leaves in the output are adjacent on the number line.
func Example_optimalLeafOrdering() {
	rows := []linkage.Row{
		{Left: 0, Right: 1, Height: 1, Size: 2},
		{Left: 2, Right: 3, Height: 1, Size: 2},
		{Left: 4, Right: 5, Height: 2, Size: 4},
	}
	d, err := distmat.NewDense([]float64{
		0, 1, 2, 3,
		1, 0, 1, 2,
		2, 1, 0, 1,
		3, 2, 1, 0,
	}, 4)
	if err != nil {
		panic(err)
	}

	out, err := olo.OptimalLeafOrdering(rows, d, olo.DefaultOptions())
	if err != nil {
		panic(err)
	}

	tree, err := linkage.New(out)
	if err != nil {
		panic(err)
	}
	fmt.Println(tree.Leaves(tree.Root()))
	// Output:
	// [0 1 2 3]
}
