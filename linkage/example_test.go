package linkage_test

import (
	"fmt"

	"github.com/katalvlaran/dendro/linkage"
)

// Example_new builds a four-leaf tree where (0,1) and (2,3) merge first and
// then the two pairs merge at the root, and prints the leaf set of each
// pair and of the whole tree.
func Example_new() {
	rows := []linkage.Row{
		{Left: 0, Right: 1, Height: 1, Size: 2},
		{Left: 2, Right: 3, Height: 1, Size: 2},
		{Left: 4, Right: 5, Height: 2, Size: 4},
	}
	tree, err := linkage.New(rows)
	if err != nil {
		panic(err)
	}

	fmt.Println(tree.Leaves(4))
	fmt.Println(tree.Leaves(5))
	fmt.Println(tree.Leaves(tree.Root()))
	// Output:
	// [0 1]
	// [2 3]
	// [0 1 2 3]
}
