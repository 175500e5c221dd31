package costtable_test

import (
	"fmt"

	"github.com/katalvlaran/dendro/costtable"
	"github.com/katalvlaran/dendro/linkage"
)

func Example_alloc() {
	rows := []linkage.Row{
		{Left: 0, Right: 1, Height: 1, Size: 2},
		{Left: 2, Right: 3, Height: 1, Size: 2},
		{Left: 4, Right: 5, Height: 2, Size: 4},
	}
	tree, err := linkage.New(rows)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	table, err := costtable.Alloc(tree, costtable.Options{Argmin: costtable.Stored})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	root := table.Block(tree.Root())
	root.Set(0, 1, 7.5)
	root.SetArgmin(0, 1, 1, 2)

	m, k, ok := root.Argmin(0, 1)
	fmt.Println(root.Get(0, 1), m, k, ok)
	// Output: 7.5 1 2 true
}
