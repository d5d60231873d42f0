package floydwarshall_test

import (
	"fmt"

	"github.com/nrequena/starway/floydwarshall"
	"github.com/nrequena/starway/starmap"
)

// ExampleEngine pre-computes all pairs once, then answers point queries.
func ExampleEngine() {
	nodes := []int{1, 2, 3}
	edges := []starmap.Edge{
		{From: 1, To: 2, Weight: 1}, {From: 2, To: 1, Weight: 1},
		{From: 2, To: 3, Weight: 1}, {From: 3, To: 2, Weight: 1},
	}

	eng := floydwarshall.New(nodes, edges)
	if err := eng.Run(); err != nil {
		fmt.Println(err)

		return
	}

	fmt.Println(eng.Distance(1, 3))
	fmt.Println(eng.RebuildPath(1, 3))
	// Output:
	// 2
	// [1 2 3]
}
