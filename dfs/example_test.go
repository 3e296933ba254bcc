package dfs_test

import (
	"fmt"

	"github.com/marois/cdk/core"
	"github.com/marois/cdk/dfs"
)

// ExampleWalk prints the post-order of a diamond-shaped graph and the one
// non-tree edge the walk finds.
// Graph structure:
//
//	  0
//	 / \
//	1   2
//	 \ /
//	  3
//	 / \
//	4   5
func ExampleWalk() {
	g := core.NewGraph()
	for _, e := range [][2]int{{0, 1}, {0, 2}, {1, 3}, {2, 3}, {3, 4}, {3, 5}} {
		_, _ = g.AddEdge(e[0], e[1], 1)
	}

	var order []int
	err := dfs.Walk(g, dfs.Visitor{
		Back: func(e core.Edge, v, ancestor int) error {
			fmt.Printf("back edge e%d: %d→%d\n", e.ID, v, ancestor)
			return nil
		},
		Finish: func(v int, _ *dfs.Step) error {
			order = append(order, v)
			return nil
		},
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(order)

	// Output:
	// back edge e1: 2→0
	// [2 4 5 3 1 0]
}

// ExampleBiconnectedComponents splits a naphthalene-like skeleton with a
// pendant methyl group into its ring block and the bridge. The ring block
// closes first because the walk enters it before the pendant edge.
func ExampleBiconnectedComponents() {
	g := core.NewGraph()
	ring := [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 5}, {5, 0}, {4, 6}, {6, 7}, {7, 8}, {8, 9}, {9, 5}}
	for _, e := range ring {
		_, _ = g.AddEdge(e[0], e[1], 1)
	}
	_, _ = g.AddEdge(0, 10, 1) // e11

	blocks, _ := dfs.BiconnectedComponents(g)
	for _, b := range blocks {
		fmt.Println(len(b), "edges")
	}

	// Output:
	// 11 edges
	// 1 edges
}
