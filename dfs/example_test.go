package dfs_test

import (
	"fmt"

	"github.com/katalvlaran/campusplanner/core"
	"github.com/katalvlaran/campusplanner/dfs"
)

// ExampleDFS shows pre-order and post-order on a small tree.
func ExampleDFS() {
	g, _ := core.NewGraph(5)
	_ = g.AddEdge(0, 1, 1)
	_ = g.AddEdge(0, 2, 1)
	_ = g.AddEdge(1, 3, 1)
	_ = g.AddEdge(1, 4, 1)

	res, _ := dfs.DFS(g, 0)
	fmt.Println("pre: ", res.Order)
	fmt.Println("post:", res.PostOrder)
	// Output:
	// pre:  [0 1 3 4 2]
	// post: [3 4 1 2 0]
}

// ExampleTopologicalSort orders course prerequisites.
func ExampleTopologicalSort() {
	// 0=intro 1=data structures 2=algorithms 3=compilers
	g, _ := core.NewGraph(4)
	_ = g.AddEdge(0, 1, 1, core.WithEdgeDirected(true))
	_ = g.AddEdge(1, 2, 1, core.WithEdgeDirected(true))
	_ = g.AddEdge(1, 3, 1, core.WithEdgeDirected(true))
	_ = g.AddEdge(2, 3, 1, core.WithEdgeDirected(true))

	order, err := dfs.TopologicalSort(g)
	fmt.Println(order, err)
	// Output:
	// [0 1 2 3] <nil>
}
