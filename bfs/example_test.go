package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/lvhawkes/bfs"
	"github.com/katalvlaran/lvhawkes/core"
)

// ExampleBFS_gridTraversal demonstrates BFS layering on a 3×3 grid,
// vertex i*3+j for row i and column j.
func ExampleBFS_gridTraversal() {
	var edges []core.Edge
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if j+1 < 3 {
				edges = append(edges, core.Edge{U: i*3 + j, V: i*3 + j + 1})
			}
			if i+1 < 3 {
				edges = append(edges, core.Edge{U: i*3 + j, V: (i+1)*3 + j})
			}
		}
	}
	g, err := core.NewGraph(9, edges)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	res, err := bfs.BFS(g, 0)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Order)
	fmt.Println(res.Depth)
	// Output:
	// [0 1 3 2 4 6 5 7 8]
	// [0 1 2 1 2 3 2 3 4]
}
