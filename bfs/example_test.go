package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/graphwalk/bfs"
	"github.com/katalvlaran/graphwalk/core"
)

// ExampleBFS demonstrates level-order traversal of a small tree.
func ExampleBFS() {
	g := core.NewGraph()
	g.AddEdge(1, 2)
	g.AddEdge(1, 3)
	g.AddEdge(2, 4)
	g.AddEdge(2, 5)
	g.AddEdge(3, 6)

	fmt.Println(bfs.BFS(g, 1))
	// Output:
	// [1 2 3 4 5 6]
}

// ExampleBFS_gridLayers records the layer of each vertex on a 3×3 grid,
// ID = 3*row + col, using the OnEnqueue hook.
func ExampleBFS_gridLayers() {
	g := core.NewGraph()
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			if c+1 < 3 {
				g.AddEdge(3*r+c, 3*r+c+1) // right neighbor
			}
			if r+1 < 3 {
				g.AddEdge(3*r+c, 3*(r+1)+c) // down neighbor
			}
		}
	}

	layers := make([][]int, 5)
	bfs.BFS(g, 0, bfs.WithOnEnqueue(func(id, depth int) {
		layers[depth] = append(layers[depth], id)
	}))
	for d, ids := range layers {
		fmt.Println(d, ids)
	}
	// Output:
	// 0 [0]
	// 1 [1 3]
	// 2 [2 4 6]
	// 3 [5 7]
	// 4 [8]
}
