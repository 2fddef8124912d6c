package dfs_test

import (
	"math/rand"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/traverse"

	"github.com/katalvlaran/graphwalk/core"
)

// exampleGraph builds vertices 1..6 with edges (1,2),(1,3),(2,4),(2,5),(3,6).
func exampleGraph() *core.Graph {
	g := core.NewGraph()
	for i := 1; i <= 6; i++ {
		g.AddVertex(i)
	}
	for _, e := range [][2]int{{1, 2}, {1, 3}, {2, 4}, {2, 5}, {3, 6}} {
		g.AddEdge(e[0], e[1])
	}

	return g
}

// randomGraphs returns a core.Graph and a gonum mirror with the same topology.
// Self-loops and repeated edges go to the core graph only; the gonum simple
// graph rejects loops and collapses parallels, neither of which affects reachability.
func randomGraphs(rng *rand.Rand, n, m int) (*core.Graph, *simple.UndirectedGraph) {
	g := core.NewGraph()
	mirror := simple.NewUndirectedGraph()
	for i := 0; i < n; i++ {
		g.AddVertex(i)
		mirror.AddNode(simple.Node(i))
	}
	for i := 0; i < m; i++ {
		u, v := rng.Intn(n), rng.Intn(n)
		g.AddEdge(u, v)
		if u != v {
			mirror.SetEdge(simple.Edge{F: simple.Node(u), T: simple.Node(v)})
		}
	}

	return g, mirror
}

// reachable returns the set of node IDs gonum's breadth-first walker reaches from start.
func reachable(mirror *simple.UndirectedGraph, start int) map[int]bool {
	seen := map[int]bool{start: true}
	w := traverse.BreadthFirst{
		Visit: func(n graph.Node) { seen[int(n.ID())] = true },
	}
	w.Walk(mirror, simple.Node(start), nil)

	return seen
}
