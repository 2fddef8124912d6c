// Package core declares the Graph type and its constructor.
//
// Layout:
//
//	order         []int          // vertex IDs in first-insertion order
//	adjacencyList map[int][]int  // vertex ID → neighbors in edge-insertion order
//
// Invariants:
//   - len(order) == len(adjacencyList) and both hold the same IDs.
//   - If u appears k times in adjacencyList[v], then v appears k times in
//     adjacencyList[u] (a self-loop counts as two entries in its own list).
package core

import "sync"

// Graph is an undirected, unweighted graph stored as an adjacency list.
//
// The zero value is not usable; construct with NewGraph.
// mu guards order, adjacencyList and edgeCount.
type Graph struct {
	mu sync.RWMutex

	// Storage
	order         []int         // vertex IDs, first-insertion order
	adjacencyList map[int][]int // vertex ID → neighbor IDs, insertion order
	edgeCount     int           // number of AddEdge calls
}

// NewGraph creates an empty Graph.
// Complexity: O(1)
func NewGraph() *Graph {
	return &Graph{
		order:         make([]int, 0),
		adjacencyList: make(map[int][]int),
	}
}
