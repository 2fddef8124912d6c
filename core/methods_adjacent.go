// File: methods_adjacent.go
// Role: Neighborhood queries.
// Determinism:
//   - Neighbors() preserves edge-insertion order, duplicates and loops included.
// Concurrency:
//   - Read lock only; results never share backing arrays with the Graph.

package core

// Neighbors returns the neighbor sequence of id in edge-insertion order.
//
// Behavior highlights:
//   - Absent id yields an empty, non-nil slice rather than an error.
//   - The result is an independent copy, so traversals built on it are
//     snapshots unaffected by later AddEdge calls.
//
// Complexity:
//   - Time O(d), Space O(d), where d = Degree(id).
func (g *Graph) Neighbors(id int) []int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	nbrs := g.adjacencyList[id] // nil for absent id
	out := make([]int, len(nbrs))
	copy(out, nbrs)

	return out
}

// Degree returns the length of id's neighbor list (0 for an absent vertex).
// A self-loop contributes 2, a duplicated edge contributes once per insertion.
// Complexity: O(1)
func (g *Graph) Degree(id int) int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adjacencyList[id])
}
