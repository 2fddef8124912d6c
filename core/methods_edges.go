// File: methods_edges.go
// Role: Undirected edge insertion.
//
// Policy:
//   - No deduplication: repeated AddEdge(u, v) calls repeat the neighbor entries.
//   - Self-loops allowed: AddEdge(u, u) appends u to its own list twice.
package core

// AddEdge connects u and v with an undirected edge.
//
// Implementation:
//   - Stage 1: Ensure u and v exist (implicitly added when missing, u first).
//   - Stage 2: Append v to u's neighbors.
//   - Stage 3: Append u to v's neighbors.
//
// Behavior highlights:
//   - Symmetric: afterwards v ∈ Neighbors(u) and u ∈ Neighbors(v).
//   - Not idempotent in content: a second identical call adds a second pair of entries.
//
// Complexity:
//   - Time O(1) amortized, Space O(1) amortized.
func (g *Graph) AddEdge(u, v int) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.ensureVertex(u)
	g.ensureVertex(v)
	// Two appends even when u == v: a loop contributes two entries.
	g.adjacencyList[u] = append(g.adjacencyList[u], v)
	g.adjacencyList[v] = append(g.adjacencyList[v], u)
	g.edgeCount++
}

// EdgeCount returns the number of AddEdge calls made on the graph,
// counting duplicates and self-loops once each.
// Complexity: O(1)
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}
