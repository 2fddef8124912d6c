// File: methods_vertices.go
// Role: Vertex insertion & queries.
//
// Determinism:
//   - Vertices() returns IDs in first-insertion order. Callers must treat the
//     result as a set; the order is a convenience, not a contract.
//
// Concurrency:
//   - Mutations take mu for writing, queries take mu for reading.
package core

// AddVertex inserts id with an empty neighbor list if it is missing.
//
// Behavior highlights:
//   - Idempotent: adding an existing vertex leaves its neighbors untouched.
//   - Total: every int is a valid vertex ID.
//
// Complexity:
//   - Time O(1) amortized, Space O(1) amortized.
func (g *Graph) AddVertex(id int) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.ensureVertex(id)
}

// ensureVertex registers id if absent. Caller must hold mu for writing.
func (g *Graph) ensureVertex(id int) {
	if _, ok := g.adjacencyList[id]; ok {
		return
	}
	g.adjacencyList[id] = make([]int, 0)
	g.order = append(g.order, id)
}

// HasVertex reports whether id was added explicitly or as an edge endpoint.
// Complexity: O(1)
func (g *Graph) HasVertex(id int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.adjacencyList[id]

	return ok
}

// Vertices returns every known vertex ID.
//
// The returned slice is a fresh copy; mutating it does not affect the Graph,
// and later graph mutations do not affect it.
//
// Complexity:
//   - Time O(V), Space O(V).
func (g *Graph) Vertices() []int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]int, len(g.order))
	copy(out, g.order)

	return out
}

// VertexCount returns |V|.
// Complexity: O(1)
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.order)
}
