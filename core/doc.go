// Package core provides a minimal in-memory undirected Graph stored as an
// adjacency list keyed by integer vertex IDs.
//
// The Graph G = (V,E) keeps, for every vertex, the ordered sequence of its
// neighbors exactly as edges were inserted:
//
//	adjacencyList[u] = []int{v1, v2, ...}
//
// Every AddEdge(u, v) appends v to u's list and u to v's list, so the
// relation is symmetric by construction.
//
// Behavior:
//
//   - Total API: no method returns an error for unknown vertices. Lookups on
//     an absent ID degrade to empty results.
//   - Implicit vertices: AddEdge adds missing endpoints.
//   - Duplicate edges are kept: calling AddEdge(u, v) twice lists v twice in u.
//   - Self-loops are kept: AddEdge(u, u) lists u twice in its own neighbors.
//   - Insertion order: Neighbors() preserves edge-insertion order, which is
//     what makes bfs and dfs traversal orders reproducible.
//
// Core Methods:
//
//	NewGraph() *Graph                  // O(1)
//
//	// Mutation
//	AddVertex(id int)                  // O(1)
//	AddEdge(u, v int)                  // O(1) amortized
//
//	// Query
//	HasVertex(id int) bool             // O(1)
//	Neighbors(id int) []int            // O(d), independent copy
//	Degree(id int) int                 // O(1)
//	Vertices() []int                   // O(V), insertion order
//	VertexCount() int                  // O(1)
//	EdgeCount() int                    // O(1)
//
//	// Display
//	Print(w io.Writer) error           // O(V+E)
//	String() string                    // O(V+E)
//
// Concurrency:
//
//	A single sync.RWMutex guards the graph. Build the graph first, then run
//	any number of read-only traversals in parallel; all query methods take
//	the read lock and return copies.
package core
