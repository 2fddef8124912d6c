// Package bfs provides breadth-first search over a core.Graph, returning the
// order in which vertices are first discovered.
//
// What
//
//   - Explore vertices level by level from a start vertex using a FIFO frontier.
//   - A vertex is marked visited when it is enqueued, not when it is dequeued,
//     so a vertex reachable along several paths is queued exactly once.
//   - Siblings are expanded in stored neighbor order (edge-insertion order).
//   - Supports functional hooks at two stages:
//   - OnEnqueue (as a vertex is marked visited and queued)
//   - OnVisit   (as a vertex is appended to the order)
//   - Allows pruning of individual neighbors via WithFilterNeighbor.
//   - Honors a MaxDepth limit (d>0) or no limit (d<=0).
//
// Determinism
//
//	core.Graph.Neighbors preserves edge-insertion order, and BFS enqueues
//	neighbors in that order, so a fixed sequence of AddEdge calls always
//	yields the same visit sequence.
//
// Totality
//
//	BFS never fails. A start vertex that is absent, isolated, or queried on a
//	nil graph produces the singleton order [start], because neighbor lookup
//	on an unknown vertex is empty.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)
//   - Memory: O(V)   (queue, visited set, order)
//
// Usage
//
//	order := bfs.BFS(g, 1)
//
//	order = bfs.BFS(
//	    g, 1,
//	    bfs.WithMaxDepth(2),
//	    bfs.WithFilterNeighbor(func(curr, nbr int) bool { return nbr != 5 }),
//	    bfs.WithOnVisit(func(id, depth int) { /* ... */ }),
//	)
package bfs
