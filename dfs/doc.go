// Package dfs implements depth-first search traversal on a core.Graph.
//
// What:
//
//   - DFS: recursive pre-order traversal. A vertex is appended to the order as
//     soon as it is discovered, then each unvisited neighbor is explored fully,
//     in stored neighbor order, before the next one is considered.
//   - Iterative: the same traversal driven by an explicit stack, for graphs
//     whose longest simple path would make deep recursion undesirable. Its
//     output is identical to DFS for every graph and start vertex.
//   - Options: depth limiting, neighbor filtering, pre-order hook.
//
// Determinism:
//
//	Sibling order is the stored neighbor order of core.Graph, i.e. the order
//	of AddEdge calls, so the visit sequence is reproducible.
//
// Totality:
//
//	Neither function fails. An absent start vertex (or a nil graph) yields
//	the singleton order [start].
//
// Complexity:
//
//   - Time:   O(V + E)
//   - Memory: O(V) for the visited set, plus recursion depth (DFS) or an
//     explicit stack of at most E+1 frames (Iterative).
//
// Options:
//
//   - WithMaxDepth(limit)       stop descending beyond limit (limit >= 0).
//   - WithFilterNeighbor(fn)    skip curr→neighbor when fn returns false.
//   - WithOnVisit(fn)           pre-order hook on vertex discovery.
package dfs
