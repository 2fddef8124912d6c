// Package graphwalk is a small in-memory playground for building an
// undirected graph and walking it breadth-first and depth-first.
//
// What is in here?
//
//	core/          — Graph: integer vertices, adjacency list, insertion-ordered neighbors
//	bfs/           — level-order traversal with a FIFO frontier
//	dfs/           — pre-order traversal, recursive and explicit-stack
//	cmd/graphwalk/ — demo printing a fixed six-vertex graph and both traversals
//
// Quick ASCII example:
//
//	    1
//	   / \
//	  2   3
//	 / \   \
//	4   5   6
//
//	BFS from 1: [1 2 3 4 5 6]
//	DFS from 1: [1 2 4 5 3 6]
//
// Every operation is total: looking up or starting a walk from a vertex that
// was never added yields empty neighbors and a singleton traversal.
//
//	go run github.com/katalvlaran/graphwalk/cmd/graphwalk
package graphwalk
