// Command graphwalk builds a fixed six-vertex undirected graph, prints its
// adjacency list, and prints the BFS and DFS visit orders from vertex 1.
//
// Graph:
//
//	    1
//	   / \
//	  2   3
//	 / \   \
//	4   5   6
//
// The command takes no flags and reads no configuration.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/graphwalk/bfs"
	"github.com/katalvlaran/graphwalk/core"
	"github.com/katalvlaran/graphwalk/dfs"
)

// startVertex is the root of both traversals.
const startVertex = 1

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	if err := run(os.Stdout); err != nil {
		logger.Error("graphwalk failed", "error", err)
		os.Exit(1)
	}
}

// buildGraph returns vertices 1..6 with edges (1,2),(1,3),(2,4),(2,5),(3,6).
func buildGraph() *core.Graph {
	g := core.NewGraph()
	for i := 1; i <= 6; i++ {
		g.AddVertex(i)
	}
	g.AddEdge(1, 2)
	g.AddEdge(1, 3)
	g.AddEdge(2, 4)
	g.AddEdge(2, 5)
	g.AddEdge(3, 6)

	return g
}

// run writes the adjacency list and both traversals to w.
func run(w io.Writer) error {
	g := buildGraph()

	if _, err := fmt.Fprintln(w, "Graph Adjacency List:"); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	if err := g.Print(w); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "\nBFS Traversal: %s\n", formatOrder(bfs.BFS(g, startVertex))); err != nil {
		return fmt.Errorf("write bfs: %w", err)
	}
	if _, err := fmt.Fprintf(w, "\nDFS Traversal: %s\n", formatOrder(dfs.DFS(g, startVertex))); err != nil {
		return fmt.Errorf("write dfs: %w", err)
	}

	return nil
}

// formatOrder renders ids as "[a, b, c]".
func formatOrder(ids []int) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.Itoa(id)
	}

	return "[" + strings.Join(parts, ", ") + "]"
}
