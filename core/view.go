// File: view.go
// Role: Human-readable adjacency-list rendering.
// Determinism:
//   - Vertices are printed in first-insertion order, neighbors in edge-insertion order.
// Concurrency:
//   - Read lock held for the whole rendering so the output is a consistent snapshot.

package core

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Print writes one line per vertex in the form
//
//	Vertex <id>: <n1> <n2> ...
//
// Each neighbor is followed by a single space, so a vertex with neighbors
// ends its line with a trailing space and an isolated vertex prints
// "Vertex <id>: ". Any write failure from w is returned wrapped.
//
// Complexity: O(V + E).
func (g *Graph) Print(w io.Writer) error {
	if _, err := io.WriteString(w, g.String()); err != nil {
		return fmt.Errorf("core: print graph: %w", err)
	}

	return nil
}

// String renders the adjacency list exactly as Print writes it.
func (g *Graph) String() string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var sb strings.Builder
	for _, id := range g.order {
		sb.WriteString("Vertex ")
		sb.WriteString(strconv.Itoa(id))
		sb.WriteString(": ")
		for _, nbr := range g.adjacencyList[id] {
			sb.WriteString(strconv.Itoa(nbr))
			sb.WriteByte(' ')
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
