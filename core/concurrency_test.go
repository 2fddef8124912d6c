// Package core_test verifies core.Graph under concurrent operations.
package core_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphwalk/core"
)

// TestConcurrentAddEdge ensures that concurrent AddEdge calls are serialized
// and every neighbor appears exactly once.
func TestConcurrentAddEdge(t *testing.T) {
	g := core.NewGraph()
	const num = 200 // number of concurrent adds
	var wg sync.WaitGroup
	wg.Add(num)

	// Launch num goroutines adding edges 0–i
	for i := 1; i <= num; i++ {
		go func(id int) {
			defer wg.Done()
			g.AddEdge(0, id)
		}(i)
	}
	wg.Wait()

	require.Len(t, g.Neighbors(0), num)
	require.Equal(t, num+1, g.VertexCount())
	require.Equal(t, num, g.EdgeCount())
}

// TestConcurrentReads validates that parallel readers on a built graph
// all observe the same snapshot.
func TestConcurrentReads(t *testing.T) {
	g := core.NewGraph()
	for i := 1; i <= 50; i++ {
		g.AddEdge(0, i)
	}
	want := g.Neighbors(0)

	const readers = 50
	results := make([][]int, readers)
	var wg sync.WaitGroup
	wg.Add(readers)
	for i := 0; i < readers; i++ {
		go func(slot int) {
			defer wg.Done()
			results[slot] = g.Neighbors(0)
			_ = g.String()
		}(i)
	}
	wg.Wait()

	for i, got := range results {
		require.Equal(t, want, got, "reader %d", i)
	}
}
