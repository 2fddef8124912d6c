// Package dfs defines options for depth-first search traversal,
// including pre-order hooks, depth limiting and neighbor filtering.
package dfs

// Option configures optional behavior of DFS traversal.
// Use with DFS(g, start, opts...) or Iterative(g, start, opts...).
type Option func(*DFSOptions)

// DFSOptions holds configurable parameters for DFS traversal.
// Complexity remains O(V+E) when filters and hooks are O(1).
type DFSOptions struct {
	// OnVisit, if non-nil, is invoked immediately upon discovering a vertex (pre-order)
	// with the vertex ID and its depth in the DFS tree.
	OnVisit func(id, depth int)

	// MaxDepth, if non-negative, limits descent to the given depth.
	// A depth of 0 visits only the start vertex. Default is -1 (no limit).
	MaxDepth int

	// FilterNeighbor, if non-nil, is called for each stored entry curr→neighbor
	// before descending. Return true to traverse into that neighbor, false to skip it.
	FilterNeighbor func(curr, neighbor int) bool
}

// DefaultOptions returns a DFSOptions struct with:
//   - No pre-order hook
//   - No depth limit (MaxDepth = -1)
//   - No neighbor filtering
func DefaultOptions() DFSOptions {
	return DFSOptions{
		OnVisit:        nil,
		MaxDepth:       -1,
		FilterNeighbor: nil,
	}
}

// WithOnVisit returns an Option that installs fn as a pre-order hook.
func WithOnVisit(fn func(id, depth int)) Option {
	return func(o *DFSOptions) {
		o.OnVisit = fn
	}
}

// WithMaxDepth returns an Option that limits traversal depth to limit.
// A limit of 0 means only the start vertex is visited; a negative limit removes the bound.
func WithMaxDepth(limit int) Option {
	return func(o *DFSOptions) {
		if limit < 0 {
			limit = -1
		}
		o.MaxDepth = limit
	}
}

// WithFilterNeighbor returns an Option that filters neighbors.
func WithFilterNeighbor(fn func(curr, neighbor int) bool) Option {
	return func(o *DFSOptions) {
		o.FilterNeighbor = fn
	}
}
