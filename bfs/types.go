// Package bfs provides tunable options for breadth-first search over a core.Graph.
package bfs

// Option configures BFS behavior via functional arguments.
// Options never cause BFS to fail; out-of-range values are normalized.
type Option func(*BFSOptions)

// BFSOptions holds parameters and callbacks to customize BFS execution.
type BFSOptions struct {
	// OnEnqueue is called when a vertex is marked visited and enqueued.
	// Receives vertex ID and its depth from the start.
	OnEnqueue func(id, depth int)

	// OnVisit is called when a vertex is dequeued and appended to the order.
	OnVisit func(id, depth int)

	// MaxDepth, if > 0, stops exploring beyond this depth.
	// Zero or negative disables any depth limit.
	MaxDepth int

	// FilterNeighbor can skip a neighbor by returning false.
	// Called for each stored entry curr→neighbor.
	FilterNeighbor func(curr, neighbor int) bool
}

// DefaultOptions returns a BFSOptions with sane defaults:
//   - no depth limit (MaxDepth == 0)
//   - no filtering (all neighbors allowed)
//   - no-op hooks (OnEnqueue, OnVisit)
func DefaultOptions() BFSOptions {
	return BFSOptions{
		OnEnqueue:      func(int, int) {},
		OnVisit:        func(int, int) {},
		MaxDepth:       0,
		FilterNeighbor: func(_, _ int) bool { return true },
	}
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue(fn func(id, depth int)) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnVisit registers a callback to run on visit.
func WithOnVisit(fn func(id, depth int)) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search beyond the given depth.
//
//	d > 0:  vertices farther than d edges from the start are not discovered
//	d <= 0: no depth limit
func WithMaxDepth(d int) Option {
	return func(o *BFSOptions) {
		if d < 0 {
			d = 0
		}
		o.MaxDepth = d
	}
}

// WithFilterNeighbor skips neighbors when fn returns false.
func WithFilterNeighbor(fn func(curr, neighbor int) bool) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}
