// Package dfs implements depth-first search (pre-order) on core.Graph,
// both recursively and with an explicit stack.
package dfs

import "github.com/katalvlaran/graphwalk/core"

// dfsWalker encapsulates state during DFS.
type dfsWalker struct {
	graph   *core.Graph  // underlying graph, may be nil
	opts    DFSOptions   // traversal options
	visited map[int]bool // discovered vertices
	order   []int        // pre-order result
}

// newWalker applies opts and allocates traversal state sized to g.
func newWalker(g *core.Graph, opts []Option) *dfsWalker {
	dopts := DefaultOptions()
	for _, fn := range opts {
		fn(&dopts)
	}

	n := 1
	if g != nil {
		n = g.VertexCount()
	}

	return &dfsWalker{
		graph:   g,
		opts:    dopts,
		visited: make(map[int]bool, n),
		order:   make([]int, 0, n),
	}
}

// DFS performs recursive depth-first search on g from start and returns the
// vertices in pre-order. Recursion depth is bounded by the longest simple
// path explored; see Iterative for a stack-based equivalent.
func DFS(g *core.Graph, start int, opts ...Option) []int {
	w := newWalker(g, opts)
	w.traverse(start, 0)

	return w.order
}

// traverse marks id visited at the given depth and recurses into each
// admissible unvisited neighbor in stored order.
func (w *dfsWalker) traverse(id, depth int) {
	w.discover(id, depth)

	for _, nid := range w.neighbors(id) {
		if w.admit(id, nid, depth+1) {
			w.traverse(nid, depth+1)
		}
	}
}

// frame is one level of the explicit stack used by Iterative.
type frame struct {
	id    int
	depth int
	nbrs  []int
	next  int // index of the next neighbor to examine
}

// Iterative performs depth-first search on g from start using an explicit
// stack. The resulting order is identical to DFS.
func Iterative(g *core.Graph, start int, opts ...Option) []int {
	w := newWalker(g, opts)

	w.discover(start, 0)
	stack := []frame{{id: start, depth: 0, nbrs: w.neighbors(start)}}
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.next == len(top.nbrs) {
			stack = stack[:len(stack)-1] // all neighbors explored: backtrack
			continue
		}
		nid := top.nbrs[top.next]
		top.next++
		if !w.admit(top.id, nid, top.depth+1) {
			continue
		}
		d := top.depth + 1
		w.discover(nid, d)
		// top is invalidated by append below
		stack = append(stack, frame{id: nid, depth: d, nbrs: w.neighbors(nid)})
	}

	return w.order
}

// discover records id in pre-order and fires OnVisit.
func (w *dfsWalker) discover(id, depth int) {
	w.visited[id] = true
	w.order = append(w.order, id)
	if w.opts.OnVisit != nil {
		w.opts.OnVisit(id, depth)
	}
}

// admit reports whether the walk should descend from curr into nid at depth.
func (w *dfsWalker) admit(curr, nid, depth int) bool {
	if w.opts.MaxDepth >= 0 && depth > w.opts.MaxDepth {
		return false
	}
	if w.opts.FilterNeighbor != nil && !w.opts.FilterNeighbor(curr, nid) {
		return false
	}

	return !w.visited[nid]
}

// neighbors returns the stored neighbors of id, or nil on a nil graph.
func (w *dfsWalker) neighbors(id int) []int {
	if w.graph == nil {
		return nil
	}

	return w.graph.Neighbors(id)
}
