// Package bfs provides breadth-first search over a core.Graph,
// returning vertices in level order.
package bfs

import "github.com/katalvlaran/graphwalk/core"

// queueItem pairs a vertex ID with its BFS depth.
type queueItem struct {
	id    int
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph   *core.Graph
	opts    BFSOptions
	queue   []queueItem
	visited map[int]bool
	order   []int
}

// BFS runs breadth-first search on g starting from start, applying any
// number of functional Options, and returns the discovery order.
//
// The result always begins with start and contains each reachable vertex at
// most once. A nil g is treated as an empty graph.
func BFS(g *core.Graph, start int, opts ...Option) []int {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	n := 1
	if g != nil {
		n = g.VertexCount()
	}
	w := &walker{
		graph:   g,
		opts:    o,
		queue:   make([]queueItem, 0, n),
		visited: make(map[int]bool, n),
		order:   make([]int, 0, n),
	}

	// Seed queue with start vertex
	w.enqueue(start, 0)
	w.loop()

	return w.order
}

// enqueue marks id visited at depth d, calls OnEnqueue and adds it to the queue.
func (w *walker) enqueue(id, d int) {
	w.visited[id] = true
	w.opts.OnEnqueue(id, d)
	w.queue = append(w.queue, queueItem{id: id, depth: d})
}

// loop processes the queue until it is empty.
func (w *walker) loop() {
	for len(w.queue) > 0 {
		item := w.dequeue()
		w.visit(item)
		w.enqueueNeighbors(item)
	}
}

// dequeue pops the first item.
func (w *walker) dequeue() queueItem {
	item := w.queue[0]
	w.queue = w.queue[1:]

	return item
}

// visit records the vertex in the order and calls OnVisit.
func (w *walker) visit(item queueItem) {
	w.order = append(w.order, item.id)
	w.opts.OnVisit(item.id, item.depth)
}

// enqueueNeighbors applies filtering and MaxDepth, then enqueues each unseen
// neighbor in stored order.
func (w *walker) enqueueNeighbors(item queueItem) {
	if w.graph == nil {
		return
	}
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return
	}
	for _, nbr := range w.graph.Neighbors(item.id) {
		if w.visited[nbr] || !w.opts.FilterNeighbor(item.id, nbr) {
			continue
		}
		w.enqueue(nbr, nextDepth)
	}
}
