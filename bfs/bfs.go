package bfs

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"

	"github.com/katalvlaran/campusplanner/core"
)

// queueItem pairs a vertex with its BFS depth.
type queueItem struct {
	v     int
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph   *core.Graph
	opts    BFSOptions
	queue   []queueItem
	visited *bitset.BitSet
	res     *BFSResult
}

// BFS runs breadth-first search on g starting from start,
// applying any number of functional Options.
//
// Neighbors are enqueued in adjacency insertion order, so the visit
// sequence is deterministic. Each vertex is visited at most once and
// vertices unreachable from start do not appear in Order.
//
// Returns ErrGraphNil for a nil graph, ErrOptionViolation for bad options,
// core.ErrVertexOutOfRange for a bad start, or any OnVisit error.
// An empty graph yields an empty result.
//
// Complexity: O(V + E) time, O(V) memory.
func BFS(g *core.Graph, start int, opts ...Option) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	n := g.Order()
	res := newResult(n)
	if n == 0 {
		return res, nil
	}
	if !g.InRange(start) {
		return nil, fmt.Errorf("bfs: start %d not in [0,%d): %w", start, n, core.ErrVertexOutOfRange)
	}

	w := &walker{
		graph:   g,
		opts:    o,
		queue:   make([]queueItem, 0, n),
		visited: bitset.New(uint(n)),
		res:     res,
	}
	w.enqueue(start, 0, -1)

	return w.res, w.loop()
}

func newResult(n int) *BFSResult {
	res := &BFSResult{
		Order:  make([]int, 0, n),
		Depth:  make([]int, n),
		Parent: make([]int, n),
	}
	for i := 0; i < n; i++ {
		res.Depth[i] = -1
		res.Parent[i] = -1
	}

	return res
}

// enqueue marks v visited at depth d, records its parent and appends it
// to the queue.
func (w *walker) enqueue(v, d, parent int) {
	w.visited.Set(uint(v))
	w.res.Depth[v] = d
	w.res.Parent[v] = parent
	w.queue = append(w.queue, queueItem{v: v, depth: d})
}

// loop processes the queue until empty or a hook fails.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		item := w.dequeue()
		if err := w.visit(item); err != nil {
			return err
		}
		w.enqueueNeighbors(item)
	}

	return nil
}

// dequeue pops the first item.
func (w *walker) dequeue() queueItem {
	item := w.queue[0]
	w.queue = w.queue[1:]

	return item
}

// visit records the vertex in Order and calls OnVisit.
func (w *walker) visit(item queueItem) error {
	w.res.Order = append(w.res.Order, item.v)
	if err := w.opts.OnVisit(item.v, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %d: %w", item.v, err)
	}

	return nil
}

// enqueueNeighbors applies filtering and MaxDepth, then enqueues each
// unseen neighbor in adjacency order.
func (w *walker) enqueueNeighbors(item queueItem) {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return
	}
	for _, e := range w.graph.Adjacent(item.v) {
		if w.visited.Test(uint(e.To)) {
			continue
		}
		if !w.opts.FilterNeighbor(item.v, e.To) {
			continue
		}
		w.enqueue(e.To, nextDepth, item.v)
	}
}
