// Package dijkstra implements Dijkstra's shortest-path algorithm on core.Graph.
//
// Notes on implementation choices:
//
//   - An upfront scan of all adjacency entries (O(E)) detects negative weights and fails fast.
//   - Any edge with weight ≥ InfEdgeThreshold is an impassable “wall”.
//   - Relaxations that would exceed MaxDistance are dropped.
//   - “Lazy” decrease-key: duplicates are pushed and stale entries ignored on pop.
package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/campusplanner/core"
)

// Dijkstra computes shortest distances from source to every vertex of g.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. An empty graph yields an empty Result.
//  3. source must be in [0, n) (core.ErrVertexOutOfRange).
//  4. No edge may have negative weight (ErrNegativeWeight).
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func Dijkstra(g *core.Graph, source int, opts ...Option) (*Result, error) {
	// 1) Validate graph is non-nil
	if g == nil {
		return nil, ErrNilGraph
	}

	// 2) Build options (constructors already panic on bad values)
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 3) Allocate result with every vertex unreachable
	n := g.Order()
	res := &Result{
		Source: source,
		Dist:   make([]float64, n),
		Parent: make([]int, n),
	}
	for v := 0; v < n; v++ {
		res.Dist[v] = math.Inf(1)
		res.Parent[v] = -1
	}
	if n == 0 {
		return res, nil
	}

	// 4) Validate source
	if !g.InRange(source) {
		return nil, fmt.Errorf("dijkstra: source %d not in [0,%d): %w", source, n, core.ErrVertexOutOfRange)
	}

	// 5) Pre-scan every adjacency entry for negative weights
	for u := 0; u < n; u++ {
		for _, e := range g.Adjacent(u) {
			if e.Weight < 0 {
				return nil, fmt.Errorf("%w: edge %d→%d weight=%g", ErrNegativeWeight, e.From, e.To, e.Weight)
			}
		}
	}

	// 6) Run
	r := &runner{
		g:       g,
		options: cfg,
		res:     res,
		pq:      make(nodePQ, 0, n),
	}
	r.init(source)
	r.process()

	return res, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *core.Graph // read-only within Dijkstra
	options Options
	res     *Result
	pq      nodePQ // min-heap of nodeItem keyed by tentative distance
}

// init sets the source distance to zero and seeds the heap.
func (r *runner) init(source int) {
	r.res.Dist[source] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, nodeItem{v: source, dist: 0})
}

// process repeatedly extracts the closest tentative vertex and relaxes
// its outgoing edges until the heap is empty.
func (r *runner) process() {
	for r.pq.Len() > 0 {
		// 1) Pop the smallest-distance item.
		item := heap.Pop(&r.pq).(nodeItem)

		// 2) Stale entry: a shorter distance was recorded after this push.
		if item.dist > r.res.Dist[item.v] {
			continue
		}

		// 3) Distance is now final; relax outgoing edges.
		r.relax(item.v)
	}
}

// relax tries to improve every neighbor of u through u.
// Assumes Dist[u] is final.
func (r *runner) relax(u int) {
	du := r.res.Dist[u]
	for _, e := range r.g.Adjacent(u) {
		if e.Weight >= r.options.InfEdgeThreshold {
			continue
		}
		nd := du + e.Weight
		if nd > r.options.MaxDistance {
			continue
		}
		// Strict “<” so equal distances keep the first parent found.
		if nd >= r.res.Dist[e.To] {
			continue
		}
		r.res.Dist[e.To] = nd
		r.res.Parent[e.To] = u
		heap.Push(&r.pq, nodeItem{v: e.To, dist: nd})
	}
}

// nodeItem represents a vertex and its tentative distance at push time.
type nodeItem struct {
	v    int
	dist float64
}

// nodePQ is a min-heap of nodeItem ordered by dist ascending.
type nodePQ []nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less defines the comparison: smaller dist → higher priority.
func (pq nodePQ) Less(i, j int) bool { return pq[i].dist < pq[j].dist }

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
func (pq *nodePQ) Push(x any) { *pq = append(*pq, x.(nodeItem)) }

// Pop removes and returns the last element; heap.Pop has already swapped
// the minimum there.
func (pq *nodePQ) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
