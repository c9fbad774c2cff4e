package prim_kruskal

import (
	"container/heap"
	"fmt"

	"github.com/bits-and-blooms/bitset"

	"github.com/katalvlaran/campusplanner/core"
)

// Prim computes the minimum spanning tree of an undirected graph by growing
// outwards from root with a min-heap of crossing edges.
//
// Error Conditions:
//   - ErrInvalidGraph          : graph is nil or holds directed edges.
//   - ErrDisconnected          : the graph is empty, or root's component
//     does not span every vertex.
//   - core.ErrVertexOutOfRange : root outside [0, n).
//
// Edges are returned in the order they join the tree, oriented
// tree vertex → new vertex. Ties are broken by (weight, from, to), so on
// a connected graph the total matches Kruskal's.
//
// Complexity: O(E log V) time, O(V + E) memory.
func Prim(graph *core.Graph, root int) ([]core.Edge, float64, error) {
	// 1. Validate.
	if err := checkUndirected(graph); err != nil {
		return nil, 0, err
	}
	n := graph.Order()
	if n == 0 {
		return nil, 0, ErrDisconnected
	}
	if !graph.InRange(root) {
		return nil, 0, fmt.Errorf("prim_kruskal: root %d not in [0,%d): %w", root, n, core.ErrVertexOutOfRange)
	}

	// 2. Seed the tree with root.
	visited := bitset.New(uint(n))
	mst := make([]core.Edge, 0, n-1)
	var total float64
	pq := &edgePQ{}
	heap.Init(pq)
	grow := func(v int) {
		visited.Set(uint(v))
		for _, e := range graph.Adjacent(v) {
			if !visited.Test(uint(e.To)) {
				heap.Push(pq, e)
			}
		}
	}
	grow(root)

	// 3. Repeatedly take the lightest edge leaving the tree.
	for pq.Len() > 0 && len(mst) < n-1 {
		e := heap.Pop(pq).(core.Edge)
		if visited.Test(uint(e.To)) {
			continue
		}
		mst = append(mst, e)
		total += e.Weight
		grow(e.To)
	}

	// 4. A short tree means some vertex was never reached.
	if len(mst) < n-1 {
		return nil, 0, fmt.Errorf("%w: reached %d of %d vertices from %d", ErrDisconnected, len(mst)+1, n, root)
	}

	return mst, total, nil
}

// edgePQ implements heap.Interface for a min-heap of core.Edge.
type edgePQ []core.Edge

// Len returns the number of edges in the priority queue.
func (pq edgePQ) Len() int { return len(pq) }

// Less orders by weight, then source, then target.
func (pq edgePQ) Less(i, j int) bool {
	a, b := pq[i], pq[j]
	if a.Weight != b.Weight {
		return a.Weight < b.Weight
	}
	if a.From != b.From {
		return a.From < b.From
	}

	return a.To < b.To
}

// Swap swaps elements at indices i and j.
func (pq edgePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push appends a new core.Edge to the heap.
func (pq *edgePQ) Push(x any) { *pq = append(*pq, x.(core.Edge)) }

// Pop removes and returns the last element of the underlying slice.
func (pq *edgePQ) Pop() any {
	old := *pq
	n := len(old)
	edge := old[n-1]
	*pq = old[:n-1]

	return edge
}
