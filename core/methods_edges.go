// Package core: edge insertion and edge catalog queries.
//
// AddEdge validates every argument before touching adjacency, so an
// undirected insertion lands in both endpoint sequences or in neither.

package core

import (
	"fmt"
	"math"
)

// AddEdge appends (v, w) to u's adjacency sequence and, unless the edge is
// marked directed via WithEdgeDirected(true), appends (u, w) to v's.
//
// Returns ErrVertexOutOfRange when u or v is outside [0, n), ErrBadWeight
// when w is NaN. Self-loops and parallel edges are accepted.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(u, v int, w float64, opts ...EdgeOption) error {
	// 1) Validate endpoints before any mutation.
	if err := g.checkVertex(u); err != nil {
		return err
	}
	if err := g.checkVertex(v); err != nil {
		return err
	}

	// 2) Weights must be totally ordered for the algorithms that sort them.
	if math.IsNaN(w) {
		return fmt.Errorf("%w: edge %d→%d", ErrBadWeight, u, v)
	}

	// 3) Build the forward entry and apply per-edge options.
	e := Edge{From: u, To: v, Weight: w}
	for _, opt := range opts {
		opt(&e)
	}

	// 4) Store forward entry; mirror it for undirected edges.
	g.adj[u] = append(g.adj[u], e)
	if !e.Directed {
		g.adj[v] = append(g.adj[v], Edge{From: v, To: u, Weight: w})
	} else {
		g.directedCount++
	}
	g.edgeCount++

	return nil
}

// Edges returns every logical edge exactly once, ordered by source vertex
// and then by adjacency order. Undirected edges are reported from their
// lower endpoint (From <= To); an undirected self-loop is reported once.
// Complexity: O(V + E).
func (g *Graph) Edges() []Edge {
	out := make([]Edge, 0, g.edgeCount)
	for u := 0; u < g.n; u++ {
		loopMirror := false // undirected self-loops occupy two adjacent slots
		for _, e := range g.adj[u] {
			switch {
			case e.Directed:
				out = append(out, e)
			case e.To > u:
				out = append(out, e)
			case e.To == u:
				if !loopMirror {
					out = append(out, e)
				}
				loopMirror = !loopMirror
			}
		}
	}

	return out
}

// EdgeCount returns the number of logical edges added so far.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	return g.edgeCount
}

// HasDirectedEdges reports whether any edge was added with WithEdgeDirected(true).
// Complexity: O(1).
func (g *Graph) HasDirectedEdges() bool {
	return g.directedCount > 0
}

// checkVertex wraps ErrVertexOutOfRange with the offending index.
func (g *Graph) checkVertex(v int) error {
	if v < 0 || v >= g.n {
		return fmt.Errorf("%w: %d not in [0,%d)", ErrVertexOutOfRange, v, g.n)
	}

	return nil
}
