// Package core defines the central Graph and Edge types of the engine,
// the functional options used when adding edges, and the sentinel errors
// shared by every algorithm package.
//
// Vertices are the dense integer range [0, n) fixed at construction time.
// Callers own the mapping from their identifiers to vertex indices.
//
// Errors:
//
//	ErrNegativeOrder    - NewGraph called with n < 0.
//	ErrVertexOutOfRange - a vertex index outside [0, n).
//	ErrBadWeight        - a NaN edge weight.
package core

import "errors"

// Sentinel errors for core graph operations.
var (
	// ErrNegativeOrder indicates NewGraph was asked for a negative vertex count.
	ErrNegativeOrder = errors.New("core: vertex count is negative")

	// ErrVertexOutOfRange indicates an operation referenced a vertex outside [0, n).
	ErrVertexOutOfRange = errors.New("core: vertex index out of range")

	// ErrBadWeight indicates a weight that cannot be ordered (NaN).
	ErrBadWeight = errors.New("core: edge weight is not a number")
)

// Edge is one entry of an adjacency sequence.
//
// From is the vertex whose sequence holds the entry, To the neighbor.
// Directed reports whether the edge was added one-way; undirected edges
// are stored twice, once per endpoint, with equal Weight.
type Edge struct {
	// From is the source vertex index.
	From int

	// To is the destination vertex index.
	To int

	// Weight is the cost of traversing the edge.
	Weight float64

	// Directed is true when no reciprocal entry was stored.
	Directed bool
}

// EdgeOption configures properties of an individual edge when added.
type EdgeOption func(*Edge)

// WithEdgeDirected marks the edge as one-way (true) or bidirectional (false).
// Edges are undirected unless this option says otherwise.
func WithEdgeDirected(directed bool) EdgeOption {
	return func(e *Edge) { e.Directed = directed }
}

// Graph is an adjacency-list weighted graph over the vertex range [0, n).
//
// Each adjacency sequence preserves insertion order; traversal packages
// rely on that order for deterministic results. Self-loops and parallel
// edges are stored as given.
//
// A Graph is not safe for concurrent mutation.
type Graph struct {
	n   int
	adj [][]Edge

	edgeCount     int // logical edges, an undirected edge counts once
	directedCount int // logical edges added with WithEdgeDirected(true)
}

// NewGraph creates an edgeless Graph with n vertices.
// n == 0 is a valid, empty graph; n < 0 returns ErrNegativeOrder.
// Complexity: O(n).
func NewGraph(n int) (*Graph, error) {
	if n < 0 {
		return nil, ErrNegativeOrder
	}

	return &Graph{
		n:   n,
		adj: make([][]Edge, n),
	}, nil
}
