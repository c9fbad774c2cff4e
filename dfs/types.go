// Package dfs defines types and options for depth-first search traversal,
// including pre-/post-order hooks, depth limiting, neighbor filtering,
// full-graph (forest) traversal, and basic diagnostics.
package dfs

import (
	"errors"
	"fmt"

	"github.com/bits-and-blooms/bitset"
)

// Vertex states used by cycle detection and topological sort.
const (
	White = iota // White: the vertex has not been visited yet.
	Gray         // Gray: the vertex is in the recursion stack (visiting).
	Black        // Black: the vertex and all its descendants have been fully explored.
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to DFS,
	// TopologicalSort, or FindCycle.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("dfs: invalid option supplied")

	// ErrCycleDetected indicates that TopologicalSort met a cycle.
	ErrCycleDetected = errors.New("dfs: cycle detected")

	// ErrUndirectedEdge indicates that TopologicalSort was given a graph
	// holding at least one undirected edge.
	ErrUndirectedEdge = errors.New("dfs: graph has undirected edges")
)

// Option configures optional behavior of DFS traversal.
// Use with DFS(g, start, opts...).
type Option func(*DFSOptions)

// DFSOptions holds configurable parameters for DFS traversal.
// Complexity remains O(V+E) when filters and hooks are O(1).
type DFSOptions struct {
	// OnVisit, if non-nil, is invoked immediately upon discovering a vertex (pre-order).
	// Returning an error aborts traversal with that error.
	OnVisit func(v, depth int) error

	// OnExit, if non-nil, is invoked after all descendants of a vertex
	// have been explored (post-order), before appending to PostOrder.
	// Returning an error aborts traversal.
	OnExit func(v int) error

	// MaxDepth, if non-negative, limits recursion to the given depth.
	// A depth of 0 visits only the start vertex. Default is -1 (no limit).
	MaxDepth int

	// FilterNeighbor, if non-nil, is called for each adjacency entry before recursing.
	// Return true to traverse into that neighbor, false to skip it.
	FilterNeighbor func(curr, neighbor int) bool

	// FullTraversal, if true, restarts DFS from every unvisited vertex in
	// ascending index order after the start tree is complete.
	FullTraversal bool

	err error
}

// DefaultOptions returns a DFSOptions struct with:
//   - No pre-/post-order hooks
//   - No depth limit (MaxDepth = -1)
//   - No neighbor filtering
//   - Single-source traversal (FullTraversal = false)
func DefaultOptions() DFSOptions {
	return DFSOptions{
		MaxDepth: -1,
	}
}

// WithOnVisit returns an Option that installs fn as a pre-order hook.
func WithOnVisit(fn func(v, depth int) error) Option {
	return func(o *DFSOptions) {
		o.OnVisit = fn
	}
}

// WithOnExit returns an Option that installs fn as a post-order hook.
func WithOnExit(fn func(v int) error) Option {
	return func(o *DFSOptions) {
		o.OnExit = fn
	}
}

// WithMaxDepth returns an Option that limits traversal depth to limit.
// A limit of 0 means only the start vertex is visited; a negative limit
// is reported as ErrOptionViolation.
func WithMaxDepth(limit int) Option {
	return func(o *DFSOptions) {
		if limit < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, limit)
			return
		}
		o.MaxDepth = limit
	}
}

// WithFilterNeighbor returns an Option that filters adjacency entries.
// If fn(curr, neighbor) == false, that neighbor is skipped and counted in SkippedNeighbors.
func WithFilterNeighbor(fn func(curr, neighbor int) bool) Option {
	return func(o *DFSOptions) {
		o.FilterNeighbor = fn
	}
}

// WithFullTraversal returns an Option that enables full-graph traversal,
// covering disconnected components.
func WithFullTraversal() Option {
	return func(o *DFSOptions) {
		o.FullTraversal = true
	}
}

// DFSResult captures the outcome of a depth-first traversal.
type DFSResult struct {
	// Order records vertices in the sequence they were discovered (pre-order).
	Order []int

	// PostOrder records vertices in the sequence they finished.
	PostOrder []int

	// Depth holds each vertex's tree depth from its root, -1 if unvisited.
	Depth []int

	// Parent holds the vertex from which each vertex was first discovered,
	// -1 for roots and unvisited vertices.
	Parent []int

	// SkippedNeighbors reports how many adjacency entries were skipped
	// due to FilterNeighbor returning false.
	SkippedNeighbors int

	visited *bitset.BitSet
}

// Visited reports whether v was reached during the traversal.
func (r *DFSResult) Visited(v int) bool {
	return v >= 0 && r.visited.Test(uint(v))
}
