// Package dijkstra provides Dijkstra's single-source shortest-path algorithm
// over core.Graph with non-negative float64 edge weights.
//
// Overview:
//
//   - Dijkstra(g, source, opts...) returns a *Result with Dist and Parent
//     slices indexed by vertex.
//   - A min-heap (container/heap) always expands the next-closest vertex.
//   - Result.PathTo(dest) rebuilds source → … → dest from Parent links.
//   - Directed edges are relaxed only from their source; undirected both ways.
//
// Key features:
//
//   - MaxDistance: vertices farther than the cap are left at +Inf.
//   - InfEdgeThreshold: any edge with weight ≥ threshold is impassable.
//   - Negative weights are rejected before any work (ErrNegativeWeight).
//
// Performance and complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E) (heap holds up to E stale entries under lazy decrease-key)
//
// Errors:
//
//	ErrNilGraph          – g is nil.
//	core.ErrVertexOutOfRange – source (or PathTo dest) outside [0, n).
//	ErrNegativeWeight    – some edge weight < 0.
//	ErrUnreachable       – PathTo on a vertex with Dist = +Inf.
//
// Option constructors panic on meaningless values (ErrBadMaxDistance,
// ErrBadInfThreshold) so misconfiguration surfaces at the call site.
package dijkstra
