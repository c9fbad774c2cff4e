// Package core provides the in-memory weighted Graph used by every
// algorithm package of campusplanner.
//
// The Graph G = (V,E) has a fixed vertex set V = {0, 1, …, n-1} chosen at
// construction. Edges are stored in per-vertex adjacency sequences:
//
//   - Undirected by default: AddEdge(u, v, w) appends (v,w) to u and (u,w) to v.
//   - One-way with WithEdgeDirected(true): only (v,w) is appended to u.
//   - Insertion order is preserved and is part of the contract: BFS and DFS
//     visit neighbors in exactly this order.
//   - Self-loops and parallel edges are accepted as given.
//
// Why dense indices?
//
//   - Algorithms use plain slices for distance, parent and visited state.
//   - Callers translate their own identifiers (building ids, names, …) into
//     indices once; see package campus for such a mapping.
//
// Core Methods:
//
//	NewGraph(n int) (*Graph, error)                           // O(n)
//	AddEdge(u, v int, w float64, opts ...EdgeOption) error     // O(1)†
//	Neighbors(u int) ([]Edge, error)                           // O(deg u), copy
//	Adjacent(u int) []Edge                                     // O(1), shared
//	Degree(u int) (int, error)                                 // O(1)
//	Edges() []Edge                                             // O(V+E), each logical edge once
//	Order() int, EdgeCount() int, HasDirectedEdges() bool      // O(1)
//	Clone() *Graph                                             // O(V+E)
//
// Errors:
//
//	ErrNegativeOrder    – NewGraph(n) with n < 0
//	ErrVertexOutOfRange – vertex index outside [0, n); AddEdge mutates nothing
//	ErrBadWeight        – NaN weight
//
// † amortized: slice append.
//
// A Graph is owned by a single caller; there is no internal locking.
package core
