// Package prim_kruskal provides Kruskal's and Prim's algorithms for minimum
// spanning trees over an undirected *core.Graph, plus the array-backed
// DisjointSet that Kruskal runs on.
//
// What & Why
//
//   - Given an undirected weighted graph, a minimum spanning tree connects
//     every vertex with the least total edge weight. On a campus this is the
//     cheapest set of roads (or cable runs) that still links every building.
//
// Algorithms Provided
//
//   - Kruskal(g) ([]core.Edge, float64, error)
//     Sort all edges by (weight, u, v) and merge components with a
//     DisjointSet, skipping edges whose endpoints are already connected.
//     A disconnected graph yields a minimum spanning forest.
//     Time O(E log E + α(V)·E), space O(V + E).
//
//   - Prim(g, root) ([]core.Edge, float64, error)
//     Grow one tree from root, always taking the lightest edge leaving it.
//     Fails with ErrDisconnected if root's component is not the whole graph.
//     Time O(E log V), space O(V + E).
//
//   - Compute(g, opts...) dispatches on WithMethod(MethodKruskal|MethodPrim).
//
// Determinism
//
//	Both algorithms break weight ties by endpoint indices, so equal-weight
//	graphs produce the same tree on every run.
//
// Errors
//
//	ErrInvalidGraph  – nil graph, or any directed edge present.
//	ErrDisconnected  – Prim only; also for an empty graph.
//	ErrUnknownMethod – Compute with an unrecognised method name.
package prim_kruskal
