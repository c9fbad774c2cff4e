// Package bfs provides breadth-first search over a core.Graph, returning
// unweighted shortest-path depths, parent links, and visit order.
//
// What
//
//   - Explore vertices in non-decreasing distance (edge count) from a start vertex.
//   - Returns a BFSResult containing:
//   - Order: visit sequence
//   - Depth: per-vertex distance in edges from start (-1 if unreached)
//   - Parent: per-vertex predecessor in the BFS tree (-1 for start/unreached)
//   - An OnVisit hook, called in visit order with the depth; an error aborts the search.
//   - Neighbor filtering via WithFilterNeighbor, depth cut-off via WithMaxDepth.
//   - Directed edges are followed only from their source; undirected edges both ways.
//
// Determinism
//
//	Neighbors are enqueued in adjacency insertion order, so for a fixed
//	sequence of AddEdge calls the visit sequence is fully reproducible.
//
// Complexity (V = vertices, E = edges)
//
//   - Time:   O(V + E)   (each vertex and edge seen at most once)
//   - Memory: O(V)       (queue, Depth, Parent, visited bitset)
//
// Usage
//
//	res, err := bfs.BFS(g, 0,
//	    bfs.WithMaxDepth(3),
//	    bfs.WithFilterNeighbor(func(curr, nbr int) bool { return nbr != 4 }),
//	    bfs.WithOnVisit(func(v, depth int) error { return nil }),
//	)
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - core.ErrVertexOutOfRange if start is outside [0, n).
//   - ErrOptionViolation      if an Option is invalid (e.g. negative MaxDepth).
//   - ErrNotReached           from PathTo for an unvisited destination.
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
