// Package dfs implements depth-first search (single-source and forest) on
// core.Graph, plus the two classic DFS applications: topological sort and
// cycle detection.
//
// Key features:
//   - DFS(g, start, opts...): traverse from a root, or the full forest via WithFullTraversal
//   - Order is discovery (pre-order); PostOrder is finish order
//   - Directed edges are followed only from their source
//   - Hooks: OnVisit (pre-order) & OnExit (post-order) with error aborts
//   - Limits: MaxDepth, FilterNeighbor, SkippedNeighbors diagnostic count
//   - TopologicalSort(g): reverse post-order of a fully directed graph
//   - FindCycle(g): first cycle found, directed or undirected
//
// Complexity:
//
//   - Time:   O(V + E), plus the cost of hooks and filters.
//   - Memory: O(V) for the recursion stack and per-vertex slices.
//
// Recursion depth equals the longest DFS tree path, so a 10^6-vertex chain
// needs a correspondingly deep goroutine stack; Go grows stacks on demand.
//
// Options:
//
//   - WithOnVisit(fn)           pre-order hook on discovery; error aborts traversal.
//   - WithOnExit(fn)            post-order hook after exploring descendants.
//   - WithMaxDepth(limit)       stops recursion beyond the given depth (>=0).
//   - WithFilterNeighbor(fn)    return false to skip curr→neighbor.
//   - WithFullTraversal()       restart from every unvisited vertex.
//
// Errors:
//
//   - ErrGraphNil               if g is nil.
//   - core.ErrVertexOutOfRange  if start is outside [0, n).
//   - ErrOptionViolation        for a negative MaxDepth.
//   - ErrUndirectedEdge, ErrCycleDetected from TopologicalSort.
//   - any error returned by OnVisit or OnExit, wrapped.
package dfs
