// Package campus ties the building indexes and the road graph together.
//
// A Campus assigns every building a dense vertex index in input order, so
// the graph algorithms (bfs, dfs, dijkstra, prim_kruskal) work on plain
// integers while callers keep speaking in building ids. Each building is
// stored in:
//
//   - an AVL index (package avl) for ordered lookups and listings;
//   - a plain search tree (package bst) kept only to compare heights;
//   - a radix tree of lowercase names for prefix search;
//   - a core.Graph vertex whose undirected edges are the roads.
//
// The building set is fixed by New, Load or Sample. Roads are added with
// Connect. A Campus is owned by one caller; it is not safe for concurrent
// mutation.
package campus
