package prim_kruskal

import (
	"sort"

	"github.com/katalvlaran/campusplanner/core"
)

// Kruskal computes a minimum spanning forest of an undirected graph.
//
// Error Conditions:
//   - ErrInvalidGraph: graph is nil or holds directed edges.
//
// Steps:
//  1. Validate the graph.
//  2. Collect each undirected edge once, taking adjacency entries with u < v
//     (self-loops never satisfy this and are dropped).
//  3. Stable-sort by (weight, u, v).
//  4. Walk the sorted edges with a DisjointSet; accept an edge iff its
//     endpoints lie in different sets.
//  5. Stop early once n-1 edges are accepted.
//
// The accepted edges are returned in acceptance order with From < To,
// plus their total weight. A disconnected graph yields a forest with fewer
// than n-1 edges and no error.
//
// Complexity: O(E log E + α(V)·E). Memory: O(E + V).
func Kruskal(graph *core.Graph) ([]core.Edge, float64, error) {
	// 1. Validate.
	if err := checkUndirected(graph); err != nil {
		return nil, 0, err
	}
	n := graph.Order()

	// 2. Collect candidate edges.
	edges := make([]core.Edge, 0, graph.EdgeCount())
	for u := 0; u < n; u++ {
		for _, e := range graph.Adjacent(u) {
			if u < e.To {
				edges = append(edges, e)
			}
		}
	}

	// 3. Deterministic order: weight, then endpoints.
	sort.SliceStable(edges, func(i, j int) bool {
		a, b := edges[i], edges[j]
		if a.Weight != b.Weight {
			return a.Weight < b.Weight
		}
		if a.From != b.From {
			return a.From < b.From
		}

		return a.To < b.To
	})

	// 4. Greedy acceptance.
	var (
		ds    = NewDisjointSet(n)
		mst   = make([]core.Edge, 0, max(n-1, 0))
		total float64
	)
	for _, e := range edges {
		if !ds.Union(e.From, e.To) {
			continue
		}
		mst = append(mst, e)
		total += e.Weight
		// 5. Spanning tree complete.
		if len(mst) == n-1 {
			break
		}
	}

	return mst, total, nil
}
