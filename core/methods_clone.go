package core

// Clone returns a deep copy of g: same vertex count, same adjacency
// sequences in the same order. Mutating the clone does not affect g.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	out := &Graph{
		n:             g.n,
		adj:           make([][]Edge, g.n),
		edgeCount:     g.edgeCount,
		directedCount: g.directedCount,
	}
	for u, seq := range g.adj {
		if len(seq) == 0 {
			continue
		}
		out.adj[u] = make([]Edge, len(seq))
		copy(out.adj[u], seq)
	}

	return out
}
