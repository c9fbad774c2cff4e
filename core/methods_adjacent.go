// Package core: adjacency queries.
//
// Neighbors hands out copies so callers cannot mutate the stored
// sequences; Adjacent is the zero-copy variant used by the algorithm
// packages in hot loops.

package core

// Neighbors returns a copy of u's adjacency sequence in insertion order.
// Returns ErrVertexOutOfRange when u is outside [0, n).
// Complexity: O(deg(u)).
func (g *Graph) Neighbors(u int) ([]Edge, error) {
	if err := g.checkVertex(u); err != nil {
		return nil, err
	}
	out := make([]Edge, len(g.adj[u]))
	copy(out, g.adj[u])

	return out, nil
}

// Adjacent returns u's adjacency sequence without copying.
// The slice is read-only by contract and only valid until the next AddEdge.
// Panics if u is out of range; callers validate with InRange first.
// Complexity: O(1).
func (g *Graph) Adjacent(u int) []Edge {
	return g.adj[u]
}

// Degree returns the length of u's adjacency sequence: outgoing directed
// edges plus undirected edges (an undirected self-loop counts twice).
// Complexity: O(1).
func (g *Graph) Degree(u int) (int, error) {
	if err := g.checkVertex(u); err != nil {
		return 0, err
	}

	return len(g.adj[u]), nil
}
