// TopologicalSort computes a linear ordering of vertices such that for
// every directed edge u→v, u appears before v in the ordering.
//
// Complexity:
//
//   - Time:   O(V + E) (each vertex and edge visited once)
//   - Memory: O(V)     (recursion stack and state slice)

package dfs

import (
	"fmt"

	"github.com/katalvlaran/campusplanner/core"
)

// topoSorter encapsulates state for a topological sort traversal.
type topoSorter struct {
	graph *core.Graph // the graph being sorted
	state []uint8     // White, Gray or Black per vertex
	order []int       // recorded post-order sequence
}

// TopologicalSort returns a topological ordering of all vertices in g.
// Roots are tried in ascending index order and children in adjacency
// order, so the result is deterministic.
//
// Returns ErrGraphNil for a nil graph, ErrUndirectedEdge if any edge is
// undirected, and ErrCycleDetected (wrapped with the closing vertex) if the
// graph has a directed cycle.
func TopologicalSort(g *core.Graph) ([]int, error) {
	// 1. Validate graph pointer
	if g == nil {
		return nil, ErrGraphNil
	}
	// 2. Only fully directed graphs are supported
	if st := g.Stats(); st.UndirectedEdgeCount > 0 {
		return nil, fmt.Errorf("%w: %d undirected", ErrUndirectedEdge, st.UndirectedEdgeCount)
	}
	// 3. Drive DFS from every unvisited vertex
	n := g.Order()
	sorter := &topoSorter{
		graph: g,
		state: make([]uint8, n),
		order: make([]int, 0, n),
	}
	for v := 0; v < n; v++ {
		if sorter.state[v] == White {
			if err := sorter.visit(v); err != nil {
				return nil, err
			}
		}
	}
	// 4. Reverse post-order to produce topological order
	for i, j := 0, len(sorter.order)-1; i < j; i, j = i+1, j-1 {
		sorter.order[i], sorter.order[j] = sorter.order[j], sorter.order[i]
	}

	return sorter.order, nil
}

// visit performs a DFS from v, marking states and detecting back edges.
func (t *topoSorter) visit(v int) error {
	switch t.state[v] {
	case Gray:
		return fmt.Errorf("%w: back edge into %d", ErrCycleDetected, v)
	case Black:
		return nil
	}
	t.state[v] = Gray
	for _, e := range t.graph.Adjacent(v) {
		if err := t.visit(e.To); err != nil {
			return err
		}
	}
	t.state[v] = Black
	t.order = append(t.order, v)

	return nil
}
