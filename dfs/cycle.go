// FindCycle reports one simple cycle of a core.Graph using three-color
// marking and back-edge detection. It honors per-edge Directed flags, so
// mixed graphs work; in undirected parts the edge leading back to the DFS
// parent is skipped once, which lets parallel edges surface as 2-cycles.
//
// Complexity:
//
//   - Time:   O(V + E)
//   - Memory: O(V)   (recursion stack, state slice, current path)

package dfs

import "github.com/katalvlaran/campusplanner/core"

// cycleFinder holds state for a single FindCycle run.
type cycleFinder struct {
	graph *core.Graph
	state []uint8
	path  []int
}

// FindCycle returns the vertices of the first cycle met while sweeping
// roots in ascending index order, starting from the vertex the back edge
// closes on. It returns nil when g is acyclic. Self-loops are cycles of
// length one.
func FindCycle(g *core.Graph) ([]int, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	n := g.Order()
	f := &cycleFinder{
		graph: g,
		state: make([]uint8, n),
		path:  make([]int, 0, n),
	}
	for v := 0; v < n; v++ {
		if f.state[v] != White {
			continue
		}
		if cycle := f.visit(v, -1, false); cycle != nil {
			return cycle, nil
		}
	}

	return nil, nil
}

// visit explores v, arrived at from parent; viaUndirected says whether the
// tree edge parent→v was undirected and therefore has a mirror entry at v.
func (f *cycleFinder) visit(v, parent int, viaUndirected bool) []int {
	f.state[v] = Gray
	f.path = append(f.path, v)
	skipMirror := viaUndirected
	for _, e := range f.graph.Adjacent(v) {
		if skipMirror && !e.Directed && e.To == parent {
			skipMirror = false
			continue
		}
		switch f.state[e.To] {
		case White:
			if cycle := f.visit(e.To, v, !e.Directed); cycle != nil {
				return cycle
			}
		case Gray:
			return f.closeAt(e.To)
		}
	}
	f.path = f.path[:len(f.path)-1]
	f.state[v] = Black

	return nil
}

// closeAt copies the tail of the current path beginning at v.
func (f *cycleFinder) closeAt(v int) []int {
	for i := len(f.path) - 1; i >= 0; i-- {
		if f.path[i] == v {
			out := make([]int, len(f.path)-i)
			copy(out, f.path[i:])

			return out
		}
	}

	return nil
}
