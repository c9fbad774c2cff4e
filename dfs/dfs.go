package dfs

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"

	"github.com/katalvlaran/campusplanner/core"
)

// dfsWalker encapsulates state during DFS.
type dfsWalker struct {
	graph *core.Graph // underlying graph
	opts  DFSOptions  // traversal options
	res   *DFSResult  // result collector
}

// DFS performs depth-first search on graph g from start. Neighbors are
// explored in adjacency insertion order, each fully before the next.
// With WithFullTraversal the walk continues from every unvisited vertex in
// ascending index order once the start tree is complete.
//
// Returns ErrGraphNil, ErrOptionViolation, core.ErrVertexOutOfRange for a
// bad start, or a wrapped hook error. On a hook error the partial result
// is returned alongside it. An empty graph yields an empty result.
//
// Complexity: O(V + E) time, O(V) memory plus recursion depth.
func DFS(g *core.Graph, start int, opts ...Option) (*DFSResult, error) {
	// 1. Validate input graph
	if g == nil {
		return nil, ErrGraphNil
	}

	// 2. Apply options
	dopts := DefaultOptions()
	for _, fn := range opts {
		fn(&dopts)
	}
	if dopts.err != nil {
		return nil, dopts.err
	}

	// 3. Initialize result with every vertex unvisited
	n := g.Order()
	res := &DFSResult{
		Order:     make([]int, 0, n),
		PostOrder: make([]int, 0, n),
		Depth:     make([]int, n),
		Parent:    make([]int, n),
		visited:   bitset.New(uint(n)),
	}
	for i := 0; i < n; i++ {
		res.Depth[i] = -1
		res.Parent[i] = -1
	}
	if n == 0 {
		return res, nil
	}

	// 4. Verify start
	if !g.InRange(start) {
		return nil, fmt.Errorf("dfs: start %d not in [0,%d): %w", start, n, core.ErrVertexOutOfRange)
	}

	walker := &dfsWalker{graph: g, opts: dopts, res: res}

	// 5. Traverse: start tree, then the rest of the forest if requested
	if err := walker.traverse(start, 0); err != nil {
		return res, err
	}
	if dopts.FullTraversal {
		for v := 0; v < n; v++ {
			if res.visited.Test(uint(v)) {
				continue
			}
			if err := walker.traverse(v, 0); err != nil {
				return res, err
			}
		}
	}

	return res, nil
}

// traverse visits vertex v at the given depth and recurses into neighbors.
func (w *dfsWalker) traverse(v, depth int) error {
	// 1. Mark visited and record depth
	w.res.visited.Set(uint(v))
	w.res.Depth[v] = depth
	w.res.Order = append(w.res.Order, v)

	// 2. Pre-order hook
	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(v, depth); err != nil {
			return fmt.Errorf("dfs: OnVisit hook for %d: %w", v, err)
		}
	}

	// 3. Explore each neighbor unless the depth limit is reached
	if w.opts.MaxDepth < 0 || depth < w.opts.MaxDepth {
		for _, e := range w.graph.Adjacent(v) {
			if w.res.visited.Test(uint(e.To)) {
				continue
			}
			if w.opts.FilterNeighbor != nil && !w.opts.FilterNeighbor(v, e.To) {
				w.res.SkippedNeighbors++
				continue
			}
			w.res.Parent[e.To] = v
			if err := w.traverse(e.To, depth+1); err != nil {
				return err
			}
		}
	}

	// 4. Post-order hook
	if w.opts.OnExit != nil {
		if err := w.opts.OnExit(v); err != nil {
			return fmt.Errorf("dfs: OnExit hook for %d: %w", v, err)
		}
	}

	// 5. Record finish order
	w.res.PostOrder = append(w.res.PostOrder, v)

	return nil
}
