// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only getters over the fixed vertex range.
// Policy:
//   - No algorithms here.
//   - Every exported function documents complexity.

package core

// Order returns the number of vertices n fixed at construction.
// Complexity: O(1).
func (g *Graph) Order() int {
	return g.n
}

// InRange reports whether v is a valid vertex index, 0 <= v < n.
// Complexity: O(1).
func (g *Graph) InRange(v int) bool {
	return v >= 0 && v < g.n
}

// GraphStats is a snapshot of catalog sizes.
type GraphStats struct {
	VertexCount         int
	EdgeCount           int
	DirectedEdgeCount   int
	UndirectedEdgeCount int
	SelfLoopCount       int
}

// Stats produces a read-only snapshot of vertex and edge counts.
//
// Complexity: O(V + E), one pass to count self-loops.
func (g *Graph) Stats() *GraphStats {
	stats := GraphStats{
		VertexCount:         g.n,
		EdgeCount:           g.edgeCount,
		DirectedEdgeCount:   g.directedCount,
		UndirectedEdgeCount: g.edgeCount - g.directedCount,
	}
	for _, e := range g.Edges() {
		if e.From == e.To {
			stats.SelfLoopCount++
		}
	}

	return &stats
}
