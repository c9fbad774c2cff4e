// SPDX-License-Identifier: MIT
//
// impl_cycle.go - Cycle constructor.
//
// Contract:
//   - n ≥ 3 (else ErrTooFewVertices).
//   - Emits the Path edges, then the closing edge (n-1) → 0.
//
// Complexity: O(n).

package builder

import "github.com/katalvlaran/campusplanner/core"

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor that builds the ring C_n over all vertices.
func Cycle() Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := needVertices(g, methodCycle, minCycleNodes); err != nil {
			return err
		}
		n := g.Order()
		for i := 1; i < n; i++ {
			if err := addEdge(g, cfg, methodCycle, i-1, i); err != nil {
				return err
			}
		}

		return addEdge(g, cfg, methodCycle, n-1, 0)
	}
}
