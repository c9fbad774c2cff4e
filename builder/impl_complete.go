// SPDX-License-Identifier: MIT
//
// impl_complete.go - Complete constructor.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - Emits i → j for every i < j, i ascending then j ascending.
//     With WithDirectedEdges the result is a transitive tournament.
//
// Complexity: O(n²).

package builder

import "github.com/katalvlaran/campusplanner/core"

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor that builds K_n over all vertices.
func Complete() Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := needVertices(g, methodComplete, minCompleteNodes); err != nil {
			return err
		}
		n := g.Order()
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := addEdge(g, cfg, methodComplete, i, j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
