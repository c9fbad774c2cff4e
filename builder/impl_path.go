// SPDX-License-Identifier: MIT
//
// impl_path.go - Path constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Emits edges (i-1) → i for i=1..n-1 in increasing order.
//
// Complexity: O(n).

package builder

import "github.com/katalvlaran/campusplanner/core"

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor that chains every vertex: 0-1-…-(n-1).
func Path() Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := needVertices(g, methodPath, minPathNodes); err != nil {
			return err
		}
		for i := 1; i < g.Order(); i++ {
			if err := addEdge(g, cfg, methodPath, i-1, i); err != nil {
				return err
			}
		}

		return nil
	}
}
