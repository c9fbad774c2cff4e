// SPDX-License-Identifier: MIT
//
// impl_star.go - Star constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Vertex 0 is the hub; emits 0 → i for i=1..n-1.
//
// Complexity: O(n).

package builder

import "github.com/katalvlaran/campusplanner/core"

const (
	methodStar   = "Star"
	minStarNodes = 2
)

// Star returns a Constructor that joins vertex 0 to every other vertex.
func Star() Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := needVertices(g, methodStar, minStarNodes); err != nil {
			return err
		}
		for i := 1; i < g.Order(); i++ {
			if err := addEdge(g, cfg, methodStar, 0, i); err != nil {
				return err
			}
		}

		return nil
	}
}
