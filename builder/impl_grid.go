// SPDX-License-Identifier: MIT
//
// impl_grid.go - Grid constructor.
//
// Contract:
//   - rows ≥ 1, cols ≥ 1, rows*cols ≤ n (else ErrTooFewVertices).
//   - Cell (r,c) is vertex r*cols + c (row-major). Vertices past rows*cols
//     are left untouched.
//   - For each cell in row-major order emits the right edge, then the down edge.
//
// Complexity: O(rows*cols).

package builder

import (
	"fmt"

	"github.com/katalvlaran/campusplanner/core"
)

const (
	methodGrid  = "Grid"
	minGridSide = 1
)

// Grid returns a Constructor that builds a rows×cols 4-neighborhood lattice.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if rows < minGridSide || cols < minGridSide {
			return fmt.Errorf("%s: rows=%d cols=%d < min=%d: %w", methodGrid, rows, cols, minGridSide, ErrTooFewVertices)
		}
		if err := needVertices(g, methodGrid, rows*cols); err != nil {
			return err
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				v := r*cols + c
				if c+1 < cols {
					if err := addEdge(g, cfg, methodGrid, v, v+1); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := addEdge(g, cfg, methodGrid, v, v+cols); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
