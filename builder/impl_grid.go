// SPDX-License-Identifier: MIT
// Package: lvhawkes/builder
//
// impl_grid.go - implementation of Grid(rows, cols) constructor.
//
// Contract:
//   - rows ≥ 1, cols ≥ 1 and rows*cols ≥ 2 (else ErrTooFewVertices).
//   - Vertex (r,c) is base + r*cols + c (row-major).
//   - 4-neighbourhood: emits right then down neighbour per cell, row-major.
//
// Complexity: O(R*C) vertices + O(2RC - R - C) edges.

package builder

import "fmt"

const (
	methodGrid   = "Grid"
	minGridSide  = 1
	minGridCells = 2
)

// Grid returns a Constructor that builds a rows×cols lattice.
func Grid(rows, cols int) Constructor {
	return func(s *Sketch, _ builderConfig) error {
		if rows < minGridSide || cols < minGridSide || rows*cols < minGridCells {
			return fmt.Errorf("%s: %dx%d too small: %w", methodGrid, rows, cols, ErrTooFewVertices)
		}
		base := s.AddVertices(rows * cols)
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				v := base + r*cols + c
				if c+1 < cols {
					s.AddEdge(v, v+1)
				}
				if r+1 < rows {
					s.AddEdge(v, v+cols)
				}
			}
		}

		return nil
	}
}
