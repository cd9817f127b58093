// SPDX-License-Identifier: MIT
// Package: lvhawkes/builder
//
// impl_path.go - implementation of Path(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Emits edges i–(i+1) for i = 0..n-2 relative to the reserved base.
//
// Complexity: O(n) vertices + O(n-1) edges.

package builder

import "fmt"

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor that builds a simple path P_n.
func Path(n int) Constructor {
	return func(s *Sketch, _ builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		base := s.AddVertices(n)
		for i := 0; i+1 < n; i++ {
			s.AddEdge(base+i, base+i+1)
		}

		return nil
	}
}
