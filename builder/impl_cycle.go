// SPDX-License-Identifier: MIT
// Package: lvhawkes/builder
//
// impl_cycle.go - implementation of Cycle(n) constructor.
//
// Contract:
//   • n ≥ 3 (else ErrTooFewVertices).
//   • Emits edges i–(i+1)%n in increasing i.
//
// Complexity: O(n) vertices + O(n) edges.

package builder

import "fmt"

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor that builds an n-vertex simple cycle C_n.
func Cycle(n int) Constructor {
	return func(s *Sketch, _ builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		base := s.AddVertices(n)
		for i := 0; i < n; i++ {
			s.AddEdge(base+i, base+(i+1)%n)
		}

		return nil
	}
}
