// SPDX-License-Identifier: MIT
// Package: lvhawkes/builder
//
// impl_star.go - implementation of Star(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - The hub is the first reserved vertex; leaves follow in ascending order.
//   - Emits spokes hub–leaf[i] in increasing leaf index.
//
// Complexity: O(n) vertices + O(n-1) edges.

package builder

import "fmt"

const (
	methodStar   = "Star"
	minStarNodes = 2
)

// Star returns a Constructor that builds a star topology with n vertices:
// one hub and n-1 leaves.
func Star(n int) Constructor {
	return func(s *Sketch, _ builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		hub := s.AddVertices(n)
		for i := 1; i < n; i++ {
			s.AddEdge(hub, hub+i)
		}

		return nil
	}
}
