// SPDX-License-Identifier: MIT
// Package: lvhawkes/builder
//
// impl_wheel.go - implementation of Wheel(n) constructor.
//
// Canonical definition:
//   • Wₙ = Cₙ₋₁ + hub, i.e. a cycle of size (n-1) plus one centre vertex.
//   • Therefore n ≥ 4 (the outer ring must be a valid cycle).
//
// Contract:
//   • Builds the ring with Cycle(n-1) first, so ring vertices come first and
//     the hub is the last reserved index.
//   • Emits spokes hub–ring[i] in increasing ring index.
//
// Complexity: O(n) vertices + O(2n-2) edges.

package builder

import "fmt"

const (
	methodWheel   = "Wheel"
	minWheelNodes = 4
)

// Wheel returns a Constructor that builds a wheel Wₙ = Cₙ₋₁ + hub.
func Wheel(n int) Constructor {
	return func(s *Sketch, cfg builderConfig) error {
		if n < minWheelNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodWheel, n, minWheelNodes, ErrTooFewVertices)
		}
		ring := s.Order()
		if err := Cycle(n-1)(s, cfg); err != nil {
			return fmt.Errorf("%s: base cycle C_%d: %w", methodWheel, n-1, err)
		}
		hub := s.AddVertices(1)
		for i := 0; i < n-1; i++ {
			s.AddEdge(hub, ring+i)
		}

		return nil
	}
}
