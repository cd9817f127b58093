// SPDX-License-Identifier: MIT
// Package: lvhawkes/builder
//
// impl_bipartite.go - implementation of CompleteBipartite(n1, n2).
//
// Contract:
//   - n1 ≥ 1 and n2 ≥ 1 (else ErrTooFewVertices).
//   - Left side occupies the first n1 reserved indices, right side the next n2.
//   - Emits left[i]–right[j] for i asc, j asc.
//
// Complexity: O(n1+n2) vertices + O(n1*n2) edges.

package builder

import "fmt"

const (
	methodCompleteBipartite = "CompleteBipartite"
	minPartitionSize        = 1
)

// CompleteBipartite returns a Constructor that builds K_{n1,n2}.
func CompleteBipartite(n1, n2 int) Constructor {
	return func(s *Sketch, _ builderConfig) error {
		if n1 < minPartitionSize || n2 < minPartitionSize {
			return fmt.Errorf("%s: n1=%d, n2=%d < min=%d: %w",
				methodCompleteBipartite, n1, n2, minPartitionSize, ErrTooFewVertices)
		}
		left := s.AddVertices(n1)
		right := s.AddVertices(n2)
		for i := 0; i < n1; i++ {
			for j := 0; j < n2; j++ {
				s.AddEdge(left+i, right+j)
			}
		}

		return nil
	}
}
