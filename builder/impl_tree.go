// SPDX-License-Identifier: MIT
// Package: lvhawkes/builder
//
// impl_tree.go - implementation of Tree(branching, depth) constructor.
//
// Contract:
//   - branching ≥ 1 and depth ≥ 1 (else ErrTooFewVertices).
//   - Complete branching-ary tree; the root is the first reserved vertex and
//     children are numbered breadth-first, so vertex v>0 has parent (v-1)/b.
//   - Tree(b, 1) is Star(b+1).
//
// Complexity: O((b^(d+1)-1)/(b-1)) vertices and that minus one edges.

package builder

import "fmt"

const (
	methodTree       = "Tree"
	minTreeBranching = 1
	minTreeDepth     = 1
)

// Tree returns a Constructor that builds a complete tree of the given
// branching factor and depth (edges from root to deepest leaf).
func Tree(branching, depth int) Constructor {
	return func(s *Sketch, _ builderConfig) error {
		if branching < minTreeBranching || depth < minTreeDepth {
			return fmt.Errorf("%s: branching=%d, depth=%d: %w", methodTree, branching, depth, ErrTooFewVertices)
		}
		n, level := 1, 1
		for d := 0; d < depth; d++ {
			level *= branching
			n += level
		}
		base := s.AddVertices(n)
		for v := 1; v < n; v++ {
			s.AddEdge(base+(v-1)/branching, base+v)
		}

		return nil
	}
}
