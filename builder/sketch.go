// SPDX-License-Identifier: MIT
// Package: lvhawkes/builder
//
// sketch.go - mutable edge accumulator that constructors write into.
//
// core.Graph has no mutators, so fixtures are assembled here first and frozen
// once by BuildGraph.

package builder

import "github.com/katalvlaran/lvhawkes/core"

// Sketch accumulates vertices and undirected edges before freezing.
// It is not safe for concurrent use.
type Sketch struct {
	n     int
	edges []core.Edge
}

// AddVertices reserves k fresh vertices and returns the index of the first.
// The reserved range is [base, base+k).
func (s *Sketch) AddVertices(k int) (base int) {
	base = s.n
	s.n += k

	return base
}

// AddEdge records the undirected edge {u,v}. Validation is deferred to
// core.NewGraph.
func (s *Sketch) AddEdge(u, v int) {
	s.edges = append(s.edges, core.Edge{U: u, V: v})
}

// Order returns the number of reserved vertices.
func (s *Sketch) Order() int { return s.n }

// Edges returns the recorded edges in emission order.
func (s *Sketch) Edges() []core.Edge { return s.edges }
