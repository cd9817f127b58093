// SPDX-License-Identifier: MIT

// Package builder provides deterministic fixture topologies for lvhawkes:
// the graphs used by tests, benchmarks and the `lvhawkes generate` command.
//
// core.Graph is immutable, so constructors write into a Sketch (a plain
// vertex counter plus edge list) and BuildGraph freezes it once with
// core.NewGraph. Several constructors passed to one BuildGraph call produce
// their disjoint union, each occupying its own index range in call order.
//
// Topologies:
//
//	Complete(n)            K_n
//	Star(n)                hub 0 plus n-1 leaves
//	Path(n), Cycle(n)      P_n, C_n
//	Wheel(n)               C_{n-1} plus a hub (last index)
//	CompleteBipartite(a,b) K_{a,b}
//	Grid(r,c)              4-neighbour lattice, row-major
//	Tree(b,d)              complete b-ary tree of depth d
//	RandomSparse(n,p)      G(n,p); needs WithSeed/WithRand when 0<p<1
//
// Errors:
//
//	ErrTooFewVertices, ErrInvalidProbability, ErrNeedRandSource,
//	ErrConstructFailed, ErrUnknownKind
package builder
