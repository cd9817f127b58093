// SPDX-License-Identifier: MIT

// Package hawkes computes expected event counts of a linear Hawkes cascade
// on a graph.
//
// A single event at vertex i triggers, on average, θ·A[i][j] child events at
// each neighbor j, and so on recursively. Summing every generation gives the
// resolvent
//
//	x = Σ_j (θA)^j 1 = (I − θA)⁻¹ 1
//
// which is finite iff θ·ρ(A) < 1. Above that threshold the expectation is
// unbounded and the evaluators return a Divergent Outcome instead of a
// number.
//
// Evaluators:
//
//	EvaluateAll(dec, θ)     every seed at once from a spectral.Decomposition, O(N²)
//	Sweep(dec, θs)          EvaluateAll over a grid, one shared decomposition
//	ExactFrom(g, seed, θ)   one seed, LU solve on the seed's component
//	  + WithGenerations(k)  truncated generation sum with an error bound
//
// Errors are reserved for invalid input (ErrInvalidTheta, ErrSeedOutOfRange,
// ErrNilDecomposition, ErrNilGraph) and wrapped spectral failures.
package hawkes
