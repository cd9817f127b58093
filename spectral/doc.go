// SPDX-License-Identifier: MIT

// Package spectral eigendecomposes a graph's symmetric influence operator
// and derives its stability threshold.
//
// The decomposition A = V diag(D) Vᵀ is computed once per graph and reused
// for every θ: the Hawkes resolvent (I − θA)⁻¹1 becomes
// V diag(1/(1 − θd_k)) Vᵀ1, an O(N²) product against the precomputed
// projection Vᵀ1 (see Decomposition.Combine).
//
// Solvers:
//
//	SolverGonum  (default) gonum mat.EigenSym, LAPACK dsyev.
//	SolverJacobi           largest-pivot Jacobi from package matrix.
//
// Caching:
//
//	Decomposer keys results by core.Graph.ID() in a bounded LRU
//	(hashicorp/golang-lru/v2). Concurrent first requests for one graph share
//	a single solve (x/sync/singleflight). Graphs are immutable, so entries
//	never go stale.
//
// Stability:
//
//	CriticalTheta = 1/ρ(A). ThetaGrid(critical, lo, hi, count) produces the
//	normalized sweep θ = f·critical for f linearly spaced in [lo, hi].
//
// Errors:
//
//	ErrDecomposition     NaN/Inf operator or solver failure
//	ErrNoCriticalTheta   ρ(A) = 0 (edgeless graph)
//	ErrNilGraph, ErrInvalidGrid, ErrDimensionMismatch
package spectral
