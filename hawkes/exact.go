// SPDX-License-Identifier: MIT

package hawkes

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvhawkes/bfs"
	"github.com/katalvlaran/lvhawkes/core"
	"github.com/katalvlaran/lvhawkes/matrix"
	"github.com/katalvlaran/lvhawkes/spectral"
)

// Estimate is the expected cascade size from one seed.
type Estimate struct {
	// Events is the expected total event count, seed event included (≥ 1).
	Events float64
	// ErrorBound bounds |Events − exact| from above; 0 for the exact solve.
	ErrorBound float64
	// Support is the number of vertices the computation ranged over.
	Support int
}

// ExactFrom returns the expected total event count of a cascade started by
// a single event at seed, without touching the whole-graph decomposition.
//
// Events never leave the seed's connected component C, so the count is
// e_seedᵀ(I − θA_C)⁻¹1, solved by LU with partial pivoting on the induced
// component. With WithGenerations(k) it instead sums generations 0..k over
// the radius-k ball and reports the geometric tail bound
// sqrt(|C|)·(θρ)^(k+1)/(1 − θρ) in ErrorBound.
//
// Stability is local: the outcome is Divergent when θ·ρ(A_C) ≥ 1 − eps, or
// when the solved count is non-finite or below 1.
//
// Errors:
//   - ErrNilGraph, ErrSeedOutOfRange, ErrInvalidTheta.
//   - spectral.ErrDecomposition (wrapped) from the local stability check.
//   - The WithContext context's error once it is cancelled.
//
// Complexity: O(|C|³) exact; O(|C|³ + k·E_C) for the generation sum (the
// stability check dominates).
func ExactFrom(g *core.Graph, seed int, theta float64, opts ...Option) (Outcome[Estimate], error) {
	if g == nil {
		return Outcome[Estimate]{}, ErrNilGraph
	}
	if !g.HasVertex(seed) {
		return Outcome[Estimate]{}, fmt.Errorf("ExactFrom: seed=%d, N=%d: %w", seed, g.Order(), ErrSeedOutOfRange)
	}
	if err := validateTheta(theta); err != nil {
		return Outcome[Estimate]{}, fmt.Errorf("ExactFrom: %w", err)
	}
	cfg := newConfig(opts)

	comp, err := bfs.Component(g, seed, bfs.WithContext(cfg.ctx))
	if err != nil {
		return Outcome[Estimate]{}, fmt.Errorf("ExactFrom: %w", err)
	}
	sub, global, err := g.Induced(comp)
	if err != nil {
		return Outcome[Estimate]{}, fmt.Errorf("ExactFrom: %w", err)
	}
	local := sort.SearchInts(global, seed)

	dec, err := spectral.Decompose(sub, cfg.spectral...)
	if err != nil {
		return Outcome[Estimate]{}, fmt.Errorf("ExactFrom: local stability: %w", err)
	}
	rho := dec.SpectralRadius()
	if theta*rho >= 1-cfg.eps {
		cfg.logger.Debug("exact divergent", "seed", seed, "theta", theta, "rho", rho, "component", len(comp))
		return Divergent[Estimate](theta), nil
	}

	a, err := sub.Influence()
	if err != nil {
		return Outcome[Estimate]{}, fmt.Errorf("ExactFrom: %w", err)
	}

	var est Estimate
	if cfg.generations >= 0 {
		est, err = generationSum(cfg.ctx, g, seed, sub, global, a, theta, rho, cfg.generations)
	} else {
		est, err = solveResolvent(a, local, theta)
	}
	if errors.Is(err, errSingular) {
		return Divergent[Estimate](theta), nil
	}
	if err != nil {
		return Outcome[Estimate]{}, fmt.Errorf("ExactFrom: %w", err)
	}
	if math.IsNaN(est.Events) || math.IsInf(est.Events, 0) || est.Events < 1 {
		return Divergent[Estimate](theta), nil
	}
	cfg.logger.Debug("exact",
		"seed", seed, "theta", theta, "events", est.Events, "bound", est.ErrorBound, "support", est.Support)

	return Value(est), nil
}

var errSingular = errors.New("hawkes: resolvent is singular")

// solveResolvent solves (I − θA)x = 1 and returns x[seed].
func solveResolvent(a *matrix.Dense, seed int, theta float64) (Estimate, error) {
	n := a.Rows()
	data := a.RawCopy()
	for i := range data {
		data[i] *= -theta
	}
	for i := 0; i < n; i++ {
		data[i*n+i]++
	}
	m := mat.NewDense(n, n, data)

	ones := make([]float64, n)
	for i := range ones {
		ones[i] = 1
	}

	var x mat.VecDense
	if err := x.SolveVec(m, mat.NewVecDense(n, ones)); err != nil {
		var cond mat.Condition
		if errors.As(err, &cond) {
			return Estimate{}, fmt.Errorf("%w: %v", errSingular, err)
		}
		return Estimate{}, err
	}

	return Estimate{Events: x.AtVec(seed), Support: n}, nil
}

// generationSum accumulates Σ_{j≤k} 1ᵀ(θA)^j e_seed. Walks of length ≤ k
// from the seed never leave the radius-k ball, so only ball vertices are
// ever non-zero; the operator entries still come from the full component
// so that normalized weights match the whole-graph operator.
func generationSum(ctx context.Context, g *core.Graph, seed int, sub *core.Graph, global []int, a *matrix.Dense, theta, rho float64, k int) (Estimate, error) {
	support := 1
	if k > 0 {
		ball, err := bfs.Ball(g, seed, k, bfs.WithContext(ctx))
		if err != nil {
			return Estimate{}, err
		}
		support = len(ball)
	}

	n := sub.Order()
	w := a.RawCopy()
	cur := make([]float64, n)
	next := make([]float64, n)
	cur[sort.SearchInts(global, seed)] = 1
	total := 1.0

	for j := 1; j <= k; j++ {
		if err := ctx.Err(); err != nil {
			return Estimate{}, err
		}
		for i := range next {
			next[i] = 0
		}
		for u, mass := range cur {
			if mass == 0 {
				continue
			}
			sub.EachNeighbor(u, func(v int) {
				next[v] += theta * w[u*n+v] * mass
			})
		}
		cur, next = next, cur
		for _, mass := range cur {
			total += mass
		}
	}

	tr := theta * rho
	bound := math.Sqrt(float64(n)) * math.Pow(tr, float64(k+1)) / (1 - tr)

	return Estimate{Events: total, ErrorBound: bound, Support: support}, nil
}
