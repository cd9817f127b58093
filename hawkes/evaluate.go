// SPDX-License-Identifier: MIT

package hawkes

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvhawkes/core"
	"github.com/katalvlaran/lvhawkes/spectral"
)

// EvaluateAll returns the expected total event count per seed vertex,
// x = (I − θA)⁻¹1 = V diag(1/(1 − θd_k)) Vᵀ1, from a precomputed
// decomposition.
//
// The result is Divergent when θ·max(D) ≥ 1, when any 1 − θd_k < eps
// (WithEpsilon) or when any entry comes out non-finite. Otherwise every entry
// is ≥ 1 for a non-negative operator.
//
// Errors:
//   - ErrNilDecomposition, ErrInvalidTheta.
//
// Pure: identical inputs give identical output; the slice is fresh.
// Complexity: O(N²).
func EvaluateAll(dec *spectral.Decomposition, theta float64, opts ...Option) (Outcome[[]float64], error) {
	if dec == nil {
		return Outcome[[]float64]{}, ErrNilDecomposition
	}
	if err := validateTheta(theta); err != nil {
		return Outcome[[]float64]{}, fmt.Errorf("EvaluateAll: %w", err)
	}
	cfg := newConfig(opts)

	return evaluate(dec, theta, cfg.eps)
}

func evaluate(dec *spectral.Decomposition, theta, eps float64) (Outcome[[]float64], error) {
	if theta*dec.MaxEigenvalue() >= 1 {
		return Divergent[[]float64](theta), nil
	}

	values := dec.Values()
	w := make([]float64, len(values))
	for k, d := range values {
		den := 1 - theta*d
		if den < eps {
			return Divergent[[]float64](theta), nil
		}
		w[k] = 1 / den
	}

	x, err := dec.Combine(w)
	if err != nil {
		return Outcome[[]float64]{}, fmt.Errorf("EvaluateAll: %w", err)
	}
	for _, v := range x {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return Divergent[[]float64](theta), nil
		}
	}

	return Value(x), nil
}

// EvaluateGraph is EvaluateAll against d's cached decomposition of g.
func EvaluateGraph(d *spectral.Decomposer, g *core.Graph, theta float64, opts ...Option) (Outcome[[]float64], error) {
	if g == nil {
		return Outcome[[]float64]{}, ErrNilGraph
	}
	dec, err := d.Decompose(g)
	if err != nil {
		return Outcome[[]float64]{}, fmt.Errorf("EvaluateGraph: %w", err)
	}

	return EvaluateAll(dec, theta, opts...)
}

func validateTheta(theta float64) error {
	if !(theta >= 0) || math.IsInf(theta, 0) {
		return fmt.Errorf("theta=%g: %w", theta, ErrInvalidTheta)
	}

	return nil
}
