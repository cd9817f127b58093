// SPDX-License-Identifier: MIT

package hawkes

import (
	"fmt"

	"github.com/katalvlaran/lvhawkes/spectral"
)

// Point is one θ of a sweep and its outcome.
type Point struct {
	Theta  float64
	Result Outcome[[]float64]
}

// Sweep evaluates every θ in thetas against one decomposition, preserving
// order. Divergent θ yield Divergent points; an invalid θ aborts the sweep
// with ErrInvalidTheta.
// Complexity: O(len(thetas)·N²).
func Sweep(dec *spectral.Decomposition, thetas []float64, opts ...Option) ([]Point, error) {
	if dec == nil {
		return nil, ErrNilDecomposition
	}
	cfg := newConfig(opts)

	out := make([]Point, 0, len(thetas))
	for i, theta := range thetas {
		if err := validateTheta(theta); err != nil {
			return nil, fmt.Errorf("Sweep: point %d: %w", i, err)
		}
		res, err := evaluate(dec, theta, cfg.eps)
		if err != nil {
			return nil, fmt.Errorf("Sweep: point %d: %w", i, err)
		}
		out = append(out, Point{Theta: theta, Result: res})
	}
	cfg.logger.Debug("sweep done", "graph", dec.GraphID(), "points", len(out))

	return out, nil
}
