// SPDX-License-Identifier: MIT

package spectral

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/lvhawkes/core"
)

// radiusFloor is the spectral radius below which a graph counts as edgeless.
const radiusFloor = 1e-12

// CriticalTheta returns 1/ρ(A), the branching ratio at which the process
// turns supercritical. Returns ErrNoCriticalTheta when ρ(A) is zero.
func (d *Decomposition) CriticalTheta() (float64, error) {
	if d.radius <= radiusFloor {
		return 0, fmt.Errorf("CriticalTheta: radius=%g: %w", d.radius, ErrNoCriticalTheta)
	}

	return 1 / d.radius, nil
}

// CriticalTheta decomposes g (uncached) and returns its critical θ.
func CriticalTheta(g *core.Graph, opts ...Option) (float64, error) {
	dec, err := Decompose(g, opts...)
	if err != nil {
		return 0, err
	}

	return dec.CriticalTheta()
}

// CriticalTheta returns g's critical θ through the shared cache.
func (d *Decomposer) CriticalTheta(g *core.Graph) (float64, error) {
	dec, err := d.Decompose(g)
	if err != nil {
		return 0, err
	}

	return dec.CriticalTheta()
}

// Fractions returns count values linearly spaced over [lo, hi].
// count == 1 yields [lo]. Requires 0 ≤ lo ≤ hi, both finite.
func Fractions(lo, hi float64, count int) ([]float64, error) {
	if count < 1 || !(lo >= 0) || !(hi >= lo) || math.IsInf(hi, 0) {
		return nil, fmt.Errorf("Fractions(lo=%g, hi=%g, count=%d): %w", lo, hi, count, ErrInvalidGrid)
	}
	if count == 1 {
		return []float64{lo}, nil
	}

	return floats.Span(make([]float64, count), lo, hi), nil
}

// ThetaGrid returns θ = f·critical for every f in Fractions(lo, hi, count).
// critical must be positive and finite.
func ThetaGrid(critical, lo, hi float64, count int) ([]float64, error) {
	if !(critical > 0) || math.IsInf(critical, 0) {
		return nil, fmt.Errorf("ThetaGrid: critical=%g: %w", critical, ErrInvalidGrid)
	}
	fr, err := Fractions(lo, hi, count)
	if err != nil {
		return nil, err
	}
	floats.Scale(critical, fr)

	return fr, nil
}
