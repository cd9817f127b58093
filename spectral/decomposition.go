// SPDX-License-Identifier: MIT

package spectral

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Decomposition is the immutable spectral form A = V diag(D) Vᵀ of a graph's
// influence operator. It is safe for concurrent use.
//
// Besides D and V it keeps the projection p = Vᵀ1, so any vector of the form
// V diag(w) Vᵀ 1 costs O(N²) via Combine.
type Decomposition struct {
	graphID uint64
	n       int
	solver  Solver
	values  []float64 // ascending
	vectors []float64 // row-major N×N, column k ↔ values[k]
	proj    []float64 // Vᵀ1
	radius  float64
}

// newDecomposition takes ownership of values and vectors.
func newDecomposition(graphID uint64, solver Solver, values, vectors []float64) *Decomposition {
	n := len(values)
	proj := make([]float64, n)
	for i := 0; i < n; i++ {
		row := vectors[i*n : (i+1)*n]
		for k, v := range row {
			proj[k] += v
		}
	}

	var radius float64
	if n > 0 {
		radius = math.Max(math.Abs(values[0]), math.Abs(values[n-1]))
	}

	return &Decomposition{
		graphID: graphID,
		n:       n,
		solver:  solver,
		values:  values,
		vectors: vectors,
		proj:    proj,
		radius:  radius,
	}
}

// N returns the operator dimension.
func (d *Decomposition) N() int { return d.n }

// GraphID returns the identity of the graph this decomposition belongs to.
func (d *Decomposition) GraphID() uint64 { return d.graphID }

// Solver reports which eigensolver produced d.
func (d *Decomposition) Solver() Solver { return d.solver }

// Values returns a copy of the eigenvalues in ascending order.
func (d *Decomposition) Values() []float64 {
	out := make([]float64, d.n)
	copy(out, d.values)

	return out
}

// Vectors returns a copy of the orthonormal eigenvector matrix V; column k
// belongs to Values()[k].
func (d *Decomposition) Vectors() *mat.Dense {
	data := make([]float64, len(d.vectors))
	copy(data, d.vectors)

	return mat.NewDense(d.n, d.n, data)
}

// Projection returns a copy of Vᵀ1.
func (d *Decomposition) Projection() []float64 {
	out := make([]float64, d.n)
	copy(out, d.proj)

	return out
}

// MaxEigenvalue returns the largest eigenvalue (the Perron root for A ≥ 0).
func (d *Decomposition) MaxEigenvalue() float64 { return d.values[d.n-1] }

// SpectralRadius returns max |λ|.
func (d *Decomposition) SpectralRadius() float64 { return d.radius }

// Combine returns V diag(w) Vᵀ 1, i.e. x[i] = Σ_k V[i][k]·w[k]·p[k].
// The result is a fresh slice. Returns ErrDimensionMismatch if len(w) != N.
// Complexity: O(N²).
func (d *Decomposition) Combine(w []float64) ([]float64, error) {
	if len(w) != d.n {
		return nil, fmt.Errorf("Combine: len(w)=%d, N=%d: %w", len(w), d.n, ErrDimensionMismatch)
	}
	coef := make([]float64, d.n)
	for k := range coef {
		coef[k] = w[k] * d.proj[k]
	}
	out := make([]float64, d.n)
	for i := 0; i < d.n; i++ {
		row := d.vectors[i*d.n : (i+1)*d.n]
		var s float64
		for k, v := range row {
			s += v * coef[k]
		}
		out[i] = s
	}

	return out, nil
}
