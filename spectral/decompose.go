// SPDX-License-Identifier: MIT

package spectral

import (
	"fmt"
	"time"

	"github.com/katalvlaran/lvhawkes/core"
	"github.com/katalvlaran/lvhawkes/matrix"
	"gonum.org/v1/gonum/mat"
)

// Decompose eigendecomposes g's influence operator without caching.
// Use a Decomposer to share results across callers.
//
// Errors:
//   - ErrNilGraph for a nil graph.
//   - ErrDecomposition (wrapping the cause) for NaN/Inf input or solver failure.
func Decompose(g *core.Graph, opts ...Option) (*Decomposition, error) {
	return decompose(g, resolve(opts))
}

func decompose(g *core.Graph, o options) (*Decomposition, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	start := time.Now()
	dec, err := solve(g, o)
	o.observer.ObserveDecomposition(g.Order(), o.solver.String(), time.Since(start), err)
	if err != nil {
		o.logger.Error("decomposition failed",
			"graph", g.ID(), "n", g.Order(), "solver", o.solver.String(), "err", err)
		return nil, err
	}
	o.logger.Debug("decomposed",
		"graph", g.ID(), "n", g.Order(), "solver", o.solver.String(),
		"radius", dec.SpectralRadius(), "elapsed", time.Since(start))

	return dec, nil
}

func solve(g *core.Graph, o options) (*Decomposition, error) {
	a, err := g.Influence()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecomposition, err)
	}
	if err = matrix.ValidateFinite(a); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecomposition, err)
	}

	switch o.solver {
	case SolverJacobi:
		return solveJacobi(g.ID(), a, o)
	default:
		return solveGonum(g.ID(), a)
	}
}

// solveGonum runs LAPACK's symmetric eigensolver. Values come back ascending.
func solveGonum(id uint64, a *matrix.Dense) (*Decomposition, error) {
	n := a.Rows()
	sym := mat.NewSymDense(n, a.RawCopy())

	var eig mat.EigenSym
	if ok := eig.Factorize(sym, true); !ok {
		return nil, fmt.Errorf("%w: EigenSym did not converge (n=%d)", ErrDecomposition, n)
	}
	values := eig.Values(nil)

	var vectors mat.Dense
	eig.VectorsTo(&vectors)

	data := make([]float64, n*n)
	for i := 0; i < n; i++ {
		for k := 0; k < n; k++ {
			data[i*n+k] = vectors.At(i, k)
		}
	}

	return newDecomposition(id, SolverGonum, values, data), nil
}

func solveJacobi(id uint64, a *matrix.Dense, o options) (*Decomposition, error) {
	n := a.Rows()
	maxIter := o.jacobiMaxIter
	if maxIter == 0 {
		maxIter = max(minJacobiIterations, jacobiIterationScale*n*n)
	}
	values, q, err := matrix.Eigen(a, o.jacobiTol, maxIter)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecomposition, err)
	}

	return newDecomposition(id, SolverJacobi, values, q.RawCopy()), nil
}
