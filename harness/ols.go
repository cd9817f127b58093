// Package harness measures how well local structural features predict
// Hawkes event counts: ordinary least squares on log10 labels, R², mean
// squared error and top-k rank overlap.
package harness

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// rcond is the relative singular-value cutoff for the least-squares rank.
const rcond = 1e-12

// Model is a fitted linear predictor y ≈ Intercept + Coef·x.
type Model struct {
	Intercept float64
	Coef      []float64
}

// Fit solves ordinary least squares with an intercept column. Rank-deficient
// designs (e.g. all-zero orbit columns) get the minimum-norm solution from a
// truncated SVD.
func Fit(x [][]float64, y []float64) (*Model, error) {
	rows := len(x)
	if rows == 0 {
		return nil, fmt.Errorf("Fit: %w", ErrTooFewSamples)
	}
	if len(y) != rows {
		return nil, fmt.Errorf("Fit: %d rows, %d labels: %w", rows, len(y), ErrDimensionMismatch)
	}
	p := len(x[0])
	design := mat.NewDense(rows, p+1, nil)
	for i, row := range x {
		if len(row) != p {
			return nil, fmt.Errorf("Fit: row %d has %d features, want %d: %w", i, len(row), p, ErrDimensionMismatch)
		}
		design.Set(i, 0, 1)
		for j, v := range row {
			design.Set(i, j+1, v)
		}
	}

	var svd mat.SVD
	if ok := svd.Factorize(design, mat.SVDThin); !ok {
		return nil, fmt.Errorf("Fit: SVD did not converge")
	}
	rank := svd.Rank(rcond)
	if rank == 0 {
		return nil, fmt.Errorf("Fit: zero-rank design: %w", ErrTooFewSamples)
	}
	var beta mat.VecDense
	svd.SolveVecTo(&beta, mat.NewVecDense(rows, append([]float64(nil), y...)), rank)

	coef := make([]float64, p)
	for j := range coef {
		coef[j] = beta.AtVec(j + 1)
	}

	return &Model{Intercept: beta.AtVec(0), Coef: coef}, nil
}

// Predict evaluates the model on one feature row.
func (m *Model) Predict(x []float64) float64 {
	s := m.Intercept
	for j, c := range m.Coef {
		s += c * x[j]
	}

	return s
}

// PredictAll evaluates the model on every row.
func (m *Model) PredictAll(x [][]float64) []float64 {
	out := make([]float64, len(x))
	for i, row := range x {
		out[i] = m.Predict(row)
	}

	return out
}
