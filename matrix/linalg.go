// SPDX-License-Identifier: MIT
// Package matrix: linear-algebra kernels used by the Hawkes engine.
//
// Purpose:
//   - Eigen (Jacobi) for small symmetric operators where a dependency-free,
//     deterministic reference is wanted.
//
// Notes:
//   - All kernels validate through validators.go and wrap failures via matrixErrorf.

package matrix

import (
	"fmt"
	"math"
	"sort"
)

// ZeroSum is the initial value of the off-diagonal maximum scans.
const ZeroSum = 0.0

// opEigen tags Eigen errors.
const opEigen = "Eigen"

// matrixErrorf wraps err with an operation tag, preserving the underlying error via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// toDense returns a private *Dense copy of m.
func toDense(m Matrix) (*Dense, error) {
	if d, ok := m.(*Dense); ok {
		return d.Clone().(*Dense), nil
	}
	out, err := NewDense(m.Rows(), m.Cols())
	if err != nil {
		return nil, err
	}
	var i, j int
	var v float64
	for i = 0; i < m.Rows(); i++ {
		for j = 0; j < m.Cols(); j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, fmt.Errorf("At(%d,%d): %w", i, j, err)
			}
			out.data[i*out.c+j] = v
		}
	}

	return out, nil
}

// Eigen computes eigenvalues and eigenvectors of a symmetric matrix via Jacobi rotations.
//
// Implementation:
//   - Stage 1: Validate symmetric square finite input within tol.
//   - Stage 2: Repeatedly pick (p,q) with the largest |A[p,q]| in i→j order and apply a rotation.
//   - Stage 3: Sort eigenpairs by ascending eigenvalue (ties keep pivot order).
//
// Inputs:
//   - m: symmetric Matrix (within tol).
//   - tol: convergence threshold on the largest off-diagonal magnitude.
//   - maxIter: safety cap on the number of rotations.
//
// Returns:
//   - []float64: eigenvalues, ascending.
//   - *Dense: Q whose column k is the unit eigenvector for eigenvalue k.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrAsymmetry, ErrNaNInf,
//     ErrMatrixEigenFailed (max off-diagonal > tol after maxIter).
//
// Complexity:
//   - Each rotation costs O(n²) for the pivot scan plus O(n) for the update.
//     Expect O(n⁴) overall; use a LAPACK solver for anything beyond a few hundred nodes.
func Eigen(m Matrix, tol float64, maxIter int) ([]float64, *Dense, error) {
	if err := ValidateSymmetric(m, tol); err != nil {
		return nil, nil, matrixErrorf(opEigen, err)
	}
	if err := ValidateFinite(m); err != nil {
		return nil, nil, matrixErrorf(opEigen, err)
	}
	a, err := toDense(m)
	if err != nil {
		return nil, nil, matrixErrorf(opEigen, err)
	}
	n := a.r
	q, err := NewIdentity(n)
	if err != nil {
		return nil, nil, matrixErrorf(opEigen, err)
	}

	var (
		iter, i, j, base   int
		p, r               int     // pivot indices (p<r)
		maxOff, off        float64 // largest |A[p,r]| and scratch
		app, arr, apr      float64 // pivot block entries
		aip, air, qip, qir float64
		theta, t, c, s     float64
	)
	for iter = 0; iter < maxIter; iter++ {
		// J.1: pivot search over the strict upper triangle.
		maxOff = ZeroSum
		for i = 0; i < n; i++ {
			base = i * n
			for j = i + 1; j < n; j++ {
				off = math.Abs(a.data[base+j])
				if off > maxOff {
					maxOff, p, r = off, i, j
				}
			}
		}
		// J.2: converged.
		if maxOff <= tol {
			break
		}

		// J.3: rotation parameters.
		app = a.data[p*n+p]
		arr = a.data[r*n+r]
		apr = a.data[p*n+r]
		theta = (arr - app) / (2 * apr)
		t = math.Copysign(1.0/(math.Abs(theta)+math.Hypot(theta, 1)), theta)
		c = 1.0 / math.Sqrt(t*t+1)
		s = t * c

		// J.4: rotate rows/cols p and r of A.
		for i = 0; i < n; i++ {
			if i == p || i == r {
				continue
			}
			aip = a.data[i*n+p]
			air = a.data[i*n+r]
			a.data[i*n+p], a.data[p*n+i] = c*aip-s*air, c*aip-s*air
			a.data[i*n+r], a.data[r*n+i] = s*aip+c*air, s*aip+c*air
		}
		a.data[p*n+p] = c*c*app - 2*c*s*apr + s*s*arr
		a.data[r*n+r] = s*s*app + 2*c*s*apr + c*c*arr
		a.data[p*n+r], a.data[r*n+p] = 0, 0

		// J.5: accumulate into Q.
		for i = 0; i < n; i++ {
			qip = q.data[i*n+p]
			qir = q.data[i*n+r]
			q.data[i*n+p] = c*qip - s*qir
			q.data[i*n+r] = s*qip + c*qir
		}
	}

	// Final convergence check.
	maxOff = ZeroSum
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			if off = math.Abs(a.data[i*n+j]); off > maxOff {
				maxOff = off
			}
		}
	}
	if maxOff > tol {
		return nil, nil, matrixErrorf(opEigen, ErrMatrixEigenFailed)
	}

	// Sort eigenpairs ascending.
	order := make([]int, n)
	for i = range order {
		order[i] = i
	}
	sort.SliceStable(order, func(x, y int) bool {
		return a.data[order[x]*n+order[x]] < a.data[order[y]*n+order[y]]
	})
	eigs := make([]float64, n)
	vecs, _ := NewDense(n, n) // n>0 guaranteed by the source matrix
	for k, src := range order {
		eigs[k] = a.data[src*n+src]
		for i = 0; i < n; i++ {
			vecs.data[i*n+k] = q.data[i*n+src]
		}
	}

	return eigs, vecs, nil
}
