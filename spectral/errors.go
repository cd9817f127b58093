// SPDX-License-Identifier: MIT

package spectral

import "errors"

// Sentinel errors for spectral operations.
var (
	// ErrDecomposition indicates the influence operator could not be
	// decomposed: it contains NaN/Inf or the eigensolver failed to converge.
	ErrDecomposition = errors.New("spectral: decomposition failed")

	// ErrNoCriticalTheta indicates a zero spectral radius (no edges): the
	// process is subcritical for every θ and no threshold exists.
	ErrNoCriticalTheta = errors.New("spectral: no critical theta")

	// ErrNilGraph indicates a nil *core.Graph argument.
	ErrNilGraph = errors.New("spectral: graph is nil")

	// ErrInvalidGrid indicates bad ThetaGrid/Fractions parameters.
	ErrInvalidGrid = errors.New("spectral: invalid theta grid")

	// ErrDimensionMismatch indicates a weight vector whose length is not N.
	ErrDimensionMismatch = errors.New("spectral: dimension mismatch")
)
