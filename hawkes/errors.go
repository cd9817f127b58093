// SPDX-License-Identifier: MIT

package hawkes

import "errors"

// Sentinel errors for Hawkes evaluation. Divergence is never an error; it is
// reported through Outcome.
var (
	// ErrInvalidTheta indicates θ < 0, NaN or ±Inf.
	ErrInvalidTheta = errors.New("hawkes: invalid theta")

	// ErrNilDecomposition indicates a nil *spectral.Decomposition.
	ErrNilDecomposition = errors.New("hawkes: decomposition is nil")

	// ErrNilGraph indicates a nil *core.Graph.
	ErrNilGraph = errors.New("hawkes: graph is nil")

	// ErrSeedOutOfRange indicates a seed vertex outside [0, N).
	ErrSeedOutOfRange = errors.New("hawkes: seed out of range")
)
