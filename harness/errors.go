package harness

import "errors"

// Sentinel errors for the regression harness.
var (
	// ErrTooFewSamples indicates not enough rows to fit or score a model.
	ErrTooFewSamples = errors.New("harness: too few samples")

	// ErrDimensionMismatch indicates ragged feature rows or label/row count mismatch.
	ErrDimensionMismatch = errors.New("harness: dimension mismatch")

	// ErrNonPositiveLabel indicates a label ≤ 0 where log10 is required.
	ErrNonPositiveLabel = errors.New("harness: non-positive label")
)
