package graphio

import "errors"

// Sentinel errors for graph and orbit-count files.
var (
	// ErrMalformed indicates a line that does not follow the file format.
	ErrMalformed = errors.New("graphio: malformed input")

	// ErrEmptyDataset indicates ScanDataset found no graph/orbit pairs.
	ErrEmptyDataset = errors.New("graphio: no graph/orbit pairs found")
)
