// Package matrix provides the dense row-major storage behind a graph's
// influence operator, plus the small set of kernels the Hawkes engine needs
// directly: validators and a Jacobi eigen solver for real symmetric
// matrices.
//
// The package provides:
//
//   - Dense: a row-major float64 matrix with bounds-checked At/Set and an
//     optional finite-only numeric policy.
//   - Eigen: deterministic Jacobi rotations for symmetric input; eigenvalues
//     come back sorted ascending with matching eigenvector columns.
//   - Validators: square/symmetric/finite checks shared by every kernel.
//
// Products and heavy factorizations (LAPACK-backed eigensolver, LU solves) are
// delegated to gonum by the spectral and hawkes packages; Eigen here is the
// dependency-free reference used for cross-checking small operators.
package matrix
