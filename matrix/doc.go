// SPDX-License-Identifier: MIT

// Package matrix provides the dense linear algebra used to carry covariance
// and transfer matrices through histogram operations.
//
// The package provides:
//
//   - Dense, a row-major float64 matrix with bounds-checked accessors and a
//     copying submatrix gather (Induced) used when a binning is sliced.
//   - Propagation kernels for J·C·Jᵀ that never build J: GroupSum for the
//     0/1 Jacobian of an axis projection and BlockAffineSandwich for the
//     block-sparse Jacobian of a per-block normalization.
//   - Element-wise helpers (DivideOuter, RowSums, ColSums) and CovToCorr for
//     correlation extraction.
//   - SymEigen (Jacobi rotations) and the positive-semidefinite check
//     ValidatePSD built on it.
//   - Validators shared by callers (square, symmetric, vector length, finite).
//
// Every kernel allocates a fresh result; operands are never mutated.
// Errors are package sentinels wrapped with an operation tag; match them
// with errors.Is.
package matrix
