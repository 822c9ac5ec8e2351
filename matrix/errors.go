// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All kernels return these sentinels (wrapped with an operation tag) and
// tests check them via errors.Is. No kernel panics on user input.

package matrix

import (
	"errors"
	"fmt"
)

var (
	// ErrBadShape is returned when a requested shape is invalid (negative rows or cols).
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that an index (row, column, or group target) is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. a group list or vector of the wrong length.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrAsymmetry signals that a matrix expected to be symmetric violated symmetry
	// within the requested tolerance.
	ErrAsymmetry = errors.New("matrix: matrix is not symmetric within eps")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil *Dense (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrNegativeVariance is returned by CovToCorr when a diagonal entry is negative.
	ErrNegativeVariance = errors.New("matrix: negative variance on diagonal")

	// ErrNotConverged is returned by SymEigen when the off-diagonal mass does
	// not fall below tol within maxSweeps.
	ErrNotConverged = errors.New("matrix: eigen decomposition did not converge")

	// ErrNotPositiveSemidefinite is returned by ValidatePSD for a matrix with
	// an eigenvalue below -tol.
	ErrNotPositiveSemidefinite = errors.New("matrix: matrix is not positive semidefinite")
)

// Operation tags used to wrap sentinels uniformly.
const (
	opNewDenseFrom = "NewDenseFrom"
	opBlockAffine  = "BlockAffineSandwich"
	opGroupSum     = "GroupSum"
	opGroupSumVec  = "GroupSumVec"
	opDivideOuter  = "DivideOuter"
	opRowSums      = "RowSums"
	opColSums      = "ColSums"
	opCovToCorr    = "CovToCorr"
	opInduced      = "Induced"
	opSymEigen     = "SymEigen"
	opValidatePSD  = "ValidatePSD"
)

// matrixErrorf wraps err with the operation tag: "<tag>: <err>".
// Callers must gate it with err != nil; wrapping nil yields a non-nil error.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
