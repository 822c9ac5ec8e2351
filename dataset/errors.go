// SPDX-License-Identifier: MIT
// Package dataset: sentinel error set.

package dataset

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyKey is returned when a dataset is built without a key.
	ErrEmptyKey = errors.New("dataset: empty key")

	// ErrNilBinning is returned when a dataset is built without a binning.
	ErrNilBinning = errors.New("dataset: nil binning")

	// ErrSizeMismatch is returned when values or the matrix do not match the
	// total size of the binning.
	ErrSizeMismatch = errors.New("dataset: size mismatch")

	// ErrInvalidMatrix is returned when an attached matrix holds NaN or ±Inf.
	ErrInvalidMatrix = errors.New("dataset: invalid matrix")

	// ErrInvalidCovariance is returned when a covariance-tagged matrix is not
	// symmetric within tolerance or has a negative diagonal entry.
	ErrInvalidCovariance = errors.New("dataset: invalid covariance")

	// ErrUnknownQuantity is returned by ParseQuantityType for unknown names.
	ErrUnknownQuantity = errors.New("dataset: unknown quantity type")

	// ErrUnknownFormat is returned when a document format cannot be resolved.
	ErrUnknownFormat = errors.New("dataset: unknown document format")

	// ErrDecode is returned for documents that parse but are malformed.
	ErrDecode = errors.New("dataset: malformed document")
)

const (
	opNew     = "New"
	opProject = "Histogram.Project"
	opSlice   = "Histogram.Slice"
	opDecode  = "Decode"
	opLoad    = "Load"
	opParse   = "ParseQuantityType"
)

// datasetErrorf wraps err with the operation tag.
func datasetErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
