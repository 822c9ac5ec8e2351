// SPDX-License-Identifier: MIT
// Package operation: sentinel error set.

package operation

import (
	"errors"
	"fmt"
)

var (
	// ErrTypeMismatch is returned when a dataset or an operation lacks the
	// prebinned capability an operation requires.
	ErrTypeMismatch = errors.New("operation: type mismatch")

	// ErrNilBinning is returned when ResultingBinning gets a nil binning.
	ErrNilBinning = errors.New("operation: nil binning")

	// ErrBinningMismatch is returned when an instance whose resulting binning
	// is already cached is asked about a structurally different input.
	ErrBinningMismatch = errors.New("operation: instance already bound to a different binning")
)

// operationErrorf wraps err with the operation key.
func operationErrorf(key string, err error) error {
	return fmt.Errorf("%s: %w", key, err)
}
