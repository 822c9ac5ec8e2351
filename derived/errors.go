// SPDX-License-Identifier: MIT
// Package derived: sentinel error set.

package derived

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingCovariance is returned when a wrapper needs the matrix and
	// the upstream result has none.
	ErrMissingCovariance = errors.New("derived: missing covariance")

	// ErrInvalidNormalization is returned when the dataset's quantity type
	// does not support the requested quantity (e.g. correlation of a
	// transfer matrix).
	ErrInvalidNormalization = errors.New("derived: invalid normalization")

	// ErrNotImplemented is returned for propagations that are deliberately
	// left undefined, such as block-normalizing a transfer matrix.
	ErrNotImplemented = errors.New("derived: not implemented")
)

const panicClipInvalid = "derived: WithClip: bounds must be finite with low < high"

// derivedErrorf wraps err with the wrapper key.
func derivedErrorf(key string, err error) error {
	return fmt.Errorf("%s: %w", key, err)
}
