// SPDX-License-Identifier: MIT

package dataset

import (
	"fmt"
	"strings"
)

// QuantityType tags what the matrix of a prebinned dataset means.
type QuantityType int

const (
	// Covariance: the matrix is the symmetric covariance of the values.
	Covariance QuantityType = iota
	// Transfer: the matrix maps one binning onto another (response or
	// migration matrix); row/column normalizations apply, correlation does not.
	Transfer
)

// String returns "covariance" or "transfer".
func (q QuantityType) String() string {
	switch q {
	case Covariance:
		return "covariance"
	case Transfer:
		return "transfer"
	default:
		return fmt.Sprintf("QuantityType(%d)", int(q))
	}
}

// ParseQuantityType accepts the String forms, case-insensitively.
// The empty string means Covariance.
func ParseQuantityType(s string) (QuantityType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "covariance":
		return Covariance, nil
	case "transfer":
		return Transfer, nil
	default:
		return 0, datasetErrorf(opParse, fmt.Errorf("%q: %w", s, ErrUnknownQuantity))
	}
}
