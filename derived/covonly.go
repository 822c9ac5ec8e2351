// SPDX-License-Identifier: MIT

package derived

import (
	"github.com/ssrothman/simon-mpl-util/dataset"
	"github.com/ssrothman/simon-mpl-util/operation"
)

// CovarianceOnly keeps only the matrix of the upstream result.
type CovarianceOnly struct {
	wrapper
}

var _ operation.Prebinned = (*CovarianceOnly)(nil)

// NewCovarianceOnly wraps upstream.
func NewCovarianceOnly(upstream operation.Operation) (*CovarianceOnly, error) {
	w, err := newWrapper("CovarianceOnly", upstream)
	if err != nil {
		return nil, err
	}

	return &CovarianceOnly{wrapper: w}, nil
}

// Key returns "COV(<up>)".
func (c *CovarianceOnly) Key() string { return "COV(" + c.upstream.Key() + ")" }

// Equal compares upstream operations.
func (c *CovarianceOnly) Equal(other operation.Operation) bool {
	o, ok := other.(*CovarianceOnly)

	return ok && c.upstream.Equal(o.upstream)
}

// Evaluate returns a Result with Cov set and no Values.
// Errors: ErrMissingCovariance.
func (c *CovarianceOnly) Evaluate(ds dataset.Dataset) (operation.Result, error) {
	key := c.Key()
	in, err := c.evaluate(key, ds)
	if err != nil {
		return operation.Result{}, err
	}
	if in.result.Cov == nil {
		return operation.Result{}, derivedErrorf(key, ErrMissingCovariance)
	}

	return operation.Result{Cov: in.result.Cov}, nil
}
