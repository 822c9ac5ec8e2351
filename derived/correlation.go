// SPDX-License-Identifier: MIT

package derived

import (
	"fmt"

	"github.com/ssrothman/simon-mpl-util/dataset"
	"github.com/ssrothman/simon-mpl-util/matrix"
	"github.com/ssrothman/simon-mpl-util/operation"
)

// CorrelationFromCovariance returns values/std and cov/(std⊗std), std the
// square root of the covariance diagonal. Bins with zero variance keep
// their raw value and get a zero correlation row.
type CorrelationFromCovariance struct {
	wrapper
}

var _ operation.Prebinned = (*CorrelationFromCovariance)(nil)

// NewCorrelationFromCovariance wraps upstream.
// Errors: operation.ErrTypeMismatch when upstream is not prebinned.
func NewCorrelationFromCovariance(upstream operation.Operation) (*CorrelationFromCovariance, error) {
	w, err := newWrapper("CorrelationFromCovariance", upstream)
	if err != nil {
		return nil, err
	}

	return &CorrelationFromCovariance{wrapper: w}, nil
}

// Key returns "CORREL(<up>)".
func (c *CorrelationFromCovariance) Key() string { return "CORREL(" + c.upstream.Key() + ")" }

// Equal compares upstream operations.
func (c *CorrelationFromCovariance) Equal(other operation.Operation) bool {
	o, ok := other.(*CorrelationFromCovariance)

	return ok && c.upstream.Equal(o.upstream)
}

// Evaluate extracts the correlation.
// Errors: ErrMissingCovariance, ErrInvalidNormalization (transfer matrix).
func (c *CorrelationFromCovariance) Evaluate(ds dataset.Dataset) (operation.Result, error) {
	key := c.Key()
	in, err := c.evaluate(key, ds)
	if err != nil {
		return operation.Result{}, err
	}
	if in.result.Cov == nil {
		return operation.Result{}, derivedErrorf(key, ErrMissingCovariance)
	}
	if in.qtype != dataset.Covariance {
		return operation.Result{}, derivedErrorf(key, fmt.Errorf("correlation of a %s matrix: %w", in.qtype, ErrInvalidNormalization))
	}
	corr, std, err := matrix.CovToCorr(in.result.Cov)
	if err != nil {
		return operation.Result{}, derivedErrorf(key, err)
	}
	if err := matrix.ValidateVecLen(in.result.Values, len(std)); err != nil {
		return operation.Result{}, derivedErrorf(key, err)
	}
	vals := make([]float64, len(std))
	for i, v := range in.result.Values {
		if std[i] != 0 {
			v /= std[i]
		}
		vals[i] = v
	}

	return operation.Result{Values: vals, Cov: corr}, nil
}
