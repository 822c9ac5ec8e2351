// SPDX-License-Identifier: MIT

package operation

import (
	"fmt"

	"github.com/ssrothman/simon-mpl-util/binning"
	"github.com/ssrothman/simon-mpl-util/dataset"
	"github.com/ssrothman/simon-mpl-util/matrix"
)

// Result is the outcome of evaluating an operation.
type Result struct {
	Values []float64
	Cov    *matrix.Dense // nil when the input had no matrix
}

// HasCov reports whether the result carries a matrix.
func (r Result) HasCov() bool { return r.Cov != nil }

// Operation is anything that can be evaluated on a dataset and named.
type Operation interface {
	Evaluate(ds dataset.Dataset) (Result, error)
	Key() string
	PlotText() string
	Equal(other Operation) bool
}

// Prebinned is the capability of an operation that knows the binning of its
// results without evaluating data.
type Prebinned interface {
	Operation
	ResultingBinning(b *binning.ArbitraryBinning) (*binning.ArbitraryBinning, error)
}

// AsPrebinned checks op for the prebinned capability.
func AsPrebinned(op Operation) (Prebinned, error) {
	if op == nil {
		return nil, fmt.Errorf("nil operation: %w", ErrTypeMismatch)
	}
	p, ok := op.(Prebinned)
	if !ok {
		return nil, operationErrorf(op.Key(), fmt.Errorf("%T is not a prebinned operation: %w", op, ErrTypeMismatch))
	}

	return p, nil
}

// prebinnedDataset checks ds for the prebinned capability.
func prebinnedDataset(key string, ds dataset.Dataset) (dataset.Prebinned, error) {
	p, ok := dataset.AsPrebinned(ds)
	if !ok {
		return nil, operationErrorf(key, fmt.Errorf("%T is not a prebinned dataset: %w", ds, ErrTypeMismatch))
	}

	return p, nil
}

// BuildPrebinnedAxis returns the binning op's results live on when applied
// to ds. Both must have the prebinned capability.
func BuildPrebinnedAxis(ds dataset.Dataset, op Operation) (*binning.ArbitraryBinning, error) {
	pop, err := AsPrebinned(op)
	if err != nil {
		return nil, err
	}
	pds, err := prebinnedDataset(op.Key(), ds)
	if err != nil {
		return nil, err
	}

	return pop.ResultingBinning(pds.Binning())
}

// resultOf copies a prebinned dataset into a Result.
func resultOf(p dataset.Prebinned) Result {
	return Result{Values: p.Values(), Cov: p.Cov()}
}
