// SPDX-License-Identifier: MIT

package derived

import (
	"fmt"

	"github.com/ssrothman/simon-mpl-util/binning"
	"github.com/ssrothman/simon-mpl-util/dataset"
	"github.com/ssrothman/simon-mpl-util/operation"
)

// wrapper is the plumbing shared by every derived quantity.
type wrapper struct {
	upstream operation.Prebinned
}

func newWrapper(kind string, upstream operation.Operation) (wrapper, error) {
	p, err := operation.AsPrebinned(upstream)
	if err != nil {
		return wrapper{}, fmt.Errorf("%s: %w", kind, err)
	}

	return wrapper{upstream: p}, nil
}

// Upstream returns the wrapped operation.
func (w wrapper) Upstream() operation.Prebinned { return w.upstream }

// PlotText is the upstream's caption.
func (w wrapper) PlotText() string { return w.upstream.PlotText() }

// ResultingBinning is the upstream's resulting binning.
func (w wrapper) ResultingBinning(b *binning.ArbitraryBinning) (*binning.ArbitraryBinning, error) {
	return w.upstream.ResultingBinning(b)
}

// upstreamInput is what a wrapper works from.
type upstreamInput struct {
	result  operation.Result
	binning *binning.ArbitraryBinning
	qtype   dataset.QuantityType
}

// evaluate runs the upstream on ds and resolves the binning of its result.
func (w wrapper) evaluate(key string, ds dataset.Dataset) (upstreamInput, error) {
	pds, ok := dataset.AsPrebinned(ds)
	if !ok {
		return upstreamInput{}, derivedErrorf(key, fmt.Errorf("%T is not a prebinned dataset: %w", ds, operation.ErrTypeMismatch))
	}
	res, err := w.upstream.Evaluate(pds)
	if err != nil {
		return upstreamInput{}, derivedErrorf(key, err)
	}
	rb, err := w.upstream.ResultingBinning(pds.Binning())
	if err != nil {
		return upstreamInput{}, derivedErrorf(key, err)
	}

	return upstreamInput{result: res, binning: rb, qtype: pds.QuantityType()}, nil
}
