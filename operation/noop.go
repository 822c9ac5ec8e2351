// SPDX-License-Identifier: MIT

package operation

import (
	"github.com/ssrothman/simon-mpl-util/binning"
	"github.com/ssrothman/simon-mpl-util/dataset"
)

// Noop returns the dataset unchanged.
type Noop struct {
	plotText
	cache binningCache
}

var _ Prebinned = (*Noop)(nil)

// NewNoop returns the identity operation.
func NewNoop() *Noop { return &Noop{} }

// Key returns "NOOP".
func (*Noop) Key() string { return "NOOP" }

// PlotText is empty unless overridden.
func (n *Noop) PlotText() string { return n.text(func() string { return "" }) }

// Equal reports whether other is also a Noop.
func (*Noop) Equal(other Operation) bool {
	_, ok := other.(*Noop)

	return ok
}

// Evaluate returns the dataset's values and matrix.
func (n *Noop) Evaluate(ds dataset.Dataset) (Result, error) {
	p, err := prebinnedDataset(n.Key(), ds)
	if err != nil {
		return Result{}, err
	}

	return resultOf(p), nil
}

// ResultingBinning is the input binning.
func (n *Noop) ResultingBinning(b *binning.ArbitraryBinning) (*binning.ArbitraryBinning, error) {
	return n.cache.resolve(n.Key(), b, func(in *binning.ArbitraryBinning) (*binning.ArbitraryBinning, error) {
		return in, nil
	})
}
