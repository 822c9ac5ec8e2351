// SPDX-License-Identifier: MIT

package operation

import (
	"slices"
	"sort"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/ssrothman/simon-mpl-util/binning"
	"github.com/ssrothman/simon-mpl-util/dataset"
)

// Projection sums a set of axes out of a dataset.
type Projection struct {
	plotText
	axes  []string // NFC, sorted, unique
	cache binningCache
}

var _ Prebinned = (*Projection)(nil)

// NewProjection returns the operation summing out axes. Names are
// deduplicated; their order does not matter.
func NewProjection(axes ...string) *Projection {
	return &Projection{axes: CanonicalAxes(axes)}
}

// CanonicalAxes NFC-normalizes, sorts and deduplicates axis names, the
// form every axis list takes inside an operation key.
func CanonicalAxes(axes []string) []string {
	out := make([]string, 0, len(axes))
	for _, a := range axes {
		out = append(out, norm.NFC.String(a))
	}
	sort.Strings(out)

	return slices.Compact(out)
}

// Axes returns the projected axis names in canonical order.
func (p *Projection) Axes() []string { return slices.Clone(p.axes) }

// Key returns "PROJECT(a-b)".
func (p *Projection) Key() string { return "PROJECT(" + strings.Join(p.axes, "-") + ")" }

// PlotText defaults to "Integrated over a, b".
func (p *Projection) PlotText() string {
	return p.text(func() string { return "Integrated over " + strings.Join(p.axes, ", ") })
}

// Equal reports whether other projects the same axes.
func (p *Projection) Equal(other Operation) bool {
	o, ok := other.(*Projection)

	return ok && slices.Equal(p.axes, o.axes)
}

// Evaluate delegates to the dataset's Project; the index map it also
// returns is not needed here.
func (p *Projection) Evaluate(ds dataset.Dataset) (Result, error) {
	pd, err := prebinnedDataset(p.Key(), ds)
	if err != nil {
		return Result{}, err
	}
	projected, _, err := pd.Project(p.axes...)
	if err != nil {
		return Result{}, operationErrorf(p.Key(), err)
	}

	return resultOf(projected), nil
}

// ResultingBinning replays the axis removal on a placeholder vector.
func (p *Projection) ResultingBinning(b *binning.ArbitraryBinning) (*binning.ArbitraryBinning, error) {
	return p.cache.resolve(p.Key(), b, p.compute)
}

func (p *Projection) compute(b *binning.ArbitraryBinning) (*binning.ArbitraryBinning, error) {
	placeholder := make([]float64, b.TotalSize())
	result := b
	var err error
	for _, axis := range p.axes {
		if placeholder, result, err = result.ProjectOut(placeholder, axis); err != nil {
			return nil, err
		}
	}

	return result, nil
}
