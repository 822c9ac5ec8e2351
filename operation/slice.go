// SPDX-License-Identifier: MIT

package operation

import (
	"maps"
	"slices"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/ssrothman/simon-mpl-util/binning"
	"github.com/ssrothman/simon-mpl-util/dataset"
)

// Slice restricts axes of a dataset to edge ranges. Bins overlapping a
// requested [Low, High) are kept with their own edges.
type Slice struct {
	plotText
	edges map[string]binning.Range
	names []string // sorted keys of edges
	cache binningCache
}

var _ Prebinned = (*Slice)(nil)

// NewSlice returns the operation restricting each named axis to its range.
// The map is copied.
func NewSlice(edges map[string]binning.Range) *Slice {
	cp := make(map[string]binning.Range, len(edges))
	for name, r := range edges {
		cp[norm.NFC.String(name)] = r
	}

	return &Slice{edges: cp, names: slices.Sorted(maps.Keys(cp))}
}

// Edges returns a copy of the requested ranges.
func (s *Slice) Edges() map[string]binning.Range { return maps.Clone(s.edges) }

// Key returns "SLICE(x-0.0to1.0_y-2.0to3.0)", axes sorted.
func (s *Slice) Key() string {
	parts := make([]string, len(s.names))
	for i, name := range s.names {
		r := s.edges[name]
		parts[i] = name + "-" + FormatEdge(r.Low) + "to" + FormatEdge(r.High)
	}

	return "SLICE(" + strings.Join(parts, "_") + ")"
}

// PlotText defaults to "x in [0.0, 1.0] and y in [2.0, 3.0]".
func (s *Slice) PlotText() string {
	return s.text(func() string {
		parts := make([]string, len(s.names))
		for i, name := range s.names {
			r := s.edges[name]
			parts[i] = name + " in [" + FormatEdge(r.Low) + ", " + FormatEdge(r.High) + "]"
		}
		return strings.Join(parts, " and ")
	})
}

// Equal compares the requested ranges.
func (s *Slice) Equal(other Operation) bool {
	o, ok := other.(*Slice)

	return ok && maps.Equal(s.edges, o.edges)
}

// Evaluate delegates to the dataset's Slice.
func (s *Slice) Evaluate(ds dataset.Dataset) (Result, error) {
	pd, err := prebinnedDataset(s.Key(), ds)
	if err != nil {
		return Result{}, err
	}
	sliced, err := pd.Slice(s.edges)
	if err != nil {
		return Result{}, operationErrorf(s.Key(), err)
	}

	return resultOf(sliced), nil
}

// ResultingBinning restricts the sliced axes to the retained bins.
func (s *Slice) ResultingBinning(b *binning.ArbitraryBinning) (*binning.ArbitraryBinning, error) {
	return s.cache.resolve(s.Key(), b, s.compute)
}

func (s *Slice) compute(b *binning.ArbitraryBinning) (*binning.ArbitraryBinning, error) {
	_, sliced, err := b.SliceIndices(s.edges)

	return sliced, err
}
