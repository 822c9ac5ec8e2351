// SPDX-License-Identifier: MIT

package binning

import (
	"fmt"
	"sort"

	"github.com/ssrothman/simon-mpl-util/matrix"
)

// SliceIndices restricts several axes at once. For every named axis the
// retained bins are those overlapping the requested [Low, High) (see
// Axis.BinRangeFor); axes not named keep all their bins. keep lists the
// surviving input flat indices in increasing order, which is also the flat
// order of the returned binning. Retained bins keep their own edges.
//
// An empty edges map returns every index and an equal binning.
//
// Errors: ErrUnknownAxis, ErrInvalidRange.
// Complexity: O(TotalSize(result) * Nax).
func (b *ArbitraryBinning) SliceIndices(edges map[string]Range) ([]int, *ArbitraryBinning, error) {
	// Unknown names first, sorted, so the reported axis is deterministic.
	var unknown []string
	ranges := make(map[string]Range, len(edges))
	for name, r := range edges {
		if !b.HasAxis(name) {
			unknown = append(unknown, name)
		}
		ranges[canonical(name)] = r
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return nil, nil, binningErrorf(opSliceIndices, fmt.Errorf("%q: %w", unknown[0], ErrUnknownAxis))
	}

	offsets := make([]int, len(b.axes))
	sub := make([]Axis, len(b.axes))
	for k, ax := range b.axes {
		r, ok := ranges[ax.name]
		if !ok {
			sub[k] = ax
			continue
		}
		i0, i1, err := ax.BinRangeFor(r.Low, r.High)
		if err != nil {
			return nil, nil, binningErrorf(opSliceIndices, err)
		}
		offsets[k] = i0
		sub[k] = ax.Sub(i0, i1)
	}

	sliced := &ArbitraryBinning{axes: sub}
	st := b.Strides()
	keep := make([]int, sliced.TotalSize())
	sliced.forEachBin(func(flat int, coords []int) {
		src := 0
		for k, c := range coords {
			src += (c + offsets[k]) * st[k]
		}
		keep[flat] = src
	})

	return keep, sliced, nil
}

// Slice gathers data (and cov, when non-nil) at the bins SliceIndices keeps.
// The matrix is restricted on both dimensions with the same index list.
//
// Errors: ErrSizeMismatch, ErrUnknownAxis, ErrInvalidRange.
func (b *ArbitraryBinning) Slice(data []float64, cov *matrix.Dense, edges map[string]Range) ([]float64, *matrix.Dense, *ArbitraryBinning, error) {
	n := b.TotalSize()
	if len(data) != n {
		return nil, nil, nil, binningErrorf(opSlice, fmt.Errorf("data length %d, binning size %d: %w", len(data), n, ErrSizeMismatch))
	}
	if cov != nil && (cov.Rows() != n || cov.Cols() != n) {
		return nil, nil, nil, binningErrorf(opSlice, fmt.Errorf("matrix %dx%d, binning size %d: %w", cov.Rows(), cov.Cols(), n, ErrSizeMismatch))
	}
	keep, sliced, err := b.SliceIndices(edges)
	if err != nil {
		return nil, nil, nil, binningErrorf(opSlice, err)
	}

	vals := make([]float64, len(keep))
	for i, src := range keep {
		vals[i] = data[src]
	}
	var subCov *matrix.Dense
	if cov != nil {
		if subCov, err = cov.Induced(keep, keep); err != nil {
			return nil, nil, nil, binningErrorf(opSlice, err)
		}
	}

	return vals, subCov, sliced, nil
}
