// SPDX-License-Identifier: MIT

package operation

import (
	"github.com/ssrothman/simon-mpl-util/binning"
	"github.com/ssrothman/simon-mpl-util/dataset"
)

// ProjectAndSlice projects, then slices the projected result.
type ProjectAndSlice struct {
	plotText
	projection *Projection
	slice      *Slice
	cache      binningCache
}

var _ Prebinned = (*ProjectAndSlice)(nil)

// NewProjectAndSlice composes NewProjection(axes...) with NewSlice(edges).
func NewProjectAndSlice(axes []string, edges map[string]binning.Range) *ProjectAndSlice {
	return &ProjectAndSlice{projection: NewProjection(axes...), slice: NewSlice(edges)}
}

// Projection returns the projection stage.
func (ps *ProjectAndSlice) Projection() *Projection { return ps.projection }

// Slice returns the slice stage.
func (ps *ProjectAndSlice) Slice() *Slice { return ps.slice }

// Key returns "<projection key>_<slice key>".
func (ps *ProjectAndSlice) Key() string { return ps.projection.Key() + "_" + ps.slice.Key() }

// PlotText defaults to "<projection text>; <slice text>".
func (ps *ProjectAndSlice) PlotText() string {
	return ps.text(func() string { return ps.projection.PlotText() + "; " + ps.slice.PlotText() })
}

// Equal compares both stages.
func (ps *ProjectAndSlice) Equal(other Operation) bool {
	o, ok := other.(*ProjectAndSlice)

	return ok && ps.projection.Equal(o.projection) && ps.slice.Equal(o.slice)
}

// Evaluate projects the dataset, then slices the projection. Slicing an
// axis that was projected out fails with binning.ErrUnknownAxis.
func (ps *ProjectAndSlice) Evaluate(ds dataset.Dataset) (Result, error) {
	pd, err := prebinnedDataset(ps.Key(), ds)
	if err != nil {
		return Result{}, err
	}
	projected, _, err := pd.Project(ps.projection.axes...)
	if err != nil {
		return Result{}, operationErrorf(ps.Key(), err)
	}
	sliced, err := projected.Slice(ps.slice.edges)
	if err != nil {
		return Result{}, operationErrorf(ps.Key(), err)
	}

	return resultOf(sliced), nil
}

// ResultingBinning replays the projection, then the slice, on b. The
// stages' own caches are left untouched.
func (ps *ProjectAndSlice) ResultingBinning(b *binning.ArbitraryBinning) (*binning.ArbitraryBinning, error) {
	return ps.cache.resolve(ps.Key(), b, func(in *binning.ArbitraryBinning) (*binning.ArbitraryBinning, error) {
		projected, err := ps.projection.compute(in)
		if err != nil {
			return nil, err
		}
		return ps.slice.compute(projected)
	})
}
