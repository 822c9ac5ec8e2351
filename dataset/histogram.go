// SPDX-License-Identifier: MIT

package dataset

import (
	"fmt"
	"maps"
	"math"
	"slices"
	"strings"

	"github.com/ssrothman/simon-mpl-util/binning"
	"github.com/ssrothman/simon-mpl-util/matrix"
)

// Histogram is the in-memory Prebinned dataset. It is immutable: accessors
// return copies and Project/Slice return new histograms with the same
// quantity type, keyed "<key>_PROJECT(a-b)" and "<key>_SLICE(x[0, 1))".
type Histogram struct {
	key     string
	binning *binning.ArbitraryBinning
	values  []float64
	cov     *matrix.Dense
	qtype   QuantityType
}

var _ Prebinned = (*Histogram)(nil)

// New validates and builds a histogram.
//
// Implementation:
//   - Stage 1: key non-empty, binning non-nil, len(values) == TotalSize.
//   - Stage 2: when a matrix is attached it must be TotalSize×TotalSize with
//     finite entries.
//   - Stage 3: a Covariance-tagged matrix must also be symmetric within the
//     relative tolerance and have a non-negative diagonal. Transfer matrices
//     are only shape-checked.
//
// Errors: ErrEmptyKey, ErrNilBinning, ErrSizeMismatch, ErrInvalidMatrix
// (wrapping matrix.ErrNaNInf), ErrInvalidCovariance
// (wrapping matrix.ErrAsymmetry, matrix.ErrNegativeVariance or, with
// WithPSDCheck, matrix.ErrNotPositiveSemidefinite).
func New(key string, b *binning.ArbitraryBinning, values []float64, opts ...Option) (*Histogram, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	// Stage 1
	if key == "" {
		return nil, datasetErrorf(opNew, ErrEmptyKey)
	}
	if b == nil {
		return nil, datasetErrorf(opNew, ErrNilBinning)
	}
	n := b.TotalSize()
	if len(values) != n {
		return nil, datasetErrorf(opNew, fmt.Errorf("%d values for %d bins: %w", len(values), n, ErrSizeMismatch))
	}

	// Stage 2
	if o.cov != nil {
		if err := matrix.ValidateShape(o.cov, n, n); err != nil {
			return nil, datasetErrorf(opNew, fmt.Errorf("matrix %dx%d for %d bins: %w: %w", o.cov.Rows(), o.cov.Cols(), n, ErrSizeMismatch, err))
		}
		if err := matrix.ValidateFinite(o.cov); err != nil {
			return nil, datasetErrorf(opNew, fmt.Errorf("%w: %w", ErrInvalidMatrix, err))
		}
		// Stage 3
		if o.qtype == Covariance {
			if err := checkCovariance(o.cov, o.symTol, o.psdTol); err != nil {
				return nil, datasetErrorf(opNew, err)
			}
		}
	}

	vals := make([]float64, n)
	copy(vals, values)

	return &Histogram{key: key, binning: b, values: vals, cov: o.cov, qtype: o.qtype}, nil
}

// checkCovariance enforces symmetry (relative to the largest magnitude), a
// non-negative diagonal and, when psdTol > 0, positive semidefiniteness.
func checkCovariance(c *matrix.Dense, eps, psdTol float64) error {
	scale := math.Max(1, math.Max(math.Abs(c.Min()), math.Abs(c.Max())))
	if err := matrix.ValidateSymmetric(c, eps*scale); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidCovariance, err)
	}
	for i, v := range c.Diag() {
		if v < 0 {
			return fmt.Errorf("%w: variance of bin %d is %g: %w", ErrInvalidCovariance, i, v, matrix.ErrNegativeVariance)
		}
	}
	if psdTol > 0 {
		if err := matrix.ValidatePSD(c, psdTol); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidCovariance, err)
		}
	}

	return nil
}

// Key returns the dataset key.
func (h *Histogram) Key() string { return h.key }

// Values returns a copy of the value vector.
func (h *Histogram) Values() []float64 {
	out := make([]float64, len(h.values))
	copy(out, h.values)

	return out
}

// Cov returns a copy of the matrix, or nil.
func (h *Histogram) Cov() *matrix.Dense {
	if h.cov == nil {
		return nil
	}

	return h.cov.Clone()
}

// HasCov reports whether a matrix is attached.
func (h *Histogram) HasCov() bool { return h.cov != nil }

// Binning returns the histogram's binning.
func (h *Histogram) Binning() *binning.ArbitraryBinning { return h.binning }

// QuantityType returns the matrix semantics.
func (h *Histogram) QuantityType() QuantityType { return h.qtype }

// Project sums axes out of the values and propagates the matrix through the
// 0/1 summation Jacobian, J·C·Jᵀ. Transfer matrices propagate the same way.
//
// Errors: binning.ErrUnknownAxis.
func (h *Histogram) Project(axes ...string) (Prebinned, []int, error) {
	p, err := h.binning.Project(h.values, h.cov, axes...)
	if err != nil {
		return nil, nil, datasetErrorf(opProject, err)
	}

	key := h.key + "_PROJECT(" + strings.Join(sortedNames(axes), "-") + ")"

	return &Histogram{key: key, binning: p.Binning, values: p.Values, cov: p.Cov, qtype: h.qtype}, p.Groups, nil
}

// Slice restricts the histogram to the bins overlapping every requested
// range; the matrix is restricted on both dimensions.
//
// Errors: binning.ErrUnknownAxis, binning.ErrInvalidRange.
func (h *Histogram) Slice(edges map[string]binning.Range) (Prebinned, error) {
	vals, cov, b, err := h.binning.Slice(h.values, h.cov, edges)
	if err != nil {
		return nil, datasetErrorf(opSlice, err)
	}

	names := sortedNames(slices.Collect(maps.Keys(edges)))
	parts := make([]string, len(names))
	for i, name := range names {
		parts[i] = name + edges[name].String()
	}
	key := h.key + "_SLICE(" + strings.Join(parts, "_") + ")"

	return &Histogram{key: key, binning: b, values: vals, cov: cov, qtype: h.qtype}, nil
}

func sortedNames(names []string) []string {
	return slices.Compact(slices.Sorted(slices.Values(names)))
}
