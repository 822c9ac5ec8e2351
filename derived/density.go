// SPDX-License-Identifier: MIT

package derived

import (
	"math"
	"slices"
	"sort"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/ssrothman/simon-mpl-util/binning"
	"github.com/ssrothman/simon-mpl-util/dataset"
	"github.com/ssrothman/simon-mpl-util/matrix"
	"github.com/ssrothman/simon-mpl-util/operation"
)

// DensityOption configures a Density.
type DensityOption func(*densityOptions)

type densityOptions struct {
	radial []string
	clips  map[string]binning.Range
}

// WithRadialAxes marks axes whose width is upper²−lower² instead of
// upper−lower (area elements in a radial coordinate).
func WithRadialAxes(axes ...string) DensityOption {
	return func(o *densityOptions) { o.radial = append(o.radial, axes...) }
}

// WithClip replaces an infinite lower (upper) edge of axis by low (high)
// when computing widths. Panics unless both bounds are finite and low < high.
func WithClip(axis string, low, high float64) DensityOption {
	if math.IsNaN(low) || math.IsNaN(high) || math.IsInf(low, 0) || math.IsInf(high, 0) || low >= high {
		panic(panicClipInvalid)
	}

	return func(o *densityOptions) { o.clips[axis] = binning.Range{Low: low, High: high} }
}

// Density divides the upstream result by the bin volume: values by the
// Jacobian, the matrix by its outer product with itself.
type Density struct {
	wrapper
	radial []string // sorted
	clips  map[string]binning.Range
}

var _ operation.Prebinned = (*Density)(nil)

// NewDensity wraps upstream.
// Errors: operation.ErrTypeMismatch when upstream is not prebinned.
func NewDensity(upstream operation.Operation, opts ...DensityOption) (*Density, error) {
	w, err := newWrapper("Density", upstream)
	if err != nil {
		return nil, err
	}
	o := densityOptions{clips: map[string]binning.Range{}}
	for _, opt := range opts {
		opt(&o)
	}
	clips := make(map[string]binning.Range, len(o.clips))
	for a, r := range o.clips {
		clips[norm.NFC.String(a)] = r
	}

	return &Density{wrapper: w, radial: operation.CanonicalAxes(o.radial), clips: clips}, nil
}

// Key returns "DENSITY(<up>)", with "[r1-r2]" naming radial axes and
// "{x-0.0to1.0}" naming clips when present.
func (d *Density) Key() string {
	var sb strings.Builder
	sb.WriteString("DENSITY")
	if len(d.radial) > 0 {
		sb.WriteString("[" + strings.Join(d.radial, "-") + "]")
	}
	if len(d.clips) > 0 {
		names := make([]string, 0, len(d.clips))
		for n := range d.clips {
			names = append(names, n)
		}
		sort.Strings(names)
		parts := make([]string, len(names))
		for i, n := range names {
			r := d.clips[n]
			parts[i] = n + "-" + operation.FormatEdge(r.Low) + "to" + operation.FormatEdge(r.High)
		}
		sb.WriteString("{" + strings.Join(parts, "_") + "}")
	}
	sb.WriteString("(" + d.upstream.Key() + ")")

	return sb.String()
}

// Equal compares keys and upstream operations.
func (d *Density) Equal(other operation.Operation) bool {
	o, ok := other.(*Density)

	return ok && d.Key() == o.Key() && d.upstream.Equal(o.upstream)
}

// Jacobian returns the volume of every flat bin of b.
//
// Implementation:
//   - Stage 1: per axis, broadcast lower/upper edges over the flat index,
//     substituting clip bounds for infinite edges.
//   - Stage 2: width = upper−lower, or upper²−lower² on radial axes.
//   - Stage 3: volume = Π widths; zero or non-finite volumes become 1.
//
// A binning without axes has the single volume 1.
func (d *Density) Jacobian(b *binning.ArbitraryBinning) []float64 {
	jac := matrix.Ones(b.TotalSize())
	lows, highs := b.LowerEdges(), b.UpperEdges()
	for _, name := range b.AxisNames() {
		lo, hi := lows[name], highs[name]
		clip, hasClip := d.clips[name]
		radial := slices.Contains(d.radial, name)
		for i := range jac {
			l, h := lo[i], hi[i]
			if hasClip && math.IsInf(l, -1) {
				l = clip.Low
			}
			if hasClip && math.IsInf(h, 1) {
				h = clip.High
			}
			if radial {
				jac[i] *= h*h - l*l
			} else {
				jac[i] *= h - l
			}
		}
	}
	for i, v := range jac {
		if v == 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			jac[i] = 1
		}
	}

	return jac
}

// Evaluate returns values/J and cov/(J⊗J).
func (d *Density) Evaluate(ds dataset.Dataset) (operation.Result, error) {
	key := d.Key()
	in, err := d.evaluate(key, ds)
	if err != nil {
		return operation.Result{}, err
	}
	jac := d.Jacobian(in.binning)
	if err := matrix.ValidateVecLen(in.result.Values, len(jac)); err != nil {
		return operation.Result{}, derivedErrorf(key, err)
	}

	out := operation.Result{Values: make([]float64, len(jac))}
	for i, v := range in.result.Values {
		out.Values[i] = v / jac[i]
	}
	if in.result.Cov != nil {
		if out.Cov, err = matrix.DivideOuter(in.result.Cov, jac, jac); err != nil {
			return operation.Result{}, derivedErrorf(key, err)
		}
	}

	return out, nil
}
