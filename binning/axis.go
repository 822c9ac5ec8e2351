// SPDX-License-Identifier: MIT

package binning

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Axis is one named dimension of a binning: nbins = len(edges)-1 bins,
// bin i covering [edges[i], edges[i+1]).
// The zero Axis is invalid; build axes with NewAxis.
type Axis struct {
	name  string
	edges []float64
}

// Range is a requested half-open interval [Low, High) on one axis.
type Range struct {
	Low, High float64
}

// String renders the range as "[low, high)".
func (r Range) String() string { return fmt.Sprintf("[%g, %g)", r.Low, r.High) }

// NewAxis validates and builds an axis.
//
// Rules:
//   - name is non-empty and contains neither '-' nor '_', the separators of
//     operation keys;
//   - at least two edges, none NaN;
//   - strictly increasing (so -Inf may only be first and +Inf only last).
//
// The name is stored in Unicode NFC form; the edges slice is copied.
func NewAxis(name string, edges ...float64) (Axis, error) {
	name = canonical(name)
	if name == "" {
		return Axis{}, binningErrorf(opNewAxis, fmt.Errorf("empty name: %w", ErrBadName))
	}
	if strings.ContainsAny(name, ReservedNameChars) {
		return Axis{}, binningErrorf(opNewAxis, fmt.Errorf("axis %q uses one of %q: %w", name, ReservedNameChars, ErrBadName))
	}
	if len(edges) < 2 {
		return Axis{}, binningErrorf(opNewAxis, fmt.Errorf("axis %q needs at least 2 edges, got %d: %w", name, len(edges), ErrBadEdges))
	}
	for i, e := range edges {
		if math.IsNaN(e) {
			return Axis{}, binningErrorf(opNewAxis, fmt.Errorf("axis %q edge %d is NaN: %w", name, i, ErrBadEdges))
		}
		if i > 0 && !(e > edges[i-1]) {
			return Axis{}, binningErrorf(opNewAxis, fmt.Errorf("axis %q edges not strictly increasing at %d: %w", name, i, ErrBadEdges))
		}
	}
	cp := make([]float64, len(edges))
	copy(cp, edges)

	return Axis{name: name, edges: cp}, nil
}

// ReservedNameChars may not appear in axis names.
const ReservedNameChars = "-_"

// canonical is the form axis names are stored and compared in.
func canonical(name string) string { return norm.NFC.String(name) }

// Name returns the axis name.
func (a Axis) Name() string { return a.name }

// NBins returns len(edges)-1.
func (a Axis) NBins() int { return len(a.edges) - 1 }

// Edges returns a copy of the bin edges.
func (a Axis) Edges() []float64 {
	out := make([]float64, len(a.edges))
	copy(out, a.edges)

	return out
}

// LowerEdges returns the low edge of every bin, aligned with bin index.
func (a Axis) LowerEdges() []float64 {
	out := make([]float64, a.NBins())
	copy(out, a.edges[:len(a.edges)-1])

	return out
}

// UpperEdges returns the high edge of every bin, aligned with bin index.
func (a Axis) UpperEdges() []float64 {
	out := make([]float64, a.NBins())
	copy(out, a.edges[1:])

	return out
}

// BinRangeFor returns the contiguous bin range [i0, i1) of bins that overlap
// [low, high), fully or partially.
//
// Errors (ErrInvalidRange):
//   - low or high is NaN, or low >= high;
//   - neither bound lies within [edges[0], edges[last]];
//   - no bin overlaps the range (e.g. low == edges[last]).
//
// Complexity: O(log nbins).
func (a Axis) BinRangeFor(low, high float64) (int, int, error) {
	if math.IsNaN(low) || math.IsNaN(high) || low >= high {
		return 0, 0, binningErrorf(opBinRangeFor, fmt.Errorf("axis %q range [%g, %g): %w", a.name, low, high, ErrInvalidRange))
	}
	first, last := a.edges[0], a.edges[len(a.edges)-1]
	lowIn := low >= first && low <= last
	highIn := high >= first && high <= last
	if !lowIn && !highIn {
		return 0, 0, binningErrorf(opBinRangeFor, fmt.Errorf("axis %q range [%g, %g) outside [%g, %g]: %w", a.name, low, high, first, last, ErrInvalidRange))
	}

	n := a.NBins()
	// First bin whose upper edge lies above low.
	i0 := sort.Search(n, func(i int) bool { return a.edges[i+1] > low })
	// One past the last bin whose lower edge lies below high.
	i1 := sort.Search(n, func(i int) bool { return a.edges[i] >= high })
	if i0 >= i1 {
		return 0, 0, binningErrorf(opBinRangeFor, fmt.Errorf("axis %q range [%g, %g) overlaps no bin: %w", a.name, low, high, ErrInvalidRange))
	}

	return i0, i1, nil
}

// Sub returns the axis restricted to bins [i0, i1), keeping their own edges.
// The caller guarantees 0 <= i0 < i1 <= NBins().
func (a Axis) Sub(i0, i1 int) Axis {
	cp := make([]float64, i1-i0+1)
	copy(cp, a.edges[i0:i1+1])

	return Axis{name: a.name, edges: cp}
}

// Equal reports identical names and bitwise-identical edges.
func (a Axis) Equal(b Axis) bool {
	if a.name != b.name || len(a.edges) != len(b.edges) {
		return false
	}
	for i := range a.edges {
		if a.edges[i] != b.edges[i] {
			return false
		}
	}

	return true
}

// Bin returns the index of the bin containing x, or -1 when x is outside.
func (a Axis) Bin(x float64) int {
	n := a.NBins()
	if math.IsNaN(x) || x < a.edges[0] || x >= a.edges[n] {
		return -1
	}

	return sort.Search(n, func(i int) bool { return a.edges[i+1] > x })
}
