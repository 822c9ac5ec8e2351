// SPDX-License-Identifier: MIT

package binning

import (
	"fmt"
	"strings"
)

// ArbitraryBinning is an ordered collection of uniquely named axes with a
// row-major flattening (last axis fastest). It is immutable.
type ArbitraryBinning struct {
	axes []Axis
}

// New builds a binning from axes in declaration order.
// Zero axes are allowed (a fully projected, scalar binning).
//
// Errors:
//   - ErrBadEdges for a zero-value Axis.
//   - ErrDuplicateAxis when two axes share a name.
func New(axes ...Axis) (*ArbitraryBinning, error) {
	seen := make(map[string]struct{}, len(axes))
	for i, ax := range axes {
		if ax.name == "" || len(ax.edges) < 2 {
			return nil, binningErrorf(opNew, fmt.Errorf("axis %d: %w", i, ErrBadEdges))
		}
		if _, dup := seen[ax.name]; dup {
			return nil, binningErrorf(opNew, fmt.Errorf("%q: %w", ax.name, ErrDuplicateAxis))
		}
		seen[ax.name] = struct{}{}
	}
	cp := make([]Axis, len(axes))
	copy(cp, axes) // Axis values never expose their edges, so a shallow copy is enough

	return &ArbitraryBinning{axes: cp}, nil
}

// Nax returns the number of axes.
func (b *ArbitraryBinning) Nax() int { return len(b.axes) }

// Axes returns the axes in declaration order.
func (b *ArbitraryBinning) Axes() []Axis {
	out := make([]Axis, len(b.axes))
	copy(out, b.axes)

	return out
}

// AxisNames returns the axis names in declaration order.
func (b *ArbitraryBinning) AxisNames() []string {
	out := make([]string, len(b.axes))
	for i, ax := range b.axes {
		out[i] = ax.name
	}

	return out
}

// Axis returns the named axis.
func (b *ArbitraryBinning) Axis(name string) (Axis, bool) {
	i := b.indexOf(name)
	if i < 0 {
		return Axis{}, false
	}

	return b.axes[i], true
}

// HasAxis reports whether the binning has an axis with the given name.
func (b *ArbitraryBinning) HasAxis(name string) bool { return b.indexOf(name) >= 0 }

// indexOf returns the declaration index of name (compared in NFC form) or -1.
func (b *ArbitraryBinning) indexOf(name string) int {
	name = canonical(name)
	for i, ax := range b.axes {
		if ax.name == name {
			return i
		}
	}

	return -1
}

// Shape returns nbins per axis.
func (b *ArbitraryBinning) Shape() []int {
	out := make([]int, len(b.axes))
	for i, ax := range b.axes {
		out[i] = ax.NBins()
	}

	return out
}

// TotalSize returns the product of nbins over all axes (1 for zero axes).
// It is computed from the axes on every call.
func (b *ArbitraryBinning) TotalSize() int {
	n := 1
	for _, ax := range b.axes {
		n *= ax.NBins()
	}

	return n
}

// Strides returns the row-major stride of every axis.
func (b *ArbitraryBinning) Strides() []int {
	st := make([]int, len(b.axes))
	s := 1
	for k := len(b.axes) - 1; k >= 0; k-- {
		st[k] = s
		s *= b.axes[k].NBins()
	}

	return st
}

// FlatIndex maps one bin coordinate per axis to its flat index.
// Errors: ErrSizeMismatch (wrong number of coordinates), ErrInvalidRange
// (coordinate outside its axis).
func (b *ArbitraryBinning) FlatIndex(coords ...int) (int, error) {
	if len(coords) != len(b.axes) {
		return 0, binningErrorf(opFlatIndex, ErrSizeMismatch)
	}
	st := b.Strides()
	flat := 0
	for k, c := range coords {
		if c < 0 || c >= b.axes[k].NBins() {
			return 0, binningErrorf(opFlatIndex, fmt.Errorf("axis %q coordinate %d: %w", b.axes[k].name, c, ErrInvalidRange))
		}
		flat += c * st[k]
	}

	return flat, nil
}

// Coords maps a flat index back to one bin coordinate per axis.
// A flat index outside [0, TotalSize) returns nil.
func (b *ArbitraryBinning) Coords(flat int) []int {
	if flat < 0 || flat >= b.TotalSize() {
		return nil
	}
	out := make([]int, len(b.axes))
	for k := len(b.axes) - 1; k >= 0; k-- {
		n := b.axes[k].NBins()
		out[k] = flat % n
		flat /= n
	}

	return out
}

// forEachBin walks every flat index in increasing order, passing the
// per-axis coordinates. coords is reused between calls; do not retain it.
func (b *ArbitraryBinning) forEachBin(fn func(flat int, coords []int)) {
	shape := b.Shape()
	coords := make([]int, len(shape))
	total := b.TotalSize()
	for flat := 0; flat < total; flat++ {
		fn(flat, coords)
		// odometer increment, last axis fastest
		for k := len(shape) - 1; k >= 0; k-- {
			coords[k]++
			if coords[k] < shape[k] {
				break
			}
			coords[k] = 0
		}
	}
}

// Equal reports identical axis order, names and edges.
func (b *ArbitraryBinning) Equal(o *ArbitraryBinning) bool {
	if b == nil || o == nil {
		return b == o
	}
	if len(b.axes) != len(o.axes) {
		return false
	}
	for i := range b.axes {
		if !b.axes[i].Equal(o.axes[i]) {
			return false
		}
	}

	return true
}

// String renders "ArbitraryBinning[x:3, y:1]".
func (b *ArbitraryBinning) String() string {
	parts := make([]string, len(b.axes))
	for i, ax := range b.axes {
		parts[i] = fmt.Sprintf("%s:%d", ax.name, ax.NBins())
	}

	return "ArbitraryBinning[" + strings.Join(parts, ", ") + "]"
}

// LowerEdges returns, per axis name, the lower edge of every flat bin on
// that axis (length TotalSize, broadcast along the flattening).
func (b *ArbitraryBinning) LowerEdges() map[string][]float64 {
	return b.broadcastEdges(Axis.LowerEdges)
}

// UpperEdges returns, per axis name, the upper edge of every flat bin on
// that axis (length TotalSize, broadcast along the flattening).
func (b *ArbitraryBinning) UpperEdges() map[string][]float64 {
	return b.broadcastEdges(Axis.UpperEdges)
}

// broadcastEdges expands a per-bin axis vector to the flat index space.
func (b *ArbitraryBinning) broadcastEdges(perAxis func(Axis) []float64) map[string][]float64 {
	total := b.TotalSize()
	out := make(map[string][]float64, len(b.axes))
	src := make([][]float64, len(b.axes))
	for k, ax := range b.axes {
		src[k] = perAxis(ax)
		out[ax.name] = make([]float64, total)
	}
	b.forEachBin(func(flat int, coords []int) {
		for k, ax := range b.axes {
			out[ax.name][flat] = src[k][coords[k]]
		}
	})

	return out
}
