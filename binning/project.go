// SPDX-License-Identifier: MIT

package binning

import (
	"fmt"
	"sort"

	"github.com/ssrothman/simon-mpl-util/matrix"
)

// ProjectionGroups describes the summation that removes axes from b.
// groups[flat] is the flat index, in the reduced binning, that bin flat is
// summed into; it is exactly the 0/1 summation matrix J (J[g, i] = 1 iff
// groups[i] == g) in index form.
//
// Implementation:
//   - Stage 1: resolve names (duplicates collapse, unknown names fail).
//   - Stage 2: build the reduced binning from the kept axes, order preserved.
//   - Stage 3: walk every bin once and combine the kept coordinates with the
//     reduced strides.
//
// The result does not depend on the order the axes are named in.
// Projecting no axes yields the identity grouping and an equal binning.
//
// Errors: ErrUnknownAxis.
// Complexity: O(TotalSize * Nax).
func (b *ArbitraryBinning) ProjectionGroups(axes ...string) ([]int, *ArbitraryBinning, error) {
	// Stage 1 (Validate)
	drop := make(map[string]struct{}, len(axes))
	for _, name := range axes {
		if !b.HasAxis(name) {
			return nil, nil, binningErrorf(opProjectionGroups, fmt.Errorf("%q: %w", name, ErrUnknownAxis))
		}
		drop[canonical(name)] = struct{}{}
	}

	// Stage 2 (Prepare)
	kept := make([]Axis, 0, len(b.axes)-len(drop))
	keptPos := make([]int, 0, len(b.axes)-len(drop))
	for k, ax := range b.axes {
		if _, ok := drop[ax.name]; ok {
			continue
		}
		kept = append(kept, ax)
		keptPos = append(keptPos, k)
	}
	reduced := &ArbitraryBinning{axes: kept}
	redStrides := reduced.Strides()

	// Stage 3 (Execute)
	groups := make([]int, b.TotalSize())
	b.forEachBin(func(flat int, coords []int) {
		g := 0
		for r, k := range keptPos {
			g += coords[k] * redStrides[r]
		}
		groups[flat] = g
	})

	return groups, reduced, nil
}

// ProjectOut collapses one axis by summation: every output bin is the sum
// of the input bins that share its coordinates on all remaining axes.
//
// Errors: ErrUnknownAxis, ErrSizeMismatch (len(data) != TotalSize).
func (b *ArbitraryBinning) ProjectOut(data []float64, axis string) ([]float64, *ArbitraryBinning, error) {
	if len(data) != b.TotalSize() {
		return nil, nil, binningErrorf(opProjectOut, fmt.Errorf("data length %d, binning size %d: %w", len(data), b.TotalSize(), ErrSizeMismatch))
	}
	groups, reduced, err := b.ProjectionGroups(axis)
	if err != nil {
		return nil, nil, binningErrorf(opProjectOut, err)
	}
	out, err := matrix.GroupSumVec(data, groups, reduced.TotalSize())
	if err != nil {
		return nil, nil, binningErrorf(opProjectOut, err)
	}

	return out, reduced, nil
}

// Projection is the outcome of summing axes out of a (values, cov) pair.
type Projection struct {
	Values  []float64
	Cov     *matrix.Dense // nil when the input had none
	Binning *ArbitraryBinning
	Groups  []int // input flat index -> reduced flat index
}

// Project sums the named axes out of values and, when cov is non-nil,
// propagates the matrix as J·cov·Jᵀ with the 0/1 summation matrix J.
// The matrix must be TotalSize×TotalSize but need not be symmetric.
//
// Errors: ErrUnknownAxis, ErrSizeMismatch.
func (b *ArbitraryBinning) Project(values []float64, cov *matrix.Dense, axes ...string) (Projection, error) {
	n := b.TotalSize()
	if len(values) != n {
		return Projection{}, binningErrorf(opProject, fmt.Errorf("data length %d, binning size %d: %w", len(values), n, ErrSizeMismatch))
	}
	if cov != nil && (cov.Rows() != n || cov.Cols() != n) {
		return Projection{}, binningErrorf(opProject, fmt.Errorf("matrix %dx%d, binning size %d: %w", cov.Rows(), cov.Cols(), n, ErrSizeMismatch))
	}

	// sorted so the first unknown axis reported is deterministic
	names := append([]string(nil), axes...)
	sort.Strings(names)
	groups, reduced, err := b.ProjectionGroups(names...)
	if err != nil {
		return Projection{}, binningErrorf(opProject, err)
	}
	m := reduced.TotalSize()
	vals, err := matrix.GroupSumVec(values, groups, m)
	if err != nil {
		return Projection{}, binningErrorf(opProject, err)
	}
	out := Projection{Values: vals, Binning: reduced, Groups: groups}
	if cov != nil {
		if out.Cov, err = matrix.GroupSum(cov, groups, m); err != nil {
			return Projection{}, binningErrorf(opProject, err)
		}
	}

	return out, nil
}
