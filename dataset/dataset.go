// SPDX-License-Identifier: MIT

package dataset

import (
	"github.com/ssrothman/simon-mpl-util/binning"
	"github.com/ssrothman/simon-mpl-util/matrix"
)

// Dataset is anything an operation can be applied to.
// Key identifies the dataset in caches and output names.
type Dataset interface {
	Key() string
}

// Prebinned is the capability of a dataset whose values are already
// aggregated into the bins of an ArbitraryBinning.
type Prebinned interface {
	Dataset

	// Values returns the flat value vector (length Binning().TotalSize()).
	Values() []float64

	// Cov returns the matrix, or nil when the dataset has none.
	Cov() *matrix.Dense

	// Binning returns the flattening of Values.
	Binning() *binning.ArbitraryBinning

	// QuantityType tells how to interpret Cov.
	QuantityType() QuantityType

	// Project sums the named axes out. The second return maps every input
	// flat index to the reduced flat index it was summed into.
	Project(axes ...string) (Prebinned, []int, error)

	// Slice restricts axes to edge ranges (bins overlapping [Low, High)).
	Slice(edges map[string]binning.Range) (Prebinned, error)
}

// AsPrebinned reports whether ds has the prebinned capability.
func AsPrebinned(ds Dataset) (Prebinned, bool) {
	if ds == nil {
		return nil, false
	}
	p, ok := ds.(Prebinned)

	return p, ok
}
