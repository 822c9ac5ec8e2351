// SPDX-License-Identifier: MIT

package derived

import (
	"slices"
	"strings"

	"github.com/ssrothman/simon-mpl-util/dataset"
	"github.com/ssrothman/simon-mpl-util/matrix"
	"github.com/ssrothman/simon-mpl-util/operation"
)

// BlockNormalize converts the upstream result into per-block shapes: every
// block of bins sharing coordinates on the block axes is divided by its
// total (flux). The matrix is propagated through the shape Jacobian.
type BlockNormalize struct {
	wrapper
	blockAxes []string // sorted, unique
}

var _ operation.Prebinned = (*BlockNormalize)(nil)

// Decomposition is the full flux×shape split of one evaluation.
type Decomposition struct {
	Fluxes   []float64
	Shapes   []float64
	BlockOf  []int         // flat index -> block
	FluxCov  *matrix.Dense // nil without a covariance
	ShapeCov *matrix.Dense // nil without a covariance
}

// NewBlockNormalize wraps upstream; no block axes means a single block
// (plain unit-area normalization).
// Errors: operation.ErrTypeMismatch when upstream is not prebinned.
func NewBlockNormalize(upstream operation.Operation, blockAxes ...string) (*BlockNormalize, error) {
	w, err := newWrapper("BlockNormalize", upstream)
	if err != nil {
		return nil, err
	}
	return &BlockNormalize{wrapper: w, blockAxes: operation.CanonicalAxes(blockAxes)}, nil
}

// Key returns "SHAPE[a-b](<up>)".
func (n *BlockNormalize) Key() string {
	return "SHAPE[" + strings.Join(n.blockAxes, "-") + "](" + n.upstream.Key() + ")"
}

// Equal compares block axes and upstream operations.
func (n *BlockNormalize) Equal(other operation.Operation) bool {
	o, ok := other.(*BlockNormalize)

	return ok && slices.Equal(n.blockAxes, o.blockAxes) && n.upstream.Equal(o.upstream)
}

// Evaluate returns the shapes and, when the upstream has a covariance, the
// shape covariance.
//
// Errors: ErrNotImplemented for a transfer matrix; binning.ErrUnknownAxis
// when a block axis is absent from the resulting binning.
func (n *BlockNormalize) Evaluate(ds dataset.Dataset) (operation.Result, error) {
	dec, err := n.Decompose(ds)
	if err != nil {
		return operation.Result{}, err
	}

	return operation.Result{Values: dec.Shapes, Cov: dec.ShapeCov}, nil
}

// Decompose returns fluxes and shapes with both covariances.
func (n *BlockNormalize) Decompose(ds dataset.Dataset) (Decomposition, error) {
	key := n.Key()
	in, err := n.evaluate(key, ds)
	if err != nil {
		return Decomposition{}, err
	}
	fluxes, shapes, blockOf, err := in.binning.GetFluxesShapes(in.result.Values, n.blockAxes...)
	if err != nil {
		return Decomposition{}, derivedErrorf(key, err)
	}
	dec := Decomposition{Fluxes: fluxes, Shapes: shapes, BlockOf: blockOf}
	if in.result.Cov == nil {
		return dec, nil
	}
	if in.qtype == dataset.Transfer {
		return Decomposition{}, derivedErrorf(key, ErrNotImplemented)
	}
	if dec.FluxCov, dec.ShapeCov, _, err = in.binning.GetFluxesShapesCov2D(fluxes, shapes, in.result.Cov, n.blockAxes...); err != nil {
		return Decomposition{}, derivedErrorf(key, err)
	}

	return dec, nil
}
