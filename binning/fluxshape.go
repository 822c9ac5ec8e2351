// SPDX-License-Identifier: MIT

package binning

import (
	"fmt"

	"github.com/ssrothman/simon-mpl-util/matrix"
)

// BlockIndex partitions the flat index space into blocks, one per distinct
// coordinate combination on blockAxes. Blocks are numbered row-major over
// the block axes in declaration order; blockOf[flat] is the block of a bin.
// No block axes means one block holding every bin.
//
// Errors: ErrUnknownAxis.
func (b *ArbitraryBinning) BlockIndex(blockAxes ...string) ([]int, int, error) {
	inBlock := make(map[string]struct{}, len(blockAxes))
	for _, name := range blockAxes {
		if !b.HasAxis(name) {
			return nil, 0, binningErrorf(opBlockIndex, fmt.Errorf("%q: %w", name, ErrUnknownAxis))
		}
		inBlock[canonical(name)] = struct{}{}
	}
	// A block is what remains after summing out every other axis.
	others := make([]string, 0, len(b.axes))
	for _, ax := range b.axes {
		if _, ok := inBlock[ax.name]; !ok {
			others = append(others, ax.name)
		}
	}
	blockOf, blocks, err := b.ProjectionGroups(others...)
	if err != nil {
		return nil, 0, binningErrorf(opBlockIndex, err)
	}

	return blockOf, blocks.TotalSize(), nil
}

// GetFluxesShapes splits data into per-block fluxes and per-bin shapes.
//
//	flux[blk]  = Σ_{i ∈ blk} data[i]
//	shape[i]   = data[i] / flux[block(i)]
//
// A block with zero flux gets shape 0 on all its bins, so
// shape[i]*flux[block(i)] reproduces data[i] wherever the flux is nonzero.
//
// Errors: ErrSizeMismatch, ErrUnknownAxis.
// Complexity: O(TotalSize * Nax).
func (b *ArbitraryBinning) GetFluxesShapes(data []float64, blockAxes ...string) ([]float64, []float64, []int, error) {
	if len(data) != b.TotalSize() {
		return nil, nil, nil, binningErrorf(opFluxesShapes, fmt.Errorf("data length %d, binning size %d: %w", len(data), b.TotalSize(), ErrSizeMismatch))
	}
	blockOf, nblocks, err := b.BlockIndex(blockAxes...)
	if err != nil {
		return nil, nil, nil, binningErrorf(opFluxesShapes, err)
	}
	fluxes, err := matrix.GroupSumVec(data, blockOf, nblocks)
	if err != nil {
		return nil, nil, nil, binningErrorf(opFluxesShapes, err)
	}
	shapes := make([]float64, len(data))
	for i, v := range data {
		if f := fluxes[blockOf[i]]; f != 0 {
			shapes[i] = v / f
		}
	}

	return fluxes, shapes, blockOf, nil
}

// GetFluxesShapesCov2D propagates cov through the decomposition computed by
// GetFluxesShapes for the same blockAxes.
//
// Implementation:
//   - Stage 1: validate lengths against TotalSize and the block count.
//   - Stage 2: flux covariance = G·cov·Gᵀ, G the 0/1 block-summation matrix
//     (matrix.GroupSum).
//   - Stage 3: shape covariance = J·cov·Jᵀ for the shape Jacobian
//     J[i,k] = (δ_ik − shape_i) / flux_b   for k in b = block(i),
//     J[i,k] = 0                           otherwise,
//     with whole rows at 0 for zero-flux blocks (their shape is the
//     constant 0). J is block-sparse and never built
//     (matrix.BlockAffineSandwich).
//
// Cross-block entries of the shape covariance come out of the same product,
// so correlations between blocks in cov carry through.
//
// Errors: ErrSizeMismatch, ErrUnknownAxis, matrix.ErrNilMatrix.
// Complexity: Time O(N^2) (N = TotalSize), Space O(N^2).
func (b *ArbitraryBinning) GetFluxesShapesCov2D(fluxes, shapes []float64, cov *matrix.Dense, blockAxes ...string) (*matrix.Dense, *matrix.Dense, []int, error) {
	// Stage 1 (Validate)
	n := b.TotalSize()
	if cov == nil {
		return nil, nil, nil, binningErrorf(opFluxesShapesCov, matrix.ErrNilMatrix)
	}
	if err := matrix.ValidateShape(cov, n, n); err != nil {
		return nil, nil, nil, binningErrorf(opFluxesShapesCov, fmt.Errorf("binning size %d: %w: %w", n, ErrSizeMismatch, err))
	}
	if len(shapes) != n {
		return nil, nil, nil, binningErrorf(opFluxesShapesCov, fmt.Errorf("%d shapes, binning size %d: %w", len(shapes), n, ErrSizeMismatch))
	}
	blockOf, nblocks, err := b.BlockIndex(blockAxes...)
	if err != nil {
		return nil, nil, nil, binningErrorf(opFluxesShapesCov, err)
	}
	if len(fluxes) != nblocks {
		return nil, nil, nil, binningErrorf(opFluxesShapesCov, fmt.Errorf("%d fluxes for %d blocks: %w", len(fluxes), nblocks, ErrSizeMismatch))
	}

	// Stage 2 (Flux)
	fluxCov, err := matrix.GroupSum(cov, blockOf, nblocks)
	if err != nil {
		return nil, nil, nil, binningErrorf(opFluxesShapesCov, err)
	}

	// Stage 3 (Shape)
	invFlux := make([]float64, n)
	for i, blk := range blockOf {
		if f := fluxes[blk]; f != 0 {
			invFlux[i] = 1 / f
		}
	}
	shapeCov, err := matrix.BlockAffineSandwich(cov, blockOf, nblocks, shapes, invFlux)
	if err != nil {
		return nil, nil, nil, binningErrorf(opFluxesShapesCov, err)
	}

	return fluxCov, shapeCov, blockOf, nil
}
