// SPDX-License-Identifier: MIT

// Package binning describes the N-dimensional bin structure of a prebinned
// histogram and the reductions that change it.
//
// An Axis is one named dimension with strictly increasing edges (±Inf allowed
// as open outer bins). An ArbitraryBinning is an ordered set of uniquely
// named axes with a row-major flattening: the flat index of a bin is
//
//	flat = Σ_k coord[k] * stride[k],  stride[last] = 1,
//	stride[k] = stride[k+1] * nbins[k+1]
//
// so the last declared axis varies fastest. A binning is immutable; every
// projection or slice returns a new one.
//
// Reductions:
//
//   - ProjectOut / ProjectionGroups sum axes away (0/1 Jacobian).
//   - Slice / SliceIndices restrict axes to edge ranges. A bin is retained
//     when it overlaps the requested half-open range [low, high); retained
//     bins keep their own edges (edges are never clipped to the query).
//   - GetFluxesShapes / GetFluxesShapesCov2D decompose data into per-block
//     totals (fluxes) and within-block conditional distributions (shapes).
//
// A binning with zero axes is the result of projecting every axis out; it
// has TotalSize 1 (a scalar).
package binning
