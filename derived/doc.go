// SPDX-License-Identifier: MIT

// Package derived wraps a prebinned operation with a quantity computed
// from its (values, matrix) result and the binning the result lives on:
//
//   - Density divides by the bin volume (the Jacobian correction);
//   - BlockNormalize turns each block of bins into a unit-area shape;
//   - CorrelationFromCovariance extracts the correlation matrix;
//   - CovarianceOnly keeps just the matrix.
//
// Wrappers are themselves prebinned operations with the upstream's
// resulting binning, so they chain. Constructors reject upstreams without
// the prebinned capability with operation.ErrTypeMismatch.
//
// Zero divisors (zero volume, zero flux, zero variance) are replaced by 1;
// no wrapper produces NaN or Inf from a degenerate bin.
package derived
