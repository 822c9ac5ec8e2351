// SPDX-License-Identifier: MIT

// Package dataset defines the contract prebinned histogram data must satisfy
// to be transformed by the operation algebra, plus an in-memory
// implementation (Histogram) and a JSON/YAML document loader.
//
// A prebinned dataset carries:
//
//   - a flat value vector of length Binning().TotalSize();
//   - an optional TotalSize×TotalSize matrix, interpreted according to the
//     dataset's QuantityType: a symmetric covariance, or a (not necessarily
//     symmetric) transfer matrix;
//   - the ArbitraryBinning describing the flattening.
//
// Capabilities are expressed as interfaces. Code that needs prebinned data
// checks for Prebinned at its boundary (AsPrebinned) instead of inspecting
// concrete types.
package dataset
