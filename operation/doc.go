// SPDX-License-Identifier: MIT

// Package operation implements the algebra of operations applied to
// prebinned datasets: Noop, Projection, Slice and ProjectAndSlice.
//
// Every operation
//
//   - evaluates a dataset to a Result (values and, when present, the matrix);
//   - has a canonical Key, a pure function of its kind and parameters, used
//     for structural equality, caching and output names;
//   - has a PlotText caption, generated from its parameters unless
//     overridden with SetPlotText;
//   - computes the ArbitraryBinning its results live on without touching
//     data (ResultingBinning). The first successful computation is kept for
//     the lifetime of the instance; asking again with a structurally
//     different input binning fails with ErrBinningMismatch.
//
// ProjectAndSlice is sequential: project first, then slice the projected
// result.
//
// Operations are not safe for concurrent use: the binning cache is written
// on first use.
package operation
