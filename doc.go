// SPDX-License-Identifier: MIT

// Package simonmplutil is an algebra over prebinned, multi-dimensional
// histograms and their covariance matrices.
//
// A histogram is a flat vector of bin contents laid out row-major over an
// ordered set of named axes (the last axis varies fastest), optionally with
// a full matrix that is either a covariance or a transfer (response)
// matrix. Operations reduce it and carry the matrix along:
//
//	binning/      axes, flat indexing, projection, slicing, flux×shape split
//	matrix/       dense float64 kernels (J·C·Jᵀ, group sums, correlation, eigen)
//	dataset/      validated histograms and their JSON/YAML documents
//	operation/    Noop, Projection, Slice, ProjectAndSlice with canonical keys
//	derived/      density, block normalization, correlation, covariance only
//	evalcache/    results memoized per (operation key, dataset key)
//	labels/       injected axis display labels
//	plotprep/     matrix display normalization and output file naming
//
// Quick example:
//
//	h, _ := dataset.Load("h.json")
//	shape, _ := derived.NewBlockNormalize(operation.NewProjection("y"), "cat")
//	res, _ := shape.Evaluate(h)
//
// The histalg command (cmd/histalg) exposes the same pipeline on the
// command line.
package simonmplutil
