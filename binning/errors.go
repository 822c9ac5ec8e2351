// SPDX-License-Identifier: MIT
// Package binning: sentinel error set.
// Every message is prefixed with "binning:"; call sites wrap with an
// operation tag and callers match with errors.Is.

package binning

import (
	"errors"
	"fmt"
)

var (
	// ErrBadEdges is returned when an axis has fewer than two edges, edges that
	// are not strictly increasing, or a NaN edge.
	ErrBadEdges = errors.New("binning: invalid axis edges")

	// ErrBadName is returned for an empty axis name or one containing a
	// ReservedNameChars character.
	ErrBadName = errors.New("binning: invalid axis name")

	// ErrDuplicateAxis is returned when two axes of one binning share a name.
	ErrDuplicateAxis = errors.New("binning: duplicate axis name")

	// ErrUnknownAxis is returned when a projection/slice names an axis that is
	// absent from the binning.
	ErrUnknownAxis = errors.New("binning: unknown axis")

	// ErrInvalidRange is returned for malformed slice bounds (low >= high, NaN,
	// fully outside the axis domain, or no overlapping bin).
	ErrInvalidRange = errors.New("binning: invalid range")

	// ErrSizeMismatch is returned when a data vector or matrix does not match
	// the total size of the binning (or the number of blocks).
	ErrSizeMismatch = errors.New("binning: size mismatch")
)

// Operation tags used to wrap sentinels uniformly.
const (
	opNewAxis          = "NewAxis"
	opNew              = "New"
	opBinRangeFor      = "BinRangeFor"
	opProjectOut       = "ProjectOut"
	opProject          = "Project"
	opProjectionGroups = "ProjectionGroups"
	opBlockIndex       = "BlockIndex"
	opFluxesShapes     = "GetFluxesShapes"
	opFluxesShapesCov  = "GetFluxesShapesCov2D"
	opSliceIndices     = "SliceIndices"
	opSlice            = "Slice"
	opFlatIndex        = "FlatIndex"
)

// binningErrorf wraps err with the operation tag.
func binningErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
