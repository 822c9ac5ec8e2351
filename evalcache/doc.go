// SPDX-License-Identifier: MIT

// Package evalcache memoizes operation results per (operation, dataset)
// pair. Entries are keyed by the canonical operation key and the dataset
// key, so two structurally equal operations share an entry. A stored value
// is only returned for an operation Equal to the one it was computed by, on a
// dataset with the same binning. Failed evaluations are never stored.
//
// A Cache is not safe for concurrent use.
package evalcache
