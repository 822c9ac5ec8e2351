// SPDX-License-Identifier: MIT

// Package plotprep prepares evaluated matrices for display: the
// normalization modes of a matrix plot, the color-scale choice, and the
// output file naming convention shared by every plot driver.
package plotprep
