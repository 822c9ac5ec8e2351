// SPDX-License-Identifier: MIT

package plotprep

import "errors"

// ErrInvalidNormalization is returned for an unknown normalization name and
// for a mode the matrix or its quantity type does not support.
var ErrInvalidNormalization = errors.New("plotprep: invalid normalization")
