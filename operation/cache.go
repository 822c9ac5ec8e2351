// SPDX-License-Identifier: MIT

package operation

import (
	"fmt"

	"github.com/ssrothman/simon-mpl-util/binning"
)

// binningCache holds the resulting binning of one operation instance.
// It is written once, on the first successful computation.
type binningCache struct {
	input  *binning.ArbitraryBinning
	result *binning.ArbitraryBinning
}

func (c *binningCache) resolve(key string, in *binning.ArbitraryBinning,
	compute func(*binning.ArbitraryBinning) (*binning.ArbitraryBinning, error)) (*binning.ArbitraryBinning, error) {
	if in == nil {
		return nil, operationErrorf(key, ErrNilBinning)
	}
	if c.result != nil {
		if !c.input.Equal(in) {
			return nil, operationErrorf(key, fmt.Errorf("bound to %s, asked for %s: %w", c.input, in, ErrBinningMismatch))
		}
		return c.result, nil
	}
	res, err := compute(in)
	if err != nil {
		return nil, operationErrorf(key, err)
	}
	c.input, c.result = in, res

	return res, nil
}
