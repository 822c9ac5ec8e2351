// SPDX-License-Identifier: MIT

package evalcache

import (
	"github.com/ssrothman/simon-mpl-util/binning"
	"github.com/ssrothman/simon-mpl-util/dataset"
	"github.com/ssrothman/simon-mpl-util/operation"
)

type entryKey struct {
	op      string
	dataset string
}

// entry is one stored value together with the operation and the binning of
// the dataset it was computed from. Keys are not injective, so entries under
// one entryKey are told apart by the dataset binning and Operation.Equal.
type entry[T any] struct {
	op    operation.Operation
	input *binning.ArbitraryBinning
	value T
}

type bucket[T any] []entry[T]

func (b bucket[T]) find(op operation.Operation, input *binning.ArbitraryBinning) (T, bool) {
	for _, e := range b {
		if e.input.Equal(input) && e.op.Equal(op) {
			return e.value, true
		}
	}
	var zero T

	return zero, false
}

// Cache holds evaluated results and resulting binnings.
type Cache struct {
	results  map[entryKey]bucket[operation.Result]
	binnings map[entryKey]bucket[*binning.ArbitraryBinning]
	size     int
	log      Logger
}

// New returns an empty cache.
func New(opts ...Option) *Cache {
	c := &Cache{
		results:  make(map[entryKey]bucket[operation.Result]),
		binnings: make(map[entryKey]bucket[*binning.ArbitraryBinning]),
		log:      discardLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Evaluate returns op evaluated on ds, from the cache when possible.
// The returned Result is a private copy.
func (c *Cache) Evaluate(op operation.Operation, ds dataset.Dataset) (operation.Result, error) {
	k := entryKey{op: op.Key(), dataset: ds.Key()}
	input := inputBinning(ds)
	if res, ok := c.results[k].find(op, input); ok {
		c.log.Debug("evalcache.hit", "op", k.op, "dataset", k.dataset)
		return cloneResult(res), nil
	}
	res, err := op.Evaluate(ds)
	if err != nil {
		c.log.Warn("evalcache.evaluate_failed", "op", k.op, "dataset", k.dataset, "err", err)
		return operation.Result{}, err
	}
	c.results[k] = append(c.results[k], entry[operation.Result]{op: op, input: input, value: cloneResult(res)})
	c.size++
	c.log.Debug("evalcache.store", "op", k.op, "dataset", k.dataset, "bins", len(res.Values), "cov", res.HasCov())

	return res, nil
}

// Binning returns the binning of op's result on ds, from the cache when
// possible.
//
// Errors: operation.ErrTypeMismatch (op or ds not prebinned), and whatever
// the operation's ResultingBinning returns.
func (c *Cache) Binning(op operation.Operation, ds dataset.Dataset) (*binning.ArbitraryBinning, error) {
	k := entryKey{op: op.Key(), dataset: ds.Key()}
	input := inputBinning(ds)
	if b, ok := c.binnings[k].find(op, input); ok {
		return b, nil
	}
	b, err := operation.BuildPrebinnedAxis(ds, op)
	if err != nil {
		c.log.Warn("evalcache.binning_failed", "op", k.op, "dataset", k.dataset, "err", err)
		return nil, err
	}
	c.binnings[k] = append(c.binnings[k], entry[*binning.ArbitraryBinning]{op: op, input: input, value: b})

	return b, nil
}

// Len is the number of stored results.
func (c *Cache) Len() int { return c.size }

// Reset drops every entry.
func (c *Cache) Reset() {
	c.log.Info("evalcache.reset", "results", c.size, "binnings", len(c.binnings))
	clear(c.results)
	clear(c.binnings)
	c.size = 0
}

// inputBinning is the binning of a prebinned dataset, nil otherwise.
func inputBinning(ds dataset.Dataset) *binning.ArbitraryBinning {
	if pd, ok := dataset.AsPrebinned(ds); ok {
		return pd.Binning()
	}

	return nil
}

func cloneResult(r operation.Result) operation.Result {
	out := operation.Result{}
	if r.Values != nil {
		out.Values = append([]float64(nil), r.Values...)
	}
	if r.Cov != nil {
		out.Cov = r.Cov.Clone()
	}

	return out
}
