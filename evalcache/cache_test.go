// SPDX-License-Identifier: MIT

package evalcache_test

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ssrothman/simon-mpl-util/binning"
	"github.com/ssrothman/simon-mpl-util/dataset"
	"github.com/ssrothman/simon-mpl-util/evalcache"
	"github.com/ssrothman/simon-mpl-util/matrix"
	"github.com/ssrothman/simon-mpl-util/operation"
)

// counting wraps a prebinned operation and counts evaluations.
type counting struct {
	operation.Prebinned
	calls int
	fail  error
}

func (c *counting) Evaluate(ds dataset.Dataset) (operation.Result, error) {
	c.calls++
	if c.fail != nil {
		return operation.Result{}, c.fail
	}

	return c.Prebinned.Evaluate(ds)
}

func (c *counting) Equal(other operation.Operation) bool {
	if o, ok := other.(*counting); ok {
		other = o.Prebinned
	}

	return c.Prebinned.Equal(other)
}

// recorder captures slog messages.
type recorder struct {
	mu   sync.Mutex
	msgs []string
}

func (r *recorder) Handle(_ context.Context, rec slog.Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.msgs = append(r.msgs, rec.Message)

	return nil
}

func (r *recorder) Enabled(context.Context, slog.Level) bool { return true }
func (r *recorder) WithAttrs([]slog.Attr) slog.Handler { return r }
func (r *recorder) WithGroup(string) slog.Handler { return r }

func histogram(t *testing.T, key string) *dataset.Histogram {
	t.Helper()
	x, err := binning.NewAxis("x", 0, 1, 2)
	require.NoError(t, err)
	y, err := binning.NewAxis("y", 0, 1, 2)
	require.NoError(t, err)
	b, err := binning.New(x, y)
	require.NoError(t, err)
	vals := []float64{1, 2, 3, 4}
	h, err := dataset.New(key, b, vals, dataset.WithCov(matrix.NewDiagonal(vals)))
	require.NoError(t, err)

	return h
}

func TestCache_EvaluateMemoizes(t *testing.T) {
	t.Parallel()

	op := &counting{Prebinned: operation.NewProjection("y")}
	c := evalcache.New()
	h := histogram(t, "h")

	first, err := c.Evaluate(op, h)
	require.NoError(t, err)
	require.Equal(t, []float64{3, 7}, first.Values)

	first.Values[0] = -1
	second, err := c.Evaluate(op, h)
	require.NoError(t, err)
	require.Equal(t, []float64{3, 7}, second.Values)
	require.Equal(t, 1, op.calls)
	require.Equal(t, 1, c.Len())

	// a structurally equal operation shares the entry
	_, err = c.Evaluate(operation.NewProjection("y", "y"), h)
	require.NoError(t, err)
	require.Equal(t, 1, c.Len())

	_, err = c.Evaluate(op, histogram(t, "other"))
	require.NoError(t, err)
	require.Equal(t, 2, op.calls)
	require.Equal(t, 2, c.Len())

	c.Reset()
	require.Zero(t, c.Len())
	_, err = c.Evaluate(op, h)
	require.NoError(t, err)
	require.Equal(t, 3, op.calls)
}

func TestCache_FailuresAreNotStored(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	op := &counting{Prebinned: operation.NewNoop(), fail: boom}
	rec := &recorder{}
	c := evalcache.New(evalcache.WithLogger(slog.New(rec)))
	h := histogram(t, "h")

	_, err := c.Evaluate(op, h)
	require.ErrorIs(t, err, boom)
	require.Zero(t, c.Len())

	op.fail = nil
	_, err = c.Evaluate(op, h)
	require.NoError(t, err)
	require.Equal(t, 2, op.calls)
	require.Equal(t, 1, c.Len())
	require.Equal(t, []string{"evalcache.evaluate_failed", "evalcache.store"}, rec.msgs)
}

func TestCache_Binning(t *testing.T) {
	t.Parallel()

	c := evalcache.New()
	h := histogram(t, "h")

	b, err := c.Binning(operation.NewProjection("x"), h)
	require.NoError(t, err)
	require.Equal(t, []string{"y"}, b.AxisNames())

	again, err := c.Binning(operation.NewProjection("x"), h)
	require.NoError(t, err)
	require.Same(t, b, again)

	_, err = c.Binning(operation.NewProjection("eta"), h)
	require.ErrorIs(t, err, binning.ErrUnknownAxis)
}

// sameKey hides the key of a derived histogram behind its parent's.
type sameKey struct {
	dataset.Prebinned
	key string
}

func (s sameKey) Key() string { return s.key }

func TestCache_SlicedDatasetIsNotServedFromParent(t *testing.T) {
	t.Parallel()

	c := evalcache.New()
	h := histogram(t, "h")
	sliced, err := h.Slice(map[string]binning.Range{"x": {Low: 0, High: 1}})
	require.NoError(t, err)

	parent, err := c.Evaluate(operation.NewProjection("y"), h)
	require.NoError(t, err)
	require.Equal(t, []float64{3, 7}, parent.Values)

	for _, ds := range []dataset.Dataset{sliced, sameKey{Prebinned: sliced, key: h.Key()}} {
		res, err := c.Evaluate(operation.NewProjection("y"), ds)
		require.NoError(t, err, ds.Key())
		require.Equal(t, []float64{3}, res.Values, ds.Key())
		require.Equal(t, 1, res.Cov.Rows(), ds.Key())
	}
	require.Equal(t, 3, c.Len())

	// the parent entry is still there
	again, err := c.Evaluate(operation.NewProjection("y"), h)
	require.NoError(t, err)
	require.Equal(t, []float64{3, 7}, again.Values)
	require.Equal(t, 3, c.Len())
}

func TestCache_BinningPerInputBinning(t *testing.T) {
	t.Parallel()

	c := evalcache.New()
	h := histogram(t, "h")
	sliced, err := h.Slice(map[string]binning.Range{"x": {Low: 0, High: 1}})
	require.NoError(t, err)

	full, err := c.Binning(operation.NewProjection("y"), h)
	require.NoError(t, err)
	require.Equal(t, 2, full.TotalSize())

	narrow, err := c.Binning(operation.NewProjection("y"), sameKey{Prebinned: sliced, key: h.Key()})
	require.NoError(t, err)
	require.Equal(t, 1, narrow.TotalSize())
	require.False(t, full.Equal(narrow))
}

func TestCache_CollidingKeysAreToldApart(t *testing.T) {
	t.Parallel()

	c := evalcache.New()
	h := histogram(t, "h")
	both := operation.NewProjection("x", "y")
	joined := operation.NewProjection("x-y")
	require.Equal(t, both.Key(), joined.Key())

	res, err := c.Evaluate(both, h)
	require.NoError(t, err)
	require.Equal(t, []float64{10}, res.Values)

	_, err = c.Evaluate(joined, h)
	require.ErrorIs(t, err, binning.ErrUnknownAxis)
	require.Equal(t, 1, c.Len())

	_, err = c.Binning(both, h)
	require.NoError(t, err)
	_, err = c.Binning(joined, h)
	require.ErrorIs(t, err, binning.ErrUnknownAxis)
}

func TestWithLogger_PanicsOnNil(t *testing.T) {
	t.Parallel()
	require.Panics(t, func() { evalcache.WithLogger(nil) })
}
