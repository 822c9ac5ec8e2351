// SPDX-License-Identifier: MIT

package evalcache

import (
	"io"
	"log/slog"
)

// Logger is the structured logging surface the cache writes to.
// *slog.Logger satisfies it.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// Option configures a Cache.
type Option func(*Cache)

// WithLogger sets the logger. Panics on nil.
func WithLogger(l Logger) Option {
	if l == nil {
		panic("evalcache: WithLogger(nil)")
	}

	return func(c *Cache) { c.log = l }
}

func discardLogger() Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
