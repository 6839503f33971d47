// Package uniqueint hands out unique integers from independent
// process-wide streams.
package uniqueint

import (
	"go.uber.org/atomic"
)

// Counter is a single stream of unique positive integers. Values are
// strictly increasing, start at 1 and are never reused for the
// lifetime of the process. Distinct counters are fully independent.
//
// The zero value is ready to use.
type Counter struct {
	n atomic.Int64
}

// New creates a fresh stream.
func New() *Counter {
	return &Counter{}
}

// Next reserves and returns the next integer in the stream. Safe for
// concurrent use; no two calls observe the same value.
func (c *Counter) Next() int64 {
	return c.n.Inc()
}

// Last returns the most recently handed out value, or 0 if Next was
// never called.
func (c *Counter) Last() int64 {
	return c.n.Load()
}
