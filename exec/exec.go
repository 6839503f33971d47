// Package exec holds the physical artifacts extracted from a dataflow
// graph: mapper, combiner and reducer closures bound to the integer tags
// that multiplex logical channels through a single shuffle job.
//
// A unit never sees the graph it came from. The planner collects the
// units of every logical node fused into one job, demultiplexes the
// shuffle by tag and hands each key group to the unit owning that tag.
package exec

import (
	"go.ytsaurus.tech/library/go/core/xerrors"

	"github.com/branky/scoobi/wire"
)

// ErrEmptyGroup is returned by combiner-derived reducers when a group
// arrives with no values: the combiner folds a sequence without a seed,
// so an empty group has no result.
var ErrEmptyGroup = xerrors.NewSentinel("exec: empty value group")

// Emitter receives the outputs of a tagged unit, one value at a time.
type Emitter[T any] func(value T)

// TaggedMapper turns single input values into keyed pairs addressed to
// Tags. Every emitted pair is replicated to each tag, one shuffle
// channel per logical consumer.
type TaggedMapper[A, K, V any] struct {
	Tags []int
	Map  func(in A, emit Emitter[wire.Pair[K, V]])
}

// TaggedCombiner merges two values sharing a key. The planner may apply
// it any number of times on any subsequence, so Combine must be
// associative.
type TaggedCombiner[V any] struct {
	Tag     int
	Combine func(x, y V) V
}

// TaggedReducer turns one key group into zero or more outputs.
type TaggedReducer[K, V, B any] struct {
	Tag    int
	Reduce func(key K, values []V, emit Emitter[B]) error
}
