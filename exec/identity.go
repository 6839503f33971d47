package exec

import (
	"github.com/branky/scoobi/wire"
)

// IdentityMapper feeds already keyed pairs into a shuffle unchanged. It
// serves channels that enter a fused job without a map step.
func IdentityMapper[K, V any](tags ...int) TaggedMapper[wire.Pair[K, V], K, V] {
	return TaggedMapper[wire.Pair[K, V], K, V]{
		Tags: tags,
		Map: func(in wire.Pair[K, V], emit Emitter[wire.Pair[K, V]]) {
			emit(in)
		},
	}
}

// IdentityReducer re-emits every grouped value paired with its key,
// undoing the grouping. It serves channels whose groups leave the job
// without a reduce step.
func IdentityReducer[K, V any](tag int) TaggedReducer[K, V, wire.Pair[K, V]] {
	return TaggedReducer[K, V, wire.Pair[K, V]]{
		Tag: tag,
		Reduce: func(key K, values []V, emit Emitter[wire.Pair[K, V]]) error {
			for _, v := range values {
				emit(wire.Pair[K, V]{Key: key, Value: v})
			}
			return nil
		},
	}
}
