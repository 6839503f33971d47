package plan

import (
	"go.ytsaurus.tech/library/go/core/xerrors"

	"github.com/branky/scoobi/exec"
	"github.com/branky/scoobi/wire"
)

// GroupByKey is the shuffle: it collects every value sharing a key into
// one group. Value order inside a group is unspecified. The grouping
// capability tells the substrate how keys sort and partition.
type GroupByKey[K, V any] struct {
	nodeBase
	in       TypedNode[wire.Pair[K, V]]
	grouping wire.Grouping[K]
}

func NewGroupByKey[K, V any](in TypedNode[wire.Pair[K, V]], grouping wire.Grouping[K]) *GroupByKey[K, V] {
	return &GroupByKey[K, V]{nodeBase: newNode(), in: in, grouping: grouping}
}

func (n *GroupByKey[K, V]) Kind() Kind     { return KindGroupByKey }
func (n *GroupByKey[K, V]) Inputs() []Node { return []Node{n.in} }
func (n *GroupByKey[K, V]) String() string { return nodeString(n) }

func (n *GroupByKey[K, V]) Input() TypedNode[wire.Pair[K, V]] { return n.in }
func (n *GroupByKey[K, V]) Grouping() wire.Grouping[K]        { return n.grouping }

func (*GroupByKey[K, V]) produces(wire.Grouped[K, V]) {}

// Combiner reduces the values of every group pairwise with an
// associative binary function. It serves two roles: a true combiner
// pre-aggregating partial groups, and the fold feeding a downstream
// Reducer's post-processing.
type Combiner[K, V any] struct {
	nodeBase
	in TypedNode[wire.Grouped[K, V]]
	fn CombineFn[V]
}

func NewCombiner[K, V any](in TypedNode[wire.Grouped[K, V]], fn CombineFn[V]) *Combiner[K, V] {
	return &Combiner[K, V]{nodeBase: newNode(), in: in, fn: fn}
}

func (n *Combiner[K, V]) Kind() Kind     { return KindCombiner }
func (n *Combiner[K, V]) Inputs() []Node { return []Node{n.in} }
func (n *Combiner[K, V]) String() string { return nodeString(n) }

func (n *Combiner[K, V]) Input() TypedNode[wire.Grouped[K, V]] { return n.in }
func (n *Combiner[K, V]) Func() CombineFn[V]                   { return n.fn }

func (*Combiner[K, V]) produces(wire.Pair[K, V]) {}

// TaggedCombiner binds the binary function to a tag. The platform may
// apply it to partial groups in any pairwise order, so the function must
// not depend on application order.
func (n *Combiner[K, V]) TaggedCombiner(tag int) exec.TaggedCombiner[V] {
	return exec.TaggedCombiner[V]{Tag: tag, Combine: n.fn}
}

// TaggedReducer folds every group left to right from its first value and
// emits the single resulting pair. The fold has no seed: an empty group
// violates the group-by-key contract and yields exec.ErrEmptyGroup
// instead of a made-up default.
func (n *Combiner[K, V]) TaggedReducer(tag int) exec.TaggedReducer[K, V, wire.Pair[K, V]] {
	fn := n.fn
	return exec.TaggedReducer[K, V, wire.Pair[K, V]]{
		Tag: tag,
		Reduce: func(key K, values []V, emit exec.Emitter[wire.Pair[K, V]]) error {
			folded, err := foldGroup(fn, key, values)
			if err != nil {
				return err
			}
			emit(wire.Pair[K, V]{Key: key, Value: folded})
			return nil
		},
	}
}

// CombineReducer is c's fold followed by post: the physical form of a
// Reducer sitting downstream of c. It is a function rather than a method
// because the output type belongs to the post-processing step, not to
// the combiner.
func CombineReducer[K, V, B any](c *Combiner[K, V], tag int, post PostFn[K, V, B]) exec.TaggedReducer[K, V, B] {
	fn := c.fn
	return exec.TaggedReducer[K, V, B]{
		Tag: tag,
		Reduce: func(key K, values []V, emit exec.Emitter[B]) error {
			folded, err := foldGroup(fn, key, values)
			if err != nil {
				return err
			}
			post(key, folded, emit)
			return nil
		},
	}
}

func foldGroup[K, V any](fn CombineFn[V], key K, values []V) (V, error) {
	if len(values) == 0 {
		var zero V
		return zero, exec.ErrEmptyGroup.Wrap(xerrors.Errorf("key %v", key))
	}

	acc := values[0]
	for _, v := range values[1:] {
		acc = fn(acc, v)
	}
	return acc, nil
}
