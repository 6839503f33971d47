package plan

import (
	"github.com/branky/scoobi/exec"
	"github.com/branky/scoobi/wire"
)

// Mapper applies a per-element transform emitting zero or more outputs
// per input. Its output channel has no key of its own; entering a
// shuffle it rides on synthesized rolling keys.
type Mapper[A, B any] struct {
	nodeBase
	in     TypedNode[A]
	fn     MapFn[A, B]
	format wire.Format[B]
}

func NewMapper[A, B any](in TypedNode[A], fn MapFn[A, B], format wire.Format[B]) *Mapper[A, B] {
	return &Mapper[A, B]{nodeBase: newNode(), in: in, fn: fn, format: format}
}

func (n *Mapper[A, B]) Kind() Kind     { return KindMapper }
func (n *Mapper[A, B]) Inputs() []Node { return []Node{n.in} }
func (n *Mapper[A, B]) String() string { return nodeString(n) }

func (n *Mapper[A, B]) Input() TypedNode[A]    { return n.in }
func (n *Mapper[A, B]) Func() MapFn[A, B]      { return n.fn }
func (n *Mapper[A, B]) Format() wire.Format[B] { return n.format }

func (*Mapper[A, B]) produces(B) {}

// TaggedMapper binds the transform to tags for inclusion in a fused job.
// Every output is re-keyed with a fresh rolling key. The key exists only
// to distribute rows across partitions; downstream logic must not read
// meaning into it.
func (n *Mapper[A, B]) TaggedMapper(tags ...int) exec.TaggedMapper[A, int64, B] {
	fn := n.fn
	return exec.TaggedMapper[A, int64, B]{
		Tags: tags,
		Map: func(in A, emit exec.Emitter[wire.Pair[int64, B]]) {
			fn(in, func(out B) {
				emit(wire.Pair[int64, B]{Key: NextRollingKey(), Value: out})
			})
		},
	}
}

// GbkMapper applies a per-element transform that already emits keyed
// pairs for an upcoming GroupByKey.
type GbkMapper[A, K, V any] struct {
	nodeBase
	in          TypedNode[A]
	fn          GbkMapFn[A, K, V]
	keyFormat   wire.Format[K]
	valueFormat wire.Format[V]
}

func NewGbkMapper[A, K, V any](
	in TypedNode[A],
	fn GbkMapFn[A, K, V],
	keyFormat wire.Format[K],
	valueFormat wire.Format[V],
) *GbkMapper[A, K, V] {
	return &GbkMapper[A, K, V]{
		nodeBase:    newNode(),
		in:          in,
		fn:          fn,
		keyFormat:   keyFormat,
		valueFormat: valueFormat,
	}
}

func (n *GbkMapper[A, K, V]) Kind() Kind     { return KindGbkMapper }
func (n *GbkMapper[A, K, V]) Inputs() []Node { return []Node{n.in} }
func (n *GbkMapper[A, K, V]) String() string { return nodeString(n) }

func (n *GbkMapper[A, K, V]) Input() TypedNode[A]         { return n.in }
func (n *GbkMapper[A, K, V]) Func() GbkMapFn[A, K, V]     { return n.fn }
func (n *GbkMapper[A, K, V]) KeyFormat() wire.Format[K]   { return n.keyFormat }
func (n *GbkMapper[A, K, V]) ValueFormat() wire.Format[V] { return n.valueFormat }

func (*GbkMapper[A, K, V]) produces(wire.Pair[K, V]) {}

// TaggedMapper binds the transform to tags. Keys pass through to the
// shuffle unchanged; they already carry grouping semantics.
func (n *GbkMapper[A, K, V]) TaggedMapper(tags ...int) exec.TaggedMapper[A, K, V] {
	return exec.TaggedMapper[A, K, V]{Tags: tags, Map: n.fn}
}
