package plan

import (
	"fmt"

	"github.com/branky/scoobi/exec"
	"github.com/branky/scoobi/wire"
)

// GbkReducer reduces whole groups straight out of a GroupByKey, with no
// combiner in between.
type GbkReducer[K, V, B any] struct {
	nodeBase
	in     TypedNode[wire.Grouped[K, V]]
	fn     GbkReduceFn[K, V, B]
	format wire.Format[B]
}

func NewGbkReducer[K, V, B any](in TypedNode[wire.Grouped[K, V]], fn GbkReduceFn[K, V, B], format wire.Format[B]) *GbkReducer[K, V, B] {
	return &GbkReducer[K, V, B]{nodeBase: newNode(), in: in, fn: fn, format: format}
}

func (n *GbkReducer[K, V, B]) Kind() Kind     { return KindGbkReducer }
func (n *GbkReducer[K, V, B]) Inputs() []Node { return []Node{n.in} }
func (n *GbkReducer[K, V, B]) String() string { return nodeString(n) }

func (n *GbkReducer[K, V, B]) Input() TypedNode[wire.Grouped[K, V]] { return n.in }
func (n *GbkReducer[K, V, B]) Func() GbkReduceFn[K, V, B]           { return n.fn }
func (n *GbkReducer[K, V, B]) Format() wire.Format[B]               { return n.format }

func (*GbkReducer[K, V, B]) produces(B) {}

// TaggedReducer binds the user function to a tag. The function sees the
// complete (key, values) group, with no pre-combination.
func (n *GbkReducer[K, V, B]) TaggedReducer(tag int) exec.TaggedReducer[K, V, B] {
	fn := n.fn
	return exec.TaggedReducer[K, V, B]{
		Tag: tag,
		Reduce: func(key K, values []V, emit exec.Emitter[B]) error {
			fn(key, values, emit)
			return nil
		},
	}
}

// Reducer post-processes the (key, value) pairs a Combiner folds its
// groups down to. The pairing is structural: tagging compiles the
// combiner's fold and the post-processing into one physical reducer, so
// the input must be exactly a Combiner node. That rule is checked at
// tagging time, not at construction time.
type Reducer[K, V, B any] struct {
	nodeBase
	in     TypedNode[wire.Pair[K, V]]
	fn     PostFn[K, V, B]
	format wire.Format[B]
}

func NewReducer[K, V, B any](in TypedNode[wire.Pair[K, V]], fn PostFn[K, V, B], format wire.Format[B]) *Reducer[K, V, B] {
	return &Reducer[K, V, B]{nodeBase: newNode(), in: in, fn: fn, format: format}
}

func (n *Reducer[K, V, B]) Kind() Kind     { return KindReducer }
func (n *Reducer[K, V, B]) Inputs() []Node { return []Node{n.in} }
func (n *Reducer[K, V, B]) String() string { return nodeString(n) }

func (n *Reducer[K, V, B]) Input() TypedNode[wire.Pair[K, V]] { return n.in }
func (n *Reducer[K, V, B]) Func() PostFn[K, V, B]             { return n.fn }
func (n *Reducer[K, V, B]) Format() wire.Format[B]            { return n.format }

func (*Reducer[K, V, B]) produces(B) {}

// TaggedReducer delegates to the Combiner this node follows, fusing its
// fold with this node's post-processing. Any other input shape is a
// pipeline-construction bug reported as a StructureError.
func (n *Reducer[K, V, B]) TaggedReducer(tag int) (exec.TaggedReducer[K, V, B], error) {
	c, ok := n.in.(*Combiner[K, V])
	if !ok {
		return exec.TaggedReducer[K, V, B]{}, &StructureError{Node: n, Reason: "must be preceded by a combiner"}
	}
	return CombineReducer(c, tag, n.fn), nil
}

// StructureError reports a node whose surroundings violate a structural
// rule of the graph.
type StructureError struct {
	Node   Node
	Reason string
}

func (e *StructureError) Error() string {
	return fmt.Sprintf("plan: %s: %s", e.Node, e.Reason)
}
