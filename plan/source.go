package plan

import (
	"slices"

	"github.com/branky/scoobi/wire"
)

// Load brings an external input into the graph. Where the elements come
// from is the execution substrate's business; the graph carries only how
// they decode.
type Load[A any] struct {
	nodeBase
	format wire.Format[A]
}

func NewLoad[A any](format wire.Format[A]) *Load[A] {
	return &Load[A]{nodeBase: newNode(), format: format}
}

func (n *Load[A]) Kind() Kind     { return KindLoad }
func (n *Load[A]) Inputs() []Node { return nil }
func (n *Load[A]) String() string { return nodeString(n) }

// Format is the decode capability for the loaded elements.
func (n *Load[A]) Format() wire.Format[A] { return n.format }

func (*Load[A]) produces(A) {}

// Flatten concatenates any number of same-typed channels into one.
// Element order across channels is unspecified. An empty channel list is
// legal at this layer; whether it makes sense is the planner's call.
type Flatten[A any] struct {
	nodeBase
	ins []TypedNode[A]
}

func NewFlatten[A any](ins ...TypedNode[A]) *Flatten[A] {
	return &Flatten[A]{nodeBase: newNode(), ins: slices.Clone(ins)}
}

func (n *Flatten[A]) Kind() Kind { return KindFlatten }

func (n *Flatten[A]) Inputs() []Node {
	nodes := make([]Node, len(n.ins))
	for i, in := range n.ins {
		nodes[i] = in
	}
	return nodes
}

func (n *Flatten[A]) String() string { return nodeString(n) }

// Ins lists the flattened channels with their element type intact.
func (n *Flatten[A]) Ins() []TypedNode[A] { return slices.Clone(n.ins) }

func (*Flatten[A]) produces(A) {}
