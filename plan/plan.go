// Package plan is the intermediate representation of a dataflow
// pipeline: a DAG of load, map, group-by-key, combine, reduce and
// flatten nodes, together with the protocol that turns any node into a
// tagged physical unit a planner can pack into one shuffle job.
//
// A pipeline builder constructs nodes bottom up, consumers referencing
// producers. The planner then walks the graph with EachNode, picks the
// nodes to fuse, and calls their Tagged* methods with job-unique tags.
// How tags are chosen, which nodes fuse, and where the job runs are all
// outside this package.
package plan

import (
	"fmt"

	"github.com/branky/scoobi/exec"
	"github.com/branky/scoobi/internal/uniqueint"
	"github.com/branky/scoobi/wire"
)

// Node identities and rolling keys are process-wide streams: ids stay
// unique across independently built graphs, and synthesized shuffle keys
// never repeat within a process.
var (
	nodeIDs     = uniqueint.New()
	rollingKeys = uniqueint.New()
)

// NextRollingKey reserves the next synthesized shuffle key. Tagged
// mappers draw from the same stream. The value means nothing beyond
// being distinct; it exists to spread keyless rows across partitions.
func NextRollingKey() int64 {
	return rollingKeys.Next()
}

// Kind names a node variant.
type Kind string

const (
	KindLoad       Kind = "Load"
	KindMapper     Kind = "Mapper"
	KindGbkMapper  Kind = "GbkMapper"
	KindGroupByKey Kind = "GroupByKey"
	KindCombiner   Kind = "Combiner"
	KindGbkReducer Kind = "GbkReducer"
	KindReducer    Kind = "Reducer"
	KindFlatten    Kind = "Flatten"
)

// Node is one vertex of a dataflow graph. The set of implementations is
// fixed to the eight variants of this package, so passes may switch over
// Kind or the concrete type exhaustively.
//
// Nodes are immutable once constructed and freely shared: a node may be
// the input of any number of consumers, giving diamond shapes. The graph
// must stay acyclic; this layer assumes that, it does not check it.
type Node interface {
	// ID is the process-unique identity of the node, assigned at
	// construction and stable for the node's lifetime.
	ID() int64

	// Kind names the variant.
	Kind() Kind

	// Inputs lists the producing nodes in positional order.
	Inputs() []Node

	fmt.Stringer

	node()
}

// TypedNode is a Node whose element type is statically known. Edges are
// typed: a consumer of A accepts only a TypedNode[A] producer.
type TypedNode[A any] interface {
	Node

	produces(A)
}

// User transform signatures. A transform emits any number of outputs
// through the supplied emitter.
type (
	MapFn[A, B any]          func(in A, emit exec.Emitter[B])
	GbkMapFn[A, K, V any]    func(in A, emit exec.Emitter[wire.Pair[K, V]])
	CombineFn[V any]         func(x, y V) V
	GbkReduceFn[K, V, B any] func(key K, values []V, emit exec.Emitter[B])
	PostFn[K, V, B any]      func(key K, value V, emit exec.Emitter[B])
)

type nodeBase struct {
	id int64
}

func newNode() nodeBase {
	return nodeBase{id: nodeIDs.Next()}
}

func (b nodeBase) ID() int64 { return b.id }

func (nodeBase) node() {}

func nodeString(n Node) string {
	return fmt.Sprintf("%s#%d", n.Kind(), n.ID())
}
