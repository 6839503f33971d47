package plan

import (
	"github.com/branky/scoobi/exec"
	"github.com/branky/scoobi/wire"
)

// TaggedIdentityMapper feeds a node's output into a shuffle unchanged,
// each element under a fresh rolling key. Planners use it for channels
// that reach a fused shuffle without a map step of their own; the node
// argument pins the element type to the channel being bridged.
func TaggedIdentityMapper[A any](in TypedNode[A], tags ...int) exec.TaggedMapper[A, int64, A] {
	return exec.TaggedMapper[A, int64, A]{
		Tags: tags,
		Map: func(value A, emit exec.Emitter[wire.Pair[int64, A]]) {
			emit(wire.Pair[int64, A]{Key: NextRollingKey(), Value: value})
		},
	}
}
