package plan

import (
	"go.ytsaurus.tech/library/go/core/log"
)

// Dump logs one entry per node reachable from starts, inputs before
// consumers. It is the debugging view of a graph: what got built, how it
// is wired, and which ids a planner's tags will refer to.
func Dump(l log.Structured, starts ...Node) {
	EachNode(starts, func(n Node) {
		inputs := n.Inputs()
		ids := make([]int64, len(inputs))
		for i, in := range inputs {
			ids[i] = in.ID()
		}

		l.Info("node",
			log.String("node", n.String()),
			log.String("kind", string(n.Kind())),
			log.Int64("id", n.ID()),
			log.Any("inputs", ids),
		)
	})
}
