package plan

// EachNode calls fn exactly once for every node reachable from starts by
// following input references, inputs before consumers. A node shared by
// several consumers, or reachable from several starts, is still observed
// once: the visited set spans the whole call. Flatten inputs are walked
// in list order, and starts in the given order.
func EachNode(starts []Node, fn func(Node)) {
	visited := make(map[int64]struct{})

	var walk func(Node)
	walk = func(n Node) {
		if _, ok := visited[n.ID()]; ok {
			return
		}

		for _, in := range n.Inputs() {
			walk(in)
		}

		visited[n.ID()] = struct{}{}
		fn(n)
	}

	for _, start := range starts {
		walk(start)
	}
}
