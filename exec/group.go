package exec

import (
	"github.com/branky/scoobi/wire"
)

// GroupKeys splits key-sorted pairs into runs of equal keys and calls
// onGroup once for every distinct key. Rows must arrive with equal keys
// adjacent, the order a shuffle delivers them in; equality is the
// grouping's Compare.
func GroupKeys[K, V any](rows []wire.Pair[K, V], g wire.Grouping[K], onGroup func(key K, values []V) error) error {
	for start := 0; start < len(rows); {
		end := start + 1
		for end < len(rows) && g.Compare(rows[start].Key, rows[end].Key) == 0 {
			end++
		}

		values := make([]V, 0, end-start)
		for _, p := range rows[start:end] {
			values = append(values, p.Value)
		}
		if err := onGroup(rows[start].Key, values); err != nil {
			return err
		}

		start = end
	}

	return nil
}
