package wire

import (
	"bytes"
	"fmt"
	"hash/fnv"

	"golang.org/x/exp/constraints"
)

// Grouping decides how keys of one type behave in a shuffle: a total
// order for sorting and grouping, and a deterministic assignment of keys
// to partitions.
type Grouping[K any] interface {
	// Compare orders keys. Negative if a sorts before b, zero when both
	// belong to the same group, positive otherwise.
	Compare(a, b K) int

	// Partition assigns key to one of parts buckets, parts >= 1. The
	// result is deterministic and always in [0, parts).
	Partition(key K, parts int) int
}

type naturalGrouping[K constraints.Ordered] struct {
	f Format[K]
}

// NaturalGrouping orders keys by their type's native ordering and
// partitions by a hash of the canonical encoding.
func NaturalGrouping[K constraints.Ordered](f Format[K]) Grouping[K] {
	return naturalGrouping[K]{f}
}

func (g naturalGrouping[K]) Compare(a, b K) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func (g naturalGrouping[K]) Partition(key K, parts int) int {
	return encodedPartition(g.f, key, parts)
}

type encodedGrouping[K any] struct {
	f Format[K]
}

// EncodedGrouping orders keys bytewise by their canonical encoding. It
// accepts any key type the format handles; the sort order is the
// encoding's, not the domain's.
//
// Compare and Partition panic if the format cannot encode a key. A key
// that entered the graph but does not encode is a programming error.
func EncodedGrouping[K any](f Format[K]) Grouping[K] {
	return encodedGrouping[K]{f}
}

func (g encodedGrouping[K]) Compare(a, b K) int {
	return bytes.Compare(mustMarshal(g.f, a), mustMarshal(g.f, b))
}

func (g encodedGrouping[K]) Partition(key K, parts int) int {
	return encodedPartition(g.f, key, parts)
}

func encodedPartition[K any](f Format[K], key K, parts int) int {
	if parts < 1 {
		panic(fmt.Sprintf("partition into %d parts", parts))
	}

	h := fnv.New64a()
	_, _ = h.Write(mustMarshal(f, key))
	return int(h.Sum64() % uint64(parts))
}

func mustMarshal[K any](f Format[K], key K) []byte {
	data, err := f.Marshal(key)
	if err != nil {
		panic(fmt.Sprintf("key of type %T does not encode: %+v", key, err))
	}
	return data
}
