// Package wire defines the per-type capabilities a dataflow graph carries
// for its element types: how values are encoded between execution phases,
// and how keys are ordered and partitioned in a shuffle.
//
// Capabilities are ordinary values passed to node constructors. Nothing in
// this package performs I/O; adapters only bind existing codecs.
package wire

import (
	"bytes"
)

// Pair is the element shape of keyed channels.
type Pair[K, V any] struct {
	Key   K `yson:"key"`
	Value V `yson:"value"`
}

// Grouped is the element shape produced by grouping a keyed channel: one
// key together with every value sharing it. Value order is unspecified.
type Grouped[K, V any] struct {
	Key    K   `yson:"key"`
	Values []V `yson:"values"`
}

// Format encodes and decodes values of a single type.
//
// Encodings must be canonical within a process: structurally equal values
// produce equal bytes. Equality and key comparison are defined over these
// bytes, not over language-level identity.
type Format[T any] interface {
	Marshal(value T) ([]byte, error)
	Unmarshal(data []byte, value *T) error
}

// Equal reports whether a and b are structurally equal under the format's
// canonical encoding.
func Equal[T any](f Format[T], a, b T) (bool, error) {
	ab, err := f.Marshal(a)
	if err != nil {
		return false, err
	}
	bb, err := f.Marshal(b)
	if err != nil {
		return false, err
	}
	return bytes.Equal(ab, bb), nil
}
