package wire

import (
	"bytes"
	"encoding/gob"

	"go.ytsaurus.tech/library/go/core/xerrors"
)

type gobFormat[T any] struct{}

// Gob returns a Format backed by encoding/gob, for values that never
// leave the Go world. Every Marshal runs a fresh encoder, so each
// encoding is self-contained.
func Gob[T any]() Format[T] {
	return gobFormat[T]{}
}

func (gobFormat[T]) Marshal(value T) ([]byte, error) {
	var b bytes.Buffer
	if err := gob.NewEncoder(&b).Encode(&value); err != nil {
		return nil, xerrors.Errorf("wire: gob encode: %w", err)
	}
	return b.Bytes(), nil
}

func (gobFormat[T]) Unmarshal(data []byte, value *T) error {
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(value); err != nil {
		return xerrors.Errorf("wire: gob decode: %w", err)
	}
	return nil
}
