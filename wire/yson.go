package wire

import (
	"go.ytsaurus.tech/yt/go/yson"
)

// YSONOption configures the YSON format adapter.
type YSONOption interface {
	YSONOption()
}

type ysonFormatOption struct {
	format yson.Format
}

func (*ysonFormatOption) YSONOption() {}

// WithYSONFormat selects the representation written by Marshal. Text is
// the default; binary is the usual choice once a graph leaves debugging.
func WithYSONFormat(format yson.Format) YSONOption {
	return &ysonFormatOption{format}
}

type ysonFormat[T any] struct {
	format yson.Format
}

// YSON returns a Format backed by the YSON codec. Struct fields follow
// their yson tags.
func YSON[T any](opts ...YSONOption) Format[T] {
	f := &ysonFormat[T]{format: yson.FormatText}
	for _, opt := range opts {
		switch o := opt.(type) {
		case *ysonFormatOption:
			f.format = o.format
		}
	}
	return f
}

func (f *ysonFormat[T]) Marshal(value T) ([]byte, error) {
	return yson.MarshalFormat(value, f.format)
}

func (f *ysonFormat[T]) Unmarshal(data []byte, value *T) error {
	return yson.Unmarshal(data, value)
}
