package compress

import "github.com/ivanovmg/plotly-resampler/format"

// NoOpCodec leaves data unchanged.
type NoOpCodec struct{}

var _ Codec = NoOpCodec{}

// NewNoOpCodec creates a pass-through codec.
func NewNoOpCodec() NoOpCodec {
	return NoOpCodec{}
}

func (NoOpCodec) Type() format.CompressionType { return format.CompressionNone }

// Compress returns data itself, not a copy.
func (NoOpCodec) Compress(data []byte) ([]byte, error) {
	return data, nil
}

// Decompress returns data itself, not a copy.
func (NoOpCodec) Decompress(data []byte) ([]byte, error) {
	return data, nil
}
