package compress

import (
	"github.com/klauspost/compress/s2"

	"github.com/ivanovmg/plotly-resampler/format"
)

// S2Codec compresses with S2, the Snappy-compatible extension from
// klauspost/compress.
type S2Codec struct{}

var _ Codec = S2Codec{}

// NewS2Codec creates an S2 codec.
func NewS2Codec() S2Codec {
	return S2Codec{}
}

func (S2Codec) Type() format.CompressionType { return format.CompressionS2 }

func (S2Codec) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return s2.Encode(nil, data), nil
}

func (S2Codec) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return s2.Decode(nil, data)
}
