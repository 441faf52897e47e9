package compress

import "github.com/ivanovmg/plotly-resampler/format"

// ZstdCodec compresses with Zstandard at the default level.
type ZstdCodec struct{}

var _ Codec = ZstdCodec{}

// NewZstdCodec creates a Zstandard codec.
func NewZstdCodec() ZstdCodec {
	return ZstdCodec{}
}

func (ZstdCodec) Type() format.CompressionType { return format.CompressionZstd }
