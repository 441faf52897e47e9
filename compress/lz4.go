package compress

import (
	"errors"
	"sync"

	"github.com/pierrec/lz4/v4"

	"github.com/ivanovmg/plotly-resampler/format"
)

// maxLZ4Output bounds the buffer Decompress grows to. LZ4 blocks do not
// record their decompressed size.
const maxLZ4Output = 128 << 20

var lz4CompressorPool = sync.Pool{
	New: func() any {
		return &lz4.Compressor{}
	},
}

// LZ4Codec compresses with LZ4 block compression.
type LZ4Codec struct{}

var _ Codec = LZ4Codec{}

// NewLZ4Codec creates an LZ4 codec.
func NewLZ4Codec() LZ4Codec {
	return LZ4Codec{}
}

func (LZ4Codec) Type() format.CompressionType { return format.CompressionLZ4 }

func (LZ4Codec) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	dst := make([]byte, lz4.CompressBlockBound(len(data)))

	lc, _ := lz4CompressorPool.Get().(*lz4.Compressor)
	defer lz4CompressorPool.Put(lc)

	n, err := lc.CompressBlock(data, dst)
	if err != nil {
		return nil, err
	}

	return dst[:n], nil
}

// Decompress starts from a buffer four times the input and doubles it while
// the block does not fit, up to 128 MiB.
func (LZ4Codec) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	for size := len(data) * 4; size <= maxLZ4Output; size *= 2 {
		buf := make([]byte, size)
		n, err := lz4.UncompressBlock(data, buf)
		if errors.Is(err, lz4.ErrInvalidSourceShortBuffer) {
			continue
		}
		if err != nil {
			return nil, err
		}

		return buf[:n], nil
	}

	return nil, lz4.ErrInvalidSourceShortBuffer
}
