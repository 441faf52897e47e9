package compress

import (
	"fmt"

	"github.com/ivanovmg/plotly-resampler/format"
)

// Compressor compresses one encoded payload column.
//
// The returned slice is owned by the caller and the input is never modified,
// except by the no-op codec which returns its input unchanged.
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// Decompressor restores a column compressed by the matching Compressor.
// Corrupt input yields an error, never a partial column.
type Decompressor interface {
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both directions of one algorithm.
type Codec interface {
	Compressor
	Decompressor

	// Type identifies the algorithm in payload headers.
	Type() format.CompressionType
}

// Stats describes the effect of compressing one payload.
type Stats struct {
	Algorithm      format.CompressionType
	OriginalSize   int
	CompressedSize int
}

// Ratio returns compressed size / original size, or 0 for an empty input.
func (s Stats) Ratio() float64 {
	if s.OriginalSize == 0 {
		return 0
	}

	return float64(s.CompressedSize) / float64(s.OriginalSize)
}

// Savings returns the saved space in percent.
func (s Stats) Savings() float64 {
	return (1 - s.Ratio()) * 100
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone: NewNoOpCodec(),
	format.CompressionZstd: NewZstdCodec(),
	format.CompressionS2:   NewS2Codec(),
	format.CompressionLZ4:  NewLZ4Codec(),
}

// GetCodec returns the shared built-in codec for t. Built-in codecs are safe
// for concurrent use.
func GetCodec(t format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[t]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("unsupported compression type: %s", t)
}

// CompressWithStats compresses data with codec and reports the sizes.
func CompressWithStats(codec Codec, data []byte) ([]byte, Stats, error) {
	out, err := codec.Compress(data)
	if err != nil {
		return nil, Stats{}, fmt.Errorf("%s compression: %w", codec.Type(), err)
	}

	return out, Stats{Algorithm: codec.Type(), OriginalSize: len(data), CompressedSize: len(out)}, nil
}
