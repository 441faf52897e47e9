package compress

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ivanovmg/plotly-resampler/format"
)

// floatColumn mimics a raw float64 payload column of a slowly varying signal.
func floatColumn(n int) []byte {
	buf := make([]byte, 0, n*8)
	for i := range n {
		v := math.Round(100*math.Sin(float64(i)/40)) / 4
		buf = binary.LittleEndian.AppendUint64(buf, math.Float64bits(v))
	}

	return buf
}

func allCodecs() []format.CompressionType {
	return []format.CompressionType{
		format.CompressionNone,
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	}
}

func TestCodecs_RoundTrip(t *testing.T) {
	inputs := map[string][]byte{
		"floats": floatColumn(4096),
		"text":   []byte("zero zero zero zero one zero zero zero zero two"),
		"byte":   {0x7f},
	}

	for _, ct := range allCodecs() {
		codec, err := GetCodec(ct)
		require.NoError(t, err)
		require.Equal(t, ct, codec.Type())

		for name, data := range inputs {
			t.Run(ct.String()+"/"+name, func(t *testing.T) {
				compressed, err := codec.Compress(data)
				require.NoError(t, err)

				restored, err := codec.Decompress(compressed)
				require.NoError(t, err)
				require.Equal(t, data, restored)
			})
		}
	}
}

func TestCodecs_EmptyInput(t *testing.T) {
	for _, ct := range allCodecs() {
		t.Run(ct.String(), func(t *testing.T) {
			codec, err := GetCodec(ct)
			require.NoError(t, err)

			compressed, err := codec.Compress(nil)
			require.NoError(t, err)
			require.Empty(t, compressed)

			restored, err := codec.Decompress(compressed)
			require.NoError(t, err)
			require.Empty(t, restored)
		})
	}
}

func TestCodecs_ShrinkRepetitiveColumns(t *testing.T) {
	data := floatColumn(8192)

	for _, ct := range allCodecs()[1:] {
		t.Run(ct.String(), func(t *testing.T) {
			codec, err := GetCodec(ct)
			require.NoError(t, err)

			_, stats, err := CompressWithStats(codec, data)
			require.NoError(t, err)
			require.Equal(t, ct, stats.Algorithm)
			require.Equal(t, len(data), stats.OriginalSize)
			require.Less(t, stats.Ratio(), 1.0)
			require.Greater(t, stats.Savings(), 0.0)
		})
	}
}

func TestCodecs_CorruptInput(t *testing.T) {
	garbage := []byte{0xde, 0xad, 0xbe, 0xef, 0x00, 0x11, 0x22, 0x33, 0x44}

	for _, ct := range []format.CompressionType{format.CompressionZstd, format.CompressionS2} {
		t.Run(ct.String(), func(t *testing.T) {
			codec, err := GetCodec(ct)
			require.NoError(t, err)

			_, err = codec.Decompress(garbage)
			require.Error(t, err)
		})
	}
}

func TestNoOpCodec_ReturnsInput(t *testing.T) {
	data := []byte{1, 2, 3}
	out, err := NewNoOpCodec().Compress(data)
	require.NoError(t, err)
	require.Same(t, &data[0], &out[0])
}

func TestGetCodec_Unknown(t *testing.T) {
	_, err := GetCodec(format.CompressionType(0))
	require.Error(t, err)

	_, err = GetCodec(format.ParseCompression("brotli"))
	require.Error(t, err)
}

func TestStats(t *testing.T) {
	tests := []struct {
		name    string
		stats   Stats
		ratio   float64
		savings float64
	}{
		{"half", Stats{OriginalSize: 1000, CompressedSize: 500}, 0.5, 50},
		{"none", Stats{OriginalSize: 1000, CompressedSize: 1000}, 1, 0},
		{"overhead", Stats{OriginalSize: 100, CompressedSize: 120}, 1.2, -20},
		{"empty", Stats{}, 0, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.InDelta(t, tt.ratio, tt.stats.Ratio(), 1e-9)
			require.InDelta(t, tt.savings, tt.stats.Savings(), 1e-9)
		})
	}
}

func BenchmarkCodecs(b *testing.B) {
	data := floatColumn(16384)

	for _, ct := range allCodecs() {
		codec, _ := GetCodec(ct)
		compressed, _ := codec.Compress(data)

		b.Run(ct.String()+"/compress", func(b *testing.B) {
			b.SetBytes(int64(len(data)))
			for b.Loop() {
				_, _ = codec.Compress(data)
			}
		})
		b.Run(ct.String()+"/decompress", func(b *testing.B) {
			b.SetBytes(int64(len(data)))
			for b.Loop() {
				_, _ = codec.Decompress(compressed)
			}
		})
	}
}
