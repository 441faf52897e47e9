package format

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDtypeSet(t *testing.T) {
	s := NewDtypeSet(DtypeInt, DtypeTime)

	require.True(t, s.Contains(DtypeInt))
	require.True(t, s.Contains(DtypeTime))
	require.False(t, s.Contains(DtypeFloat64))
	require.False(t, s.Contains(DtypeUnknown))
	require.Equal(t, []Dtype{DtypeInt, DtypeTime}, s.Dtypes())
	require.Equal(t, "{int,time}", s.String())
}

func TestBuiltinDtypeSets(t *testing.T) {
	require.False(t, NumericDtypes.Contains(DtypeString))
	require.False(t, NumericDtypes.Contains(DtypeTime))
	require.True(t, NumericDtypes.Contains(DtypeCategory))
	require.True(t, NumericDtypes.Contains(DtypeBool))

	require.Len(t, AnyDtype.Dtypes(), 8)

	require.Equal(t, []Dtype{DtypeFloat64, DtypeInt, DtypeTime}, CoordinateDtypes.Dtypes())
}

func TestParseAlgorithm(t *testing.T) {
	tests := []struct {
		name string
		want Algorithm
	}{
		{"EveryNth", AlgorithmEveryNth},
		{"every_nth", AlgorithmEveryNth},
		{"MINMAX", AlgorithmMinMax},
		{" minmax_overlap ", AlgorithmMinMaxOverlap},
		{"lttb", AlgorithmLTTB},
		{"MinMaxLTTB", AlgorithmMinMaxLTTB},
		{"func", AlgorithmFunc},
		{"m4", AlgorithmUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, ParseAlgorithm(tt.name))
		})
	}
}

func TestAlgorithmString_RoundTrips(t *testing.T) {
	for a := AlgorithmEveryNth; a <= AlgorithmFunc; a++ {
		require.Equal(t, a, ParseAlgorithm(a.String()), a.String())
	}
	require.Equal(t, "Unknown", Algorithm(0x7f).String())
}

func TestParseCompression(t *testing.T) {
	for c := CompressionNone; c <= CompressionLZ4; c++ {
		require.Equal(t, c, ParseCompression(c.String()))
	}
	require.Equal(t, CompressionNone, ParseCompression(""))
	require.Equal(t, CompressionType(0), ParseCompression("brotli"))
	require.Equal(t, "Unknown", CompressionType(0).String())
}

func TestDtypeString(t *testing.T) {
	require.Equal(t, "float64", DtypeFloat64.String())
	require.Equal(t, "category", DtypeCategory.String())
	require.Equal(t, "unknown", DtypeUnknown.String())
}

func TestEncodingTypeString(t *testing.T) {
	require.Equal(t, "Raw", TypeRaw.String())
	require.Equal(t, "Delta", TypeDelta.String())
	require.Equal(t, "Unknown", EncodingType(0).String())
}
