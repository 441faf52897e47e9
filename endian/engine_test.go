package endian

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEngines(t *testing.T) {
	require.Equal(t, binary.LittleEndian, GetLittleEndianEngine())
	require.Equal(t, binary.BigEndian, GetBigEndianEngine())

	require.False(t, IsBigEndian(GetLittleEndianEngine()))
	require.True(t, IsBigEndian(GetBigEndianEngine()))

	require.Equal(t, GetBigEndianEngine(), ForBigEndian(true))
	require.Equal(t, GetLittleEndianEngine(), ForBigEndian(false))
}

func TestCheckEndianness(t *testing.T) {
	native := CheckEndianness()
	require.Contains(t, []binary.ByteOrder{binary.LittleEndian, binary.BigEndian}, native)
	require.Equal(t, native == binary.LittleEndian, IsNativeLittleEndian())
}

func TestEngines_FloatColumnLayout(t *testing.T) {
	bits := math.Float64bits(1.5)

	little := GetLittleEndianEngine().AppendUint64(nil, bits)
	big := GetBigEndianEngine().AppendUint64(nil, bits)

	require.Len(t, little, 8)
	require.Equal(t, byte(0x3f), little[7])
	require.Equal(t, byte(0x3f), big[0])

	require.Equal(t, bits, GetLittleEndianEngine().Uint64(little))
	require.Equal(t, bits, GetBigEndianEngine().Uint64(big))
}
