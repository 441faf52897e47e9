// Package endian selects the byte order of payload columns.
//
// Payloads are little-endian unless a producer opts into big-endian for a
// consumer that reads columns directly into native memory. The choice is
// recorded in the payload header so decoders can follow it:
//
//	engine := endian.GetLittleEndianEngine()
//	buf = engine.AppendUint64(buf, math.Float64bits(v))
package endian

import (
	"encoding/binary"
	"unsafe"
)

// EndianEngine reads, writes and appends fixed-size integers in one byte order.
// binary.LittleEndian and binary.BigEndian both satisfy it.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// CheckEndianness returns the host's byte order.
func CheckEndianness() binary.ByteOrder {
	var i uint16 = 0x0100
	b := (*[2]byte)(unsafe.Pointer(&i))
	if b[0] == 0x01 {
		return binary.BigEndian
	}

	return binary.LittleEndian
}

// IsNativeLittleEndian reports whether the host is little-endian.
func IsNativeLittleEndian() bool {
	return CheckEndianness() == binary.LittleEndian
}

// GetLittleEndianEngine returns the little-endian engine.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}

// IsBigEndian reports whether engine writes the most significant byte first.
func IsBigEndian(engine EndianEngine) bool {
	return engine.Uint16([]byte{0x01, 0x00}) == 0x0100
}

// ForBigEndian returns the big-endian engine when big is set and the
// little-endian one otherwise.
func ForBigEndian(big bool) EndianEngine {
	if big {
		return GetBigEndianEngine()
	}

	return GetLittleEndianEngine()
}
