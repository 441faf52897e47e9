// Package payload serializes reduced series into a compact binary frame for
// a renderer.
//
// A frame is a fixed 32-byte header followed by the x column and the y
// column:
//
//	offset size field
//	0      4    magic "RSPL"
//	4      1    version
//	5      1    flags (bit 0 big-endian columns, bit 1 interleave gaps)
//	6      1    x dtype
//	7      1    y dtype
//	8      1    compression
//	9      1    x encoding (format.TypeDelta or format.TypeRaw)
//	10     2    reserved, zero
//	12     4    point count
//	16     4    x column size
//	20     4    y column size
//	24     8    xxHash64 of both uncompressed columns
//
// Header integers are little-endian. Integer and time coordinates are
// delta-of-delta encoded ticks (TypeDelta); float coordinates and all y
// values are raw float64 words (TypeRaw) in the byte order given by flag
// bit 0. y is stored through its numeric view, so categorical y travels as
// its codes and the category table stays with the caller.
package payload

import (
	"encoding/binary"

	"github.com/ivanovmg/plotly-resampler/format"
	"github.com/ivanovmg/plotly-resampler/series"
)

const (
	// Magic opens every frame.
	Magic = "RSPL"

	// Version is the frame layout version written by this package.
	Version = 1

	// HeaderSize is the size of the fixed frame header.
	HeaderSize = 32
)

const (
	flagBigEndian uint8 = 1 << iota
	flagInterleaveGaps
)

var le = binary.LittleEndian

type header struct {
	flags       uint8
	xDtype      format.Dtype
	yDtype      format.Dtype
	compression format.CompressionType
	xEncoding   format.EncodingType
	count       uint32
	xLen        uint32
	yLen        uint32
	checksum    uint64
}

func (h header) append(buf []byte) []byte {
	buf = append(buf, Magic...)
	buf = append(buf, Version, h.flags, uint8(h.xDtype), uint8(h.yDtype), uint8(h.compression), uint8(h.xEncoding), 0, 0)
	buf = le.AppendUint32(buf, h.count)
	buf = le.AppendUint32(buf, h.xLen)
	buf = le.AppendUint32(buf, h.yLen)
	buf = le.AppendUint64(buf, h.checksum)

	return buf
}

// Frame is a decoded payload.
type Frame struct {
	X series.Explicit

	// Y holds the numeric view of the encoded y column.
	Y series.Float64s

	// YDtype is the dtype of the y column before encoding.
	YDtype format.Dtype

	InterleaveGaps bool
	Compression    format.CompressionType
}

// Len returns the number of points in the frame.
func (f *Frame) Len() int {
	return len(f.Y)
}
