package payload

import (
	"fmt"

	"github.com/ivanovmg/plotly-resampler/compress"
	"github.com/ivanovmg/plotly-resampler/encoding"
	"github.com/ivanovmg/plotly-resampler/endian"
	"github.com/ivanovmg/plotly-resampler/errs"
	"github.com/ivanovmg/plotly-resampler/format"
	"github.com/ivanovmg/plotly-resampler/internal/hash"
	"github.com/ivanovmg/plotly-resampler/series"
)

// Decode parses a frame written by an Encoder and verifies its checksum.
func Decode(data []byte) (*Frame, error) {
	h, err := parseHeader(data)
	if err != nil {
		return nil, err
	}

	body := data[HeaderSize:]
	if uint64(len(body)) != uint64(h.xLen)+uint64(h.yLen) {
		return nil, fmt.Errorf("%w: body holds %d bytes, header declares %d", errs.ErrInvalidPayload, len(body), uint64(h.xLen)+uint64(h.yLen))
	}

	codec, err := compress.GetCodec(h.compression)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrInvalidPayload, err)
	}
	xCol, err := codec.Decompress(body[:h.xLen])
	if err != nil {
		return nil, fmt.Errorf("%w: x column: %w", errs.ErrInvalidPayload, err)
	}
	yCol, err := codec.Decompress(body[h.xLen:])
	if err != nil {
		return nil, fmt.Errorf("%w: y column: %w", errs.ErrInvalidPayload, err)
	}

	if sum := hash.Checksum(xCol, yCol); sum != h.checksum {
		return nil, fmt.Errorf("%w: got %#016x, header declares %#016x", errs.ErrChecksumMismatch, sum, h.checksum)
	}

	count := int(h.count)
	engine := endian.ForBigEndian(h.flags&flagBigEndian != 0)
	floats := encoding.NewFloatRawDecoder(engine)

	frame := &Frame{
		YDtype:         h.yDtype,
		InterleaveGaps: h.flags&flagInterleaveGaps != 0,
		Compression:    h.compression,
	}

	switch h.xEncoding {
	case format.TypeDelta:
		ticks, err := encoding.NewTickDeltaDecoder().Decode(xCol, count)
		if err != nil {
			return nil, err
		}
		if h.xDtype == format.DtypeTime {
			frame.X = series.TickCoords(ticks)
		} else {
			frame.X = series.IntCoords(ticks)
		}
	case format.TypeRaw:
		xs, err := floats.Decode(xCol, count)
		if err != nil {
			return nil, err
		}
		frame.X = series.Coords(xs)
	default:
		return nil, fmt.Errorf("%w: unknown x encoding %d", errs.ErrInvalidPayload, h.xEncoding)
	}

	ys, err := floats.Decode(yCol, count)
	if err != nil {
		return nil, err
	}
	frame.Y = ys

	return frame, nil
}

func parseHeader(data []byte) (header, error) {
	if len(data) < HeaderSize {
		return header{}, fmt.Errorf("%w: %d bytes is shorter than the header", errs.ErrInvalidPayload, len(data))
	}
	if string(data[:4]) != Magic {
		return header{}, fmt.Errorf("%w: bad magic %q", errs.ErrInvalidPayload, data[:4])
	}
	if data[4] != Version {
		return header{}, fmt.Errorf("%w: unsupported version %d", errs.ErrInvalidPayload, data[4])
	}

	return header{
		flags:       data[5],
		xDtype:      format.Dtype(data[6]),
		yDtype:      format.Dtype(data[7]),
		compression: format.CompressionType(data[8]),
		xEncoding:   format.EncodingType(data[9]),
		count:       le.Uint32(data[12:]),
		xLen:        le.Uint32(data[16:]),
		yLen:        le.Uint32(data[20:]),
		checksum:    le.Uint64(data[24:]),
	}, nil
}
