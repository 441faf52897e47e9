package encoding

import (
	"encoding/binary"
	"fmt"
	"iter"

	"github.com/ivanovmg/plotly-resampler/errs"
	"github.com/ivanovmg/plotly-resampler/internal/pool"
)

// TickDeltaEncoder writes int64 ticks as delta-of-delta zigzag varints.
//
// The first tick is written as is, the second as its delta from the first and
// every further tick as the change of delta. All three are zigzag-mapped so
// negative coordinates and shrinking steps stay small.
type TickDeltaEncoder struct {
	prev      int64
	prevDelta int64
	temp      [binary.MaxVarintLen64]byte
	buf       *pool.ByteBuffer
	count     int
}

var _ ColumnarEncoder[int64] = (*TickDeltaEncoder)(nil)

// NewTickDeltaEncoder creates an encoder backed by a pooled buffer.
func NewTickDeltaEncoder() *TickDeltaEncoder {
	return &TickDeltaEncoder{buf: pool.GetColumnBuffer()}
}

func zigzag(v int64) uint64 {
	return uint64((v << 1) ^ (v >> 63)) //nolint:gosec
}

func unzigzag(u uint64) int64 {
	return int64(u>>1) ^ -int64(u&1) //nolint:gosec
}

func (e *TickDeltaEncoder) Write(tick int64) {
	var v int64
	switch e.count {
	case 0:
		v = tick
	case 1:
		e.prevDelta = tick - e.prev
		v = e.prevDelta
	default:
		delta := tick - e.prev
		v = delta - e.prevDelta
		e.prevDelta = delta
	}

	n := binary.PutUvarint(e.temp[:], zigzag(v))
	_, _ = e.buf.Write(e.temp[:n])
	e.prev = tick
	e.count++
}

// WriteSlice reserves about two bytes per tick and then writes each one.
func (e *TickDeltaEncoder) WriteSlice(ticks []int64) {
	e.buf.Grow(binary.MaxVarintLen64 + 2*len(ticks))
	for _, t := range ticks {
		e.Write(t)
	}
}

func (e *TickDeltaEncoder) Bytes() []byte { return e.buf.Bytes() }
func (e *TickDeltaEncoder) Len() int { return e.count }
func (e *TickDeltaEncoder) Size() int { return e.buf.Len() }

func (e *TickDeltaEncoder) Finish() {
	pool.PutColumnBuffer(e.buf)
	e.buf = nil
}

// TickDeltaDecoder reads columns written by TickDeltaEncoder.
type TickDeltaDecoder struct{}

var _ ColumnarDecoder[int64] = TickDeltaDecoder{}

// NewTickDeltaDecoder creates a decoder.
func NewTickDeltaDecoder() TickDeltaDecoder {
	return TickDeltaDecoder{}
}

func (d TickDeltaDecoder) All(data []byte, count int) iter.Seq[int64] {
	return func(yield func(int64) bool) {
		_, _ = d.walk(data, count, yield)
	}
}

func (d TickDeltaDecoder) Decode(data []byte, count int) ([]int64, error) {
	// every tick takes at least one byte
	if count < 0 || count > len(data) {
		return nil, fmt.Errorf("%w: %d ticks cannot fit %d bytes", errs.ErrInvalidPayload, count, len(data))
	}

	out := make([]int64, 0, count)
	offset, err := d.walk(data, count, func(t int64) bool {
		out = append(out, t)
		return true
	})
	if err != nil {
		return nil, err
	}
	if offset != len(data) {
		return nil, fmt.Errorf("%w: %d trailing bytes after %d ticks", errs.ErrInvalidPayload, len(data)-offset, count)
	}

	return out, nil
}

// walk decodes up to count ticks and returns the number of bytes consumed.
func (TickDeltaDecoder) walk(data []byte, count int, yield func(int64) bool) (int, error) {
	var cur, delta int64
	offset := 0
	for i := range count {
		u, n := binary.Uvarint(data[offset:])
		if n <= 0 {
			return offset, fmt.Errorf("%w: tick column truncated at value %d of %d", errs.ErrInvalidPayload, i, count)
		}
		offset += n

		v := unzigzag(u)
		switch i {
		case 0:
			cur = v
		case 1:
			delta = v
			cur += delta
		default:
			delta += v
			cur += delta
		}

		if !yield(cur) {
			return offset, nil
		}
	}

	return offset, nil
}
