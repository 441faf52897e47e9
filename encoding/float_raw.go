package encoding

import (
	"fmt"
	"iter"
	"math"

	"github.com/ivanovmg/plotly-resampler/endian"
	"github.com/ivanovmg/plotly-resampler/errs"
	"github.com/ivanovmg/plotly-resampler/internal/pool"
)

// FloatRawEncoder writes float64 values as 8-byte IEEE-754 words.
type FloatRawEncoder struct {
	buf    *pool.ByteBuffer
	engine endian.EndianEngine
	count  int
}

var _ ColumnarEncoder[float64] = (*FloatRawEncoder)(nil)

// NewFloatRawEncoder creates an encoder writing in engine's byte order.
func NewFloatRawEncoder(engine endian.EndianEngine) *FloatRawEncoder {
	return &FloatRawEncoder{buf: pool.GetColumnBuffer(), engine: engine}
}

func (e *FloatRawEncoder) Write(v float64) {
	e.buf.B = e.engine.AppendUint64(e.buf.B, math.Float64bits(v))
	e.count++
}

func (e *FloatRawEncoder) WriteSlice(values []float64) {
	e.buf.Grow(8 * len(values))
	for _, v := range values {
		e.buf.B = e.engine.AppendUint64(e.buf.B, math.Float64bits(v))
	}
	e.count += len(values)
}

func (e *FloatRawEncoder) Bytes() []byte { return e.buf.Bytes() }
func (e *FloatRawEncoder) Len() int { return e.count }
func (e *FloatRawEncoder) Size() int { return e.buf.Len() }

func (e *FloatRawEncoder) Finish() {
	pool.PutColumnBuffer(e.buf)
	e.buf = nil
}

// FloatRawDecoder reads columns written by FloatRawEncoder.
type FloatRawDecoder struct {
	engine endian.EndianEngine
}

var _ ColumnarDecoder[float64] = FloatRawDecoder{}

// NewFloatRawDecoder creates a decoder reading in engine's byte order.
func NewFloatRawDecoder(engine endian.EndianEngine) FloatRawDecoder {
	return FloatRawDecoder{engine: engine}
}

func (d FloatRawDecoder) All(data []byte, count int) iter.Seq[float64] {
	return func(yield func(float64) bool) {
		for i := range min(count, len(data)/8) {
			if !yield(d.At(data, i)) {
				return
			}
		}
	}
}

// At returns value i without bounds checks beyond the slice's own.
func (d FloatRawDecoder) At(data []byte, i int) float64 {
	return math.Float64frombits(d.engine.Uint64(data[8*i:]))
}

func (d FloatRawDecoder) Decode(data []byte, count int) ([]float64, error) {
	if len(data) != 8*count {
		return nil, fmt.Errorf("%w: float column holds %d bytes, want %d", errs.ErrInvalidPayload, len(data), 8*count)
	}

	out := make([]float64, count)
	for i := range out {
		out[i] = d.At(data, i)
	}

	return out, nil
}
