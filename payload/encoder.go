package payload

import (
	"fmt"
	"io"
	"log/slog"
	"math"

	"github.com/ivanovmg/plotly-resampler/aggregation"
	"github.com/ivanovmg/plotly-resampler/compress"
	"github.com/ivanovmg/plotly-resampler/encoding"
	"github.com/ivanovmg/plotly-resampler/endian"
	"github.com/ivanovmg/plotly-resampler/errs"
	"github.com/ivanovmg/plotly-resampler/format"
	"github.com/ivanovmg/plotly-resampler/internal/hash"
	"github.com/ivanovmg/plotly-resampler/internal/options"
	"github.com/ivanovmg/plotly-resampler/internal/pool"
	"github.com/ivanovmg/plotly-resampler/series"
)

type config struct {
	codec     compress.Codec
	bigEndian bool
	logger    *slog.Logger
}

// Option configures an Encoder.
type Option = options.Option[*config]

// WithCompression selects the codec applied to both columns.
func WithCompression(t format.CompressionType) Option {
	return options.New(func(c *config) error {
		codec, err := compress.GetCodec(t)
		if err != nil {
			return fmt.Errorf("%w: %w", errs.ErrInvalidArgument, err)
		}
		c.codec = codec

		return nil
	})
}

// WithBigEndian writes the float columns most significant byte first.
func WithBigEndian() Option {
	return options.NoError(func(c *config) {
		c.bigEndian = true
	})
}

// WithLogger sets the logger receiving per-frame compression statistics.
func WithLogger(logger *slog.Logger) Option {
	return options.NoError(func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	})
}

// Encoder writes frames. It is immutable and safe for concurrent use.
type Encoder struct {
	cfg config
}

// NewEncoder creates an encoder. Without options columns are little-endian
// and uncompressed.
func NewEncoder(opts ...Option) (*Encoder, error) {
	cfg := config{
		codec:  compress.NewNoOpCodec(),
		logger: slog.New(slog.DiscardHandler),
	}
	if err := options.Apply(&cfg, opts...); err != nil {
		return nil, err
	}

	return &Encoder{cfg: cfg}, nil
}

// Encode serializes an aggregation result.
func (e *Encoder) Encode(res *aggregation.Result) ([]byte, error) {
	if res == nil {
		return nil, fmt.Errorf("%w: nil result", errs.ErrInvalidArgument)
	}

	return e.EncodeSeries(res.X, res.Y, res.InterleaveGaps)
}

// EncodeTo writes the frame of res to w.
func (e *Encoder) EncodeTo(w io.Writer, res *aggregation.Result) (int, error) {
	frame, err := e.Encode(res)
	if err != nil {
		return 0, err
	}

	return w.Write(frame)
}

// EncodeSeries serializes a series given by its columns.
func (e *Encoder) EncodeSeries(x series.Explicit, y series.Column, interleaveGaps bool) ([]byte, error) {
	if y == nil {
		return nil, fmt.Errorf("%w: y is required", errs.ErrInvalidArgument)
	}
	num, ok := series.AsNumeric(y)
	if !ok {
		return nil, &errs.DtypeError{Algorithm: "payload", Axis: "y", Dtype: y.Dtype().String()}
	}
	n := y.Len()
	if x.Len() != n {
		return nil, fmt.Errorf("%w: len(x)=%d, len(y)=%d", errs.ErrLengthMismatch, x.Len(), n)
	}
	if uint64(n) > math.MaxUint32 {
		return nil, fmt.Errorf("%w: %d points exceed the frame limit", errs.ErrInvalidArgument, n)
	}

	engine := endian.ForBigEndian(e.cfg.bigEndian)
	h := header{
		xDtype:      x.Dtype(),
		yDtype:      y.Dtype(),
		compression: e.cfg.codec.Type(),
		count:       uint32(n), //nolint:gosec
	}
	if n == 0 {
		h.xDtype = format.DtypeUnknown
	}
	if e.cfg.bigEndian {
		h.flags |= flagBigEndian
	}
	if interleaveGaps {
		h.flags |= flagInterleaveGaps
	}

	var xCol []byte
	if x.IsTick() {
		h.xEncoding = format.TypeDelta
		xCol = encodeTicks(x)
	} else {
		h.xEncoding = format.TypeRaw
		xCol = encodeFloats(engine, n, x.Float)
	}
	yCol := encodeFloats(engine, n, num.Float)
	h.checksum = hash.Checksum(xCol, yCol)

	xOut, xStats, err := compress.CompressWithStats(e.cfg.codec, xCol)
	if err != nil {
		return nil, err
	}
	yOut, yStats, err := compress.CompressWithStats(e.cfg.codec, yCol)
	if err != nil {
		return nil, err
	}
	h.xLen = uint32(len(xOut)) //nolint:gosec
	h.yLen = uint32(len(yOut)) //nolint:gosec

	e.cfg.logger.Debug("encoded payload",
		"points", n,
		"compression", h.compression.String(),
		"x_ratio", xStats.Ratio(),
		"y_ratio", yStats.Ratio(),
	)

	frame := make([]byte, 0, HeaderSize+len(xOut)+len(yOut))
	frame = h.append(frame)
	frame = append(frame, xOut...)
	frame = append(frame, yOut...)

	return frame, nil
}

func encodeTicks(x series.Explicit) []byte {
	ticks, release := pool.GetInt64Slice(x.Len())
	defer release()
	for i := range ticks {
		ticks[i] = x.Tick(i)
	}

	enc := encoding.NewTickDeltaEncoder()
	defer enc.Finish()
	enc.WriteSlice(ticks)

	return append([]byte(nil), enc.Bytes()...)
}

func encodeFloats(engine endian.EndianEngine, n int, at func(int) float64) []byte {
	vals, release := pool.GetFloat64Slice(n)
	defer release()
	for i := range vals {
		vals[i] = at(i)
	}

	enc := encoding.NewFloatRawEncoder(engine)
	defer enc.Finish()
	enc.WriteSlice(vals)

	return append([]byte(nil), enc.Bytes()...)
}
