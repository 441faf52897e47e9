// Package encoding turns payload columns into bytes and back.
//
// Two column encodings are provided:
//
//   - TickDeltaEncoder stores int64 coordinates (integer positions or Unix
//     nanosecond timestamps) as zigzag varints of their delta-of-delta. Evenly
//     spaced coordinates, the common case for positions and sampled clocks,
//     cost one byte each.
//   - FloatRawEncoder stores float64 values as IEEE-754 words in the byte
//     order of an endian.EndianEngine.
//
// Encoders write into pooled buffers. Bytes is valid until Finish, which
// returns the buffer to the pool:
//
//	enc := encoding.NewTickDeltaEncoder()
//	defer enc.Finish()
//	enc.WriteSlice(ticks)
//	col := bytes.Clone(enc.Bytes())
//
// Decoders are stateless and report truncated or trailing input with
// errs.ErrInvalidPayload.
package encoding
