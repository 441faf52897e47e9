package encoding

import "iter"

// ColumnarEncoder appends values of one column to an internal buffer.
type ColumnarEncoder[T comparable] interface {
	// Write appends one value.
	Write(v T)

	// WriteSlice appends all values.
	WriteSlice(values []T)

	// Bytes returns the encoded column. The slice is owned by the encoder and
	// valid until the next write or Finish.
	Bytes() []byte

	// Len returns the number of values written.
	Len() int

	// Size returns the encoded size in bytes.
	Size() int

	// Finish releases the buffer. The encoder must not be used afterwards.
	Finish()
}

// ColumnarDecoder reads a column written by the matching encoder.
type ColumnarDecoder[T comparable] interface {
	// All yields the count values of data in order. It stops early on
	// malformed input; Decode reports that case as an error.
	All(data []byte, count int) iter.Seq[T]

	// Decode returns exactly count values or an error.
	Decode(data []byte, count int) ([]T, error)
}
