package pool

import (
	"io"
	"sync"
)

const (
	// ColumnBufferDefaultSize is the initial capacity of a pooled column buffer.
	ColumnBufferDefaultSize = 1024 * 16 // 16KiB

	// ColumnBufferMaxThreshold is the largest buffer returned to the pool.
	ColumnBufferMaxThreshold = 1024 * 1024 * 4 // 4MiB
)

// ByteBuffer is a growable byte slice for assembling encoded columns.
type ByteBuffer struct {
	B []byte
}

// NewByteBuffer creates an empty buffer with the given capacity.
func NewByteBuffer(defaultSize int) *ByteBuffer {
	return &ByteBuffer{B: make([]byte, 0, defaultSize)}
}

// Bytes returns the buffer content. It aliases the buffer until the next write.
func (bb *ByteBuffer) Bytes() []byte {
	return bb.B
}

// Reset empties the buffer and keeps its memory.
func (bb *ByteBuffer) Reset() {
	bb.B = bb.B[:0]
}

func (bb *ByteBuffer) Len() int { return len(bb.B) }
func (bb *ByteBuffer) Cap() int { return cap(bb.B) }

// Grow makes room for n more bytes. Small buffers grow by the default size
// and larger ones by a quarter of their capacity, or by n when that is more.
func (bb *ByteBuffer) Grow(n int) {
	if cap(bb.B)-len(bb.B) >= n {
		return
	}

	growBy := ColumnBufferDefaultSize
	if cap(bb.B) > 4*ColumnBufferDefaultSize {
		growBy = cap(bb.B) / 4
	}
	growBy = max(growBy, n)

	buf := make([]byte, len(bb.B), len(bb.B)+growBy)
	copy(buf, bb.B)
	bb.B = buf
}

// Write appends data. It never fails.
func (bb *ByteBuffer) Write(data []byte) (int, error) {
	bb.B = append(bb.B, data...)
	return len(data), nil
}

// WriteTo writes the content to w.
func (bb *ByteBuffer) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(bb.B)
	return int64(n), err
}

// ByteBufferPool recycles buffers, dropping the ones that grew beyond
// maxThreshold so a single huge payload does not pin memory.
type ByteBufferPool struct {
	pool         sync.Pool
	maxThreshold int
}

// NewByteBufferPool creates a pool of buffers with the given initial capacity.
// A maxThreshold of zero keeps every buffer.
func NewByteBufferPool(defaultSize int, maxThreshold int) *ByteBufferPool {
	return &ByteBufferPool{
		pool: sync.Pool{
			New: func() any {
				return NewByteBuffer(defaultSize)
			},
		},
		maxThreshold: maxThreshold,
	}
}

// Get returns an empty buffer.
func (p *ByteBufferPool) Get() *ByteBuffer {
	bb, _ := p.pool.Get().(*ByteBuffer)
	return bb
}

// Put returns bb to the pool. bb must not be used afterwards.
func (p *ByteBufferPool) Put(bb *ByteBuffer) {
	if bb == nil {
		return
	}
	if p.maxThreshold > 0 && cap(bb.B) > p.maxThreshold {
		return
	}

	bb.Reset()
	p.pool.Put(bb)
}

var columnPool = NewByteBufferPool(ColumnBufferDefaultSize, ColumnBufferMaxThreshold)

// GetColumnBuffer returns a buffer from the shared column pool.
func GetColumnBuffer() *ByteBuffer {
	return columnPool.Get()
}

// PutColumnBuffer returns a buffer to the shared column pool.
func PutColumnBuffer(bb *ByteBuffer) {
	columnPool.Put(bb)
}
