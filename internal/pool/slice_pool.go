package pool

import "sync"

// Scratch slices for converting columns to their encoded representation.
var (
	int64SlicePool = sync.Pool{
		New: func() any { return &[]int64{} },
	}
	float64SlicePool = sync.Pool{
		New: func() any { return &[]float64{} },
	}
)

// GetInt64Slice returns a slice of length size and a release function that
// must be called once the slice is no longer used:
//
//	ticks, release := pool.GetInt64Slice(n)
//	defer release()
func GetInt64Slice(size int) ([]int64, func()) {
	ptr, _ := int64SlicePool.Get().(*[]int64)
	*ptr = resize(*ptr, size)

	return *ptr, func() { int64SlicePool.Put(ptr) }
}

// GetFloat64Slice is GetInt64Slice for float64.
func GetFloat64Slice(size int) ([]float64, func()) {
	ptr, _ := float64SlicePool.Get().(*[]float64)
	*ptr = resize(*ptr, size)

	return *ptr, func() { float64SlicePool.Put(ptr) }
}

func resize[T any](s []T, size int) []T {
	if cap(s) < size {
		return make([]T, size)
	}

	return s[:size]
}
