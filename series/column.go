package series

import (
	"math"
	"time"

	"github.com/chewxy/math32"

	"github.com/ivanovmg/plotly-resampler/format"
)

// Column is an ordered sequence of y-values.
type Column interface {
	// Len returns the number of values.
	Len() int

	// Dtype returns the semantic type of the values.
	Dtype() format.Dtype

	// Less reports whether the value at i orders before the value at j.
	Less(i, j int) bool

	// Slice returns a view of the values in [lo, hi).
	Slice(lo, hi int) Column

	// Take returns a new column holding the values at idx, in idx order.
	Take(idx []int) Column
}

// Numeric is a Column with a float64 view of its values.
type Numeric interface {
	Column

	// Float returns the value at i on a linear numeric scale.
	Float(i int) float64
}

// Signed is the set of signed integer element types accepted by Ints.
type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Unsigned is the set of unsigned integer element types accepted by Uints.
type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// AsNumeric returns the numeric view of c when it has one.
func AsNumeric(c Column) (Numeric, bool) {
	n, ok := c.(Numeric)
	return n, ok
}

// Float64s is a column of float64 values. NaN orders before every number.
type Float64s []float64

var _ Numeric = Float64s(nil)

func (s Float64s) Len() int { return len(s) }
func (s Float64s) Dtype() format.Dtype { return format.DtypeFloat64 }
func (s Float64s) Float(i int) float64 { return s[i] }
func (s Float64s) Slice(lo, hi int) Column { return s[lo:hi:hi] }

func (s Float64s) Less(i, j int) bool {
	return s[i] < s[j] || (math.IsNaN(s[i]) && !math.IsNaN(s[j]))
}

func (s Float64s) Take(idx []int) Column {
	out := make(Float64s, len(idx))
	for k, i := range idx {
		out[k] = s[i]
	}

	return out
}

// Float32s is a column of float32 values. NaN orders before every number.
type Float32s []float32

var _ Numeric = Float32s(nil)

func (s Float32s) Len() int { return len(s) }
func (s Float32s) Dtype() format.Dtype { return format.DtypeFloat32 }
func (s Float32s) Float(i int) float64 { return float64(s[i]) }
func (s Float32s) Slice(lo, hi int) Column { return s[lo:hi:hi] }

func (s Float32s) Less(i, j int) bool {
	return s[i] < s[j] || (math32.IsNaN(s[i]) && !math32.IsNaN(s[j]))
}

func (s Float32s) Take(idx []int) Column {
	out := make(Float32s, len(idx))
	for k, i := range idx {
		out[k] = s[i]
	}

	return out
}

// Ints is a column of signed integers of any width.
type Ints[T Signed] []T

var _ Numeric = Ints[int64](nil)

func (s Ints[T]) Len() int { return len(s) }
func (s Ints[T]) Dtype() format.Dtype { return format.DtypeInt }
func (s Ints[T]) Float(i int) float64 { return float64(s[i]) }
func (s Ints[T]) Less(i, j int) bool { return s[i] < s[j] }
func (s Ints[T]) Slice(lo, hi int) Column { return s[lo:hi:hi] }

func (s Ints[T]) Take(idx []int) Column {
	out := make(Ints[T], len(idx))
	for k, i := range idx {
		out[k] = s[i]
	}

	return out
}

// Uints is a column of unsigned integers of any width.
type Uints[T Unsigned] []T

var _ Numeric = Uints[uint64](nil)

func (s Uints[T]) Len() int { return len(s) }
func (s Uints[T]) Dtype() format.Dtype { return format.DtypeUint }
func (s Uints[T]) Float(i int) float64 { return float64(s[i]) }
func (s Uints[T]) Less(i, j int) bool { return s[i] < s[j] }
func (s Uints[T]) Slice(lo, hi int) Column { return s[lo:hi:hi] }

func (s Uints[T]) Take(idx []int) Column {
	out := make(Uints[T], len(idx))
	for k, i := range idx {
		out[k] = s[i]
	}

	return out
}

// Bools is a column of booleans; its numeric view maps false to 0 and true to 1.
type Bools []bool

var _ Numeric = Bools(nil)

func (s Bools) Len() int { return len(s) }
func (s Bools) Dtype() format.Dtype { return format.DtypeBool }
func (s Bools) Less(i, j int) bool { return !s[i] && s[j] }
func (s Bools) Slice(lo, hi int) Column { return s[lo:hi:hi] }

func (s Bools) Float(i int) float64 {
	if s[i] {
		return 1
	}

	return 0
}

func (s Bools) Take(idx []int) Column {
	out := make(Bools, len(idx))
	for k, i := range idx {
		out[k] = s[i]
	}

	return out
}

// Strings is a column of free-form strings ordered lexically. It has no
// numeric view.
type Strings []string

var _ Column = Strings(nil)

func (s Strings) Len() int { return len(s) }
func (s Strings) Dtype() format.Dtype { return format.DtypeString }
func (s Strings) Less(i, j int) bool { return s[i] < s[j] }
func (s Strings) Slice(lo, hi int) Column { return s[lo:hi:hi] }

func (s Strings) Take(idx []int) Column {
	out := make(Strings, len(idx))
	for k, i := range idx {
		out[k] = s[i]
	}

	return out
}

// Times is a column of instants ordered chronologically. It has no numeric
// view; use TimeCoords to place instants on the x axis instead.
type Times []time.Time

var _ Column = Times(nil)

func (s Times) Len() int { return len(s) }
func (s Times) Dtype() format.Dtype { return format.DtypeTime }
func (s Times) Less(i, j int) bool { return s[i].Before(s[j]) }
func (s Times) Slice(lo, hi int) Column { return s[lo:hi:hi] }

func (s Times) Take(idx []int) Column {
	out := make(Times, len(idx))
	for k, i := range idx {
		out[k] = s[i]
	}

	return out
}
