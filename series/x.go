package series

import (
	"sort"
	"time"

	"github.com/ivanovmg/plotly-resampler/format"
)

// X is the x axis of a series: either Positional or Explicit.
//
// The set of variants is closed; algorithms switch on the concrete type and
// reject anything else.
type X interface {
	// Len returns the number of positions.
	Len() int

	isX()
}

// Positional is the implicit x axis 0..n-1.
type Positional struct {
	n int
}

// Index returns the positional axis of length n.
func Index(n int) Positional {
	return Positional{n: n}
}

func (p Positional) Len() int { return p.n }
func (Positional) isX() {}

// Explicit is a non-decreasing sequence of x coordinates.
//
// Float coordinates are kept as float64; integer and time coordinates are kept
// as int64 ticks so that no precision is lost when values are selected.
type Explicit struct {
	floats []float64
	ticks  []int64
	dtype  format.Dtype
}

// Coords returns an explicit axis of float coordinates.
func Coords(v []float64) Explicit {
	return Explicit{floats: v, dtype: format.DtypeFloat64}
}

// IntCoords returns an explicit axis of integer coordinates.
func IntCoords(v []int64) Explicit {
	return Explicit{ticks: v, dtype: format.DtypeInt}
}

// TickCoords returns an explicit time axis from Unix nanosecond ticks.
func TickCoords(nanos []int64) Explicit {
	return Explicit{ticks: nanos, dtype: format.DtypeTime}
}

// TimeCoords returns an explicit time axis. The instants are viewed as their
// Unix nanosecond tick count.
func TimeCoords(v []time.Time) Explicit {
	ticks := make([]int64, len(v))
	for i, t := range v {
		ticks[i] = t.UnixNano()
	}

	return TickCoords(ticks)
}

func (Explicit) isX() {}

// Len returns the number of coordinates.
func (e Explicit) Len() int {
	if e.ticks != nil {
		return len(e.ticks)
	}

	return len(e.floats)
}

// Dtype returns DtypeFloat64, DtypeInt or DtypeTime, or DtypeUnknown for the
// zero value.
func (e Explicit) Dtype() format.Dtype { return e.dtype }

// IsTick reports whether the coordinates are stored as int64 ticks.
func (e Explicit) IsTick() bool { return e.ticks != nil }

// Float returns coordinate i as a float64.
func (e Explicit) Float(i int) float64 {
	if e.ticks != nil {
		return float64(e.ticks[i])
	}

	return e.floats[i]
}

// Tick returns coordinate i as an int64; float coordinates are truncated.
func (e Explicit) Tick(i int) int64 {
	if e.ticks != nil {
		return e.ticks[i]
	}

	return int64(e.floats[i])
}

// Offset returns coordinate i relative to the first coordinate.
//
// Tick differences are taken in integer arithmetic before the conversion,
// which keeps nanosecond timestamps exact over spans of months.
func (e Explicit) Offset(i int) float64 {
	if e.ticks != nil {
		return float64(e.ticks[i] - e.ticks[0])
	}

	return e.floats[i] - e.floats[0]
}

// Span returns the distance between the last and the first coordinate.
func (e Explicit) Span() float64 {
	n := e.Len()
	if n == 0 {
		return 0
	}

	return e.Offset(n - 1)
}

// Monotonic reports whether the coordinates never decrease.
func (e Explicit) Monotonic() bool {
	if e.ticks != nil {
		for i := 1; i < len(e.ticks); i++ {
			if e.ticks[i] < e.ticks[i-1] {
				return false
			}
		}

		return true
	}

	for i := 1; i < len(e.floats); i++ {
		if e.floats[i] < e.floats[i-1] {
			return false
		}
	}

	return true
}

// SearchOffset returns the first index in [lo, hi) whose offset is >= v, or hi.
// The coordinates must be non-decreasing.
func (e Explicit) SearchOffset(lo, hi int, v float64) int {
	return lo + sort.Search(hi-lo, func(k int) bool {
		return e.Offset(lo+k) >= v
	})
}

// Slice returns a view of the coordinates in [lo, hi).
func (e Explicit) Slice(lo, hi int) Explicit {
	if e.ticks != nil {
		return Explicit{ticks: e.ticks[lo:hi:hi], dtype: e.dtype}
	}

	return Explicit{floats: e.floats[lo:hi:hi], dtype: e.dtype}
}

// Take returns a new axis holding the coordinates at idx.
func (e Explicit) Take(idx []int) Explicit {
	if e.ticks != nil {
		out := make([]int64, len(idx))
		for k, i := range idx {
			out[k] = e.ticks[i]
		}

		return Explicit{ticks: out, dtype: e.dtype}
	}

	out := make([]float64, len(idx))
	for k, i := range idx {
		out[k] = e.floats[i]
	}

	return Explicit{floats: out, dtype: e.dtype}
}

// Floats returns a copy of the coordinates as float64.
func (e Explicit) Floats() []float64 {
	out := make([]float64, e.Len())
	for i := range out {
		out[i] = e.Float(i)
	}

	return out
}

// Ticks returns a copy of the coordinates as int64.
func (e Explicit) Ticks() []int64 {
	out := make([]int64, e.Len())
	for i := range out {
		out[i] = e.Tick(i)
	}

	return out
}

// Times returns the coordinates as UTC instants. It is meaningful for
// DtypeTime axes only.
func (e Explicit) Times() []time.Time {
	out := make([]time.Time, e.Len())
	for i := range out {
		out[i] = time.Unix(0, e.Tick(i)).UTC()
	}

	return out
}

// Positions returns an integer axis holding idx, the explicit form of the
// positional coordinates at idx.
func Positions(idx []int) Explicit {
	ticks := make([]int64, len(idx))
	for k, i := range idx {
		ticks[k] = int64(i)
	}

	return IntCoords(ticks)
}

// Resolve returns x as an explicit axis: positional axes become 0..n-1.
func Resolve(x X) (Explicit, bool) {
	switch v := x.(type) {
	case Explicit:
		return v, true
	case Positional:
		idx := make([]int, v.n)
		for i := range idx {
			idx[i] = i
		}

		return Positions(idx), true
	default:
		return Explicit{}, false
	}
}
