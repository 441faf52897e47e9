// Package viewport reduces the part of a trace that is visible in a plot
// viewport.
//
// A renderer asks for the samples between two x values. Bounds turns the
// request into an index range and Trace.Reduce downsamples that range to the
// trace's sample budget, or returns it raw when it already fits.
package viewport

import (
	"fmt"
	"math"

	"github.com/ivanovmg/plotly-resampler/aggregation"
	"github.com/ivanovmg/plotly-resampler/errs"
	"github.com/ivanovmg/plotly-resampler/series"
)

// Bounds returns the index range [lo, hi) of the samples whose x lies in
// [start, end]. A nil start or end leaves that side of the series open.
//
// Explicit coordinates must be non-decreasing; start is located with a left
// bisection and end with a right one, so samples equal to either bound are
// included. Positional axes are resolved arithmetically.
func Bounds(x series.X, start, end *float64) (int, int) {
	n := x.Len()
	if n == 0 {
		return 0, 0
	}
	if start == nil && end == nil {
		return 0, n
	}

	if e, ok := x.(series.Explicit); ok {
		lo, hi := 0, n
		if start != nil {
			lo = e.SearchOffset(0, n, *start-e.Float(0))
		}
		if end != nil {
			hi = searchRight(e, lo, n, *end-e.Float(0))
		}

		return lo, max(lo, hi)
	}

	lo, hi := 0, n
	if start != nil {
		lo = clamp(int(math.Ceil(*start)), 0, n)
	}
	if end != nil {
		hi = clamp(int(math.Floor(*end))+1, 0, n)
	}

	return lo, max(lo, hi)
}

// searchRight returns the first index in [lo, hi) whose offset exceeds v, or hi.
func searchRight(e series.Explicit, lo, hi int, v float64) int {
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		if e.Offset(mid) <= v {
			lo = mid + 1
		} else {
			hi = mid
		}
	}

	return lo
}

func clamp(v, lo, hi int) int {
	return min(max(v, lo), hi)
}

// Trace is a high-frequency series with its downsampling settings.
type Trace struct {
	X           series.X
	Y           series.Column
	MaxSamples  int
	Downsampler aggregation.Aggregator
	Params      aggregation.Params
}

// View is the reduced content of a viewport.
type View struct {
	X series.Explicit
	Y series.Column

	// Indices are relative to the start of the viewport for selectors, and
	// 0..len-1 for raw or aggregated views.
	Indices []int

	// InterleaveGaps reports whether gap markers should be inserted into the
	// view. It is never set for raw views or positional axes, which have no gaps.
	InterleaveGaps bool
}

// Len returns the number of points in the view.
func (v *View) Len() int {
	return v.X.Len()
}

// Reduce returns the samples in [lo, hi) reduced to at most MaxSamples points.
func (t *Trace) Reduce(lo, hi int) (*View, error) {
	if t.Y == nil || t.X == nil {
		return nil, fmt.Errorf("%w: trace needs x and y", errs.ErrInvalidArgument)
	}
	if t.X.Len() != t.Y.Len() {
		return nil, fmt.Errorf("%w: len(x)=%d, len(y)=%d", errs.ErrLengthMismatch, t.X.Len(), t.Y.Len())
	}
	if lo < 0 || hi > t.Y.Len() || lo > hi {
		return nil, fmt.Errorf("%w: range [%d, %d) outside [0, %d)", errs.ErrInvalidArgument, lo, hi, t.Y.Len())
	}
	if t.MaxSamples < 1 {
		return nil, fmt.Errorf("%w: max samples must be positive, got %d", errs.ErrInvalidArgument, t.MaxSamples)
	}

	y := t.Y.Slice(lo, hi)
	e, explicit := t.X.(series.Explicit)

	var x series.X = series.Index(hi - lo)
	if explicit {
		x = e.Slice(lo, hi)
	}

	if hi-lo <= t.MaxSamples {
		idx := make([]int, hi-lo)
		for i := range idx {
			idx[i] = i
		}

		return &View{X: absolute(x, idx, lo), Y: y, Indices: idx}, nil
	}

	if t.Downsampler == nil {
		return nil, fmt.Errorf("%w: trace has no downsampler", errs.ErrInvalidArgument)
	}

	var opts []aggregation.CallOption
	if len(t.Params) > 0 {
		opts = append(opts, aggregation.WithParams(t.Params))
	}

	view := &View{InterleaveGaps: t.Downsampler.InterleaveGaps() && explicit}

	if sel, ok := t.Downsampler.(aggregation.Selector); ok {
		in := y
		if cat, ok := y.(*series.Categorical); ok {
			in = cat.CodeColumn()
		}

		idx, err := sel.Select(x, in, t.MaxSamples, opts...)
		if err != nil {
			return nil, err
		}

		view.X = absolute(x, idx, lo)
		view.Y = y.Take(idx)
		view.Indices = idx

		return view, nil
	}

	res, err := t.Downsampler.Aggregate(x, y, t.MaxSamples, opts...)
	if err != nil {
		return nil, err
	}

	view.X = res.X
	if !explicit {
		view.X = shift(res.X, lo)
	}
	view.Y = res.Y
	view.Indices = make([]int, res.Len())
	for i := range view.Indices {
		view.Indices[i] = i
	}

	return view, nil
}

// ReduceRange reduces the samples whose x lies in [start, end].
func (t *Trace) ReduceRange(start, end *float64) (*View, error) {
	if t.X == nil {
		return nil, fmt.Errorf("%w: trace needs x and y", errs.ErrInvalidArgument)
	}
	lo, hi := Bounds(t.X, start, end)

	return t.Reduce(lo, hi)
}

// absolute returns the coordinates at idx, relative to the viewport start lo,
// on the trace's own x scale.
func absolute(x series.X, idx []int, lo int) series.Explicit {
	if e, ok := x.(series.Explicit); ok {
		return e.Take(idx)
	}

	return shift(series.Positions(idx), lo)
}

// shift offsets an integer position axis by lo.
func shift(pos series.Explicit, lo int) series.Explicit {
	ticks := pos.Ticks()
	for i := range ticks {
		ticks[i] += int64(lo)
	}

	return series.IntCoords(ticks)
}
