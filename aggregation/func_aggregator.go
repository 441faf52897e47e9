package aggregation

import (
	"fmt"

	"github.com/ivanovmg/plotly-resampler/errs"
	"github.com/ivanovmg/plotly-resampler/format"
	"github.com/ivanovmg/plotly-resampler/series"
)

// ReduceFunc reduces the y values of one bin to a single value. The window is
// a read-only view into the caller's y; params carries the call's keyword
// arguments and is nil when none were given.
type ReduceFunc func(window series.Column, params Params) (float64, error)

// FuncAggregator reduces each bin of y with a user-supplied function.
//
// With a positional x the bins hold group = max(1, ceil(len(y)/n_out))
// consecutive samples and the output x is each bin's start index. With an
// explicit x, n_out+1 evenly spaced edges between x[0] and x[len-1] are
// located by binary search on the coordinates (time is binned on its
// nanosecond ticks) and the output x is the coordinate at each bin's start.
// Bins that hold no sample are skipped, so the reduce function always sees at
// least one value.
//
// Since fn bears responsibility for the y type, any y dtype is accepted
// unless narrowed with WithYDtypes.
type FuncAggregator struct {
	base
	fn ReduceFunc
}

var _ Aggregator = (*FuncAggregator)(nil)

// NewFuncAggregator creates an aggregator reducing each bin with fn.
func NewFuncAggregator(fn ReduceFunc, opts ...Option) (*FuncAggregator, error) {
	if fn == nil {
		return nil, fmt.Errorf("%w: reduce function is required", errs.ErrInvalidArgument)
	}

	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}

	a := &FuncAggregator{
		base: base{
			cfg:       cfg,
			algorithm: format.AlgorithmFunc,
			yDtypes:   format.AnyDtype,
			xDtypes:   format.CoordinateDtypes,
			orderedX:  true,
		},
		fn: fn,
	}
	if cfg.YDtypes != 0 {
		a.yDtypes = cfg.YDtypes
	}
	if cfg.XDtypes != 0 {
		a.xDtypes = cfg.XDtypes
	}

	return a, nil
}

// Aggregate returns one (x, f(y)) point per non-empty bin. The result carries
// no Indices since its values are computed.
func (a *FuncAggregator) Aggregate(x series.X, y series.Column, nOut int, opts ...CallOption) (*Result, error) {
	if err := a.validate(x, y, nOut); err != nil {
		return nil, err
	}
	call, err := newCallConfig(opts)
	if err != nil {
		return nil, err
	}

	edges := a.edges(x, y.Len(), nOut)
	starts := make([]int, 0, len(edges)-1)
	values := make(series.Float64s, 0, len(edges)-1)
	for k := 0; k+1 < len(edges); k++ {
		t0, t1 := edges[k], edges[k+1]
		if t0 >= t1 {
			continue
		}

		v, err := a.fn(y.Slice(t0, t1), call.params)
		if err != nil {
			return nil, fmt.Errorf("%s: bin [%d, %d): %w", a.algorithm, t0, t1, err)
		}
		starts = append(starts, t0)
		values = append(values, v)
	}

	res := &Result{Y: values, InterleaveGaps: a.cfg.InterleaveGaps}
	if e, ok := x.(series.Explicit); ok {
		res.X = e.Take(starts)
	} else {
		res.X = series.Positions(starts)
	}

	return res, nil
}

// edges returns the bin boundaries for n samples.
func (a *FuncAggregator) edges(x series.X, n, nOut int) []int {
	if n <= nOut {
		// every sample is its own bin
		return identity(n + 1)
	}

	if e, ok := x.(series.Explicit); ok {
		return rangeEdges(e, 0, n, nOut)
	}

	group := max(1, (n+nOut-1)/nOut)

	return strideEdges(0, n, nOut, group)
}
