package aggregation

import (
	"fmt"

	"github.com/ivanovmg/plotly-resampler/errs"
	"github.com/ivanovmg/plotly-resampler/format"
	"github.com/ivanovmg/plotly-resampler/series"
)

// Aggregator reduces a series to at most n_out representative points.
//
// The produced values may be synthesized: a FuncAggregator computes one
// value per bin. Implementations are safe for concurrent use and never
// modify their inputs.
type Aggregator interface {
	// Name identifies the algorithm.
	Name() format.Algorithm

	// InterleaveGaps reports whether a gap-interleaving post-process should run
	// on this aggregator's output.
	InterleaveGaps() bool

	// Aggregate reduces (x, y) to at most nOut points (2*nOut for MinMax).
	Aggregate(x series.X, y series.Column, nOut int, opts ...CallOption) (*Result, error)
}

// Selector is an Aggregator whose output is a subset of the input samples.
type Selector interface {
	Aggregator

	// Select returns strictly increasing indices into y.
	Select(x series.X, y series.Column, nOut int, opts ...CallOption) ([]int, error)
}

// Result is the output of an Aggregate call.
type Result struct {
	// X holds the output coordinates. Positional input yields integer
	// positions (selected indices, or bin start indices).
	X series.Explicit

	// Y holds the output values: y[Indices] for selectors, the reduced
	// value per bin for a FuncAggregator.
	Y series.Column

	// Indices are the selected input indices; nil for value-synthesizing aggregators.
	Indices []int

	// InterleaveGaps propagates the aggregator's gap-interleaving flag.
	InterleaveGaps bool
}

// Len returns the number of output points.
func (r *Result) Len() int {
	return r.X.Len()
}

// base carries what every algorithm shares: its name, configuration and
// declared dtype sets.
type base struct {
	cfg        Config
	algorithm  format.Algorithm
	yDtypes    format.DtypeSet
	xDtypes    format.DtypeSet
	orderedX   bool // bins on x values, so x must be non-decreasing
	minimumOut int
}

func (b *base) Name() format.Algorithm { return b.algorithm }
func (b *base) InterleaveGaps() bool { return b.cfg.InterleaveGaps }

// Config returns the construction-time configuration.
func (b *base) Config() Config { return b.cfg }

// validate checks a call against the algorithm's input contract. It runs
// before any computation so that no partial work happens on bad input.
func (b *base) validate(x series.X, y series.Column, nOut int) error {
	if nOut < 1 {
		return fmt.Errorf("%w: %s: n_out must be positive, got %d", errs.ErrInvalidArgument, b.algorithm, nOut)
	}
	if y == nil {
		return fmt.Errorf("%w: %s: y is required", errs.ErrInvalidArgument, b.algorithm)
	}
	if !b.yDtypes.Contains(y.Dtype()) {
		return &errs.DtypeError{Algorithm: b.algorithm.String(), Axis: "y", Dtype: y.Dtype().String()}
	}

	switch v := x.(type) {
	case series.Positional:
		if v.Len() != y.Len() {
			return fmt.Errorf("%w: %s: len(x)=%d, len(y)=%d", errs.ErrLengthMismatch, b.algorithm, v.Len(), y.Len())
		}
	case series.Explicit:
		if v.Len() != y.Len() {
			return fmt.Errorf("%w: %s: len(x)=%d, len(y)=%d", errs.ErrLengthMismatch, b.algorithm, v.Len(), y.Len())
		}
		if v.Len() > 0 && !b.xDtypes.Contains(v.Dtype()) {
			return &errs.DtypeError{Algorithm: b.algorithm.String(), Axis: "x", Dtype: v.Dtype().String()}
		}
		if b.orderedX && !v.Monotonic() {
			return fmt.Errorf("%w: %s", errs.ErrNonMonotonicX, b.algorithm)
		}
	default:
		return fmt.Errorf("%w: %s: %T", errs.ErrUnknownXKind, b.algorithm, x)
	}

	if b.minimumOut > 1 && nOut < b.minimumOut && y.Len() > nOut {
		return fmt.Errorf("%w: %s requires n_out >= %d, got %d", errs.ErrInvalidArgument, b.algorithm, b.minimumOut, nOut)
	}

	return nil
}

// selectFunc computes indices for input already validated with len(y) > nOut.
type selectFunc func(x series.X, y series.Column, nOut int) []int

// runSelect validates the call, applies the no-op boundary and delegates to fn.
func (b *base) runSelect(x series.X, y series.Column, nOut int, opts []CallOption, fn selectFunc) ([]int, error) {
	if err := b.validate(x, y, nOut); err != nil {
		return nil, err
	}
	if _, err := newCallConfig(opts); err != nil {
		return nil, err
	}

	n := y.Len()
	if n <= nOut {
		return identity(n), nil
	}

	return fn(x, y, nOut), nil
}

// gather builds the Result of a selection.
func (b *base) gather(x series.X, y series.Column, idx []int) *Result {
	res := &Result{
		Y:              y.Take(idx),
		Indices:        idx,
		InterleaveGaps: b.cfg.InterleaveGaps,
	}

	if e, ok := x.(series.Explicit); ok {
		res.X = e.Take(idx)
	} else {
		res.X = series.Positions(idx)
	}

	return res
}

// identity returns 0..n-1.
func identity(n int) []int {
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}

	return idx
}

// xAccessor returns the linear x scale used for distance computations:
// positions for a positional axis, offsets from the first coordinate for an
// explicit one.
func xAccessor(x series.X) func(int) float64 {
	if e, ok := x.(series.Explicit); ok {
		return e.Offset
	}

	return func(i int) float64 { return float64(i) }
}
