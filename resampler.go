// Package resampler reduces large time series to a bounded number of points
// for interactive plotting.
//
// A reduction takes an x axis (positional or explicit coordinates), a y column
// and a target size n_out and returns at most about n_out representative
// points. Selectors pick a subset of the input indices; a FuncAggregator
// synthesizes one value per bin.
//
// # Algorithms
//
//   - EveryNth: every ceil(n/n_out)-th sample
//   - MinMax: minimum and maximum of each window
//   - MinMaxOverlap: MinMax over 50%-overlapping windows
//   - LTTB: largest-triangle-three-buckets
//   - MinMaxLTTB: LTTB on a MinMax-prefetched candidate set (the default)
//   - FuncAggregator: a reduction function applied per bin
//
// # Basic Usage
//
// Reducing a series with the default algorithm:
//
//	y := series.Float64s(samples)
//	res, err := resampler.Downsample(series.Index(len(y)), y, 1000)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.Len(), res.X.Ticks()[:3])
//
// Picking an algorithm by name and shipping the result:
//
//	agg, _ := resampler.NewByName("minmax", aggregation.WithParallelism(4))
//	res, _ := agg.Aggregate(x, y, 2000)
//	enc, _ := payload.NewEncoder(payload.WithCompression(format.CompressionZstd))
//	frame, _ := enc.Encode(res)
//
// # Package Structure
//
// This package wraps the aggregation and reduce packages for the common
// cases. Use aggregation directly for fine-grained control, viewport for
// zoom-driven reductions and config for file and environment configuration.
package resampler

import (
	"fmt"

	"github.com/ivanovmg/plotly-resampler/aggregation"
	"github.com/ivanovmg/plotly-resampler/errs"
	"github.com/ivanovmg/plotly-resampler/format"
	"github.com/ivanovmg/plotly-resampler/internal/hash"
	"github.com/ivanovmg/plotly-resampler/reduce"
	"github.com/ivanovmg/plotly-resampler/series"
)

// DefaultAlgorithm is the algorithm used by Downsample and Select.
const DefaultAlgorithm = format.AlgorithmMinMaxLTTB

// New creates the aggregator implementing alg.
//
// Parameters:
//   - alg: Any selector algorithm. AlgorithmFunc needs a reduction and is
//     built with NewFunc instead.
//   - opts: Construction options (see aggregation.Option)
//
// Returns:
//   - aggregation.Aggregator: The created aggregator. Selector algorithms
//     also implement aggregation.Selector.
//   - error: ErrUnknownAlgorithm for an unknown alg, ErrInvalidArgument for
//     AlgorithmFunc or an invalid option.
//
// Example:
//
//	agg, err := resampler.New(format.AlgorithmLTTB, aggregation.WithInterleaveGaps(false))
func New(alg format.Algorithm, opts ...aggregation.Option) (aggregation.Aggregator, error) {
	switch alg {
	case format.AlgorithmEveryNth:
		return aggregation.NewEveryNth(opts...)
	case format.AlgorithmMinMax:
		return aggregation.NewMinMax(opts...)
	case format.AlgorithmMinMaxOverlap:
		return aggregation.NewMinMaxOverlap(opts...)
	case format.AlgorithmLTTB:
		return aggregation.NewLTTB(opts...)
	case format.AlgorithmMinMaxLTTB:
		return aggregation.NewMinMaxLTTB(opts...)
	case format.AlgorithmFunc:
		return nil, fmt.Errorf("%w: %s needs a reduction, use NewFunc", errs.ErrInvalidArgument, alg)
	default:
		return nil, fmt.Errorf("%w: %d", errs.ErrUnknownAlgorithm, alg)
	}
}

// NewByName creates an aggregator from an algorithm name such as "lttb" or
// "minmax_overlap". Names are matched case-insensitively.
func NewByName(name string, opts ...aggregation.Option) (aggregation.Aggregator, error) {
	alg := format.ParseAlgorithm(name)
	if alg == format.AlgorithmUnknown {
		return nil, fmt.Errorf("%w: %q", errs.ErrUnknownAlgorithm, name)
	}

	return New(alg, opts...)
}

// NewSelector is New restricted to the index-selecting algorithms.
func NewSelector(alg format.Algorithm, opts ...aggregation.Option) (aggregation.Selector, error) {
	agg, err := New(alg, opts...)
	if err != nil {
		return nil, err
	}

	sel, ok := agg.(aggregation.Selector)
	if !ok {
		return nil, fmt.Errorf("%w: %s does not select indices", errs.ErrInvalidArgument, alg)
	}

	return sel, nil
}

// NewFunc creates a FuncAggregator around the stock reduction registered as
// reduceName (see reduce.Funcs).
//
// Example:
//
//	agg, err := resampler.NewFunc(reduce.OpMedian)
func NewFunc(reduceName string, opts ...aggregation.Option) (*aggregation.FuncAggregator, error) {
	fn, err := reduce.Lookup(reduceName)
	if err != nil {
		return nil, err
	}

	return aggregation.NewFuncAggregator(fn, opts...)
}

// Downsample reduces (x, y) to about nOut points with the default algorithm.
func Downsample(x series.X, y series.Column, nOut int, opts ...aggregation.Option) (*aggregation.Result, error) {
	agg, err := New(DefaultAlgorithm, opts...)
	if err != nil {
		return nil, err
	}

	return agg.Aggregate(x, y, nOut)
}

// Select returns the indices the default algorithm keeps.
func Select(x series.X, y series.Column, nOut int, opts ...aggregation.Option) ([]int, error) {
	sel, err := NewSelector(DefaultAlgorithm, opts...)
	if err != nil {
		return nil, err
	}

	return sel.Select(x, y, nOut)
}

// TraceID returns the 64-bit identifier of a trace name, used to key
// per-trace state such as cached reductions.
func TraceID(name string) uint64 {
	return hash.ID(name)
}
