// Package reduce provides stock reduction functions for
// aggregation.FuncAggregator.
//
// Every function has the aggregation.ReduceFunc signature and is registered
// by name in Funcs, which is how configuration files refer to them:
//
//	agg, err := aggregation.NewFuncAggregator(reduce.Funcs[reduce.OpMedian])
//
// Numeric reductions need a window with a numeric view (see series.AsNumeric)
// and fail with errs.ErrUnsupportedDtype otherwise. Count accepts any dtype.
// Every function except Count fails with errs.ErrEmptyWindow on an empty window.
package reduce

import (
	"fmt"
	"math"
	"slices"

	"github.com/shopspring/decimal"

	"github.com/ivanovmg/plotly-resampler/aggregation"
	"github.com/ivanovmg/plotly-resampler/errs"
	"github.com/ivanovmg/plotly-resampler/series"
)

// Registered reduction names.
const (
	OpMean      = "mean"
	OpSum       = "sum"
	OpMin       = "min"
	OpMax       = "max"
	OpMedian    = "median"
	OpFirst     = "first"
	OpLast      = "last"
	OpCount     = "count"
	OpStd       = "std"
	OpExactMean = "exact_mean"
	OpExactSum  = "exact_sum"
)

// Funcs is the registry of stock reductions by name.
var Funcs = map[string]aggregation.ReduceFunc{
	OpMean:      Mean,
	OpSum:       Sum,
	OpMin:       Min,
	OpMax:       Max,
	OpMedian:    Median,
	OpFirst:     First,
	OpLast:      Last,
	OpCount:     Count,
	OpStd:       Std,
	OpExactMean: ExactMean,
	OpExactSum:  ExactSum,
}

// Lookup returns the reduction registered as name.
func Lookup(name string) (aggregation.ReduceFunc, error) {
	fn, ok := Funcs[name]
	if !ok {
		return nil, fmt.Errorf("%w: unknown reduction %q", errs.ErrInvalidArgument, name)
	}

	return fn, nil
}

func numeric(w series.Column) (series.Numeric, error) {
	num, ok := series.AsNumeric(w)
	if !ok {
		return nil, fmt.Errorf("%w: reduction needs a numeric window, got %s", errs.ErrUnsupportedDtype, w.Dtype())
	}
	if num.Len() == 0 {
		return nil, errs.ErrEmptyWindow
	}

	return num, nil
}

// Mean returns the arithmetic mean of the window.
func Mean(w series.Column, p aggregation.Params) (float64, error) {
	sum, err := Sum(w, p)
	if err != nil {
		return 0, err
	}

	return sum / float64(w.Len()), nil
}

// Sum returns the sum of the window.
func Sum(w series.Column, _ aggregation.Params) (float64, error) {
	num, err := numeric(w)
	if err != nil {
		return 0, err
	}

	var sum float64
	for i := range num.Len() {
		sum += num.Float(i)
	}

	return sum, nil
}

// Min returns the smallest value of the window. NaN values are ignored unless
// the window holds nothing else.
func Min(w series.Column, _ aggregation.Params) (float64, error) {
	num, err := numeric(w)
	if err != nil {
		return 0, err
	}

	v := math.NaN()
	for i := range num.Len() {
		if f := num.Float(i); math.IsNaN(v) || f < v {
			v = f
		}
	}

	return v, nil
}

// Max returns the largest value of the window. NaN values are ignored unless
// the window holds nothing else.
func Max(w series.Column, _ aggregation.Params) (float64, error) {
	num, err := numeric(w)
	if err != nil {
		return 0, err
	}

	v := math.NaN()
	for i := range num.Len() {
		if f := num.Float(i); math.IsNaN(v) || f > v {
			v = f
		}
	}

	return v, nil
}

// Median returns the median of the window; an even count averages the two
// middle values.
func Median(w series.Column, _ aggregation.Params) (float64, error) {
	num, err := numeric(w)
	if err != nil {
		return 0, err
	}

	vals := make([]float64, num.Len())
	for i := range vals {
		vals[i] = num.Float(i)
	}
	slices.Sort(vals)

	mid := len(vals) / 2
	if len(vals)%2 == 1 {
		return vals[mid], nil
	}

	return (vals[mid-1] + vals[mid]) / 2, nil
}

// First returns the first value of the window.
func First(w series.Column, _ aggregation.Params) (float64, error) {
	num, err := numeric(w)
	if err != nil {
		return 0, err
	}

	return num.Float(0), nil
}

// Last returns the last value of the window.
func Last(w series.Column, _ aggregation.Params) (float64, error) {
	num, err := numeric(w)
	if err != nil {
		return 0, err
	}

	return num.Float(num.Len() - 1), nil
}

// Count returns the number of samples in the window, whatever their dtype.
func Count(w series.Column, _ aggregation.Params) (float64, error) {
	return float64(w.Len()), nil
}

// Std returns the standard deviation of the window. The "ddof" parameter sets
// the delta degrees of freedom (default 0, the population deviation); a window
// no larger than ddof yields NaN.
func Std(w series.Column, p aggregation.Params) (float64, error) {
	num, err := numeric(w)
	if err != nil {
		return 0, err
	}

	n := num.Len()
	ddof := p.Int("ddof", 0)
	if n <= ddof {
		return math.NaN(), nil
	}

	// Welford's online update
	var mean, m2 float64
	for i := range n {
		f := num.Float(i)
		delta := f - mean
		mean += delta / float64(i+1)
		m2 += delta * (f - mean)
	}

	return math.Sqrt(m2 / float64(n-ddof)), nil
}

// ExactSum returns the sum of the window accumulated in decimal arithmetic,
// which keeps long windows of large and small values free of rounding drift.
func ExactSum(w series.Column, _ aggregation.Params) (float64, error) {
	total, err := decimalSum(w)
	if err != nil {
		return 0, err
	}

	return total.InexactFloat64(), nil
}

// ExactMean returns the mean of the window accumulated in decimal arithmetic.
// The "places" parameter sets the division precision (default 16 digits).
func ExactMean(w series.Column, p aggregation.Params) (float64, error) {
	total, err := decimalSum(w)
	if err != nil {
		return 0, err
	}

	places := int32(p.Int("places", 16))
	mean := total.DivRound(decimal.NewFromInt(int64(w.Len())), places)

	return mean.InexactFloat64(), nil
}

func decimalSum(w series.Column) (decimal.Decimal, error) {
	num, err := numeric(w)
	if err != nil {
		return decimal.Zero, err
	}

	total := decimal.Zero
	for i := range num.Len() {
		f := num.Float(i)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return decimal.Zero, fmt.Errorf("%w: exact reduction of non-finite value %v at %d", errs.ErrInvalidArgument, f, i)
		}
		total = total.Add(decimal.NewFromFloat(f))
	}

	return total, nil
}
