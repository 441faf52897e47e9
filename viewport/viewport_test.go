package viewport

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/ivanovmg/plotly-resampler/aggregation"
	"github.com/ivanovmg/plotly-resampler/errs"
	"github.com/ivanovmg/plotly-resampler/reduce"
	"github.com/ivanovmg/plotly-resampler/series"
)

func ptr(v float64) *float64 { return &v }

func ramp(n int) series.Float64s {
	y := make(series.Float64s, n)
	for i := range y {
		y[i] = float64(i % 17)
	}

	return y
}

func TestBounds_Explicit(t *testing.T) {
	x := series.Coords([]float64{1, 2, 2, 3, 5, 8, 8, 13})

	tests := []struct {
		name       string
		start, end *float64
		lo, hi     int
	}{
		{"open", nil, nil, 0, 8},
		{"inclusive both sides", ptr(2), ptr(8), 1, 7},
		{"between samples", ptr(2.5), ptr(7), 3, 5},
		{"open start", nil, ptr(3), 0, 4},
		{"open end", ptr(5), nil, 4, 8},
		{"before first", ptr(-10), ptr(0), 0, 0},
		{"after last", ptr(20), ptr(30), 8, 8},
		{"inverted", ptr(8), ptr(2), 5, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lo, hi := Bounds(x, tt.start, tt.end)
			require.Equal(t, tt.lo, lo)
			require.Equal(t, tt.hi, hi)
		})
	}
}

func TestBounds_Positional(t *testing.T) {
	x := series.Index(10)

	lo, hi := Bounds(x, ptr(2.5), ptr(6.5))
	require.Equal(t, 3, lo)
	require.Equal(t, 7, hi)

	lo, hi = Bounds(x, ptr(-4), ptr(40))
	require.Equal(t, 0, lo)
	require.Equal(t, 10, hi)

	lo, hi = Bounds(series.Index(0), ptr(1), ptr(2))
	require.Equal(t, 0, lo)
	require.Equal(t, 0, hi)
}

func TestBounds_Time(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	times := make([]time.Time, 10)
	for i := range times {
		times[i] = start.Add(time.Duration(i) * time.Second)
	}

	from := float64(start.Add(2 * time.Second).UnixNano())
	to := float64(start.Add(4 * time.Second).UnixNano())
	lo, hi := Bounds(series.TimeCoords(times), &from, &to)
	require.Equal(t, 2, lo)
	require.Equal(t, 5, hi)
}

func TestTrace_RawWhenWithinBudget(t *testing.T) {
	mm, err := aggregation.NewMinMax()
	require.NoError(t, err)

	tr := &Trace{X: series.Index(100), Y: ramp(100), MaxSamples: 50, Downsampler: mm}
	v, err := tr.Reduce(20, 60)
	require.NoError(t, err)
	require.Equal(t, 40, v.Len())
	require.False(t, v.InterleaveGaps)
	require.Equal(t, int64(20), v.X.Ticks()[0])
	require.Equal(t, 0, v.Indices[0])
	require.Equal(t, 39, v.Indices[39])
	require.Equal(t, ramp(100)[20:60], v.Y)
}

func TestTrace_SelectorPositional(t *testing.T) {
	everyNth, err := aggregation.NewEveryNth()
	require.NoError(t, err)

	tr := &Trace{X: series.Index(1000), Y: ramp(1000), MaxSamples: 10, Downsampler: everyNth}
	v, err := tr.Reduce(100, 200)
	require.NoError(t, err)
	require.Equal(t, []int{0, 10, 20, 30, 40, 50, 60, 70, 80, 90}, v.Indices)
	require.Equal(t, []int64{100, 110, 120, 130, 140, 150, 160, 170, 180, 190}, v.X.Ticks())
	require.False(t, v.InterleaveGaps, "positional axes are equally spaced")
}

func TestTrace_SelectorExplicitKeepsGapFlag(t *testing.T) {
	lttb, err := aggregation.NewLTTB()
	require.NoError(t, err)

	xs := make([]float64, 500)
	for i := range xs {
		xs[i] = float64(i) * 0.5
	}

	tr := &Trace{X: series.Coords(xs), Y: ramp(500), MaxSamples: 20, Downsampler: lttb}
	v, err := tr.Reduce(0, 500)
	require.NoError(t, err)
	require.True(t, v.InterleaveGaps)
	require.Equal(t, 20, v.Len())
	for k, i := range v.Indices {
		require.Equal(t, xs[i], v.X.Floats()[k])
	}
}

func TestTrace_CategoricalSelectsOnCodes(t *testing.T) {
	lttb, err := aggregation.NewLTTB()
	require.NoError(t, err)

	labels := make([]string, 60)
	for i := range labels {
		labels[i] = []string{"lo", "mid", "hi"}[i%3]
	}
	cat, err := series.NewCategorical(labels, []string{"lo", "mid", "hi"})
	require.NoError(t, err)

	tr := &Trace{X: series.Index(60), Y: cat, MaxSamples: 10, Downsampler: lttb}
	v, err := tr.Reduce(0, 60)
	require.NoError(t, err)

	got, ok := v.Y.(*series.Categorical)
	require.True(t, ok, "the view keeps the labels")
	for k, i := range v.Indices {
		require.Equal(t, labels[i], got.Label(k))
	}
}

func TestTrace_Aggregator(t *testing.T) {
	agg, err := aggregation.NewFuncAggregator(reduce.Mean)
	require.NoError(t, err)

	y := make(series.Float64s, 200)
	for i := range y {
		y[i] = float64(i)
	}

	tr := &Trace{X: series.Index(200), Y: y, MaxSamples: 5, Downsampler: agg}
	v, err := tr.Reduce(100, 150)
	require.NoError(t, err)
	require.Equal(t, []int64{100, 110, 120, 130, 140}, v.X.Ticks())
	require.Equal(t, series.Float64s{104.5, 114.5, 124.5, 134.5, 144.5}, v.Y)
	require.Equal(t, []int{0, 1, 2, 3, 4}, v.Indices)
}

func TestTrace_Params(t *testing.T) {
	agg, err := aggregation.NewFuncAggregator(reduce.Std)
	require.NoError(t, err)

	tr := &Trace{
		X:           series.Index(4),
		Y:           series.Float64s{1, 3, 5, 7},
		MaxSamples:  2,
		Downsampler: agg,
		Params:      aggregation.Params{"ddof": 1},
	}
	v, err := tr.Reduce(0, 4)
	require.NoError(t, err)

	std := v.Y.(series.Float64s)
	require.InDelta(t, 1.4142135623730951, std[0], 1e-12)
}

func TestTrace_ReduceRange(t *testing.T) {
	mm, err := aggregation.NewMinMax()
	require.NoError(t, err)

	xs := []float64{0, 1, 2, 3, 4, 5, 6, 7}
	tr := &Trace{X: series.Coords(xs), Y: series.Float64s{5, 1, 9, 2, 8, 3, 7, 0}, MaxSamples: 2, Downsampler: mm}

	v, err := tr.ReduceRange(ptr(2), ptr(7))
	require.NoError(t, err)
	require.Equal(t, []float64{2, 3, 6, 7}, v.X.Floats())
}

func TestTrace_Errors(t *testing.T) {
	mm, err := aggregation.NewMinMax()
	require.NoError(t, err)

	tr := &Trace{X: series.Index(10), Y: ramp(10), MaxSamples: 4, Downsampler: mm}

	_, err = tr.Reduce(5, 2)
	require.ErrorIs(t, err, errs.ErrInvalidArgument)

	_, err = tr.Reduce(0, 11)
	require.ErrorIs(t, err, errs.ErrInvalidArgument)

	tr.MaxSamples = 0
	_, err = tr.Reduce(0, 10)
	require.ErrorIs(t, err, errs.ErrInvalidArgument)

	tr.MaxSamples = 4
	tr.Y = ramp(9)
	_, err = tr.Reduce(0, 9)
	require.ErrorIs(t, err, errs.ErrLengthMismatch)

	tr.Y = ramp(10)
	tr.Downsampler = nil
	_, err = tr.Reduce(0, 10)
	require.ErrorIs(t, err, errs.ErrInvalidArgument)
}
