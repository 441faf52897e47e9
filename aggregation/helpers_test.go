package aggregation

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ivanovmg/plotly-resampler/series"
)

// noisySine returns n samples of a sine wave with uniform noise.
func noisySine(n int, seed uint64) series.Float64s {
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	y := make(series.Float64s, n)
	for i := range y {
		y[i] = 10*math.Sin(float64(i)/50) + rng.Float64()
	}

	return y
}

func ramp(n int) series.Float64s {
	y := make(series.Float64s, n)
	for i := range y {
		y[i] = float64(i)
	}

	return y
}

func requireStrictlyIncreasing(t testing.TB, idx []int) {
	t.Helper()
	for k := 1; k < len(idx); k++ {
		require.Less(t, idx[k-1], idx[k], "indices must be strictly increasing at %d", k)
	}
}

func requireInRange(t testing.TB, idx []int, n int) {
	t.Helper()
	for _, i := range idx {
		require.GreaterOrEqual(t, i, 0)
		require.Less(t, i, n)
	}
}

func allSelectors(t testing.TB, opts ...Option) map[string]Selector {
	t.Helper()

	everyNth, err := NewEveryNth(opts...)
	require.NoError(t, err)
	minmax, err := NewMinMax(opts...)
	require.NoError(t, err)
	overlap, err := NewMinMaxOverlap(opts...)
	require.NoError(t, err)
	lttb, err := NewLTTB(opts...)
	require.NoError(t, err)
	hybrid, err := NewMinMaxLTTB(opts...)
	require.NoError(t, err)

	return map[string]Selector{
		"EveryNth":      everyNth,
		"MinMax":        minmax,
		"MinMaxOverlap": overlap,
		"LTTB":          lttb,
		"MinMaxLTTB":    hybrid,
	}
}

// sizeBound is the largest output an algorithm may produce for nOut.
func sizeBound(name string, nOut int) int {
	switch name {
	case "MinMax":
		return 2 * nOut
	case "MinMaxOverlap":
		// at most n_out/2 window pairs plus both endpoints
		return nOut + 2
	default:
		return nOut
	}
}
