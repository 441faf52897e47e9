package resampler_test

import (
	"fmt"

	resampler "github.com/ivanovmg/plotly-resampler"
	"github.com/ivanovmg/plotly-resampler/reduce"
	"github.com/ivanovmg/plotly-resampler/series"
)

func ExampleDownsample() {
	y := series.Float64s{0, 0, 0, 0, 0, 10, 0, 0, 0, 0}

	res, _ := resampler.Downsample(series.Index(len(y)), y, 3)
	fmt.Println(res.X.Ticks(), res.Y)
	// Output: [0 5 9] [0 10 0]
}

func ExampleNewFunc() {
	agg, _ := resampler.NewFunc(reduce.OpMax)

	res, _ := agg.Aggregate(series.Index(6), series.Float64s{1, 4, 2, 8, 5, 7}, 3)
	fmt.Println(res.X.Ticks(), res.Y)
	// Output: [0 2 4] [4 8 7]
}
