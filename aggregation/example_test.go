package aggregation_test

import (
	"fmt"

	"github.com/ivanovmg/plotly-resampler/aggregation"
	"github.com/ivanovmg/plotly-resampler/series"
)

func ExampleMinMax() {
	mm, _ := aggregation.NewMinMax()

	y := series.Float64s{5, 1, 9, 2, 8, 3, 7, 0}
	idx, _ := mm.Select(series.Index(len(y)), y, 2)
	fmt.Println(idx)
	// Output: [1 2 4 7]
}

func ExampleLTTB() {
	lttb, _ := aggregation.NewLTTB()

	cat, _ := series.NewCategorical([]string{"a", "b", "c", "a"}, []string{"b", "c", "a"})
	res, _ := lttb.Aggregate(series.Index(cat.Len()), cat, 3)
	fmt.Println(res.Indices, res.X.Ticks())
	// Output: [0 1 3] [0 1 3]
}

func ExampleFuncAggregator() {
	sum := func(w series.Column, _ aggregation.Params) (float64, error) {
		var s float64
		for _, v := range w.(series.Float64s) {
			s += v
		}

		return s, nil
	}
	agg, _ := aggregation.NewFuncAggregator(sum)

	res, _ := agg.Aggregate(series.Index(6), series.Float64s{1, 2, 3, 4, 5, 6}, 3)
	fmt.Println(res.X.Ticks(), res.Y)
	// Output: [0 2 4] [3 7 11]
}
