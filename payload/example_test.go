package payload_test

import (
	"fmt"

	"github.com/ivanovmg/plotly-resampler/aggregation"
	"github.com/ivanovmg/plotly-resampler/format"
	"github.com/ivanovmg/plotly-resampler/payload"
	"github.com/ivanovmg/plotly-resampler/series"
)

func ExampleEncoder() {
	mm, _ := aggregation.NewMinMax()
	y := series.Float64s{5, 1, 9, 2, 8, 3, 7, 0}
	res, _ := mm.Aggregate(series.Index(len(y)), y, 2)

	enc, _ := payload.NewEncoder(payload.WithCompression(format.CompressionLZ4))
	data, _ := enc.Encode(res)

	frame, _ := payload.Decode(data)
	fmt.Println(frame.X.Ticks(), frame.Y, frame.Compression)
	// Output: [1 2 4 7] [1 9 8 0] LZ4
}
