package aggregation

import (
	"fmt"
	"testing"

	"github.com/ivanovmg/plotly-resampler/series"
)

func BenchmarkSelectors(b *testing.B) {
	y := noisySine(1_000_000, 1)
	x := series.Index(len(y))

	for _, parallelism := range []int{1, 4} {
		sels := allSelectors(b, WithParallelism(parallelism), WithParallelThreshold(1))
		for name, sel := range sels {
			b.Run(fmt.Sprintf("%s/p=%d", name, parallelism), func(b *testing.B) {
				b.ReportAllocs()
				for b.Loop() {
					_, _ = sel.Select(x, y, 1000)
				}
			})
		}
	}
}
