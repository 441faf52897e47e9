package aggregation

import (
	"github.com/ivanovmg/plotly-resampler/series"
)

// argMin returns the first index of the smallest value in y[lo:hi].
func argMin(y series.Column, lo, hi int) int {
	best := lo
	for i := lo + 1; i < hi; i++ {
		if y.Less(i, best) {
			best = i
		}
	}

	return best
}

// argMax returns the first index of the largest value in y[lo:hi].
func argMax(y series.Column, lo, hi int) int {
	best := lo
	for i := lo + 1; i < hi; i++ {
		if y.Less(best, i) {
			best = i
		}
	}

	return best
}

// argMinMax returns argMin and argMax of y[lo:hi] in a single pass.
func argMinMax(y series.Column, lo, hi int) (int, int) {
	minIdx, maxIdx := lo, lo
	for i := lo + 1; i < hi; i++ {
		if y.Less(i, minIdx) {
			minIdx = i
		} else if y.Less(maxIdx, i) {
			maxIdx = i
		}
	}

	return minIdx, maxIdx
}

// countEdges partitions [lo, hi) into bins windows of near-equal count and
// returns the bins+1 boundaries.
func countEdges(lo, hi, bins int) []int {
	n := hi - lo
	edges := make([]int, bins+1)
	for k := range edges {
		edges[k] = lo + k*n/bins
	}

	return edges
}

// strideEdges returns the bins+1 boundaries lo, lo+g, lo+2g, ... clipped to hi.
func strideEdges(lo, hi, bins, g int) []int {
	edges := make([]int, bins+1)
	for k := range edges {
		edges[k] = min(lo+k*g, hi)
	}

	return edges
}

// rangeEdges partitions [lo, hi) into bins windows of equal x range.
//
// The bins+1 edge values are evenly spaced between x[lo] and x[hi-1] and each
// is located with a left binary search; the last boundary is hi so that the
// final sample belongs to the last window. Windows can be empty when the
// sampling is irregular.
func rangeEdges(x series.Explicit, lo, hi, bins int) []int {
	edges := make([]int, bins+1)
	edges[0] = lo
	edges[bins] = hi
	if hi-lo == 0 {
		for k := range edges {
			edges[k] = lo
		}

		return edges
	}

	first := x.Offset(lo)
	span := x.Offset(hi-1) - first
	for k := 1; k < bins; k++ {
		target := first + span*float64(k)/float64(bins)
		edges[k] = x.SearchOffset(edges[k-1], hi, target)
	}

	return edges
}
