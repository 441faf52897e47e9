package aggregation

import (
	"math"
	"slices"

	"github.com/ivanovmg/plotly-resampler/format"
	"github.com/ivanovmg/plotly-resampler/series"
)

// MinMaxOverlap selects minima and maxima over windows that overlap by 50%.
//
// With block size B = ceil(len(y)/(n_out+1)*2), argmin windows start at
// 0, B, 2B, ... and argmax windows start half a block later, so a peak that
// straddles one window boundary lies inside the other pass. The first and the
// last index are always selected. x is ignored and y may have any dtype.
type MinMaxOverlap struct {
	base
}

var _ Selector = (*MinMaxOverlap)(nil)

// NewMinMaxOverlap creates a 50%-overlap min/max selector.
func NewMinMaxOverlap(opts ...Option) (*MinMaxOverlap, error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}

	return &MinMaxOverlap{base: base{
		cfg:       cfg,
		algorithm: format.AlgorithmMinMaxOverlap,
		yDtypes:   format.AnyDtype,
		xDtypes:   format.CoordinateDtypes,
	}}, nil
}

// Select returns the union of both passes and the two endpoints.
func (s *MinMaxOverlap) Select(x series.X, y series.Column, nOut int, opts ...CallOption) ([]int, error) {
	return s.runSelect(x, y, nOut, opts, s.overlap)
}

// Aggregate returns the samples selected by both passes.
func (s *MinMaxOverlap) Aggregate(x series.X, y series.Column, nOut int, opts ...CallOption) (*Result, error) {
	idx, err := s.Select(x, y, nOut, opts...)
	if err != nil {
		return nil, err
	}

	return s.gather(x, y, idx), nil
}

// OverlapBlockSize returns the window size used for n samples and nOut points.
func OverlapBlockSize(n, nOut int) int {
	return int(math.Ceil(float64(n) / float64(nOut+1) * 2))
}

func (s *MinMaxOverlap) overlap(_ series.X, y series.Column, nOut int) []int {
	n := y.Len()
	block := OverlapBlockSize(n, nOut)
	shift := block / 2

	// number of whole windows such that the shifted pass stays inside y
	windows := 0
	if stop := n - block - shift; stop > 0 {
		windows = (stop + block - 1) / block
	}

	out := make([]int, 2*windows+2)
	s.cfg.forEachChunk(n, windows, func(lo, hi int) {
		for k := lo; k < hi; k++ {
			start := k * block
			out[2*k] = argMin(y, start, start+block)
			out[2*k+1] = argMax(y, start+shift, start+shift+block)
		}
	})
	out[2*windows] = 0
	out[2*windows+1] = n - 1

	slices.Sort(out)

	return slices.Compact(out)
}
