package aggregation

import (
	"github.com/ivanovmg/plotly-resampler/format"
	"github.com/ivanovmg/plotly-resampler/series"
)

// EveryNth selects every step-th sample, step = max(1, ceil(len(y)/n_out)).
//
// The indices 0, step, 2*step, ... stay strictly below len(y)-1, so the last
// sample is not guaranteed to be selected. x is ignored and y may have any dtype.
type EveryNth struct {
	base
}

var _ Selector = (*EveryNth)(nil)

// NewEveryNth creates a stride selector.
func NewEveryNth(opts ...Option) (*EveryNth, error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}

	return &EveryNth{base: base{
		cfg:       cfg,
		algorithm: format.AlgorithmEveryNth,
		yDtypes:   format.AnyDtype,
		xDtypes:   format.CoordinateDtypes,
	}}, nil
}

// Select returns the stride indices.
func (s *EveryNth) Select(x series.X, y series.Column, nOut int, opts ...CallOption) ([]int, error) {
	return s.runSelect(x, y, nOut, opts, everyNth)
}

// Aggregate returns the samples at the stride indices.
func (s *EveryNth) Aggregate(x series.X, y series.Column, nOut int, opts ...CallOption) (*Result, error) {
	idx, err := s.Select(x, y, nOut, opts...)
	if err != nil {
		return nil, err
	}

	return s.gather(x, y, idx), nil
}

func everyNth(_ series.X, y series.Column, nOut int) []int {
	n := y.Len()
	step := max(1, (n+nOut-1)/nOut)

	idx := make([]int, 0, nOut)
	for i := 0; i < n-1; i += step {
		idx = append(idx, i)
	}

	return idx
}
