package aggregation

import (
	"github.com/ivanovmg/plotly-resampler/format"
	"github.com/ivanovmg/plotly-resampler/series"
)

// MinMax selects the minimum and the maximum of each of n_out windows.
//
// Windows hold an equal number of samples when x is positional and span an
// equal x range when x is explicit (empty windows are skipped). Ties resolve
// to the lowest index. The output is strictly increasing and holds at most
// 2*n_out indices. Keeping both extrema per window means a spike is never
// averaged away. y may have any orderable dtype.
type MinMax struct {
	base
}

var _ Selector = (*MinMax)(nil)

// NewMinMax creates a full-window min/max selector.
func NewMinMax(opts ...Option) (*MinMax, error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}

	return &MinMax{base: base{
		cfg:       cfg,
		algorithm: format.AlgorithmMinMax,
		yDtypes:   format.AnyDtype,
		xDtypes:   format.CoordinateDtypes,
		orderedX:  true,
	}}, nil
}

// Select returns the per-window argmin and argmax indices.
func (s *MinMax) Select(x series.X, y series.Column, nOut int, opts ...CallOption) ([]int, error) {
	return s.runSelect(x, y, nOut, opts, func(x series.X, y series.Column, nOut int) []int {
		return s.windows(x, y, 0, y.Len(), nOut)
	})
}

// Aggregate returns the samples at the per-window extrema.
func (s *MinMax) Aggregate(x series.X, y series.Column, nOut int, opts ...CallOption) (*Result, error) {
	idx, err := s.Select(x, y, nOut, opts...)
	if err != nil {
		return nil, err
	}

	return s.gather(x, y, idx), nil
}

// windows runs the min/max scan over y[lo:hi] split into bins windows and
// returns the sorted, de-duplicated extrema indices.
func (s *MinMax) windows(x series.X, y series.Column, lo, hi, bins int) []int {
	var edges []int
	if e, ok := x.(series.Explicit); ok {
		edges = rangeEdges(e, lo, hi, bins)
	} else {
		edges = countEdges(lo, hi, bins)
	}

	// two slots per window, -1 marks nothing to emit
	slots := make([]int, 2*bins)
	s.cfg.forEachChunk(hi-lo, bins, func(wlo, whi int) {
		for k := wlo; k < whi; k++ {
			t0, t1 := edges[k], edges[k+1]
			if t0 >= t1 {
				slots[2*k], slots[2*k+1] = -1, -1
				continue
			}

			a, b := argMinMax(y, t0, t1)
			if a > b {
				a, b = b, a
			}
			if a == b {
				b = -1
			}
			slots[2*k], slots[2*k+1] = a, b
		}
	})

	// windows are disjoint and ordered, so the kept slots are already sorted
	out := slots[:0]
	for _, i := range slots {
		if i >= 0 {
			out = append(out, i)
		}
	}

	return out
}
