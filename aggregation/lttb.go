package aggregation

import (
	"math"

	"github.com/ivanovmg/plotly-resampler/format"
	"github.com/ivanovmg/plotly-resampler/series"
)

// LTTB implements Largest-Triangle-Three-Buckets selection.
//
// The first and the last sample are always kept. The interior is split into
// n_out-2 buckets and from each bucket the sample forming the largest
// triangle with the previously selected sample and the centroid of the next
// bucket is kept. Because each pick depends on the previous one, buckets are
// walked in order; only the centroids are computed ahead of time.
//
// y must have a numeric view: floats, integers, booleans or categorical codes.
// Categorical input is ranked by its codes, never by label.
type LTTB struct {
	base
}

var _ Selector = (*LTTB)(nil)

// NewLTTB creates an LTTB selector.
func NewLTTB(opts ...Option) (*LTTB, error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}

	return &LTTB{base: base{
		cfg:        cfg,
		algorithm:  format.AlgorithmLTTB,
		yDtypes:    format.NumericDtypes,
		xDtypes:    format.CoordinateDtypes,
		minimumOut: 3,
	}}, nil
}

// Select returns the LTTB indices, always including 0 and len(y)-1.
func (s *LTTB) Select(x series.X, y series.Column, nOut int, opts ...CallOption) ([]int, error) {
	return s.runSelect(x, y, nOut, opts, func(x series.X, y series.Column, nOut int) []int {
		num, _ := series.AsNumeric(y) // validated numeric
		return lttb(&s.cfg, y.Len(), nOut, xAccessor(x), num.Float)
	})
}

// Aggregate returns the samples at the LTTB indices.
func (s *LTTB) Aggregate(x series.X, y series.Column, nOut int, opts ...CallOption) (*Result, error) {
	idx, err := s.Select(x, y, nOut, opts...)
	if err != nil {
		return nil, err
	}

	return s.gather(x, y, idx), nil
}

// lttbBucket returns the bounds of interior bucket i when the m-2 interior
// points are split into buckets buckets. Integer division keeps the floor exact.
func lttbBucket(i, buckets, m int) (int, int) {
	lo := i*(m-2)/buckets + 1
	hi := min((i+1)*(m-2)/buckets+1, m)

	return lo, hi
}

// lttb selects nOut of m points (3 <= nOut < m) through the xAt/yAt accessors.
func lttb(cfg *Config, m, nOut int, xAt, yAt func(int) float64) []int {
	buckets := nOut - 2

	// centroid k is the mean of the bucket following interior bucket k; the
	// one after the last interior bucket is the final point
	cx := make([]float64, buckets)
	cy := make([]float64, buckets)
	cfg.forEachChunk(m, buckets, func(lo, hi int) {
		for k := lo; k < hi; k++ {
			t0, t1 := lttbBucket(k+1, buckets, m)
			if t0 >= t1 {
				t0, t1 = m-1, m
			}

			var sx, sy float64
			for j := t0; j < t1; j++ {
				sx += xAt(j)
				sy += yAt(j)
			}
			cnt := float64(t1 - t0)
			cx[k], cy[k] = sx/cnt, sy/cnt
		}
	})

	idx := make([]int, nOut)
	a := 0
	for k := range buckets {
		ax, ay := xAt(a), yAt(a)
		t0, t1 := lttbBucket(k, buckets, m)

		best, maxArea := t0, -1.0
		for j := t0; j < t1; j++ {
			area := math.Abs((ax-cx[k])*(yAt(j)-ay) - (ax-xAt(j))*(cy[k]-ay))
			if area > maxArea {
				best, maxArea = j, area
			}
		}

		idx[k+1] = best
		a = best
	}
	idx[nOut-1] = m - 1

	return idx
}
