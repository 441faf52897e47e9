package aggregation

import (
	"github.com/ivanovmg/plotly-resampler/format"
	"github.com/ivanovmg/plotly-resampler/series"
)

// MinMaxLTTB is LTTB with a MinMax prefetch for very large inputs.
//
// When len(y) > SizeThreshold and len(y)/n_out > RatioThreshold, the interior
// of the series is first reduced by MinMax to about n_out*MinMaxRatio
// candidates (plus both endpoints) and LTTB then picks the final n_out among
// them. Local extrema dominate the triangle areas LTTB maximises, so the
// prefetch barely changes the selection while cutting the costly triangle
// search. Below the thresholds it behaves exactly like LTTB.
type MinMaxLTTB struct {
	base
	minmax *MinMax
	lttb   *LTTB
}

var _ Selector = (*MinMaxLTTB)(nil)

// NewMinMaxLTTB creates the hybrid selector. The options are shared by the
// inner MinMax and LTTB selectors.
func NewMinMaxLTTB(opts ...Option) (*MinMaxLTTB, error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}

	mm, err := NewMinMax(opts...)
	if err != nil {
		return nil, err
	}
	lt, err := NewLTTB(opts...)
	if err != nil {
		return nil, err
	}

	return &MinMaxLTTB{
		base: base{
			cfg:        cfg,
			algorithm:  format.AlgorithmMinMaxLTTB,
			yDtypes:    format.NumericDtypes,
			xDtypes:    format.CoordinateDtypes,
			orderedX:   true,
			minimumOut: 3,
		},
		minmax: mm,
		lttb:   lt,
	}, nil
}

// Prefetches reports whether a call with n samples and nOut points runs the
// MinMax prefetch.
func (s *MinMaxLTTB) Prefetches(n, nOut int) bool {
	return n > s.cfg.SizeThreshold && float64(n)/float64(nOut) > s.cfg.RatioThreshold
}

// Select returns the hybrid selection, always including 0 and len(y)-1.
func (s *MinMaxLTTB) Select(x series.X, y series.Column, nOut int, opts ...CallOption) ([]int, error) {
	return s.runSelect(x, y, nOut, opts, s.selectIndices)
}

// Aggregate returns the samples at the hybrid selection.
func (s *MinMaxLTTB) Aggregate(x series.X, y series.Column, nOut int, opts ...CallOption) (*Result, error) {
	idx, err := s.Select(x, y, nOut, opts...)
	if err != nil {
		return nil, err
	}

	return s.gather(x, y, idx), nil
}

func (s *MinMaxLTTB) selectIndices(x series.X, y series.Column, nOut int) []int {
	n := y.Len()
	num, _ := series.AsNumeric(y)
	xAt := xAccessor(x)

	if !s.Prefetches(n, nOut) {
		return lttb(&s.lttb.cfg, n, nOut, xAt, num.Float)
	}

	bins := max(1, nOut*s.cfg.MinMaxRatio/2)
	interior := s.minmax.windows(x, y, 1, n-1, bins)

	cand := make([]int, 0, len(interior)+2)
	cand = append(cand, 0)
	cand = append(cand, interior...)
	cand = append(cand, n-1)

	s.cfg.Logger.Debug("minmax prefetch",
		"samples", n, "n_out", nOut, "bins", bins, "candidates", len(cand))

	if len(cand) <= nOut {
		return cand
	}

	picked := lttb(&s.lttb.cfg, len(cand), nOut,
		func(k int) float64 { return xAt(cand[k]) },
		func(k int) float64 { return num.Float(cand[k]) },
	)
	for k, c := range picked {
		picked[k] = cand[c]
	}

	return picked
}
