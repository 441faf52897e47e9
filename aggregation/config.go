package aggregation

import (
	"fmt"
	"log/slog"
	"runtime"

	"github.com/ivanovmg/plotly-resampler/errs"
	"github.com/ivanovmg/plotly-resampler/format"
	"github.com/ivanovmg/plotly-resampler/internal/options"
)

const (
	// DefaultSizeThreshold is the input size above which MinMaxLTTB prefetches with MinMax.
	DefaultSizeThreshold = 10_000_000

	// DefaultRatioThreshold is the len(y)/n_out ratio above which MinMaxLTTB prefetches.
	DefaultRatioThreshold = 100.0

	// DefaultMinMaxRatio is the number of prefetched points per requested output point.
	DefaultMinMaxRatio = 4

	// DefaultParallelThreshold is the input size from which window scans fan out.
	DefaultParallelThreshold = 1 << 20
)

// Config holds the construction-time settings shared by every algorithm.
// Settings an algorithm does not use are ignored by it.
type Config struct {
	InterleaveGaps    bool
	Parallelism       int
	ParallelThreshold int
	SizeThreshold     int
	RatioThreshold    float64
	MinMaxRatio       int
	YDtypes           format.DtypeSet // FuncAggregator only; zero accepts any dtype
	XDtypes           format.DtypeSet // FuncAggregator only; zero accepts any coordinate dtype
	Logger            *slog.Logger
}

// Option is a functional option for Config.
type Option = options.Option[*Config]

// DefaultConfig returns the settings used when no option is given.
func DefaultConfig() Config {
	return Config{
		InterleaveGaps:    true,
		Parallelism:       runtime.GOMAXPROCS(0),
		ParallelThreshold: DefaultParallelThreshold,
		SizeThreshold:     DefaultSizeThreshold,
		RatioThreshold:    DefaultRatioThreshold,
		MinMaxRatio:       DefaultMinMaxRatio,
		Logger:            slog.New(slog.DiscardHandler),
	}
}

func newConfig(opts []Option) (Config, error) {
	cfg := DefaultConfig()
	if err := options.Apply(&cfg, opts...); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// WithInterleaveGaps records whether a gap-interleaving post-process should
// insert break markers into this algorithm's output. The flag is carried
// through to every Result; the algorithms themselves never insert gaps.
func WithInterleaveGaps(enabled bool) Option {
	return options.NoError(func(cfg *Config) {
		cfg.InterleaveGaps = enabled
	})
}

// WithParallelism bounds the number of goroutines a single call may use.
// A value of 1 keeps every call on the calling goroutine.
func WithParallelism(n int) Option {
	return options.New(func(cfg *Config) error {
		if n < 1 {
			return fmt.Errorf("%w: parallelism must be >= 1, got %d", errs.ErrInvalidArgument, n)
		}
		cfg.Parallelism = n

		return nil
	})
}

// WithParallelThreshold sets the input size from which window scans fan out.
func WithParallelThreshold(n int) Option {
	return options.New(func(cfg *Config) error {
		if n < 1 {
			return fmt.Errorf("%w: parallel threshold must be >= 1, got %d", errs.ErrInvalidArgument, n)
		}
		cfg.ParallelThreshold = n

		return nil
	})
}

// WithSizeThreshold sets the MinMaxLTTB input size above which MinMax prefetching kicks in.
func WithSizeThreshold(n int) Option {
	return options.New(func(cfg *Config) error {
		if n < 0 {
			return fmt.Errorf("%w: size threshold must be >= 0, got %d", errs.ErrInvalidArgument, n)
		}
		cfg.SizeThreshold = n

		return nil
	})
}

// WithRatioThreshold sets the MinMaxLTTB len(y)/n_out ratio above which MinMax prefetching kicks in.
func WithRatioThreshold(r float64) Option {
	return options.New(func(cfg *Config) error {
		if r < 0 {
			return fmt.Errorf("%w: ratio threshold must be >= 0, got %g", errs.ErrInvalidArgument, r)
		}
		cfg.RatioThreshold = r

		return nil
	})
}

// WithMinMaxRatio sets how many points per output point the MinMax prefetch keeps.
func WithMinMaxRatio(r int) Option {
	return options.New(func(cfg *Config) error {
		if r < 2 {
			return fmt.Errorf("%w: minmax ratio must be >= 2, got %d", errs.ErrInvalidArgument, r)
		}
		cfg.MinMaxRatio = r

		return nil
	})
}

// WithYDtypes restricts the y dtypes a FuncAggregator accepts.
func WithYDtypes(dtypes ...format.Dtype) Option {
	return options.NoError(func(cfg *Config) {
		cfg.YDtypes = format.NewDtypeSet(dtypes...)
	})
}

// WithXDtypes restricts the explicit x dtypes a FuncAggregator accepts.
func WithXDtypes(dtypes ...format.Dtype) Option {
	return options.NoError(func(cfg *Config) {
		cfg.XDtypes = format.NewDtypeSet(dtypes...)
	})
}

// WithLogger sets the structured logger used for debug events.
func WithLogger(logger *slog.Logger) Option {
	return options.NoError(func(cfg *Config) {
		if logger != nil {
			cfg.Logger = logger
		}
	})
}

// Params carries keyword arguments through a call to the reduce function of
// a FuncAggregator. Selectors ignore it.
type Params map[string]any

// Float returns the float64 parameter key, or def when it is absent or not a number.
func (p Params) Float(key string, def float64) float64 {
	switch v := p[key].(type) {
	case float64:
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	case int64:
		return float64(v)
	default:
		return def
	}
}

// Int returns the int parameter key, or def when it is absent or not an int.
func (p Params) Int(key string, def int) int {
	if v, ok := p[key].(int); ok {
		return v
	}

	return def
}

// CallOption configures a single Aggregate or Select call.
type CallOption = options.Option[*callConfig]

type callConfig struct {
	params Params
}

// WithParam passes a keyword argument to the reduce function.
func WithParam(key string, value any) CallOption {
	return options.NoError(func(c *callConfig) {
		if c.params == nil {
			c.params = make(Params)
		}
		c.params[key] = value
	})
}

// WithParams passes every entry of params to the reduce function.
func WithParams(params Params) CallOption {
	return options.NoError(func(c *callConfig) {
		if c.params == nil {
			c.params = make(Params, len(params))
		}
		for k, v := range params {
			c.params[k] = v
		}
	})
}

func newCallConfig(opts []CallOption) (callConfig, error) {
	var c callConfig
	if err := options.Apply(&c, opts...); err != nil {
		return callConfig{}, err
	}

	return c, nil
}
