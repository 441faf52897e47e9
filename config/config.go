// Package config loads engine settings from a YAML file and the environment.
//
// Values are layered: built-in defaults, then the file, then variables with
// the RESAMPLER_ prefix. A double underscore separates nested keys, so
// RESAMPLER_MINMAX_LTTB__SIZE_THRESHOLD overrides minmax_lttb.size_threshold.
//
// Example file:
//
//	algorithm: minmax_lttb
//	n_out: 2000
//	parallel:
//	  workers: 4
//	payload:
//	  compression: zstd
package config

import (
	"fmt"
	"log/slog"
	"runtime"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	resampler "github.com/ivanovmg/plotly-resampler"
	"github.com/ivanovmg/plotly-resampler/aggregation"
	"github.com/ivanovmg/plotly-resampler/errs"
	"github.com/ivanovmg/plotly-resampler/format"
	"github.com/ivanovmg/plotly-resampler/payload"
	"github.com/ivanovmg/plotly-resampler/reduce"
	"github.com/ivanovmg/plotly-resampler/series"
	"github.com/ivanovmg/plotly-resampler/viewport"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "RESAMPLER_"

// Config is the top-level engine configuration.
type Config struct {
	Algorithm      string           `koanf:"algorithm"`
	NOut           int              `koanf:"n_out"`
	InterleaveGaps bool             `koanf:"interleave_gaps"`
	Reduce         string           `koanf:"reduce"` // reduction for the func algorithm
	Parallel       ParallelConfig   `koanf:"parallel"`
	MinMaxLTTB     MinMaxLTTBConfig `koanf:"minmax_lttb"`
	Payload        PayloadConfig    `koanf:"payload"`
}

// ParallelConfig bounds the goroutines of a single reduction.
type ParallelConfig struct {
	Workers   int `koanf:"workers"`
	Threshold int `koanf:"threshold"`
}

// MinMaxLTTBConfig holds the MinMax prefetch thresholds.
type MinMaxLTTBConfig struct {
	SizeThreshold  int     `koanf:"size_threshold"`
	RatioThreshold float64 `koanf:"ratio_threshold"`
	MinMaxRatio    int     `koanf:"minmax_ratio"`
}

// PayloadConfig selects how reduced series are framed.
type PayloadConfig struct {
	Compression string `koanf:"compression"` // none | zstd | s2 | lz4
	BigEndian   bool   `koanf:"big_endian"`
}

func defaults() map[string]any {
	return map[string]any{
		"algorithm":                   "minmax_lttb",
		"n_out":                       1000,
		"interleave_gaps":             true,
		"reduce":                      reduce.OpMean,
		"parallel.workers":            runtime.GOMAXPROCS(0),
		"parallel.threshold":          aggregation.DefaultParallelThreshold,
		"minmax_lttb.size_threshold":  aggregation.DefaultSizeThreshold,
		"minmax_lttb.ratio_threshold": aggregation.DefaultRatioThreshold,
		"minmax_lttb.minmax_ratio":    aggregation.DefaultMinMaxRatio,
		"payload.compression":         "none",
		"payload.big_endian":          false,
	}
}

// Load reads configPath (skipped when empty), applies environment overrides
// and validates the result. Load("") yields the defaults.
func Load(configPath string) (*Config, error) {
	k := koanf.New(".")

	for key, value := range defaults() {
		if err := k.Set(key, value); err != nil {
			return nil, fmt.Errorf("failed to set default %q: %w", key, err)
		}
	}

	if configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file: %w", err)
		}
	}

	// RESAMPLER_PARALLEL__WORKERS=8 overrides parallel.workers
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "__", ".")
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	alg := format.ParseAlgorithm(c.Algorithm)
	if alg == format.AlgorithmUnknown {
		return fmt.Errorf("%w: algorithm %q", errs.ErrUnknownAlgorithm, c.Algorithm)
	}
	if c.NOut <= 0 {
		return fmt.Errorf("%w: n_out must be > 0, got %d", errs.ErrInvalidArgument, c.NOut)
	}
	if alg == format.AlgorithmLTTB && c.NOut < 3 {
		return fmt.Errorf("%w: n_out must be >= 3 for %s, got %d", errs.ErrInvalidArgument, alg, c.NOut)
	}
	if alg == format.AlgorithmFunc {
		if _, err := reduce.Lookup(c.Reduce); err != nil {
			return err
		}
	}
	if c.Parallel.Workers < 1 {
		return fmt.Errorf("%w: parallel.workers must be >= 1, got %d", errs.ErrInvalidArgument, c.Parallel.Workers)
	}
	if c.Parallel.Threshold < 1 {
		return fmt.Errorf("%w: parallel.threshold must be >= 1, got %d", errs.ErrInvalidArgument, c.Parallel.Threshold)
	}
	if c.MinMaxLTTB.SizeThreshold < 0 {
		return fmt.Errorf("%w: minmax_lttb.size_threshold must be >= 0", errs.ErrInvalidArgument)
	}
	if c.MinMaxLTTB.RatioThreshold < 0 {
		return fmt.Errorf("%w: minmax_lttb.ratio_threshold must be >= 0", errs.ErrInvalidArgument)
	}
	if c.MinMaxLTTB.MinMaxRatio < 2 {
		return fmt.Errorf("%w: minmax_lttb.minmax_ratio must be >= 2", errs.ErrInvalidArgument)
	}
	if format.ParseCompression(c.Payload.Compression) == 0 {
		return fmt.Errorf("%w: unsupported payload.compression %q", errs.ErrInvalidArgument, c.Payload.Compression)
	}

	return nil
}

// Options converts the settings into aggregation options.
func (c *Config) Options(logger *slog.Logger) []aggregation.Option {
	opts := []aggregation.Option{
		aggregation.WithInterleaveGaps(c.InterleaveGaps),
		aggregation.WithParallelism(c.Parallel.Workers),
		aggregation.WithParallelThreshold(c.Parallel.Threshold),
		aggregation.WithSizeThreshold(c.MinMaxLTTB.SizeThreshold),
		aggregation.WithRatioThreshold(c.MinMaxLTTB.RatioThreshold),
		aggregation.WithMinMaxRatio(c.MinMaxLTTB.MinMaxRatio),
	}
	if logger != nil {
		opts = append(opts, aggregation.WithLogger(logger))
	}

	return opts
}

// Build constructs the configured aggregator. A nil logger discards.
func (c *Config) Build(logger *slog.Logger) (aggregation.Aggregator, error) {
	alg := format.ParseAlgorithm(c.Algorithm)
	if alg == format.AlgorithmFunc {
		return resampler.NewFunc(c.Reduce, c.Options(logger)...)
	}

	return resampler.New(alg, c.Options(logger)...)
}

// PayloadEncoder constructs the configured frame encoder.
func (c *Config) PayloadEncoder(logger *slog.Logger) (*payload.Encoder, error) {
	opts := []payload.Option{payload.WithCompression(format.ParseCompression(c.Payload.Compression))}
	if c.Payload.BigEndian {
		opts = append(opts, payload.WithBigEndian())
	}
	if logger != nil {
		opts = append(opts, payload.WithLogger(logger))
	}

	return payload.NewEncoder(opts...)
}

// Trace binds a series to the configured aggregator, with n_out as the
// sample budget of every viewport reduction.
func (c *Config) Trace(x series.X, y series.Column, logger *slog.Logger) (*viewport.Trace, error) {
	agg, err := c.Build(logger)
	if err != nil {
		return nil, err
	}

	return &viewport.Trace{X: x, Y: y, MaxSamples: c.NOut, Downsampler: agg}, nil
}
