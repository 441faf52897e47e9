package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ivanovmg/plotly-resampler/aggregation"
	"github.com/ivanovmg/plotly-resampler/errs"
	"github.com/ivanovmg/plotly-resampler/format"
	"github.com/ivanovmg/plotly-resampler/payload"
	"github.com/ivanovmg/plotly-resampler/series"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "resampler.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, "minmax_lttb", cfg.Algorithm)
	require.Equal(t, 1000, cfg.NOut)
	require.True(t, cfg.InterleaveGaps)
	require.Equal(t, aggregation.DefaultSizeThreshold, cfg.MinMaxLTTB.SizeThreshold)
	require.InDelta(t, aggregation.DefaultRatioThreshold, cfg.MinMaxLTTB.RatioThreshold, 0)
	require.Equal(t, aggregation.DefaultMinMaxRatio, cfg.MinMaxLTTB.MinMaxRatio)
	require.Equal(t, "none", cfg.Payload.Compression)
	require.GreaterOrEqual(t, cfg.Parallel.Workers, 1)

	agg, err := cfg.Build(nil)
	require.NoError(t, err)
	require.Equal(t, format.AlgorithmMinMaxLTTB, agg.Name())
	require.True(t, agg.InterleaveGaps())
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
algorithm: lttb
n_out: 500
interleave_gaps: false
parallel:
  workers: 2
  threshold: 4096
payload:
  compression: zstd
  big_endian: true
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 500, cfg.NOut)
	require.Equal(t, 2, cfg.Parallel.Workers)
	require.Equal(t, 4096, cfg.Parallel.Threshold)

	agg, err := cfg.Build(nil)
	require.NoError(t, err)
	require.Equal(t, format.AlgorithmLTTB, agg.Name())
	require.False(t, agg.InterleaveGaps())

	enc, err := cfg.PayloadEncoder(nil)
	require.NoError(t, err)

	res, err := agg.Aggregate(series.Index(4), series.Float64s{1, 2, 3, 4}, cfg.NOut)
	require.NoError(t, err)

	data, err := enc.Encode(res)
	require.NoError(t, err)

	frame, err := payload.Decode(data)
	require.NoError(t, err)
	require.Equal(t, format.CompressionZstd, frame.Compression)
	require.Equal(t, series.Float64s{1, 2, 3, 4}, frame.Y)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, `
algorithm: minmax
n_out: 500
`)
	t.Setenv("RESAMPLER_N_OUT", "64")
	t.Setenv("RESAMPLER_MINMAX_LTTB__SIZE_THRESHOLD", "0")
	t.Setenv("RESAMPLER_PAYLOAD__COMPRESSION", "s2")

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "minmax", cfg.Algorithm)
	require.Equal(t, 64, cfg.NOut)
	require.Equal(t, 0, cfg.MinMaxLTTB.SizeThreshold)
	require.Equal(t, "s2", cfg.Payload.Compression)
}

func TestLoad_FuncAlgorithm(t *testing.T) {
	path := writeConfig(t, `
algorithm: func
reduce: median
n_out: 2
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	agg, err := cfg.Build(nil)
	require.NoError(t, err)
	require.Equal(t, format.AlgorithmFunc, agg.Name())

	res, err := agg.Aggregate(series.Index(6), series.Float64s{1, 9, 2, 7, 7, 0}, cfg.NOut)
	require.NoError(t, err)
	require.Equal(t, series.Float64s{2, 7}, res.Y)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
		err  error
	}{
		{"unknown algorithm", "algorithm: bogus\n", errs.ErrUnknownAlgorithm},
		{"zero n_out", "n_out: 0\n", errs.ErrInvalidArgument},
		{"lttb below three", "algorithm: lttb\nn_out: 2\n", errs.ErrInvalidArgument},
		{"unknown reduction", "algorithm: func\nreduce: mode\n", errs.ErrInvalidArgument},
		{"zero workers", "parallel:\n  workers: 0\n", errs.ErrInvalidArgument},
		{"small minmax ratio", "minmax_lttb:\n  minmax_ratio: 1\n", errs.ErrInvalidArgument},
		{"negative ratio", "minmax_lttb:\n  ratio_threshold: -1\n", errs.ErrInvalidArgument},
		{"unknown codec", "payload:\n  compression: brotli\n", errs.ErrInvalidArgument},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			require.ErrorIs(t, err, tt.err)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestConfig_Trace(t *testing.T) {
	path := writeConfig(t, "algorithm: lttb\nn_out: 3\n")
	cfg, err := Load(path)
	require.NoError(t, err)

	y := series.Float64s{0, 0, 0, 0, 0, 10, 0, 0, 0, 0}
	tr, err := cfg.Trace(series.Index(len(y)), y, nil)
	require.NoError(t, err)

	view, err := tr.Reduce(0, len(y))
	require.NoError(t, err)
	require.Equal(t, []int{0, 5, 9}, view.Indices)
	require.Equal(t, series.Float64s{0, 10, 0}, view.Y)
	require.False(t, view.InterleaveGaps)
}
