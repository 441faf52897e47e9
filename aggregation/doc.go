// Package aggregation reduces a series to a bounded number of representative
// points for plotting.
//
// Two contracts are offered. A Selector returns strictly increasing indices
// into the input and its Aggregate output is the input sampled at those
// indices:
//
//   - EveryNth keeps every step-th sample.
//   - MinMax keeps the minimum and the maximum of each window.
//   - MinMaxOverlap keeps minima and maxima of half-overlapping windows plus
//     both endpoints.
//   - LTTB keeps the points spanning the largest triangles.
//   - MinMaxLTTB runs LTTB on a MinMax prefetch for very large inputs.
//
// A FuncAggregator is an Aggregator only: it bins the series and computes one
// value per bin with a user-supplied ReduceFunc.
//
// Every algorithm declares the dtypes it accepts and rejects anything else
// with an *errs.DtypeError before doing any work. The x axis is either
// series.Positional or series.Explicit. When n_out >= len(y) the input is
// returned unchanged.
//
// Algorithms are immutable after construction and safe for concurrent use.
// Window scans over large inputs fan out over a bounded number of goroutines
// (see WithParallelism and WithParallelThreshold).
package aggregation
