// Package series holds the data model the resampler algorithms operate on.
//
// A series is an optional x axis plus a required y column of the same length.
//
// # Y columns
//
// Column is an ordered, read-only sequence of y-values. Every column can be
// ordered (Less), viewed (Slice) and gathered (Take); columns that also have a
// numeric view implement Numeric, which is what the distance-based algorithms
// (LTTB and its hybrid) require:
//
//	y := series.Float64s{1, 5, 2, 8}       // Numeric
//	b := series.Bools{true, false, true}   // Numeric, false=0 true=1
//	s := series.Strings{"a", "b"}          // Column only
//
// Categorical labels are encoded to integer codes with NewCategorical. The
// codes follow the declared category order, or first-seen order when no order
// is declared, and the returned Categorical keeps the label table so callers
// can decode results:
//
//	c, _ := series.NewCategorical([]string{"a", "b", "c", "a"}, []string{"b", "c", "a"})
//	c.Codes() // [2 0 1 2]
//
// # X axis
//
// X is a closed sum of two variants: Positional, the implicit positions
// 0..n-1, and Explicit, a non-decreasing sequence of float, integer or time
// coordinates. Time coordinates are stored as int64 nanosecond ticks.
//
// Nothing in this package mutates the slices it is handed; views share the
// backing array with capacity clipped to the view length.
package series
