package aggregation

import (
	"golang.org/x/sync/errgroup"
)

// forEachChunk splits the units [0, units) into contiguous chunks and calls fn
// on each. Chunks run concurrently when the input holds at least
// ParallelThreshold samples; fn must only write to state owned by its chunk.
func (c *Config) forEachChunk(samples, units int, fn func(lo, hi int)) {
	workers := min(c.Parallelism, units)
	if samples < c.ParallelThreshold || workers <= 1 {
		fn(0, units)
		return
	}

	chunk := (units + workers - 1) / workers
	c.Logger.Debug("fan out window scan",
		"samples", samples, "units", units, "workers", workers, "chunk", chunk)

	var g errgroup.Group
	g.SetLimit(workers)
	for lo := 0; lo < units; lo += chunk {
		hi := min(lo+chunk, units)
		g.Go(func() error {
			fn(lo, hi)
			return nil
		})
	}
	_ = g.Wait() // fn cannot fail
}
