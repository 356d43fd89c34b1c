package facefilter

import (
	"context"
	"log/slog"
	"time"

	"github.com/gogpu/facefilter/internal/parallel"
)

// Request is one filter request of a batch. Each request owns its
// Footprint and Result; no two requests of a batch may share either.
type Request struct {
	// Footprint is consumed by the request; its Weight receives the sum of
	// the included weights.
	Footprint *Footprint

	// Result receives the weighted channel sums. It must hold NChan values.
	Result []float64

	// Constant marks a request over constant face data. The first texel of
	// the batch's view is used as the constant value.
	Constant bool
}

// Batch filters many requests against one shared texel view concurrently.
//
// Thread safety: Batch is safe for concurrent use.
type Batch struct {
	filter *Filter
	pool   *parallel.Pool
}

// NewBatch creates a Batch that filters with f on the given number of
// workers. If f is nil the default filter is used; if workers is 0 or
// negative, GOMAXPROCS is used.
func NewBatch(f *Filter, workers int) *Batch {
	if f == nil {
		f = defaultFilter
	}
	return &Batch{
		filter: f,
		pool:   parallel.NewPool(workers),
	}
}

// Filter returns the filter used by the batch.
func (b *Batch) Filter() *Filter {
	return b.filter
}

// Workers returns the number of workers.
func (b *Batch) Workers() int {
	return b.pool.Workers()
}

// Run filters every request in reqs against texels and waits for all of
// them. The view is only read, so it may be shared with other batches.
//
// If ctx is already done, Run returns ctx.Err() without filtering. Once
// dispatched, requests run to completion.
func (b *Batch) Run(ctx context.Context, texels Texels, reqs []Request) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if len(reqs) == 0 {
		return nil
	}

	start := time.Now()
	constant := texels.Pixel(0)
	jobs := make([]func(), len(reqs))
	for i := range reqs {
		r := &reqs[i]
		if r.Constant {
			jobs[i] = func() { b.filter.AccumulateConstant(r.Footprint, r.Result, constant) }
		} else {
			jobs[i] = func() { b.filter.Accumulate(r.Footprint, r.Result, texels) }
		}
	}

	if !b.pool.ExecuteAll(jobs) {
		return ErrClosed
	}

	if log := Logger(); log.Enabled(ctx, slog.LevelDebug) {
		scanned := 0
		for i := range reqs {
			scanned += reqs[i].Footprint.Texels()
		}
		log.DebugContext(ctx, "facefilter: batch done",
			"requests", len(reqs),
			"workers", b.pool.Workers(),
			"texels", scanned,
			"type", texels.Type(),
			"layout", texels.Layout(),
			"elapsed", time.Since(start))
	}
	return nil
}

// Close stops the batch workers. Run after Close returns ErrClosed.
func (b *Batch) Close() {
	b.pool.Close()
}
