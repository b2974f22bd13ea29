// Package parallel provides a small chunked worker-pool helper shared by the
// NTT engine and the polynomial multiplier, grounded on the goroutine-per-chunk
// style seen in luxfi-ringtail's gpu/gpu_ntt.go and the size-threshold
// parallel recursion in the pcg-poly-fft reference implementation, but built
// on golang.org/x/sync/errgroup rather than a raw sync.WaitGroup. For
// returns nothing: chunk bodies cannot fail, and a panic in one is not
// recovered.
package parallel

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Threshold is the minimum item count below which For runs fn sequentially
// in the calling goroutine instead of paying goroutine dispatch overhead.
// 1024 mirrors the len(vals) >= 1024 gate used by the reference FFT this
// package is modeled on.
const Threshold = 1024

// For calls fn(i) for every i in [0, n). When n is at least Threshold and
// package-level Enabled is true, the range is split into contiguous chunks
// run concurrently across runtime.GOMAXPROCS(0) goroutines; otherwise it
// runs sequentially in the calling goroutine. fn must not be called
// concurrently with overlapping i.
func For(n int, fn func(i int)) {
	if n <= 0 {
		return
	}
	if !Enabled || n < Threshold {
		for i := 0; i < n; i++ {
			fn(i)
		}
		return
	}

	workers := runtime.GOMAXPROCS(0)
	if workers > n {
		workers = n
	}
	if workers < 1 {
		workers = 1
	}

	chunk := (n + workers - 1) / workers
	g, _ := errgroup.WithContext(context.Background())
	for start := 0; start < n; start += chunk {
		start := start
		end := start + chunk
		if end > n {
			end = n
		}
		g.Go(func() error {
			for i := start; i < end; i++ {
				fn(i)
			}
			return nil
		})
	}
	// fn never returns an error; the only possible error here would come
	// from a goroutine panic, which errgroup does not recover, so this
	// can only ever return nil.
	_ = g.Wait()
}

// Enabled is the package-wide switch controlling whether For actually
// parallelizes. It defaults to true and exists so callers (and tests) can
// force deterministic sequential execution, mirroring the compile-time
// parallel feature toggle the original implementation exposed.
var Enabled = true
