// Copyright 2026 The go-convolve Authors. SPDX-License-Identifier: Apache-2.0

// Package workerpool runs the row loop of a convolution pass on a fixed set
// of goroutines.
//
// A pass writes each output row from the source plane alone, so rows can be
// computed in any order. Pool.Rows cuts the rows of a plane into contiguous
// bands, hands one band to each worker and waits for all of them. Because a
// band owns its output rows outright, workers write into the shared
// destination buffer without locking and the result is byte-identical to a
// sequential pass.
//
// The goroutines are spawned once by New and reused by every pass until
// Close, so the two passes of a separable blur, or the three channels of an
// RGB image, share the same workers. Rows degrades to a plain loop on the
// caller's goroutine when the plane is too short to split, when the pool has
// a single worker, and after Close.
//
//	pool := workerpool.New(runtime.GOMAXPROCS(0))
//	defer pool.Close()
//
//	pool.Rows(height, func(y0, y1 int) {
//	    for y := y0; y < y1; y++ {
//	        correlateRow(out[y*width:(y+1)*width], src, k, y)
//	    }
//	})
package workerpool

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool is a persistent worker pool. Workers are spawned by New and live
// until Close.
type Pool struct {
	numWorkers int
	workC      chan task
	closeOnce  sync.Once
	closed     atomic.Bool
}

type task struct {
	fn   func()
	done *sync.WaitGroup
}

// New creates a pool with numWorkers goroutines.
// If numWorkers <= 0, uses GOMAXPROCS.
func New(numWorkers int) *Pool {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	p := &Pool{
		numWorkers: numWorkers,
		workC:      make(chan task, numWorkers*2),
	}
	for range numWorkers {
		go p.worker()
	}
	return p
}

func (p *Pool) worker() {
	for t := range p.workC {
		t.fn()
		t.done.Done()
	}
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Close shuts the pool down after pending work completes.
// Calling Close more than once is safe. A closed pool runs
// Rows sequentially on the caller's goroutine.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		p.closed.Store(true)
		close(p.workC)
	})
}

// MinBandRows is the smallest band Rows hands to a worker. Planes shorter
// than two bands are processed on the caller's goroutine.
const MinBandRows = 4

// Bands returns the band boundaries Rows uses for a plane of height rows:
// band i covers rows [b[i], b[i+1]). It returns nil for height <= 0.
func (p *Pool) Bands(height int) []int {
	if height <= 0 {
		return nil
	}
	n := 1
	if !p.closed.Load() {
		n = max(1, min(p.numWorkers, height/MinBandRows))
	}
	size := (height + n - 1) / n
	b := []int{0}
	for y := size; y < height; y += size {
		b = append(b, y)
	}
	return append(b, height)
}

// Rows calls fn once per band of rows covering [0, height) and blocks until
// every band is done. Bands are contiguous and never overlap.
//
// Rows may be called from several goroutines at once (the channels of one
// image are convolved concurrently), but not from inside fn.
func (p *Pool) Rows(height int, fn func(y0, y1 int)) {
	b := p.Bands(height)
	switch len(b) {
	case 0:
		return
	case 2:
		fn(0, height)
		return
	}

	var wg sync.WaitGroup
	wg.Add(len(b) - 1)
	for i := range len(b) - 1 {
		y0, y1 := b[i], b[i+1]
		p.workC <- task{fn: func() { fn(y0, y1) }, done: &wg}
	}
	wg.Wait()
}
