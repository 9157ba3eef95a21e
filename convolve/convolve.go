// Copyright 2026 go-convolve Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package convolve applies kernels to planes.
//
// Apply computes, for every output pixel (x, y), the correlation
//
//	sum over u, v of k[u + v*kw] * src(x - kw/2 + u, y - kh/2 + v)
//
// in float64, reading src through plane.Reflect at the edges. The kernel is
// not flipped. The output plane has the dimensions of the input.
//
// # Narrowing
//
// The float64 sum becomes a byte by truncating toward zero. Sums below 0
// narrow to 0 and sums of 255 or more narrow to 255. Kernels with negative
// weights such as the Laplacian depend on this: a negative response reads as
// 0 rather than wrapping, which is what the sharpen operation expects. Do not
// change it to rounding.
//
// # Parallelism
//
// Output pixels are independent, so an Engine backed by a workerpool.Pool
// splits output rows across workers. Results are bit-identical to Apply.
package convolve

import (
	"github.com/ajroetker/go-convolve/kernel"
	"github.com/ajroetker/go-convolve/plane"
	"github.com/ajroetker/go-convolve/workerpool"
)

// Engine applies kernels to planes, optionally splitting rows across a pool.
// The zero value and a nil *Engine both run sequentially.
type Engine struct {
	pool *workerpool.Pool
}

// New returns an engine that spreads rows over pool. A nil pool gives a
// sequential engine. The engine does not own the pool.
func New(pool *workerpool.Pool) *Engine {
	return &Engine{pool: pool}
}

// Apply correlates src with k using a sequential engine.
func Apply(src *plane.Plane, k kernel.Kernel) *plane.Plane {
	return (*Engine)(nil).Apply(src, k)
}

// Apply correlates src with k and returns a new plane of the same size.
// It panics if either kernel dimension is even.
func (e *Engine) Apply(src *plane.Plane, k kernel.Kernel) *plane.Plane {
	k.MustValidate()

	width, height := src.Width(), src.Height()
	out := make([]uint8, width*height)
	rows := func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			correlateRow(out[y*width:(y+1)*width], src, k, y)
		}
	}

	if e == nil || e.pool == nil {
		rows(0, height)
	} else {
		e.pool.Rows(height, rows)
	}
	return plane.New(width, height, out)
}

// correlateRow fills dst with output row y.
func correlateRow(dst []uint8, src *plane.Plane, k kernel.Kernel, y int) {
	kw, kh := k.Width(), k.Height()
	offX, offY := kw/2, kh/2
	top := y - offY
	for x := range dst {
		left := x - offX
		var sum float64
		for u := range kw {
			for v := range kh {
				sum += k.At(u, v) * float64(src.AtReflect(left+u, top+v))
			}
		}
		dst[x] = Narrow(sum)
	}
}

// Narrow converts an accumulated sum to a byte by truncation toward zero,
// pinning values outside [0, 255] (and NaN) to the nearest end.
func Narrow(sum float64) uint8 {
	switch {
	case sum >= 255:
		return 255
	case sum > 0:
		return uint8(sum)
	default:
		return 0
	}
}
