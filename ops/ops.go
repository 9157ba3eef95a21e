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

// Package ops implements the image operations built from the kernel catalog:
// identity, blur, separable gaussian blur, sharpen and downscale.
//
// Every operation is a pure function of its input image. The package-level
// functions run sequentially; a Processor created with a worker pool runs the
// same operations with rows and channels processed concurrently and produces
// bit-identical results.
package ops

import (
	"github.com/ajroetker/go-convolve/convolve"
	"github.com/ajroetker/go-convolve/kernel"
	"github.com/ajroetker/go-convolve/plane"
	"github.com/ajroetker/go-convolve/raster"
	"github.com/ajroetker/go-convolve/workerpool"
)

// Processor runs operations with a particular convolution engine.
type Processor struct {
	engine   *convolve.Engine
	parallel bool
}

// NewProcessor returns a processor that splits rows across pool and
// transforms channels concurrently. A nil pool gives a sequential processor.
func NewProcessor(pool *workerpool.Pool) *Processor {
	return &Processor{engine: convolve.New(pool), parallel: pool != nil}
}

var sequential = NewProcessor(nil)

// filter returns a plane transform applying k.
func (p *Processor) filter(k kernel.Kernel) raster.PlaneFunc {
	return func(src *plane.Plane) *plane.Plane {
		return p.engine.Apply(src, k)
	}
}

func (p *Processor) forEachChannel(img *raster.Image, fn raster.PlaneFunc) *raster.Image {
	if p.parallel {
		return raster.ForEachChannelParallel(img, fn, 0)
	}
	return raster.ForEachChannel(img, fn)
}

// Identity applies the 1x1 identity kernel; the result equals img.
func (p *Processor) Identity(img *raster.Image) *raster.Image {
	return p.forEachChannel(img, p.filter(kernel.Identity1))
}

// SimpleBlur applies the 3x3 gaussian in a single 2D pass.
func (p *Processor) SimpleBlur(img *raster.Image) *raster.Image {
	return p.forEachChannel(img, p.filter(kernel.GaussianSimple))
}

// ComplexBlur applies the 7-tap gaussian horizontally over the whole image,
// then vertically over that result.
func (p *Processor) ComplexBlur(img *raster.Image) *raster.Image {
	horizontal := p.forEachChannel(img, p.filter(kernel.GaussianX))
	return p.forEachChannel(horizontal, p.filter(kernel.GaussianY))
}

// Sharpen subtracts the Laplacian of img from img, clamping at 0.
func (p *Processor) Sharpen(img *raster.Image) *raster.Image {
	laplacian := p.forEachChannel(img, p.filter(kernel.Laplacian))
	result := plane.SaturatingSub(img.Bytes(), laplacian.Bytes())
	return raster.FromInterleaved(img.Width(), img.Height(), img.ColorType(), result)
}

// Downscale halves each dimension by keeping every other row and column.
func (p *Processor) Downscale(img *raster.Image) *raster.Image {
	return p.forEachChannel(img, ResampleDown)
}

// ResampleDown keeps the pixels at even rows and even columns of src. The
// result is width/2 x height/2; a trailing odd row or column is dropped.
// No low-pass filter is applied first.
func ResampleDown(src *plane.Plane) *plane.Plane {
	return plane.Build(src.Width()/2, src.Height()/2, func(x, y int) uint8 {
		return src.At(2*x, 2*y)
	})
}

// Identity runs Processor.Identity sequentially.
func Identity(img *raster.Image) *raster.Image { return sequential.Identity(img) }

// SimpleBlur runs Processor.SimpleBlur sequentially.
func SimpleBlur(img *raster.Image) *raster.Image { return sequential.SimpleBlur(img) }

// ComplexBlur runs Processor.ComplexBlur sequentially.
func ComplexBlur(img *raster.Image) *raster.Image { return sequential.ComplexBlur(img) }

// Sharpen runs Processor.Sharpen sequentially.
func Sharpen(img *raster.Image) *raster.Image { return sequential.Sharpen(img) }

// Downscale runs Processor.Downscale sequentially.
func Downscale(img *raster.Image) *raster.Image { return sequential.Downscale(img) }
