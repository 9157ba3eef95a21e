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

package plane

import "fmt"

// Plane is a single-channel 2D array of bytes stored row-major
// (pix[y*width+x]). Planes are never modified after construction.
type Plane struct {
	pix    []uint8
	width  int
	height int
}

// New creates a plane that takes ownership of pix. It panics if len(pix) is
// not width*height or a dimension is negative.
func New(width, height int, pix []uint8) *Plane {
	if width < 0 || height < 0 {
		panic(fmt.Sprintf("plane: negative dimensions %dx%d", width, height))
	}
	if len(pix) != width*height {
		panic(fmt.Sprintf("plane: buffer length %d does not match %dx%d", len(pix), width, height))
	}
	return &Plane{pix: pix, width: width, height: height}
}

// Build creates a width x height plane whose pixel (x, y) is fn(x, y).
// Pixels are produced in row-major order.
func Build(width, height int, fn func(x, y int) uint8) *Plane {
	pix := make([]uint8, width*height)
	for y := range height {
		row := pix[y*width : (y+1)*width]
		for x := range row {
			row[x] = fn(x, y)
		}
	}
	return New(width, height, pix)
}

// Width returns the plane width in pixels.
func (p *Plane) Width() int {
	return p.width
}

// Height returns the plane height in pixels.
func (p *Plane) Height() int {
	return p.height
}

// Len returns the number of pixels, width*height.
func (p *Plane) Len() int {
	return len(p.pix)
}

// At returns the byte at (x, y). Coordinates must be in range.
func (p *Plane) At(x, y int) uint8 {
	return p.pix[y*p.width+x]
}

// AtReflect returns the byte at (x, y) after mapping each coordinate through
// Reflect against the plane extents.
func (p *Plane) AtReflect(x, y int) uint8 {
	x = Reflect(x, 0, p.width)
	y = Reflect(y, 0, p.height)
	return p.pix[y*p.width+x]
}

// Row returns row y. The slice aliases the plane and must not be modified.
func (p *Plane) Row(y int) []uint8 {
	if y < 0 || y >= p.height {
		return nil
	}
	start := y * p.width
	return p.pix[start : start+p.width]
}

// Bytes returns a copy of the row-major pixel buffer.
func (p *Plane) Bytes() []uint8 {
	out := make([]uint8, len(p.pix))
	copy(out, p.pix)
	return out
}

// SameSize returns true if both planes have the same dimensions.
func SameSize(a, b *Plane) bool {
	return a.width == b.width && a.height == b.height
}

// Equal reports whether a and b have the same dimensions and pixels.
func Equal(a, b *Plane) bool {
	if !SameSize(a, b) {
		return false
	}
	for i, v := range a.pix {
		if b.pix[i] != v {
			return false
		}
	}
	return true
}
