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

// Package raster holds multi-channel images as one plane per channel and
// applies plane transforms channel by channel.
package raster

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/ajroetker/go-convolve/plane"
)

// ColorType tags the channel layout of an image.
type ColorType int

const (
	// RGB has 3 channels: R, G, B.
	RGB ColorType = iota + 1
	// RGBA has 4 channels: R, G, B, A.
	RGBA
)

// Channels returns the number of channels for c. It panics for an
// unsupported color type.
func (c ColorType) Channels() int {
	switch c {
	case RGB:
		return 3
	case RGBA:
		return 4
	default:
		panic(fmt.Sprintf("raster: unsupported color type %d", int(c)))
	}
}

// String returns the name of the color type.
func (c ColorType) String() string {
	switch c {
	case RGB:
		return "RGB"
	case RGBA:
		return "RGBA"
	default:
		return fmt.Sprintf("ColorType(%d)", int(c))
	}
}

// Image is an immutable picture stored as one plane per channel, in R, G, B
// (and A) order. All planes share the image dimensions.
type Image struct {
	width     int
	height    int
	colorType ColorType
	channels  []*plane.Plane
}

// FromInterleaved splits a channel-interleaved buffer (R0 G0 B0 R1 ...) into
// an image. It panics if colorType is unsupported or len(buf) is not
// width*height*channels.
func FromInterleaved(width, height int, colorType ColorType, buf []uint8) *Image {
	n := colorType.Channels()
	if len(buf) != width*height*n {
		panic(fmt.Sprintf("raster: %d bytes for %dx%d %s image, want %d",
			len(buf), width, height, colorType, width*height*n))
	}
	split := plane.Split(buf, n)
	channels := make([]*plane.Plane, n)
	for c, pix := range split {
		channels[c] = plane.New(width, height, pix)
	}
	return &Image{width: width, height: height, colorType: colorType, channels: channels}
}

// FromPlanes assembles an image from per-channel planes. The image takes
// the dimensions of the first plane. It panics if the plane count does not
// match colorType or the planes differ in size.
func FromPlanes(colorType ColorType, channels []*plane.Plane) *Image {
	if len(channels) != colorType.Channels() {
		panic(fmt.Sprintf("raster: %d planes for %s image", len(channels), colorType))
	}
	first := channels[0]
	for c, p := range channels[1:] {
		if !plane.SameSize(first, p) {
			panic(fmt.Sprintf("raster: plane %d is %dx%d, plane 0 is %dx%d",
				c+1, p.Width(), p.Height(), first.Width(), first.Height()))
		}
	}
	return &Image{
		width:     first.Width(),
		height:    first.Height(),
		colorType: colorType,
		channels:  channels,
	}
}

// Width returns the image width in pixels.
func (img *Image) Width() int { return img.width }

// Height returns the image height in pixels.
func (img *Image) Height() int { return img.height }

// ColorType returns the channel layout.
func (img *Image) ColorType() ColorType { return img.colorType }

// NumChannels returns the number of planes.
func (img *Image) NumChannels() int { return len(img.channels) }

// Channel returns plane c.
func (img *Image) Channel(c int) *plane.Plane { return img.channels[c] }

// Bytes returns the channel-interleaved pixel buffer.
func (img *Image) Bytes() []uint8 {
	bufs := make([][]uint8, len(img.channels))
	for c, p := range img.channels {
		bufs[c] = p.Bytes()
	}
	return plane.Merge(bufs)
}

// Equal reports whether a and b have the same layout and pixels.
func Equal(a, b *Image) bool {
	if a.colorType != b.colorType || len(a.channels) != len(b.channels) {
		return false
	}
	for c := range a.channels {
		if !plane.Equal(a.channels[c], b.channels[c]) {
			return false
		}
	}
	return true
}

// PlaneFunc transforms one plane into a new one.
type PlaneFunc func(*plane.Plane) *plane.Plane

// ForEachChannel applies fn to every plane of img and assembles the results
// into a new image with the same color type. The result takes the
// dimensions of the first transformed plane; fn must produce equally sized
// planes for every channel.
func ForEachChannel(img *Image, fn PlaneFunc) *Image {
	out := make([]*plane.Plane, len(img.channels))
	for c, p := range img.channels {
		out[c] = fn(p)
	}
	return FromPlanes(img.colorType, out)
}

// ForEachChannelParallel is ForEachChannel with planes transformed
// concurrently, at most limit at a time (limit <= 0 means one goroutine per
// channel). Channel order is preserved.
func ForEachChannelParallel(img *Image, fn PlaneFunc, limit int) *Image {
	out := make([]*plane.Plane, len(img.channels))
	var g errgroup.Group
	if limit > 0 {
		g.SetLimit(limit)
	}
	for c, p := range img.channels {
		g.Go(func() error {
			out[c] = fn(p)
			return nil
		})
	}
	// fn cannot fail; Wait only gathers.
	_ = g.Wait()
	return FromPlanes(img.colorType, out)
}
