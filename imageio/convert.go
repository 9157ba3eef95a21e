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

package imageio

import (
	"fmt"
	"image"
	"image/color"

	xdraw "golang.org/x/image/draw"

	"github.com/ajroetker/go-convolve/raster"
)

// FromImage converts a decoded image to a raster image. Opaque *image.RGBA
// becomes RGB, *image.NRGBA becomes RGBA, and translucent *image.RGBA is
// un-premultiplied into RGBA.
func FromImage(m image.Image) (*raster.Image, error) {
	switch m := m.(type) {
	case *image.RGBA:
		if m.Opaque() {
			return fromPix(m.Pix, m.Stride, m.Rect, raster.RGB), nil
		}
		n := image.NewNRGBA(m.Bounds())
		xdraw.Draw(n, n.Bounds(), m, m.Bounds().Min, xdraw.Src)
		return fromPix(n.Pix, n.Stride, n.Rect, raster.RGBA), nil
	case *image.NRGBA:
		return fromPix(m.Pix, m.Stride, m.Rect, raster.RGBA), nil
	default:
		return nil, fmt.Errorf("%w: pixel layout %T (%s)", ErrUnsupportedFormat, m, modelName(m.ColorModel()))
	}
}

// fromPix copies 4-byte pixels out of an image.RGBA/NRGBA style buffer,
// dropping alpha for RGB.
func fromPix(pix []uint8, stride int, r image.Rectangle, ct raster.ColorType) *raster.Image {
	width, height := r.Dx(), r.Dy()
	n := ct.Channels()
	buf := make([]uint8, 0, width*height*n)
	for y := range height {
		row := pix[y*stride : y*stride+width*4]
		for x := 0; x < len(row); x += 4 {
			buf = append(buf, row[x:x+n]...)
		}
	}
	return raster.FromInterleaved(width, height, ct, buf)
}

// ToImage converts img to a Go image: RGB becomes an opaque *image.RGBA and
// RGBA becomes *image.NRGBA.
func ToImage(img *raster.Image) image.Image {
	r := image.Rect(0, 0, img.Width(), img.Height())
	buf := img.Bytes()
	switch img.ColorType() {
	case raster.RGB:
		m := image.NewRGBA(r)
		for i, j := 0, 0; i < len(buf); i, j = i+3, j+4 {
			copy(m.Pix[j:j+3], buf[i:i+3])
			m.Pix[j+3] = 0xff
		}
		return m
	default:
		m := image.NewNRGBA(r)
		copy(m.Pix, buf)
		return m
	}
}

func modelName(m color.Model) string {
	if _, ok := m.(color.Palette); ok {
		return "paletted"
	}
	switch m {
	case color.GrayModel, color.Gray16Model:
		return "gray"
	case color.RGBA64Model, color.NRGBA64Model:
		return "16-bit"
	case color.YCbCrModel, color.NYCbCrAModel:
		return "ycbcr"
	case color.CMYKModel:
		return "cmyk"
	}
	return "other"
}
