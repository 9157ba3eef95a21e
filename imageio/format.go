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

// Package imageio reads and writes raster images in container formats: PNG,
// BMP, TIFF and ICV, a zstd-compressed raw interleaved format.
//
// Only 8-bit RGB and RGBA images are accepted. Everything else (gray,
// paletted, 16-bit, YCbCr) fails with ErrUnsupportedFormat; no color
// conversion is attempted. BMP output is RGB only.
package imageio

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

var (
	// ErrInputUnreadable reports an input that could not be opened or decoded.
	ErrInputUnreadable = errors.New("input unreadable")

	// ErrOutputUnwritable reports an output that could not be encoded or written.
	ErrOutputUnwritable = errors.New("output unwritable")

	// ErrUnsupportedFormat reports a container or pixel layout that is not handled.
	ErrUnsupportedFormat = errors.New("unsupported format")
)

// Format identifies a container format.
type Format string

const (
	PNG  Format = "png"
	BMP  Format = "bmp"
	TIFF Format = "tiff"
	ICV  Format = "icv"
)

// FormatFromPath picks the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".png":
		return PNG, nil
	case ".bmp":
		return BMP, nil
	case ".tif", ".tiff":
		return TIFF, nil
	case ".icv":
		return ICV, nil
	default:
		return "", fmt.Errorf("%w: file extension %q", ErrUnsupportedFormat, ext)
	}
}
