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
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"

	"github.com/golang/glog"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/ajroetker/go-convolve/raster"
)

// Decode reads one image in format f from r.
func Decode(r io.Reader, f Format) (*raster.Image, error) {
	var (
		m   image.Image
		err error
	)
	switch f {
	case PNG:
		m, err = png.Decode(r)
	case BMP:
		m, err = bmp.Decode(r)
	case TIFF:
		m, err = tiff.Decode(r)
	case ICV:
		return decodeICV(r)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
	if err != nil {
		if isUnsupported(err) {
			return nil, fmt.Errorf("%w: %w", ErrUnsupportedFormat, err)
		}
		return nil, fmt.Errorf("%w: decoding %s: %w", ErrInputUnreadable, f, err)
	}
	return FromImage(m)
}

// Encode writes img to w in format f as 8-bit samples.
//
// BMP is RGB only: x/image/bmp writes alpha under a header its own reader
// treats as padding, so RGBA images fail with ErrUnsupportedFormat.
// The PNG encoder picks its layout by opacity, so an RGBA image whose alpha
// is 255 everywhere is written (and read back) as RGB. TIFF and ICV keep
// the channel layout as is.
func Encode(w io.Writer, img *raster.Image, f Format) error {
	var err error
	switch f {
	case PNG:
		enc := png.Encoder{CompressionLevel: png.DefaultCompression}
		err = enc.Encode(w, ToImage(img))
	case BMP:
		if img.ColorType() != raster.RGB {
			return fmt.Errorf("%w: bmp output of %s image", ErrUnsupportedFormat, img.ColorType())
		}
		err = bmp.Encode(w, ToImage(img))
	case TIFF:
		err = tiff.Encode(w, ToImage(img), &tiff.Options{Compression: tiff.Deflate})
	case ICV:
		err = encodeICV(w, img)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
	if err != nil {
		return fmt.Errorf("%w: encoding %s: %w", ErrOutputUnwritable, f, err)
	}
	return nil
}

// ReadFile decodes the image at path, picking the format from the extension.
// A file whose content is ICV is read as ICV regardless of its extension.
func ReadFile(path string) (*raster.Image, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInputUnreadable, err)
	}
	f := ICV
	if !sniffICV(data) {
		if f, err = FormatFromPath(path); err != nil {
			return nil, err
		}
	}
	img, err := Decode(bytes.NewReader(data), f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	glog.V(1).Infof("read %s: %dx%d %s (%s)", path, img.Width(), img.Height(), img.ColorType(), f)
	return img, nil
}

// WriteFile encodes img in the format implied by path's extension and
// replaces path with the result. The data goes to a temporary file in the
// same directory that is renamed over path, so a failed write leaves
// whatever was at path untouched.
func WriteFile(path string, img *raster.Image) error {
	f, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := Encode(&buf, img, f); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	if err := replaceFile(path, buf.Bytes()); err != nil {
		return fmt.Errorf("%w: %w", ErrOutputUnwritable, err)
	}
	glog.V(1).Infof("wrote %s: %dx%d %s (%s, %d bytes)", path, img.Width(), img.Height(), img.ColorType(), f, buf.Len())
	return nil
}

func replaceFile(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	name := tmp.Name()
	_, err = tmp.Write(data)
	if cerr := tmp.Close(); err == nil {
		err = cerr
	}
	if err == nil {
		err = os.Chmod(name, 0o644)
	}
	if err == nil {
		err = os.Rename(name, path)
	}
	if err != nil {
		_ = os.Remove(name)
	}
	return err
}

// isUnsupported reports whether a decoder rejected a well-formed file whose
// layout it does not handle, as opposed to corrupt data.
func isUnsupported(err error) bool {
	var pngErr png.UnsupportedError
	var tiffErr tiff.UnsupportedError
	return errors.Is(err, bmp.ErrUnsupported) || errors.As(err, &pngErr) || errors.As(err, &tiffErr)
}
