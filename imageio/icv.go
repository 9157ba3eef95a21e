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
	"bufio"
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"runtime"

	"github.com/klauspost/compress/zstd"

	"github.com/ajroetker/go-convolve/raster"
)

// ICV layout: a fixed header followed by a zstd stream holding the
// channel-interleaved pixel bytes.
//
//	magic    [4]byte  "ICV1"
//	width    uint32   big-endian
//	height   uint32   big-endian
//	channels uint8    3 or 4

var icvMagic = [4]byte{'I', 'C', 'V', '1'}

// maxICVPixels bounds width*height. The pixel buffer grows with the
// decompressed data, so a header alone never reserves this much.
const maxICVPixels = 1 << 28

// minDecoderMemory keeps the zstd window limit above what the encoder
// produces for small images.
const minDecoderMemory = 64 << 20

type icvHeader struct {
	Magic    [4]byte
	Width    uint32
	Height   uint32
	Channels uint8
}

func encodeICV(w io.Writer, img *raster.Image) error {
	hdr := icvHeader{
		Magic:    icvMagic,
		Width:    uint32(img.Width()),
		Height:   uint32(img.Height()),
		Channels: uint8(img.NumChannels()),
	}
	if err := binary.Write(w, binary.BigEndian, hdr); err != nil {
		return err
	}

	enc, err := zstd.NewWriter(w, zstd.WithEncoderConcurrency(runtime.NumCPU()))
	if err != nil {
		return err
	}
	if _, err := enc.Write(img.Bytes()); err != nil {
		_ = enc.Close()
		return err
	}
	return enc.Close()
}

func decodeICV(r io.Reader) (*raster.Image, error) {
	br := bufio.NewReader(r)
	var hdr icvHeader
	if err := binary.Read(br, binary.BigEndian, &hdr); err != nil {
		return nil, fmt.Errorf("%w: icv header: %w", ErrInputUnreadable, err)
	}
	if hdr.Magic != icvMagic {
		return nil, fmt.Errorf("%w: bad icv magic %q", ErrUnsupportedFormat, hdr.Magic[:])
	}

	var ct raster.ColorType
	switch hdr.Channels {
	case 3:
		ct = raster.RGB
	case 4:
		ct = raster.RGBA
	default:
		return nil, fmt.Errorf("%w: icv with %d channels", ErrUnsupportedFormat, hdr.Channels)
	}
	pixels := uint64(hdr.Width) * uint64(hdr.Height)
	if pixels > maxICVPixels {
		return nil, fmt.Errorf("%w: icv dimensions %dx%d too large", ErrInputUnreadable, hdr.Width, hdr.Height)
	}

	want := int64(pixels) * int64(hdr.Channels)
	dec, err := zstd.NewReader(br, zstd.WithDecoderMaxMemory(uint64(max(want+1, minDecoderMemory))))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInputUnreadable, err)
	}
	defer dec.Close()

	var pix bytes.Buffer
	n, err := pix.ReadFrom(io.LimitReader(dec, want+1))
	if err != nil {
		return nil, fmt.Errorf("%w: icv pixel data: %w", ErrInputUnreadable, err)
	}
	if n != want {
		return nil, fmt.Errorf("%w: icv pixel data has %d bytes, %dx%d needs %d",
			ErrInputUnreadable, n, hdr.Width, hdr.Height, want)
	}
	buf := pix.Bytes()
	return raster.FromInterleaved(int(hdr.Width), int(hdr.Height), ct, buf), nil
}

// sniffICV reports whether data starts with the ICV magic.
func sniffICV(data []byte) bool {
	return bytes.HasPrefix(data, icvMagic[:])
}
