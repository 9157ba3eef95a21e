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

// Split de-interleaves buf (R0 G0 B0 R1 G1 B1 ... for channels=3) into one
// buffer per channel. Channel c collects buf[c], buf[c+channels], ...
// A trailing partial pixel lands only in the leading channels.
func Split(buf []uint8, channels int) [][]uint8 {
	if channels <= 0 {
		panic(fmt.Sprintf("plane: invalid channel count %d", channels))
	}
	out := make([][]uint8, channels)
	for c := range channels {
		n := 0
		if c < len(buf) {
			n = (len(buf) - c + channels - 1) / channels
		}
		dst := make([]uint8, n)
		for i := range dst {
			dst[i] = buf[c+i*channels]
		}
		out[c] = dst
	}
	return out
}

// Merge interleaves per-channel buffers: for each pixel index i it writes
// the i-th byte of every buffer in order. All buffers must have the same
// length; Merge panics otherwise.
func Merge(channels [][]uint8) []uint8 {
	if len(channels) == 0 {
		return nil
	}
	n := len(channels[0])
	for c, ch := range channels {
		if len(ch) != n {
			panic(fmt.Sprintf("plane: channel %d has %d bytes, channel 0 has %d", c, len(ch), n))
		}
	}
	stride := len(channels)
	out := make([]uint8, n*stride)
	for c, ch := range channels {
		for i, v := range ch {
			out[i*stride+c] = v
		}
	}
	return out
}
