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

// Package plane provides the single-channel byte grid that every convolution
// operates on, together with the helpers needed to move between planes and
// channel-interleaved pixel buffers.
//
// A Plane is immutable once constructed. Transforms read from an input plane
// and build a new one:
//
//	src := plane.New(4, 3, pix)
//	dst := plane.Build(src.Width(), src.Height(), func(x, y int) uint8 {
//	    return src.At(x, y) / 2
//	})
//
// # Edge Handling
//
// Reads outside the grid go through Reflect, which mirrors a coordinate back
// into [0, size):
//
//	Reflect(-1, 0, 10) // 1
//	Reflect(10, 0, 10) // 9
//
// # Interleaved Buffers
//
//	planes := plane.Split(rgb, 3)  // R0 G0 B0 R1 G1 B1 ... -> [R...] [G...] [B...]
//	rgb = plane.Merge(planes)      // and back again
package plane
