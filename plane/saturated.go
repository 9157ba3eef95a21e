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

// Saturated byte arithmetic. Results clamp to [0, 255] instead of wrapping.
// Both functions process min(len(a), len(b)) elements.

// SaturatingAdd returns a[i] + b[i] clamped to 255.
// For example 250 + 10 = 255 (not 4).
func SaturatingAdd(a, b []uint8) []uint8 {
	n := min(len(a), len(b))
	out := make([]uint8, n)
	for i := range n {
		sum := uint16(a[i]) + uint16(b[i])
		if sum > 255 {
			sum = 255
		}
		out[i] = uint8(sum)
	}
	return out
}

// SaturatingSub returns a[i] - b[i] clamped to 0.
// For example 10 - 20 = 0 (not 246).
func SaturatingSub(a, b []uint8) []uint8 {
	n := min(len(a), len(b))
	out := make([]uint8, n)
	for i := range n {
		if a[i] > b[i] {
			out[i] = a[i] - b[i]
		}
	}
	return out
}
