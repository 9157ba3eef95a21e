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

// Reflect maps value into [low, high) by mirroring it about the boundary it
// crossed:
//
//	value < low:   -value
//	value >= high: 2*high - value - 1
//
// The two branches are not symmetric: -1 maps to 1 while high maps to
// high-1. Only a single reflection is performed, so the result is in range
// only when the overrun is smaller than the extent.
func Reflect(value, low, high int) int {
	switch {
	case value < low:
		return -value
	case value >= high:
		return 2*high - value - 1
	default:
		return value
	}
}
