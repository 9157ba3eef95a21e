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

// Package kernel defines convolution kernels and the fixed catalog of named
// kernels used by the image operations.
//
// A Kernel is a row-major grid of float64 weights whose width and height are
// both odd, so it has a well-defined centre cell. Kernels are immutable; the
// catalog entries are built once at package initialization and shared.
package kernel

import (
	"fmt"
	"slices"
	"strings"
)

// Kernel is an immutable row-major weight matrix with odd dimensions.
// Height is derived as len(data)/width.
type Kernel struct {
	name  string
	width int
	data  []float64
}

// New creates a kernel of the given width from row-major weights. It panics
// unless width and len(data)/width are both odd and data fills whole rows.
// The weights are copied.
func New(name string, width int, data []float64) Kernel {
	if width <= 0 || len(data)%width != 0 {
		panic(fmt.Sprintf("kernel %q: %d weights do not form rows of width %d", name, len(data), width))
	}
	k := Kernel{name: name, width: width, data: slices.Clone(data)}
	k.MustValidate()
	return k
}

// Name returns the catalog name of the kernel.
func (k Kernel) Name() string {
	return k.name
}

// Width returns the number of columns.
func (k Kernel) Width() int {
	return k.width
}

// Height returns the number of rows.
func (k Kernel) Height() int {
	if k.width == 0 {
		return 0
	}
	return len(k.data) / k.width
}

// At returns the weight at column u, row v.
func (k Kernel) At(u, v int) float64 {
	return k.data[u+v*k.width]
}

// Weights returns a copy of the row-major weights.
func (k Kernel) Weights() []float64 {
	return slices.Clone(k.data)
}

// Sum returns the sum of all weights. Normalized kernels sum to 1.
func (k Kernel) Sum() float64 {
	var s float64
	for _, w := range k.data {
		s += w
	}
	return s
}

// MustValidate panics if either dimension of k is even or zero.
func (k Kernel) MustValidate() {
	w, h := k.Width(), k.Height()
	if w%2 != 1 || h%2 != 1 {
		panic(fmt.Sprintf("kernel %q: dimensions %dx%d must both be odd", k.name, w, h))
	}
}

// String implements fmt.Stringer.
func (k Kernel) String() string {
	return fmt.Sprintf("%s(%dx%d)", k.name, k.Width(), k.Height())
}

// Lookup returns the catalog kernel with the given (case-insensitive) name.
func Lookup(name string) (Kernel, bool) {
	k, ok := catalog[strings.ToLower(name)]
	return k, ok
}

// Names returns the sorted names of all catalog kernels.
func Names() []string {
	names := make([]string, 0, len(catalog))
	for name := range catalog {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
