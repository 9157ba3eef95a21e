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

package kernel

// binomial7 holds the 7-tap binomial weights C(6,k)/64.
var binomial7 = []float64{
	1.0 / 64, 6.0 / 64, 15.0 / 64, 20.0 / 64, 15.0 / 64, 6.0 / 64, 1.0 / 64,
}

var (
	// Identity1 is the 1x1 no-op kernel.
	Identity1 = New("identity1", 1, []float64{1})

	// Identity2 is a 3x3 no-op kernel.
	Identity2 = New("identity2", 3, []float64{
		0, 0, 0,
		0, 1, 0,
		0, 0, 0,
	})

	// Identity3 is a 3x1 no-op row kernel.
	Identity3 = New("identity3", 3, []float64{0, 1, 0})

	// GaussianSimple is a 3x3 blur applied as a single 2D pass.
	GaussianSimple = New("gaussian_simple", 3, []float64{
		0.03125, 0.09375, 0.03125,
		0.09375, 0.50000, 0.09375,
		0.03125, 0.09375, 0.03125,
	})

	// GaussianX is the horizontal 7x1 half of the separable blur.
	GaussianX = New("gaussian_x", 7, binomial7)

	// GaussianY is the vertical 1x7 half of the separable blur.
	GaussianY = New("gaussian_y", 1, binomial7)

	// Laplacian extracts edges and detail.
	Laplacian = New("laplacian", 3, []float64{
		0, 1, 0,
		1, -4, 1,
		0, 1, 0,
	})
)

var catalog = map[string]Kernel{
	Identity1.name:      Identity1,
	Identity2.name:      Identity2,
	Identity3.name:      Identity3,
	GaussianSimple.name: GaussianSimple,
	GaussianX.name:      GaussianX,
	GaussianY.name:      GaussianY,
	Laplacian.name:      Laplacian,
}
