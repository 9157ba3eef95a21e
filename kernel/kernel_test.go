package kernel

import (
	"math"
	"slices"
	"testing"
)

func TestCatalogDimensions(t *testing.T) {
	tests := []struct {
		k             Kernel
		width, height int
	}{
		{Identity1, 1, 1},
		{Identity2, 3, 3},
		{Identity3, 3, 1},
		{GaussianSimple, 3, 3},
		{GaussianX, 7, 1},
		{GaussianY, 1, 7},
		{Laplacian, 3, 3},
	}
	for _, tt := range tests {
		if tt.k.Width() != tt.width || tt.k.Height() != tt.height {
			t.Errorf("%s: got %dx%d, want %dx%d", tt.k.Name(), tt.k.Width(), tt.k.Height(), tt.width, tt.height)
		}
	}
}

func TestCatalogSums(t *testing.T) {
	for _, k := range []Kernel{Identity1, Identity2, Identity3, GaussianSimple, GaussianX, GaussianY} {
		if math.Abs(k.Sum()-1) > 1e-12 {
			t.Errorf("%s: sum = %v, want 1", k, k.Sum())
		}
	}
	if Laplacian.Sum() != 0 {
		t.Errorf("laplacian: sum = %v, want 0", Laplacian.Sum())
	}
}

func TestGaussianSimpleWeights(t *testing.T) {
	want := []float64{0.03125, 0.09375, 0.03125, 0.09375, 0.5, 0.09375, 0.03125, 0.09375, 0.03125}
	if got := GaussianSimple.Weights(); !slices.Equal(got, want) {
		t.Errorf("GaussianSimple weights: got %v, want %v", got, want)
	}
}

func TestAt(t *testing.T) {
	if got := Laplacian.At(1, 1); got != -4 {
		t.Errorf("Laplacian.At(1, 1): got %v, want -4", got)
	}
	if got := Laplacian.At(0, 1); got != 1 {
		t.Errorf("Laplacian.At(0, 1): got %v, want 1", got)
	}
	if got := GaussianY.At(0, 3); got != 20.0/64 {
		t.Errorf("GaussianY.At(0, 3): got %v, want %v", got, 20.0/64)
	}
}

func TestWeightsIsCopy(t *testing.T) {
	w := Identity1.Weights()
	w[0] = 42
	if Identity1.At(0, 0) != 1 {
		t.Error("modifying Weights() result changed the catalog kernel")
	}
}

func TestNew_EvenDimensionsPanic(t *testing.T) {
	tests := []struct {
		name  string
		width int
		data  []float64
	}{
		{"even width", 2, []float64{1, 1}},
		{"even height", 1, []float64{1, 1}},
		{"ragged", 3, []float64{1, 1}},
		{"zero width", 0, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Errorf("New(%d, %v) should panic", tt.width, tt.data)
				}
			}()
			New(tt.name, tt.width, tt.data)
		})
	}
}

func TestLookup(t *testing.T) {
	k, ok := Lookup("LAPLACIAN")
	if !ok {
		t.Fatal("Lookup(LAPLACIAN) not found")
	}
	if k.Name() != "laplacian" {
		t.Errorf("Lookup(LAPLACIAN): got %s", k.Name())
	}
	if _, ok := Lookup("sobel"); ok {
		t.Error("Lookup(sobel) should fail")
	}
	if got := len(Names()); got != 7 {
		t.Errorf("Names(): got %d entries, want 7", got)
	}
	if !slices.IsSorted(Names()) {
		t.Error("Names() should be sorted")
	}
}
