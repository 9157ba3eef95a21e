package ops

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ajroetker/go-convolve/raster"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"identity", "identity"},
		{"BLUR", "blur"},
		{"g", "blur"},
		{"G", "gaussian"},
		{"s", "sharpen"},
		{"d", "downscale"},
		{"i", "identity"},
	}
	for _, tt := range tests {
		op, err := Lookup(tt.in)
		if err != nil {
			t.Errorf("Lookup(%q): unexpected error %v", tt.in, err)
			continue
		}
		if op.Name != tt.want {
			t.Errorf("Lookup(%q): got %s, want %s", tt.in, op.Name, tt.want)
		}
	}
}

func TestLookup_Unknown(t *testing.T) {
	for _, name := range []string{"u", "unsharp", "", "S"} {
		if _, err := Lookup(name); !errors.Is(err, ErrUnknownOperation) {
			t.Errorf("Lookup(%q): got %v, want ErrUnknownOperation", name, err)
		}
	}
}

func TestNames(t *testing.T) {
	want := []string{"identity", "blur", "gaussian", "sharpen", "downscale"}
	if diff := cmp.Diff(want, Names()); diff != "" {
		t.Errorf("Names mismatch (-want +got):\n%s", diff)
	}
}

func TestParsePipeline(t *testing.T) {
	pl, err := ParsePipeline([]string{"blur", " downscale", "s"})
	if err != nil {
		t.Fatalf("ParsePipeline: %v", err)
	}
	if got := pl.String(); got != "blur,downscale,sharpen" {
		t.Errorf("String: got %q", got)
	}

	if _, err := ParsePipeline(nil); !errors.Is(err, ErrUnknownOperation) {
		t.Errorf("ParsePipeline(nil): got %v, want ErrUnknownOperation", err)
	}
	if _, err := ParsePipeline([]string{"blur", "emboss"}); !errors.Is(err, ErrUnknownOperation) {
		t.Errorf("ParsePipeline(emboss): got %v, want ErrUnknownOperation", err)
	}
}

func TestPipelineRun(t *testing.T) {
	pl, err := ParsePipeline([]string{"blur", "downscale"})
	if err != nil {
		t.Fatalf("ParsePipeline: %v", err)
	}
	img := pattern(10, 8, raster.RGB)
	got := pl.Run(sequential, img)
	want := Downscale(SimpleBlur(img))
	if !raster.Equal(want, got) {
		t.Error("pipeline result differs from calling the operations in order")
	}
}
