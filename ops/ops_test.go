package ops

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ajroetker/go-convolve/convolve"
	"github.com/ajroetker/go-convolve/kernel"
	"github.com/ajroetker/go-convolve/plane"
	"github.com/ajroetker/go-convolve/raster"
	"github.com/ajroetker/go-convolve/workerpool"
)

// solid returns a width x height image with every byte set to v.
func solid(width, height int, ct raster.ColorType, v uint8) *raster.Image {
	buf := bytes.Repeat([]uint8{v}, width*height*ct.Channels())
	return raster.FromInterleaved(width, height, ct, buf)
}

// pattern returns an image without horizontal or vertical symmetry.
func pattern(width, height int, ct raster.ColorType) *raster.Image {
	n := ct.Channels()
	buf := make([]uint8, width*height*n)
	for y := range height {
		for x := range width {
			for c := range n {
				buf[(y*width+x)*n+c] = uint8((x*37 + y*y*11 + c*50) % 256)
			}
		}
	}
	return raster.FromInterleaved(width, height, ct, buf)
}

// spot is a 3x3 image of 100 with 200 at the centre of every channel.
func spot(ct raster.ColorType) *raster.Image {
	p := []uint8{
		100, 100, 100,
		100, 200, 100,
		100, 100, 100,
	}
	bufs := make([][]uint8, ct.Channels())
	for c := range bufs {
		bufs[c] = p
	}
	return raster.FromInterleaved(3, 3, ct, plane.Merge(bufs))
}

func TestIdentity(t *testing.T) {
	img := pattern(9, 6, raster.RGBA)
	if got := Identity(img); !raster.Equal(img, got) {
		t.Error("Identity changed the image")
	}
}

func TestSimpleBlur_SolidIsFixedPoint(t *testing.T) {
	img := solid(4, 4, raster.RGBA, 128)
	got := SimpleBlur(img)
	if diff := cmp.Diff(img.Bytes(), got.Bytes()); diff != "" {
		t.Errorf("SimpleBlur of solid gray mismatch (-want +got):\n%s", diff)
	}
}

func TestSimpleBlur_Spot(t *testing.T) {
	got := SimpleBlur(spot(raster.RGB))
	// Reflection maps -1 to 1 but 3 to 2, so the response is not symmetric.
	want := []uint8{
		112, 118, 106,
		118, 150, 109,
		106, 109, 103,
	}
	for c := range got.NumChannels() {
		if diff := cmp.Diff(want, got.Channel(c).Bytes()); diff != "" {
			t.Errorf("channel %d mismatch (-want +got):\n%s", c, diff)
		}
	}
}

func TestSharpen_SolidIsFixedPoint(t *testing.T) {
	img := solid(4, 4, raster.RGBA, 128)
	got := Sharpen(img)
	if diff := cmp.Diff(img.Bytes(), got.Bytes()); diff != "" {
		t.Errorf("Sharpen of solid gray mismatch (-want +got):\n%s", diff)
	}
	if got.Width() != 4 || got.Height() != 4 || got.ColorType() != raster.RGBA {
		t.Errorf("Sharpen: got %dx%d %s, want 4x4 RGBA", got.Width(), got.Height(), got.ColorType())
	}
}

func TestSharpen_Spot(t *testing.T) {
	got := Sharpen(spot(raster.RGBA))
	want := []uint8{
		100, 0, 100,
		0, 200, 0,
		100, 0, 100,
	}
	for c := range got.NumChannels() {
		if diff := cmp.Diff(want, got.Channel(c).Bytes()); diff != "" {
			t.Errorf("channel %d mismatch (-want +got):\n%s", c, diff)
		}
	}
}

func TestComplexBlur_SolidIsFixedPoint(t *testing.T) {
	img := solid(10, 10, raster.RGB, 64)
	got := ComplexBlur(img)
	if diff := cmp.Diff(img.Bytes(), got.Bytes()); diff != "" {
		t.Errorf("ComplexBlur of solid mismatch (-want +got):\n%s", diff)
	}
}

func TestComplexBlur_HorizontalThenVertical(t *testing.T) {
	img := pattern(12, 10, raster.RGB)

	want := raster.ForEachChannel(
		raster.ForEachChannel(img, func(p *plane.Plane) *plane.Plane { return convolve.Apply(p, kernel.GaussianX) }),
		func(p *plane.Plane) *plane.Plane { return convolve.Apply(p, kernel.GaussianY) })
	swapped := raster.ForEachChannel(
		raster.ForEachChannel(img, func(p *plane.Plane) *plane.Plane { return convolve.Apply(p, kernel.GaussianY) }),
		func(p *plane.Plane) *plane.Plane { return convolve.Apply(p, kernel.GaussianX) })

	got := ComplexBlur(img)
	if !raster.Equal(want, got) {
		t.Error("ComplexBlur does not match a horizontal pass followed by a vertical pass")
	}
	if raster.Equal(swapped, got) {
		t.Error("ComplexBlur should differ from a vertical pass followed by a horizontal pass")
	}
}

func TestResampleDown(t *testing.T) {
	for _, size := range [][2]int{{8, 6}, {7, 5}, {1, 1}, {2, 3}} {
		width, height := size[0], size[1]
		src := plane.Build(width, height, func(x, y int) uint8 {
			return uint8(x*16 + y)
		})
		got := ResampleDown(src)
		if got.Width() != width/2 || got.Height() != height/2 {
			t.Errorf("%dx%d: got %dx%d, want %dx%d", width, height, got.Width(), got.Height(), width/2, height/2)
			continue
		}
		for y := range got.Height() {
			for x := range got.Width() {
				if got.At(x, y) != src.At(2*x, 2*y) {
					t.Errorf("%dx%d: At(%d, %d) = %d, want %d", width, height, x, y, got.At(x, y), src.At(2*x, 2*y))
				}
			}
		}
	}
}

func TestDownscale(t *testing.T) {
	img := pattern(9, 7, raster.RGBA)
	got := Downscale(img)
	if got.Width() != 4 || got.Height() != 3 {
		t.Errorf("Downscale: got %dx%d, want 4x3", got.Width(), got.Height())
	}
	if got.ColorType() != raster.RGBA {
		t.Errorf("Downscale: color type %s, want RGBA", got.ColorType())
	}
	if got.Channel(2).At(3, 2) != img.Channel(2).At(6, 4) {
		t.Error("Downscale: pixel (3, 2) should come from source (6, 4)")
	}
}

func TestOperationsDoNotModifyInput(t *testing.T) {
	img := pattern(8, 8, raster.RGB)
	before := img.Bytes()
	for _, op := range Operations {
		op.Run(sequential, img)
		if diff := cmp.Diff(before, img.Bytes()); diff != "" {
			t.Errorf("%s modified its input (-before +after):\n%s", op.Name, diff)
		}
	}
}

func TestProcessor_ParallelMatchesSequential(t *testing.T) {
	pool := workerpool.New(4)
	defer pool.Close()
	parallel := NewProcessor(pool)

	for _, ct := range []raster.ColorType{raster.RGB, raster.RGBA} {
		img := pattern(23, 17, ct)
		for _, op := range Operations {
			want := op.Run(sequential, img)
			got := op.Run(parallel, img)
			if !raster.Equal(want, got) {
				t.Errorf("%s %s: parallel result differs from sequential", ct, op.Name)
			}
		}
	}
}
