package transform

import (
	"errors"
	"testing"

	"pixproc/grid"
)

func TestGrayscale_KnownValues(t *testing.T) {
	in := patternGrid(t)

	out, err := Grayscale(in)
	if err != nil {
		t.Fatalf("Grayscale() returned error: %v", err)
	}

	if out.Channels != 1 {
		t.Fatalf("Channels = %d, want 1", out.Channels)
	}
	if out.Width != in.Width || out.Height != in.Height {
		t.Errorf("dimensions = %dx%d, want %dx%d", out.Width, out.Height, in.Width, in.Height)
	}

	// Truncated luma of red, green, blue, white:
	// int(0.299*255) = 76, int(0.587*255) = 149, int(0.114*255) = 29, 255.
	wantRow0 := []int{76, 149, 29, 255}
	for col, want := range wantRow0 {
		if got := out.At(0, col, 0); got != want {
			t.Errorf("row 0 col %d = %d, want %d", col, got, want)
		}
	}
}

func TestGrayscale_RangeAndDepth(t *testing.T) {
	in := mustGrid(t, 5, 4, 3)
	fillGradient(in)

	out, err := Grayscale(in)
	if err != nil {
		t.Fatalf("Grayscale() returned error: %v", err)
	}

	if len(out.Pix) != in.Width*in.Height {
		t.Errorf("len(Pix) = %d, want %d", len(out.Pix), in.Width*in.Height)
	}
	for i, v := range out.Pix {
		if v < 0 || v > 255 {
			t.Errorf("Pix[%d] = %d, outside [0, 255]", i, v)
		}
	}
}

func TestGrayscale_InputNotMutated(t *testing.T) {
	in := patternGrid(t)
	before := in.Clone()

	if _, err := Grayscale(in); err != nil {
		t.Fatalf("Grayscale() returned error: %v", err)
	}

	if !in.Equal(before) {
		t.Error("Grayscale() mutated its input")
	}
}

func TestGrayscale_NotRGB(t *testing.T) {
	in := mustGrid(t, 2, 2, 1)

	if _, err := Grayscale(in); !errors.Is(err, ErrNotRGB) {
		t.Errorf("Grayscale() error = %v, want ErrNotRGB", err)
	}
}

func TestGrayscale_InvalidInput(t *testing.T) {
	if _, err := Grayscale(nil); !errors.Is(err, grid.ErrInvalidDimensions) {
		t.Errorf("Grayscale(nil) error = %v, want ErrInvalidDimensions", err)
	}

	// A zero-value Grid literal is the only degenerate shape reachable.
	if _, err := Grayscale(&grid.Grid{}); !errors.Is(err, grid.ErrInvalidDimensions) {
		t.Errorf("Grayscale(zero grid) error = %v, want ErrInvalidDimensions", err)
	}
}
