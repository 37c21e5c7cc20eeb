package transform

import (
	"testing"

	"pixproc/grid"
)

func TestFlipHorizontal_Mapping(t *testing.T) {
	in := mustGrid(t, 3, 2, 3)
	fillGradient(in)

	out, err := FlipHorizontal(in)
	if err != nil {
		t.Fatalf("FlipHorizontal() returned error: %v", err)
	}

	for row := 0; row < in.Height; row++ {
		for col := 0; col < in.Width; col++ {
			for ch := 0; ch < in.Channels; ch++ {
				want := in.At(row, col, ch)
				if got := out.At(row, in.Width-1-col, ch); got != want {
					t.Fatalf("out(%d, %d, %d) = %d, want %d",
						row, in.Width-1-col, ch, got, want)
				}
			}
		}
	}
}

func TestFlipVertical_Mapping(t *testing.T) {
	in := mustGrid(t, 2, 3, 3)
	fillGradient(in)

	out, err := FlipVertical(in)
	if err != nil {
		t.Fatalf("FlipVertical() returned error: %v", err)
	}

	for row := 0; row < in.Height; row++ {
		for col := 0; col < in.Width; col++ {
			for ch := 0; ch < in.Channels; ch++ {
				want := in.At(row, col, ch)
				if got := out.At(in.Height-1-row, col, ch); got != want {
					t.Fatalf("out(%d, %d, %d) = %d, want %d",
						in.Height-1-row, col, ch, got, want)
				}
			}
		}
	}
}

func TestFlip_Involution(t *testing.T) {
	tests := []struct {
		name string
		flip func(*grid.Grid) (*grid.Grid, error)
	}{
		{"horizontal", FlipHorizontal},
		{"vertical", FlipVertical},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := patternGrid(t)

			once, err := tt.flip(in)
			if err != nil {
				t.Fatalf("first flip returned error: %v", err)
			}
			twice, err := tt.flip(once)
			if err != nil {
				t.Fatalf("second flip returned error: %v", err)
			}

			if !twice.Equal(in) {
				t.Error("flipping twice did not reproduce the original grid")
			}
		})
	}
}

func TestFlip_InputNotMutated(t *testing.T) {
	in := patternGrid(t)
	before := in.Clone()

	if _, err := FlipHorizontal(in); err != nil {
		t.Fatalf("FlipHorizontal() returned error: %v", err)
	}
	if _, err := FlipVertical(in); err != nil {
		t.Fatalf("FlipVertical() returned error: %v", err)
	}

	if !in.Equal(before) {
		t.Error("flip mutated its input")
	}
}

func TestFlip_CarriesMaxValue(t *testing.T) {
	in := mustGrid(t, 2, 2, 3)
	in.MaxValue = 100

	out, err := FlipHorizontal(in)
	if err != nil {
		t.Fatalf("FlipHorizontal() returned error: %v", err)
	}
	if out.MaxValue != 100 {
		t.Errorf("MaxValue = %d, want 100", out.MaxValue)
	}
}
