package transform

import "pixproc/grid"

// ITU-R BT.601 luma weights.
const (
	lumaRed   = 0.299
	lumaGreen = 0.587
	lumaBlue  = 0.114
)

// Grayscale converts an RGB grid to a single-channel grid using the luminance
// formula gray = 0.299*R + 0.587*G + 0.114*B, computed in floating point and
// truncated toward zero on store (not rounded). Channels 0, 1, 2 of the input
// are read as R, G, B; returns ErrNotRGB for grids with fewer than 3 channels.
// This is a pure function: the input grid is not modified.
func Grayscale(in *grid.Grid) (*grid.Grid, error) {
	if err := validate(in); err != nil {
		return nil, err
	}
	if in.Channels < 3 {
		return nil, ErrNotRGB
	}

	out, err := newOutput(in.Width, in.Height, 1, in.MaxValue)
	if err != nil {
		return nil, err
	}

	for row := 0; row < in.Height; row++ {
		for col := 0; col < in.Width; col++ {
			r := in.At(row, col, 0)
			g := in.At(row, col, 1)
			b := in.At(row, col, 2)

			gray := int(lumaRed*float64(r) + lumaGreen*float64(g) + lumaBlue*float64(b))
			out.Set(row, col, 0, gray)
		}
	}

	return out, nil
}
