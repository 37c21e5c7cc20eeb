package transform

import "pixproc/grid"

// blurKernelSize is the number of samples averaged per output sample.
const blurKernelSize = 9

// Blur applies a 3x3 box blur to the interior of the grid: every pixel with a
// full 3x3 neighborhood (row in [1, height-2], col in [1, width-2]) becomes
// the floor of its neighborhood average, per channel.
//
// Border pixels have no full neighborhood and keep the output grid's zero
// initialization. No edge replication or clamped-neighborhood fallback is
// applied; grids narrower or shorter than 3 therefore come back entirely zero.
// This is a pure function: the input grid is not modified.
func Blur(in *grid.Grid) (*grid.Grid, error) {
	if err := validate(in); err != nil {
		return nil, err
	}

	out, err := newOutput(in.Width, in.Height, in.Channels, in.MaxValue)
	if err != nil {
		return nil, err
	}

	for row := 1; row < in.Height-1; row++ {
		for col := 1; col < in.Width-1; col++ {
			for ch := 0; ch < in.Channels; ch++ {
				sum := 0
				for dr := -1; dr <= 1; dr++ {
					for dc := -1; dc <= 1; dc++ {
						sum += in.At(row+dr, col+dc, ch)
					}
				}
				out.Set(row, col, ch, sum/blurKernelSize)
			}
		}
	}

	return out, nil
}
