package transform

import "pixproc/grid"

// Rotate90 rotates the grid 90 degrees clockwise. The output's width is the
// input's height and vice versa; the sample at (row, col) moves to
// (col, height-1-row). Four applications yield the original grid.
// This is a pure function: the input grid is not modified.
func Rotate90(in *grid.Grid) (*grid.Grid, error) {
	if err := validate(in); err != nil {
		return nil, err
	}

	out, err := newOutput(in.Height, in.Width, in.Channels, in.MaxValue)
	if err != nil {
		return nil, err
	}

	for row := 0; row < in.Height; row++ {
		for col := 0; col < in.Width; col++ {
			for ch := 0; ch < in.Channels; ch++ {
				out.Set(col, in.Height-1-row, ch, in.At(row, col, ch))
			}
		}
	}

	return out, nil
}
