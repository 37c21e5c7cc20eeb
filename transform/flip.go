package transform

import "pixproc/grid"

// FlipHorizontal mirrors the grid left to right: the sample at (row, col)
// moves to (row, width-1-col). Applying it twice yields the original grid.
// This is a pure function: the input grid is not modified.
func FlipHorizontal(in *grid.Grid) (*grid.Grid, error) {
	if err := validate(in); err != nil {
		return nil, err
	}

	out, err := newOutput(in.Width, in.Height, in.Channels, in.MaxValue)
	if err != nil {
		return nil, err
	}

	for row := 0; row < in.Height; row++ {
		for col := 0; col < in.Width; col++ {
			for ch := 0; ch < in.Channels; ch++ {
				out.Set(row, in.Width-1-col, ch, in.At(row, col, ch))
			}
		}
	}

	return out, nil
}

// FlipVertical mirrors the grid top to bottom: the sample at (row, col) moves
// to (height-1-row, col). Applying it twice yields the original grid.
// This is a pure function: the input grid is not modified.
func FlipVertical(in *grid.Grid) (*grid.Grid, error) {
	if err := validate(in); err != nil {
		return nil, err
	}

	out, err := newOutput(in.Width, in.Height, in.Channels, in.MaxValue)
	if err != nil {
		return nil, err
	}

	for row := 0; row < in.Height; row++ {
		for col := 0; col < in.Width; col++ {
			for ch := 0; ch < in.Channels; ch++ {
				out.Set(in.Height-1-row, col, ch, in.At(row, col, ch))
			}
		}
	}

	return out, nil
}
