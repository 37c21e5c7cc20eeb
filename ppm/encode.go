package ppm

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"

	"pixproc/grid"
)

// Encode writes a grid as a P3 pixmap: the tag, width and height, and the
// maximum sample value each on their own line, then one line per pixel row
// with three space-separated samples per pixel.
//
// Single-channel grids are written with their sample replicated into all
// three output slots, so grayscale results stay viewable as plain pixmaps.
// Grids with a channel depth other than 1 or 3 return ErrBadDepth.
func Encode(w io.Writer, g *grid.Grid) error {
	if g == nil || g.Width < 1 || g.Height < 1 {
		return fmt.Errorf("%w: encode input", grid.ErrInvalidDimensions)
	}
	if g.Channels != 1 && g.Channels != 3 {
		return fmt.Errorf("%w: %d channels", ErrBadDepth, g.Channels)
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%s\n%d %d\n%d\n", magic, g.Width, g.Height, g.MaxValue)

	for row := 0; row < g.Height; row++ {
		for col := 0; col < g.Width; col++ {
			if g.Channels == 1 {
				v := strconv.Itoa(g.At(row, col, 0))
				bw.WriteString(v + " " + v + " " + v + " ")
			} else {
				for ch := 0; ch < 3; ch++ {
					bw.WriteString(strconv.Itoa(g.At(row, col, ch)) + " ")
				}
			}
		}
		bw.WriteByte('\n')
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("ppm: write failed: %w", err)
	}
	return nil
}

// WriteFile encodes the grid to a P3 pixmap file at path, creating or
// truncating it.
func WriteFile(path string, g *grid.Grid) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("ppm: create %s: %w", path, err)
	}

	if err := Encode(f, g); err != nil {
		f.Close()
		return fmt.Errorf("ppm: encode %s: %w", path, err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("ppm: close %s: %w", path, err)
	}
	return nil
}
