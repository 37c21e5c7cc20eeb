// Package transform implements the pure per-pixel and local-neighborhood
// operations over grid.Grid values: grayscale conversion, flips, brightness
// and contrast adjustment, 3x3 box blur, and 90-degree rotation.
//
// Every transform allocates and returns a fresh output grid; inputs are never
// mutated, so independent transforms may run concurrently against the same
// read-only grid. Output samples are clamped to the 8-bit range [0, 255].
package transform

import (
	"errors"
	"fmt"

	"pixproc/grid"
)

// ErrNotRGB is returned by Grayscale when the input has fewer than three
// channels to read R, G, B from.
var ErrNotRGB = errors.New("transform: input grid has no RGB channels")

// validate rejects nil or degenerate input grids.
// Well-formed grids cannot fail any transform; only a zero-value Grid literal
// (never produced by the grid constructors) can trip this.
func validate(in *grid.Grid) error {
	if in == nil || in.Width < 1 || in.Height < 1 || in.Channels < 1 {
		return fmt.Errorf("%w: transform input", grid.ErrInvalidDimensions)
	}
	return nil
}

// newOutput allocates the output grid for a transform, carrying the input's
// MaxValue across.
func newOutput(width, height, channels, maxValue int) (*grid.Grid, error) {
	out, err := grid.NewWithChannels(width, height, channels)
	if err != nil {
		return nil, err
	}
	out.MaxValue = maxValue
	return out, nil
}
