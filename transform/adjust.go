package transform

import "pixproc/grid"

// contrastPivot is the mid-gray value contrast scaling pivots around.
const contrastPivot = 128.0

// Brightness adds delta to every sample and clamps the result to [0, 255].
// A delta of 0 reproduces the input exactly.
// This is a pure function: the input grid is not modified.
func Brightness(in *grid.Grid, delta int) (*grid.Grid, error) {
	if err := validate(in); err != nil {
		return nil, err
	}

	out, err := newOutput(in.Width, in.Height, in.Channels, in.MaxValue)
	if err != nil {
		return nil, err
	}

	for i, v := range in.Pix {
		out.Pix[i] = clamp(v + delta)
	}

	return out, nil
}

// Contrast scales every sample's distance from mid-gray 128 by factor:
// out = factor*(v-128) + 128, computed in floating point, clamped to [0, 255],
// and truncated toward zero on store. A factor of 1.0 reproduces the input
// exactly; factors above 1 increase contrast, factors in (0, 1) flatten it.
// This is a pure function: the input grid is not modified.
func Contrast(in *grid.Grid, factor float64) (*grid.Grid, error) {
	if err := validate(in); err != nil {
		return nil, err
	}

	out, err := newOutput(in.Width, in.Height, in.Channels, in.MaxValue)
	if err != nil {
		return nil, err
	}

	for i, v := range in.Pix {
		adjusted := factor*(float64(v)-contrastPivot) + contrastPivot
		out.Pix[i] = int(clampf(adjusted))
	}

	return out, nil
}
