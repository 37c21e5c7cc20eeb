package transform

// Samples are clamped to the literal 8-bit range, not to the grid's MaxValue.
// This matches the reference outputs; see DESIGN.md for the open question on
// generalizing to other bit depths.
const (
	clampMin = 0
	clampMax = 255
)

// clamp limits an integer sample to [0, 255].
// This is a pure function with no side effects.
func clamp(v int) int {
	if v < clampMin {
		return clampMin
	}
	if v > clampMax {
		return clampMax
	}
	return v
}

// clampf limits a float sample to [0, 255] before truncation to int.
// This is a pure function with no side effects.
func clampf(v float64) float64 {
	if v < clampMin {
		return clampMin
	}
	if v > clampMax {
		return clampMax
	}
	return v
}
