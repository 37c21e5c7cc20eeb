package grid

import (
	"errors"
	"fmt"
)

// ErrInvalidDimensions is returned when a grid would be constructed with a
// zero or negative width, height, or channel count.
var ErrInvalidDimensions = errors.New("grid: invalid dimensions")

// BoundsError describes an out-of-range (row, col, channel) access.
// It is delivered by panic from At and Set: indexing outside the grid is a
// programming error, not a recoverable condition.
type BoundsError struct {
	// Row, Col, Channel are the offending indices.
	Row, Col, Channel int

	// Height, Width, Channels are the dimensions of the grid being accessed.
	Height, Width, Channels int
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("grid: index (%d, %d, %d) out of range for %dx%dx%d grid",
		e.Row, e.Col, e.Channel, e.Height, e.Width, e.Channels)
}
