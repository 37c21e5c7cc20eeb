// Package grid provides the in-memory raster model: a dense, exclusively-owned
// buffer of integer samples addressed by (row, column, channel).
//
// Samples are stored in a single flat slice in row-major, channel-interleaved
// order, so index arithmetic is (row*width + col)*channels + channel. The grid
// never clamps on write - value-range policy belongs to the transforms that
// produce the samples.
package grid

import "fmt"

// Default attribute values for newly constructed grids.
const (
	// DefaultChannels is the channel depth used when none is specified (RGB).
	DefaultChannels = 3

	// DefaultMaxValue is the maximum representable sample for 8-bit depth.
	DefaultMaxValue = 255
)

// Grid is a dense height x width x channels buffer of integer samples.
//
// Every Grid is an independent value: methods that change shape return a new
// Grid, and transforms over grids allocate their own output. Pix always holds
// exactly Height*Width*Channels samples.
type Grid struct {
	// Width is the number of columns. Always >= 1.
	Width int

	// Height is the number of rows. Always >= 1.
	Height int

	// Channels is the number of samples per pixel (1 grayscale, 3 RGB). Always >= 1.
	Channels int

	// MaxValue is the maximum representable sample value, typically 255.
	MaxValue int

	// Pix holds the samples in row-major, channel-interleaved order.
	Pix []int
}

// New constructs a zero-filled grid with the default channel depth (3).
// Returns ErrInvalidDimensions if width or height is less than 1.
func New(width, height int) (*Grid, error) {
	return NewWithChannels(width, height, DefaultChannels)
}

// NewWithChannels constructs a zero-filled grid with an explicit channel depth.
// MaxValue defaults to 255. Returns ErrInvalidDimensions if any dimension is
// less than 1.
func NewWithChannels(width, height, channels int) (*Grid, error) {
	if width < 1 || height < 1 || channels < 1 {
		return nil, fmt.Errorf("%w: %dx%dx%d", ErrInvalidDimensions, width, height, channels)
	}

	return &Grid{
		Width:    width,
		Height:   height,
		Channels: channels,
		MaxValue: DefaultMaxValue,
		Pix:      make([]int, height*width*channels),
	}, nil
}

// index computes the flat buffer offset for (row, col, ch).
// Callers must have validated the indices.
func (g *Grid) index(row, col, ch int) int {
	return (row*g.Width+col)*g.Channels + ch
}

// checkBounds panics with a *BoundsError if any index is outside the grid.
func (g *Grid) checkBounds(row, col, ch int) {
	if row < 0 || row >= g.Height || col < 0 || col >= g.Width || ch < 0 || ch >= g.Channels {
		panic(&BoundsError{
			Row: row, Col: col, Channel: ch,
			Height: g.Height, Width: g.Width, Channels: g.Channels,
		})
	}
}

// At returns the sample at (row, col, ch).
// Out-of-range indices are a programming error and panic with a *BoundsError,
// mirroring slice indexing; there is no silent wrapping or implicit growth.
func (g *Grid) At(row, col, ch int) int {
	g.checkBounds(row, col, ch)
	return g.Pix[g.index(row, col, ch)]
}

// Set stores a raw sample at (row, col, ch) without clamping; keeping values
// inside [0, MaxValue] is the producing transform's responsibility.
// Out-of-range indices panic with a *BoundsError.
func (g *Grid) Set(row, col, ch, value int) {
	g.checkBounds(row, col, ch)
	g.Pix[g.index(row, col, ch)] = value
}

// ResizeChannels returns a new grid with the requested channel depth.
// Samples in channels present in both grids are copied; channel slots that only
// exist in the new grid are zero. The receiver is not modified. Returns
// ErrInvalidDimensions if channels is less than 1.
func (g *Grid) ResizeChannels(channels int) (*Grid, error) {
	out, err := NewWithChannels(g.Width, g.Height, channels)
	if err != nil {
		return nil, err
	}
	out.MaxValue = g.MaxValue

	keep := g.Channels
	if channels < keep {
		keep = channels
	}

	for row := 0; row < g.Height; row++ {
		for col := 0; col < g.Width; col++ {
			for ch := 0; ch < keep; ch++ {
				out.Pix[out.index(row, col, ch)] = g.Pix[g.index(row, col, ch)]
			}
		}
	}

	return out, nil
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	out := &Grid{
		Width:    g.Width,
		Height:   g.Height,
		Channels: g.Channels,
		MaxValue: g.MaxValue,
		Pix:      make([]int, len(g.Pix)),
	}
	copy(out.Pix, g.Pix)
	return out
}

// Equal reports whether two grids have identical dimensions, MaxValue, and
// sample values. This is a pure function with no side effects.
func (g *Grid) Equal(other *Grid) bool {
	if g == nil || other == nil {
		return g == other
	}
	if g.Width != other.Width || g.Height != other.Height ||
		g.Channels != other.Channels || g.MaxValue != other.MaxValue {
		return false
	}
	for i, v := range g.Pix {
		if other.Pix[i] != v {
			return false
		}
	}
	return true
}
