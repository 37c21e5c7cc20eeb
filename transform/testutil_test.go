package transform

import (
	"testing"

	"pixproc/grid"
)

// mustGrid constructs a grid or fails the test.
func mustGrid(t *testing.T, width, height, channels int) *grid.Grid {
	t.Helper()
	g, err := grid.NewWithChannels(width, height, channels)
	if err != nil {
		t.Fatalf("NewWithChannels(%d, %d, %d) returned error: %v", width, height, channels, err)
	}
	return g
}

// patternGrid builds the 4x4 RGB pattern used across transform tests.
// Row 0 is red, green, blue, white; the rest is a gradient of mixed colors.
func patternGrid(t *testing.T) *grid.Grid {
	t.Helper()
	g := mustGrid(t, 4, 4, 3)

	pixels := [4][4][3]int{
		{{255, 0, 0}, {0, 255, 0}, {0, 0, 255}, {255, 255, 255}},
		{{255, 255, 0}, {255, 0, 255}, {0, 255, 255}, {128, 128, 128}},
		{{255, 128, 0}, {128, 255, 0}, {128, 0, 255}, {255, 128, 128}},
		{{128, 255, 128}, {128, 128, 255}, {255, 255, 128}, {0, 0, 0}},
	}

	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			for ch := 0; ch < 3; ch++ {
				g.Set(row, col, ch, pixels[row][col][ch])
			}
		}
	}

	return g
}

// fillGradient fills a grid with a deterministic per-index gradient.
func fillGradient(g *grid.Grid) {
	for i := range g.Pix {
		g.Pix[i] = (i * 7) % 256
	}
}
