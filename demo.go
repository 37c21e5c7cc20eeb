package main

import (
	"fmt"
	"io"
	"path/filepath"

	"go.uber.org/zap"

	"pixproc/grid"
	"pixproc/logging"
	"pixproc/ppm"
	"pixproc/transform"
)

// demoPattern builds the 4x4 RGB sample pixmap the demo operates on: primaries
// and white in row 0, secondaries and gray in row 1, then mixed tones.
func demoPattern() *grid.Grid {
	// Construction cannot fail for fixed positive dimensions.
	g, _ := grid.New(4, 4)

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

// demoStep pairs a transform with its display name and output file.
type demoStep struct {
	name  string
	file  string
	apply func(*grid.Grid) (*grid.Grid, error)
}

// demoSteps returns the full transform sequence with the configured
// adjustment parameters bound in.
func demoSteps(cfg *Config) []demoStep {
	return []demoStep{
		{"grayscale", "gray_image.ppm", transform.Grayscale},
		{"flip horizontal", "flipped_horizontal.ppm", transform.FlipHorizontal},
		{"flip vertical", "flipped_vertical.ppm", transform.FlipVertical},
		{"brightness", "bright_image.ppm", func(g *grid.Grid) (*grid.Grid, error) {
			return transform.Brightness(g, cfg.BrightnessDelta)
		}},
		{"contrast", "contrast_image.ppm", func(g *grid.Grid) (*grid.Grid, error) {
			return transform.Contrast(g, cfg.ContrastFactor)
		}},
		{"blur", "blurred_image.ppm", transform.Blur},
		{"rotate 90", "rotated90_image.ppm", transform.Rotate90},
	}
}

// runDemo writes the sample pixmap, reloads it through the format adapter,
// applies every transform to the loaded grid, and saves and prints each
// result. Console output goes to w so tests can capture it.
func runDemo(cfg *Config, logger *logging.Logger, w io.Writer) error {
	sourcePath := filepath.Join(cfg.OutputDir, "test_image.ppm")

	pattern := demoPattern()
	if err := ppm.WriteFile(sourcePath, pattern); err != nil {
		return err
	}
	logger.Info("demo pixmap written", zap.String("path", sourcePath))
	dumpGrid(w, "original", pattern)
	fmt.Fprintln(w)

	// Round-trip through the text format, as the reference does.
	input, err := ppm.ReadFile(sourcePath)
	if err != nil {
		return err
	}

	for _, step := range demoSteps(cfg) {
		result, err := step.apply(input)
		if err != nil {
			return fmt.Errorf("%s: %w", step.name, err)
		}

		outPath := filepath.Join(cfg.OutputDir, step.file)
		if err := ppm.WriteFile(outPath, result); err != nil {
			return err
		}

		logger.Info("transform completed",
			zap.String("op", step.name),
			zap.String("path", outPath),
			zap.Int("width", result.Width),
			zap.Int("height", result.Height),
			zap.Int("channels", result.Channels),
		)

		printStepDone(w, step.name, outPath)
		dumpGrid(w, step.name, result)
		fmt.Fprintln(w)
	}

	return nil
}
