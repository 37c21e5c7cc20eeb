package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"

	"pixproc/grid"
)

// dumpGrid prints a small grid to w, one row per line with each pixel as a
// channel tuple, matching the reference console format.
func dumpGrid(w io.Writer, title string, g *grid.Grid) {
	header := color.New(color.FgCyan, color.Bold)
	header.Fprintf(w, "%s %dx%d (%d channels):\n", title, g.Width, g.Height, g.Channels)

	for row := 0; row < g.Height; row++ {
		for col := 0; col < g.Width; col++ {
			samples := make([]string, g.Channels)
			for ch := 0; ch < g.Channels; ch++ {
				samples[ch] = strconv.Itoa(g.At(row, col, ch))
			}
			fmt.Fprintf(w, "(%s) ", strings.Join(samples, ","))
		}
		fmt.Fprintln(w)
	}
}

// printStepDone prints a green check line for a completed demo step.
func printStepDone(w io.Writer, name, path string) {
	color.New(color.FgGreen).Fprintf(w, "  ✓ %s", name)
	color.New(color.FgHiBlack).Fprintf(w, " -> %s\n", path)
}
