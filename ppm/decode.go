package ppm

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"

	"pixproc/grid"
)

// tokenReader yields whitespace-separated tokens from a pixmap stream.
type tokenReader struct {
	scanner *bufio.Scanner
}

func newTokenReader(r io.Reader) *tokenReader {
	s := bufio.NewScanner(r)
	s.Split(bufio.ScanWords)
	return &tokenReader{scanner: s}
}

// next returns the next token, or ErrTruncated when the stream is exhausted.
func (t *tokenReader) next() (string, error) {
	if !t.scanner.Scan() {
		if err := t.scanner.Err(); err != nil {
			return "", fmt.Errorf("ppm: read failed: %w", err)
		}
		return "", ErrTruncated
	}
	return t.scanner.Text(), nil
}

// nextInt returns the next token parsed as an integer.
func (t *tokenReader) nextInt() (int, error) {
	tok, err := t.next()
	if err != nil {
		return 0, err
	}
	v, err := strconv.Atoi(tok)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrSyntax, tok)
	}
	return v, nil
}

// Decode reads a P3 pixmap into a three-channel grid.
//
// The header must carry the "P3" tag followed by width, height, and the
// maximum sample value; exactly width*height*3 samples must follow, R, G, B
// per pixel in row-major order. Returns ErrBadMagic for a wrong tag,
// ErrSyntax for non-integer tokens, ErrTruncated when tokens run out, and
// a grid.ErrInvalidDimensions wrap for a degenerate header.
func Decode(r io.Reader) (*grid.Grid, error) {
	tr := newTokenReader(r)

	tag, err := tr.next()
	if err != nil {
		return nil, err
	}
	if tag != magic {
		return nil, fmt.Errorf("%w: tag %q", ErrBadMagic, tag)
	}

	width, err := tr.nextInt()
	if err != nil {
		return nil, err
	}
	height, err := tr.nextInt()
	if err != nil {
		return nil, err
	}
	maxValue, err := tr.nextInt()
	if err != nil {
		return nil, err
	}

	g, err := grid.NewWithChannels(width, height, 3)
	if err != nil {
		return nil, err
	}
	g.MaxValue = maxValue

	for i := range g.Pix {
		v, err := tr.nextInt()
		if err != nil {
			return nil, err
		}
		g.Pix[i] = v
	}

	return g, nil
}

// ReadFile decodes the P3 pixmap stored at path.
func ReadFile(path string) (*grid.Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("ppm: open %s: %w", path, err)
	}
	defer f.Close()

	g, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("ppm: decode %s: %w", path, err)
	}
	return g, nil
}
