// Package ppm reads and writes the plain-text P3 pixmap format: an ASCII
// "P3" tag followed by width, height, and the maximum sample value, then
// width*height pixels of whitespace-separated R, G, B integers in row-major
// order.
//
// The adapter is a thin boundary around grid.Grid - raw pixel triples in,
// raw pixel triples out. No compressed or binary encodings are supported.
package ppm

import "errors"

// magic is the two-character format tag of a plain-text pixmap.
const magic = "P3"

// Decode errors. Decode failures abort the pipeline for that image; callers
// must not substitute a default grid.
var (
	// ErrBadMagic is returned when the input does not start with the P3 tag.
	ErrBadMagic = errors.New("ppm: not a P3 pixmap")

	// ErrSyntax is returned when a header or sample token is not an integer.
	ErrSyntax = errors.New("ppm: malformed integer token")

	// ErrTruncated is returned when the input ends before all expected
	// header fields or samples have been read.
	ErrTruncated = errors.New("ppm: unexpected end of input")
)

// ErrBadDepth is returned by Encode for grids that are neither single-channel
// grayscale nor three-channel RGB.
var ErrBadDepth = errors.New("ppm: unsupported channel depth")
