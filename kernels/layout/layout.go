package layout

import (
	"errors"
	"fmt"
)

// Channels is the number of bytes per RGBA pixel.
const Channels = 4

// Errors returned by layout validation.
var (
	ErrPixelLength    = errors.New("layout: pixel buffer length not a multiple of 4")
	ErrPointLength    = errors.New("layout: point buffer length not a multiple of 2")
	ErrDimensions     = errors.New("layout: non-positive image dimensions")
	ErrLengthMismatch = errors.New("layout: buffer length mismatch")
)

// Stride returns the byte distance between two rows of an RGBA image.
func Stride(width int) int {
	return width * Channels
}

// PixelOffset returns the index of the red byte of pixel (x, y).
func PixelOffset(x, y, width int) int {
	return (y*width + x) * Channels
}

// PixelCount returns the number of pixels packed in buf.
func PixelCount(buf []uint8) (int, error) {
	if len(buf)%Channels != 0 {
		return 0, ErrPixelLength
	}
	return len(buf) / Channels, nil
}

// CheckPixels verifies that buf holds exactly width*height RGBA pixels.
func CheckPixels(buf []uint8, width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrDimensions, width, height)
	}
	if len(buf) != width*height*Channels {
		return fmt.Errorf("%w: got %d bytes, want %d for %dx%d",
			ErrLengthMismatch, len(buf), width*height*Channels, width, height)
	}
	return nil
}

// PointCount returns the number of (x, y) pairs packed in buf.
func PointCount(buf []float64) (int, error) {
	if len(buf)%2 != 0 {
		return 0, ErrPointLength
	}
	return len(buf) / 2, nil
}

// Deinterleave splits an (x, y) point buffer into planar coordinate slices.
// xs and ys must each hold len(buf)/2 elements.
func Deinterleave(xs, ys, buf []float64) {
	for i := range xs {
		xs[i] = buf[2*i]
		ys[i] = buf[2*i+1]
	}
}

// Interleave packs planar coordinates into dst as (x, y) pairs.
// dst must hold 2*len(xs) elements.
func Interleave(dst, xs, ys []float64) {
	for i := range xs {
		dst[2*i] = xs[i]
		dst[2*i+1] = ys[i]
	}
}

// Channel copies one byte channel (0=R, 1=G, 2=B, 3=A) of an RGBA buffer
// into dst as float64, one value per pixel.
func Channel(dst []float64, buf []uint8, channel int) {
	for i := range dst {
		dst[i] = float64(buf[i*Channels+channel])
	}
}
