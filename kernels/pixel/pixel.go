// Package pixel holds the per-pixel image kernels: luminance grayscale over
// an RGBA buffer and Mandelbrot escape-time rendering.
//
// Both kernels use float32 arithmetic throughout.
package pixel

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-kernels/kernels/layout"
)

// ErrIterations is returned when the Mandelbrot iteration cap is below one.
var ErrIterations = errors.New("pixel: max iterations must be positive")

// Luminance weights for the grayscale conversion.
const (
	WeightR float32 = 0.299
	WeightG float32 = 0.587
	WeightB float32 = 0.114
)

// Grayscale returns a copy of the RGBA buffer with R, G and B replaced by
// round(0.299R + 0.587G + 0.114B). Alpha is copied unchanged.
func Grayscale(pixels []uint8) ([]uint8, error) {
	if _, err := layout.PixelCount(pixels); err != nil {
		return nil, fmt.Errorf("pixel: %w", err)
	}

	out := make([]uint8, len(pixels))
	for i := 0; i < len(pixels); i += layout.Channels {
		r := float32(pixels[i])
		g := float32(pixels[i+1])
		b := float32(pixels[i+2])
		gray := uint8(math.Round(float64(WeightR*r + WeightG*g + WeightB*b)))

		out[i] = gray
		out[i+1] = gray
		out[i+2] = gray
		out[i+3] = pixels[i+3]
	}
	return out, nil
}

// Mandelbrot renders a width×height escape-time image, one byte per pixel in
// row-major order. Pixel (x, y) samples c = (3.5x/width - 2.5) +
// (2y/height - 1)i and stores floor(255 * iterations/maxIter), so points
// that never escape are 255.
func Mandelbrot(width, height, maxIter int) ([]uint8, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("pixel: %w: %dx%d", layout.ErrDimensions, width, height)
	}
	if maxIter < 1 {
		return nil, fmt.Errorf("%w: %d", ErrIterations, maxIter)
	}

	out := make([]uint8, width*height)
	for y := range height {
		ci := float32(y)/float32(height)*2 - 1
		for x := range width {
			cr := float32(x)/float32(width)*3.5 - 2.5
			out[y*width+x] = uint8(float32(escape(cr, ci, maxIter)) / float32(maxIter) * 255)
		}
	}
	return out, nil
}

// escape returns the number of iterations before |z| reaches 2, capped at
// maxIter.
func escape(cr, ci float32, maxIter int) int {
	var zr, zi float32
	n := 0
	for n < maxIter && zr*zr+zi*zi < 4 {
		zr, zi = zr*zr-zi*zi+cr, 2*zr*zi+ci
		n++
	}
	return n
}
