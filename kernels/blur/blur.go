// Package blur applies a fixed 3×3 Gaussian convolution to RGBA images.
//
// Only the red channel is sampled. Each interior pixel receives the
// weighted sum of its 3×3 red neighbourhood, rounded half away from zero,
// in all three colour channels, and an alpha of 255. Pixels on the first
// or last row or column are not computed and stay zero (fully transparent):
// the kernel neither wraps nor clamps at the edges.
package blur

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-kernels/kernels/layout"
)

// weights holds the normalised 3×3 Gaussian weights, indexed [row][col].
// They sum to 1 and are exact multiples of 1/16.
var weights = [3][3]float64{
	{1.0 / 16, 2.0 / 16, 1.0 / 16},
	{2.0 / 16, 4.0 / 16, 2.0 / 16},
	{1.0 / 16, 2.0 / 16, 1.0 / 16},
}

// Kernel returns a copy of the 3×3 weights applied by [Gaussian].
func Kernel() [3][3]float64 {
	return weights
}

// Gaussian returns a new buffer holding the blurred image. pixels must hold
// exactly width*height RGBA pixels. Images narrower or shorter than three
// pixels have no interior and produce an all-zero buffer.
func Gaussian(pixels []uint8, width, height int) ([]uint8, error) {
	if err := layout.CheckPixels(pixels, width, height); err != nil {
		return nil, fmt.Errorf("blur: %w", err)
	}

	out := make([]uint8, len(pixels))
	if width < 3 || height < 3 {
		return out, nil
	}

	red := make([]float64, width*height)
	layout.Channel(red, pixels, 0)

	// Row-wise accumulation over the interior columns 1..width-2. For a
	// source row r, r[0:inner], r[1:width-1] and r[2:width] are the left,
	// centre and right neighbours of every interior column.
	inner := width - 2
	acc := make([]float64, inner)
	tmp := make([]float64, inner)

	for y := 1; y < height-1; y++ {
		clear(acc)

		for ky := range 3 {
			row := red[(y+ky-1)*width : (y+ky)*width]
			for kx, w := range weights[ky] {
				vecmath.ScaleBlock(tmp, row[kx:kx+inner], w)
				vecmath.AddBlockInPlace(acc, tmp)
			}
		}

		for x := 1; x < width-1; x++ {
			v := uint8(math.Round(acc[x-1]))
			o := layout.PixelOffset(x, y, width)
			out[o] = v
			out[o+1] = v
			out[o+2] = v
			out[o+3] = 255
		}
	}

	return out, nil
}
