package pixel

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-kernels/internal/testutil"
	"github.com/cwbudde/algo-kernels/kernels/layout"
)

func TestGrayscaleGrayIsIdentity(t *testing.T) {
	for _, v := range []uint8{0, 1, 77, 128, 254, 255} {
		in := []uint8{v, v, v, 42}
		out, err := Grayscale(in)
		require.NoError(t, err)
		require.Equal(t, []uint8{v, v, v, 42}, out)
	}
}

func TestGrayscalePrimaries(t *testing.T) {
	in := []uint8{
		255, 0, 0, 255,
		0, 255, 0, 128,
		0, 0, 255, 0,
	}
	out, err := Grayscale(in)
	require.NoError(t, err)
	require.Equal(t, []uint8{
		76, 76, 76, 255,
		150, 150, 150, 128,
		29, 29, 29, 0,
	}, out)
}

func TestGrayscaleDoesNotModifyInput(t *testing.T) {
	img := testutil.NoiseImage(1, 4, 4)
	orig := append([]uint8(nil), img...)
	_, err := Grayscale(img)
	require.NoError(t, err)
	require.Equal(t, orig, img)
}

func TestGrayscaleBadLength(t *testing.T) {
	_, err := Grayscale(make([]uint8, 7))
	if !errors.Is(err, layout.ErrPixelLength) {
		t.Fatalf("err = %v, want ErrPixelLength", err)
	}

	out, err := Grayscale(nil)
	require.NoError(t, err)
	require.Empty(t, out)
}

func TestMandelbrot(t *testing.T) {
	// Width 7, height 2 puts pixel (5, 1) at c = 0, which never escapes.
	out, err := Mandelbrot(7, 2, 100)
	require.NoError(t, err)
	require.Len(t, out, 14)
	require.Equal(t, uint8(255), out[1*7+5])

	// c = -2.5 - i escapes after the first step: floor(255/100) = 2.
	require.Equal(t, uint8(2), out[0])
}

func TestMandelbrotValidation(t *testing.T) {
	_, err := Mandelbrot(0, 4, 10)
	require.ErrorIs(t, err, layout.ErrDimensions)

	_, err = Mandelbrot(4, 4, 0)
	require.ErrorIs(t, err, ErrIterations)
}
