package pixel

import (
	"testing"

	"github.com/cwbudde/algo-kernels/internal/testutil"
)

func BenchmarkGrayscale(b *testing.B) {
	img := testutil.NoiseImage(1, 1920, 1080)
	b.SetBytes(int64(len(img)))
	b.ResetTimer()

	for range b.N {
		_, _ = Grayscale(img)
	}
}

func BenchmarkMandelbrot(b *testing.B) {
	for range b.N {
		_, _ = Mandelbrot(512, 512, 100)
	}
}
