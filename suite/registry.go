package suite

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/cwbudde/algo-kernels/internal/imageio"
	"github.com/cwbudde/algo-kernels/kernels/blur"
	"github.com/cwbudde/algo-kernels/kernels/butterfly"
	"github.com/cwbudde/algo-kernels/kernels/kmeans"
	"github.com/cwbudde/algo-kernels/kernels/linalg"
	"github.com/cwbudde/algo-kernels/kernels/mergesort"
	"github.com/cwbudde/algo-kernels/kernels/micro"
	"github.com/cwbudde/algo-kernels/kernels/pixel"
	"github.com/cwbudde/algo-kernels/kernels/sieve"
)

// ErrUnknownBenchmark is returned by Select for names not in the registry.
var ErrUnknownBenchmark = errors.New("suite: unknown benchmark")

// Benchmark is one named, self-contained workload. Run executes the kernel
// once on freshly prepared input and returns a checksum of its output.
type Benchmark struct {
	Name     string
	Workload string
	Bytes    int64 // input bytes processed per run, 0 if not meaningful
	Run      func() (float64, error)
}

// Sizes holds the workload parameters of every registered benchmark.
type Sizes struct {
	MandelbrotWidth  int
	MandelbrotHeight int
	MandelbrotIter   int
	Matrix           int
	FFT              int
	Iteration        int
	Vector           int
	Memory           int
	Primes           int
	Fibonacci        uint
	Sort             int
	KMeansPoints     int
	KMeansK          int
	KMeansIterations int
	DataIterations   int

	// Image feeds the blur and grayscale benchmarks.
	Image imageio.Image
}

// DefaultSizes returns the standard workload sizes.
func DefaultSizes() Sizes {
	return Sizes{
		MandelbrotWidth:  512,
		MandelbrotHeight: 512,
		MandelbrotIter:   100,
		Matrix:           128,
		FFT:              1024,
		Iteration:        1_000_000,
		Vector:           1_000_000,
		Memory:           10_000_000,
		Primes:           100_000,
		Fibonacci:        30,
		Sort:             100_000,
		KMeansPoints:     10_000,
		KMeansK:          8,
		KMeansIterations: 20,
		DataIterations:   100,
		Image:            imageio.Synthetic(512, 512),
	}
}

// QuickSizes returns small workloads suitable for smoke tests.
func QuickSizes() Sizes {
	return Sizes{
		MandelbrotWidth:  32,
		MandelbrotHeight: 32,
		MandelbrotIter:   20,
		Matrix:           8,
		FFT:              64,
		Iteration:        1000,
		Vector:           1000,
		Memory:           4096,
		Primes:           1000,
		Fibonacci:        30,
		Sort:             500,
		KMeansPoints:     200,
		KMeansK:          4,
		KMeansIterations: 3,
		DataIterations:   2,
		Image:            imageio.Synthetic(24, 16),
	}
}

// Benchmarks returns the full registry for the given sizes, in display order.
func Benchmarks(s Sizes) []Benchmark {
	img := s.Image
	return []Benchmark{
		{
			Name:     "mandelbrot",
			Workload: fmt.Sprintf("%dx%d, %d iterations", s.MandelbrotWidth, s.MandelbrotHeight, s.MandelbrotIter),
			Run: func() (float64, error) {
				out, err := pixel.Mandelbrot(s.MandelbrotWidth, s.MandelbrotHeight, s.MandelbrotIter)
				return sumBytes(out), err
			},
		},
		{
			Name:     "matrix",
			Workload: fmt.Sprintf("%dx%d", s.Matrix, s.Matrix),
			Bytes:    int64(2 * s.Matrix * s.Matrix * 8),
			Run: func() (float64, error) {
				out, err := linalg.Benchmark(s.Matrix)
				return sumFloats(out), err
			},
		},
		{
			Name:     "fft",
			Workload: fmt.Sprintf("%d points", s.FFT),
			Bytes:    int64(s.FFT * 8),
			Run: func() (float64, error) {
				out, err := butterfly.Simulate[float32](s.FFT)
				return sumFloats(out), err
			},
		},
		{
			Name:     "iteration",
			Workload: fmt.Sprintf("%d elements", s.Iteration),
			Bytes:    int64(s.Iteration * 8),
			Run: func() (float64, error) {
				return micro.ArrayIteration(s.Iteration)
			},
		},
		{
			Name:     "vector",
			Workload: fmt.Sprintf("%d elements", s.Vector),
			Bytes:    int64(s.Vector * 8),
			Run: func() (float64, error) {
				return micro.VectorOps(s.Vector)
			},
		},
		{
			Name:     "memory",
			Workload: fmt.Sprintf("%d bytes", s.Memory),
			Bytes:    int64(s.Memory),
			Run: func() (float64, error) {
				sum, err := micro.MemoryChecksum(s.Memory)
				return float64(sum), err
			},
		},
		{
			Name:     "primes",
			Workload: fmt.Sprintf("limit %d", s.Primes),
			Bytes:    int64(s.Primes),
			Run: func() (float64, error) {
				flags, err := sieve.Generate(s.Primes)
				return float64(sieve.Count(flags)), err
			},
		},
		{
			Name:     "fib",
			Workload: fmt.Sprintf("n=%d", s.Fibonacci),
			Run: func() (float64, error) {
				return float64(micro.Fibonacci(s.Fibonacci)), nil
			},
		},
		{
			Name:     "sort",
			Workload: fmt.Sprintf("%d integers", s.Sort),
			Bytes:    int64(s.Sort * 8),
			Run: func() (float64, error) {
				out := mergesort.Sort(sortInput(s.Sort))
				if len(out) == 0 {
					return 0, nil
				}
				return float64(out[0]) + float64(out[len(out)-1]), nil
			},
		},
		{
			Name: "kmeans",
			Workload: fmt.Sprintf("%d points, k=%d, %d iterations",
				s.KMeansPoints, s.KMeansK, s.KMeansIterations),
			Bytes: int64(s.KMeansPoints * 16),
			Run: func() (float64, error) {
				out, err := kmeans.Cluster(kmeansInput(s.KMeansPoints), s.KMeansK, s.KMeansIterations)
				return sumFloats(out), err
			},
		},
		{
			Name:     "blur",
			Workload: fmt.Sprintf("%dx%d RGBA", img.Width, img.Height),
			Bytes:    int64(len(img.Pixels)),
			Run: func() (float64, error) {
				out, err := blur.Gaussian(img.Pixels, img.Width, img.Height)
				return sumBytes(out), err
			},
		},
		{
			Name:     "grayscale",
			Workload: fmt.Sprintf("%dx%d RGBA", img.Width, img.Height),
			Bytes:    int64(len(img.Pixels)),
			Run: func() (float64, error) {
				out, err := pixel.Grayscale(img.Pixels)
				return sumBytes(out), err
			},
		},
		{
			Name:     "data",
			Workload: fmt.Sprintf("%d rounds over %d values", s.DataIterations, micro.DataLen),
			Run: func() (float64, error) {
				out, err := micro.DataProcessing(s.DataIterations)
				sum := 0.0
				for _, v := range out {
					sum += float64(v)
				}
				return sum, err
			},
		},
	}
}

// Names returns the benchmark names in list, sorted.
func Names(list []Benchmark) []string {
	names := make([]string, len(list))
	for i, b := range list {
		names[i] = b.Name
	}
	sort.Strings(names)
	return names
}

// Select returns the benchmarks matching names, in the order given. With no
// names the whole list is returned.
func Select(list []Benchmark, names ...string) ([]Benchmark, error) {
	if len(names) == 0 {
		return list, nil
	}

	byName := make(map[string]Benchmark, len(list))
	for _, b := range list {
		byName[b.Name] = b
	}

	out := make([]Benchmark, 0, len(names))
	for _, name := range names {
		b, ok := byName[strings.ToLower(strings.TrimSpace(name))]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownBenchmark, name)
		}
		out = append(out, b)
	}
	return out, nil
}

// sortInput is a deterministic pseudo-random permutation-like sequence.
func sortInput(n int) []int {
	out := make([]int, n)
	x := uint32(2463534242)
	for i := range out {
		x ^= x << 13
		x ^= x >> 17
		x ^= x << 5
		out[i] = int(int32(x))
	}
	return out
}

// kmeansInput spreads n points over a ring of eight blobs.
func kmeansInput(n int) []float64 {
	out := make([]float64, 2*n)
	for i := range n {
		blob := float64(i % 8)
		jitter := float64((i*37)%101)/101 - 0.5
		out[2*i] = 100*blob + jitter
		out[2*i+1] = 50*float64(i%3) - jitter
	}
	return out
}

func sumBytes(b []uint8) float64 {
	var sum uint64
	for _, v := range b {
		sum += uint64(v)
	}
	return float64(sum)
}

func sumFloats[T float32 | float64](v []T) float64 {
	sum := 0.0
	for _, x := range v {
		sum += float64(x)
	}
	return sum
}
