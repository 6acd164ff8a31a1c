package suite

import (
	"errors"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBenchmarksRegistered(t *testing.T) {
	names := Names(Benchmarks(QuickSizes()))
	want := []string{
		"blur", "data", "fft", "fib", "grayscale", "iteration", "kmeans",
		"mandelbrot", "matrix", "memory", "primes", "sort", "vector",
	}
	require.Equal(t, want, names)
}

func TestSelectKeepsRequestOrder(t *testing.T) {
	list := Benchmarks(QuickSizes())
	got, err := Select(list, "sort", " FFT ", "primes")
	require.NoError(t, err)

	var names []string
	for _, b := range got {
		names = append(names, b.Name)
	}
	require.Equal(t, []string{"sort", "fft", "primes"}, names)
}

func TestSelectAll(t *testing.T) {
	list := Benchmarks(QuickSizes())
	got, err := Select(list)
	require.NoError(t, err)
	require.Len(t, got, len(list))
}

func TestSelectUnknown(t *testing.T) {
	_, err := Select(Benchmarks(QuickSizes()), "primes", "nope")
	if !errors.Is(err, ErrUnknownBenchmark) {
		t.Fatalf("err = %v, want ErrUnknownBenchmark", err)
	}
}

func TestBenchmarksDeterministic(t *testing.T) {
	a := Benchmarks(QuickSizes())
	b := Benchmarks(QuickSizes())
	for i := range a {
		x, err := a[i].Run()
		require.NoError(t, err, a[i].Name)
		y, err := b[i].Run()
		require.NoError(t, err, b[i].Name)
		require.Equal(t, x, y, a[i].Name)
	}
}

func TestSortInputDeterministic(t *testing.T) {
	in := sortInput(1000)
	if slices.IsSorted(in) {
		t.Fatal("sort input is already sorted")
	}
	require.Equal(t, in, sortInput(1000))
}
