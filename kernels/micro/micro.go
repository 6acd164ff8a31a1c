// Package micro contains the raw-speed micro benchmarks: tight loops over
// a generated buffer that reduce to a single number.
//
// The floating-point reductions work in float64 throughout.
package micro

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-kernels/kernels/mergesort"
)

// ErrNegativeSize is returned for negative buffer sizes or iteration counts.
var ErrNegativeSize = errors.New("micro: negative size")

// DataLen is the length of the buffer reworked by [DataProcessing].
const DataLen = 1000

func checkSize(size int) error {
	if size < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeSize, size)
	}
	return nil
}

// ramp returns v[i] = (i mod 100)/100.
func ramp(size int) []float64 {
	v := make([]float64, size)
	for i := range v {
		v[i] = float64(i%100) / 100
	}
	return v
}

// ArrayIteration returns sum(1.5*v + sqrt(v)) over a ramp of length size.
// Values and the running sum are float64, so large sizes do not lose the
// low-order contributions a float32 accumulator would drop.
func ArrayIteration(size int) (float64, error) {
	if err := checkSize(size); err != nil {
		return 0, err
	}

	v := ramp(size)
	roots := make([]float64, size)
	for i, x := range v {
		roots[i] = math.Sqrt(x)
	}

	vecmath.ScaleBlockInPlace(v, 1.5)
	return vecmath.Sum(v) + vecmath.Sum(roots), nil
}

// VectorOps returns sum(v*v + sin(v)) over a ramp of length size, computed
// and accumulated in float64 like [ArrayIteration].
func VectorOps(size int) (float64, error) {
	if err := checkSize(size); err != nil {
		return 0, err
	}

	v := ramp(size)
	sines := make([]float64, size)
	for i, x := range v {
		sines[i] = math.Sin(x)
	}

	return vecmath.DotProduct(v, v) + vecmath.Sum(sines), nil
}

// MemoryChecksum fills a size-byte buffer with i mod 256 and folds it into
// a running sum modulo 65536.
func MemoryChecksum(size int) (uint32, error) {
	if err := checkSize(size); err != nil {
		return 0, err
	}

	buf := make([]uint8, size)
	for i := range buf {
		buf[i] = uint8(i)
	}

	var checksum uint32
	for _, b := range buf {
		checksum = (checksum + uint32(b)) % 65536
	}
	return checksum, nil
}

// Fibonacci returns the n-th Fibonacci number computed iteratively.
// Results beyond F(93) wrap modulo 2^64.
func Fibonacci(n uint) uint64 {
	if n <= 1 {
		return uint64(n)
	}

	var a, b uint64 = 0, 1
	for i := uint(2); i <= n; i++ {
		a, b = b, a+b
	}
	return b
}

// DataProcessing reworks a DataLen-element buffer, initialised to
// (7i mod 1000), for the given number of rounds. Each round sorts the
// buffer, squares its even values and writes them back modulo 1000 over the
// front of the buffer. The final buffer is returned.
func DataProcessing(iterations int) ([]uint32, error) {
	if err := checkSize(iterations); err != nil {
		return nil, err
	}

	data := make([]uint32, DataLen)
	for i := range data {
		data[i] = uint32(i*7) % 1000
	}

	filtered := make([]uint32, 0, DataLen)
	for range iterations {
		data = mergesort.Sort(data)

		filtered = filtered[:0]
		for _, x := range data {
			if x%2 == 0 {
				filtered = append(filtered, x*x)
			}
		}
		for i, v := range filtered {
			data[i] = v % 1000
		}
	}
	return data, nil
}
