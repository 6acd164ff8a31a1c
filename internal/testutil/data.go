package testutil

import (
	"math/rand"
)

// DeterministicNoise generates uniform values in [-amplitude, amplitude]
// with a fixed seed for reproducibility.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// DeterministicInts generates length integers in [-bound, bound) with a fixed seed.
func DeterministicInts(seed int64, bound, length int) []int {
	out := make([]int, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = rng.Intn(2*bound) - bound
	}
	return out
}

// Impulse generates a unit impulse at the given position.
func Impulse(length, pos int) []float64 {
	out := make([]float64, length)
	if pos >= 0 && pos < length {
		out[pos] = 1
	}
	return out
}

// DC generates a constant-valued signal.
func DC(value float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = value
	}
	return out
}

// UniformImage returns a width*height RGBA buffer with every pixel set to (r, g, b, a).
func UniformImage(width, height int, r, g, b, a uint8) []uint8 {
	out := make([]uint8, width*height*4)
	for i := 0; i < len(out); i += 4 {
		out[i] = r
		out[i+1] = g
		out[i+2] = b
		out[i+3] = a
	}
	return out
}

// NoiseImage returns a width*height RGBA buffer of random bytes with a fixed seed.
func NoiseImage(seed int64, width, height int) []uint8 {
	out := make([]uint8, width*height*4)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = uint8(rng.Intn(256))
	}
	return out
}

// ClusteredPoints returns an interleaved (x, y) buffer with perCluster
// points scattered within radius of each center. Points are emitted
// round-robin across centers so the first len(centers) points each belong
// to a different cluster.
func ClusteredPoints(seed int64, centers [][2]float64, perCluster int, radius float64) []float64 {
	rng := rand.New(rand.NewSource(seed))
	out := make([]float64, 0, 2*len(centers)*perCluster)
	for range perCluster {
		for _, c := range centers {
			out = append(out,
				c[0]+(rng.Float64()*2-1)*radius,
				c[1]+(rng.Float64()*2-1)*radius,
			)
		}
	}
	return out
}

// IsPrime reports whether n is prime using trial division.
func IsPrime(n int) bool {
	if n < 2 {
		return false
	}
	if n%2 == 0 {
		return n == 2
	}
	for d := 3; d*d <= n; d += 2 {
		if n%d == 0 {
			return false
		}
	}
	return true
}
