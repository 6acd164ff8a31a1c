package butterfly

import (
	"errors"
	"fmt"
	"math"
	"math/bits"

	"golang.org/x/exp/constraints"
)

// Errors returned by the transform functions.
var (
	ErrLengthMismatch = errors.New("butterfly: real/imag length mismatch")
	ErrNotPowerOfTwo  = errors.New("butterfly: length is not a power of two")
)

// IsPowerOfTwo reports whether n is a positive power of two.
func IsPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}

func checkPair(n, m int) error {
	if n != m {
		return fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, n, m)
	}
	if !IsPowerOfTwo(n) {
		return fmt.Errorf("%w: %d", ErrNotPowerOfTwo, n)
	}
	return nil
}

// Transform applies the radix-2 butterfly stages to (re, im) in place.
//
// For stage sizes 1, 2, 4, ..., n/2 the signal is split into blocks of
// 2*stage. Within each block, element j is combined with element j+stage
// using the twiddle factor e^(-i*2*pi*j/(2*stage)):
//
//	t          = z[j+stage] * w
//	z[j+stage] = z[j] - t
//	z[j]       = z[j] + t
func Transform[T constraints.Float](re, im []T) error {
	if err := checkPair(len(re), len(im)); err != nil {
		return err
	}

	n := len(re)
	for stage := 1; stage < n; stage *= 2 {
		span := 2 * stage
		for start := 0; start < n; start += span {
			for j := 0; j < stage; j++ {
				angle := -2 * math.Pi * float64(j) / float64(span)
				c := T(math.Cos(angle))
				s := T(math.Sin(angle))

				i1 := start + j
				i2 := i1 + stage

				tr := re[i2]*c - im[i2]*s
				ti := re[i2]*s + im[i2]*c

				re[i2] = re[i1] - tr
				im[i2] = im[i1] - ti
				re[i1] += tr
				im[i1] += ti
			}
		}
	}

	return nil
}

// Simulate runs the benchmark form of the transform: a size-length signal
// with re[i] = (i mod 100)/100 and a zero imaginary part is transformed and
// returned interleaved as [re0, im0, re1, im1, ...] (length 2*size).
func Simulate[T constraints.Float](size int) ([]T, error) {
	if !IsPowerOfTwo(size) {
		return nil, fmt.Errorf("%w: %d", ErrNotPowerOfTwo, size)
	}

	re := make([]T, size)
	im := make([]T, size)
	for i := range re {
		re[i] = T(i%100) / 100
	}

	if err := Transform(re, im); err != nil {
		return nil, err
	}

	out := make([]T, 2*size)
	for i := range re {
		out[2*i] = re[i]
		out[2*i+1] = im[i]
	}
	return out, nil
}

// BitReverse permutes s in place so that element i moves to the index
// whose log2(len(s))-bit binary representation is i reversed.
func BitReverse[T any](s []T) error {
	n := len(s)
	if !IsPowerOfTwo(n) {
		return fmt.Errorf("%w: %d", ErrNotPowerOfTwo, n)
	}
	if n == 1 {
		return nil
	}

	shift := bits.UintSize - bits.Len(uint(n-1))
	for i := range s {
		j := int(bits.Reverse(uint(i)) >> shift)
		if i < j {
			s[i], s[j] = s[j], s[i]
		}
	}
	return nil
}

// Spectrum computes the natural-order DFT of (re, im) in place by
// bit-reversing the input and then applying [Transform].
func Spectrum[T constraints.Float](re, im []T) error {
	if err := checkPair(len(re), len(im)); err != nil {
		return err
	}
	if err := BitReverse(re); err != nil {
		return err
	}
	if err := BitReverse(im); err != nil {
		return err
	}
	return Transform(re, im)
}
