package butterfly

import (
	"fmt"
	"math/cmplx"

	algofft "github.com/MeKo-Christian/algo-fft"
)

// Reference returns the discrete Fourier transform of (re, im) computed by
// algo-fft. The inputs are not modified.
func Reference(re, im []float64) ([]complex128, error) {
	if err := checkPair(len(re), len(im)); err != nil {
		return nil, err
	}

	n := len(re)
	src := make([]complex128, n)
	for i := range src {
		src[i] = complex(re[i], im[i])
	}
	if n == 1 {
		return src, nil
	}

	plan, err := algofft.NewPlan64(n)
	if err != nil {
		return nil, fmt.Errorf("butterfly: failed to create FFT plan: %w", err)
	}

	dst := make([]complex128, n)
	if err := plan.Forward(dst, src); err != nil {
		return nil, fmt.Errorf("butterfly: forward FFT failed: %w", err)
	}
	return dst, nil
}

// Deviation returns the largest absolute difference between the output of
// [Transform] on (re, im) and the true DFT of the same input. The inputs are
// not modified.
//
// A result near zero means the butterfly happened to agree with the DFT for
// this input (impulses at index 0 and constant signals do); a large value
// is the expected outcome for general signals.
func Deviation(re, im []float64) (float64, error) {
	want, err := Reference(re, im)
	if err != nil {
		return 0, err
	}

	gotRe := append([]float64(nil), re...)
	gotIm := append([]float64(nil), im...)
	if err := Transform(gotRe, gotIm); err != nil {
		return 0, err
	}

	maxDiff := 0.0
	for i, w := range want {
		if d := cmplx.Abs(complex(gotRe[i], gotIm[i]) - w); d > maxDiff {
			maxDiff = d
		}
	}
	return maxDiff, nil
}
