// Package butterfly implements the staged radix-2 butterfly transform used
// by the "FFT simulation" benchmark.
//
// [Transform] runs log2(n) stages of the decimation-in-time butterfly over a
// real/imaginary signal pair, in place. It does not reorder its input, so
// for a natural-order input x the result is the discrete Fourier transform
// of the bit-reversed sequence:
//
//	Transform(x) == DFT(bitrev(x))
//
// The recurrence is kept exactly as benchmarked. Callers that need a
// spectrum in natural order should use [Spectrum], which applies
// [BitReverse] first, or compare against [Reference], which computes the DFT
// with algo-fft. [Deviation] reports how far the raw butterfly output is
// from the true DFT of the same input.
//
// All lengths must be powers of two; length 1 is a valid no-op.
package butterfly
