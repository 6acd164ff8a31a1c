// Package linalg provides the dense square matrix multiplication kernel.
//
// Matrices are flat row-major []float64 buffers of n*n elements.
package linalg

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-vecmath"
)

// Errors returned by matrix functions.
var (
	ErrSize           = errors.New("linalg: matrix size must be positive")
	ErrLengthMismatch = errors.New("linalg: buffer length does not match n*n")
)

// MatMul returns the n×n product a·b. Each output element is the dot
// product of a row of a with a column of b; b is transposed once up front so
// both operands are contiguous.
func MatMul(a, b []float64, n int) ([]float64, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrSize, n)
	}
	if len(a) != n*n || len(b) != n*n {
		return nil, fmt.Errorf("%w: len(a)=%d, len(b)=%d, n=%d", ErrLengthMismatch, len(a), len(b), n)
	}

	bt := Transpose(b, n)
	c := make([]float64, n*n)
	for i := range n {
		row := a[i*n : (i+1)*n]
		for j := range n {
			c[i*n+j] = vecmath.DotProduct(row, bt[j*n:(j+1)*n])
		}
	}
	return c, nil
}

// Transpose returns the transpose of the n×n matrix m.
func Transpose(m []float64, n int) []float64 {
	out := make([]float64, n*n)
	for i := range n {
		for j := range n {
			out[j*n+i] = m[i*n+j]
		}
	}
	return out
}

// Identity returns the n×n identity matrix.
func Identity(n int) []float64 {
	out := make([]float64, n*n)
	for i := range n {
		out[i*n+i] = 1
	}
	return out
}

// Pattern returns the benchmark operands: a[i] = (i mod 100)/100 and
// b[i] = (i mod 50)/50 over the n*n flat buffers.
func Pattern(n int) (a, b []float64) {
	a = make([]float64, n*n)
	b = make([]float64, n*n)
	for i := range a {
		a[i] = float64(i%100) / 100
		b[i] = float64(i%50) / 50
	}
	return a, b
}

// Benchmark multiplies the [Pattern] operands of size n.
func Benchmark(n int) ([]float64, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrSize, n)
	}
	a, b := Pattern(n)
	return MatMul(a, b, n)
}
