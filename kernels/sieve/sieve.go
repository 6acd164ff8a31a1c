// Package sieve generates primality flags with the Sieve of Eratosthenes.
package sieve

import (
	"errors"
	"fmt"
)

// ErrNegativeLimit is returned when the requested limit is below zero.
var ErrNegativeLimit = errors.New("sieve: negative limit")

// Generate returns a primality buffer of length limit where index i is 1
// if i is prime and 0 otherwise.
//
// Multiples of each prime i are cleared starting at i*i; smaller multiples
// have already been cleared by smaller prime factors. limit 0 yields an
// empty buffer and limit 1 yields [0].
func Generate(limit int) ([]uint8, error) {
	if limit < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeLimit, limit)
	}

	flags := make([]uint8, limit)
	for i := range flags {
		flags[i] = 1
	}

	if limit > 0 {
		flags[0] = 0
	}
	if limit > 1 {
		flags[1] = 0
	}

	for i := 2; i*i < limit; i++ {
		if flags[i] == 0 {
			continue
		}
		for j := i * i; j < limit; j += i {
			flags[j] = 0
		}
	}

	return flags, nil
}

// Count returns the number of set flags in a primality buffer.
func Count(flags []uint8) int {
	n := 0
	for _, f := range flags {
		if f != 0 {
			n++
		}
	}
	return n
}

// Primes returns the indices of all set flags in ascending order.
func Primes(flags []uint8) []int {
	out := make([]int, 0, Count(flags))
	for i, f := range flags {
		if f != 0 {
			out = append(out, i)
		}
	}
	return out
}
