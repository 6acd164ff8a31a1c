package sieve

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-kernels/internal/testutil"
)

func TestGenerateTen(t *testing.T) {
	flags, err := Generate(10)
	require.NoError(t, err)
	require.Equal(t, []uint8{0, 0, 1, 1, 0, 1, 0, 1, 0, 0}, flags)
}

func TestGenerateSmallLimits(t *testing.T) {
	tests := []struct {
		limit int
		want  []uint8
	}{
		{0, []uint8{}},
		{1, []uint8{0}},
		{2, []uint8{0, 0}},
		{3, []uint8{0, 0, 1}},
		{4, []uint8{0, 0, 1, 1}},
		{5, []uint8{0, 0, 1, 1, 0}},
	}

	for _, tc := range tests {
		flags, err := Generate(tc.limit)
		require.NoError(t, err)
		require.Equal(t, tc.want, flags, "limit %d", tc.limit)
	}
}

func TestGenerateMatchesTrialDivision(t *testing.T) {
	const limit = 10007
	flags, err := Generate(limit)
	require.NoError(t, err)
	require.Len(t, flags, limit)

	for i, f := range flags {
		want := testutil.IsPrime(i)
		if (f == 1) != want {
			t.Fatalf("flags[%d] = %d, IsPrime = %v", i, f, want)
		}
	}
}

func TestGeneratePerfectSquareLimit(t *testing.T) {
	// 49 = 7*7: the last sieving prime starts exactly at the limit.
	flags, err := Generate(49)
	require.NoError(t, err)
	require.Equal(t, uint8(1), flags[47])
	require.Equal(t, uint8(0), flags[25])
	require.Equal(t, 15, Count(flags))
}

func TestGenerateNegativeLimit(t *testing.T) {
	_, err := Generate(-1)
	if !errors.Is(err, ErrNegativeLimit) {
		t.Fatalf("err = %v, want ErrNegativeLimit", err)
	}
}

func TestCountAndPrimes(t *testing.T) {
	flags, err := Generate(100000)
	require.NoError(t, err)
	require.Equal(t, 9592, Count(flags))

	small, err := Generate(30)
	require.NoError(t, err)
	require.Equal(t, []int{2, 3, 5, 7, 11, 13, 17, 19, 23, 29}, Primes(small))
}
