package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-kernels/internal/imageio"
	"github.com/cwbudde/algo-kernels/suite"
)

func TestPrintList(t *testing.T) {
	var buf bytes.Buffer
	printList(&buf, suite.Benchmarks(suite.QuickSizes()))
	out := buf.String()
	for _, name := range []string{"blur", "fft", "kmeans", "primes", "sort"} {
		require.Contains(t, out, name)
	}
}

func TestPrintResults(t *testing.T) {
	var buf bytes.Buffer
	printResults(&buf, []suite.Result{
		{
			Name:     "fft",
			Bytes:    1 << 20,
			Timing:   suite.Summarize([]time.Duration{time.Millisecond, 3 * time.Millisecond}),
			Checksum: 1234.5,
		},
		{Name: "broken", Error: "boom"},
	})
	out := buf.String()
	require.Contains(t, out, "2ms")
	require.Contains(t, out, "MiB/s")
	require.Contains(t, out, "1,234.5")
	require.Contains(t, out, "error: boom")
}

func TestFormatBytes(t *testing.T) {
	require.Equal(t, "-", formatBytes(0))
	require.Equal(t, "1.0 KiB", formatBytes(1024))
	require.Equal(t, "-", formatThroughput(0))
}

func TestRunQuickExport(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "report.json")
	o := options{quick: true, iterations: 1, export: path, out: filepath.Join(dir, "img")}

	require.NoError(t, run(context.Background(), o, []string{"primes", "blur"}))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	rep, err := suite.ReadReport(f)
	require.NoError(t, err)
	require.Len(t, rep.Results, 2)

	for _, name := range []string{"blur.png", "grayscale.png"} {
		img, err := imageio.Load(filepath.Join(dir, "img", name), 0)
		require.NoError(t, err, name)
		require.Equal(t, 24, img.Width)
		require.Equal(t, 16, img.Height)
	}
}

func TestRunUnknownBenchmark(t *testing.T) {
	err := run(context.Background(), options{quick: true, iterations: 1}, []string{"nope"})
	require.ErrorIs(t, err, suite.ErrUnknownBenchmark)
}

func TestRunBadOutputDir(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(file, nil, 0o644))

	o := options{quick: true, iterations: 1, out: filepath.Join(file, "img")}
	var err error
	require.NotPanics(t, func() {
		err = run(context.Background(), o, []string{"primes"})
	})
	require.ErrorContains(t, err, "kernelbench: create")
}

func TestRunMissingInput(t *testing.T) {
	err := run(context.Background(), options{quick: true, in: filepath.Join(t.TempDir(), "x.png")}, nil)
	require.Error(t, err)
	require.True(t, strings.Contains(err.Error(), "imageio"))
}
