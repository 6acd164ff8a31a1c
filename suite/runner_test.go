package suite

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

var errBoom = errors.New("boom")

func fixed(name string, sum float64) Benchmark {
	return Benchmark{
		Name:     name,
		Workload: "constant",
		Bytes:    64,
		Run:      func() (float64, error) { return sum, nil },
	}
}

func TestRunQuickSuite(t *testing.T) {
	list := Benchmarks(QuickSizes())
	rep, err := Run(context.Background(), list, WithIterations(2), WithWarmup(1))
	require.NoError(t, err)
	require.Len(t, rep.Results, len(list))
	require.NotEmpty(t, rep.Session)
	require.Equal(t, 2, rep.Iterations)

	for _, res := range rep.Results {
		require.Empty(t, res.Error, res.Name)
		require.Equal(t, 2, res.Timing.Count, res.Name)
		require.LessOrEqual(t, res.Timing.Min, res.Timing.Max, res.Name)
	}
}

func TestRunIterationHook(t *testing.T) {
	var calls []int
	hook := func(name string, i int) {
		if name != "a" {
			t.Fatalf("hook name = %q, want a", name)
		}
		calls = append(calls, i)
	}

	_, err := Run(context.Background(), []Benchmark{fixed("a", 1)},
		WithIterations(3), WithWarmup(2), WithIterationHook(hook))
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 2}, calls)
}

func TestRunContinuesAfterFailure(t *testing.T) {
	bad := Benchmark{
		Name: "bad",
		Run:  func() (float64, error) { return 0, errBoom },
	}
	rep, err := Run(context.Background(), []Benchmark{fixed("a", 1), bad, fixed("c", 3)})
	require.ErrorIs(t, err, errBoom)
	require.ErrorContains(t, err, "bad")
	require.Len(t, rep.Results, 3)
	require.Equal(t, "boom", rep.Results[1].Error)
	require.Equal(t, 3.0, rep.Results[2].Checksum)
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	stop := Benchmark{
		Name: "stop",
		Run: func() (float64, error) {
			cancel()
			return 0, nil
		},
	}

	rep, err := Run(ctx, []Benchmark{stop, fixed("never", 1)}, WithIterations(4))
	require.ErrorIs(t, err, context.Canceled)
	require.Len(t, rep.Results, 1)
	require.Equal(t, 1, rep.Results[0].Timing.Count)
}

func TestThroughput(t *testing.T) {
	res := Result{Bytes: 1000, Timing: Timing{Mean: 1e9}}
	require.InDelta(t, 1000.0, res.Throughput(), 1e-9)
	require.Zero(t, Result{}.Throughput())
}

func TestReportRoundTrip(t *testing.T) {
	rep, err := Run(context.Background(), []Benchmark{fixed("a", 42)})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, rep.WriteJSON(&buf))
	require.Contains(t, buf.String(), `"mean_ns"`)

	back, err := ReadReport(&buf)
	require.NoError(t, err)
	require.Equal(t, rep.Session, back.Session)
	require.Equal(t, rep.Host, back.Host)
	require.Equal(t, rep.Results, back.Results)
}

func TestExport(t *testing.T) {
	rep, err := Run(context.Background(), []Benchmark{fixed("a", 1)})
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "report.json")
	require.NoError(t, rep.Export(path))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	back, err := ReadReport(f)
	require.NoError(t, err)
	require.Len(t, back.Results, 1)
	require.Equal(t, "a", back.Results[0].Name)
}

func TestExportBadPath(t *testing.T) {
	rep := &Report{}
	err := rep.Export(filepath.Join(t.TempDir(), "missing", "report.json"))
	require.Error(t, err)
}
