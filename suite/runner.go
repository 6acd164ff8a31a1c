package suite

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"k8s.io/klog/v2"
)

// Result is the outcome of running one benchmark.
type Result struct {
	Name     string  `json:"name"`
	Workload string  `json:"workload"`
	Bytes    int64   `json:"bytes,omitempty"`
	Timing   Timing  `json:"timing"`
	Checksum float64 `json:"checksum"`
	Error    string  `json:"error,omitempty"`
}

// Throughput returns processed bytes per second at the mean duration, or 0
// when the benchmark has no byte count.
func (r Result) Throughput() float64 {
	if r.Bytes == 0 || r.Timing.Mean <= 0 {
		return 0
	}
	return float64(r.Bytes) / r.Timing.Mean.Seconds()
}

// Run executes each benchmark sequentially according to opts and returns a
// report. A failing benchmark is recorded in its Result and the remaining
// benchmarks still run; the returned error joins every failure. Cancellation
// is checked between runs, never inside a kernel.
func Run(ctx context.Context, benches []Benchmark, opts ...Option) (*Report, error) {
	cfg := ApplyOptions(opts...)
	report := newReport(cfg)

	var errs []error
	for _, b := range benches {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		res, err := runOne(ctx, b, cfg)
		report.Results = append(report.Results, res)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return report, ctxErr
			}
			errs = append(errs, err)
			continue
		}
		klog.V(1).Infof("suite: %s: mean %v over %d runs", b.Name, res.Timing.Mean, res.Timing.Count)
	}

	return report, errors.Join(errs...)
}

func runOne(ctx context.Context, b Benchmark, cfg Config) (Result, error) {
	res := Result{Name: b.Name, Workload: b.Workload, Bytes: b.Bytes}

	for i := range cfg.Warmup {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		if _, err := b.Run(); err != nil {
			res.Error = err.Error()
			return res, fmt.Errorf("suite: %s: warmup %d: %w", b.Name, i, err)
		}
	}

	var acc timingAccumulator
	for i := range cfg.Iterations {
		if err := ctx.Err(); err != nil {
			res.Timing = acc.result()
			return res, err
		}

		start := time.Now()
		sum, err := b.Run()
		elapsed := time.Since(start)
		if err != nil {
			res.Error = err.Error()
			res.Timing = acc.result()
			return res, fmt.Errorf("suite: %s: %w", b.Name, err)
		}

		acc.add(elapsed)
		res.Checksum = sum
		klog.V(2).Infof("suite: %s: iteration %d took %v", b.Name, i, elapsed)
		if cfg.OnIteration != nil {
			cfg.OnIteration(b.Name, i)
		}
	}

	res.Timing = acc.result()
	return res, nil
}

func newReport(cfg Config) *Report {
	return &Report{
		Session:    uuid.NewString(),
		Started:    time.Now().UTC(),
		Iterations: cfg.Iterations,
		Warmup:     cfg.Warmup,
		Host:       DetectHost(),
	}
}
