package suite

import (
	"math"
	"slices"
	"time"
)

// Timing summarises the wall-clock durations of repeated runs.
type Timing struct {
	Count  int           `json:"count"`
	Min    time.Duration `json:"min_ns"`
	Max    time.Duration `json:"max_ns"`
	Mean   time.Duration `json:"mean_ns"`
	Median time.Duration `json:"median_ns"`
	StdDev time.Duration `json:"stddev_ns"`
}

// timingAccumulator collects run durations incrementally. Mean and variance
// use Welford's online update.
type timingAccumulator struct {
	samples []time.Duration
	mean    float64
	m2      float64
}

func (a *timingAccumulator) add(d time.Duration) {
	a.samples = append(a.samples, d)

	x := float64(d)
	n := float64(len(a.samples))
	delta := x - a.mean
	a.mean += delta / n
	a.m2 += delta * (x - a.mean)
}

func (a *timingAccumulator) result() Timing {
	n := len(a.samples)
	if n == 0 {
		return Timing{}
	}

	sorted := slices.Clone(a.samples)
	slices.Sort(sorted)

	return Timing{
		Count:  n,
		Min:    sorted[0],
		Max:    sorted[n-1],
		Mean:   time.Duration(math.Round(a.mean)),
		Median: sorted[n/2],
		StdDev: time.Duration(math.Round(math.Sqrt(a.m2 / float64(n)))),
	}
}

// Summarize computes a Timing over the given durations.
func Summarize(durations []time.Duration) Timing {
	var acc timingAccumulator
	for _, d := range durations {
		acc.add(d)
	}
	return acc.result()
}
