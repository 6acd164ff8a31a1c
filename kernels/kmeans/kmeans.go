// Package kmeans partitions 2-D points into k clusters with a fixed number
// of Lloyd refinement rounds.
//
// Seeding is deterministic: the first k points become the initial
// centroids. Each round assigns every point to its nearest centroid by
// squared Euclidean distance, with ties going to the lowest centroid index,
// then moves each centroid to the mean of its points. A centroid that
// receives no points keeps its position. There is no convergence check;
// exactly the requested number of rounds is run.
package kmeans

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-kernels/kernels/layout"
)

// Errors returned by clustering functions.
var (
	ErrInvalidK           = errors.New("kmeans: k must be between 1 and the number of points")
	ErrNegativeIterations = errors.New("kmeans: negative iteration count")
	ErrLabelLength        = errors.New("kmeans: label count does not match point count")
	ErrInvalidLabel       = errors.New("kmeans: label out of centroid range")
)

// Cluster runs iterations refinement rounds over the interleaved (x, y)
// point buffer and returns the k final centroids, interleaved.
func Cluster(points []float64, k, iterations int) ([]float64, error) {
	n, err := layout.PointCount(points)
	if err != nil {
		return nil, fmt.Errorf("kmeans: points: %w", err)
	}
	if k < 1 || k > n {
		return nil, fmt.Errorf("%w: k=%d, n=%d", ErrInvalidK, k, n)
	}
	if iterations < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeIterations, iterations)
	}

	s := newState(points, n)
	cx := append([]float64(nil), s.xs[:k]...)
	cy := append([]float64(nil), s.ys[:k]...)

	for range iterations {
		s.assign(cx, cy)
		s.update(cx, cy)
	}

	out := make([]float64, 2*k)
	layout.Interleave(out, cx, cy)
	return out, nil
}

// Assign returns, for each point, the index of its nearest centroid using
// the same tie rule as [Cluster].
func Assign(points, centroids []float64) ([]int, error) {
	n, err := layout.PointCount(points)
	if err != nil {
		return nil, fmt.Errorf("kmeans: points: %w", err)
	}
	k, err := layout.PointCount(centroids)
	if err != nil {
		return nil, fmt.Errorf("kmeans: centroids: %w", err)
	}
	if k < 1 {
		return nil, fmt.Errorf("%w: k=%d", ErrInvalidK, k)
	}

	s := newState(points, n)
	cx := make([]float64, k)
	cy := make([]float64, k)
	layout.Deinterleave(cx, cy, centroids)

	s.assign(cx, cy)
	return s.labels, nil
}

// Inertia returns the within-cluster sum of squared distances for points
// labelled against centroids.
func Inertia(points, centroids []float64, labels []int) (float64, error) {
	n, err := layout.PointCount(points)
	if err != nil {
		return 0, fmt.Errorf("kmeans: points: %w", err)
	}
	k, err := layout.PointCount(centroids)
	if err != nil {
		return 0, fmt.Errorf("kmeans: centroids: %w", err)
	}
	if len(labels) != n {
		return 0, fmt.Errorf("%w: %d labels, %d points", ErrLabelLength, len(labels), n)
	}

	sum := 0.0
	for i, c := range labels {
		if c < 0 || c >= k {
			return 0, fmt.Errorf("%w: label %d at point %d", ErrInvalidLabel, c, i)
		}
		dx := points[2*i] - centroids[2*c]
		dy := points[2*i+1] - centroids[2*c+1]
		sum += dx*dx + dy*dy
	}
	return sum, nil
}

// state holds the per-call planar working buffers.
type state struct {
	xs, ys []float64
	dx, dy []float64
	dist   []float64
	best   []float64
	labels []int
}

func newState(points []float64, n int) *state {
	s := &state{
		xs:     make([]float64, n),
		ys:     make([]float64, n),
		dx:     make([]float64, n),
		dy:     make([]float64, n),
		dist:   make([]float64, n),
		best:   make([]float64, n),
		labels: make([]int, n),
	}
	layout.Deinterleave(s.xs, s.ys, points)
	return s
}

// distances fills s.dist with the squared distance of every point to (x, y).
func (s *state) distances(x, y float64) {
	for i := range s.xs {
		s.dx[i] = s.xs[i] - x
		s.dy[i] = s.ys[i] - y
	}
	vecmath.Power(s.dist, s.dx, s.dy)
}

// assign labels every point with its nearest centroid. Centroids are
// visited in index order and only a strictly smaller distance replaces the
// current best, so ties resolve to the lowest index.
func (s *state) assign(cx, cy []float64) {
	s.distances(cx[0], cy[0])
	copy(s.best, s.dist)
	for i := range s.labels {
		s.labels[i] = 0
	}

	for c := 1; c < len(cx); c++ {
		s.distances(cx[c], cy[c])
		for i, d := range s.dist {
			if d < s.best[i] {
				s.best[i] = d
				s.labels[i] = c
			}
		}
	}
}

// update moves each centroid to the mean of its assigned points. Empty
// clusters are left where they are.
func (s *state) update(cx, cy []float64) {
	k := len(cx)
	sumX := make([]float64, k)
	sumY := make([]float64, k)
	count := make([]int, k)

	for i, c := range s.labels {
		sumX[c] += s.xs[i]
		sumY[c] += s.ys[i]
		count[c]++
	}

	for c := range k {
		if count[c] == 0 {
			continue
		}
		cx[c] = sumX[c] / float64(count[c])
		cy[c] = sumY[c] / float64(count[c])
	}
}
