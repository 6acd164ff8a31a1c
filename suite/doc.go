// Package suite runs the kernels of this module as named, timed benchmarks.
//
// [Benchmarks] builds the registry from a [Sizes] value; [Run] executes a
// selection sequentially, timing each iteration with the wall clock, and
// returns a [Report] that records the host, per-benchmark [Timing]
// statistics and an output checksum. Reports serialise to JSON.
//
// The kernels know nothing about this package. Everything here is host
// plumbing: input preparation, timing, logging (klog, verbosity 1 per
// benchmark and 2 per iteration) and export.
package suite
