// Package layout defines how multi-field data is packed into the flat
// buffers consumed by the kernels in this module.
//
// Three packings are used:
//
//   - Pixel buffers: []uint8, four bytes (R, G, B, A) per pixel, row-major,
//     stride width*4.
//   - Point buffers: []float64, interleaved (x, y) pairs.
//   - Signal pairs: separate real and imaginary slices of equal length.
//
// Buffers carry no header; their structure is implied by stride alone.
// The helpers here validate lengths and convert between interleaved and
// planar forms. None of them retain the slices they are given.
package layout
