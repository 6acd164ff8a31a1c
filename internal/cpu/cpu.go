// Package cpu reports the host CPU capabilities recorded with benchmark
// results.
//
// Detection runs once, on the first call to DetectFeatures, and the result
// is reused for the lifetime of the process.
package cpu

import (
	"strings"
	"sync"
)

// SIMDLevel represents a SIMD instruction set extension level.
// Levels are not comparable across architectures (e.g., AVX2 vs NEON).
type SIMDLevel int

const (
	// SIMDNone indicates no SIMD extension was detected.
	SIMDNone SIMDLevel = iota

	// SIMDSSE2 indicates x86-64 SSE2 (baseline for amd64).
	SIMDSSE2

	// SIMDAVX indicates x86-64 AVX.
	SIMDAVX

	// SIMDAVX2 indicates x86-64 AVX2.
	SIMDAVX2

	// SIMDAVX512 indicates x86-64 AVX-512F.
	SIMDAVX512

	// SIMDNEON indicates ARM NEON / Advanced SIMD.
	SIMDNEON

	// SIMDSVE indicates ARM SVE.
	SIMDSVE
)

// String returns a human-readable name for the SIMD level.
func (s SIMDLevel) String() string {
	switch s {
	case SIMDNone:
		return "None"
	case SIMDSSE2:
		return "SSE2"
	case SIMDAVX:
		return "AVX"
	case SIMDAVX2:
		return "AVX2"
	case SIMDAVX512:
		return "AVX-512"
	case SIMDNEON:
		return "NEON"
	case SIMDSVE:
		return "SVE"
	default:
		return "Unknown"
	}
}

// Features describes the host capabilities relevant to kernel throughput.
type Features struct {
	// x86/amd64
	HasSSE2   bool
	HasAVX    bool
	HasAVX2   bool
	HasAVX512 bool
	HasFMA    bool

	// arm64
	HasNEON bool
	HasSVE  bool

	Architecture string // runtime.GOARCH
	NumCPU       int    // runtime.NumCPU
}

// Best returns the most capable SIMD level present in f.
func (f Features) Best() SIMDLevel {
	switch {
	case f.HasAVX512:
		return SIMDAVX512
	case f.HasAVX2:
		return SIMDAVX2
	case f.HasAVX:
		return SIMDAVX
	case f.HasSSE2:
		return SIMDSSE2
	case f.HasSVE:
		return SIMDSVE
	case f.HasNEON:
		return SIMDNEON
	default:
		return SIMDNone
	}
}

// Extensions lists the detected extension names, e.g. "SSE2,AVX,AVX2,FMA".
func (f Features) Extensions() string {
	var names []string
	add := func(ok bool, name string) {
		if ok {
			names = append(names, name)
		}
	}
	add(f.HasSSE2, "SSE2")
	add(f.HasAVX, "AVX")
	add(f.HasAVX2, "AVX2")
	add(f.HasAVX512, "AVX-512")
	add(f.HasFMA, "FMA")
	add(f.HasNEON, "NEON")
	add(f.HasSVE, "SVE")
	if len(names) == 0 {
		return "none"
	}
	return strings.Join(names, ",")
}

var detectOnce = sync.OnceValue(detectFeaturesImpl)

// DetectFeatures returns the CPU features available on the current system.
// It is safe for concurrent use.
func DetectFeatures() Features {
	return detectOnce()
}
