//go:build !amd64 && !arm64

package cpu

import "runtime"

// detectFeaturesImpl is the fallback for other architectures; no SIMD
// extensions are reported.
func detectFeaturesImpl() Features {
	return Features{
		Architecture: runtime.GOARCH,
		NumCPU:       runtime.NumCPU(),
	}
}
