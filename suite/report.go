package suite

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"runtime"
	"time"

	"github.com/cwbudde/algo-kernels/internal/cpu"
)

// Host describes the machine a report was produced on.
type Host struct {
	OS         string `json:"os"`
	Arch       string `json:"arch"`
	CPUs       int    `json:"cpus"`
	SIMD       string `json:"simd"`
	Extensions string `json:"extensions"`
	GoVersion  string `json:"go_version"`
}

// DetectHost fills a Host from the running process.
func DetectHost() Host {
	f := cpu.DetectFeatures()
	return Host{
		OS:         runtime.GOOS,
		Arch:       f.Architecture,
		CPUs:       f.NumCPU,
		SIMD:       f.Best().String(),
		Extensions: f.Extensions(),
		GoVersion:  runtime.Version(),
	}
}

// Report is the serialisable record of one suite run.
type Report struct {
	Session    string    `json:"session"`
	Started    time.Time `json:"started"`
	Iterations int       `json:"iterations"`
	Warmup     int       `json:"warmup"`
	Host       Host      `json:"host"`
	Results    []Result  `json:"results"`
}

// WriteJSON encodes the report as indented JSON.
func (r *Report) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("suite: encode report: %w", err)
	}
	return nil
}

// Export writes the report as JSON to path, replacing any existing file.
func (r *Report) Export(path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("suite: create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("suite: close %s: %w", path, cerr)
		}
	}()
	return r.WriteJSON(f)
}

// ReadReport decodes a report previously written by WriteJSON.
func ReadReport(r io.Reader) (*Report, error) {
	var rep Report
	if err := json.NewDecoder(r).Decode(&rep); err != nil {
		return nil, fmt.Errorf("suite: decode report: %w", err)
	}
	return &rep, nil
}
