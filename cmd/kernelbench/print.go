package main

import (
	"fmt"
	"io"
	"path/filepath"
	"text/tabwriter"

	"github.com/dustin/go-humanize"

	"github.com/cwbudde/algo-kernels/internal/imageio"
	"github.com/cwbudde/algo-kernels/kernels/blur"
	"github.com/cwbudde/algo-kernels/kernels/pixel"
	"github.com/cwbudde/algo-kernels/suite"
)

func printList(w io.Writer, list []suite.Benchmark) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "Name\tWorkload\tInput")
	fmt.Fprintln(tw, "----\t--------\t-----")
	for _, b := range list {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", b.Name, b.Workload, formatBytes(b.Bytes))
	}
	tw.Flush()
}

func printHost(w io.Writer, h suite.Host) {
	ext := h.Extensions
	if ext == "" {
		ext = "none"
	}
	fmt.Fprintf(w, "Host: %s/%s, %d CPUs, SIMD %s (%s), %s\n\n",
		h.OS, h.Arch, h.CPUs, h.SIMD, ext, h.GoVersion)
}

func printResults(w io.Writer, results []suite.Result) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "Benchmark\tRuns\tMin\tMean\tMax\tStdDev\tThroughput\tChecksum\t")
	for _, r := range results {
		if r.Error != "" {
			fmt.Fprintf(tw, "%s\t-\t-\t-\t-\t-\t-\terror: %s\t\n", r.Name, r.Error)
			continue
		}
		t := r.Timing
		fmt.Fprintf(tw, "%s\t%s\t%v\t%v\t%v\t%v\t%s\t%s\t\n",
			r.Name, humanize.Comma(int64(t.Count)),
			t.Min, t.Mean, t.Max, t.StdDev,
			formatThroughput(r.Throughput()),
			humanize.FormatFloat("#,###.##", r.Checksum))
	}
	tw.Flush()
}

func formatBytes(n int64) string {
	if n <= 0 {
		return "-"
	}
	return humanize.IBytes(uint64(n))
}

func formatThroughput(bps float64) string {
	if bps <= 0 {
		return "-"
	}
	return humanize.IBytes(uint64(bps)) + "/s"
}

// writeImages saves the blur and grayscale outputs of img to dir as PNG.
func writeImages(dir string, img imageio.Image) error {
	blurred, err := blur.Gaussian(img.Pixels, img.Width, img.Height)
	if err != nil {
		return err
	}
	if err := imageio.Save(filepath.Join(dir, "blur.png"), imageio.Image{
		Pixels: blurred, Width: img.Width, Height: img.Height,
	}); err != nil {
		return err
	}

	gray, err := pixel.Grayscale(img.Pixels)
	if err != nil {
		return err
	}
	grayImg, err := imageio.FromGray(gray, img.Width, img.Height)
	if err != nil {
		return err
	}
	return imageio.Save(filepath.Join(dir, "grayscale.png"), grayImg)
}
