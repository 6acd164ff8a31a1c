// Command kernelbench runs the numeric kernels as timed benchmarks and prints
// a summary table.
//
// Usage:
//
//	kernelbench [flags] [benchmark ...]
//
// Without arguments it runs every registered benchmark.
//
// Examples:
//
//	kernelbench -list
//	kernelbench -iterations 10 -warmup 2 fft sort
//	kernelbench -quick -export report.json
//	kernelbench -in photo.jpg -max-width 1024 -out out/ blur grayscale
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/schollz/progressbar/v3"
	"k8s.io/klog/v2"

	"github.com/cwbudde/algo-kernels/internal/imageio"
	"github.com/cwbudde/algo-kernels/suite"
)

type options struct {
	list       bool
	quick      bool
	iterations int
	warmup     int
	export     string
	in         string
	out        string
	maxWidth   int
	progress   bool
}

func main() {
	klog.InitFlags(nil)

	var o options
	flag.BoolVar(&o.list, "list", false, "list available benchmarks and exit")
	flag.BoolVar(&o.quick, "quick", false, "use small workloads")
	flag.IntVar(&o.iterations, "iterations", 5, "timed runs per benchmark")
	flag.IntVar(&o.warmup, "warmup", 1, "untimed runs before timing starts")
	flag.StringVar(&o.export, "export", "", "write the JSON report to this file")
	flag.StringVar(&o.in, "in", "", "image file for the blur and grayscale benchmarks")
	flag.StringVar(&o.out, "out", "", "directory to write blurred and grayscale images to")
	flag.IntVar(&o.maxWidth, "max-width", 0, "downscale -in images wider than this (0 keeps size)")
	flag.BoolVar(&o.progress, "progress", false, "show a progress bar on stderr")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: kernelbench [flags] [benchmark ...]\n\n")
		fmt.Fprintf(os.Stderr, "Runs numeric kernels as timed benchmarks.\n")
		fmt.Fprintf(os.Stderr, "Without arguments, runs every benchmark.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  kernelbench -list\n")
		fmt.Fprintf(os.Stderr, "  kernelbench -iterations 10 fft sort\n")
		fmt.Fprintf(os.Stderr, "  kernelbench -quick -export report.json\n")
	}
	flag.Parse()
	defer klog.Flush()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, o, flag.Args()); err != nil {
		klog.Errorf("kernelbench: %v", err)
		klog.Flush()
		os.Exit(1)
	}
}

func run(ctx context.Context, o options, names []string) error {
	sizes := suite.DefaultSizes()
	if o.quick {
		sizes = suite.QuickSizes()
	}
	if o.in != "" {
		img, err := imageio.Load(o.in, o.maxWidth)
		if err != nil {
			return err
		}
		klog.V(1).Infof("loaded %s: %dx%d", o.in, img.Width, img.Height)
		sizes.Image = img
	}

	all := suite.Benchmarks(sizes)
	if o.list {
		printList(os.Stdout, all)
		return nil
	}

	benches, err := suite.Select(all, names...)
	if err != nil {
		return err
	}

	opts := []suite.Option{
		suite.WithIterations(o.iterations),
		suite.WithWarmup(o.warmup),
	}
	if o.progress {
		bar := progressbar.NewOptions(len(benches)*max(o.iterations, 1),
			progressbar.OptionSetWriter(os.Stderr),
			progressbar.OptionShowCount(),
			progressbar.OptionSetItsString("runs"),
			progressbar.OptionClearOnFinish(),
		)
		defer func() { _ = bar.Finish() }()
		opts = append(opts, suite.WithIterationHook(func(name string, _ int) {
			bar.Describe(name)
			_ = bar.Add(1)
		}))
	}

	printHost(os.Stdout, suite.DetectHost())
	report, runErr := suite.Run(ctx, benches, opts...)
	if report != nil {
		printResults(os.Stdout, report.Results)
		if o.export != "" {
			if err := report.Export(o.export); err != nil {
				return err
			}
			klog.V(1).Infof("report written to %s", o.export)
		}
	}
	if runErr != nil {
		return runErr
	}

	if o.out != "" {
		if err := os.MkdirAll(o.out, 0o755); err != nil {
			return fmt.Errorf("kernelbench: create %s: %w", o.out, err)
		}
		return writeImages(o.out, sizes.Image)
	}
	return nil
}
