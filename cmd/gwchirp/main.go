// Command gwchirp simulates the gravitational-wave strain of an inspiralling
// black-hole binary and plots it.
//
// Usage:
//
//	gwchirp [flags]
//
// Configuration is read from defaults, an optional YAML file (-config or
// GWCHIRP_CONFIG), GWCHIRP_* environment variables and finally the flags
// given on the command line.
//
// Examples:
//
//	gwchirp
//	gwchirp -m1 36 -m2 29 -distance-pc 4.1e8 -out gw150914.png
//	gwchirp -samples 50000 -csv strain.csv -wav chirp.wav -spectrum spectrum.svg
//	gwchirp -show=false -out strain.svg
package main

import (
	"context"
	"flag"
	"fmt"
	"image"
	"io"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"

	"go.uber.org/zap"

	"github.com/cwbudde/algo-gw/internal/app"
	"github.com/cwbudde/algo-gw/internal/config"
	"github.com/cwbudde/algo-gw/internal/logging"
	"github.com/cwbudde/algo-gw/render/viewer"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr, showWindow)
	stop()
	os.Exit(code)
}

func showWindow(title string, img image.Image) error {
	return viewer.New(title, img).Show()
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer, view app.Viewer) int {
	fs := flag.NewFlagSet("gwchirp", flag.ContinueOnError)
	fs.SetOutput(stderr)

	configPath := fs.String("config", "", "YAML config file (default $GWCHIRP_CONFIG)")
	out := fs.String("out", "", "chart file; extension selects png, svg or pdf")
	csvPath := fs.String("csv", "", "write time,strain samples as CSV")
	wavPath := fs.String("wav", "", "write the chirp as a WAV file")
	spectrumPath := fs.String("spectrum", "", "write the strain spectrum chart")
	metricsPath := fs.String("metrics", "", "write Prometheus textfile metrics")
	show := fs.Bool("show", true, "open the chart in a window; -show=false only writes files")
	m1 := fs.Float64("m1", 0, "primary mass in solar masses")
	m2 := fs.Float64("m2", 0, "secondary mass in solar masses")
	distance := fs.Float64("distance-pc", 0, "distance in parsecs")
	samples := fs.Int("samples", 0, "number of grid samples")
	logLevel := fs.String("log-level", "", "debug, info, warn or error")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: gwchirp [flags]\n\n")
		fmt.Fprintf(stderr, "Plots the leading-order inspiral strain of a binary black hole.\n\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return 2
	}

	cfg, err := config.Load(ctx, *configPath)
	if err != nil {
		fmt.Fprintf(stderr, "gwchirp: %v\n", err)
		return 1
	}

	// Only flags given on the command line override the loaded config.
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "out":
			cfg.PlotFile = *out
		case "csv":
			cfg.CSVFile = *csvPath
		case "wav":
			cfg.WAVFile = *wavPath
		case "spectrum":
			cfg.SpectrumFile = *spectrumPath
		case "metrics":
			cfg.MetricsFile = *metricsPath
		case "show":
			cfg.Show = *show
		case "m1":
			cfg.Mass1Solar = *m1
		case "m2":
			cfg.Mass2Solar = *m2
		case "distance-pc":
			cfg.DistancePc = *distance
		case "samples":
			cfg.GridSamples = *samples
		case "log-level":
			cfg.LogLevel = *logLevel
		}
	})

	logger, err := logging.NewWithWriter(stderr, cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		fmt.Fprintf(stderr, "gwchirp: %v\n", err)
		return 1
	}
	defer func() { _ = logging.Sync(logger) }()

	res, err := app.New(
		app.WithConfig(cfg),
		app.WithLogger(logger),
		app.WithViewer(view),
	).Run(ctx)
	if err != nil {
		logger.Error("run failed", zap.String("run_id", res.RunID), zap.Error(err))
		return 1
	}

	printSummary(stdout, res)
	return 0
}

func printSummary(w io.Writer, res app.Result) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Run\t%s\n", res.RunID)
	fmt.Fprintf(tw, "Chirp mass\t%.2f Msun\n", res.ChirpMassSolar)
	fmt.Fprintf(tw, "Samples\t%d\n", res.Series.Len())
	fmt.Fprintf(tw, "Peak strain\t%.4g\n", res.Stats.Peak)
	fmt.Fprintf(tw, "RMS strain\t%.4g\n", res.Stats.RMS)
	fmt.Fprintf(tw, "Cycles\t%.1f\n", res.Stats.Cycles())
	fmt.Fprintf(tw, "Evaluation\t%s\n", res.EvalDuration)
	for _, kind := range []string{"plot", "csv", "wav", "spectrum"} {
		if path, ok := res.Files[kind]; ok {
			fmt.Fprintf(tw, "Output (%s)\t%s\n", kind, path)
		}
	}
	tw.Flush()
}
