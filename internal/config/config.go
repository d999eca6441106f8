// Package config defines the gwchirp run configuration and its loader.
//
// Values are layered defaults -> YAML file -> GWCHIRP_* environment
// variables; command-line flags are applied on top by the caller.
package config

import (
	"fmt"
	"math"
	"runtime"
	"strings"

	"github.com/cwbudde/algo-gw/inspiral"
	"github.com/cwbudde/algo-gw/internal/logging"
	"github.com/cwbudde/algo-gw/render"
	"github.com/cwbudde/algo-gw/units"
)

// Config contains the run configuration. Masses are in solar masses and the
// distance in parsecs; Binary and Grid convert to SI.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// LogFormat selects the encoder: json or console.
	LogFormat string `koanf:"log_format"`

	Mass1Solar float64 `koanf:"mass1_solar"`
	Mass2Solar float64 `koanf:"mass2_solar"`
	DistancePc float64 `koanf:"distance_pc"`

	// GridStart and GridStop bound the time grid in seconds before merger.
	GridStart   float64 `koanf:"grid_start"`
	GridStop    float64 `koanf:"grid_stop"`
	GridSamples int     `koanf:"grid_samples"`

	// Workers sets the number of goroutines evaluating the grid.
	Workers int `koanf:"workers"`

	PlotFile     string  `koanf:"plot_file"`
	PlotWidthIn  float64 `koanf:"plot_width_in"`
	PlotHeightIn float64 `koanf:"plot_height_in"`
	Title        string  `koanf:"title"`

	// Show opens an interactive window with the chart. On by default; the
	// chart file is written either way.
	Show bool `koanf:"show"`

	CSVFile       string `koanf:"csv_file"`
	WAVFile       string `koanf:"wav_file"`
	WAVSampleRate int    `koanf:"wav_sample_rate"`
	SpectrumFile  string `koanf:"spectrum_file"`

	// MetricsFile receives Prometheus text-format run metrics.
	MetricsFile string `koanf:"metrics_file"`
}

// New returns a Config with the default system: two 30 solar-mass black
// holes at 1e9 pc sampled 10,000 times over [1e-4, 0.1] s.
func New() *Config {
	return &Config{
		LogLevel:      "info",
		LogFormat:     "console",
		Mass1Solar:    30,
		Mass2Solar:    30,
		DistancePc:    1e9,
		GridStart:     inspiral.DefaultGridStart,
		GridStop:      inspiral.DefaultGridStop,
		GridSamples:   inspiral.DefaultGridSamples,
		Workers:       runtime.NumCPU(),
		PlotFile:      "gw_strain.png",
		PlotWidthIn:   10,
		PlotHeightIn:  6,
		Title:         render.DefaultTitle,
		Show:          true,
		WAVSampleRate: 44100,
	}
}

// Binary returns the configured system in SI units.
func (c *Config) Binary() inspiral.Binary {
	return inspiral.Binary{
		Mass1:    units.SolarMasses(c.Mass1Solar),
		Mass2:    units.SolarMasses(c.Mass2Solar),
		Distance: units.Parsecs(c.DistancePc),
	}
}

// Grid returns the configured time grid.
func (c *Config) Grid() inspiral.Grid {
	return inspiral.Grid{
		Start:   c.GridStart,
		Stop:    c.GridStop,
		Samples: c.GridSamples,
	}
}

// RenderOptions returns chart options for the strain plot.
func (c *Config) RenderOptions() render.Options {
	opts := render.DefaultOptions()
	opts.Title = c.Title
	opts.Width = c.PlotWidthIn
	opts.Height = c.PlotHeightIn
	return opts
}

// Validate reports the first invalid field wrapped in ErrInvalidConfig.
func (c *Config) Validate() error {
	if err := c.Binary().Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	if err := c.Grid().Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	if c.Workers <= 0 {
		return fmt.Errorf("%w: workers must be > 0, got %d", ErrInvalidConfig, c.Workers)
	}

	if !(c.PlotWidthIn > 0) || !(c.PlotHeightIn > 0) || math.IsInf(c.PlotWidthIn, 1) || math.IsInf(c.PlotHeightIn, 1) {
		return fmt.Errorf("%w: plot size must be positive, got %gx%g", ErrInvalidConfig, c.PlotWidthIn, c.PlotHeightIn)
	}

	if c.WAVFile != "" && c.WAVSampleRate <= 0 {
		return fmt.Errorf("%w: wav_sample_rate must be > 0, got %d", ErrInvalidConfig, c.WAVSampleRate)
	}

	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	switch strings.ToLower(c.LogFormat) {
	case "json", "console":
	default:
		return fmt.Errorf("%w: unknown log_format %q", ErrInvalidConfig, c.LogFormat)
	}

	return nil
}
