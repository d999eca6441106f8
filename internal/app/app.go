// Package app runs one gwchirp simulation: evaluate the strain over the
// configured grid, summarise it, render the chart and write the requested
// exports.
package app

import (
	"context"
	"errors"
	"fmt"
	"image"
	"os"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gonum.org/v1/plot"

	"github.com/cwbudde/algo-gw/dsp/signal"
	"github.com/cwbudde/algo-gw/dsp/spectrum"
	"github.com/cwbudde/algo-gw/export"
	"github.com/cwbudde/algo-gw/inspiral"
	"github.com/cwbudde/algo-gw/internal/config"
	"github.com/cwbudde/algo-gw/internal/metrics"
	"github.com/cwbudde/algo-gw/render"
	timestats "github.com/cwbudde/algo-gw/stats/time"
	"github.com/cwbudde/algo-gw/units"
)

// ErrNoConfig is returned by Run when the runner was built without a config.
var ErrNoConfig = errors.New("app: no config")

// Viewer displays a rendered chart and blocks until it is dismissed.
type Viewer func(title string, img image.Image) error

// Result summarises a finished run.
type Result struct {
	RunID          string
	Series         inspiral.Series
	Stats          timestats.Stats
	ChirpMassSolar float64
	Files          map[string]string // kind -> path
	EvalDuration   time.Duration
}

// Runner executes simulation runs.
type Runner struct {
	cfg     *config.Config
	logger  *zap.Logger
	metrics *metrics.Recorder
	viewer  Viewer
	now     func() time.Time
}

// Option applies a configuration option to the Runner.
type Option func(*Runner)

// WithConfig sets the run configuration.
func WithConfig(cfg *config.Config) Option {
	return func(r *Runner) {
		if cfg != nil {
			r.cfg = cfg
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l *zap.Logger) Option {
	return func(r *Runner) {
		if l != nil {
			r.logger = l
		}
	}
}

// WithMetrics sets the metrics recorder.
func WithMetrics(m *metrics.Recorder) Option {
	return func(r *Runner) {
		if m != nil {
			r.metrics = m
		}
	}
}

// WithViewer sets the function used when the config asks to show the chart.
func WithViewer(v Viewer) Option {
	return func(r *Runner) {
		r.viewer = v
	}
}

// WithClock overrides time.Now.
func WithClock(now func() time.Time) Option {
	return func(r *Runner) {
		if now != nil {
			r.now = now
		}
	}
}

// New constructs a Runner with the default config and a no-op logger.
func New(opts ...Option) *Runner {
	r := &Runner{
		cfg:     config.New(),
		logger:  zap.NewNop(),
		metrics: metrics.NewRecorder(),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run evaluates, renders and exports one waveform.
func (r *Runner) Run(ctx context.Context) (res Result, err error) {
	if r.cfg == nil {
		return Result{}, ErrNoConfig
	}

	res = Result{RunID: uuid.NewString(), Files: map[string]string{}}
	log := r.logger.With(zap.String("run_id", res.RunID))

	defer func() {
		r.metrics.Finish(err, r.now())
		if r.cfg.MetricsFile == "" {
			return
		}
		if werr := r.metrics.WriteTextfile(r.cfg.MetricsFile); werr != nil {
			log.Warn("write metrics failed", zap.String("path", r.cfg.MetricsFile), zap.Error(werr))
			return
		}
		log.Debug("metrics written", zap.String("path", r.cfg.MetricsFile))
	}()

	if err = r.cfg.Validate(); err != nil {
		return res, err
	}

	b := r.cfg.Binary()
	g := r.cfg.Grid()
	wf := inspiral.NewWaveform(b)
	res.ChirpMassSolar = units.ToSolarMasses(b.ChirpMass())

	log.Info("simulating inspiral",
		zap.Float64("mass1_solar", r.cfg.Mass1Solar),
		zap.Float64("mass2_solar", r.cfg.Mass2Solar),
		zap.Float64("distance_pc", r.cfg.DistancePc),
		zap.Float64("chirp_mass_solar", res.ChirpMassSolar),
		zap.Int("samples", g.Samples),
		zap.Int("workers", r.cfg.Workers),
	)

	times, err := g.Times()
	if err != nil {
		return res, err
	}

	start := r.now()
	strain, err := wf.EvaluateParallel(ctx, times, r.cfg.Workers)
	if err != nil {
		return res, fmt.Errorf("evaluate waveform: %w", err)
	}
	res.EvalDuration = r.now().Sub(start)
	res.Series = inspiral.Series{Time: times, Strain: strain}
	res.Stats = timestats.Calculate(strain)

	r.metrics.ObserveWaveform(res.Series.Len(), res.Stats.Peak, res.ChirpMassSolar, res.Stats.Cycles(), res.EvalDuration)
	log.Info("waveform evaluated",
		zap.Duration("elapsed", res.EvalDuration),
		zap.Float64("peak_strain", res.Stats.Peak),
		zap.Float64("peak_time_s", times[res.Stats.PeakPos]),
		zap.Float64("rms", res.Stats.RMS),
		zap.Float64("cycles", res.Stats.Cycles()),
	)

	opts := r.cfg.RenderOptions()
	p, err := render.StrainPlot(res.Series, opts)
	if err != nil {
		return res, err
	}

	if r.cfg.PlotFile != "" {
		if err = render.Save(p, opts, r.cfg.PlotFile); err != nil {
			return res, err
		}
		r.wrote(log, &res, "plot", r.cfg.PlotFile)
	}

	if r.cfg.CSVFile != "" {
		if err = writeCSV(r.cfg.CSVFile, res.Series); err != nil {
			return res, err
		}
		r.wrote(log, &res, "csv", r.cfg.CSVFile)
	}

	if r.cfg.WAVFile != "" {
		if err = writeWAV(r.cfg.WAVFile, wf, g, r.cfg.WAVSampleRate); err != nil {
			return res, err
		}
		r.wrote(log, &res, "wav", r.cfg.WAVFile)
	}

	if r.cfg.SpectrumFile != "" {
		if err = r.writeSpectrum(log, res.Series, g); err != nil {
			return res, err
		}
		r.wrote(log, &res, "spectrum", r.cfg.SpectrumFile)
	}

	if r.cfg.Show {
		r.show(log, p, opts)
	}

	return res, nil
}

func (r *Runner) wrote(log *zap.Logger, res *Result, kind, path string) {
	res.Files[kind] = path
	r.metrics.FileWritten(kind)
	log.Info("file written", zap.String("kind", kind), zap.String("path", path))
}

// show displays the chart. Display failures are logged, not returned: a
// headless host still produces every file.
func (r *Runner) show(log *zap.Logger, p *plot.Plot, opts render.Options) {
	if r.viewer == nil {
		log.Warn("interactive display not available")
		return
	}

	img, err := render.Image(p, opts)
	if err != nil {
		log.Warn("rasterise chart failed", zap.Error(err))
		return
	}

	if err := r.viewer(opts.Title, img); err != nil {
		log.Warn("interactive display failed", zap.Error(err))
	}
}

func (r *Runner) writeSpectrum(log *zap.Logger, s inspiral.Series, g inspiral.Grid) error {
	if s.Len() < 2 {
		return spectrum.ErrTooShort
	}
	rate := 1 / signal.Step(g.Start, g.Stop, g.Samples)

	sp, err := spectrum.Compute(s.Chronological().Strain, rate)
	if err != nil {
		return fmt.Errorf("strain spectrum: %w", err)
	}

	freq, mag := sp.Peak()
	log.Info("strain spectrum", zap.Int("fft_size", sp.FFTSize), zap.Float64("peak_hz", freq), zap.Float64("peak_magnitude", mag))

	opts := r.cfg.RenderOptions()
	opts.Title = "Strain amplitude spectrum"
	opts.XLabel = "Frequency (Hz)"
	opts.YLabel = "|h(f)|"

	p, err := render.SpectrumPlot(sp, opts)
	if err != nil {
		return err
	}
	return render.Save(p, opts, r.cfg.SpectrumFile)
}

func writeCSV(path string, s inspiral.Series) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	return export.WriteCSV(f, s)
}

func writeWAV(path string, wf inspiral.Waveform, g inspiral.Grid, rate int) (err error) {
	samples, err := export.Sonify(wf, g, rate)
	if err != nil {
		return fmt.Errorf("sonify: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	return export.WriteWAV(f, samples, rate)
}
