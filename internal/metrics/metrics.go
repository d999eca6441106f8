// Package metrics records per-run gauges for gwchirp and writes them in the
// Prometheus text format for a node-exporter textfile collector.
package metrics

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Namespace prefixes every metric name.
const Namespace = "gwchirp"

// ErrNoPath is returned by WriteTextfile when path is empty.
var ErrNoPath = errors.New("metrics: textfile path is empty")

// Recorder holds the run metrics on its own registry.
type Recorder struct {
	registry *prometheus.Registry

	samples      prometheus.Gauge
	peakStrain   prometheus.Gauge
	chirpMass    prometheus.Gauge
	cycles       prometheus.Gauge
	evalSeconds  prometheus.Gauge
	lastRunUnix  prometheus.Gauge
	runs         *prometheus.CounterVec
	filesWritten *prometheus.CounterVec
}

// NewRecorder registers the run metrics on a fresh registry.
func NewRecorder() *Recorder {
	r := &Recorder{registry: prometheus.NewRegistry()}
	auto := promauto.With(r.registry)

	r.samples = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: Namespace,
		Name:      "samples",
		Help:      "Number of strain samples evaluated in the last run",
	})
	r.peakStrain = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: Namespace,
		Name:      "peak_strain",
		Help:      "Peak absolute strain of the last run",
	})
	r.chirpMass = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: Namespace,
		Name:      "chirp_mass_solar",
		Help:      "Chirp mass of the simulated binary in solar masses",
	})
	r.cycles = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: Namespace,
		Name:      "cycles",
		Help:      "Approximate number of wave cycles in the time window",
	})
	r.evalSeconds = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: Namespace,
		Name:      "evaluation_seconds",
		Help:      "Wall time spent evaluating the waveform",
	})
	r.lastRunUnix = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: Namespace,
		Name:      "last_run_timestamp_seconds",
		Help:      "Unix time the last run finished",
	})
	r.runs = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "runs_total",
		Help:      "Runs by outcome",
	}, []string{"outcome"})
	r.filesWritten = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "files_written_total",
		Help:      "Output files written by kind",
	}, []string{"kind"})

	return r
}

// Registry exposes the underlying registry, mainly for tests.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// ObserveWaveform records the evaluated waveform summary.
func (r *Recorder) ObserveWaveform(samples int, peak, chirpMassSolar, cycles float64, eval time.Duration) {
	r.samples.Set(float64(samples))
	r.peakStrain.Set(peak)
	r.chirpMass.Set(chirpMassSolar)
	r.cycles.Set(cycles)
	r.evalSeconds.Set(eval.Seconds())
}

// FileWritten counts one output file of the given kind (plot, csv, wav,
// spectrum).
func (r *Recorder) FileWritten(kind string) {
	r.filesWritten.WithLabelValues(kind).Inc()
}

// Finish records the run outcome and its completion time.
func (r *Recorder) Finish(err error, now time.Time) {
	outcome := "success"
	if err != nil {
		outcome = "error"
	}
	r.runs.WithLabelValues(outcome).Inc()
	r.lastRunUnix.Set(float64(now.Unix()))
}

// WriteTextfile atomically writes all metrics to path.
func (r *Recorder) WriteTextfile(path string) error {
	if path == "" {
		return ErrNoPath
	}
	return prometheus.WriteToTextfile(path, r.registry)
}
