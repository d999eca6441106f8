package inspiral

import (
	"github.com/cwbudde/algo-gw/dsp/signal"
)

// Default grid: 10,000 samples between 0.1 ms and 100 ms before merger.
const (
	DefaultGridStart   = 1e-4
	DefaultGridStop    = 0.1
	DefaultGridSamples = 10000
)

// Grid describes an evenly spaced set of times before merger.
type Grid struct {
	Start   float64 // s, must be > 0
	Stop    float64 // s
	Samples int
}

// DefaultGrid returns the grid [1e-4, 0.1] s with 10,000 samples.
func DefaultGrid() Grid {
	return Grid{
		Start:   DefaultGridStart,
		Stop:    DefaultGridStop,
		Samples: DefaultGridSamples,
	}
}

// Validate checks the grid bounds and sample count.
func (g Grid) Validate() error {
	if !(g.Start > 0) || !finite(g.Start) {
		return ErrGridStart
	}

	if !(g.Stop > g.Start) || !finite(g.Stop) {
		return ErrGridOrder
	}

	if g.Samples < 1 {
		return ErrGridSamples
	}

	return nil
}

// Times returns the sample times of the grid.
func (g Grid) Times() ([]float64, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}
	return signal.Linspace(g.Start, g.Stop, g.Samples)
}

// Series is a strain time series. Time[i] is in seconds before merger and
// Strain[i] is the dimensionless strain at that time.
type Series struct {
	Time   []float64
	Strain []float64
}

// Len returns the number of samples.
func (s Series) Len() int {
	return len(s.Time)
}

// Chronological returns the series ordered by physical time with merger
// last. Times become negative offsets from merger (t' = -t) so that they
// remain strictly increasing.
func (s Series) Chronological() Series {
	rt := signal.Reverse(s.Time)
	for i := range rt {
		rt[i] = -rt[i]
	}
	return Series{
		Time:   rt,
		Strain: signal.Reverse(s.Strain),
	}
}

// Generate evaluates the waveform over the grid.
func (w Waveform) Generate(g Grid) (Series, error) {
	times, err := g.Times()
	if err != nil {
		return Series{}, err
	}

	strain, err := w.Evaluate(times)
	if err != nil {
		return Series{}, err
	}

	return Series{Time: times, Strain: strain}, nil
}
