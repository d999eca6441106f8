package inspiral

import (
	"context"
	"fmt"
	"math"

	"golang.org/x/sync/errgroup"
)

// Strain returns h(t) for the given masses (kg) and distance (m) using SI
// constants. It does not validate its inputs: t <= 0 produces NaN.
func Strain(t, m1, m2, distance float64) float64 {
	return NewWaveform(Binary{Mass1: m1, Mass2: m2, Distance: distance}).Strain(t)
}

// Evaluate maps Strain over times for the binary b using SI constants.
func Evaluate(times []float64, b Binary) ([]float64, error) {
	return NewWaveform(b).Evaluate(times)
}

// Waveform evaluates the strain of one binary under one set of constants.
// The zero value is not usable; construct with NewWaveform.
type Waveform struct {
	Binary    Binary
	Constants Constants
}

// NewWaveform returns a waveform for b using SI constants.
func NewWaveform(b Binary) Waveform {
	return Waveform{Binary: b, Constants: SI}
}

// Validate checks the binary and the constants.
func (w Waveform) Validate() error {
	if err := w.Binary.Validate(); err != nil {
		return err
	}
	return w.Constants.Validate()
}

// Strain returns h(t) = A(t) * sin(2 pi f_gw(t) t).
func (w Waveform) Strain(t float64) float64 {
	return w.strainAt(t, w.Binary.ChirpMass())
}

func (w Waveform) strainAt(t, mc float64) float64 {
	b := w.Binary
	fOrb := w.Constants.OrbitalFrequency(t, mc)
	amp := w.Constants.Amplitude(b.Mass1, b.Mass2, b.Distance, fOrb)
	fGW := WaveFrequency(fOrb)
	return amp * math.Sin(2*math.Pi*fGW*t)
}

// Evaluate returns the strain at each element of times, co-indexed with the
// input. Samples are independent of each other.
//
// It fails with ErrNonPositiveTime if any t <= 0 (or NaN) and with
// ErrNonFinite if a sample overflows.
func (w Waveform) Evaluate(times []float64) ([]float64, error) {
	if err := w.Validate(); err != nil {
		return nil, err
	}

	if err := checkTimes(times); err != nil {
		return nil, err
	}

	mc := w.Binary.ChirpMass()
	out := make([]float64, len(times))
	for i, t := range times {
		out[i] = w.strainAt(t, mc)
	}

	if err := checkFinite(times, out); err != nil {
		return nil, err
	}

	return out, nil
}

// EvaluateParallel is Evaluate split across workers goroutines. The result
// is bit-identical to Evaluate.
func (w Waveform) EvaluateParallel(ctx context.Context, times []float64, workers int) ([]float64, error) {
	if workers <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidWorkers, workers)
	}

	if err := w.Validate(); err != nil {
		return nil, err
	}

	if err := checkTimes(times); err != nil {
		return nil, err
	}

	mc := w.Binary.ChirpMass()
	out := make([]float64, len(times))

	chunk := (len(times) + workers - 1) / workers
	if chunk == 0 {
		return out, nil
	}

	g, ctx := errgroup.WithContext(ctx)
	for lo := 0; lo < len(times); lo += chunk {
		hi := min(lo+chunk, len(times))
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			for i := lo; i < hi; i++ {
				out[i] = w.strainAt(times[i], mc)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	if err := checkFinite(times, out); err != nil {
		return nil, err
	}

	return out, nil
}

func checkTimes(times []float64) error {
	for i, t := range times {
		if !(t > 0) {
			return fmt.Errorf("%w: times[%d] = %g", ErrNonPositiveTime, i, t)
		}
	}
	return nil
}

func checkFinite(times, strain []float64) error {
	for i, h := range strain {
		if !finite(h) {
			return fmt.Errorf("%w: h(%g) = %g at index %d", ErrNonFinite, times[i], h, i)
		}
	}
	return nil
}
