package time

import (
	"math"
	"testing"
)

const tolerance = 1e-10

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

// generateSine creates a sine wave with exactly numCycles full cycles.
func generateSine(amplitude, freq, sampleRate float64, numCycles int) []float64 {
	samplesPerCycle := int(sampleRate / freq)
	n := samplesPerCycle * numCycles
	out := make([]float64, n)
	for i := range out {
		out[i] = amplitude * math.Sin(2*math.Pi*freq*float64(i)/sampleRate)
	}
	return out
}

func TestCalculate_DCSignal(t *testing.T) {
	signal := make([]float64, 1000)
	for i := range signal {
		signal[i] = -0.5
	}
	s := Calculate(signal)

	if s.Length != 1000 {
		t.Errorf("Length = %d, want 1000", s.Length)
	}
	if !almostEqual(s.Mean, -0.5, tolerance) {
		t.Errorf("Mean = %v, want -0.5", s.Mean)
	}
	if !almostEqual(s.RMS, 0.5, tolerance) {
		t.Errorf("RMS = %v, want 0.5", s.RMS)
	}
	if s.Peak != 0.5 || s.PeakPos != 0 {
		t.Errorf("Peak = %v at %d, want 0.5 at 0", s.Peak, s.PeakPos)
	}
	if !almostEqual(s.CrestFactor, 1, tolerance) {
		t.Errorf("CrestFactor = %v, want 1", s.CrestFactor)
	}
	if s.ZeroCrossings != 0 {
		t.Errorf("ZeroCrossings = %d, want 0", s.ZeroCrossings)
	}
}

func TestCalculate_SineWave(t *testing.T) {
	signal := generateSine(2e-14, 100, 48000, 10)
	s := Calculate(signal)

	if !almostEqual(s.RMS/2e-14, 1/math.Sqrt2, 1e-6) {
		t.Errorf("RMS = %g, want %g", s.RMS, 2e-14/math.Sqrt2)
	}
	if !almostEqual(s.Peak/2e-14, 1, 1e-6) {
		t.Errorf("Peak = %g, want 2e-14", s.Peak)
	}
	if !almostEqual(s.Mean/2e-14, 0, 1e-9) {
		t.Errorf("Mean = %g, want ~0", s.Mean)
	}
	// 10 cycles sampled from phase 0: two crossings per cycle minus the
	// unsampled final return to zero.
	if s.ZeroCrossings < 18 || s.ZeroCrossings > 20 {
		t.Errorf("ZeroCrossings = %d, want ~19", s.ZeroCrossings)
	}
	if c := s.Cycles(); c < 9 || c > 10 {
		t.Errorf("Cycles() = %v, want ~10", c)
	}
}

func TestCalculate_NegativePeak(t *testing.T) {
	s := Calculate([]float64{0.1, -0.7, 0.5})
	if s.Peak != 0.7 || s.PeakPos != 1 {
		t.Errorf("Peak = %v at %d, want 0.7 at 1", s.Peak, s.PeakPos)
	}
	if s.Max != 0.5 || s.MaxPos != 2 || s.Min != -0.7 || s.MinPos != 1 {
		t.Errorf("Max/Min = %v@%d / %v@%d", s.Max, s.MaxPos, s.Min, s.MinPos)
	}
	if s.ZeroCrossings != 2 {
		t.Errorf("ZeroCrossings = %d, want 2", s.ZeroCrossings)
	}
}

func TestCalculate_EmptySignal(t *testing.T) {
	s := Calculate(nil)
	if s != (Stats{}) {
		t.Errorf("Calculate(nil) = %+v, want zero Stats", s)
	}
}
