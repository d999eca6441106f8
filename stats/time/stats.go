// Package time computes summary statistics of sampled time series such as
// a strain waveform.
package time

import "math"

// Stats holds time-domain statistics of a sampled series.
type Stats struct {
	Length        int
	Mean          float64
	RMS           float64
	Max           float64
	MaxPos        int
	Min           float64
	MinPos        int
	Peak          float64 // max(|max|, |min|)
	PeakPos       int
	CrestFactor   float64 // peak / RMS (linear)
	Energy        float64 // sum of squares
	ZeroCrossings int
}

// Cycles approximates the number of oscillation cycles in the series: two
// zero crossings per cycle.
func (s Stats) Cycles() float64 {
	return float64(s.ZeroCrossings) / 2
}

// Calculate computes all statistics in a single pass.
func Calculate(signal []float64) Stats {
	n := len(signal)
	if n == 0 {
		return Stats{}
	}

	var (
		sum           float64
		sumSq         float64
		maxVal        = signal[0]
		maxPos        int
		minVal        = signal[0]
		minPos        int
		zeroCrossings int
	)

	for i, x := range signal {
		sum += x
		sumSq += x * x

		if x > maxVal {
			maxVal = x
			maxPos = i
		}

		if x < minVal {
			minVal = x
			minPos = i
		}

		if i > 0 && signal[i-1]*x < 0 {
			zeroCrossings++
		}
	}

	nf := float64(n)
	rms := math.Sqrt(sumSq / nf)

	peak, peakPos := maxVal, maxPos
	if math.Abs(minVal) > math.Abs(maxVal) {
		peak, peakPos = math.Abs(minVal), minPos
	} else {
		peak = math.Abs(peak)
	}

	var crest float64
	if rms > 0 {
		crest = peak / rms
	}

	return Stats{
		Length:        n,
		Mean:          sum / nf,
		RMS:           rms,
		Max:           maxVal,
		MaxPos:        maxPos,
		Min:           minVal,
		MinPos:        minPos,
		Peak:          peak,
		PeakPos:       peakPos,
		CrestFactor:   crest,
		Energy:        sumSq,
		ZeroCrossings: zeroCrossings,
	}
}
