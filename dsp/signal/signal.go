package signal

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Errors returned by grid construction.
var (
	ErrInvalidCount = errors.New("signal: sample count must be >= 1")
	ErrInvalidRange = errors.New("signal: range bounds must be finite")
)

// Linspace returns n evenly spaced samples over the closed interval
// [start, stop].
//
// The first element is exactly start and the last exactly stop; the spacing
// is (stop-start)/(n-1). A single sample yields [start].
func Linspace(start, stop float64, n int) ([]float64, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCount, n)
	}
	if math.IsNaN(start) || math.IsInf(start, 0) || math.IsNaN(stop) || math.IsInf(stop, 0) {
		return nil, ErrInvalidRange
	}

	out := make([]float64, n)
	if n == 1 {
		out[0] = start
		return out, nil
	}

	floats.Span(out, start, stop)
	// Span accumulates start+i*step; pin the endpoint.
	out[n-1] = stop

	return out, nil
}

// Step returns the uniform spacing of a Linspace grid.
func Step(start, stop float64, n int) float64 {
	if n < 2 {
		return 0
	}
	return (stop - start) / float64(n-1)
}

// Normalize scales data to target peak amplitude and returns a new slice.
func Normalize(data []float64, targetPeak float64) ([]float64, error) {
	if targetPeak < 0 {
		return nil, fmt.Errorf("normalize target peak must be >= 0: %f", targetPeak)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("normalize input must not be empty")
	}

	out := make([]float64, len(data))
	maxAbs := math.Max(math.Abs(floats.Max(data)), math.Abs(floats.Min(data)))
	if maxAbs == 0 || targetPeak == 0 {
		return out, nil
	}
	if math.IsInf(maxAbs, 0) || math.IsNaN(maxAbs) {
		return nil, fmt.Errorf("normalize input must be finite")
	}

	floats.ScaleTo(out, targetPeak/maxAbs, data)
	return out, nil
}

// Reverse returns a reversed copy of data.
func Reverse(data []float64) []float64 {
	out := make([]float64, len(data))
	for i, v := range data {
		out[len(data)-1-i] = v
	}
	return out
}
