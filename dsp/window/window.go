// Package window provides the taper applied to strain samples before a
// Fourier transform.
package window

import (
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// Hann returns symmetric Hann window coefficients. A single-sample window
// is [1].
func Hann(size int) ([]float64, error) {
	if err := validateLength(size); err != nil {
		return nil, err
	}

	out := make([]float64, size)
	if size == 1 {
		out[0] = 1
		return out, nil
	}

	den := float64(size - 1)
	for n := range out {
		out[n] = 0.5 - 0.5*math.Cos(2*math.Pi*float64(n)/den)
	}

	return out, nil
}

// CoherentGain returns the sum of the coefficients, the factor by which the
// window scales a bin-centred sinusoid.
func CoherentGain(coeffs []float64) (float64, error) {
	if len(coeffs) == 0 {
		return 0, errEmptyCoeffs
	}

	sum := 0.0
	for _, c := range coeffs {
		sum += c
	}

	if sum == 0 {
		return 0, errZeroCoherentGain
	}

	return sum, nil
}

// ApplyCoefficientsInPlace multiplies samples with coefficients in place.
func ApplyCoefficientsInPlace(samples, coeffs []float64) error {
	if len(samples) != len(coeffs) {
		return errMismatchedLength
	}

	vecmath.MulBlockInPlace(samples, coeffs)

	return nil
}
