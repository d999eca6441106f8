package spectrum

import (
	"errors"
	"fmt"
	"math"
	"sync"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-gw/dsp/window"
)

// Errors returned by spectrum functions.
var (
	ErrTooShort          = errors.New("spectrum: at least 2 samples are required")
	ErrInvalidSampleRate = errors.New("spectrum: sample rate must be positive")
)

// scratchBuf holds pooled scratch memory for complex-to-real unpacking.
type scratchBuf struct {
	data []float64
}

var scratchPool = sync.Pool{
	New: func() any { return &scratchBuf{} },
}

func getScratch(n int) (re, im []float64, buf *scratchBuf) {
	buf = scratchPool.Get().(*scratchBuf)
	need := 2 * n
	if cap(buf.data) < need {
		buf.data = make([]float64, need)
	} else {
		buf.data = buf.data[:need]
	}
	return buf.data[:n], buf.data[n:need], buf
}

func putScratch(buf *scratchBuf) {
	scratchPool.Put(buf)
}

// Spectrum is a one-sided amplitude spectrum. Freq[i] is the centre of bin
// i in Hz and Magnitude[i] its amplitude in the unit of the input samples.
type Spectrum struct {
	Freq      []float64
	Magnitude []float64
	FFTSize   int
}

// Peak returns the frequency and magnitude of the strongest non-DC bin.
func (s Spectrum) Peak() (freq, mag float64) {
	best := -1
	for i := 1; i < len(s.Magnitude); i++ {
		if best < 0 || s.Magnitude[i] > s.Magnitude[best] {
			best = i
		}
	}
	if best < 0 {
		return 0, 0
	}
	return s.Freq[best], s.Magnitude[best]
}

// Magnitude returns |X[k]| for each complex spectrum bin.
//
// Scratch buffers are pooled internally, so in steady state this allocates
// only the output slice.
func Magnitude(in []complex128) []float64 {
	if len(in) == 0 {
		return nil
	}

	out := make([]float64, len(in))
	re, im, buf := getScratch(len(in))

	for i, c := range in {
		re[i] = real(c)
		im[i] = imag(c)
	}

	vecmath.Magnitude(out, re, im)
	putScratch(buf)
	return out
}

// Compute returns the Hann-windowed one-sided amplitude spectrum of samples
// taken at sampleRate Hz.
func Compute(samples []float64, sampleRate float64) (Spectrum, error) {
	if len(samples) < 2 {
		return Spectrum{}, ErrTooShort
	}
	if !(sampleRate > 0) || math.IsInf(sampleRate, 1) {
		return Spectrum{}, ErrInvalidSampleRate
	}

	win, err := window.Hann(len(samples))
	if err != nil {
		return Spectrum{}, fmt.Errorf("spectrum: %w", err)
	}
	gain, err := window.CoherentGain(win)
	if err != nil {
		return Spectrum{}, fmt.Errorf("spectrum: %w", err)
	}

	tapered := make([]float64, len(samples))
	copy(tapered, samples)
	if err := window.ApplyCoefficientsInPlace(tapered, win); err != nil {
		return Spectrum{}, fmt.Errorf("spectrum: %w", err)
	}

	fftSize := nextPowerOf2(len(samples))
	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return Spectrum{}, fmt.Errorf("spectrum: failed to create FFT plan: %w", err)
	}

	in := make([]complex128, fftSize)
	for i, v := range tapered {
		in[i] = complex(v, 0)
	}

	bins := make([]complex128, fftSize)
	if err := plan.Forward(bins, in); err != nil {
		return Spectrum{}, fmt.Errorf("spectrum: forward FFT failed: %w", err)
	}

	half := fftSize/2 + 1
	mag := Magnitude(bins[:half])
	scale := 2 / gain
	for i := range mag {
		mag[i] *= scale
	}
	// DC and Nyquist have no mirrored counterpart.
	mag[0] /= 2
	mag[half-1] /= 2

	freq := make([]float64, half)
	df := sampleRate / float64(fftSize)
	for i := range freq {
		freq[i] = float64(i) * df
	}

	return Spectrum{Freq: freq, Magnitude: mag, FFTSize: fftSize}, nil
}

// nextPowerOf2 returns the next power of 2 >= n.
func nextPowerOf2(n int) int {
	if n <= 1 {
		return 1
	}

	p := 1
	for p < n {
		p *= 2
	}

	return p
}
