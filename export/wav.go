package export

import (
	"fmt"
	"io"
	"math"

	"github.com/faiface/beep"
	"github.com/faiface/beep/wav"

	"github.com/cwbudde/algo-gw/dsp/signal"
	"github.com/cwbudde/algo-gw/inspiral"
)

// Audio defaults.
const (
	DefaultSampleRate = 44100
	DefaultPeak       = 0.9

	// MaxAudioSamples bounds the length of a sonified grid, about ten
	// minutes at 48 kHz.
	MaxAudioSamples = 1 << 25
)

// Sonify evaluates w at audio rate over the span of g and returns the
// strain in physical time order (merger last), normalised to DefaultPeak.
func Sonify(w inspiral.Waveform, g inspiral.Grid, sampleRate int) ([]float64, error) {
	if sampleRate <= 0 {
		return nil, ErrInvalidSampleRate
	}
	if err := g.Validate(); err != nil {
		return nil, err
	}

	span := (g.Stop - g.Start) * float64(sampleRate)
	if span >= MaxAudioSamples {
		return nil, fmt.Errorf("%w: %.0f samples", ErrAudioTooLong, span+1)
	}

	n := int(math.Round(span)) + 1
	audio := inspiral.Grid{Start: g.Start, Stop: g.Stop, Samples: max(n, 2)}

	s, err := w.Generate(audio)
	if err != nil {
		return nil, err
	}

	return signal.Normalize(s.Chronological().Strain, DefaultPeak)
}

// WriteWAV encodes mono samples in [-1, 1] as 16-bit PCM WAV.
func WriteWAV(w io.WriteSeeker, samples []float64, sampleRate int) error {
	if len(samples) == 0 {
		return ErrEmptySeries
	}
	if sampleRate <= 0 {
		return ErrInvalidSampleRate
	}
	for i, v := range samples {
		if !(v >= -1 && v <= 1) {
			return fmt.Errorf("%w: sample %d = %g", ErrSampleRange, i, v)
		}
	}

	format := beep.Format{
		SampleRate:  beep.SampleRate(sampleRate),
		NumChannels: 1,
		Precision:   2,
	}

	if err := wav.Encode(w, monoStreamer(samples), format); err != nil {
		return fmt.Errorf("export: encode wav: %w", err)
	}
	return nil
}

// monoStreamer plays samples once on both channels.
func monoStreamer(samples []float64) beep.Streamer {
	pos := 0
	return beep.StreamerFunc(func(buf [][2]float64) (int, bool) {
		if pos >= len(samples) {
			return 0, false
		}
		n := 0
		for n < len(buf) && pos < len(samples) {
			buf[n][0] = samples[pos]
			buf[n][1] = samples[pos]
			n++
			pos++
		}
		return n, true
	})
}
