package export

import (
	"bytes"
	"encoding/binary"
	"encoding/csv"
	"errors"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/cwbudde/algo-gw/inspiral"
	timestats "github.com/cwbudde/algo-gw/stats/time"
)

func TestWriteCSVRoundTrip(t *testing.T) {
	s, err := inspiral.NewWaveform(inspiral.DefaultBinary()).Generate(inspiral.Grid{Start: 1e-4, Stop: 0.1, Samples: 50})
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := WriteCSV(&buf, s); err != nil {
		t.Fatalf("WriteCSV() error = %v", err)
	}

	recs, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	if len(recs) != 51 {
		t.Fatalf("records = %d, want 51", len(recs))
	}
	if recs[0][0] != "time_s" || recs[0][1] != "strain" {
		t.Errorf("header = %v", recs[0])
	}
	for i, rec := range recs[1:] {
		tv, _ := strconv.ParseFloat(rec[0], 64)
		hv, _ := strconv.ParseFloat(rec[1], 64)
		if tv != s.Time[i] || hv != s.Strain[i] {
			t.Fatalf("row %d = %v, want %v,%v", i, rec, s.Time[i], s.Strain[i])
		}
	}
}

func TestWriteCSVErrors(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, inspiral.Series{}); !errors.Is(err, ErrEmptySeries) {
		t.Errorf("empty error = %v, want ErrEmptySeries", err)
	}
	s := inspiral.Series{Time: []float64{1, 2}, Strain: []float64{0}}
	if err := WriteCSV(&buf, s); !errors.Is(err, ErrLengthMismatch) {
		t.Errorf("mismatch error = %v, want ErrLengthMismatch", err)
	}
}

func TestSonify(t *testing.T) {
	w := inspiral.NewWaveform(inspiral.DefaultBinary())
	audio, err := Sonify(w, inspiral.DefaultGrid(), DefaultSampleRate)
	if err != nil {
		t.Fatalf("Sonify() error = %v", err)
	}

	// 0.0999 s at 44.1 kHz.
	if want := int(math.Round(0.0999*DefaultSampleRate)) + 1; len(audio) != want {
		t.Errorf("len = %d, want %d", len(audio), want)
	}

	st := timestats.Calculate(audio)
	if math.Abs(st.Peak-DefaultPeak) > 1e-12 {
		t.Errorf("peak = %v, want %v", st.Peak, DefaultPeak)
	}

	// Amplitude rises toward merger, which is the end of the buffer.
	q := len(audio) / 4
	if timestats.Calculate(audio[:q]).Peak >= timestats.Calculate(audio[len(audio)-q:]).Peak {
		t.Error("audio does not grow toward merger")
	}

	if _, err := Sonify(w, inspiral.DefaultGrid(), 0); !errors.Is(err, ErrInvalidSampleRate) {
		t.Errorf("rate 0 error = %v, want ErrInvalidSampleRate", err)
	}
	if _, err := Sonify(w, inspiral.Grid{}, DefaultSampleRate); !errors.Is(err, inspiral.ErrGridStart) {
		t.Errorf("bad grid error = %v, want ErrGridStart", err)
	}
}

func TestSonifyRejectsLongSpan(t *testing.T) {
	w := inspiral.NewWaveform(inspiral.DefaultBinary())
	g := inspiral.Grid{Start: 1e-4, Stop: 3600, Samples: 10}

	if _, err := Sonify(w, g, DefaultSampleRate); !errors.Is(err, ErrAudioTooLong) {
		t.Fatalf("one hour at 44.1 kHz: error = %v, want ErrAudioTooLong", err)
	}
}

func TestWriteWAV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chirp.wav")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}

	samples := []float64{0, 0.5, -0.5, 0.9, -0.9}
	if err := WriteWAV(f, samples, 8000); err != nil {
		t.Fatalf("WriteWAV() error = %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(data) != 44+2*len(samples) {
		t.Fatalf("file size = %d, want %d", len(data), 44+2*len(samples))
	}
	if string(data[0:4]) != "RIFF" || string(data[8:12]) != "WAVE" {
		t.Fatalf("bad header %q", data[:12])
	}
	if ch := binary.LittleEndian.Uint16(data[22:24]); ch != 1 {
		t.Errorf("channels = %d, want 1", ch)
	}
	if rate := binary.LittleEndian.Uint32(data[24:28]); rate != 8000 {
		t.Errorf("sample rate = %d, want 8000", rate)
	}
}

func TestWriteWAVErrors(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "bad.wav"))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	if err := WriteWAV(f, nil, 8000); !errors.Is(err, ErrEmptySeries) {
		t.Errorf("empty error = %v, want ErrEmptySeries", err)
	}
	if err := WriteWAV(f, []float64{0}, 0); !errors.Is(err, ErrInvalidSampleRate) {
		t.Errorf("rate error = %v, want ErrInvalidSampleRate", err)
	}
	if err := WriteWAV(f, []float64{1.5}, 8000); !errors.Is(err, ErrSampleRange) {
		t.Errorf("range error = %v, want ErrSampleRange", err)
	}
	if err := WriteWAV(f, []float64{math.NaN()}, 8000); !errors.Is(err, ErrSampleRange) {
		t.Errorf("NaN error = %v, want ErrSampleRange", err)
	}
}
