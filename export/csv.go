package export

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/cwbudde/algo-gw/inspiral"
)

// Errors returned by exporters.
var (
	ErrEmptySeries       = errors.New("export: series is empty")
	ErrLengthMismatch    = errors.New("export: time and strain lengths differ")
	ErrInvalidSampleRate = errors.New("export: sample rate must be positive")
	ErrSampleRange       = errors.New("export: audio samples must be finite and within [-1, 1]")
	ErrAudioTooLong      = errors.New("export: audio span exceeds MaxAudioSamples")
)

// CSVHeader is the first record written by WriteCSV.
var CSVHeader = []string{"time_s", "strain"}

// WriteCSV writes s as a two-column CSV table with a header row. Values are
// formatted with the shortest representation that round-trips.
func WriteCSV(w io.Writer, s inspiral.Series) error {
	if s.Len() == 0 {
		return ErrEmptySeries
	}
	if len(s.Time) != len(s.Strain) {
		return fmt.Errorf("%w: %d != %d", ErrLengthMismatch, len(s.Time), len(s.Strain))
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(CSVHeader); err != nil {
		return fmt.Errorf("export: write csv header: %w", err)
	}

	rec := make([]string, 2)
	for i := range s.Time {
		rec[0] = strconv.FormatFloat(s.Time[i], 'g', -1, 64)
		rec[1] = strconv.FormatFloat(s.Strain[i], 'g', -1, 64)
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("export: write csv row %d: %w", i, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("export: flush csv: %w", err)
	}
	return nil
}
