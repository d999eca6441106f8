package metrics

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	. "github.com/smartystreets/goconvey/convey"
)

func TestRecorder(t *testing.T) {
	Convey("Given a new recorder", t, func() {
		r := NewRecorder()

		Convey("When a waveform is observed", func() {
			r.ObserveWaveform(10000, 1.5e-14, 26.12, 42.5, 250*time.Millisecond)

			Convey("Then the gauges hold the observed values", func() {
				So(testutil.ToFloat64(r.samples), ShouldEqual, 10000)
				So(testutil.ToFloat64(r.peakStrain), ShouldEqual, 1.5e-14)
				So(testutil.ToFloat64(r.chirpMass), ShouldEqual, 26.12)
				So(testutil.ToFloat64(r.cycles), ShouldEqual, 42.5)
				So(testutil.ToFloat64(r.evalSeconds), ShouldEqual, 0.25)
			})
		})

		Convey("When runs finish with and without error", func() {
			now := time.Unix(1700000000, 0)
			r.Finish(nil, now)
			r.Finish(nil, now)
			r.Finish(errors.New("boom"), now)

			Convey("Then outcomes are counted separately", func() {
				So(testutil.ToFloat64(r.runs.WithLabelValues("success")), ShouldEqual, 2)
				So(testutil.ToFloat64(r.runs.WithLabelValues("error")), ShouldEqual, 1)
				So(testutil.ToFloat64(r.lastRunUnix), ShouldEqual, 1700000000)
			})
		})

		Convey("When files are written", func() {
			r.FileWritten("plot")
			r.FileWritten("csv")
			r.FileWritten("csv")

			Convey("Then they are counted by kind", func() {
				So(testutil.ToFloat64(r.filesWritten.WithLabelValues("plot")), ShouldEqual, 1)
				So(testutil.ToFloat64(r.filesWritten.WithLabelValues("csv")), ShouldEqual, 2)
			})
		})
	})
}

func TestWriteTextfile(t *testing.T) {
	Convey("Given a recorder with an observed run", t, func() {
		r := NewRecorder()
		r.ObserveWaveform(128, 1e-14, 26.12, 3, time.Millisecond)
		r.Finish(nil, time.Now())

		Convey("When written to a textfile", func() {
			path := filepath.Join(t.TempDir(), "gwchirp.prom")
			err := r.WriteTextfile(path)

			Convey("Then the file holds the exposition format", func() {
				So(err, ShouldBeNil)
				data, readErr := os.ReadFile(path)
				So(readErr, ShouldBeNil)
				text := string(data)
				So(strings.Contains(text, "gwchirp_samples 128"), ShouldBeTrue)
				So(strings.Contains(text, `gwchirp_runs_total{outcome="success"} 1`), ShouldBeTrue)
				So(strings.Contains(text, "# TYPE gwchirp_peak_strain gauge"), ShouldBeTrue)
			})
		})

		Convey("When the path is empty", func() {
			So(errors.Is(r.WriteTextfile(""), ErrNoPath), ShouldBeTrue)
		})
	})
}
