package render

import (
	"errors"
	"fmt"
	"image"
	"io"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/cwbudde/algo-gw/dsp/spectrum"
	"github.com/cwbudde/algo-gw/inspiral"
)

// Default chart text.
const (
	DefaultTitle  = "Simulated Gravitational Wave from Binary Black Hole Merger"
	DefaultXLabel = "Time (s)"
	DefaultYLabel = "Strain (h)"
)

// Errors returned by render functions.
var (
	ErrEmptySeries    = errors.New("render: series is empty")
	ErrLengthMismatch = errors.New("render: x and y lengths differ")
	ErrInvalidSize    = errors.New("render: figure size must be positive")
)

// Options controls chart text and figure size.
type Options struct {
	Title  string
	XLabel string
	YLabel string
	Width  float64 // inches
	Height float64 // inches
	Grid   bool
	DPI    int // raster resolution for Image
}

// DefaultOptions returns a 10x6 inch chart with grid and the strain labels.
func DefaultOptions() Options {
	return Options{
		Title:  DefaultTitle,
		XLabel: DefaultXLabel,
		YLabel: DefaultYLabel,
		Width:  10,
		Height: 6,
		Grid:   true,
		DPI:    96,
	}
}

func (o Options) size() (vg.Length, vg.Length, error) {
	if !(o.Width > 0) || !(o.Height > 0) {
		return 0, 0, ErrInvalidSize
	}
	return vg.Length(o.Width) * vg.Inch, vg.Length(o.Height) * vg.Inch, nil
}

// StrainPlot returns a line chart of s.Strain against s.Time.
func StrainPlot(s inspiral.Series, opts Options) (*plot.Plot, error) {
	return linePlot(s.Time, s.Strain, opts)
}

// SpectrumPlot returns a line chart of the amplitude spectrum. The DC bin
// is omitted.
func SpectrumPlot(sp spectrum.Spectrum, opts Options) (*plot.Plot, error) {
	if len(sp.Freq) < 2 {
		return nil, ErrEmptySeries
	}
	return linePlot(sp.Freq[1:], sp.Magnitude[1:], opts)
}

func linePlot(x, y []float64, opts Options) (*plot.Plot, error) {
	if len(x) == 0 {
		return nil, ErrEmptySeries
	}
	if len(x) != len(y) {
		return nil, fmt.Errorf("%w: %d != %d", ErrLengthMismatch, len(x), len(y))
	}

	pts := make(plotter.XYs, len(x))
	for i := range pts {
		pts[i].X = x[i]
		pts[i].Y = y[i]
	}

	p := plot.New()
	p.Title.Text = opts.Title
	p.X.Label.Text = opts.XLabel
	p.Y.Label.Text = opts.YLabel

	if opts.Grid {
		p.Add(plotter.NewGrid())
	}

	line, err := plotter.NewLine(pts)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	p.Add(line)

	return p, nil
}

// Save writes p to path. The file extension selects the format.
func Save(p *plot.Plot, opts Options, path string) error {
	w, h, err := opts.size()
	if err != nil {
		return err
	}
	if err := p.Save(w, h, path); err != nil {
		return fmt.Errorf("render: save %s: %w", filepath.Base(path), err)
	}
	return nil
}

// Write encodes p in the given format ("png", "svg", ...) to out.
func Write(p *plot.Plot, opts Options, out io.Writer, format string) error {
	w, h, err := opts.size()
	if err != nil {
		return err
	}

	wt, err := p.WriterTo(w, h, strings.ToLower(format))
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}

	if _, err := wt.WriteTo(out); err != nil {
		return fmt.Errorf("render: write %s: %w", format, err)
	}
	return nil
}

// Image rasterises p at opts.DPI.
func Image(p *plot.Plot, opts Options) (image.Image, error) {
	w, h, err := opts.size()
	if err != nil {
		return nil, err
	}

	dpi := opts.DPI
	if dpi <= 0 {
		dpi = vgimg.DefaultDPI
	}

	c := vgimg.NewWith(vgimg.UseWH(w, h), vgimg.UseDPI(dpi))
	p.Draw(draw.New(c))
	return c.Image(), nil
}
