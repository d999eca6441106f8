// Package viewer shows a rendered chart in a desktop window.
package viewer

import (
	"errors"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// ErrNoImage is returned when Show is called without an image.
var ErrNoImage = errors.New("viewer: no image to display")

// Window displays a static image until dismissed with Esc, Q or the
// window's close button.
type Window struct {
	title string
	img   image.Image
	tex   *ebiten.Image
}

// New returns a window that will show img.
func New(title string, img image.Image) *Window {
	return &Window{title: title, img: img}
}

// Update implements ebiten.Game.
func (w *Window) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	return nil
}

// Draw implements ebiten.Game.
func (w *Window) Draw(screen *ebiten.Image) {
	if w.tex == nil {
		w.tex = ebiten.NewImageFromImage(w.img)
	}
	screen.DrawImage(w.tex, nil)
}

// Layout implements ebiten.Game. The logical screen is the image size.
func (w *Window) Layout(_, _ int) (int, int) {
	b := w.img.Bounds()
	return b.Dx(), b.Dy()
}

// Show opens the window and blocks until it is closed. It returns the
// driver error when no display is available.
func (w *Window) Show() error {
	if w.img == nil {
		return ErrNoImage
	}

	b := w.img.Bounds()
	ebiten.SetWindowSize(b.Dx(), b.Dy())
	ebiten.SetWindowTitle(w.title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(w); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
