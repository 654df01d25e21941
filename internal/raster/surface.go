// Package raster draws the field into an in-memory image, for headless runs.
package raster

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"math"
	"os"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/tfriedel6/canvas"
	"github.com/tfriedel6/canvas/backend/softwarebackend"

	"github.com/olivierh59500/particle-field-go/internal/field"
)

// Surface is a field.Surface drawn by a software canvas into an *image.RGBA.
type Surface struct {
	backend *softwarebackend.SoftwareBackend
	cv      *canvas.Canvas
	bg      string
}

// NewSurface returns an empty surface that clears to background.
func NewSurface(background colorful.Color) *Surface {
	return &Surface{bg: background.Hex()}
}

// SetSize replaces the canvas with a fresh w×h one.
func (s *Surface) SetSize(w, h int) {
	s.backend = softwarebackend.New(w, h)
	s.cv = canvas.New(s.backend)
}

// ClearRect paints the background over the rectangle.
func (s *Surface) ClearRect(x, y, w, h float64) {
	if !s.ready() {
		return
	}
	s.cv.SetGlobalAlpha(1)
	s.cv.SetFillStyle(s.bg)
	s.cv.FillRect(x, y, w, h)
}

// FillCircle fills a full arc around (x, y).
func (s *Surface) FillCircle(x, y, r float64, p field.Paint) {
	if r <= 0 || !s.use(p) {
		return
	}
	s.cv.SetFillStyle(p.Color.Hex())
	s.cv.BeginPath()
	s.cv.Arc(x, y, r, 0, 2*math.Pi, false)
	s.cv.Fill()
}

// StrokeLine strokes a single segment.
func (s *Surface) StrokeLine(x1, y1, x2, y2 float64, p field.Paint, width float64) {
	if width <= 0 || (x1 == x2 && y1 == y2) || !s.use(p) {
		return
	}
	s.cv.SetStrokeStyle(p.Color.Hex())
	s.cv.SetLineWidth(width)
	s.cv.BeginPath()
	s.cv.MoveTo(x1, y1)
	s.cv.LineTo(x2, y2)
	s.cv.Stroke()
}

func (s *Surface) ready() bool {
	if s.cv == nil {
		return false
	}
	w, h := s.backend.Size()
	return w > 0 && h > 0
}

// use sets the global alpha for p and reports whether anything would show.
func (s *Surface) use(p field.Paint) bool {
	a := p.Clamped()
	if a == 0 || !s.ready() {
		return false
	}
	s.cv.SetGlobalAlpha(a)
	return true
}

// Image returns the current frame. It is reallocated on SetSize.
func (s *Surface) Image() *image.RGBA {
	if s.backend == nil {
		return image.NewRGBA(image.Rectangle{})
	}
	return s.backend.Image
}

// WritePNG encodes the current frame.
func (s *Surface) WritePNG(w io.Writer) error {
	if err := png.Encode(w, s.Image()); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

// SavePNG writes the current frame to path.
func (s *Surface) SavePNG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := s.WritePNG(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}
