package screen

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/olivierh59500/particle-field-go/internal/field"
)

// Surface draws onto whichever ebiten image is current. Calls made before
// the first Draw are dropped.
type Surface struct {
	target *ebiten.Image
	bg     color.NRGBA
	w, h   int
}

// NewSurface returns a surface that clears to background. Its target is set on each Draw.
func NewSurface(background colorful.Color) *Surface {
	return &Surface{bg: nrgba(background, 1)}
}

// SetSize records the logical size. ebiten owns the real screen size through
// Game.Layout.
func (s *Surface) SetSize(w, h int) {
	s.w, s.h = w, h
}

// ClearRect paints the background over the rectangle.
func (s *Surface) ClearRect(x, y, w, h float64) {
	if s.target == nil {
		return
	}
	if x <= 0 && y <= 0 && w >= float64(s.w) && h >= float64(s.h) {
		s.target.Fill(s.bg)
		return
	}
	vector.DrawFilledRect(s.target, float32(x), float32(y), float32(w), float32(h), s.bg, false)
}

// FillCircle draws an anti-aliased filled circle.
func (s *Surface) FillCircle(x, y, r float64, p field.Paint) {
	if s.target == nil || p.Clamped() == 0 {
		return
	}
	vector.DrawFilledCircle(s.target, float32(x), float32(y), float32(r), nrgba(p.Color, p.Clamped()), true)
}

// StrokeLine draws an anti-aliased segment.
func (s *Surface) StrokeLine(x1, y1, x2, y2 float64, p field.Paint, width float64) {
	if s.target == nil || p.Clamped() == 0 {
		return
	}
	vector.StrokeLine(s.target, float32(x1), float32(y1), float32(x2), float32(y2), float32(width), nrgba(p.Color, p.Clamped()), true)
}

func nrgba(c colorful.Color, alpha float64) color.NRGBA {
	r, g, b := c.RGB255()
	return color.NRGBA{r, g, b, uint8(math.Round(alpha * 0xff))}
}
