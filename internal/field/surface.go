package field

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Paint is a color with an alpha that is passed through as computed. Link
// alphas can fall outside [0, 1]; surfaces clamp to what they can show.
type Paint struct {
	Color colorful.Color
	Alpha float64
}

// Clamped returns the alpha limited to [0, 1].
func (p Paint) Clamped() float64 {
	switch {
	case p.Alpha < 0 || math.IsNaN(p.Alpha):
		return 0
	case p.Alpha > 1:
		return 1
	}
	return p.Alpha
}

// Surface is the 2D drawing target the field renders onto.
type Surface interface {
	SetSize(w, h int)
	ClearRect(x, y, w, h float64)
	FillCircle(x, y, r float64, p Paint)
	StrokeLine(x1, y1, x2, y2 float64, p Paint, width float64)
}
