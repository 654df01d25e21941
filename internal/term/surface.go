// Package term renders the field into a terminal with tcell.
package term

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/olivierh59500/particle-field-go/internal/field"
)

const (
	glyphSmall = '•'
	glyphLarge = '●'
	glyphLink  = '·'
)

// Surface maps virtual pixels onto terminal cells of cellW x cellH pixels.
// Particle cells win over link cells, and a brighter link wins over a dimmer
// one, so drawing order within a frame does not matter.
type Surface struct {
	screen       tcell.Screen
	cellW, cellH float64
	bg           colorful.Color

	cols, rows int
	dots       []bool
	links      []float64
}

// NewSurface maps every cell of screen to cellW×cellH virtual pixels.
func NewSurface(screen tcell.Screen, cellW, cellH int, background colorful.Color) *Surface {
	return &Surface{
		screen: screen,
		cellW:  float64(cellW),
		cellH:  float64(cellH),
		bg:     background,
	}
}

// SetSize takes the size in virtual pixels.
func (s *Surface) SetSize(w, h int) {
	s.cols = int(math.Ceil(float64(w) / s.cellW))
	s.rows = int(math.Ceil(float64(h) / s.cellH))
	s.dots = make([]bool, s.cols*s.rows)
	s.links = make([]float64, s.cols*s.rows)
}

// PixelSize converts a terminal size in cells to virtual pixels.
func (s *Surface) PixelSize(cols, rows int) (int, int) {
	return cols * int(s.cellW), rows * int(s.cellH)
}

// PixelAt returns the virtual pixel at the centre of a cell.
func (s *Surface) PixelAt(col, row int) (float64, float64) {
	return (float64(col) + 0.5) * s.cellW, (float64(row) + 0.5) * s.cellH
}

// ClearRect blanks the covered cells to the background.
func (s *Surface) ClearRect(x, y, w, h float64) {
	c0, r0 := s.cell(x, y)
	c1, r1 := s.cell(x+w, y+h)
	style := tcell.StyleDefault.Background(rgb(s.bg))
	for r := max(r0, 0); r < min(r1+1, s.rows); r++ {
		for c := max(c0, 0); c < min(c1+1, s.cols); c++ {
			i := r*s.cols + c
			s.dots[i] = false
			s.links[i] = 0
			s.screen.SetContent(c, r, ' ', nil, style)
		}
	}
}

// FillCircle marks the cell under (x, y) with a dot glyph sized by r.
func (s *Surface) FillCircle(x, y, r float64, p field.Paint) {
	c, row := s.cell(x, y)
	if !s.inside(c, row) || p.Clamped() == 0 {
		return
	}
	glyph := glyphSmall
	if r >= 3 {
		glyph = glyphLarge
	}
	s.dots[row*s.cols+c] = true
	s.screen.SetContent(c, row, glyph, nil, s.style(p))
}

// StrokeLine marks the cells along the segment, keeping the brighter link per cell.
func (s *Surface) StrokeLine(x1, y1, x2, y2 float64, p field.Paint, width float64) {
	a := p.Clamped()
	if a == 0 {
		return
	}
	c0, r0 := s.cell(x1, y1)
	c1, r1 := s.cell(x2, y2)
	style := s.style(p)
	bresenham(c0, r0, c1, r1, func(c, r int) {
		if !s.inside(c, r) {
			return
		}
		i := r*s.cols + c
		if s.dots[i] || s.links[i] >= a {
			return
		}
		s.links[i] = a
		s.screen.SetContent(c, r, glyphLink, nil, style)
	})
}

func (s *Surface) cell(x, y float64) (int, int) {
	return int(math.Floor(x / s.cellW)), int(math.Floor(y / s.cellH))
}

func (s *Surface) inside(c, r int) bool {
	return c >= 0 && r >= 0 && c < s.cols && r < s.rows
}

// style blends the paint over the background since cells have no alpha.
func (s *Surface) style(p field.Paint) tcell.Style {
	fg := s.bg.BlendRgb(p.Color, p.Clamped())
	return tcell.StyleDefault.Foreground(rgb(fg)).Background(rgb(s.bg))
}

func rgb(c colorful.Color) tcell.Color {
	r, g, b := c.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

func bresenham(x0, y0, x1, y1 int, plot func(x, y int)) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	e := dx + dy
	for {
		plot(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
