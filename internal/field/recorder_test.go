package field

type fill struct {
	X, Y, R float64
	Paint   Paint
}

type stroke struct {
	X1, Y1, X2, Y2 float64
	Paint          Paint
	Width          float64
}

// recorder is a Surface that keeps every call.
type recorder struct {
	W, H    int
	Clears  int
	Fills   []fill
	Strokes []stroke
}

func (r *recorder) SetSize(w, h int) { r.W, r.H = w, h }

func (r *recorder) ClearRect(x, y, w, h float64) {
	r.Clears++
	r.Fills = nil
	r.Strokes = nil
}

func (r *recorder) FillCircle(x, y, rad float64, p Paint) {
	r.Fills = append(r.Fills, fill{x, y, rad, p})
}

func (r *recorder) StrokeLine(x1, y1, x2, y2 float64, p Paint, width float64) {
	r.Strokes = append(r.Strokes, stroke{x1, y1, x2, y2, p, width})
}
