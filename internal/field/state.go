package field

import "math"

// Dimensions is the size of the drawing surface.
type Dimensions struct {
	W, H float64
}

// Pointer is the last known pointer position and its interaction radius.
type Pointer struct {
	X, Y    float64
	Present bool
	Radius  float64
}

// Distance returns the Euclidean distance from the pointer to (x, y), or NaN
// when the pointer is absent.
func (p Pointer) Distance(x, y float64) float64 {
	if !p.Present {
		return math.NaN()
	}
	dx := p.X - x
	dy := p.Y - y
	return math.Sqrt(dx*dx + dy*dy)
}

// State is the simulation context threaded through sizing, population, the
// step and the link pass.
type State struct {
	Surface   Dimensions
	Pointer   Pointer
	Particles []Particle
	Fill      Paint
	Tick      uint64
}
