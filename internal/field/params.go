package field

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// RadiusMode selects how the pointer interaction radius follows the surface size.
type RadiusMode string

const (
	// RadiusLegacy uses (h/100)*(w/100) at startup and floor((h/100)^2) on resize.
	RadiusLegacy RadiusMode = "legacy"
	// RadiusArea uses (h/100)*(w/100) at startup and on every resize.
	RadiusArea RadiusMode = "area"
)

// Params holds the tunables of the field. The zero value is not usable; start
// from DefaultParams.
type Params struct {
	DensityArea  float64 // Surface area per particle
	MaxSize      int     // Largest particle radius
	LinkDivisor  float64 // Link threshold is (w/LinkDivisor)*(h/LinkDivisor)
	AlphaFalloff float64 // Link alpha is 1 - d/AlphaFalloff
	LineWidth    float64

	Nudge        float64 // Distance a particle is pushed away from the pointer per tick
	MarginFactor float64 // Nudges stop within Size*MarginFactor of an edge
	Radius       RadiusMode

	Drift       Drift
	Wander      float64 // Perlin offset strength, 0 disables
	WanderScale float64 // Perlin sampling frequency

	Color colorful.Color // Particle fill and link stroke
}

// DefaultParams returns the classic look: light blue dots, one per 9000px².
func DefaultParams() Params {
	c, _ := colorful.Hex("#ebf8ff")
	return Params{
		DensityArea:  9000,
		MaxSize:      5,
		LinkDivisor:  7,
		AlphaFalloff: 20000,
		LineWidth:    1,
		Nudge:        3,
		MarginFactor: 10,
		Radius:       RadiusLegacy,
		Drift:        DriftLegacy,
		WanderScale:  0.01,
		Color:        c,
	}
}

// ParticleCount is floor(w*h/DensityArea).
func (p Params) ParticleCount(w, h float64) int {
	if w <= 0 || h <= 0 {
		return 0
	}
	return int(math.Floor(w * h / p.DensityArea))
}

// LinkThreshold is the squared distance under which two particles are linked.
func (p Params) LinkThreshold(w, h float64) float64 {
	return (w / p.LinkDivisor) * (h / p.LinkDivisor)
}

func (p Params) startRadius(w, h float64) float64 {
	return (h / 100) * (w / 100)
}

func (p Params) resizeRadius(w, h float64) float64 {
	if p.Radius == RadiusArea {
		return p.startRadius(w, h)
	}
	return math.Floor((h / 100) * (h / 100))
}
