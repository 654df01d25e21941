package field

import (
	"math"
	"math/rand"
)

// Particle is a single drifting point drawn as a filled circle.
type Particle struct {
	X, Y       float64 // Position, may sit one step outside the surface
	DirX, DirY float64 // Per-tick velocity
	Size       float64 // Radius, integer valued in [1, MaxSize]
}

// Drift selects how initial directions are drawn.
type Drift string

const (
	// DriftLegacy draws floor(r*2 - 1.5), which yields -2, -1 or 0 and never +1.
	DriftLegacy Drift = "legacy"
	// DriftSymmetric draws uniformly from {-1, 0, 1}.
	DriftSymmetric Drift = "symmetric"
)

func (d Drift) draw(rng *rand.Rand) float64 {
	if d == DriftSymmetric {
		return float64(rng.Intn(3) - 1)
	}
	return math.Floor(rng.Float64()*2 - 1.5)
}

// newParticle spawns a particle inside [2*size, dim-2*size) on both axes.
func newParticle(rng *rand.Rand, w, h float64, p Params) Particle {
	size := math.Floor(rng.Float64()*float64(p.MaxSize) + 1)
	x := math.Floor(rng.Float64()*((w-size*2)-size*2) + size*2)
	y := math.Floor(rng.Float64()*((h-size*2)-size*2) + size*2)
	return Particle{
		X:    x,
		Y:    y,
		DirX: p.Drift.draw(rng),
		DirY: p.Drift.draw(rng),
		Size: size,
	}
}
