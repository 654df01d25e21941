package field

// Wander returns an extra per-axis offset for a particle at (x, y).
type Wander func(x, y float64, tick uint64) (dx, dy float64)

// Advance moves one particle a single tick and returns the result. It reflects
// at the surface edges without clamping, nudges away from a nearby pointer and
// then integrates the direction.
func Advance(p Particle, st *State, prm Params, wander Wander) Particle {
	w, h := st.Surface.W, st.Surface.H

	if p.X > w || p.X < 0 {
		p.DirX = -p.DirX
	}
	if p.Y > h || p.Y < 0 {
		p.DirY = -p.DirY
	}

	ptr := st.Pointer
	if dist := ptr.Distance(p.X, p.Y); dist < ptr.Radius+p.Size {
		margin := p.Size * prm.MarginFactor
		if ptr.X < p.X && p.X < w-margin {
			p.X += prm.Nudge
		}
		if ptr.X > p.X && p.X > margin {
			p.X -= prm.Nudge
		}
		if ptr.Y < p.Y && p.Y < h-margin {
			p.Y += prm.Nudge
		}
		if ptr.Y > p.Y && p.Y > margin {
			p.Y -= prm.Nudge
		}
	}

	p.X += p.DirX
	p.Y += p.DirY

	if wander != nil {
		dx, dy := wander(p.X, p.Y, st.Tick)
		p.X += dx
		p.Y += dy
	}
	return p
}

// RenderParticle issues the single fill for a particle.
func RenderParticle(s Surface, p Particle, paint Paint) {
	s.FillCircle(p.X, p.Y, p.Size, paint)
}
