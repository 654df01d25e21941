package field

// Link is a line between two particles closer than the link threshold.
type Link struct {
	A, B  int     // Particle indices, A < B
	Dist2 float64 // Squared distance
	Alpha float64 // 1 - Dist2/AlphaFalloff, unclamped
}

// Links compares every unordered pair of particles. Self pairs are skipped
// since they would only stroke zero length lines.
func Links(st *State, prm Params) []Link {
	ps := st.Particles
	threshold := prm.LinkThreshold(st.Surface.W, st.Surface.H)

	var out []Link
	for a := 0; a < len(ps); a++ {
		for b := a + 1; b < len(ps); b++ {
			dx := ps[a].X - ps[b].X
			dy := ps[a].Y - ps[b].Y
			d := dx*dx + dy*dy
			if d < threshold {
				out = append(out, Link{A: a, B: b, Dist2: d, Alpha: 1 - d/prm.AlphaFalloff})
			}
		}
	}
	return out
}

// Connect strokes the given links in order.
func Connect(s Surface, st *State, links []Link, prm Params) {
	for _, l := range links {
		a, b := st.Particles[l.A], st.Particles[l.B]
		s.StrokeLine(a.X, a.Y, b.X, b.Y, Paint{Color: prm.Color, Alpha: l.Alpha}, prm.LineWidth)
	}
}
