package field

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func newTestField(t *testing.T, prm Params) (*Field, *recorder) {
	t.Helper()
	rec := &recorder{}
	return New(rec, prm, 42, zaptest.NewLogger(t)), rec
}

func TestParticleCount(t *testing.T) {
	prm := DefaultParams()
	tests := []struct {
		name string
		w, h float64
		want int
	}{
		{"square", 700, 700, 54},
		{"full hd", 1920, 1080, 230},
		{"just under one", 90, 99, 0},
		{"exactly one", 90, 100, 1},
		{"empty", 0, 0, 0},
		{"negative", -10, 500, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, prm.ParticleCount(tt.w, tt.h))
		})
	}
}

func TestPopulateBounds(t *testing.T) {
	prm := DefaultParams()
	st := &State{Surface: Dimensions{W: 700, H: 700}}
	Populate(st, rand.New(rand.NewSource(7)), prm)

	require.Len(t, st.Particles, 54)
	assert.Equal(t, Paint{Color: prm.Color, Alpha: 1}, st.Fill)
	for i, p := range st.Particles {
		assert.GreaterOrEqual(t, p.Size, 1.0, "particle %d", i)
		assert.LessOrEqual(t, p.Size, 5.0, "particle %d", i)
		assert.Equal(t, math.Floor(p.Size), p.Size, "size must be integral")

		assert.GreaterOrEqual(t, p.X, 2*p.Size)
		assert.Less(t, p.X, 700-2*p.Size)
		assert.GreaterOrEqual(t, p.Y, 2*p.Size)
		assert.Less(t, p.Y, 700-2*p.Size)

		assert.Contains(t, []float64{-2, -1, 0}, p.DirX)
		assert.Contains(t, []float64{-2, -1, 0}, p.DirY)
	}
}

func TestLegacyDriftRange(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	seen := map[float64]int{}
	for i := 0; i < 10000; i++ {
		seen[DriftLegacy.draw(rng)]++
	}

	assert.Len(t, seen, 3)
	assert.Zero(t, seen[1], "legacy drift never moves right or down")
	// r in [0, .25) floors to -2, [.25, .75) to -1, [.75, 1) to 0.
	assert.InDelta(t, 2500, seen[-2], 300)
	assert.InDelta(t, 5000, seen[-1], 300)
	assert.InDelta(t, 2500, seen[0], 300)
}

func TestPopulateSymmetricDrift(t *testing.T) {
	prm := DefaultParams()
	prm.Drift = DriftSymmetric
	st := &State{Surface: Dimensions{W: 1000, H: 1000}}
	Populate(st, rand.New(rand.NewSource(3)), prm)

	seen := map[float64]bool{}
	for _, p := range st.Particles {
		seen[p.DirX] = true
		seen[p.DirY] = true
	}
	assert.Equal(t, map[float64]bool{-1: true, 0: true, 1: true}, seen)
}

func TestPopulateReplacesParticles(t *testing.T) {
	prm := DefaultParams()
	st := &State{Surface: Dimensions{W: 700, H: 700}}
	rng := rand.New(rand.NewSource(1))
	Populate(st, rng, prm)
	first := append([]Particle(nil), st.Particles...)

	st.Surface = Dimensions{W: 300, H: 300}
	Populate(st, rng, prm)
	assert.Len(t, st.Particles, 10)
	assert.NotEqual(t, first[:10], st.Particles)
}

func TestStartAndResizeRadius(t *testing.T) {
	t.Run("legacy", func(t *testing.T) {
		f, rec := newTestField(t, DefaultParams())
		f.Start(700, 500)
		assert.Equal(t, 700, rec.W)
		assert.Equal(t, 500, rec.H)
		assert.InDelta(t, 35.0, f.Snapshot().Pointer.Radius, 1e-9)

		f.Resize(700, 550)
		assert.Equal(t, 30.0, f.Snapshot().Pointer.Radius)
		assert.Len(t, f.Snapshot().Particles, 42)
	})

	t.Run("area", func(t *testing.T) {
		prm := DefaultParams()
		prm.Radius = RadiusArea
		f, _ := newTestField(t, prm)
		f.Start(700, 500)
		f.Resize(700, 550)
		assert.InDelta(t, 38.5, f.Snapshot().Pointer.Radius, 1e-9)
	})

	t.Run("zero surface", func(t *testing.T) {
		f, _ := newTestField(t, DefaultParams())
		f.Start(0, 0)
		st := f.Snapshot()
		assert.Empty(t, st.Particles)
		assert.Equal(t, 0.0, st.Pointer.Radius)
	})
}

func TestReseedKeepsSize(t *testing.T) {
	f, _ := newTestField(t, DefaultParams())
	f.Start(700, 700)
	before := f.Snapshot()
	f.Reseed()
	after := f.Snapshot()
	assert.Equal(t, before.Surface, after.Surface)
	assert.Len(t, after.Particles, len(before.Particles))
	assert.Equal(t, len(after.Particles), f.Len())
	assert.NotEqual(t, before.Particles, after.Particles)
}

func TestFrameWithStillParticles(t *testing.T) {
	f, rec := newTestField(t, DefaultParams())
	f.ShowLinks = false
	f.Start(700, 700)
	require.Len(t, f.state.Particles, 54)

	for i := range f.state.Particles {
		f.state.Particles[i] = Particle{X: float64(50 + i*10), Y: 300, Size: 3}
	}
	before := f.Snapshot().Particles

	f.Frame()

	assert.Equal(t, before, f.Snapshot().Particles)
	assert.Equal(t, 1, rec.Clears)
	require.Len(t, rec.Fills, 54)
	for i, fl := range rec.Fills {
		assert.Equal(t, before[i].X, fl.X)
		assert.Equal(t, before[i].Y, fl.Y)
		assert.Equal(t, 3.0, fl.R)
		assert.Equal(t, 1.0, fl.Paint.Alpha)
	}
}

func TestFrameDrawsLinksAfterParticles(t *testing.T) {
	f, rec := newTestField(t, DefaultParams())
	f.Start(700, 700)
	f.state.Particles = []Particle{{X: 0, Y: 0, Size: 1}, {X: 10, Y: 10, Size: 1}}

	f.Render()

	assert.Len(t, rec.Fills, 2)
	require.Len(t, rec.Strokes, 1)
	assert.InDelta(t, 0.99, rec.Strokes[0].Paint.Alpha, 1e-12)
}

func TestPausedFrameOnlyRenders(t *testing.T) {
	f, rec := newTestField(t, DefaultParams())
	f.Start(700, 700)
	f.state.Particles = []Particle{{X: 100, Y: 100, DirX: -1, DirY: -1, Size: 2}}
	f.Paused = true

	f.Frame()

	assert.Equal(t, Particle{X: 100, Y: 100, DirX: -1, DirY: -1, Size: 2}, f.state.Particles[0])
	assert.Equal(t, uint64(0), f.state.Tick)
	assert.Len(t, rec.Fills, 1)
}

func TestWanderIsDeterministic(t *testing.T) {
	prm := DefaultParams()
	prm.Wander = 1.5

	a, _ := newTestField(t, prm)
	b, _ := newTestField(t, prm)
	plain, _ := newTestField(t, DefaultParams())
	for _, f := range []*Field{a, b, plain} {
		f.Start(700, 700)
		for i := 0; i < 10; i++ {
			f.Frame()
		}
	}

	assert.Equal(t, a.Snapshot().Particles, b.Snapshot().Particles)
	assert.NotEqual(t, a.Snapshot().Particles, plain.Snapshot().Particles)
}
