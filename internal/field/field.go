package field

import (
	"math/rand"
	"time"

	"github.com/aquilax/go-perlin"
	"go.uber.org/zap"
)

// Field owns the simulation context and renders it onto a surface.
type Field struct {
	state   State
	prm     Params
	surface Surface
	rng     *rand.Rand
	wander  Wander
	log     *zap.Logger

	Paused    bool
	ShowLinks bool
}

// New creates a field drawing onto s. A zero seed picks one from the clock.
// The field holds no particles until Start is called.
func New(s Surface, prm Params, seed int64, log *zap.Logger) *Field {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	if log == nil {
		log = zap.NewNop()
	}
	f := &Field{
		prm:       prm,
		surface:   s,
		rng:       rand.New(rand.NewSource(seed)),
		log:       log,
		ShowLinks: true,
	}
	if prm.Wander > 0 {
		f.wander = perlinWander(perlin.NewPerlin(2, 2, 3, seed), prm.Wander, prm.WanderScale)
	}
	return f
}

func perlinWander(noise *perlin.Perlin, strength, scale float64) Wander {
	return func(x, y float64, tick uint64) (float64, float64) {
		t := float64(tick) * scale
		dx := noise.Noise3D(x*scale, y*scale, t) * strength
		dy := noise.Noise3D(x*scale+97, y*scale+97, t) * strength
		return dx, dy
	}
}

// Populate discards all particles in st and spawns a fresh batch sized for the
// current surface. It also resets the fill paint.
func Populate(st *State, rng *rand.Rand, prm Params) {
	st.Fill = Paint{Color: prm.Color, Alpha: 1}
	n := prm.ParticleCount(st.Surface.W, st.Surface.H)
	st.Particles = make([]Particle, 0, n)
	for i := 0; i < n; i++ {
		st.Particles = append(st.Particles, newParticle(rng, st.Surface.W, st.Surface.H, prm))
	}
}

// Start sizes the surface for the first time and populates it.
func (f *Field) Start(w, h int) {
	f.size(w, h)
	f.state.Pointer.Radius = f.prm.startRadius(f.state.Surface.W, f.state.Surface.H)
	f.populate()
}

// Resize follows a viewport change: the surface, the pointer radius and the
// particle set are all rebuilt.
func (f *Field) Resize(w, h int) {
	f.size(w, h)
	f.state.Pointer.Radius = f.prm.resizeRadius(f.state.Surface.W, f.state.Surface.H)
	f.populate()
}

// Reseed regenerates the particles without touching the surface size.
func (f *Field) Reseed() {
	f.populate()
}

func (f *Field) size(w, h int) {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	f.surface.SetSize(w, h)
	f.state.Surface = Dimensions{W: float64(w), H: float64(h)}
}

func (f *Field) populate() {
	Populate(&f.state, f.rng, f.prm)
	f.log.Debug("Populated field",
		zap.Float64("width", f.state.Surface.W),
		zap.Float64("height", f.state.Surface.H),
		zap.Int("particles", len(f.state.Particles)),
		zap.Float64("pointer_radius", f.state.Pointer.Radius))
}

// MovePointer places the pointer at (x, y) and marks it present.
func (f *Field) MovePointer(x, y float64) {
	f.state.Pointer.X = x
	f.state.Pointer.Y = y
	f.state.Pointer.Present = true
}

// LeavePointer marks the pointer absent; it stops repelling particles.
func (f *Field) LeavePointer() {
	f.state.Pointer.Present = false
}

// Attach registers the field's handlers on bus and returns a func that
// removes all of them.
func (f *Field) Attach(bus *Bus) func() {
	subs := []Unsubscribe{
		bus.OnPointerMove(f.MovePointer),
		bus.OnPointerLeave(f.LeavePointer),
		bus.OnResize(f.Resize),
	}
	return func() {
		for _, unsub := range subs {
			unsub()
		}
	}
}

// Step advances every particle once, in order. It does nothing while paused.
func (f *Field) Step() {
	if f.Paused {
		return
	}
	for i := range f.state.Particles {
		f.state.Particles[i] = Advance(f.state.Particles[i], &f.state, f.prm, f.wander)
	}
	f.state.Tick++
}

// Render clears the surface, draws each particle exactly once and then the
// links between them.
func (f *Field) Render() {
	f.surface.ClearRect(0, 0, f.state.Surface.W, f.state.Surface.H)
	for _, p := range f.state.Particles {
		RenderParticle(f.surface, p, f.state.Fill)
	}
	if f.ShowLinks {
		Connect(f.surface, &f.state, Links(&f.state, f.prm), f.prm)
	}
}

// Frame is one full tick of the effect.
func (f *Field) Frame() {
	f.Step()
	f.Render()
}

// Snapshot returns a copy of the current state.
func (f *Field) Snapshot() State {
	st := f.state
	st.Particles = append([]Particle(nil), f.state.Particles...)
	return st
}

// Len returns the number of live particles.
func (f *Field) Len() int {
	return len(f.state.Particles)
}

// Params returns the tunables the field was built with.
func (f *Field) Params() Params {
	return f.prm
}
