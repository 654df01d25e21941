package field

// Host turns the polled state of a backend (window size, cursor position)
// into events on a Bus. The first viewport it sees starts the field; later
// changes are published as resizes.
type Host struct {
	field   *Field
	bus     *Bus
	started bool
	w, h    int

	inside bool
	x, y   float64
}

// NewHost returns a host that publishes on bus. The first Viewport starts f.
func NewHost(f *Field, bus *Bus) *Host {
	return &Host{field: f, bus: bus}
}

// Viewport reports the current size of the host's drawable area.
func (h *Host) Viewport(w, hh int) {
	if !h.started {
		h.started = true
		h.w, h.h = w, hh
		h.field.Start(w, hh)
		return
	}
	if w == h.w && hh == h.h {
		return
	}
	h.w, h.h = w, hh
	h.bus.Resize(w, hh)
}

// Cursor reports the cursor position and whether it is over the surface.
func (h *Host) Cursor(x, y float64, inside bool) {
	switch {
	case inside && (!h.inside || x != h.x || y != h.y):
		h.inside, h.x, h.y = true, x, y
		h.bus.PointerMove(x, y)
	case !inside && h.inside:
		h.inside = false
		h.bus.PointerLeave()
	}
}

// Size returns the last reported viewport.
func (h *Host) Size() (int, int) {
	return h.w, h.h
}

// Bus returns the bus the host publishes on.
func (h *Host) Bus() *Bus {
	return h.bus
}
