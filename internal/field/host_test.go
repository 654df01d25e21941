package field

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHostViewport(t *testing.T) {
	f, rec := newTestField(t, DefaultParams())
	bus := NewBus()
	defer f.Attach(bus)()

	var resizes int
	defer bus.OnResize(func(int, int) { resizes++ })()

	h := NewHost(f, bus)
	h.Viewport(700, 500)
	assert.Equal(t, 0, resizes, "first viewport starts the field")
	assert.InDelta(t, 35.0, f.Snapshot().Pointer.Radius, 1e-9)
	assert.Equal(t, 700, rec.W)

	h.Viewport(700, 500)
	assert.Equal(t, 0, resizes)

	h.Viewport(700, 550)
	assert.Equal(t, 1, resizes)
	assert.Equal(t, 30.0, f.Snapshot().Pointer.Radius)
	w, hh := h.Size()
	assert.Equal(t, [2]int{700, 550}, [2]int{w, hh})
}

func TestHostCursor(t *testing.T) {
	bus := NewBus()
	var events []string
	defer bus.OnPointerMove(func(x, y float64) { events = append(events, "move") })()
	defer bus.OnPointerLeave(func() { events = append(events, "leave") })()

	h := NewHost(nil, bus)
	h.Cursor(5, 5, false)
	h.Cursor(10, 10, true)
	h.Cursor(10, 10, true)
	h.Cursor(11, 10, true)
	h.Cursor(11, 10, false)
	h.Cursor(11, 10, false)
	h.Cursor(11, 10, true)

	assert.Equal(t, []string{"move", "move", "leave", "move"}, events)
}
