package field

import "sync"

// Unsubscribe removes a previously registered handler. Calling it more than
// once is a no-op.
type Unsubscribe func()

// Bus delivers pointer and resize notifications from a backend to whoever
// registered for them. Backends publish from the same goroutine that drives
// frames, so handlers never race with a frame.
type Bus struct {
	mu     sync.Mutex
	nextID int
	moves  map[int]func(x, y float64)
	leaves map[int]func()
	sizes  map[int]func(w, h int)
}

// NewBus returns a bus with no subscribers.
func NewBus() *Bus {
	return &Bus{
		moves:  make(map[int]func(x, y float64)),
		leaves: make(map[int]func()),
		sizes:  make(map[int]func(w, h int)),
	}
}

// OnPointerMove subscribes fn to pointer moves.
func (b *Bus) OnPointerMove(fn func(x, y float64)) Unsubscribe {
	b.mu.Lock()
	defer b.mu.Unlock()
	id := b.nextID
	b.nextID++
	b.moves[id] = fn
	return b.remover(func() { delete(b.moves, id) })
}

// OnPointerLeave subscribes fn to the pointer leaving the surface.
func (b *Bus) OnPointerLeave(fn func()) Unsubscribe {
	b.mu.Lock()
	defer b.mu.Unlock()
	id := b.nextID
	b.nextID++
	b.leaves[id] = fn
	return b.remover(func() { delete(b.leaves, id) })
}

// OnResize subscribes fn to viewport size changes.
func (b *Bus) OnResize(fn func(w, h int)) Unsubscribe {
	b.mu.Lock()
	defer b.mu.Unlock()
	id := b.nextID
	b.nextID++
	b.sizes[id] = fn
	return b.remover(func() { delete(b.sizes, id) })
}

func (b *Bus) remover(del func()) Unsubscribe {
	var once sync.Once
	return func() {
		once.Do(func() {
			b.mu.Lock()
			defer b.mu.Unlock()
			del()
		})
	}
}

// PointerMove notifies every move subscriber.
func (b *Bus) PointerMove(x, y float64) {
	b.mu.Lock()
	fns := make([]func(x, y float64), 0, len(b.moves))
	for _, fn := range b.moves {
		fns = append(fns, fn)
	}
	b.mu.Unlock()
	for _, fn := range fns {
		fn(x, y)
	}
}

// PointerLeave notifies every leave subscriber.
func (b *Bus) PointerLeave() {
	b.mu.Lock()
	fns := make([]func(), 0, len(b.leaves))
	for _, fn := range b.leaves {
		fns = append(fns, fn)
	}
	b.mu.Unlock()
	for _, fn := range fns {
		fn()
	}
}

// Resize notifies every resize subscriber.
func (b *Bus) Resize(w, h int) {
	b.mu.Lock()
	fns := make([]func(w, h int), 0, len(b.sizes))
	for _, fn := range b.sizes {
		fns = append(fns, fn)
	}
	b.mu.Unlock()
	for _, fn := range fns {
		fn(w, h)
	}
}
