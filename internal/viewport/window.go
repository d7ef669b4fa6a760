package viewport

import "sync"

type resizeListener struct {
	id int
	fn func()
}

// EventWindow is an in-memory Window. Resize updates the width and fires
// listeners synchronously, in registration order.
type EventWindow struct {
	mu        sync.Mutex
	width     int
	listeners []resizeListener
	nextID    int
}

// NewEventWindow returns a window with the given initial width.
func NewEventWindow(width int) *EventWindow {
	return &EventWindow{width: width}
}

// InnerWidth returns the current width.
func (w *EventWindow) InnerWidth() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.width
}

// AddResizeListener implements Window.
func (w *EventWindow) AddResizeListener(fn func()) (remove func()) {
	w.mu.Lock()
	defer w.mu.Unlock()
	id := w.nextID
	w.nextID++
	w.listeners = append(w.listeners, resizeListener{id: id, fn: fn})

	return func() {
		w.mu.Lock()
		defer w.mu.Unlock()
		for i, l := range w.listeners {
			if l.id == id {
				w.listeners = append(w.listeners[:i], w.listeners[i+1:]...)
				return
			}
		}
	}
}

// Resize sets the width and dispatches one resize event.
func (w *EventWindow) Resize(width int) {
	w.mu.Lock()
	w.width = width
	listeners := make([]resizeListener, len(w.listeners))
	copy(listeners, w.listeners)
	w.mu.Unlock()

	for _, l := range listeners {
		l.fn()
	}
}

// ListenerCount returns the number of registered resize listeners.
func (w *EventWindow) ListenerCount() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.listeners)
}
