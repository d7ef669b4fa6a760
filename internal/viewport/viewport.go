// Package viewport classifies the viewer's window width into a layout mode
// and keeps that classification current across resize events.
package viewport

import (
	"fmt"
	"strings"
	"sync"
)

// Breakpoint is the first width, in CSS pixels, that renders the desktop layout.
const Breakpoint = 768

// Mode is the layout variant selected for a viewport.
type Mode int

const (
	// Desktop is the zero value so an unmeasured viewport renders the desktop layout.
	Desktop Mode = iota
	Mobile
)

// String returns the lowercase mode name used on the wire and in query strings.
func (m Mode) String() string {
	switch m {
	case Mobile:
		return "mobile"
	default:
		return "desktop"
	}
}

// ParseMode parses "mobile" or "desktop" (case-insensitive).
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "mobile":
		return Mobile, nil
	case "desktop":
		return Desktop, nil
	default:
		return Desktop, fmt.Errorf("unknown viewport mode %q", s)
	}
}

// Classify maps a window width to a Mode.
func Classify(width int) Mode {
	if width < Breakpoint {
		return Mobile
	}
	return Desktop
}

// Window is the host environment a Classifier measures.
type Window interface {
	InnerWidth() int
	// AddResizeListener registers fn to run on every resize event and
	// returns a func that removes it.
	AddResizeListener(fn func()) (remove func())
}

type subscriber struct {
	id int
	fn func(Mode)
}

// Classifier owns the "is mobile" flag for one viewer.
// Before Mount it reports Desktop.
type Classifier struct {
	mountMu sync.Mutex // serialises Mount
	mu      sync.RWMutex
	mode    Mode
	unmount func()
	subs    []subscriber
	nextSub int
}

// NewClassifier returns an unmounted Classifier in Desktop mode.
func NewClassifier() *Classifier {
	return &Classifier{mode: Desktop}
}

// Mode returns the current classification.
func (c *Classifier) Mode() Mode {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.mode
}

// IsMobile reports whether the current classification is Mobile.
func (c *Classifier) IsMobile() bool {
	return c.Mode() == Mobile
}

// Mounted reports whether the classifier is listening to a window.
func (c *Classifier) Mounted() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.unmount != nil
}

// Mount measures w immediately and recomputes the mode on every resize
// event until the returned unmount func is called. Unmount is idempotent.
// Mounting an already mounted Classifier returns the existing unmount func.
func (c *Classifier) Mount(w Window) (unmount func()) {
	c.mountMu.Lock()
	defer c.mountMu.Unlock()

	c.mu.RLock()
	existing := c.unmount
	c.mu.RUnlock()
	if existing != nil {
		return existing
	}

	c.update(w.InnerWidth())
	remove := w.AddResizeListener(func() {
		c.update(w.InnerWidth())
	})

	var once sync.Once
	unmount = func() {
		once.Do(func() {
			remove()
			c.mu.Lock()
			c.unmount = nil
			c.mu.Unlock()
		})
	}

	c.mu.Lock()
	c.unmount = unmount
	c.mu.Unlock()
	return unmount
}

// Subscribe registers fn to be called with the new mode whenever the
// classification changes. Repeated identical widths never call fn.
func (c *Classifier) Subscribe(fn func(Mode)) (unsubscribe func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	id := c.nextSub
	c.nextSub++
	c.subs = append(c.subs, subscriber{id: id, fn: fn})

	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		for i, s := range c.subs {
			if s.id == id {
				c.subs = append(c.subs[:i], c.subs[i+1:]...)
				return
			}
		}
	}
}

func (c *Classifier) update(width int) {
	next := Classify(width)

	c.mu.Lock()
	if next == c.mode {
		c.mu.Unlock()
		return
	}
	c.mode = next
	subs := make([]subscriber, len(c.subs))
	copy(subs, c.subs)
	c.mu.Unlock()

	for _, s := range subs {
		s.fn(next)
	}
}
