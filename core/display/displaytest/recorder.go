// Package displaytest provides a Display that records what it was shown.
package displaytest

import "sync"

// Recorder implements display.Display[P] by remembering every payload.
type Recorder[P any] struct {
	mu    sync.Mutex
	shown []P
}

func NewRecorder[P any]() *Recorder[P] {
	return &Recorder[P]{}
}

func (r *Recorder[P]) Show(payload P) {
	r.mu.Lock()
	r.shown = append(r.shown, payload)
	r.mu.Unlock()
}

// Shown returns a copy of every payload in the order received.
func (r *Recorder[P]) Shown() []P {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]P, len(r.shown))
	copy(out, r.shown)
	return out
}

// Last returns the most recent payload and false if nothing was shown yet.
func (r *Recorder[P]) Last() (P, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.shown) == 0 {
		var zero P
		return zero, false
	}
	return r.shown[len(r.shown)-1], true
}

func (r *Recorder[P]) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.shown)
}

func (r *Recorder[P]) Reset() {
	r.mu.Lock()
	r.shown = nil
	r.mu.Unlock()
}
