package assembly

import (
	"sync"
	"time"
)

// Observer is told about every build a builder performs. Implementations must
// not call back into the builder being observed.
type Observer interface {
	Built(component string, elapsed time.Duration)
	Failed(component string, err error)
}

// Observers fans out to several observers in order.
type Observers []Observer

func (o Observers) Built(component string, elapsed time.Duration) {
	for _, obs := range o {
		obs.Built(component, elapsed)
	}
}

func (o Observers) Failed(component string, err error) {
	for _, obs := range o {
		obs.Failed(component, err)
	}
}

// TraceEntry is one completed build.
type TraceEntry struct {
	Component string
	Err       error
}

// Trace records builds in completion order. Because dependencies complete
// before their dependents, the recorded order is the construction order.
type Trace struct {
	mu      sync.Mutex
	entries []TraceEntry
}

func NewTrace() *Trace {
	return &Trace{}
}

func (t *Trace) Built(component string, _ time.Duration) {
	t.record(component, nil)
}

func (t *Trace) Failed(component string, err error) {
	t.record(component, err)
}

func (t *Trace) record(component string, err error) {
	t.mu.Lock()
	t.entries = append(t.entries, TraceEntry{Component: component, Err: err})
	t.mu.Unlock()
}

// Entries returns a copy of everything recorded so far.
func (t *Trace) Entries() []TraceEntry {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]TraceEntry, len(t.entries))
	copy(out, t.entries)
	return out
}

// Order returns the names of successfully built components in construction
// order.
func (t *Trace) Order() []string {
	entries := t.Entries()
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.Err == nil {
			out = append(out, e.Component)
		}
	}
	return out
}

// Count returns how many times component was built successfully.
func (t *Trace) Count(component string) int {
	n := 0
	for _, name := range t.Order() {
		if name == component {
			n++
		}
	}
	return n
}

func (t *Trace) Reset() {
	t.mu.Lock()
	t.entries = nil
	t.mu.Unlock()
}
