package reaction

import (
	"reflect"
	"sync"

	"go.uber.org/atomic"
)

// Handler consumes one external event at a time.
type Handler[E any] interface {
	Handle(event E)
}

// State is the lifecycle of a binding slot.
type State int

const (
	Unbound  State = iota // never bound
	Bound                 // holds a live target
	Released              // target tore itself down; uses are no-ops until rebound
)

func (s State) String() string {
	switch s {
	case Bound:
		return "bound"
	case Released:
		return "released"
	default:
		return "unbound"
	}
}

// Binding identifies one Bind call. The surface that was bound keeps it and
// hands it back to Release when it tears down.
type Binding uint64

// Slot is a non-owning reference to a collaborator bound after construction.
// It is single-writer: whichever owner last called Bind decides the target.
// The mutex only protects against torn reads; callers are still expected to
// bind and use the slot from the same event loop.
type Slot[T any] struct {
	name  string
	mu    sync.Mutex
	state State
	value T
	gen   atomic.Uint64
}

// NewSlot returns an unbound slot. name appears in precondition panics.
func NewSlot[T any](name string) *Slot[T] {
	return &Slot[T]{name: name}
}

// Bind replaces the current target and returns the binding that Release
// needs. Rebinding is allowed any number of times and invalidates every
// earlier binding. Binding a nil target leaves the slot unbound.
func (s *Slot[T]) Bind(target T) Binding {
	s.mu.Lock()
	defer s.mu.Unlock()
	b := Binding(s.gen.Inc())
	if isNil(target) {
		var zero T
		s.value = zero
		s.state = Unbound
		return b
	}
	s.value = target
	s.state = Bound
	return b
}

// Release clears the slot when b is still the latest binding and reports
// whether it did. A surface calls it while tearing down so that later pushes
// through the slot are dropped rather than delivered to a dead target.
func (s *Slot[T]) Release(b Binding) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != Bound || !s.Current(b) {
		return false
	}
	var zero T
	s.value = zero
	s.state = Released
	return true
}

// Current reports whether b is the latest binding, without taking the lock.
func (s *Slot[T]) Current(b Binding) bool {
	return b != 0 && uint64(b) == s.gen.Load()
}

// Use calls fn with the bound target. It panics with a *PreconditionError if
// the slot was never bound and does nothing if the target was released.
func (s *Slot[T]) Use(op string, fn func(T)) {
	s.mu.Lock()
	state, target := s.state, s.value
	s.mu.Unlock()

	switch state {
	case Unbound:
		panic(&PreconditionError{Op: op, Slot: s.name})
	case Released:
		return
	}
	fn(target)
}

// Require panics with a *PreconditionError if the slot was never bound. Callers
// use it to fail before changing any state that a later Use depends on.
func (s *Slot[T]) Require(op string) {
	if s.State() == Unbound {
		panic(&PreconditionError{Op: op, Slot: s.name})
	}
}

// Get returns the bound target and whether the slot is currently bound. It
// never panics; use it for optional collaborators.
func (s *Slot[T]) Get() (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.value, s.state == Bound
}

func (s *Slot[T]) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *Slot[T]) Bound() bool {
	return s.State() == Bound
}

// Generation counts Bind calls.
func (s *Slot[T]) Generation() uint64 {
	return s.gen.Load()
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Pointer, reflect.Slice, reflect.UnsafePointer:
		return rv.IsNil()
	}
	return false
}
