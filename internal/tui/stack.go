package tui

import (
	"sync"

	"go.uber.org/zap"
)

// Stack holds the presented screens. It is the presenter a router binds to.
type Stack struct {
	mu        sync.Mutex
	items     []Screen
	log       *zap.Logger
	presented func(scope string)
}

func NewStack(log *zap.Logger) *Stack {
	if log == nil {
		log = zap.NewNop()
	}
	return &Stack{log: log.Named("stack")}
}

// OnPresent registers a hook called with the scope of every presented screen.
func (s *Stack) OnPresent(fn func(scope string)) {
	s.mu.Lock()
	s.presented = fn
	s.mu.Unlock()
}

// Present pushes screen on top and activates it.
func (s *Stack) Present(screen Screen) {
	if screen == nil {
		return
	}
	s.mu.Lock()
	s.items = append(s.items, screen)
	depth, hook := len(s.items), s.presented
	s.mu.Unlock()

	s.log.Debug("present", zap.String("scope", screen.Scope()), zap.Int("depth", depth))
	if hook != nil {
		hook(screen.Scope())
	}
	if a, ok := screen.(Activator); ok {
		a.Activate()
	}
}

// Dismiss pops the top screen and closes it. Dismissing an empty stack does
// nothing.
func (s *Stack) Dismiss() {
	s.mu.Lock()
	if len(s.items) == 0 {
		s.mu.Unlock()
		return
	}
	last := s.items[len(s.items)-1]
	s.items = s.items[:len(s.items)-1]
	depth := len(s.items)
	s.mu.Unlock()

	s.log.Debug("dismiss", zap.String("scope", last.Scope()), zap.Int("depth", depth))
	if c, ok := last.(Closer); ok {
		c.Close()
	}
}

func (s *Stack) Top() Screen {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.items) == 0 {
		return nil
	}
	return s.items[len(s.items)-1]
}

func (s *Stack) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

// Titles lists screen titles from bottom to top.
func (s *Stack) Titles() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, 0, len(s.items))
	for _, it := range s.items {
		out = append(out, it.Title())
	}
	return out
}

// Below returns the screen under the top one, or nil.
func (s *Stack) Below() Screen {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.items) < 2 {
		return nil
	}
	return s.items[len(s.items)-2]
}
