package podbay

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/jask/discovery/core/assembly"
	"github.com/jask/discovery/internal/tui"
)

// Settings are the mission parameters handlers act on.
type Settings struct {
	KillDave  bool
	Commander string
	LogLimit  int
}

// Messages localizes console text.
type Messages interface {
	Text(id string, data map[string]any) string
}

// Metrics receives handler activity.
type Metrics interface {
	Event(handler, event string)
	DoorRequest(outcome string)
}

// Navigator presents and dismisses screens. *router.Router[tui.Screen]
// satisfies it.
type Navigator interface {
	Present(b assembly.Builder[tui.Screen]) error
	Dismiss()
}

// Env carries the collaborators every handler shares. Zero fields fall back
// to no-op implementations.
type Env struct {
	Ctx      context.Context
	Log      *zap.Logger
	Messages Messages
	Metrics  Metrics
	Clock    func() time.Time
}

func (e Env) withDefaults() Env {
	if e.Ctx == nil {
		e.Ctx = context.Background()
	}
	if e.Log == nil {
		e.Log = zap.NewNop()
	}
	if e.Messages == nil {
		e.Messages = idMessages{}
	}
	if e.Metrics == nil {
		e.Metrics = nopMetrics{}
	}
	if e.Clock == nil {
		e.Clock = time.Now
	}
	return e
}

type idMessages struct{}

func (idMessages) Text(id string, _ map[string]any) string { return id }

type nopMetrics struct{}

func (nopMetrics) Event(string, string) {}
func (nopMetrics) DoorRequest(string)   {}
