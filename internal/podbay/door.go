package podbay

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/jask/discovery/core/assembly"
	"github.com/jask/discovery/core/reaction"
	"github.com/jask/discovery/internal/database/repository"
	"github.com/jask/discovery/internal/messages"
	"github.com/jask/discovery/internal/tui"
)

// DoorRecorder stores door requests. *service.DoorLog satisfies it.
type DoorRecorder interface {
	Record(ctx context.Context, requestedBy, outcome, message string, at time.Time) (repository.DoorRequest, error)
}

// Destinations are the screens the pod bay console can open.
type Destinations struct {
	Crew assembly.Builder[tui.Screen]
	Log  assembly.Builder[tui.Screen]
}

// DoorHandler reacts to the pod bay console.
type DoorHandler struct {
	base
	settings Settings
	doors    DoorRecorder
	dest     Destinations
	display  *reaction.Slot[DoorDisplay]

	mu       sync.Mutex
	attempts int
}

var _ reaction.Handler[Event] = (*DoorHandler)(nil)

func NewDoorHandler(settings Settings, env Env, doors DoorRecorder, dest Destinations) (*DoorHandler, error) {
	if err := assembly.Require(doors, "door recorder"); err != nil {
		return nil, err
	}
	if settings.Commander == "" {
		settings.Commander = "Dave"
	}
	return &DoorHandler{
		base:     newBase("door", env),
		settings: settings,
		doors:    doors,
		dest:     dest,
		display:  reaction.NewSlot[DoorDisplay]("display"),
	}, nil
}

// Bind replaces the display payloads are pushed to.
func (h *DoorHandler) Bind(d DoorDisplay) reaction.Binding {
	return h.display.Bind(d)
}

// Release unbinds the display bound by b if nothing replaced it since.
func (h *DoorHandler) Release(b reaction.Binding) bool {
	return h.display.Release(b)
}

func (h *DoorHandler) Attempts() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.attempts
}

func (h *DoorHandler) Handle(ev Event) {
	switch ev.Kind {
	case OpenDoors, Refresh, Unrecognized:
		h.display.Require("show")
	case ShowCrew, ShowLog:
		h.nav.Require("navigate")
	}
	h.received(ev)
	switch ev.Kind {
	case OpenDoors:
		h.openDoors()
	case Refresh:
		h.show(h.idle())
	case ShowCrew:
		h.navigate(h.dest.Crew)
	case ShowLog:
		h.navigate(h.dest.Log)
	case Unrecognized:
		h.show(DoorPayload{
			Title:   h.text(messages.PodBayTitle, nil),
			Message: h.text(messages.UnknownCommand, map[string]any{"Commander": h.settings.Commander, "Input": ev.Input}),
			Outcome: OutcomeConfused,
			Attempt: h.Attempts(),
		})
	}
}

func (h *DoorHandler) idle() DoorPayload {
	return DoorPayload{
		Title:   h.text(messages.PodBayTitle, nil),
		Message: h.text(messages.PodBayPrompt, map[string]any{"Commander": h.settings.Commander}),
		Outcome: OutcomeIdle,
		Attempt: h.Attempts(),
	}
}

func (h *DoorHandler) openDoors() {
	h.mu.Lock()
	h.attempts++
	attempt := h.attempts
	h.mu.Unlock()

	p := DoorPayload{
		Title:   h.text(messages.PodBayTitle, nil),
		Attempt: attempt,
		At:      h.env.Clock(),
	}
	if h.settings.KillDave {
		p.Outcome = OutcomeRefused
		p.Message = h.text(messages.DoorsRefused, nil)
	} else {
		p.Outcome = OutcomeOpened
		p.Message = h.text(messages.DoorsOpening, map[string]any{"Commander": h.settings.Commander})
	}
	h.show(p)

	h.env.Metrics.DoorRequest(p.Outcome)
	if _, err := h.doors.Record(h.env.Ctx, h.settings.Commander, p.Outcome, p.Message, p.At); err != nil {
		h.log.Error("record door request", zap.Error(err))
	}
}

func (h *DoorHandler) show(p DoorPayload) {
	h.display.Use("show", func(d DoorDisplay) { d.Show(p) })
}
