package podbay

import (
	"context"

	"go.uber.org/zap"

	"github.com/jask/discovery/core/assembly"
	"github.com/jask/discovery/core/reaction"
	"github.com/jask/discovery/internal/database/repository"
	"github.com/jask/discovery/internal/messages"
	"github.com/jask/discovery/internal/service"
)

const defaultLogLimit = 20

// DoorHistory reads past door requests. *service.DoorLog satisfies it.
type DoorHistory interface {
	Recent(ctx context.Context, limit int) ([]repository.DoorRequest, error)
	Summary(ctx context.Context) (service.Summary, error)
}

// LogHandler feeds the door log screen.
type LogHandler struct {
	base
	limit   int
	history DoorHistory
	display *reaction.Slot[LogDisplay]
}

var _ reaction.Handler[Event] = (*LogHandler)(nil)

func NewLogHandler(settings Settings, env Env, history DoorHistory) (*LogHandler, error) {
	if err := assembly.Require(history, "door history"); err != nil {
		return nil, err
	}
	limit := settings.LogLimit
	if limit <= 0 {
		limit = defaultLogLimit
	}
	return &LogHandler{
		base:    newBase("log", env),
		limit:   limit,
		history: history,
		display: reaction.NewSlot[LogDisplay]("display"),
	}, nil
}

func (h *LogHandler) Bind(d LogDisplay) reaction.Binding {
	return h.display.Bind(d)
}

func (h *LogHandler) Release(b reaction.Binding) bool {
	return h.display.Release(b)
}

func (h *LogHandler) Handle(ev Event) {
	switch ev.Kind {
	case Refresh:
		h.display.Require("show")
	case Dismiss:
		h.nav.Require("dismiss")
	}
	h.received(ev)
	switch ev.Kind {
	case Refresh:
		p := h.load()
		h.display.Use("show", func(d LogDisplay) { d.Show(p) })
	case Dismiss:
		h.dismiss()
	}
}

func (h *LogHandler) load() LogPayload {
	title := h.text(messages.LogTitle, nil)
	empty := h.text(messages.LogEmpty, nil)
	rows, err := h.history.Recent(h.env.Ctx, h.limit)
	if err != nil {
		h.log.Error("recent door requests", zap.Error(err))
		p := NewLogPayload(title, empty, 0, 0, nil)
		p.Problem = err.Error()
		return p
	}
	sum, err := h.history.Summary(h.env.Ctx)
	if err != nil {
		h.log.Warn("door request summary", zap.Error(err))
	}
	entries := make([]LogEntry, 0, len(rows))
	for _, r := range rows {
		entries = append(entries, LogEntry{RequestedBy: r.RequestedBy, Outcome: r.Outcome, Message: r.Message, At: r.RequestedAt})
	}
	return NewLogPayload(title, empty, sum.Opened, sum.Refused, entries)
}
