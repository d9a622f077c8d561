package podbay

import (
	"context"

	"go.uber.org/zap"

	"github.com/jask/discovery/core/assembly"
	"github.com/jask/discovery/core/reaction"
	"github.com/jask/discovery/internal/database/repository"
	"github.com/jask/discovery/internal/messages"
)

// CrewLister lists the crew. *service.Roster satisfies it.
type CrewLister interface {
	List(ctx context.Context) ([]repository.CrewMember, error)
}

// CrewHandler feeds the crew screen.
type CrewHandler struct {
	base
	crew    CrewLister
	display *reaction.Slot[CrewDisplay]
}

var _ reaction.Handler[Event] = (*CrewHandler)(nil)

func NewCrewHandler(env Env, crew CrewLister) (*CrewHandler, error) {
	if err := assembly.Require(crew, "crew roster"); err != nil {
		return nil, err
	}
	return &CrewHandler{
		base:    newBase("crew", env),
		crew:    crew,
		display: reaction.NewSlot[CrewDisplay]("display"),
	}, nil
}

func (h *CrewHandler) Bind(d CrewDisplay) reaction.Binding {
	return h.display.Bind(d)
}

func (h *CrewHandler) Release(b reaction.Binding) bool {
	return h.display.Release(b)
}

func (h *CrewHandler) Handle(ev Event) {
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
		h.display.Use("show", func(d CrewDisplay) { d.Show(p) })
	case Dismiss:
		h.dismiss()
	}
}

func (h *CrewHandler) load() CrewPayload {
	title := h.text(messages.CrewTitle, nil)
	rows, err := h.crew.List(h.env.Ctx)
	if err != nil {
		h.log.Error("list crew", zap.Error(err))
		p := NewCrewPayload(title, nil)
		p.Problem = err.Error()
		return p
	}
	members := make([]CrewMember, 0, len(rows))
	for _, r := range rows {
		members = append(members, CrewMember{Name: r.Name, Role: r.Role, Status: r.Status})
	}
	return NewCrewPayload(title, members)
}
