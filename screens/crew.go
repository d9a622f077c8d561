package screens

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/discovery/core/display"
	"github.com/jask/discovery/core/reaction"
	"github.com/jask/discovery/internal/podbay"
	"github.com/jask/discovery/internal/tui"
	"github.com/jask/discovery/widgets"
)

// CrewScreen lists the crew over the pod bay.
type CrewScreen struct {
	handler reaction.Handler[podbay.Event]
	release func()
	keys    *tui.KeyRegistry
	format  display.Formatter
	payload podbay.CrewPayload
}

var _ podbay.CrewDisplay = (*CrewScreen)(nil)

func NewCrewScreen(h reaction.Handler[podbay.Event], deps Deps) *CrewScreen {
	return &CrewScreen{handler: h, keys: deps.Keys, format: deps.Format}
}

func (s *CrewScreen) Show(p podbay.CrewPayload) { s.payload = p }

func (s *CrewScreen) Title() string {
	if s.payload.Title != "" {
		return s.payload.Title
	}
	return "Crew"
}

func (s *CrewScreen) Scope() string { return tui.ScopeCrew }
func (s *CrewScreen) Overlay() bool { return true }
func (s *CrewScreen) Activate() { s.handler.Handle(podbay.Tap(podbay.Refresh)) }

func (s *CrewScreen) Close() {
	if s.release != nil {
		s.release()
	}
}

func (s *CrewScreen) Update(msg tea.Msg) (tea.Cmd, bool) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil, false
	}
	switch s.keys.Action(key, tui.ScopeCrew) {
	case "refresh":
		s.handler.Handle(podbay.Tap(podbay.Refresh))
		return problemCmd(s.payload.Problem), false
	case "close":
		s.handler.Handle(podbay.Tap(podbay.Dismiss))
	}
	return nil, false
}

func (s *CrewScreen) View(width, height int) string {
	if s.payload.Problem != "" {
		return headerStyle.Render(s.Title()) + "\n" + problemStyle.Render(s.payload.Problem)
	}
	members := s.payload.Members()
	rows := make([][]string, 0, len(members))
	for _, m := range members {
		rows = append(rows, []string{m.Name, m.Role, m.Status})
	}
	table := widgets.Table{
		Headers: []string{"Name", "Role", "Status"},
		Rows:    rows,
		Header:  headerStyle,
	}
	return widgets.VStack{
		Widgets: []widgets.Widget{
			widgets.Text(headerStyle.Render(s.Title()) + "  " + captionStyle.Render(s.payload.Headcount(s.format))),
			table,
		},
		Ratios: []float64{1, float64(max(1, height-1))},
	}.Render(width, height)
}

// problemCmd surfaces a load failure in the status bar.
func problemCmd(problem string) tea.Cmd {
	if problem == "" {
		return nil
	}
	return tui.ErrorCmd(errors.New(problem))
}
