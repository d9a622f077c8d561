package screens

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/discovery/core/display"
	"github.com/jask/discovery/core/reaction"
	"github.com/jask/discovery/internal/podbay"
	"github.com/jask/discovery/internal/tui"
	"github.com/jask/discovery/widgets"
)

// LogScreen shows recent door requests and how they went.
type LogScreen struct {
	handler reaction.Handler[podbay.Event]
	release func()
	keys    *tui.KeyRegistry
	format  display.Formatter
	payload podbay.LogPayload
}

var _ podbay.LogDisplay = (*LogScreen)(nil)

func NewLogScreen(h reaction.Handler[podbay.Event], deps Deps) *LogScreen {
	return &LogScreen{handler: h, keys: deps.Keys, format: deps.Format}
}

func (s *LogScreen) Show(p podbay.LogPayload) { s.payload = p }

func (s *LogScreen) Title() string {
	if s.payload.Title != "" {
		return s.payload.Title
	}
	return "Door Log"
}

func (s *LogScreen) Scope() string { return tui.ScopeLog }
func (s *LogScreen) Overlay() bool { return true }
func (s *LogScreen) Activate() { s.handler.Handle(podbay.Tap(podbay.Refresh)) }

func (s *LogScreen) Close() {
	if s.release != nil {
		s.release()
	}
}

func (s *LogScreen) Update(msg tea.Msg) (tea.Cmd, bool) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil, false
	}
	switch s.keys.Action(key, tui.ScopeLog) {
	case "refresh":
		s.handler.Handle(podbay.Tap(podbay.Refresh))
		return problemCmd(s.payload.Problem), false
	case "close":
		s.handler.Handle(podbay.Tap(podbay.Dismiss))
	}
	return nil, false
}

func (s *LogScreen) View(width, height int) string {
	p := s.payload
	head := headerStyle.Render(s.Title())
	if p.Problem != "" {
		return head + "\n" + problemStyle.Render(p.Problem)
	}
	head += "  " + captionStyle.Render(p.RefusalRate(s.format)+" refused")
	entries := p.Entries()
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{s.format.Stamp(e.At), e.RequestedBy, e.Outcome})
	}
	return widgets.VStack{
		Widgets: []widgets.Widget{
			widgets.Text(head),
			widgets.Bars{Data: []widgets.Bar{
				{Label: "opened", Value: float64(p.Opened), Style: openedStyle},
				{Label: "refused", Value: float64(p.Refused), Style: refusedStyle},
			}},
			widgets.Table{Headers: []string{"When", "Who", "Outcome"}, Rows: rows, Empty: p.Empty, Header: headerStyle},
		},
		Ratios: []float64{1, 2, float64(max(1, height-3))},
	}.Render(width, height)
}
