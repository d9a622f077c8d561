package screens

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/discovery/core/display"
	"github.com/jask/discovery/core/reaction"
	"github.com/jask/discovery/internal/command"
	"github.com/jask/discovery/internal/podbay"
	"github.com/jask/discovery/internal/tui"
	"github.com/jask/discovery/widgets"
)

// Vocabulary maps spoken commands to events.
func Vocabulary() *command.Matcher[podbay.Kind] {
	return command.NewMatcher[podbay.Kind]().
		Register("open the pod bay doors", podbay.OpenDoors).
		Register("open the doors", podbay.OpenDoors).
		Register("show me the crew", podbay.ShowCrew).
		Register("crew", podbay.ShowCrew).
		Register("show me the door log", podbay.ShowLog).
		Register("log", podbay.ShowLog)
}

// PodBayScreen is the root console: HAL's eye, his last words and a prompt.
type PodBayScreen struct {
	handler   reaction.Handler[podbay.Event]
	release   func()
	keys      *tui.KeyRegistry
	format    display.Formatter
	commands  *command.Matcher[podbay.Kind]
	input     textinput.Model
	prompting bool
	payload   podbay.DoorPayload
}

var _ podbay.DoorDisplay = (*PodBayScreen)(nil)

func NewPodBayScreen(h reaction.Handler[podbay.Event], deps Deps) *PodBayScreen {
	in := textinput.New()
	in.Prompt = "> "
	in.Placeholder = "open the pod bay doors"
	in.CharLimit = 120
	return &PodBayScreen{
		handler:  h,
		keys:     deps.Keys,
		format:   deps.Format,
		commands: Vocabulary(),
		input:    in,
	}
}

func (s *PodBayScreen) Show(p podbay.DoorPayload) { s.payload = p }

func (s *PodBayScreen) Title() string {
	if s.payload.Title != "" {
		return s.payload.Title
	}
	return "Pod Bay"
}

func (s *PodBayScreen) Scope() string {
	if s.prompting {
		return tui.ScopePrompt
	}
	return tui.ScopePodBay
}

func (s *PodBayScreen) Activate() { s.handler.Handle(podbay.Tap(podbay.Refresh)) }

func (s *PodBayScreen) Close() {
	if s.release != nil {
		s.release()
	}
}

func (s *PodBayScreen) Update(msg tea.Msg) (tea.Cmd, bool) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		if s.prompting {
			var cmd tea.Cmd
			s.input, cmd = s.input.Update(msg)
			return cmd, false
		}
		return nil, false
	}
	if s.prompting {
		return s.updatePrompt(key), false
	}
	switch s.keys.Action(key, tui.ScopePodBay) {
	case "open-doors":
		s.handler.Handle(podbay.Tap(podbay.OpenDoors))
	case "show-crew":
		s.handler.Handle(podbay.Tap(podbay.ShowCrew))
	case "show-log":
		s.handler.Handle(podbay.Tap(podbay.ShowLog))
	case "prompt":
		s.prompting = true
		s.input.Reset()
		return s.input.Focus(), false
	}
	return nil, false
}

func (s *PodBayScreen) updatePrompt(key tea.KeyMsg) tea.Cmd {
	switch s.keys.Action(key, tui.ScopePrompt) {
	case "cancel":
		s.stopPrompt()
		return nil
	case "submit":
		said := strings.TrimSpace(s.input.Value())
		s.stopPrompt()
		if said == "" {
			return nil
		}
		if kind, ok := s.commands.Match(said); ok {
			s.handler.Handle(podbay.Tap(kind))
			return tui.StatusCmd("heard: " + kind.String())
		}
		s.handler.Handle(podbay.Event{Kind: podbay.Unrecognized, Input: said})
		return nil
	}
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(key)
	return cmd
}

func (s *PodBayScreen) stopPrompt() {
	s.prompting = false
	s.input.Blur()
	s.input.Reset()
}

func (s *PodBayScreen) View(width, height int) string {
	eye := widgets.Text(s.eye())
	words := s.payload.Message
	if c := s.payload.Caption(s.format); c != "" {
		words += "\n\n" + captionStyle.Render(c)
	}
	if s.prompting {
		words += "\n\n" + s.input.View()
	}
	accent := lipgloss.TerminalColor(colorAccent)
	if s.payload.Refused() {
		accent = colorEye
	}
	return widgets.HStack{
		Widgets: []widgets.Widget{eye, widgets.Box{Title: s.Title(), Content: words, Accent: accent}},
		Ratios:  []float64{1, 3},
		Gap:     1,
	}.Render(width, min(height, 12))
}

func (s *PodBayScreen) eye() string {
	lens := lipgloss.NewStyle().Foreground(colorEye).Render("●")
	if s.payload.Refused() {
		lens = lipgloss.NewStyle().Foreground(colorEyeGlow).Bold(true).Render("◉")
	}
	return eyeStyle.Render(lens)
}
