package tui

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

// Model is the bubbletea model. All screens live on the shared Stack; the
// model only routes messages to the top screen and frames its view.
type Model struct {
	name      string
	width     int
	height    int
	stack     *Stack
	keys      *KeyRegistry
	help      help.Model
	log       *zap.Logger
	status    string
	statusErr bool
	quitting  bool
}

func NewModel(name string, stack *Stack, keys *KeyRegistry, log *zap.Logger) Model {
	if log == nil {
		log = zap.NewNop()
	}
	return Model{
		name:   name,
		stack:  stack,
		keys:   keys,
		help:   help.New(),
		log:    log,
		status: "Ready",
		width:  100,
		height: 32,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) ActiveScope() string {
	if top := m.stack.Top(); top != nil {
		return top.Scope()
	}
	return "app"
}

func (m Model) Stack() *Stack {
	return m.stack
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		return m, nil
	case StatusMsg:
		m.status = msg.Text
		m.statusErr = msg.IsErr
		return m, nil
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" || m.keys.IsAction(msg, "quit", m.ActiveScope()) {
			m.quitting = true
			return m, tea.Quit
		}
	}

	top := m.stack.Top()
	if top == nil {
		m.quitting = true
		return m, tea.Quit
	}
	cmd, pop := top.Update(msg)
	if pop {
		m.stack.Dismiss()
	}
	if m.stack.Len() == 0 {
		m.log.Info("last screen dismissed")
		m.quitting = true
		return m, tea.Batch(cmd, tea.Quit)
	}
	return m, cmd
}
