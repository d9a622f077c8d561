// Package tui hosts the bubbletea program: the screen contract, the screen
// stack that presents and dismisses screens, and the top-level model.
package tui

import tea "github.com/charmbracelet/bubbletea"

// Screen is one full-body surface. Update reports pop=true when the screen
// wants to be dismissed.
type Screen interface {
	Update(msg tea.Msg) (cmd tea.Cmd, pop bool)
	View(width, height int) string
	Scope() string
	Title() string
}

// Activator is called once a screen has been presented.
type Activator interface {
	Activate()
}

// Closer is called once a screen has been dismissed.
type Closer interface {
	Close()
}

// Overlay screens render as a popup over the screen beneath them.
type Overlay interface {
	Overlay() bool
}
