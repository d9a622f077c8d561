package widgets

import "github.com/charmbracelet/lipgloss"

// Box frames content under a title.
type Box struct {
	Title   string
	Content string
	Accent  lipgloss.TerminalColor
}

func (b Box) Render(width, height int) string {
	if width <= 2 || height <= 2 {
		return ""
	}
	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1).
		Width(width - 2).
		Height(height - 2).
		MaxHeight(height)
	title := "[" + b.Title + "]"
	if b.Accent != nil {
		style = style.BorderForeground(b.Accent)
		title = lipgloss.NewStyle().Foreground(b.Accent).Bold(true).Render(title)
	}
	return style.Render(title + "\n" + b.Content)
}
