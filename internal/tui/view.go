package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/jask/discovery/widgets"
)

func (m Model) View() string {
	if m.quitting {
		return "Goodbye\n"
	}
	header := renderHeader(m)
	status := renderStatusBar(m)
	footer := renderFooter(m)
	bodyHeight := max(0, m.height-lipgloss.Height(header)-lipgloss.Height(status)-lipgloss.Height(footer))

	body := renderBody(m.stack, max(1, m.width-2), bodyHeight)
	body = fitHeight(body, bodyHeight)
	view := strings.Join([]string{header, status, body, footer}, "\n")
	view = fitHeight(view, max(1, m.height))
	return appStyle.Width(max(1, m.width)).MaxWidth(max(1, m.width)).Render(view)
}

func renderBody(stack *Stack, width, height int) string {
	top := stack.Top()
	if top == nil || height <= 0 {
		return ""
	}
	if o, ok := top.(Overlay); ok && o.Overlay() {
		if below := stack.Below(); below != nil {
			popup := top.View(max(20, width-12), max(6, height-6))
			return widgets.RenderPopup(below.View(width, height), popup, width, height)
		}
	}
	return top.View(width, height)
}

func renderHeader(m Model) string {
	left := headerAppStyle.Render(m.name)
	right := crumbStyle.Render(strings.Join(m.stack.Titles(), " › "))
	right = ansi.Truncate(right, max(1, m.width), "")
	gap := 1
	if w := ansi.StringWidth(left) + ansi.StringWidth(right); w+1 < m.width {
		gap = m.width - w
	}
	return renderBar(headerBarStyle, max(1, m.width), left+strings.Repeat(" ", gap)+right)
}

func renderStatusBar(m Model) string {
	msg := strings.TrimSpace(m.status)
	if msg == "" {
		msg = "Ready"
	}
	if m.statusErr {
		return renderBar(statusErrBarStyle, max(1, m.width), msg)
	}
	return renderBar(statusBarStyle, max(1, m.width), msg)
}

func renderFooter(m Model) string {
	line := m.help.ShortHelpView(m.keys.Help(m.ActiveScope()))
	if strings.TrimSpace(line) == "" {
		line = "No shortcuts"
	}
	return renderBar(footerStyle, max(1, m.width), line)
}

func renderBar(style lipgloss.Style, width int, text string) string {
	line := ansi.Truncate(strings.ReplaceAll(text, "\n", " "), width, "")
	if w := ansi.StringWidth(line); w < width {
		line += strings.Repeat(" ", width-w)
	}
	return style.Width(width).MaxWidth(width).Render(line)
}

func fitHeight(s string, height int) string {
	if height <= 0 {
		return ""
	}
	lines := strings.Split(s, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}
