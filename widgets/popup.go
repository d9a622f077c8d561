package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// RenderPopup draws popup in a bordered card centred over base. Columns of
// base outside the card stay visible.
func RenderPopup(base, popup string, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1).
		Render(popup)
	under := canvas(base, width, height)
	over := canvas(lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card), width, height)

	out := make([]string, height)
	for i := range out {
		start, end, ok := inkBounds(over[i], width)
		if !ok {
			out[i] = under[i]
			continue
		}
		left := ansi.Truncate(under[i], start, "")
		mid := ansi.Truncate(dropColumns(over[i], start), end-start, "")
		out[i] = padRight(left+mid+dropColumns(under[i], end), width)
	}
	return strings.Join(out, "\n")
}

// inkBounds finds the first and last non-blank columns of line.
func inkBounds(line string, width int) (start, end int, ok bool) {
	plain := ansi.Strip(ansi.Truncate(line, width, ""))
	trimmed := strings.TrimRight(plain, " ")
	if trimmed == "" {
		return 0, 0, false
	}
	start = len(trimmed) - len(strings.TrimLeft(trimmed, " "))
	return start, ansi.StringWidth(trimmed), true
}

func canvas(s string, width, height int) []string {
	lines := strings.Split(s, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	for i := range lines {
		lines[i] = padRight(lines[i], width)
	}
	return lines
}

func dropColumns(s string, cols int) string {
	if cols <= 0 {
		return s
	}
	return strings.TrimPrefix(s, ansi.Truncate(s, cols, ""))
}

func padRight(s string, width int) string {
	s = ansi.Truncate(s, width, "")
	if w := ansi.StringWidth(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}
