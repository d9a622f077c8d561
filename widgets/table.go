package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Table renders rows in columns padded to the widest cell.
type Table struct {
	Headers []string
	Rows    [][]string
	Empty   string
	Header  lipgloss.Style
}

func (t Table) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	if len(t.Rows) == 0 {
		if t.Empty == "" {
			return "No data"
		}
		return t.Empty
	}
	widths := make([]int, len(t.Headers))
	for i, h := range t.Headers {
		widths[i] = ansi.StringWidth(h)
	}
	for _, row := range t.Rows {
		for i := 0; i < len(row) && i < len(widths); i++ {
			widths[i] = max(widths[i], ansi.StringWidth(row[i]))
		}
	}
	lines := make([]string, 0, min(height, len(t.Rows)+1))
	if len(t.Headers) > 0 {
		lines = append(lines, t.Header.Render(ansi.Truncate(t.line(t.Headers, widths), width, "")))
	}
	for _, row := range t.Rows {
		if len(lines) >= height {
			break
		}
		lines = append(lines, ansi.Truncate(t.line(row, widths), width, "…"))
	}
	return strings.Join(lines, "\n")
}

func (t Table) line(cells []string, widths []int) string {
	parts := make([]string, 0, len(widths))
	for i, w := range widths {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		parts = append(parts, padRight(cell, w))
	}
	return strings.TrimRight(strings.Join(parts, "  "), " ")
}
