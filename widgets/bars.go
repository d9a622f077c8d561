package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Bar is one labelled value in a Bars chart.
type Bar struct {
	Label string
	Value float64
	Style lipgloss.Style
}

// Bars draws horizontal bars scaled to the largest value.
type Bars struct {
	Data []Bar
}

func (b Bars) Render(width, height int) string {
	if width <= 0 || height <= 0 || len(b.Data) == 0 {
		return ""
	}
	labelW, top := 0, 0.0
	for _, d := range b.Data {
		labelW = max(labelW, ansi.StringWidth(d.Label))
		top = max(top, d.Value)
	}
	if top <= 0 {
		top = 1
	}
	room := max(1, width-labelW-1)
	lines := make([]string, 0, min(height, len(b.Data)))
	for _, d := range b.Data {
		if len(lines) >= height {
			break
		}
		n := int(d.Value / top * float64(room))
		if d.Value > 0 {
			n = max(1, n)
		}
		lines = append(lines, padRight(d.Label, labelW)+" "+d.Style.Render(strings.Repeat("█", n)))
	}
	return strings.Join(lines, "\n")
}
