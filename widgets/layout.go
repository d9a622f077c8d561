package widgets

import (
	"math"
	"strings"
)

// Widget renders itself into a width x height cell.
type Widget interface {
	Render(width, height int) string
}

// Text is a literal block.
type Text string

func (t Text) Render(width, height int) string {
	return strings.Join(canvas(string(t), width, height), "\n")
}

// VStack stacks widgets top to bottom, splitting height by Ratios.
type VStack struct {
	Widgets []Widget
	Ratios  []float64
	Spacing int
}

func (v VStack) Render(width, height int) string {
	if len(v.Widgets) == 0 || width <= 0 || height <= 0 {
		return ""
	}
	usable := max(1, height-v.Spacing*(len(v.Widgets)-1))
	heights := split(usable, len(v.Widgets), v.Ratios)
	parts := make([]string, 0, len(v.Widgets)*(v.Spacing+1))
	for i, w := range v.Widgets {
		parts = append(parts, strings.Join(canvas(w.Render(width, heights[i]), width, heights[i]), "\n"))
		if i < len(v.Widgets)-1 {
			for range v.Spacing {
				parts = append(parts, "")
			}
		}
	}
	return strings.Join(parts, "\n")
}

// HStack places widgets side by side, splitting width by Ratios.
type HStack struct {
	Widgets []Widget
	Ratios  []float64
	Gap     int
}

func (h HStack) Render(width, height int) string {
	if len(h.Widgets) == 0 || width <= 0 || height <= 0 {
		return ""
	}
	usable := max(1, width-h.Gap*(len(h.Widgets)-1))
	widths := split(usable, len(h.Widgets), h.Ratios)
	cols := make([][]string, len(h.Widgets))
	for i, w := range h.Widgets {
		cols[i] = canvas(w.Render(widths[i], height), widths[i], height)
	}
	gap := strings.Repeat(" ", h.Gap)
	out := make([]string, height)
	row := make([]string, len(cols))
	for line := range out {
		for i := range cols {
			row[i] = cols[i][line]
		}
		out[line] = strings.Join(row, gap)
	}
	return strings.Join(out, "\n")
}

func split(total, n int, ratios []float64) []int {
	out := make([]int, n)
	if len(ratios) != n {
		ratios = make([]float64, n)
		for i := range ratios {
			ratios[i] = 1
		}
	}
	sum := 0.0
	for _, r := range ratios {
		sum += math.Max(r, 0)
	}
	if sum == 0 {
		sum = 1
	}
	used := 0
	for i, r := range ratios {
		out[i] = int(math.Floor(math.Max(r, 0) / sum * float64(total)))
		used += out[i]
	}
	for i := 0; used < total; i = (i + 1) % n {
		out[i]++
		used++
	}
	return out
}
