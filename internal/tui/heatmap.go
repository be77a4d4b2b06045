package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/medicalheatmap/smartmattress/internal/mattress"
	"github.com/medicalheatmap/smartmattress/internal/theme"
)

const (
	heatmapWidth   = 36
	heatmapPadding = 1
	heatmapGap     = 2
	regionAlpha    = 0.55
)

func silhouetteHeight(s mattress.Silhouette) int {
	h := 0
	for _, row := range s {
		rowHeight := 0
		for _, r := range row {
			if r.Height > rowHeight {
				rowHeight = r.Height
			}
		}
		h += rowHeight
	}
	return h + 2*heatmapPadding
}

func cell(bg string, text string, width int) string {
	runes := []rune(text)
	if len(runes) > width {
		runes = runes[:width]
	}
	text = string(runes)
	pad := width - lipgloss.Width(text)
	if pad < 0 {
		pad = 0
	}
	left := pad / 2

	return lipgloss.NewStyle().
		Background(lipgloss.Color(bg)).
		Foreground(lipgloss.Color(theme.ReadableOn(bg, theme.OnPrimary, theme.OnSurface))).
		Render(strings.Repeat(" ", left) + text + strings.Repeat(" ", pad-left))
}

func regionLabel(r mattress.Region) string {
	if r.Warning {
		return "⚠ " + string(r.Part)
	}
	return string(r.Part)
}

// renderSilhouette draws the body regions over a background chosen per
// line, so callers can supply a gradient or a flat colour.
func renderSilhouette(s mattress.Silhouette, lineBg func(line int) string) string {
	var lines []string
	line := 0

	blank := func() {
		lines = append(lines, cell(lineBg(line), "", heatmapWidth))
		line++
	}

	for i := 0; i < heatmapPadding; i++ {
		blank()
	}

	for _, row := range s {
		rowHeight := 0
		used := 0
		for i, r := range row {
			if r.Height > rowHeight {
				rowHeight = r.Height
			}
			used += r.Width
			if i > 0 {
				used += heatmapGap
			}
		}
		leftPad := (heatmapWidth - used) / 2
		rightPad := heatmapWidth - used - leftPad

		for y := 0; y < rowHeight; y++ {
			bg := lineBg(line)
			var b strings.Builder
			b.WriteString(cell(bg, "", leftPad))
			for i, r := range row {
				if i > 0 {
					b.WriteString(cell(bg, "", heatmapGap))
				}
				if y >= r.Height {
					b.WriteString(cell(bg, "", r.Width))
					continue
				}
				fill := theme.WithAlpha(theme.PressureColor(r.Level), bg, regionAlpha)
				label := ""
				if y == 0 {
					label = regionLabel(r)
				}
				b.WriteString(cell(fill, label, r.Width))
			}
			b.WriteString(cell(bg, "", rightPad))
			lines = append(lines, b.String())
			line++
		}
	}

	for i := 0; i < heatmapPadding; i++ {
		blank()
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderLegend() string {
	items := make([]string, 0, len(mattress.PressureLevels()))
	for _, level := range mattress.PressureLevels() {
		swatch := lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.PressureColor(level))).
			Render("■")
		items = append(items, swatch+" "+level.String())
	}
	return strings.Join(items, "   ")
}
