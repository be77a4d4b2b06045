package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/medicalheatmap/smartmattress/internal/mattress"
	"github.com/medicalheatmap/smartmattress/internal/theme"
)

func (m Model) viewOverviewPanel() string {
	sil := mattress.CurrentHeatmap()
	gradient := theme.Gradient(theme.HeatmapStops(), silhouetteHeight(sil))
	heatmap := renderSilhouette(sil, func(line int) string {
		return gradient[line]
	})

	heat := m.styles.Card.Render(lipgloss.JoinVertical(lipgloss.Left,
		m.styles.Bold.Render("Pressure Heatmap"),
		"",
		heatmap,
		"",
		m.renderLegend(),
	))

	var alerts strings.Builder
	alerts.WriteString(m.styles.Error.Render("⚠ ") + m.styles.Bold.Render("Active Alerts"))
	alerts.WriteString("\n")
	for _, a := range mattress.ActiveAlerts() {
		icon := m.styles.Error.Render(alertIcon(a.Kind))
		if a.Kind == mattress.AlertCooling {
			icon = m.styles.Key.Render(alertIcon(a.Kind))
		}
		alerts.WriteString("\n" + icon + " " + a.Message)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		heat,
		"",
		m.styles.ErrorCard.Render(alerts.String()),
	)
}
