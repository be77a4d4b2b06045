package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/medicalheatmap/smartmattress/internal/mattress"
)

const predictionBackground = "#f5f5f5"

func (m Model) viewPredictionPanel() string {
	zones := renderSilhouette(mattress.PredictedHeatmap(), func(int) string {
		return predictionBackground
	})

	var issues strings.Builder
	issues.WriteString(m.styles.Bold.Render("Predicted Issues:"))
	issues.WriteString("\n")
	for _, issue := range mattress.PredictedIssues() {
		issues.WriteString("\n• " + issue)
	}

	return m.styles.Card.Render(lipgloss.JoinVertical(lipgloss.Left,
		m.styles.Title.Render("◈ AI Pressure Prediction"),
		"",
		zones,
		"",
		m.styles.WarnCard.Render(issues.String()),
	))
}
