package tui

import (
	"strings"

	"github.com/medicalheatmap/smartmattress/internal/mattress"
)

func (m Model) viewHistoryPanel() string {
	entries := mattress.History()
	cards := make([]string, 0, len(entries))
	for _, e := range entries {
		body := m.styles.Key.Render(eventIcon(e.Kind)) + "  " +
			m.styles.Bold.Render(e.Message) + "\n   " +
			m.styles.Subtle.Render("Today, "+e.Time)
		cards = append(cards, m.styles.Card.Render(body))
	}
	return strings.Join(cards, "\n")
}
