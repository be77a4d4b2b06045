package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/medicalheatmap/smartmattress/internal/config"
	"github.com/medicalheatmap/smartmattress/internal/mattress"
)

type dashboardState struct {
	tab  DashboardTab
	temp temperatureState
}

func newDashboardState(cfg config.Config) dashboardState {
	return dashboardState{
		tab:  TabOverview,
		temp: newTemperatureState(cfg),
	}
}

// Tab reports the selected dashboard tab.
func (m Model) Tab() DashboardTab {
	return m.dash.tab
}

func (m Model) selectTab(t DashboardTab) Model {
	tabs := dashboardTabs()
	n := DashboardTab(len(tabs))
	m.dash.tab = ((t % n) + n) % n
	return m
}

func (m Model) updateDashboardState(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.NextTab):
		return m.selectTab(m.dash.tab + 1), nil
	case key.Matches(keyMsg, m.keys.PrevTab):
		return m.selectTab(m.dash.tab - 1), nil
	case key.Matches(keyMsg, m.keys.Tab1):
		return m.selectTab(TabOverview), nil
	case key.Matches(keyMsg, m.keys.Tab2):
		return m.selectTab(TabPrediction), nil
	case key.Matches(keyMsg, m.keys.Tab3):
		return m.selectTab(TabHistory), nil
	case key.Matches(keyMsg, m.keys.Tab4):
		return m.selectTab(TabTemperature), nil
	}

	if m.dash.tab == TabTemperature {
		return m.updateTemperaturePanel(keyMsg)
	}

	switch {
	case key.Matches(keyMsg, m.keys.Right):
		return m.selectTab(m.dash.tab + 1), nil
	case key.Matches(keyMsg, m.keys.Left):
		return m.selectTab(m.dash.tab - 1), nil
	}
	return m, nil
}

func (m Model) renderAppBar() string {
	title := "Smart Mattress Monitor"
	if m.link != nil {
		title += "  ·  " + m.link.Label() + "  ·  session " + m.link.ShortSession()
	}
	style := m.styles.AppBar
	if m.width > 0 {
		style = style.Width(m.width)
	}
	return style.Render(title)
}

func (m Model) renderTabBar() string {
	tabs := make([]string, 0, len(tabTitles))
	for _, t := range dashboardTabs() {
		style := m.styles.Tab
		if t == m.dash.tab {
			style = m.styles.TabActive
		}
		tabs = append(tabs, style.Render(t.Title()))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) renderPanel() string {
	switch m.dash.tab {
	case TabPrediction:
		return m.viewPredictionPanel()
	case TabHistory:
		return m.viewHistoryPanel()
	case TabTemperature:
		return m.viewTemperaturePanel()
	default:
		return m.viewOverviewPanel()
	}
}

func (m Model) viewDashboard() string {
	var b strings.Builder

	b.WriteString(m.renderAppBar())
	b.WriteString("\n")
	b.WriteString(m.renderTabBar())
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().Padding(0, 2).Render(m.renderPanel()))
	b.WriteString("\n\n")
	b.WriteString(m.renderHelp())

	return b.String()
}

func alertIcon(kind mattress.AlertKind) string {
	if kind == mattress.AlertCooling {
		return "❄"
	}
	return "!"
}

func eventIcon(kind mattress.EventKind) string {
	switch kind {
	case mattress.EventCooling:
		return "❄"
	case mattress.EventResolved:
		return "✓"
	case mattress.EventPosition:
		return "↕"
	case mattress.EventWarning:
		return "⚠"
	case mattress.EventSystem:
		return "⚙"
	case mattress.EventNight:
		return "☾"
	case mattress.EventReset:
		return "↻"
	default:
		return "•"
	}
}
