package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/medicalheatmap/smartmattress/internal/config"
	"github.com/medicalheatmap/smartmattress/internal/mattress"
	"github.com/medicalheatmap/smartmattress/internal/theme"
)

const (
	sliderStep     = 1.0
	sliderFineStep = 0.1
	sliderWidth    = 40
)

type temperatureState struct {
	setting mattress.TemperatureSetting
	row     temperatureRow
	preset  int
}

func newTemperatureState(cfg config.Config) temperatureState {
	return temperatureState{
		setting: mattress.NewTemperatureSetting(cfg.Temperature.Default, cfg.Zone()),
		row:     rowSlider,
	}
}

// Temperature exposes the panel's current setting.
func (m Model) Temperature() mattress.TemperatureSetting {
	return m.dash.temp.setting
}

func (m Model) updateTemperaturePanel(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	t := &m.dash.temp

	switch {
	case key.Matches(msg, m.keys.Up):
		if t.row > rowZone {
			t.row--
		}
		return m, nil
	case key.Matches(msg, m.keys.Down):
		if t.row < rowApply {
			t.row++
		}
		return m, nil
	}

	switch t.row {
	case rowZone:
		zones := mattress.Zones()
		idx := int(t.setting.Zone())
		switch {
		case key.Matches(msg, m.keys.Left):
			idx = (idx - 1 + len(zones)) % len(zones)
		case key.Matches(msg, m.keys.Right):
			idx = (idx + 1) % len(zones)
		default:
			return m, nil
		}
		t.setting.SetZone(zones[idx])

	case rowSlider:
		switch {
		case key.Matches(msg, m.keys.Left):
			t.setting.Decrement(sliderStep)
		case key.Matches(msg, m.keys.Right):
			t.setting.Increment(sliderStep)
		case key.Matches(msg, m.keys.FineDown):
			t.setting.Decrement(sliderFineStep)
		case key.Matches(msg, m.keys.FineUp):
			t.setting.Increment(sliderFineStep)
		}

	case rowPresets:
		presets := mattress.Presets()
		switch {
		case key.Matches(msg, m.keys.Left):
			if t.preset > 0 {
				t.preset--
			}
		case key.Matches(msg, m.keys.Right):
			if t.preset < len(presets)-1 {
				t.preset++
			}
		case key.Matches(msg, m.keys.Select):
			t.setting.ApplyPreset(presets[t.preset])
		}

	case rowApply:
		if key.Matches(msg, m.keys.Select) {
			t.setting.Apply()
		}
	}
	return m, nil
}

func (m Model) renderSlider() string {
	s := m.dash.temp.setting
	pos := int(s.Fraction()*float64(sliderWidth-1) + 0.5)

	var b strings.Builder
	for i := 0; i < sliderWidth; i++ {
		switch {
		case i == pos:
			b.WriteString(m.styles.Key.Render("●"))
		case i < pos:
			b.WriteString(m.styles.Key.Render("━"))
		default:
			b.WriteString(m.styles.Subtle.Render("─"))
		}
	}
	return b.String()
}

func (m Model) rowMarker(row temperatureRow) string {
	if m.dash.temp.row == row {
		return m.styles.Key.Render("▸ ")
	}
	return "  "
}

func (m Model) viewTemperaturePanel() string {
	t := m.dash.temp
	s := t.setting

	zones := make([]string, 0, 3)
	for _, z := range mattress.Zones() {
		style := m.styles.Chip
		if z == s.Zone() {
			style = m.styles.ChipActive
		}
		zones = append(zones, style.Render(z.String()))
	}

	display := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(theme.OnPrimary)).
		Background(lipgloss.Color(theme.Blend(theme.CoolStart, theme.CoolEnd, s.Fraction()))).
		Width(sliderWidth).
		Padding(1, 0).
		Align(lipgloss.Center).
		Render(s.Display() + "\n" + s.Zone().String())

	presets := make([]string, 0, 4)
	for i, p := range mattress.Presets() {
		style := m.styles.Button
		if t.row == rowPresets && i == t.preset {
			style = m.styles.ButtonHot
		}
		presets = append(presets, style.Render(p.Name))
	}

	apply := m.styles.Button.Render("Apply Settings")
	if t.row == rowApply {
		apply = m.styles.ButtonHot.Render("Apply Settings")
	}

	control := lipgloss.JoinVertical(lipgloss.Left,
		m.styles.Title.Render("🌡 Temperature Control"),
		"",
		m.styles.Bold.Render("Select Zone"),
		m.rowMarker(rowZone)+lipgloss.JoinHorizontal(lipgloss.Center, zones...),
		"",
		"  "+display,
		"",
		"  "+m.styles.Subtle.Render("Cool")+strings.Repeat(" ", 7)+
			m.styles.Bold.Render("Temperature Adjustment")+strings.Repeat(" ", 7)+
			m.styles.Subtle.Render("Warm"),
		m.rowMarker(rowSlider)+m.renderSlider(),
		"  "+m.styles.Subtle.Render("0°C")+strings.Repeat(" ", sliderWidth-7)+m.styles.Subtle.Render("20°C"),
		"",
		m.styles.Bold.Render("Quick Presets"),
		m.rowMarker(rowPresets)+strings.Join(presets, " "),
		"",
		m.rowMarker(rowApply)+apply,
	)

	status := m.styles.Card.
		BorderForeground(lipgloss.Color(theme.Secondary)).
		Render(m.styles.Success.Render("✓ ") + m.styles.Bold.Render("Cooling System Active") + "\n" +
			m.styles.Subtle.Render(fmt.Sprintf("Current temperature: %s", s.Display())))

	return lipgloss.JoinVertical(lipgloss.Left,
		m.styles.Card.Render(control),
		"",
		status,
	)
}
