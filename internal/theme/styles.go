package theme

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/medicalheatmap/smartmattress/internal/mattress"
)

type Styles struct {
	Title      lipgloss.Style
	Subtitle   lipgloss.Style
	Normal     lipgloss.Style
	Bold       lipgloss.Style
	Subtle     lipgloss.Style
	Success    lipgloss.Style
	Error      lipgloss.Style
	Key        lipgloss.Style
	AppBar     lipgloss.Style
	Card       lipgloss.Style
	CardActive lipgloss.Style
	Dialog     lipgloss.Style
	ErrorCard  lipgloss.Style
	WarnCard   lipgloss.Style
	Tab        lipgloss.Style
	TabActive  lipgloss.Style
	Chip       lipgloss.Style
	ChipActive lipgloss.Style
	Button     lipgloss.Style
	ButtonHot  lipgloss.Style
}

func NewStyles() Styles {
	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(Gray)).
		Padding(0, 2)

	chip := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(Gray)).
		Padding(0, 1)

	button := lipgloss.NewStyle().
		Padding(0, 2).
		Foreground(lipgloss.Color(Primary))

	return Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(Primary)),
		Subtitle: lipgloss.NewStyle().
			Foreground(lipgloss.Color(Gray)),
		Normal: lipgloss.NewStyle().
			Foreground(lipgloss.Color(OnSurface)),
		Bold: lipgloss.NewStyle().
			Bold(true),
		Subtle: lipgloss.NewStyle().
			Foreground(lipgloss.Color(Gray)),
		Success: lipgloss.NewStyle().
			Foreground(lipgloss.Color(Secondary)),
		Error: lipgloss.NewStyle().
			Foreground(lipgloss.Color(ErrorColor)),
		Key: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(Primary)),
		AppBar: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(OnPrimary)).
			Background(lipgloss.Color(Primary)).
			Padding(0, 1),
		Card: card,
		CardActive: card.
			BorderForeground(lipgloss.Color(Primary)).
			Background(lipgloss.Color(PrimaryContainer)).
			Foreground(lipgloss.Color(OnSurface)),
		Dialog: lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color(Primary)).
			Padding(1, 2),
		ErrorCard: card.
			BorderForeground(lipgloss.Color(ErrorColor)).
			Background(lipgloss.Color(ErrorContainer)).
			Foreground(lipgloss.Color(OnSurface)),
		WarnCard: card.
			BorderForeground(lipgloss.Color(PressureColor(mattress.PressureHigh))).
			Background(lipgloss.Color(WarningContainer)).
			Foreground(lipgloss.Color(OnSurface)),
		Tab: lipgloss.NewStyle().
			Padding(0, 2).
			Foreground(lipgloss.Color(Gray)),
		TabActive: lipgloss.NewStyle().
			Padding(0, 2).
			Bold(true).
			Foreground(lipgloss.Color(OnPrimary)).
			Background(lipgloss.Color(Primary)),
		Chip: chip,
		ChipActive: chip.
			BorderForeground(lipgloss.Color(Primary)).
			Foreground(lipgloss.Color(Primary)).
			Bold(true),
		Button: button,
		ButtonHot: button.
			Bold(true).
			Foreground(lipgloss.Color(OnPrimary)).
			Background(lipgloss.Color(Primary)),
	}
}
