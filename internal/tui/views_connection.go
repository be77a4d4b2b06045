package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/medicalheatmap/smartmattress/internal/log"
	"github.com/medicalheatmap/smartmattress/internal/mattress"
	"github.com/medicalheatmap/smartmattress/internal/theme"
)

type connectionCard struct {
	title string
	hint  string
	icon  string
}

var connectionCards = []connectionCard{
	{title: "Scan QR Code", hint: "Use camera to scan mattress QR", icon: "▣"},
	{title: "Enter Serial Number", hint: "Type your mattress serial code", icon: "#"},
}

type connectionState struct {
	cursor int
	dialog connectionDialog
	serial textinput.Model
}

func newConnectionState() connectionState {
	ti := textinput.New()
	ti.Placeholder = "e.g., SM-2024-1234"
	ti.Prompt = "Serial Number: "
	ti.CharLimit = 64
	ti.Width = 28

	return connectionState{serial: ti}
}

func (m Model) updateConnectionState(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m.conn.dialog {
	case dialogScanner:
		return m.updateScannerDialog(msg)
	case dialogSerial:
		return m.updateSerialDialog(msg)
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Up):
		if m.conn.cursor > 0 {
			m.conn.cursor--
		}
	case key.Matches(keyMsg, m.keys.Down):
		if m.conn.cursor < len(connectionCards)-1 {
			m.conn.cursor++
		}
	case key.Matches(keyMsg, m.keys.Scan):
		return m.openDialog(dialogScanner)
	case key.Matches(keyMsg, m.keys.Serial):
		return m.openDialog(dialogSerial)
	case key.Matches(keyMsg, m.keys.Select):
		if m.conn.cursor == 0 {
			return m.openDialog(dialogScanner)
		}
		return m.openDialog(dialogSerial)
	}
	return m, nil
}

func (m Model) openDialog(d connectionDialog) (tea.Model, tea.Cmd) {
	m.conn.dialog = d
	if d == dialogSerial {
		return m, m.conn.serial.Focus()
	}
	return m, nil
}

func (m Model) closeDialog() Model {
	m.conn.dialog = dialogNone
	m.conn.serial.Blur()
	return m
}

func (m Model) updateScannerDialog(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Confirm):
		m = m.closeDialog()
		return m.connect(mattress.ConnectQR, "")
	case key.Matches(keyMsg, m.keys.Cancel):
		return m.closeDialog(), nil
	}
	return m, nil
}

func (m Model) updateSerialDialog(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, m.keys.Confirm):
			serial := m.conn.serial.Value()
			if serial == "" {
				return m, nil
			}
			m = m.closeDialog()
			return m.connect(mattress.ConnectSerial, serial)
		case key.Matches(keyMsg, m.keys.Cancel):
			return m.closeDialog(), nil
		}
	}

	var cmd tea.Cmd
	m.conn.serial, cmd = m.conn.serial.Update(msg)
	return m, cmd
}

// connect always succeeds; there is no device on the other end.
func (m Model) connect(method mattress.ConnectMethod, serial string) (tea.Model, tea.Cmd) {
	link := mattress.NewLink(method, serial)
	m.link = &link
	log.Info("Connected", "method", link.Method, "serial", link.Serial, "session", link.Session)
	return m.transition(m.nav.Connected)
}

func (m Model) viewConnection() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(m.styles.Title.Render("ᛒ  Connect Your Mattress"))
	b.WriteString("\n")
	b.WriteString(m.styles.Subtitle.Render("Choose a connection method"))
	b.WriteString("\n\n")

	for i, card := range connectionCards {
		style := m.styles.Card
		if i == m.conn.cursor {
			style = m.styles.CardActive
		}
		body := lipgloss.JoinHorizontal(lipgloss.Center,
			m.styles.Key.Render(card.icon),
			"  ",
			lipgloss.JoinVertical(lipgloss.Left,
				m.styles.Bold.Render(card.title),
				m.styles.Subtle.Render(card.hint),
			),
		)
		b.WriteString(style.Width(44).Render(body))
		b.WriteString("\n")
	}

	switch m.conn.dialog {
	case dialogScanner:
		b.WriteString("\n")
		b.WriteString(m.viewScannerDialog())
		b.WriteString("\n")
	case dialogSerial:
		b.WriteString("\n")
		b.WriteString(m.viewSerialDialog())
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.renderHelp())

	return lipgloss.NewStyle().Padding(0, 2).Render(b.String())
}

func (m Model) viewScannerDialog() string {
	camera := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.CameraGreen)).
		Background(lipgloss.Color(theme.CameraBlack)).
		Width(36).
		Height(5).
		Align(lipgloss.Center, lipgloss.Center).
		Render(lipgloss.JoinVertical(lipgloss.Center,
			lipgloss.NewStyle().Foreground(lipgloss.Color(theme.CameraGreen)).Render("◉ Camera View Simulation"),
			"",
			lipgloss.NewStyle().Foreground(lipgloss.Color("#ffffff")).Render("Scanning..."),
		))

	buttons := m.styles.ButtonHot.Render("Connect (Demo)") + "  " + m.styles.Button.Render("Cancel")

	return m.styles.Dialog.Render(lipgloss.JoinVertical(lipgloss.Left,
		m.styles.Bold.Render("QR Scanner"),
		"",
		camera,
		"",
		buttons,
	))
}

func (m Model) viewSerialDialog() string {
	connect := m.styles.Button.Render("Connect")
	if m.conn.serial.Value() != "" {
		connect = m.styles.ButtonHot.Render("Connect")
	}

	return m.styles.Dialog.Render(lipgloss.JoinVertical(lipgloss.Left,
		m.styles.Bold.Render("Enter Serial Number"),
		"",
		m.conn.serial.View(),
		m.styles.Subtle.Render("Enter any value for demo"),
		"",
		connect+"  "+m.styles.Button.Render("Cancel"),
	))
}
