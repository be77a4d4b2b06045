package tui

import (
	"github.com/charmbracelet/bubbles/key"
)

type keyMap struct {
	ForceQuit key.Binding
	Quit      key.Binding
	Back      key.Binding
	Help      key.Binding

	Up      key.Binding
	Down    key.Binding
	Left    key.Binding
	Right   key.Binding
	Select  key.Binding
	Confirm key.Binding
	Cancel  key.Binding

	Scan   key.Binding
	Serial key.Binding

	NextTab key.Binding
	PrevTab key.Binding
	Tab1    key.Binding
	Tab2    key.Binding
	Tab3    key.Binding
	Tab4    key.Binding

	FineDown key.Binding
	FineUp   key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "decrease"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "increase"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "select"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "connect"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
		Scan: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "scan QR"),
		),
		Serial: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "serial number"),
		),
		NextTab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next tab"),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "prev tab"),
		),
		Tab1: key.NewBinding(key.WithKeys("1"), key.WithHelp("1-4", "jump to tab")),
		Tab2: key.NewBinding(key.WithKeys("2")),
		Tab3: key.NewBinding(key.WithKeys("3")),
		Tab4: key.NewBinding(key.WithKeys("4")),
		FineDown: key.NewBinding(
			key.WithKeys(","),
			key.WithHelp(",/.", "fine adjust"),
		),
		FineUp: key.NewBinding(
			key.WithKeys("."),
		),
	}
}

// screenHelp adapts a set of bindings to help.KeyMap.
type screenHelp struct {
	short []key.Binding
	full  [][]key.Binding
}

func (h screenHelp) ShortHelp() []key.Binding  { return h.short }
func (h screenHelp) FullHelp() [][]key.Binding { return h.full }

func (m Model) helpKeys() screenHelp {
	k := m.keys
	switch {
	case m.onConnection() && m.conn.dialog != dialogNone:
		return screenHelp{
			short: []key.Binding{k.Confirm, k.Cancel, k.ForceQuit},
			full:  [][]key.Binding{{k.Confirm, k.Cancel}, {k.ForceQuit}},
		}
	case m.onConnection():
		return screenHelp{
			short: []key.Binding{k.Up, k.Down, k.Select, k.Scan, k.Serial, k.Quit},
			full:  [][]key.Binding{{k.Up, k.Down, k.Select}, {k.Scan, k.Serial}, {k.Back, k.Quit, k.Help}},
		}
	case m.onDashboard() && m.dash.tab == TabTemperature:
		return screenHelp{
			short: []key.Binding{k.NextTab, k.Up, k.Down, k.Left, k.Right, k.Select, k.Quit},
			full: [][]key.Binding{
				{k.NextTab, k.PrevTab, k.Tab1},
				{k.Up, k.Down, k.Left, k.Right, k.FineDown, k.Select},
				{k.Back, k.Quit, k.Help},
			},
		}
	case m.onDashboard():
		return screenHelp{
			short: []key.Binding{k.NextTab, k.PrevTab, k.Tab1, k.Quit},
			full:  [][]key.Binding{{k.NextTab, k.PrevTab, k.Tab1}, {k.Back, k.Quit, k.Help}},
		}
	default:
		return screenHelp{
			short: []key.Binding{k.Quit},
			full:  [][]key.Binding{{k.Back, k.Quit, k.Help}},
		}
	}
}
