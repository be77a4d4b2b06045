package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/medicalheatmap/smartmattress/internal/config"
	"github.com/medicalheatmap/smartmattress/internal/log"
	"github.com/medicalheatmap/smartmattress/internal/mattress"
	"github.com/medicalheatmap/smartmattress/internal/navigation"
	"github.com/medicalheatmap/smartmattress/internal/theme"
)

// Model is the root of the UI. It owns the navigation controller and the
// transient state of whichever screen is active; that state is rebuilt on
// every screen entry.
type Model struct {
	cfg    config.Config
	styles theme.Styles
	keys   keyMap
	help   help.Model
	nav    *navigation.Controller

	// epoch increases on every screen entry and tags timer messages.
	epoch int

	width  int
	height int

	splash  splashState
	conn    connectionState
	loading loadingState
	dash    dashboardState

	link *mattress.Link
}

func NewModel(cfg config.Config) Model {
	m := Model{
		cfg:    cfg,
		styles: theme.NewStyles(),
		keys:   newKeyMap(),
		help:   help.New(),
		nav:    navigation.New(),
	}
	m.enterScreen()
	return m
}

func (m Model) Init() tea.Cmd {
	return m.screenCmds()
}

// Screen reports the active screen.
func (m Model) Screen() navigation.Screen {
	return m.nav.Current()
}

func (m Model) onConnection() bool { return m.nav.Current() == navigation.ScreenConnection }
func (m Model) onLoading() bool    { return m.nav.Current() == navigation.ScreenLoading }
func (m Model) onDashboard() bool  { return m.nav.Current() == navigation.ScreenDashboard }

// enterScreen resets the local state of the active screen.
func (m *Model) enterScreen() {
	m.epoch++
	screen := m.nav.Current()
	log.Debugf("Entering %s (epoch %d, history %v)", screen, m.epoch, m.nav.History())

	switch screen {
	case navigation.ScreenSplash:
		m.splash = newSplashState()
	case navigation.ScreenConnection:
		m.conn = newConnectionState()
	case navigation.ScreenLoading:
		m.loading = newLoadingState(m.width)
	case navigation.ScreenDashboard:
		m.dash = newDashboardState(m.cfg)
	}
}

// screenCmds starts the timers owned by the active screen.
func (m Model) screenCmds() tea.Cmd {
	switch m.nav.Current() {
	case navigation.ScreenSplash:
		return tea.Batch(m.splashTimer(), m.splashFrame())
	case navigation.ScreenLoading:
		return tea.Batch(m.loadingTick(), m.loading.spinner.Tick)
	default:
		return nil
	}
}

// transition applies a controller trigger and enters the resulting screen.
func (m Model) transition(trigger func() error) (tea.Model, tea.Cmd) {
	from := m.nav.Current()
	if err := trigger(); err != nil {
		log.Debugf("Ignoring transition from %s: %v", from, err)
		return m, nil
	}
	log.Infof("Navigated %s -> %s", from, m.nav.Current())
	m.enterScreen()
	return m, m.screenCmds()
}

func (m Model) goBack() (tea.Model, tea.Cmd) {
	from := m.nav.Current()
	if !m.nav.Back() {
		log.Info("Nothing to go back to, exiting")
		return m, tea.Quit
	}
	log.Infof("Back %s -> %s", from, m.nav.Current())
	m.enterScreen()
	return m, m.screenCmds()
}

func (m Model) capturingText() bool {
	return m.onConnection() && m.conn.dialog != dialogNone
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.loading.resize(msg.Width)
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.ForceQuit) {
			return m, tea.Quit
		}
		if !m.capturingText() {
			switch {
			case key.Matches(msg, m.keys.Quit):
				return m, tea.Quit
			case key.Matches(msg, m.keys.Help):
				m.help.ShowAll = !m.help.ShowAll
				return m, nil
			case key.Matches(msg, m.keys.Back):
				return m.goBack()
			}
		}
	}

	switch m.nav.Current() {
	case navigation.ScreenSplash:
		return m.updateSplashState(msg)
	case navigation.ScreenConnection:
		return m.updateConnectionState(msg)
	case navigation.ScreenLoading:
		return m.updateLoadingState(msg)
	case navigation.ScreenDashboard:
		return m.updateDashboardState(msg)
	}
	return m, nil
}

func (m Model) View() string {
	switch m.nav.Current() {
	case navigation.ScreenSplash:
		return m.viewSplash()
	case navigation.ScreenConnection:
		return m.viewConnection()
	case navigation.ScreenLoading:
		return m.viewLoading()
	case navigation.ScreenDashboard:
		return m.viewDashboard()
	}
	return ""
}

func (m Model) renderHelp() string {
	return m.help.View(m.helpKeys())
}

// Run starts the program and blocks until the user quits.
func Run(cfg config.Config) error {
	opts := []tea.ProgramOption{}
	if cfg.UI.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}

	p := tea.NewProgram(NewModel(cfg), opts...)
	_, err := p.Run()
	return err
}
