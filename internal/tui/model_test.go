package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medicalheatmap/smartmattress/internal/config"
	"github.com/medicalheatmap/smartmattress/internal/navigation"
)

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
	}
}

func send(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	updated, ok := next.(Model)
	require.True(t, ok, "Update returned %T", next)
	return updated, cmd
}

func press(t *testing.T, m Model, keys ...string) Model {
	t.Helper()
	for _, k := range keys {
		m, _ = send(t, m, keyMsg(k))
	}
	return m
}

func typeText(t *testing.T, m Model, text string) Model {
	t.Helper()
	for _, r := range text {
		m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

func newTestModel() Model {
	return NewModel(config.Default())
}

func toConnection(t *testing.T) Model {
	t.Helper()
	m := newTestModel()
	m, _ = send(t, m, splashElapsedMsg{epoch: m.epoch})
	require.Equal(t, navigation.ScreenConnection, m.Screen())
	return m
}

func toLoading(t *testing.T) Model {
	t.Helper()
	m := press(t, toConnection(t), "s", "enter")
	require.Equal(t, navigation.ScreenLoading, m.Screen())
	return m
}

func finishLoading(t *testing.T, m Model) Model {
	t.Helper()
	for i := 0; i < loadingComplete; i++ {
		m, _ = send(t, m, loadingTickMsg{epoch: m.epoch})
	}
	return m
}

func toDashboard(t *testing.T) Model {
	t.Helper()
	m := finishLoading(t, toLoading(t))
	require.Equal(t, navigation.ScreenDashboard, m.Screen())
	return m
}

func TestModel_StartsOnSplash(t *testing.T) {
	m := newTestModel()
	assert.Equal(t, navigation.ScreenSplash, m.Screen())
	assert.NotNil(t, m.Init())
	assert.Contains(t, m.View(), "Smart Mattress")
	assert.Contains(t, m.View(), "Pressure Monitoring System")
}

func TestModel_SplashElapsedReplacesSplash(t *testing.T) {
	m := toConnection(t)
	assert.Equal(t, []navigation.Screen{navigation.ScreenConnection}, m.nav.History())

	// esc with nothing behind Connection quits instead of reviving Splash
	m, cmd := send(t, m, keyMsg("esc"))
	assert.Equal(t, navigation.ScreenConnection, m.Screen())
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestModel_StaleSplashTimerIgnored(t *testing.T) {
	m := newTestModel()
	m, cmd := send(t, m, splashElapsedMsg{epoch: m.epoch - 1})
	assert.Equal(t, navigation.ScreenSplash, m.Screen())
	assert.Nil(t, cmd)
}

func TestModel_SplashAnimationSettles(t *testing.T) {
	m := newTestModel()
	start := m.splash.scale

	for i := 0; i < 600 && !m.splash.settled; i++ {
		m, _ = send(t, m, splashFrameMsg{epoch: m.epoch})
	}

	assert.True(t, m.splash.settled)
	assert.Equal(t, 1.0, m.splash.scale)
	assert.Equal(t, 1.0, m.splash.alpha)
	assert.Less(t, start, m.splash.scale)

	_, cmd := send(t, m, splashFrameMsg{epoch: m.epoch})
	assert.Nil(t, cmd)
}

func TestModel_SerialEntry(t *testing.T) {
	tests := []struct {
		name   string
		serial string
		want   navigation.Screen
	}{
		{name: "empty stays", serial: "", want: navigation.ScreenConnection},
		{name: "typical serial", serial: "SM-2024-1234", want: navigation.ScreenLoading},
		{name: "single char", serial: "x", want: navigation.ScreenLoading},
		{name: "whitespace only counts as non-empty", serial: " ", want: navigation.ScreenLoading},
		{name: "q is text not quit", serial: "q", want: navigation.ScreenLoading},
		{name: "unicode", serial: "séria-№7", want: navigation.ScreenLoading},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := press(t, toConnection(t), "n")
			require.Equal(t, dialogSerial, m.conn.dialog)

			m = typeText(t, m, tt.serial)
			m, cmd := send(t, m, keyMsg("enter"))

			assert.Equal(t, tt.want, m.Screen())
			if tt.want == navigation.ScreenConnection {
				assert.Equal(t, dialogSerial, m.conn.dialog, "dialog stays open on empty input")
				assert.Nil(t, cmd)
				return
			}
			require.NotNil(t, m.link)
			assert.Equal(t, tt.serial, m.link.Serial)
			assert.Equal(t, 0, m.loading.percent)
		})
	}
}

func TestModel_ScanAlwaysConnects(t *testing.T) {
	m := press(t, toConnection(t), "enter")
	require.Equal(t, dialogScanner, m.conn.dialog)

	m = press(t, m, "enter")
	assert.Equal(t, navigation.ScreenLoading, m.Screen())
	assert.Equal(t,
		[]navigation.Screen{navigation.ScreenConnection, navigation.ScreenLoading},
		m.nav.History())
}

func TestModel_CardCursorOpensMatchingDialog(t *testing.T) {
	m := press(t, toConnection(t), "down", "enter")
	assert.Equal(t, dialogSerial, m.conn.dialog)

	m = press(t, m, "esc", "up", "enter")
	assert.Equal(t, dialogScanner, m.conn.dialog)
}

func TestModel_CancelDialogs(t *testing.T) {
	m := press(t, toConnection(t), "s", "esc")
	assert.Equal(t, navigation.ScreenConnection, m.Screen())
	assert.Equal(t, dialogNone, m.conn.dialog)

	m = press(t, m, "n")
	m = typeText(t, m, "SM-1")
	m = press(t, m, "esc")
	assert.Equal(t, navigation.ScreenConnection, m.Screen())
	assert.Equal(t, dialogNone, m.conn.dialog)
	assert.Nil(t, m.link)

	// reopening keeps what was typed
	m = press(t, m, "n")
	assert.Equal(t, "SM-1", m.conn.serial.Value())
}

func TestModel_LoadingProgress(t *testing.T) {
	m := toLoading(t)
	assert.Equal(t, 0.0, m.loading.Progress())

	last := 0.0
	for i := 1; i < loadingComplete; i++ {
		var cmd tea.Cmd
		m, cmd = send(t, m, loadingTickMsg{epoch: m.epoch})
		require.Equal(t, navigation.ScreenLoading, m.Screen(), "tick %d", i)
		require.NotNil(t, cmd)

		p := m.loading.Progress()
		require.GreaterOrEqual(t, p, last)
		require.Less(t, p, 1.0)
		last = p
	}
	assert.Equal(t, 99, m.loading.percent)
	assert.Contains(t, m.View(), "99%")

	loadingEpoch := m.epoch
	m, _ = send(t, m, loadingTickMsg{epoch: m.epoch})
	assert.Equal(t, navigation.ScreenDashboard, m.Screen())
	assert.Equal(t,
		[]navigation.Screen{navigation.ScreenConnection, navigation.ScreenDashboard},
		m.nav.History())

	// late ticks from the finished loop change nothing
	for i := 0; i < 5; i++ {
		m, _ = send(t, m, loadingTickMsg{epoch: loadingEpoch})
	}
	assert.Equal(t, navigation.ScreenDashboard, m.Screen())
	assert.Equal(t,
		[]navigation.Screen{navigation.ScreenConnection, navigation.ScreenDashboard},
		m.nav.History())
}

func TestModel_BackFromLoadingStopsTimer(t *testing.T) {
	m := toLoading(t)
	for i := 0; i < 50; i++ {
		m, _ = send(t, m, loadingTickMsg{epoch: m.epoch})
	}
	staleEpoch := m.epoch

	m = press(t, m, "esc")
	require.Equal(t, navigation.ScreenConnection, m.Screen())

	for i := 0; i < 200; i++ {
		m, _ = send(t, m, loadingTickMsg{epoch: staleEpoch})
	}
	assert.Equal(t, navigation.ScreenConnection, m.Screen())

	// a fresh entry restarts from zero
	m = press(t, m, "s", "enter")
	require.Equal(t, navigation.ScreenLoading, m.Screen())
	assert.Equal(t, 0, m.loading.percent)
}

func TestModel_DashboardTabs(t *testing.T) {
	markers := map[DashboardTab]string{
		TabOverview:    "Pressure Heatmap",
		TabPrediction:  "AI Pressure Prediction",
		TabHistory:     "Morning position reset",
		TabTemperature: "Temperature Control",
	}

	m := toDashboard(t)
	assert.Equal(t, TabOverview, m.Tab())

	for i, tab := range dashboardTabs() {
		t.Run(tab.Title(), func(t *testing.T) {
			m := press(t, m, string(rune('1'+i)))
			require.Equal(t, tab, m.Tab())

			view := m.View()
			for other, marker := range markers {
				if other == tab {
					assert.Contains(t, view, marker)
				} else {
					assert.NotContains(t, view, marker)
				}
			}
		})
	}
}

func TestModel_TabCycling(t *testing.T) {
	m := toDashboard(t)

	m = press(t, m, "tab", "tab")
	assert.Equal(t, TabHistory, m.Tab())

	m = press(t, m, "tab", "tab")
	assert.Equal(t, TabOverview, m.Tab())

	m = press(t, m, "shift+tab")
	assert.Equal(t, TabTemperature, m.Tab())

	m = press(t, m, "1", "right")
	assert.Equal(t, TabPrediction, m.Tab())

	m = press(t, m, "left", "left")
	assert.Equal(t, TabTemperature, m.Tab())
}

func TestModel_DashboardReentryResetsTab(t *testing.T) {
	m := press(t, toDashboard(t), "4")
	require.Equal(t, TabTemperature, m.Tab())

	m = press(t, m, "esc")
	require.Equal(t, navigation.ScreenConnection, m.Screen())

	m = finishLoading(t, press(t, m, "s", "enter"))
	require.Equal(t, navigation.ScreenDashboard, m.Screen())
	assert.Equal(t, TabOverview, m.Tab())
}

func TestModel_DashboardShowsLink(t *testing.T) {
	m := press(t, toConnection(t), "n")
	m = typeText(t, m, "SM-2024-1234")
	m = finishLoading(t, press(t, m, "enter"))

	view := m.View()
	assert.Contains(t, view, "Smart Mattress Monitor")
	assert.Contains(t, view, "Serial SM-2024-1234")
	assert.True(t, strings.Contains(view, m.link.ShortSession()))
}

func TestModel_QuitKeys(t *testing.T) {
	m := newTestModel()
	_, cmd := send(t, m, keyMsg("ctrl+c"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())

	_, cmd = send(t, toDashboard(t), keyMsg("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestModel_HelpToggle(t *testing.T) {
	m := toConnection(t)
	assert.False(t, m.help.ShowAll)
	m = press(t, m, "?")
	assert.True(t, m.help.ShowAll)
}

func TestModel_WindowSize(t *testing.T) {
	m, _ := send(t, newTestModel(), tea.WindowSizeMsg{Width: 100, Height: 40})
	assert.Equal(t, 100, m.width)
	assert.Equal(t, 40, m.height)
	assert.Contains(t, m.View(), "Smart Mattress")
}
