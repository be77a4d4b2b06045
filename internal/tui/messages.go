package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Timer messages carry the epoch of the screen entry that scheduled them.
// A message whose epoch no longer matches belongs to a torn-down screen and
// is dropped.
type splashElapsedMsg struct {
	epoch int
}

type splashFrameMsg struct {
	epoch int
}

type loadingTickMsg struct {
	epoch int
}

const splashFrameInterval = time.Second / 60

func (m Model) splashTimer() tea.Cmd {
	epoch := m.epoch
	return tea.Tick(m.cfg.Timing.SplashDelay, func(time.Time) tea.Msg {
		return splashElapsedMsg{epoch: epoch}
	})
}

func (m Model) splashFrame() tea.Cmd {
	epoch := m.epoch
	return tea.Tick(splashFrameInterval, func(time.Time) tea.Msg {
		return splashFrameMsg{epoch: epoch}
	})
}

func (m Model) loadingTick() tea.Cmd {
	epoch := m.epoch
	return tea.Tick(m.cfg.Timing.LoadingTick, func(time.Time) tea.Msg {
		return loadingTickMsg{epoch: epoch}
	})
}
