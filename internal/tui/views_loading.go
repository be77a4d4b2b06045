package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/medicalheatmap/smartmattress/internal/log"
	"github.com/medicalheatmap/smartmattress/internal/theme"
)

const (
	loadingStep     = 1
	loadingComplete = 100
	loadingBarWidth = 40
)

// loadingState counts whole percent so that 100 steps land exactly on 1.0.
type loadingState struct {
	percent int
	spinner spinner.Model
	bar     progress.Model
}

func newLoadingState(width int) loadingState {
	s := loadingState{
		spinner: spinner.New(
			spinner.WithSpinner(spinner.Dot),
			spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Primary))),
		),
		bar: progress.New(
			progress.WithGradient(theme.Primary, theme.CoolEnd),
			progress.WithoutPercentage(),
			progress.WithWidth(loadingBarWidth),
		),
	}
	s.resize(width)
	return s
}

func (s *loadingState) resize(width int) {
	if width <= 0 {
		return
	}
	w := width * 8 / 10
	if w > loadingBarWidth*2 {
		w = loadingBarWidth * 2
	}
	if w < 10 {
		w = 10
	}
	s.bar.Width = w
}

// Progress is the loading fraction in [0,1].
func (s loadingState) Progress() float64 {
	return float64(s.percent) / loadingComplete
}

func (m Model) updateLoadingState(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadingTickMsg:
		if msg.epoch != m.epoch {
			log.Debugf("Dropping stale loading tick (epoch %d, current %d)", msg.epoch, m.epoch)
			return m, nil
		}
		if m.loading.percent >= loadingComplete {
			return m, nil
		}

		m.loading.percent += loadingStep
		if m.loading.percent < loadingComplete {
			return m, m.loadingTick()
		}

		m.loading.percent = loadingComplete
		log.Debug("Loading finished")
		return m.transition(m.nav.LoadingComplete)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.loading.spinner, cmd = m.loading.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) viewLoading() string {
	var b strings.Builder

	b.WriteString(m.loading.spinner.View())
	b.WriteString("\n\n")
	b.WriteString(m.styles.Bold.Render("Retrieving mattress data..."))
	b.WriteString("\n\n")
	b.WriteString(m.loading.bar.ViewAs(m.loading.Progress()))
	b.WriteString("\n\n")
	b.WriteString(m.styles.Normal.Render(fmt.Sprintf("%d%%", m.loading.percent)))

	content := lipgloss.NewStyle().Align(lipgloss.Center).Render(b.String())
	if m.width == 0 || m.height == 0 {
		return content
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}
