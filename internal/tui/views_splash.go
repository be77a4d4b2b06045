package tui

import (
	"math"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/harmonica"
	"github.com/charmbracelet/lipgloss"

	"github.com/medicalheatmap/smartmattress/internal/log"
	"github.com/medicalheatmap/smartmattress/internal/theme"
)

const (
	splashFadeDuration = 1000 // ms
	splashLogoWidth    = 24
	splashStartScale   = 0.5
)

type splashState struct {
	spring   harmonica.Spring
	scale    float64
	velocity float64
	alpha    float64
	frames   int
	settled  bool
}

func newSplashState() splashState {
	return splashState{
		// medium bouncy, low stiffness
		spring: harmonica.NewSpring(harmonica.FPS(60), 5.0, 0.5),
		scale:  splashStartScale,
	}
}

func (s *splashState) step() {
	s.frames++
	s.scale, s.velocity = s.spring.Update(s.scale, s.velocity, 1.0)

	elapsed := float64(s.frames) * float64(splashFrameInterval.Milliseconds())
	s.alpha = math.Min(1, elapsed/splashFadeDuration)

	if s.alpha >= 1 && math.Abs(s.scale-1) < 0.005 && math.Abs(s.velocity) < 0.005 {
		s.scale = 1
		s.velocity = 0
		s.settled = true
	}
}

func (m Model) updateSplashState(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case splashFrameMsg:
		if msg.epoch != m.epoch || m.splash.settled {
			return m, nil
		}
		m.splash.step()
		if m.splash.settled {
			return m, nil
		}
		return m, m.splashFrame()

	case splashElapsedMsg:
		if msg.epoch != m.epoch {
			log.Debugf("Dropping stale splash timer (epoch %d, current %d)", msg.epoch, m.epoch)
			return m, nil
		}
		return m.transition(m.nav.SplashElapsed)
	}
	return m, nil
}

func splashLogo(width int) string {
	if width < 8 {
		width = 8
	}
	inner := width - 2

	mark := "≋ SM ≋"
	if lipgloss.Width(mark) > inner {
		mark = "≋"
	}
	pad := inner - lipgloss.Width(mark)
	left := pad / 2

	var b strings.Builder
	b.WriteString("╭" + strings.Repeat("─", inner) + "╮\n")
	b.WriteString("│" + strings.Repeat(" ", left) + mark + strings.Repeat(" ", pad-left) + "│\n")
	b.WriteString("╰" + strings.Repeat("─", inner) + "╯")
	return b.String()
}

func (m Model) viewSplash() string {
	bg := lipgloss.Color(theme.Primary)
	white := theme.WithAlpha("#ffffff", theme.Primary, m.splash.alpha)
	faded := theme.WithAlpha("#ffffff", theme.Primary, m.splash.alpha*0.8)

	logo := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#ffffff")).
		Background(bg).
		Render(splashLogo(int(math.Round(splashLogoWidth * m.splash.scale))))

	title := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(white)).
		Background(bg).
		Render("Smart Mattress")

	subtitle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(faded)).
		Background(bg).
		Render("Pressure Monitoring System")

	content := lipgloss.JoinVertical(lipgloss.Center, logo, "", title, subtitle)

	if m.width == 0 || m.height == 0 {
		return content
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content,
		lipgloss.WithWhitespaceBackground(bg))
}
