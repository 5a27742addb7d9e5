package teahost

import (
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// redrawInterval is the repaint cadence. Button looks change outside the
// update loop (deferred appearance updates, press flash decay), so the
// host repaints on a timer instead of waiting for input.
const redrawInterval = 100 * time.Millisecond

type frameMsg time.Time

func frameCmd() tea.Cmd {
	return tea.Tick(redrawInterval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

// Model wraps an inner Bubble Tea model, routes its input through the
// host's registered actions and overlays touch buttons on its view.
type Model struct {
	host   *Host
	styles *Styles
	inner  tea.Model
	width  int
	height int
}

// NewModel wraps inner with the host's input routing and button overlay.
// A nil styles falls back to DefaultStyles.
func NewModel(host *Host, styles *Styles, inner tea.Model) Model {
	if styles == nil {
		styles = DefaultStyles()
	}
	return Model{host: host, styles: styles, inner: inner}
}

// Inner returns the wrapped model.
func (m Model) Inner() tea.Model {
	return m.inner
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.inner.Init(), frameCmd())
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		// Size also reaches the inner model below.

	case frameMsg:
		return m, frameCmd()

	case tea.KeyMsg:
		if m.host.RouteKey(msg) {
			return m, nil
		}

	case tea.MouseMsg:
		if m.host.RouteMouse(msg) {
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.inner, cmd = m.inner.Update(msg)
	return m, cmd
}

// View renders the inner view padded to the window height, then splices
// each touch button in at its normalized position. Later registrations
// draw over earlier ones, matching mouse routing where the last hit wins.
func (m Model) View() string {
	base := m.inner.View()
	if m.width <= 0 || m.height <= 0 {
		return base
	}

	lines := strings.Split(base, "\n")
	for len(lines) < m.height {
		lines = append(lines, "")
	}
	base = strings.Join(lines[:m.height], "\n")

	now := time.Now()
	for _, b := range m.host.Buttons() {
		block := m.styles.render(b, now)
		bw, bh := lipgloss.Width(block), lipgloss.Height(block)
		pos := b.Position()
		x := max(0, int(math.Round(pos.X*float64(m.width-bw))))
		y := max(0, int(math.Round(pos.Y*float64(m.height-bh))))
		b.setArea(rect{x: x, y: y, w: bw, h: bh})
		base = composeAt(base, block, x, y, m.width)
	}
	return base
}
