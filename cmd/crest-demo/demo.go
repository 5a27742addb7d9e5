package main

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/llehouerou/crest"
	"github.com/llehouerou/crest/teahost"
)

const maxLogLines = 12

var (
	bannerFrom = lipgloss.Color("#7D56F4")
	bannerTo   = lipgloss.Color("#43BF6D")

	subtitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	statsStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("109"))
	timeStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	lineStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
)

// eventLog collects activity lines from the UI goroutine, signal
// subscribers and dispatched callbacks.
type eventLog struct {
	mu    sync.Mutex
	lines []logLine
}

type logLine struct {
	at   time.Time
	text string
}

func (l *eventLog) add(format string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.lines = append(l.lines, logLine{at: time.Now(), text: fmt.Sprintf(format, args...)})
}

// tail returns the most recent n lines, oldest first.
func (l *eventLog) tail(n int) []logLine {
	l.mu.Lock()
	defer l.mu.Unlock()
	if len(l.lines) > n {
		return append([]logLine(nil), l.lines[len(l.lines)-n:]...)
	}
	return append([]logLine(nil), l.lines...)
}

// demoModel is the inner view wrapped by the teahost model. Chrome keys
// drive registry operations; the registry's own trigger keys never reach
// this model when a handler blocks them.
type demoModel struct {
	registry *crest.Registry
	log      *eventLog
	keys     keyMap
	help     help.Model

	jumpKeys []crest.Key // desktop keys jump cycles through on rebind
	jumpAt   int
	combo    *crest.Callback
	boost    crest.Callbacks
	boostOn  bool
}

func newDemoModel(reg *crest.Registry, log *eventLog) demoModel {
	return demoModel{
		registry: reg,
		log:      log,
		keys:     defaultKeyMap(),
		help:     help.New(),
		jumpKeys: []crest.Key{" ", "k"},
		boost: crest.Callbacks{crest.NewCallback(func(crest.Event) {
			log.add("boost engaged")
		})},
	}
}

// watchSignals mirrors every registry change into the demo log.
func watchSignals(reg *crest.Registry, log *eventLog) {
	ev := reg.Events()
	ev.Bound.Subscribe(func(e crest.BindingEvent) {
		log.add("bound %s (%s / %s)", e.Name, keyName(e.DesktopKey), keyName(e.AltKey))
	})
	ev.Updated.Subscribe(func(e crest.BindingEvent) {
		log.add("rebound %s (%s / %s)", e.Name, keyName(e.DesktopKey), keyName(e.AltKey))
	})
	ev.Unbound.Subscribe(func(name string) {
		log.add("unbound %s", name)
	})
	ev.CallbackAdded.Subscribe(func(name string) {
		log.add("callback added to %s", name)
	})
	ev.CallbackRemoved.Subscribe(func(name string) {
		log.add("callback removed from %s", name)
	})
}

// setupActions binds the demo's starting actions. Every callback logs,
// so key presses and button clicks show up immediately.
func setupActions(reg *crest.Registry, log *eventLog) {
	bind := func(name, title string, img crest.ImageRef, desc string, desktop, alt crest.Key) {
		cb := crest.NewCallback(func(ev crest.Event) {
			log.add("%s triggered (%s)", ev.Name, ev.State)
		})
		reg.Bind(name, crest.Callbacks{cb}, true, desktop, alt)
		reg.SetTitle(name, title)
		reg.SetImage(name, img)
		reg.SetDescription(name, desc)
	}

	bind("jump", "Jump", "arrow-up", "Hop over whatever is in front of you", " ", "j")
	bind("fire", "Fire", "bolt", "Shoot the thing", "f", "enter")
	bind("shield", "Shield", "shield", "Raise the shield", "s", "")
}

func (m demoModel) Init() tea.Cmd {
	return nil
}

func (m demoModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll

		case key.Matches(msg, m.keys.Rebind):
			m.jumpAt = (m.jumpAt + 1) % len(m.jumpKeys)
			m.registry.Rebind("jump", crest.WithDesktopKey(m.jumpKeys[m.jumpAt]))

		case key.Matches(msg, m.keys.AddCombo):
			if m.combo == nil {
				m.combo = crest.NewCallback(func(crest.Event) {
					m.log.add("combo meter charged")
				})
				m.registry.AddCallback("jump", crest.Callbacks{m.combo})
			}

		case key.Matches(msg, m.keys.RemoveCombo):
			if m.combo != nil {
				m.registry.RemoveCallback("jump", crest.Callbacks{m.combo})
				m.combo = nil
			}

		case key.Matches(msg, m.keys.Boost):
			if m.boostOn {
				m.registry.Unbind("boost")
			} else {
				m.registry.Bind("boost", m.boost, true, "g", "")
				m.registry.SetTitle("boost", "Boost")
				m.registry.SetImage("boost", "star")
			}
			m.boostOn = !m.boostOn
		}
	}

	return m, nil
}

func (m demoModel) View() string {
	var b strings.Builder
	b.WriteString(teahost.Banner("crest", bannerFrom, bannerTo))
	b.WriteString("  ")
	b.WriteString(subtitleStyle.Render("input-action binding demo"))
	b.WriteString("\n\n")

	names := m.registry.Names()
	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, fmt.Sprintf("%s:%d", name, m.registry.CallbackCount(name)))
	}
	b.WriteString(statsStyle.Render("bound  " + strings.Join(parts, "   ")))
	b.WriteString("\n\n")

	for _, line := range m.log.tail(maxLogLines) {
		b.WriteString(timeStyle.Render(humanize.Time(line.at)))
		b.WriteString(" ")
		b.WriteString(lineStyle.Render(line.text))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

// keyName makes trigger keys readable in log lines.
func keyName(k crest.Key) string {
	switch k {
	case "":
		return "none"
	case " ":
		return "space"
	default:
		return string(k)
	}
}
