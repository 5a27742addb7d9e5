package main

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/llehouerou/crest"
)

func newTestDemo() (demoModel, *crest.MockHost, *eventLog) {
	host := crest.NewMockHost()
	reg := crest.New(host, crest.WithLogger(zerolog.Nop()))
	log := &eventLog{}
	watchSignals(reg, log)
	setupActions(reg, log)
	return newDemoModel(reg, log), host, log
}

func press(t *testing.T, m demoModel, k string) (demoModel, tea.Cmd) {
	t.Helper()
	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)})
	return updated.(demoModel), cmd
}

func logText(log *eventLog) string {
	lines := log.tail(100)
	var b strings.Builder
	for _, line := range lines {
		b.WriteString(line.text)
		b.WriteString("\n")
	}
	return b.String()
}

func TestSetupActions_BindsStartingSet(t *testing.T) {
	m, host, log := newTestDemo()

	assert.Equal(t, []string{"fire", "jump", "shield"}, m.registry.Names())
	for _, name := range m.registry.Names() {
		assert.Equal(t, 1, m.registry.CallbackCount(name), "callbacks for %s", name)
	}

	reg, ok := host.Registration("jump")
	assert.True(t, ok)
	assert.Equal(t, crest.Key(" "), reg.DesktopKey)
	assert.Equal(t, crest.Key("j"), reg.AltKey)
	assert.True(t, reg.Touch)
	assert.Equal(t, "Jump", reg.Button.Title())

	assert.Contains(t, logText(log), "bound jump (space / j)")
}

func TestDemo_RebindCyclesJumpKey(t *testing.T) {
	m, host, log := newTestDemo()

	m, _ = press(t, m, "r")
	reg, _ := host.Registration("jump")
	assert.Equal(t, crest.Key("k"), reg.DesktopKey)
	assert.Equal(t, 1, m.registry.CallbackCount("jump"), "rebind keeps callbacks")
	assert.Contains(t, logText(log), "rebound jump (k / j)")

	m, _ = press(t, m, "r")
	reg, _ = host.Registration("jump")
	assert.Equal(t, crest.Key(" "), reg.DesktopKey)
}

func TestDemo_ComboCallbackLifecycle(t *testing.T) {
	m, host, _ := newTestDemo()

	m, _ = press(t, m, "a")
	assert.Equal(t, 2, m.registry.CallbackCount("jump"))

	// A second add is a no-op while the combo callback is installed.
	m, _ = press(t, m, "a")
	assert.Equal(t, 2, m.registry.CallbackCount("jump"))

	// Both callbacks run on a trigger.
	host.Deliver("jump", crest.StatePressed, nil)
	m.registry.Wait()

	m, _ = press(t, m, "x")
	assert.Equal(t, 1, m.registry.CallbackCount("jump"))

	m, _ = press(t, m, "x")
	assert.Equal(t, 1, m.registry.CallbackCount("jump"))
}

func TestDemo_BoostToggle(t *testing.T) {
	m, host, log := newTestDemo()

	m, _ = press(t, m, "u")
	assert.True(t, m.registry.Bound("boost"))

	host.Deliver("boost", crest.StatePressed, nil)
	m.registry.Wait()
	assert.Contains(t, logText(log), "boost engaged")

	m, _ = press(t, m, "u")
	assert.False(t, m.registry.Bound("boost"))
	assert.Contains(t, logText(log), "unbound boost")

	// Rebinding reuses the same callback list.
	m, _ = press(t, m, "u")
	assert.True(t, m.registry.Bound("boost"))
	assert.Equal(t, 1, m.registry.CallbackCount("boost"))
}

func TestDemo_QuitKey(t *testing.T) {
	m, _, _ := newTestDemo()

	_, cmd := press(t, m, "q")
	assert.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}

func TestDemo_ViewShowsActivity(t *testing.T) {
	m, host, _ := newTestDemo()

	host.Deliver("fire", crest.StatePressed, nil)
	m.registry.Wait()

	view := m.View()
	assert.Contains(t, view, "jump:1")
	assert.Contains(t, view, "fire:1")
	assert.Contains(t, view, "fire triggered (pressed)")
}
