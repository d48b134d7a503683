package tui

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"flauncher/internal/catalog"
	"flauncher/internal/desktop"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memHistory map[string]uint64

func (h memHistory) Lookup(name string) (uint64, error) { return h[name], nil }

type failingHistory struct{}

func (failingHistory) Lookup(string) (uint64, error) { return 0, errors.New("disk on fire") }

func feed(entries ...desktop.Entry) <-chan desktop.Entry {
	ch := make(chan desktop.Entry, len(entries))
	for _, e := range entries {
		ch <- e
	}
	close(ch)
	return ch
}

func newTestModel(t *testing.T, h catalog.Lookuper, entries ...desktop.Entry) *Model {
	t.Helper()
	engine := catalog.NewEngine(h, catalog.Options{Wrap: true})
	m := NewModel(context.Background(), engine, feed(entries...), Options{
		HighlightColor: "lightblue",
		CursorChar:     "_",
		TickInterval:   time.Millisecond,
	})
	_, cmd := m.Update(tickMsg(time.Now()))
	assert.Nil(t, cmd, "no tick after discovery closed")
	return m
}

func press(m *Model, msgs ...tea.KeyPressMsg) {
	for _, msg := range msgs {
		m.Update(msg)
	}
}

func typeText(m *Model, s string) {
	for _, r := range s {
		m.Update(tea.KeyPressMsg{Code: r, Text: string(r)})
	}
}

func TestModel_DrainAdmitsEntries(t *testing.T) {
	m := newTestModel(t, memHistory{"Editor": 3},
		desktop.Entry{Name: "Browser", Command: "firefox"},
		desktop.Entry{Name: "Editor", Command: "vim", IsTerminal: true},
	)

	assert.Equal(t, "(1/2) >> _", m.QueryLine())
	e, ok := m.engine.Selected()
	require.True(t, ok)
	assert.Equal(t, "Editor", e.Name)
}

func TestModel_TickContinuesWhileDiscovering(t *testing.T) {
	ch := make(chan desktop.Entry, 1)
	engine := catalog.NewEngine(memHistory{}, catalog.Options{})
	m := NewModel(context.Background(), engine, ch, Options{TickInterval: time.Millisecond})

	ch <- desktop.Entry{Name: "One", Command: "one"}
	_, cmd := m.Update(tickMsg(time.Now()))
	assert.NotNil(t, cmd)
	assert.Equal(t, 1, engine.Total())

	close(ch)
	_, cmd = m.Update(tickMsg(time.Now()))
	assert.Nil(t, cmd)
}

func TestModel_QueryEditing(t *testing.T) {
	m := newTestModel(t, memHistory{},
		desktop.Entry{Name: "Firefox", Command: "firefox"},
		desktop.Entry{Name: "Files", Command: "nautilus"},
		desktop.Entry{Name: "Terminal", Command: "foot"},
	)

	typeText(m, "fire")
	assert.Equal(t, "fire", m.engine.Query())
	assert.Equal(t, "(1/1) >> fire_", m.QueryLine())

	press(m, tea.KeyPressMsg{Code: tea.KeyBackspace}, tea.KeyPressMsg{Code: tea.KeyBackspace})
	assert.Equal(t, "fi", m.engine.Query())
	assert.Equal(t, 2, m.engine.Len())

	// ctrl chords are not text
	press(m, tea.KeyPressMsg{Code: 'x', Mod: tea.ModCtrl})
	assert.Equal(t, "fi", m.engine.Query())
}

func TestModel_Navigation(t *testing.T) {
	m := newTestModel(t, memHistory{},
		desktop.Entry{Name: "A", Command: "a"},
		desktop.Entry{Name: "B", Command: "b"},
		desktop.Entry{Name: "C", Command: "c"},
	)

	tests := []struct {
		key  tea.KeyPressMsg
		want int
	}{
		{tea.KeyPressMsg{Code: tea.KeyDown}, 1},
		{tea.KeyPressMsg{Code: tea.KeyEnd}, 2},
		{tea.KeyPressMsg{Code: tea.KeyDown}, 0},
		{tea.KeyPressMsg{Code: tea.KeyUp}, 2},
		{tea.KeyPressMsg{Code: tea.KeyLeft}, 0},
		{tea.KeyPressMsg{Code: tea.KeyRight}, 2},
		{tea.KeyPressMsg{Code: tea.KeyHome}, 0},
		{tea.KeyPressMsg{Code: tea.KeyPgDown}, 2},
		{tea.KeyPressMsg{Code: tea.KeyPgUp}, 0},
	}
	for _, tt := range tests {
		press(m, tt.key)
		got, ok := m.engine.Cursor()
		require.True(t, ok)
		assert.Equal(t, tt.want, got, "after %s", tt.key.String())
	}
}

func TestModel_EnterChoosesSelection(t *testing.T) {
	m := newTestModel(t, memHistory{},
		desktop.Entry{Name: "A", Command: "a"},
		desktop.Entry{Name: "B", Command: "b"},
	)

	press(m, tea.KeyPressMsg{Code: tea.KeyDown})
	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	require.NotNil(t, cmd)

	e, ok := m.Chosen()
	require.True(t, ok)
	assert.Equal(t, "B", e.Name)
}

func TestModel_EnterWithoutMatchQuits(t *testing.T) {
	m := newTestModel(t, memHistory{}, desktop.Entry{Name: "A", Command: "a"})

	typeText(m, "zzz")
	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	require.NotNil(t, cmd)

	_, ok := m.Chosen()
	assert.False(t, ok)
}

func TestModel_Quit(t *testing.T) {
	for _, msg := range []tea.KeyPressMsg{
		{Code: tea.KeyEscape},
		{Code: 'c', Mod: tea.ModCtrl},
	} {
		m := newTestModel(t, memHistory{}, desktop.Entry{Name: "A", Command: "a"})
		_, cmd := m.Update(msg)
		require.NotNil(t, cmd)
		_, ok := m.Chosen()
		assert.False(t, ok)
	}
}

func TestModel_HistoryErrorEndsSession(t *testing.T) {
	engine := catalog.NewEngine(failingHistory{}, catalog.Options{})
	m := NewModel(context.Background(), engine, feed(desktop.Entry{Name: "A", Command: "a"}), Options{})

	_, cmd := m.Update(tickMsg(time.Now()))
	require.NotNil(t, cmd)
	assert.Error(t, m.Err())
}

func TestModel_View(t *testing.T) {
	m := newTestModel(t, memHistory{},
		desktop.Entry{Name: "Browser", Description: "Surf the web", Command: "firefox"},
	)
	m.Update(tea.WindowSizeMsg{Width: 60, Height: 20})

	v := m.View()
	assert.True(t, v.AltScreen)
	assert.Contains(t, v.Content, "Browser")
	assert.Contains(t, v.Content, "Surf the web")
	assert.Contains(t, v.Content, "(1/1) >> _")
	assert.NotContains(t, v.Content, "Exec")

	m.verbosity = catalog.VerbosityCommand
	assert.Contains(t, m.ViewString(), "firefox")
}

func TestModel_ViewEmpty(t *testing.T) {
	m := newTestModel(t, memHistory{})
	out := m.ViewString()
	assert.Contains(t, out, "No match")
	assert.True(t, strings.Contains(out, "(0/0) >> _"))
}
