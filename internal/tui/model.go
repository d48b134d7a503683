package tui

import (
	"context"
	"time"

	"flauncher/internal/catalog"
	"flauncher/internal/desktop"
	"flauncher/internal/logger"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
)

// tickMsg asks the model to pull newly discovered entries.
type tickMsg time.Time

// Model is the launcher screen: a filtered list over the catalog engine fed by
// a discovery channel.
type Model struct {
	ctx    context.Context
	engine *catalog.Engine

	// entries is nil once discovery has finished.
	entries <-chan desktop.Entry

	styles     Styles
	cursorChar string
	verbosity  int
	tick       time.Duration

	width  int
	height int

	chosen    desktop.Entry
	confirmed bool
	err       error
}

// Options configures a Model.
type Options struct {
	HighlightColor string
	CursorChar     string
	Verbosity      int
	TickInterval   time.Duration
}

// NewModel creates a launcher model that admits entries from the channel
// into engine as they arrive.
func NewModel(ctx context.Context, engine *catalog.Engine, entries <-chan desktop.Entry, opts Options) *Model {
	tick := opts.TickInterval
	if tick <= 0 {
		tick = 50 * time.Millisecond
	}
	return &Model{
		ctx:        ctx,
		engine:     engine,
		entries:    entries,
		styles:     NewStyles(opts.HighlightColor),
		cursorChar: opts.CursorChar,
		verbosity:  opts.Verbosity,
		tick:       tick,
	}
}

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	return m.nextTick()
}

func (m *Model) nextTick() tea.Cmd {
	if m.entries == nil {
		return nil
	}
	return tea.Tick(m.tick, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// Update implements tea.Model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tickMsg:
		if err := m.drain(); err != nil {
			m.err = err
			return m, tea.Quit
		}
		return m, m.nextTick()

	case tea.KeyPressMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

// drain admits whatever discovery has produced so far without blocking.
func (m *Model) drain() error {
	if m.entries == nil {
		return nil
	}

	var batch []desktop.Entry
loop:
	for {
		select {
		case e, ok := <-m.entries:
			if !ok {
				m.entries = nil
				logger.Debug(m.ctx, "Catalog complete with %d entries", m.engine.Total()+len(batch))
				break loop
			}
			batch = append(batch, e)
		default:
			break loop
		}
	}

	if len(batch) == 0 {
		return nil
	}
	return m.engine.Admit(batch...)
}

func (m *Model) handleKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, Keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, Keys.Enter):
		if e, ok := m.engine.Selected(); ok {
			m.chosen = e
			m.confirmed = true
		}
		return m, tea.Quit

	case key.Matches(msg, Keys.Up):
		m.engine.Prev()
	case key.Matches(msg, Keys.Down):
		m.engine.Next()
	case key.Matches(msg, Keys.First):
		m.engine.First()
	case key.Matches(msg, Keys.Last):
		m.engine.Last()
	case key.Matches(msg, Keys.Backspace):
		m.engine.Pop()

	default:
		if msg.Mod&(tea.ModCtrl|tea.ModAlt) != 0 {
			return m, nil
		}
		for _, r := range msg.Text {
			m.engine.Push(r)
		}
	}
	return m, nil
}

// Chosen returns the entry confirmed with Enter, if any.
func (m *Model) Chosen() (desktop.Entry, bool) {
	return m.chosen, m.confirmed
}

// Err returns the error that ended the session, if any.
func (m *Model) Err() error {
	return m.err
}
