// Package tui implements the interactive launcher screen with Bubble Tea.
package tui

import (
	"context"
	"errors"
	"fmt"

	"flauncher/internal/catalog"
	"flauncher/internal/console"
	"flauncher/internal/desktop"
	"flauncher/internal/logger"

	tea "charm.land/bubbletea/v2"
)

// Run shows the launcher until the user confirms an entry or quits. It
// returns the confirmed entry and true, or false when the user quit without
// choosing. Console logging is muted while the screen is up.
func Run(ctx context.Context, engine *catalog.Engine, entries <-chan desktop.Entry, opts Options) (desktop.Entry, bool, error) {
	logger.Debug(ctx, "TUI Starting...")

	console.SetTUIEnabled(true)
	defer console.SetTUIEnabled(false)

	model := NewModel(ctx, engine, entries, opts)
	program := tea.NewProgram(model, tea.WithContext(ctx))

	final, err := program.Run()
	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return desktop.Entry{}, false, fmt.Errorf("running interface: %w", err)
	}

	m, ok := final.(*Model)
	if !ok {
		return desktop.Entry{}, false, nil
	}
	if m.Err() != nil {
		return desktop.Entry{}, false, m.Err()
	}
	e, chosen := m.Chosen()
	return e, chosen, nil
}
