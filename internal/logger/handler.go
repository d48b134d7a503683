package logger

import (
	"context"
	"errors"
	"log/slog"

	"flauncher/internal/console"
)

// FanoutHandler broadcasts records to multiple handlers
type FanoutHandler struct {
	handlers []slog.Handler
}

func (h *FanoutHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, handler := range h.handlers {
		if handler.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (h *FanoutHandler) Handle(ctx context.Context, r slog.Record) error {
	var errs []error
	for _, handler := range h.handlers {
		if handler.Enabled(ctx, r.Level) {
			if err := handler.Handle(ctx, r.Clone()); err != nil {
				errs = append(errs, err)
			}
		}
	}
	return errors.Join(errs...)
}

func (h *FanoutHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	newHandlers := make([]slog.Handler, len(h.handlers))
	for i, handler := range h.handlers {
		newHandlers[i] = handler.WithAttrs(attrs)
	}
	return &FanoutHandler{handlers: newHandlers}
}

func (h *FanoutHandler) WithGroup(name string) slog.Handler {
	newHandlers := make([]slog.Handler, len(h.handlers))
	for i, handler := range h.handlers {
		newHandlers[i] = handler.WithGroup(name)
	}
	return &FanoutHandler{handlers: newHandlers}
}

// tuiMutedHandler drops records while the TUI owns the terminal, so the
// alternate screen is never written over. The file handler still gets them.
type tuiMutedHandler struct {
	slog.Handler
}

func (h *tuiMutedHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return !console.IsTUIEnabled() && h.Handler.Enabled(ctx, level)
}

func (h *tuiMutedHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &tuiMutedHandler{Handler: h.Handler.WithAttrs(attrs)}
}

func (h *tuiMutedHandler) WithGroup(name string) slog.Handler {
	return &tuiMutedHandler{Handler: h.Handler.WithGroup(name)}
}
