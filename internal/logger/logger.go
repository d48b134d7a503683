package logger

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"flauncher/internal/console"
	"flauncher/internal/paths"

	"github.com/charmbracelet/x/ansi"
	"github.com/lmittmann/tint"
)

// Helper to resolve message from any type to string
func resolveMsg(msg any) string {
	switch v := msg.(type) {
	case string:
		return v
	case []string:
		return strings.Join(v, "\n")
	case []any:
		var parts []string
		for _, item := range v {
			parts = append(parts, resolveMsg(item))
		}
		return strings.Join(parts, "\n")
	case error:
		return v.Error()
	default:
		return fmt.Sprint(v)
	}
}

func log(ctx context.Context, level slog.Level, msg any, args ...any) {
	logAt(ctx, time.Now(), level, msg, args...)
}

// logAt formats msg with args when it carries verbs, expands console tags and
// emits one record per line.
func logAt(ctx context.Context, t time.Time, level slog.Level, msg any, args ...any) {
	h := slog.Default().Handler()
	if !h.Enabled(ctx, level) {
		return
	}

	msgStr := resolveMsg(msg)
	if len(args) > 0 && strings.Contains(msgStr, "%") {
		msgStr = fmt.Sprintf(msgStr, args...)
		args = nil
	}
	msgStr = console.Parse(msgStr)

	for i, line := range strings.Split(msgStr, "\n") {
		// Reset every line so colors never bleed into the next timestamp
		r := slog.NewRecord(t, level, line+console.Reset(), 0)
		if i == 0 {
			r.Add(args...)
		}
		_ = h.Handle(ctx, r)
	}
}

// Custom log levels
const (
	LevelTrace  = slog.Level(-8)
	LevelDebug  = slog.LevelDebug
	LevelInfo   = slog.Level(-2)
	LevelNotice = slog.LevelInfo
	LevelWarn   = slog.LevelWarn
	LevelError  = slog.LevelError
	LevelFatal  = slog.Level(12)
)

// LevelVar allows dynamic changing of the console log level
var LevelVar = new(slog.LevelVar)

// FileLevelVar is the level of the log file
var FileLevelVar = new(slog.LevelVar)

var logFile *os.File

func init() {
	LevelVar.Set(LevelNotice)
	FileLevelVar.Set(LevelInfo)
}

// SetLevel sets the console level. The file always records at least Info.
func SetLevel(level slog.Level) {
	LevelVar.Set(level)
	if level < LevelInfo {
		FileLevelVar.Set(level)
	} else {
		FileLevelVar.Set(LevelInfo)
	}
}

// SetVerbosity maps the -v count to a level: 0 Notice, 1 Info, 2 Debug,
// 3 and more Trace.
func SetVerbosity(v int) {
	switch {
	case v <= 0:
		SetLevel(LevelNotice)
	case v == 1:
		SetLevel(LevelInfo)
	case v == 2:
		SetLevel(LevelDebug)
	default:
		SetLevel(LevelTrace)
	}
}

func levelLabel(level slog.Level) string {
	switch level {
	case LevelTrace:
		return "[TRACE ]"
	case LevelDebug:
		return "[DEBUG ]"
	case LevelInfo:
		return "[INFO  ]"
	case LevelNotice:
		return "[NOTICE]"
	case LevelWarn:
		return "[WARN  ]"
	case LevelError:
		return "[ERROR ]"
	case LevelFatal:
		return "[FATAL ]"
	default:
		return "[" + level.String() + "]"
	}
}

func levelColor(level slog.Level) string {
	switch level {
	case LevelTrace, LevelDebug, LevelInfo:
		return console.CodeBlue
	case LevelNotice:
		return console.CodeGreen
	case LevelWarn:
		return console.CodeYellow
	case LevelError:
		return console.CodeRed
	case LevelFatal:
		return console.CodeRedBg + console.CodeWhite
	default:
		return ""
	}
}

// NewLogger builds the console handler (stderr, colored on a TTY, muted while
// the TUI runs) and the file handler, fanned out into one logger.
func NewLogger() *slog.Logger {
	isTTY := console.IsTerminal(os.Stderr)

	replaceAttrConsole := func(groups []string, a slog.Attr) slog.Attr {
		if a.Key == slog.LevelKey {
			level := a.Value.Any().(slog.Level)
			if isTTY {
				a.Value = slog.StringValue(levelColor(level) + levelLabel(level) + console.CodeReset + "  ")
			} else {
				a.Value = slog.StringValue(levelLabel(level) + "  ")
			}
		}
		return a
	}

	consoleHandler := &tuiMutedHandler{Handler: tint.NewHandler(os.Stderr, &tint.Options{
		Level:       LevelVar,
		TimeFormat:  "2006-01-02 15:04:05",
		NoColor:     !isTTY,
		ReplaceAttr: replaceAttrConsole,
	})}

	handlers := []slog.Handler{consoleHandler}

	if f, err := openLogFile(paths.GetLogFilePath()); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open log file: %v\n", err)
	} else {
		logFile = f
		handlers = append(handlers, tint.NewHandler(f, &tint.Options{
			Level:       FileLevelVar,
			TimeFormat:  "2006-01-02 15:04:05",
			NoColor:     true,
			ReplaceAttr: replaceAttrFile,
		}))
	}

	return slog.New(&FanoutHandler{handlers: handlers})
}

// replaceAttrFile writes plain level labels and strips every escape
// sequence from messages, so the log file holds text only.
func replaceAttrFile(groups []string, a slog.Attr) slog.Attr {
	if a.Key == slog.LevelKey {
		a.Value = slog.StringValue(levelLabel(a.Value.Any().(slog.Level)) + "  ")
	}
	if a.Key == slog.MessageKey {
		a.Value = slog.StringValue(ansi.Strip(a.Value.String()))
	}
	return a
}

func openLogFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
}

// Cleanup closes the log file.
func Cleanup() {
	if logFile != nil {
		_ = logFile.Close()
		logFile = nil
	}
}

// Global helpers for custom levels that don't satisfy standard slog methods
func Trace(ctx context.Context, msg any, args ...any) {
	log(ctx, LevelTrace, msg, args...)
}

func Debug(ctx context.Context, msg any, args ...any) {
	log(ctx, LevelDebug, msg, args...)
}

func Info(ctx context.Context, msg any, args ...any) {
	log(ctx, LevelInfo, msg, args...)
}

func Warn(ctx context.Context, msg any, args ...any) {
	log(ctx, LevelWarn, msg, args...)
}

func Error(ctx context.Context, msg any, args ...any) {
	log(ctx, LevelError, msg, args...)
}
