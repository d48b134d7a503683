package logger

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"flauncher/internal/paths"
	"flauncher/internal/version"
)

// FatalError is a special error used to panic from Fatal logger calls
// This allows the main run loop to recover and perform cleanup before exiting
type FatalError struct{}

func getSystemInfo() []string {
	executable, _ := os.Executable()
	return []string{
		fmt.Sprintf("{{_ApplicationName_}}%s{{|-|}} [{{_Version_}}%s{{|-|}}]", version.ApplicationName, version.Version),
		fmt.Sprintf("Currently running as: %s (PID %d)", executable, os.Getpid()),
		fmt.Sprintf("ARCH:     %s", runtime.GOARCH),
		fmt.Sprintf("OS:       %s", runtime.GOOS),
		fmt.Sprintf("LOG FILE: %s", paths.GetLogFilePath()),
	}
}

// Fatal logs msg with system information and a stack trace at FatalLevel,
// then panics with FatalError.
func Fatal(ctx context.Context, msg any, args ...any) {
	FatalWithStackSkip(ctx, 1, msg, args...)
}

// FatalWithStackSkip is Fatal with skip extra frames left out of the trace.
func FatalWithStackSkip(ctx context.Context, skip int, msg any, args ...any) {
	now := time.Now()

	pc := make([]uintptr, 32)
	n := runtime.Callers(2+skip, pc)
	frames := runtime.CallersFrames(pc[:n])

	var traceLines []string
	wd, _ := os.Getwd()
	for i := 0; ; i++ {
		frame, more := frames.Next()
		file := frame.File
		if wd != "" {
			if rel, err := filepath.Rel(wd, file); err == nil && !filepath.IsAbs(rel) && rel[0] != '.' {
				file = "./" + filepath.ToSlash(rel)
			}
		}
		traceLines = append(traceLines, fmt.Sprintf("  %2d: %s:%d (%s)", i, file, frame.Line, filepath.Base(frame.Function)))
		if !more {
			break
		}
	}

	var infoLines []string
	for _, line := range getSystemInfo() {
		infoLines = append(infoLines, "  "+line)
	}

	output := []any{
		"### BEGIN SYSTEM INFORMATION AND STACK TRACE ###",
		infoLines,
		"",
		traceLines,
		"### END SYSTEM INFORMATION AND STACK TRACE ###",
		"",
		msg,
	}

	logAt(ctx, now, LevelFatal, output, args...)
	panic(FatalError{})
}
