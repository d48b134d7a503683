// Package exec starts the command of a selected entry as a detached process.
package exec

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"flauncher/internal/desktop"
	"flauncher/internal/logger"

	"github.com/mattn/go-shellwords"
)

// ErrEmptyCommand is returned when a command line splits into no words.
var ErrEmptyCommand = errors.New("empty command line")

// Launcher turns entries into running processes.
type Launcher struct {
	// TerminalLauncher is prepended to commands of terminal entries,
	// split on whitespace.
	TerminalLauncher string
	// InheritStdio connects the child to our stdin, stdout and stderr.
	// Otherwise the child gets the null device.
	InheritStdio bool
}

// Argv returns the argument vector for e.
func (l Launcher) Argv(e desktop.Entry) ([]string, error) {
	words, err := shellwords.Parse(e.Command)
	if err != nil {
		return nil, fmt.Errorf("splitting %q: %w", e.Command, err)
	}
	if e.IsTerminal {
		words = append(strings.Fields(l.TerminalLauncher), words...)
	}
	if len(words) == 0 {
		return nil, ErrEmptyCommand
	}
	return words, nil
}

// Command builds the process for e without starting it.
func (l Launcher) Command(e desktop.Entry) (*exec.Cmd, error) {
	argv, err := l.Argv(e)
	if err != nil {
		return nil, err
	}

	cmd := exec.Command(argv[0], argv[1:]...)
	if e.HasWorkingDirectory() {
		cmd.Dir = e.WorkingDirectory
	}
	if l.InheritStdio {
		cmd.Stdin = os.Stdin
		cmd.Stdout = os.Stdout
		cmd.Stderr = os.Stderr
	}
	cmd.SysProcAttr = detached()
	return cmd, nil
}

// Start runs cmd and lets it outlive us. It does not wait for the child.
func (l Launcher) Start(ctx context.Context, cmd *exec.Cmd) error {
	logger.Info(ctx, "Running: {{_RunningCommand_}}%s{{|-|}}", strings.Join(cmd.Args, " "))
	if err := cmd.Start(); err != nil {
		logger.Error(ctx, "Failing command: {{_FailingCommand_}}%s{{|-|}}", strings.Join(cmd.Args, " "))
		return fmt.Errorf("starting %s: %w", cmd.Path, err)
	}
	logger.Debug(ctx, "Started process %d", cmd.Process.Pid)
	return cmd.Process.Release()
}
