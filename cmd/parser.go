package cmd

import (
	"errors"
	"fmt"
	"strings"

	"flauncher/internal/config"
	"flauncher/internal/version"

	"github.com/spf13/pflag"
)

// ParseError wraps argument parsing errors with the offending argument marked.
type ParseError struct {
	Args    []string // The full argument list passed to Parse
	Index   int      // The index where the error occurred
	Message string   // The specific error message
}

func (e *ParseError) Error() string {
	indent := "   "

	cmdLineParts := []string{fmt.Sprintf("{{_UserCommand_}}%s{{|-|}}", version.CommandName)}
	for i := 0; i <= e.Index && i < len(e.Args); i++ {
		if i == e.Index {
			cmdLineParts = append(cmdLineParts, fmt.Sprintf("{{_UserCommandError_}}%s{{|-|}}", e.Args[i]))
		} else {
			cmdLineParts = append(cmdLineParts, fmt.Sprintf("{{_UserCommand_}}%s{{|-|}}", e.Args[i]))
		}
	}
	cmdLineStr := "'" + strings.Join(cmdLineParts, " ") + "'"

	// indent + quote + command name + space, then every earlier argument
	caretOffset := len(indent) + 1 + len(version.CommandName) + 1
	for i := 0; i < e.Index && i < len(e.Args); i++ {
		caretOffset += len(e.Args[i]) + 1
	}
	pointerLine := strings.Repeat(" ", caretOffset) + "{{_UserCommandError_}}^{{|-|}}"

	return fmt.Sprintf("Error in command line:\n\n%s%s\n%s\n\n%s%s\n\n%sRun '{{_UserCommand_}}%s --help{{|-|}}' for usage.\n",
		indent, cmdLineStr, pointerLine, indent, e.Message, indent, version.CommandName)
}

// Options holds the parsed command line. Pointer fields are nil when the
// flag was not given, so the config file value applies.
type Options struct {
	ConfigPath string

	HighlightColor   *string
	TerminalLauncher *string
	CursorChar       *string
	NoInheritStdio   bool
	Verbose          int
	NoWrap           bool
	IgnoreCase       bool

	Version bool
	Help    bool
}

// Parse parses the arguments after the program name.
func Parse(args []string) (Options, error) {
	fs := NewFlagSet()
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return Options{Help: true}, nil
		}
		return Options{}, &ParseError{Args: args, Index: failingIndex(args, err), Message: err.Error()}
	}
	if rest := fs.Args(); len(rest) > 0 {
		idx := len(args) - len(rest)
		return Options{}, &ParseError{Args: args, Index: idx, Message: fmt.Sprintf("unexpected argument '%s'", rest[0])}
	}

	var opts Options
	opts.ConfigPath, _ = fs.GetString(flagConfig)
	opts.NoInheritStdio, _ = fs.GetBool(flagNoInheritStdio)
	opts.Verbose, _ = fs.GetCount(flagVerbose)
	opts.NoWrap, _ = fs.GetBool(flagNoWrap)
	opts.IgnoreCase, _ = fs.GetBool(flagIgnoreCase)
	opts.Version, _ = fs.GetBool(flagVersion)
	opts.Help, _ = fs.GetBool(flagHelp)

	opts.HighlightColor = changedString(fs, flagColor)
	opts.TerminalLauncher = changedString(fs, flagTerminal)
	opts.CursorChar = changedString(fs, flagCursor)

	return opts, nil
}

func changedString(fs *pflag.FlagSet, name string) *string {
	if !fs.Changed(name) {
		return nil
	}
	v, _ := fs.GetString(name)
	return &v
}

// failingIndex guesses which argument pflag rejected from its message.
func failingIndex(args []string, err error) int {
	msg := err.Error()
	for i, arg := range args {
		if !strings.HasPrefix(arg, "-") || arg == "-" {
			continue
		}
		name, _, _ := strings.Cut(arg, "=")
		if strings.Contains(msg, name) {
			return i
		}
		// combined shorthands are reported one letter at a time
		if !strings.HasPrefix(name, "--") {
			for _, c := range name[1:] {
				if strings.Contains(msg, fmt.Sprintf("'%c'", c)) {
					return i
				}
			}
		}
	}
	return max(len(args)-1, 0)
}

// Apply overlays the command line on conf. Flags win over the file.
func (o Options) Apply(conf config.AppConfig) config.AppConfig {
	if o.HighlightColor != nil {
		conf.HighlightColor = *o.HighlightColor
	}
	if o.TerminalLauncher != nil {
		conf.TerminalLauncher = *o.TerminalLauncher
	}
	if o.CursorChar != nil {
		conf.CursorChar = *o.CursorChar
	}
	if o.NoInheritStdio {
		conf.NoLaunchedInheritStdio = true
	}
	if o.Verbose > 0 {
		conf.Verbose = o.Verbose
	}
	if o.NoWrap {
		conf.WrapNavigation = false
	}
	if o.IgnoreCase {
		conf.CaseInsensitiveSort = true
	}
	return conf
}
