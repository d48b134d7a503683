package cmd

import (
	"github.com/spf13/pflag"
)

// Flag names.
const (
	flagConfig         = "config"
	flagColor          = "color"
	flagNoInheritStdio = "no-launched-inherit-stdio"
	flagTerminal       = "terminal-launcher"
	flagCursor         = "cursor"
	flagVerbose        = "verbose"
	flagNoWrap         = "no-wrap"
	flagIgnoreCase     = "ignore-case"
	flagVersion        = "version"
	flagHelp           = "help"
)

// NewFlagSet defines the flags of the launcher on a fresh set.
func NewFlagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet("flauncher", pflag.ContinueOnError)
	fs.SortFlags = false
	fs.Usage = func() {}

	fs.StringP(flagConfig, "c", "", "Read configuration from FILE")
	fs.String(flagColor, "", "Highlight color NAME")
	fs.BoolP(flagNoInheritStdio, "n", false, "Do not connect launched programs to this terminal")
	fs.StringP(flagTerminal, "t", "", "Command used to run terminal programs")
	fs.String(flagCursor, "", "Character drawn after the query")
	fs.CountP(flagVerbose, "v", "Show more details, repeat for more")
	fs.Bool(flagNoWrap, false, "Stop at the ends of the list instead of wrapping")
	fs.Bool(flagIgnoreCase, false, "Ignore case when ordering equally scored names")
	fs.BoolP(flagVersion, "V", false, "Show version")
	fs.BoolP(flagHelp, "h", false, "Show help")

	return fs
}
