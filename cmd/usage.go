package cmd

import (
	"fmt"
	"strings"

	"flauncher/internal/console"
	"flauncher/internal/version"
)

// PrintHelp prints usage information.
func PrintHelp() {
	fmt.Println(console.Parse(GetUsage()))
}

// GetUsage returns usage information as a string.
func GetUsage() string {
	var sb strings.Builder
	printStr := func(s string) {
		sb.WriteString(s + "\n")
	}

	appName := version.ApplicationName
	appCmd := version.CommandName

	printStr(fmt.Sprintf("Usage: {{_UserCommand_}}%s{{|-|}} [{{_UserCommand_}}<Flags>{{|-|}}]", appCmd))
	printStr("")
	printStr(fmt.Sprintf("{{_ApplicationName_}}%s{{|-|}} [{{_Version_}}%s{{|-|}}]", appName, version.Version))
	printStr("Type to filter installed applications, Enter launches the highlighted one.")
	printStr("")
	printStr("Flags:")
	printStr("")

	usage := []struct{ flags, desc string }{
		{"-c --config <file>", "Read configuration from <file> instead of the default location."},
		{"--color <name>", "Highlight color. One of black, red, green, yellow, blue, magenta, cyan, gray,\n\tdarkgray, lightred, lightgreen, lightyellow, lightblue, lightmagenta, lightcyan, white."},
		{"-n --no-launched-inherit-stdio", "Launched programs get no standard input or output."},
		{"-t --terminal-launcher <cmd>", "Command that runs terminal programs, e.g. 'alacritty -e'."},
		{"--cursor <char>", "Character drawn after the query."},
		{"-v --verbose", "Show the command of the highlighted entry. Twice also shows scores."},
		{"--no-wrap", "Stop at the ends of the list instead of wrapping around."},
		{"--ignore-case", "Ignore case when ordering equally scored names."},
		{"-V --version", "Show the version and exit."},
		{"-h --help", "Show this usage information and exit."},
	}
	for _, u := range usage {
		printStr("{{_UserCommand_}}" + u.flags + "{{|-|}}")
		printStr("\t" + u.desc)
	}

	return sb.String()
}
