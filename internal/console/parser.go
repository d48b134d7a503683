package console

import (
	"os"
	"regexp"

	"github.com/muesli/termenv"
)

var (
	// semanticRegex matches {{_Name_}} semantic tags
	semanticRegex = regexp.MustCompile(`\{\{_([A-Za-z0-9_]+)_\}\}`)

	// resetRegex matches the {{|-|}} reset tag
	resetRegex = regexp.MustCompile(`\{\{\|-\|\}\}`)

	// colorEnabled is decided once from stderr, where all messages go
	colorEnabled = termenv.NewOutput(os.Stderr).EnvColorProfile() != termenv.Ascii
)

// SetColorEnabled forces tag expansion on or off (useful for testing).
func SetColorEnabled(enabled bool) {
	colorEnabled = enabled
}

// Parse expands semantic tags to ANSI codes, or strips them when color is
// disabled. Unknown tags expand to nothing.
func Parse(text string) string {
	if !colorEnabled {
		return Strip(text)
	}
	text = semanticRegex.ReplaceAllStringFunc(text, func(tag string) string {
		name := semanticRegex.FindStringSubmatch(tag)[1]
		return semanticTags[name]
	})
	return resetRegex.ReplaceAllString(text, CodeReset)
}

// Strip removes all tags from text.
func Strip(text string) string {
	text = semanticRegex.ReplaceAllString(text, "")
	return resetRegex.ReplaceAllString(text, "")
}

// Reset returns the reset code when color is enabled.
func Reset() string {
	if colorEnabled {
		return CodeReset
	}
	return ""
}
