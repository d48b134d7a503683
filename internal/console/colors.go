package console

// Raw ANSI Color Codes
const (
	// Reset
	CodeReset = "\033[0m"

	// Modifiers
	CodeBold = "\033[1m"

	// Foreground
	CodeRed    = "\033[31m"
	CodeGreen  = "\033[32m"
	CodeYellow = "\033[33m"
	CodeBlue   = "\033[34m"
	CodeCyan   = "\033[36m"
	CodeWhite  = "\033[37m"

	// Background
	CodeRedBg = "\033[41m"
)

// semanticTags maps {{_Name_}} tags to the codes they expand to.
var semanticTags = map[string]string{
	"ApplicationName":  CodeCyan + CodeBold,
	"Version":          CodeCyan,
	"File":             CodeCyan + CodeBold,
	"Entry":            CodeGreen + CodeBold,
	"RunningCommand":   CodeBold,
	"FailingCommand":   CodeRed,
	"UserCommand":      CodeYellow,
	"UserCommandError": CodeRed,
}
