package catalog

import (
	"strconv"

	"flauncher/internal/desktop"
)

// Verbosity levels for Details.
const (
	VerbosityCommand = 1
	VerbosityScores  = 2
)

// Field is one labelled line of entry details.
type Field struct {
	Label string
	Value string
}

// Details returns the fields of e to display at the given verbosity: name
// and description always, the command from VerbosityCommand, and the launch
// count and scores from VerbosityScores.
func Details(e desktop.Entry, verbosity int) []Field {
	fields := []Field{
		{Label: "Name", Value: e.Name},
		{Label: "Description", Value: e.Description},
	}

	if verbosity >= VerbosityCommand {
		label := "Exec"
		if e.IsTerminal {
			label = "Exec (terminal)"
		}
		fields = append(fields, Field{Label: label, Value: e.Command})
		if e.HasWorkingDirectory() {
			fields = append(fields, Field{Label: "Path", Value: e.WorkingDirectory})
		}
	}

	if verbosity >= VerbosityScores {
		fields = append(fields,
			Field{Label: "Launches", Value: strconv.FormatUint(e.LaunchCount, 10)},
			Field{Label: "Score", Value: strconv.Itoa(e.MatchScore)},
			Field{Label: "Corrected score", Value: strconv.FormatInt(e.CorrectedScore(), 10)},
		)
	}

	return fields
}
