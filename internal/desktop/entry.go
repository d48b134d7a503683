package desktop

// UnknownName is used when a section has no Name= key.
const UnknownName = "Unknown"

// Entry is one launchable unit: an application or one of its actions.
type Entry struct {
	Name             string
	Command          string
	Description      string
	IsTerminal       bool
	WorkingDirectory string

	// MatchScore is the raw fuzzy score against the current query.
	MatchScore int
	// LaunchCount comes from the history store.
	LaunchCount uint64

	// Actions holds the identifiers from Actions= on a base entry.
	// It is always nil for action entries.
	Actions []string
}

// CorrectedScore mixes the fuzzy score with the launch history.
// History multiplies a meaningful match and orders the list on its own
// when the match score is zero or negative.
func (e Entry) CorrectedScore() int64 {
	switch {
	case e.LaunchCount == 0:
		return int64(e.MatchScore)
	case e.MatchScore <= 0:
		return int64(e.LaunchCount)
	default:
		return int64(e.MatchScore) * int64(e.LaunchCount)
	}
}

// HasWorkingDirectory reports whether the descriptor set Path=.
func (e Entry) HasWorkingDirectory() bool {
	return e.WorkingDirectory != ""
}

func (e Entry) String() string {
	return e.Name
}
