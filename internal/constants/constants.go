package constants

// Folder Names
const (
	// AppDirName is the per-user subfolder under every XDG base directory.
	AppDirName = "flauncher"
	// ApplicationsDirName is appended to every XDG data directory.
	ApplicationsDirName = "applications"
)

// File Names
const (
	ConfigFileName  = "config.toml"
	HistoryFileName = "hist_db"
	LogFileName     = "flauncher.log"
	LockFileName    = "flauncher.lock"
)

// Defaults
const (
	DefaultHighlightColor   = "lightblue"
	DefaultTerminalLauncher = "alacritty -e"
	DefaultCursorChar       = "█"
	DefaultTickIntervalMS   = 50
)
