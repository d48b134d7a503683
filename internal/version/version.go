package version

import (
	"os"
	"path/filepath"
	"strings"
)

// ApplicationName is the human-readable name of the application.
var ApplicationName = "FLauncher"

// CommandName is the name of the executable command.
// It is initialized dynamically from the executable filename.
var CommandName = "flauncher"

// Version is the current version of the application.
// This is intended to be overwritten at build time using:
// -ldflags "-X flauncher/internal/version.Version=v1.2.3"
var Version = "v0.0.0-dev"

func init() {
	baseName := filepath.Base(os.Args[0])
	CommandName = strings.TrimSuffix(baseName, filepath.Ext(baseName))

	// Fallback when run through go run or a test binary
	if strings.EqualFold(CommandName, "main") || strings.HasSuffix(CommandName, ".test") {
		CommandName = "flauncher"
	}
}

// String returns the one-line version banner.
func String() string {
	return CommandName + " " + Version
}
