package paths

import (
	"os"
	"path/filepath"

	"flauncher/internal/constants"

	"github.com/adrg/xdg"
)

var (
	// DataHomeOverride allows overriding the data home for tests.
	DataHomeOverride string
	// DataDirsOverride allows overriding the system data dirs for tests.
	DataDirsOverride []string
	// ConfigHomeOverride allows overriding the config home for tests.
	ConfigHomeOverride string
	// StateHomeOverride allows overriding the state home for tests.
	StateHomeOverride string
	// RuntimeDirOverride allows overriding the runtime dir for tests.
	RuntimeDirOverride string
)

func dataHome() string {
	if DataHomeOverride != "" {
		return DataHomeOverride
	}
	return xdg.DataHome
}

func dataDirs() []string {
	if DataDirsOverride != nil {
		return DataDirsOverride
	}
	return xdg.DataDirs
}

// GetConfigFilePath returns the absolute path to the config.toml file
// (e.g., ~/.config/flauncher/config.toml).
func GetConfigFilePath() string {
	home := xdg.ConfigHome
	if ConfigHomeOverride != "" {
		home = ConfigHomeOverride
	}
	return filepath.Join(home, constants.AppDirName, constants.ConfigFileName)
}

// GetStateDir returns the absolute path to the flauncher state directory.
func GetStateDir() string {
	if StateHomeOverride != "" {
		return filepath.Join(StateHomeOverride, constants.AppDirName)
	}
	return filepath.Join(xdg.StateHome, constants.AppDirName)
}

// GetLogFilePath returns the absolute path to the log file.
func GetLogFilePath() string {
	return filepath.Join(GetStateDir(), constants.LogFileName)
}

// GetHistoryDBPath returns the absolute path to the launch history database.
func GetHistoryDBPath() string {
	return filepath.Join(dataHome(), constants.AppDirName, constants.HistoryFileName)
}

// GetLockFilePath returns the absolute path to the single instance lock file.
func GetLockFilePath() string {
	dir := xdg.RuntimeDir
	if RuntimeDirOverride != "" {
		dir = RuntimeDirOverride
	}
	return filepath.Join(dir, constants.LockFileName)
}

// GetApplicationDirs returns the directories holding desktop entries: the
// user's data home first, then every system data dir, then extra. Only
// existing directories are returned, each once.
func GetApplicationDirs(extra ...string) []string {
	candidates := []string{filepath.Join(dataHome(), constants.ApplicationsDirName)}
	for _, dir := range dataDirs() {
		candidates = append(candidates, filepath.Join(dir, constants.ApplicationsDirName))
	}
	candidates = append(candidates, extra...)

	seen := make(map[string]bool, len(candidates))
	var dirs []string
	for _, dir := range candidates {
		if dir == "" {
			continue
		}
		dir = filepath.Clean(dir)
		if seen[dir] {
			continue
		}
		seen[dir] = true
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			dirs = append(dirs, dir)
		}
	}
	return dirs
}
