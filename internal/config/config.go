package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/user"
	"strings"

	"flauncher/internal/constants"

	"github.com/adrg/xdg"
	toml "github.com/pelletier/go-toml/v2"
)

// AppConfig holds the settings read from config.toml.
type AppConfig struct {
	HighlightColor         string   `toml:"highlight_color"`
	NoLaunchedInheritStdio bool     `toml:"no_launched_inherit_stdio"`
	TerminalLauncher       string   `toml:"terminal_launcher"`
	CursorChar             string   `toml:"cursor_char"`
	Verbose                int      `toml:"verbose"`
	CaseInsensitiveSort    bool     `toml:"case_insensitive_sort"`
	WrapNavigation         bool     `toml:"wrap_navigation"`
	TickIntervalMS         int      `toml:"tick_interval_ms"`
	Directories            []string `toml:"directories"`

	// Path is the file the settings came from, empty for defaults
	Path string `toml:"-"`
}

// Default returns the built-in settings.
func Default() AppConfig {
	return AppConfig{
		HighlightColor:   constants.DefaultHighlightColor,
		TerminalLauncher: constants.DefaultTerminalLauncher,
		CursorChar:       constants.DefaultCursorChar,
		WrapNavigation:   true,
		TickIntervalMS:   constants.DefaultTickIntervalMS,
	}
}

// Load reads the first of files that exists on top of the defaults. Missing
// files are skipped; a file that exists but cannot be read, decoded or
// validated is an error. With no file found the defaults are returned.
func Load(files ...string) (AppConfig, error) {
	for _, path := range files {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return AppConfig{}, fmt.Errorf("error reading config file %s: %w", path, err)
		}
		conf, err := Decode(data)
		if err != nil {
			return AppConfig{}, fmt.Errorf("error reading config file %s:\n%w", path, err)
		}
		conf.Path = path
		return conf, nil
	}
	return Default(), nil
}

// Decode parses TOML data on top of the defaults and validates it.
func Decode(data []byte) (AppConfig, error) {
	conf := Default()
	if err := toml.Unmarshal(data, &conf); err != nil {
		return AppConfig{}, err
	}
	for i, dir := range conf.Directories {
		conf.Directories[i] = ExpandVariables(dir)
	}
	if err := conf.Validate(); err != nil {
		return AppConfig{}, err
	}
	return conf, nil
}

// Validate checks values that cannot be represented in TOML types alone.
func (c AppConfig) Validate() error {
	if _, err := ParseColor(c.HighlightColor); err != nil {
		return err
	}
	if c.TickIntervalMS <= 0 {
		return fmt.Errorf("tick_interval_ms must be positive, got %d", c.TickIntervalMS)
	}
	if c.Verbose < 0 {
		return fmt.Errorf("verbose must not be negative, got %d", c.Verbose)
	}
	if strings.TrimSpace(c.TerminalLauncher) == "" {
		return errors.New("terminal_launcher must not be empty")
	}
	return nil
}

// ExpandVariables expands environment variables in config values.
// It supports:
// - ${XDG_CONFIG_HOME} -> xdg.ConfigHome
// - ${XDG_DATA_HOME}   -> xdg.DataHome
// - ${XDG_STATE_HOME}  -> xdg.StateHome
// - ${XDG_CACHE_HOME}  -> xdg.CacheHome
// - ${HOME}            -> os.UserHomeDir()
// - ${USER}            -> Current username
// Any other variable is taken from the environment.
func ExpandVariables(val string) string {
	mapper := func(varName string) string {
		switch varName {
		case "XDG_CONFIG_HOME":
			return xdg.ConfigHome
		case "XDG_DATA_HOME":
			return xdg.DataHome
		case "XDG_STATE_HOME":
			return xdg.StateHome
		case "XDG_CACHE_HOME":
			return xdg.CacheHome
		case "HOME":
			home, err := os.UserHomeDir()
			if err != nil {
				return ""
			}
			return home
		case "USER":
			u, err := user.Current()
			if err != nil {
				return os.Getenv("USER")
			}
			return u.Username
		}
		return os.Getenv(varName)
	}
	return os.Expand(val, mapper)
}
