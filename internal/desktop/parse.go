package desktop

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

var (
	// ErrEmptyAction is returned when an action reference has no name.
	ErrEmptyAction = errors.New("action is empty")
	// ErrHidden is returned for NoDisplay=true sections.
	ErrHidden = errors.New("entry is hidden")
	// ErrNoCommand is returned when the section has no Exec= key.
	ErrNoCommand = errors.New("no command to run")
)

const (
	entryHeader   = "[Desktop Entry]"
	sectionPrefix = "[Desktop"

	keyName      = "Name="
	keyComment   = "Comment="
	keyTerminal  = "Terminal="
	keyExec      = "Exec="
	keyNoDisplay = "NoDisplay="
	keyPath      = "Path="
	keyActions   = "Actions="
)

// fieldCodeRegex matches one XDG field code with its optional leading space.
var fieldCodeRegex = regexp.MustCompile(` ?%[cDdFfikmNnUuv]`)

// Action identifies a "[Desktop Action <Name>]" section inside the
// descriptor of the application named From.
type Action struct {
	Name string
	From string
}

// header returns the exact section header line for the action.
func (a Action) header() string {
	return fmt.Sprintf("[Desktop Action %s]", a.Name)
}

// Parse reads the entry described by contents. With a nil action it reads
// the "[Desktop Entry]" section, otherwise the section of that action.
// Only the lines following the header up to the next "[Desktop" line are
// considered, and the first occurrence of a key wins.
func Parse(contents string, action *Action) (Entry, error) {
	header := entryHeader
	if action != nil {
		if action.Name == "" {
			return Entry{}, ErrEmptyAction
		}
		header = action.header()
	}

	var (
		name, command, description, path *string
		actions                          []string
		terminal, inSection              bool
	)

	for _, line := range strings.Split(contents, "\n") {
		line = strings.TrimSuffix(line, "\r")

		if inSection && strings.HasPrefix(line, sectionPrefix) {
			inSection = false
		}
		if line == header {
			inSection = true
		}
		if !inSection {
			continue
		}

		switch {
		case strings.HasPrefix(line, keyName):
			if name == nil {
				v := trimKey(line, keyName)
				if action != nil {
					v = fmt.Sprintf("%s (%s)", action.From, v)
				}
				name = &v
			}
		case strings.HasPrefix(line, keyComment):
			if description == nil {
				v := trimKey(line, keyComment)
				description = &v
			}
		case strings.HasPrefix(line, keyTerminal):
			if trimKey(line, keyTerminal) == "true" {
				terminal = true
			}
		case strings.HasPrefix(line, keyExec):
			if command == nil {
				v := StripFieldCode(trimKey(line, keyExec))
				command = &v
			}
		case strings.HasPrefix(line, keyNoDisplay):
			if strings.EqualFold(trimKey(line, keyNoDisplay), "true") {
				return Entry{}, ErrHidden
			}
		case strings.HasPrefix(line, keyPath):
			if path == nil {
				v := trimKey(line, keyPath)
				path = &v
			}
		case strings.HasPrefix(line, keyActions):
			if actions == nil && action == nil {
				actions = strings.Split(trimKey(line, keyActions), ";")
			}
		}
	}

	if command == nil {
		return Entry{}, ErrNoCommand
	}

	e := Entry{
		Name:       UnknownName,
		Command:    *command,
		IsTerminal: terminal,
		Actions:    actions,
	}
	if name != nil {
		e.Name = *name
	}
	if description != nil {
		e.Description = *description
	}
	if path != nil {
		e.WorkingDirectory = *path
	}
	return e, nil
}

// ParseAll parses the base entry and every action it declares. Actions come
// first and the base entry last. Actions that fail to parse are dropped.
func ParseAll(contents string) ([]Entry, error) {
	base, err := Parse(contents, nil)
	if err != nil {
		return nil, err
	}

	entries := make([]Entry, 0, len(base.Actions)+1)
	for _, name := range base.Actions {
		a, err := Parse(contents, &Action{Name: name, From: base.Name})
		if err != nil {
			continue
		}
		entries = append(entries, a)
	}
	return append(entries, base), nil
}

// StripFieldCode removes the first field code (and the space before it, if
// any) from an Exec= value. Later field codes are left untouched.
func StripFieldCode(exec string) string {
	loc := fieldCodeRegex.FindStringIndex(exec)
	if loc == nil {
		return exec
	}
	return exec[:loc[0]] + exec[loc[1]:]
}

// trimKey removes every leading repetition of key, so "Name=Name=Foo"
// yields "Foo".
func trimKey(line, key string) string {
	for strings.HasPrefix(line, key) {
		line = line[len(key):]
	}
	return line
}
