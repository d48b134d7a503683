package config

import (
	"fmt"
	"strings"
)

// colorIndexes maps the accepted color names to ANSI palette indexes.
var colorIndexes = map[string]string{
	"black":        "0",
	"red":          "1",
	"green":        "2",
	"yellow":       "3",
	"blue":         "4",
	"magenta":      "5",
	"cyan":         "6",
	"gray":         "7",
	"darkgray":     "8",
	"lightred":     "9",
	"lightgreen":   "10",
	"lightyellow":  "11",
	"lightblue":    "12",
	"lightmagenta": "13",
	"lightcyan":    "14",
	"white":        "15",
}

// ParseColor returns the ANSI palette index for a color name. Names are case
// insensitive.
func ParseColor(name string) (string, error) {
	if idx, ok := colorIndexes[strings.ToLower(name)]; ok {
		return idx, nil
	}
	return "", fmt.Errorf("unknown color %q", name)
}
