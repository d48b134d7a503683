// Package desktop parses XDG desktop entry files into launchable entries.
//
// A descriptor yields one Entry for its "[Desktop Entry]" section and one
// more for every action it declares in "Actions=", each parsed from its own
// "[Desktop Action <name>]" section.
package desktop
