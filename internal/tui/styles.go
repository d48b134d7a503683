package tui

import (
	"flauncher/internal/config"

	"charm.land/lipgloss/v2"
)

// Styles holds the lipgloss styles used by the launcher views.
type Styles struct {
	Panel      lipgloss.Style
	ItemNormal lipgloss.Style
	ItemActive lipgloss.Style
	Label      lipgloss.Style
	Title      lipgloss.Style
	Query      lipgloss.Style
	HelpLine   lipgloss.Style
}

// NewStyles builds the styles for a highlight color name. Unknown names fall
// back to the default highlight.
func NewStyles(highlight string) Styles {
	idx, err := config.ParseColor(highlight)
	if err != nil {
		idx, _ = config.ParseColor(config.Default().HighlightColor)
	}
	hl := lipgloss.Color(idx)

	return Styles{
		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1),
		ItemNormal: lipgloss.NewStyle(),
		ItemActive: lipgloss.NewStyle().Foreground(hl).Bold(true),
		Label:      lipgloss.NewStyle().Faint(true),
		Title:      lipgloss.NewStyle().Foreground(hl).Bold(true),
		Query:      lipgloss.NewStyle().Foreground(hl),
		HelpLine:   lipgloss.NewStyle().Faint(true),
	}
}
