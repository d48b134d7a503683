package tui

import (
	"fmt"
	"strings"

	"flauncher/internal/catalog"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/mattn/go-runewidth"
)

const (
	defaultWidth  = 80
	defaultHeight = 24

	// border plus horizontal padding of a panel
	panelChrome = 4
)

// View implements tea.Model
func (m *Model) View() tea.View {
	v := tea.NewView(m.ViewString())
	v.AltScreen = true
	return v
}

// ViewString renders the list panel, info panel, query line and help line.
func (m *Model) ViewString() string {
	width, height := m.size()

	info := m.renderInfo(width)
	query := m.renderQuery(width)
	help := m.renderHelp(width)

	listHeight := height - lipgloss.Height(info) - lipgloss.Height(query) - lipgloss.Height(help) - 2
	if listHeight < 1 {
		listHeight = 1
	}
	list := m.renderList(width, listHeight)

	return lipgloss.JoinVertical(lipgloss.Left, list, info, query, help)
}

func (m *Model) size() (int, int) {
	width, height := m.width, m.height
	if width <= 0 {
		width = defaultWidth
	}
	if height <= 0 {
		height = defaultHeight
	}
	return width, height
}

func (m *Model) renderList(width, rows int) string {
	inner := max(width-panelChrome, 1)
	entries := m.engine.Matching()
	sel, hasSel := m.engine.Cursor()

	// keep the selection on screen
	offset := 0
	if hasSel && sel >= rows {
		offset = sel - rows + 1
	}

	lines := make([]string, 0, rows)
	for i := offset; i < len(entries) && len(lines) < rows; i++ {
		name := runewidth.Truncate(entries[i].Name, inner-2, "…")
		if hasSel && i == sel {
			lines = append(lines, m.styles.ItemActive.Render("> "+name))
		} else {
			lines = append(lines, m.styles.ItemNormal.Render("  "+name))
		}
	}

	return m.styles.Panel.
		Width(width - 2).
		Height(rows).
		Render(strings.Join(lines, "\n"))
}

func (m *Model) renderInfo(width int) string {
	inner := max(width-panelChrome, 1)
	e, ok := m.engine.Selected()
	if !ok {
		return m.styles.Panel.Width(width - 2).Render(m.styles.Label.Render("No match"))
	}

	fields := catalog.Details(e, m.verbosity)
	lines := make([]string, 0, len(fields))
	for i, f := range fields {
		switch i {
		case 0:
			lines = append(lines, m.styles.Title.Render(runewidth.Truncate(f.Value, inner, "…")))
		case 1:
			lines = append(lines, runewidth.Truncate(f.Value, inner, "…"))
		default:
			label := f.Label + ": "
			value := runewidth.Truncate(f.Value, max(inner-runewidth.StringWidth(label), 1), "…")
			lines = append(lines, m.styles.Label.Render(label)+value)
		}
	}
	return m.styles.Panel.Width(width - 2).Render(strings.Join(lines, "\n"))
}

// QueryLine returns the unstyled query line.
func (m *Model) QueryLine() string {
	pos := 0
	if sel, ok := m.engine.Cursor(); ok {
		pos = sel + 1
	}
	return fmt.Sprintf("(%d/%d) >> %s%s", pos, m.engine.Len(), m.engine.Query(), m.cursorChar)
}

func (m *Model) renderQuery(width int) string {
	return m.styles.Query.Render(runewidth.Truncate(m.QueryLine(), width, ""))
}

func (m *Model) renderHelp(width int) string {
	parts := make([]string, 0, 4)
	for _, b := range Keys.ShortHelp() {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return m.styles.HelpLine.Render(runewidth.Truncate(strings.Join(parts, " • "), width, "…"))
}
