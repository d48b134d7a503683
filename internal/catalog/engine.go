package catalog

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"strings"

	"flauncher/internal/desktop"
)

// ErrHistory wraps errors returned by the Lookuper.
var ErrHistory = errors.New("failed to read history")

// Lookuper returns the launch counter recorded for a name.
type Lookuper interface {
	Lookup(name string) (uint64, error)
}

// Options tunes an Engine.
type Options struct {
	// IgnoreCase compares names case-insensitively when scores tie.
	IgnoreCase bool
	// Wrap makes navigation wrap around the ends of the list.
	Wrap bool
	// Matcher scores names; FuzzyMatcher when nil.
	Matcher Matcher
}

// Engine partitions entries into matching and excluded for the current query.
type Engine struct {
	history    Lookuper
	matcher    Matcher
	ignoreCase bool

	query    string
	matching []desktop.Entry
	excluded []desktop.Entry
	cursor   Cursor
}

// NewEngine returns an empty engine with an empty query.
func NewEngine(history Lookuper, opts Options) *Engine {
	m := opts.Matcher
	if m == nil {
		m = FuzzyMatcher{}
	}
	return &Engine{
		history:    history,
		matcher:    m,
		ignoreCase: opts.IgnoreCase,
		cursor:     NewCursor(opts.Wrap),
	}
}

// Admit looks up the launch count of each entry and files it under matching
// or excluded against the current query. The highlighted entry stays
// highlighted even when new entries rank above it.
// A history error stops admission; entries before the failing one stay.
func (e *Engine) Admit(entries ...desktop.Entry) error {
	if len(entries) == 0 {
		return nil
	}

	prev, hadSel := e.Selected()

	var err error
	for _, entry := range entries {
		entry.LaunchCount, err = e.history.Lookup(entry.Name)
		if err != nil {
			err = fmt.Errorf("%w for %s: %w", ErrHistory, entry.Name, err)
			break
		}

		if score, ok := e.score(entry.Name); ok {
			entry.MatchScore = score
			e.matching = append(e.matching, entry)
		} else {
			entry.MatchScore = 0
			e.excluded = append(e.excluded, entry)
		}
	}

	e.sort()
	e.cursor.Clamp(len(e.matching))
	if hadSel {
		if i := e.indexOf(prev); i >= 0 {
			e.cursor.MoveTo(i, len(e.matching))
		}
	}
	return err
}

// indexOf returns the position of target in matching, or -1.
func (e *Engine) indexOf(target desktop.Entry) int {
	return slices.IndexFunc(e.matching, func(m desktop.Entry) bool {
		return m.Name == target.Name && m.Command == target.Command
	})
}

// SetQuery re-partitions every entry against q, sorts the matching ones and
// moves the cursor to the first of them.
func (e *Engine) SetQuery(q string) {
	e.query = q

	all := make([]desktop.Entry, 0, len(e.matching)+len(e.excluded))
	all = append(all, e.matching...)
	all = append(all, e.excluded...)

	scores := e.scoreAll(all)

	matching := make([]desktop.Entry, 0, len(all))
	excluded := make([]desktop.Entry, 0, len(all)-len(scores))
	for i, entry := range all {
		if score, ok := scores[i]; ok {
			entry.MatchScore = score
			matching = append(matching, entry)
		} else {
			entry.MatchScore = 0
			excluded = append(excluded, entry)
		}
	}

	e.matching, e.excluded = matching, excluded
	e.sort()
	e.cursor.Reset(len(e.matching))
}

// Push appends r to the query.
func (e *Engine) Push(r rune) {
	e.SetQuery(e.query + string(r))
}

// Pop removes the last rune of the query.
func (e *Engine) Pop() {
	q := []rune(e.query)
	if len(q) > 0 {
		q = q[:len(q)-1]
	}
	e.SetQuery(string(q))
}

// Query returns the current query.
func (e *Engine) Query() string {
	return e.query
}

// Matching returns a copy of the matching entries in rank order.
func (e *Engine) Matching() []desktop.Entry {
	return slices.Clone(e.matching)
}

// Excluded returns a copy of the entries that do not match the query.
func (e *Engine) Excluded() []desktop.Entry {
	return slices.Clone(e.excluded)
}

// Len returns the number of matching entries.
func (e *Engine) Len() int {
	return len(e.matching)
}

// Total returns the number of admitted entries.
func (e *Engine) Total() int {
	return len(e.matching) + len(e.excluded)
}

// Cursor returns the highlighted position, if any.
func (e *Engine) Cursor() (int, bool) {
	return e.cursor.Index()
}

// Selected returns the highlighted entry.
func (e *Engine) Selected() (desktop.Entry, bool) {
	i, ok := e.cursor.Index()
	if !ok || i >= len(e.matching) {
		return desktop.Entry{}, false
	}
	return e.matching[i], true
}

// First highlights the first matching entry.
func (e *Engine) First() { e.cursor.First(len(e.matching)) }

// Last highlights the last matching entry.
func (e *Engine) Last() { e.cursor.Last(len(e.matching)) }

// Next highlights the following entry.
func (e *Engine) Next() { e.cursor.Next(len(e.matching)) }

// Prev highlights the preceding entry.
func (e *Engine) Prev() { e.cursor.Prev(len(e.matching)) }

// score matches a single name against the current query.
func (e *Engine) score(name string) (int, bool) {
	if e.query == "" {
		return 0, true
	}
	hits := e.matcher.Match(e.query, []string{name})
	if len(hits) == 0 {
		return 0, false
	}
	return hits[0].Score, true
}

// scoreAll returns the score of every entry of all that matches the query,
// keyed by position. The empty query matches everything with score 0.
func (e *Engine) scoreAll(all []desktop.Entry) map[int]int {
	scores := make(map[int]int, len(all))
	if e.query == "" {
		for i := range all {
			scores[i] = 0
		}
		return scores
	}

	names := make([]string, len(all))
	for i, entry := range all {
		names[i] = entry.Name
	}
	for _, m := range e.matcher.Match(e.query, names) {
		scores[m.Index] = m.Score
	}
	return scores
}

func (e *Engine) sort() {
	slices.SortStableFunc(e.matching, func(a, b desktop.Entry) int {
		if c := cmp.Compare(b.CorrectedScore(), a.CorrectedScore()); c != 0 {
			return c
		}
		if e.ignoreCase {
			if c := strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name)); c != 0 {
				return c
			}
		}
		return strings.Compare(a.Name, b.Name)
	})
}
