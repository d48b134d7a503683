package catalog

import (
	"github.com/sahilm/fuzzy"
)

// Match is a hit for the name at Index.
type Match struct {
	Index int
	Score int
}

// Matcher scores names against a non-empty query. Names without a hit are
// simply absent from the result.
type Matcher interface {
	Match(query string, names []string) []Match
}

// FuzzyMatcher is the default subsequence scorer. Matching is case
// insensitive, and consecutive, word-start and camel-case hits score higher.
type FuzzyMatcher struct{}

// Match implements Matcher.
func (FuzzyMatcher) Match(query string, names []string) []Match {
	found := fuzzy.Find(query, names)
	out := make([]Match, 0, len(found))
	for _, m := range found {
		out = append(out, Match{Index: m.Index, Score: m.Score})
	}
	return out
}
