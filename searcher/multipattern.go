package searcher

import (
	ahocorasick "github.com/petar-dambovaliev/aho-corasick"
)

// MultiPattern matches a haystack against a set of needles at once using an
// Aho-Corasick automaton. It implements any-of semantics: the haystack
// matches when at least one needle occurs in it.
//
// Like the single-needle strategies, a MultiPattern is built once at compile
// time and is safe to share across concurrent evaluations.
type MultiPattern struct {
	ac       *ahocorasick.AhoCorasick
	count    int
	hasEmpty bool
}

// MultiPatternConfig tunes automaton construction.
type MultiPatternConfig struct {
	// CaseInsensitive enables ASCII case-insensitive matching.
	CaseInsensitive bool
}

// NewMultiPattern builds a multi-needle searcher. An empty needle in the set
// makes the searcher match everything, consistent with the single-needle
// strategies.
func NewMultiPattern(needles []string, cfg MultiPatternConfig) *MultiPattern {
	patterns := make([]string, 0, len(needles))
	hasEmpty := false
	for _, n := range needles {
		if n == "" {
			hasEmpty = true
			continue
		}
		patterns = append(patterns, n)
	}

	var automaton *ahocorasick.AhoCorasick
	if len(patterns) > 0 {
		builder := ahocorasick.NewAhoCorasickBuilder(ahocorasick.Opts{
			AsciiCaseInsensitive: cfg.CaseInsensitive,
			MatchKind:            ahocorasick.LeftMostLongestMatch,
		})
		ac := builder.Build(patterns)
		automaton = &ac
	}

	return &MultiPattern{ac: automaton, count: len(patterns), hasEmpty: hasEmpty}
}

// PatternCount returns the number of non-empty needles in the automaton.
func (s *MultiPattern) PatternCount() int { return s.count }

// Matches reports whether any needle occurs in haystack.
func (s *MultiPattern) Matches(haystack []byte) bool {
	if s.hasEmpty {
		return true
	}
	if s.ac == nil {
		return false
	}
	return len(s.ac.FindAll(string(haystack))) > 0
}
