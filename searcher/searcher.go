// Package searcher provides the substring-search strategies compiled
// predicates dispatch to.
//
// A strategy is selected once per predicate, when the filter is compiled,
// based on static properties of the needle. All strategies implement the
// same contract: report whether the needle occurs as a contiguous
// subsequence of the haystack, with an empty needle matching everything.
// Instances are immutable after construction and safe to share across
// concurrent evaluations.
package searcher

import "bytes"

// Searcher reports whether a haystack satisfies a compiled pattern.
// Implementations hold no per-evaluation state.
type Searcher interface {
	Matches(haystack []byte) bool
}

// shortNeedleMax is the needle length up to which the first-byte skip
// strategy tends to beat the generic search. Short needles have weak skip
// tables, so scanning for a single rare byte first is cheaper.
const shortNeedleMax = 8

// New selects a strategy for the given needle. The choice is made once at
// compile time; the returned Searcher is reused for every evaluation.
// The needle is copied, so the caller may reuse its buffer.
func New(needle []byte) Searcher {
	switch {
	case len(needle) == 0:
		return Empty{}
	case len(needle) <= shortNeedleMax:
		return NewMemchr(needle)
	default:
		return NewIndex(needle)
	}
}

// Empty is the strategy for an empty needle: it matches any haystack.
// Compiling it away from the hot path avoids invoking a search algorithm
// for a predicate that is unconditionally true.
type Empty struct{}

// Matches always returns true.
func (Empty) Matches([]byte) bool { return true }

// Index is the general-purpose forward substring search. Runtime is linear
// in the haystack length.
type Index struct {
	needle []byte
}

// NewIndex creates an Index searcher for the given non-empty needle.
func NewIndex(needle []byte) *Index {
	return &Index{needle: bytes.Clone(needle)}
}

// Matches reports whether the needle occurs in haystack.
func (s *Index) Matches(haystack []byte) bool {
	return bytes.Contains(haystack, s.needle)
}

// Memchr is a substring search tuned for short needles: it scans for the
// needle's first byte with the vectorized single-byte search and verifies
// the remainder at each candidate position.
type Memchr struct {
	first byte
	rest  []byte
}

// NewMemchr creates a Memchr searcher for the given non-empty needle.
func NewMemchr(needle []byte) *Memchr {
	return &Memchr{
		first: needle[0],
		rest:  bytes.Clone(needle[1:]),
	}
}

// Matches reports whether the needle occurs in haystack.
func (s *Memchr) Matches(haystack []byte) bool {
	for len(haystack) > len(s.rest) {
		i := bytes.IndexByte(haystack[:len(haystack)-len(s.rest)], s.first)
		if i < 0 {
			return false
		}
		if bytes.HasPrefix(haystack[i+1:], s.rest) {
			return true
		}
		haystack = haystack[i+1:]
	}
	return false
}
