package searcher

import (
	"strings"
	"testing"
)

func TestStrategiesAgree(t *testing.T) {
	tests := []struct {
		needle   string
		haystack string
		want     bool
	}{
		{needle: "GET", haystack: "GET /index.html", want: true},
		{needle: "POST", haystack: "GET /index.html", want: false},
		{needle: "", haystack: "GET /index.html", want: true},
		{needle: "", haystack: "", want: true},
		{needle: "a", haystack: "", want: false},
		{needle: "html", haystack: "GET /index.html", want: true},
		{needle: "index.html?", haystack: "GET /index.html", want: false},
		{needle: "aab", haystack: "aaaab", want: true},
		{needle: "aab", haystack: "aaba", want: true},
		{needle: "aab", haystack: "abab", want: false},
		{needle: "needle longer than the short-path cutoff", haystack: "x needle longer than the short-path cutoff x", want: true},
		{needle: "needle longer than the short-path cutoff", haystack: strings.Repeat("needle longer than", 3), want: false},
		{needle: "\x00\xff", haystack: "a\x00\xffb", want: true},
		{needle: "end", haystack: "at the end", want: true},
		{needle: "start", haystack: "startled", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.needle+"/"+tt.haystack, func(t *testing.T) {
			want := strings.Contains(tt.haystack, tt.needle)
			if want != tt.want {
				t.Fatalf("test vector disagrees with strings.Contains")
			}

			selected := New([]byte(tt.needle))
			if got := selected.Matches([]byte(tt.haystack)); got != tt.want {
				t.Errorf("New(%q).Matches(%q) = %v, want %v", tt.needle, tt.haystack, got, tt.want)
			}

			if tt.needle != "" {
				// Every concrete strategy must agree exactly, regardless of
				// which one selection would pick.
				if got := NewIndex([]byte(tt.needle)).Matches([]byte(tt.haystack)); got != tt.want {
					t.Errorf("Index mismatch for %q in %q: got %v", tt.needle, tt.haystack, got)
				}
				if got := NewMemchr([]byte(tt.needle)).Matches([]byte(tt.haystack)); got != tt.want {
					t.Errorf("Memchr mismatch for %q in %q: got %v", tt.needle, tt.haystack, got)
				}
			}
		})
	}
}

func TestNewSelectsByNeedleLength(t *testing.T) {
	if _, ok := New(nil).(Empty); !ok {
		t.Errorf("empty needle must select Empty")
	}
	if _, ok := New([]byte("GET")).(*Memchr); !ok {
		t.Errorf("short needle must select Memchr")
	}
	if _, ok := New([]byte("longer-than-the-cutoff")).(*Index); !ok {
		t.Errorf("long needle must select Index")
	}
}

func TestNewCopiesNeedle(t *testing.T) {
	needle := []byte("GET")
	s := New(needle)
	needle[0] = 'X'
	if !s.Matches([]byte("GET /")) {
		t.Errorf("searcher must not alias the caller's needle buffer")
	}
}

func TestMultiPattern(t *testing.T) {
	tests := []struct {
		name     string
		needles  []string
		haystack string
		want     bool
	}{
		{name: "first of set", needles: []string{"GET", "POST"}, haystack: "GET /index.html", want: true},
		{name: "second of set", needles: []string{"PUT", "POST"}, haystack: "POST /submit", want: true},
		{name: "none", needles: []string{"PUT", "DELETE"}, haystack: "GET /index.html", want: false},
		{name: "empty needle matches all", needles: []string{"PUT", ""}, haystack: "anything", want: true},
		{name: "no needles", needles: nil, haystack: "anything", want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewMultiPattern(tt.needles, MultiPatternConfig{})
			if got := s.Matches([]byte(tt.haystack)); got != tt.want {
				t.Errorf("Matches(%q) = %v, want %v", tt.haystack, got, tt.want)
			}
		})
	}
}

func TestMultiPatternCaseInsensitive(t *testing.T) {
	s := NewMultiPattern([]string{"googlebot"}, MultiPatternConfig{CaseInsensitive: true})
	if !s.Matches([]byte("Mozilla/5.0 (compatible; GoogleBot/2.1)")) {
		t.Errorf("case-insensitive automaton must match mixed case")
	}
	if s.PatternCount() != 1 {
		t.Errorf("PatternCount() = %d, want 1", s.PatternCount())
	}
}
