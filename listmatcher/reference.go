package listmatcher

import (
	"github.com/hupe1980/filtex/codec"
	"github.com/hupe1980/filtex/value"
)

// AlwaysList is a stateless reference kind used as a default when no real
// backing list is configured.
//
// Despite the name, the stock matcher reports no members: that is the
// behavior existing deployments rely on, and it is pinned by tests. Set
// MatchAll to opt into unconditional membership instead.
type AlwaysList struct {
	// MatchAll switches new and restored matchers to report every value as
	// a member.
	MatchAll bool
}

// Kind returns "always".
func (*AlwaysList) Kind() string { return "always" }

// NewMatcher returns a fresh AlwaysMatcher.
func (l *AlwaysList) NewMatcher() Matcher {
	return &AlwaysMatcher{MatchAll: l.MatchAll}
}

// DeserializeMatcher reconstructs an AlwaysMatcher. The kind is
// type-agnostic, so any declared value type is accepted.
func (l *AlwaysList) DeserializeMatcher(_ value.Kind, c codec.Codec, payload []byte) (Matcher, error) {
	var m AlwaysMatcher
	if err := c.Unmarshal(payload, &m); err != nil {
		return nil, decodeErr(l.Kind(), c, err)
	}
	return &m, nil
}

// AlwaysMatcher is the matcher for AlwaysList. It holds no membership data.
type AlwaysMatcher struct {
	MatchAll bool `json:"match_all,omitempty"`
}

// MatchValue returns MatchAll for every value.
func (m *AlwaysMatcher) MatchValue(string, value.Value) bool { return m.MatchAll }

// Clear is a no-op; there is no stored state.
func (m *AlwaysMatcher) Clear() {}

// Clone returns an independent copy.
func (m *AlwaysMatcher) Clone() Matcher {
	cp := *m
	return &cp
}

// Equal reports whether other is an AlwaysMatcher with the same flag.
func (m *AlwaysMatcher) Equal(other Matcher) bool {
	o, ok := other.(*AlwaysMatcher)
	return ok && *m == *o
}

// MarshalPayload serializes the matcher.
func (m *AlwaysMatcher) MarshalPayload(c codec.Codec) ([]byte, error) {
	return c.Marshal(m)
}

// NeverList is a stateless reference kind whose matcher never reports a
// member.
type NeverList struct{}

// Kind returns "never".
func (*NeverList) Kind() string { return "never" }

// NewMatcher returns a fresh NeverMatcher.
func (*NeverList) NewMatcher() Matcher { return &NeverMatcher{} }

// DeserializeMatcher reconstructs a NeverMatcher. The kind is
// type-agnostic, so any declared value type is accepted.
func (l *NeverList) DeserializeMatcher(_ value.Kind, c codec.Codec, payload []byte) (Matcher, error) {
	var m NeverMatcher
	if err := c.Unmarshal(payload, &m); err != nil {
		return nil, decodeErr(l.Kind(), c, err)
	}
	return &m, nil
}

// NeverMatcher is the matcher for NeverList.
type NeverMatcher struct{}

// MatchValue returns false for every value.
func (*NeverMatcher) MatchValue(string, value.Value) bool { return false }

// Clear is a no-op; there is no stored state.
func (*NeverMatcher) Clear() {}

// Clone returns an independent copy.
func (*NeverMatcher) Clone() Matcher { return &NeverMatcher{} }

// Equal reports whether other is a NeverMatcher.
func (*NeverMatcher) Equal(other Matcher) bool {
	_, ok := other.(*NeverMatcher)
	return ok
}

// MarshalPayload serializes the matcher.
func (m *NeverMatcher) MarshalPayload(c codec.Codec) ([]byte, error) {
	return c.Marshal(m)
}
