package listmatcher

import (
	"maps"
	"sort"

	"github.com/hupe1980/filtex/codec"
	"github.com/hupe1980/filtex/value"
)

// SetList is a list kind backed by an in-memory hash set of byte strings.
// It accepts byte-string values only.
type SetList struct{}

// Kind returns "set".
func (*SetList) Kind() string { return "set" }

// NewMatcher returns an empty SetMatcher.
func (*SetList) NewMatcher() Matcher { return NewSetMatcher() }

// DeserializeMatcher reconstructs a SetMatcher from its serialized member
// list.
func (l *SetList) DeserializeMatcher(ty value.Kind, c codec.Codec, payload []byte) (Matcher, error) {
	if ty != value.KindBytes {
		return nil, &ErrTypeMismatch{Kind: l.Kind(), Expected: value.KindBytes, Actual: ty}
	}
	var p setPayload
	if err := c.Unmarshal(payload, &p); err != nil {
		return nil, decodeErr(l.Kind(), c, err)
	}
	m := NewSetMatcher()
	for _, member := range p.Members {
		m.Insert(member)
	}
	return m, nil
}

// setPayload is the stable wire shape for SetMatcher state. Members reuse
// the byte-string encoding: text when valid UTF-8, integer array otherwise.
type setPayload struct {
	Members []value.Bytes `json:"members"`
}

// SetMatcher holds byte-string members in a hash set. Lookup is a single
// map probe with no allocation.
type SetMatcher struct {
	members map[string]struct{}
}

// NewSetMatcher returns an empty SetMatcher.
func NewSetMatcher() *SetMatcher {
	return &SetMatcher{members: make(map[string]struct{})}
}

// Insert adds a member. Inserting an existing member is a no-op.
func (m *SetMatcher) Insert(b value.Bytes) {
	m.members[string(b.Raw())] = struct{}{}
}

// Remove deletes a member if present.
func (m *SetMatcher) Remove(b value.Bytes) {
	delete(m.members, string(b.Raw()))
}

// Len returns the number of members.
func (m *SetMatcher) Len() int { return len(m.members) }

// MatchValue reports whether val is a member. Values of any kind other than
// byte strings are never members.
func (m *SetMatcher) MatchValue(_ string, val value.Value) bool {
	b, ok := val.AsBytes()
	if !ok {
		return false
	}
	_, hit := m.members[string(b.Raw())]
	return hit
}

// Clear removes all members.
func (m *SetMatcher) Clear() {
	clear(m.members)
}

// Clone returns an independent copy.
func (m *SetMatcher) Clone() Matcher {
	return &SetMatcher{members: maps.Clone(m.members)}
}

// Equal reports whether other is a SetMatcher with the same members.
func (m *SetMatcher) Equal(other Matcher) bool {
	o, ok := other.(*SetMatcher)
	return ok && maps.Equal(m.members, o.members)
}

// MarshalPayload serializes the members in a deterministic order.
func (m *SetMatcher) MarshalPayload(c codec.Codec) ([]byte, error) {
	keys := make([]string, 0, len(m.members))
	for k := range m.members {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	p := setPayload{Members: make([]value.Bytes, len(keys))}
	for i, k := range keys {
		p.Members[i] = value.FromString(k)
	}
	return c.Marshal(p)
}
