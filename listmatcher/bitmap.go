package listmatcher

import (
	"math"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/hupe1980/filtex/codec"
	"github.com/hupe1980/filtex/value"
)

// BitmapList is a list kind backed by a Roaring Bitmap, suited to dense
// integer membership sets (ports, ASNs, rule IDs). It accepts integer
// values in the uint32 range.
type BitmapList struct{}

// Kind returns "bitmap".
func (*BitmapList) Kind() string { return "bitmap" }

// NewMatcher returns an empty BitmapMatcher.
func (*BitmapList) NewMatcher() Matcher { return NewBitmapMatcher() }

// DeserializeMatcher reconstructs a BitmapMatcher from its serialized
// bitmap.
func (l *BitmapList) DeserializeMatcher(ty value.Kind, c codec.Codec, payload []byte) (Matcher, error) {
	if ty != value.KindInt {
		return nil, &ErrTypeMismatch{Kind: l.Kind(), Expected: value.KindInt, Actual: ty}
	}
	var p bitmapPayload
	if err := c.Unmarshal(payload, &p); err != nil {
		return nil, decodeErr(l.Kind(), c, err)
	}
	m := NewBitmapMatcher()
	if len(p.Bitmap) > 0 {
		if err := m.rb.UnmarshalBinary(p.Bitmap); err != nil {
			return nil, decodeErr(l.Kind(), c, err)
		}
	}
	return m, nil
}

// bitmapPayload is the stable wire shape for BitmapMatcher state. The
// bitmap uses the portable Roaring serialization.
type bitmapPayload struct {
	Bitmap []byte `json:"bitmap"`
}

// BitmapMatcher holds uint32 members in a Roaring Bitmap.
type BitmapMatcher struct {
	rb *roaring.Bitmap
}

// NewBitmapMatcher returns an empty BitmapMatcher.
func NewBitmapMatcher() *BitmapMatcher {
	return &BitmapMatcher{rb: roaring.New()}
}

// Add adds a member.
func (m *BitmapMatcher) Add(n uint32) { m.rb.Add(n) }

// Remove deletes a member if present.
func (m *BitmapMatcher) Remove(n uint32) { m.rb.Remove(n) }

// Cardinality returns the number of members.
func (m *BitmapMatcher) Cardinality() uint64 { return m.rb.GetCardinality() }

// MatchValue reports whether val is a member. Only integer values within
// the uint32 range can be members.
func (m *BitmapMatcher) MatchValue(_ string, val value.Value) bool {
	n, ok := val.AsInt()
	if !ok || n < 0 || n > math.MaxUint32 {
		return false
	}
	return m.rb.Contains(uint32(n))
}

// Clear removes all members.
func (m *BitmapMatcher) Clear() {
	m.rb.Clear()
}

// Clone returns an independent copy.
func (m *BitmapMatcher) Clone() Matcher {
	return &BitmapMatcher{rb: m.rb.Clone()}
}

// Equal reports whether other is a BitmapMatcher with the same members.
func (m *BitmapMatcher) Equal(other Matcher) bool {
	o, ok := other.(*BitmapMatcher)
	return ok && m.rb.Equals(o.rb)
}

// MarshalPayload serializes the bitmap in the portable Roaring format.
func (m *BitmapMatcher) MarshalPayload(c codec.Codec) ([]byte, error) {
	data, err := m.rb.MarshalBinary()
	if err != nil {
		return nil, err
	}
	return c.Marshal(bitmapPayload{Bitmap: data})
}
