package listmatcher

import (
	"testing"

	"github.com/hupe1980/filtex/codec"
	"github.com/hupe1980/filtex/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReferenceMatcherEquality(t *testing.T) {
	var always Matcher = (&AlwaysList{}).NewMatcher()
	var always2 Matcher = (&AlwaysList{}).NewMatcher()
	var never Matcher = (&NeverList{}).NewMatcher()

	assert.True(t, always.Equal(always2))
	assert.True(t, always2.Equal(always))

	// Different concrete kinds are never equal, even when both are empty.
	assert.False(t, always.Equal(never))
	assert.False(t, never.Equal(always))
	assert.False(t, always2.Equal(never))
}

func TestAlwaysMatcherStockBehavior(t *testing.T) {
	// Pins the behavior existing deployments rely on: the stock "always"
	// matcher reports no members.
	m := (&AlwaysList{}).NewMatcher()
	assert.False(t, m.MatchValue("lst", value.BytesValue(value.FromString("anything"))))
	assert.False(t, m.MatchValue("lst", value.IntValue(1)))

	// The opt-in flag flips it to unconditional membership.
	all := (&AlwaysList{MatchAll: true}).NewMatcher()
	assert.True(t, all.MatchValue("lst", value.BytesValue(value.FromString("anything"))))
	assert.True(t, all.MatchValue("lst", value.IntValue(1)))

	// The flag is part of the matcher state.
	assert.False(t, m.Equal(all))
}

func TestNeverMatcher(t *testing.T) {
	m := (&NeverList{}).NewMatcher()
	assert.False(t, m.MatchValue("lst", value.BytesValue(value.FromString("x"))))
	m.Clear()
	assert.False(t, m.MatchValue("lst", value.BytesValue(value.FromString("x"))))
}

func TestSetMatcher(t *testing.T) {
	m := NewSetMatcher()
	m.Insert(value.FromString("curl"))
	m.Insert(value.FromString("googlebot"))

	assert.True(t, m.MatchValue("agents", value.BytesValue(value.FromString("curl"))))
	assert.True(t, m.MatchValue("agents", value.BytesValue(value.Borrow([]byte("googlebot")))))
	assert.False(t, m.MatchValue("agents", value.BytesValue(value.FromString("firefox"))))
	assert.False(t, m.MatchValue("agents", value.IntValue(42)), "non-bytes values are never members")
	assert.Equal(t, 2, m.Len())

	m.Remove(value.FromString("curl"))
	assert.False(t, m.MatchValue("agents", value.BytesValue(value.FromString("curl"))))

	m.Clear()
	assert.Equal(t, 0, m.Len())
	assert.False(t, m.MatchValue("agents", value.BytesValue(value.FromString("googlebot"))))
}

func TestSetMatcherCloneIsIndependent(t *testing.T) {
	m := NewSetMatcher()
	m.Insert(value.FromString("a"))

	c := m.Clone().(*SetMatcher)
	c.Insert(value.FromString("b"))
	c.Remove(value.FromString("a"))

	assert.True(t, m.MatchValue("lst", value.BytesValue(value.FromString("a"))))
	assert.False(t, m.MatchValue("lst", value.BytesValue(value.FromString("b"))))
	assert.False(t, m.Equal(c))
}

func TestSetMatcherRoundTrip(t *testing.T) {
	for _, c := range []codec.Codec{codec.JSON{}, codec.GoJSON{}, codec.CBOR{}} {
		t.Run(c.Name(), func(t *testing.T) {
			m := NewSetMatcher()
			m.Insert(value.FromString("curl"))
			m.Insert(value.Own([]byte{0xff, 0x00, 0x01})) // non-UTF-8 member

			payload, err := m.MarshalPayload(c)
			require.NoError(t, err)

			def := &SetList{}
			restored, err := def.DeserializeMatcher(value.KindBytes, c, payload)
			require.NoError(t, err)
			assert.True(t, m.Equal(restored))
		})
	}
}

func TestSetListRejectsWrongValueType(t *testing.T) {
	def := &SetList{}
	_, err := def.DeserializeMatcher(value.KindInt, codec.Default, []byte(`{"members":[]}`))
	require.Error(t, err)

	var mismatch *ErrTypeMismatch
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, value.KindBytes, mismatch.Expected)
	assert.Equal(t, value.KindInt, mismatch.Actual)
}

func TestSetListRejectsMalformedPayload(t *testing.T) {
	def := &SetList{}
	_, err := def.DeserializeMatcher(value.KindBytes, codec.JSON{}, []byte(`{"members":`))
	assert.Error(t, err)
}

func TestBitmapMatcher(t *testing.T) {
	m := NewBitmapMatcher()
	m.Add(80)
	m.Add(443)

	assert.True(t, m.MatchValue("ports", value.IntValue(443)))
	assert.False(t, m.MatchValue("ports", value.IntValue(8080)))
	assert.False(t, m.MatchValue("ports", value.IntValue(-1)))
	assert.False(t, m.MatchValue("ports", value.BytesValue(value.FromString("443"))))
	assert.Equal(t, uint64(2), m.Cardinality())

	m.Clear()
	assert.False(t, m.MatchValue("ports", value.IntValue(443)))
}

func TestBitmapMatcherCloneAndEquality(t *testing.T) {
	m := NewBitmapMatcher()
	m.Add(1)

	c := m.Clone().(*BitmapMatcher)
	assert.True(t, m.Equal(c))

	c.Add(2)
	assert.False(t, m.Equal(c))
	assert.False(t, m.MatchValue("ids", value.IntValue(2)))

	// Cross-kind equality resolves to false, not an error.
	assert.False(t, m.Equal(NewSetMatcher()))
	assert.False(t, m.Equal((&NeverList{}).NewMatcher()))
}

func TestBitmapMatcherRoundTrip(t *testing.T) {
	m := NewBitmapMatcher()
	for _, n := range []uint32{80, 443, 8443, 1 << 20} {
		m.Add(n)
	}

	payload, err := m.MarshalPayload(codec.CBOR{})
	require.NoError(t, err)

	def := &BitmapList{}
	restored, err := def.DeserializeMatcher(value.KindInt, codec.CBOR{}, payload)
	require.NoError(t, err)
	assert.True(t, m.Equal(restored))

	_, err = def.DeserializeMatcher(value.KindBytes, codec.CBOR{}, payload)
	var mismatch *ErrTypeMismatch
	require.ErrorAs(t, err, &mismatch)
}

func TestClearedMatcherMatchesNothing(t *testing.T) {
	matchers := []Matcher{
		func() Matcher {
			m := NewSetMatcher()
			m.Insert(value.FromString("x"))
			return m
		}(),
		func() Matcher {
			m := NewBitmapMatcher()
			m.Add(7)
			return m
		}(),
		(&AlwaysList{}).NewMatcher(),
		(&NeverList{}).NewMatcher(),
	}

	probes := []value.Value{
		value.BytesValue(value.FromString("x")),
		value.IntValue(7),
	}

	for _, m := range matchers {
		m.Clear()
		for _, p := range probes {
			assert.False(t, m.MatchValue("lst", p), "%T must match nothing after Clear", m)
		}
	}
}
