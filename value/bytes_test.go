package value

import (
	"encoding/json"
	"testing"

	"github.com/fxamacker/cbor/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBytesEqualityIgnoresRepresentation(t *testing.T) {
	src := []byte("hello")

	borrowed := Borrow(src)
	owned := Own([]byte("hello"))

	assert.True(t, borrowed.Equal(owned))
	assert.True(t, owned.Equal(borrowed))
	assert.Equal(t, borrowed.Sum64(), owned.Sum64())

	assert.False(t, borrowed.Equal(Own([]byte("hellO"))))
}

func TestBytesCopyLeavesOriginalBorrowed(t *testing.T) {
	src := []byte("payload")
	b := Borrow(src)

	c := b.Copy()
	require.True(t, c.Owned())
	require.False(t, b.Owned())

	// The copy must be independent of the lender's buffer.
	src[0] = 'X'
	assert.Equal(t, []byte("Xayload"), b.Raw())
	assert.Equal(t, []byte("payload"), c.Raw())
}

func TestBytesIntoOwned(t *testing.T) {
	owned := Own([]byte("abc"))
	buf := owned.IntoOwned()
	assert.Equal(t, []byte("abc"), buf)

	src := []byte("abc")
	borrowed := Borrow(src)
	buf = borrowed.IntoOwned()
	src[0] = 'z'
	assert.Equal(t, []byte("abc"), buf)
}

func TestBytesMutPromotesOnce(t *testing.T) {
	src := []byte("abc")
	b := Borrow(src)

	first := b.Mut()
	require.True(t, b.Owned())
	first[0] = 'x'
	assert.Equal(t, []byte("abc"), src, "lender buffer must stay untouched")

	second := b.Mut()
	assert.Same(t, &first[0], &second[0], "second Mut must not re-copy")
}

func TestBytesTruncate(t *testing.T) {
	t.Run("borrowed narrows the view", func(t *testing.T) {
		src := []byte("GET /index.html")
		b := Borrow(src)
		b.Truncate(3)
		assert.Equal(t, []byte("GET"), b.Raw())
		assert.False(t, b.Owned())
	})

	t.Run("owned reslices", func(t *testing.T) {
		b := Own([]byte("GET /index.html"))
		b.Truncate(3)
		assert.Equal(t, []byte("GET"), b.Raw())
		assert.True(t, b.Owned())
	})

	t.Run("out of range panics", func(t *testing.T) {
		b := Own([]byte("ab"))
		assert.Panics(t, func() { b.Truncate(3) })
	})
}

func TestBytesJSONRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{name: "ascii", data: []byte("a JSON string")},
		{name: "unicode", data: []byte("unicode \xE2\x9D\xA4")},
		{name: "invalid utf8", data: []byte{0xff, 0xfe, 0x00, 0x41}},
		{name: "empty", data: []byte{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := Own(append([]byte(nil), tt.data...))
			enc, err := json.Marshal(in)
			require.NoError(t, err)

			var out Bytes
			require.NoError(t, json.Unmarshal(enc, &out))
			assert.True(t, in.Equal(out), "got %q", out.Raw())
		})
	}
}

func TestBytesJSONAcceptsIntegerArray(t *testing.T) {
	var b Bytes
	require.NoError(t, json.Unmarshal([]byte("[71, 69, 84]"), &b))
	assert.True(t, b.Equal(FromString("GET")))

	// An integer array and the equivalent string decode to equal values.
	var s Bytes
	require.NoError(t, json.Unmarshal([]byte(`"GET"`), &s))
	assert.True(t, b.Equal(s))
}

func TestBytesJSONRejectsMalformedInput(t *testing.T) {
	var b Bytes
	assert.Error(t, json.Unmarshal([]byte("[256]"), &b))
	assert.Error(t, json.Unmarshal([]byte("[-1]"), &b))
	assert.Error(t, json.Unmarshal([]byte("42"), &b))
	assert.Error(t, json.Unmarshal([]byte("{}"), &b))
}

func TestBytesJSONEscapedUnicode(t *testing.T) {
	var b Bytes
	require.NoError(t, json.Unmarshal([]byte(`"escaped ❤"`), &b))
	assert.True(t, b.Equal(Own([]byte("escaped \xE2\x9D\xA4"))))
}

func TestBytesCBORRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{name: "text", data: []byte("hello")},
		{name: "raw", data: []byte{0xde, 0xad, 0xbe, 0xef}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := Own(append([]byte(nil), tt.data...))
			enc, err := cbor.Marshal(in)
			require.NoError(t, err)

			var out Bytes
			require.NoError(t, cbor.Unmarshal(enc, &out))
			assert.True(t, in.Equal(out))
		})
	}
}
