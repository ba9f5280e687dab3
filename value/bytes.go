package value

import (
	"bytes"
	"encoding/json"
	"fmt"
	"unicode/utf8"

	"github.com/fxamacker/cbor/v2"
)

// Bytes is a copy-on-write byte string.
//
// A Bytes either borrows a view into memory owned by someone else (the
// zero-copy path used when decoding from an mmap'd snapshot or a network
// buffer) or exclusively owns its backing buffer. All comparisons, hashing
// and serialization depend only on the byte content; the representation is
// an implementation detail.
//
// A borrowed Bytes is valid only as long as the lender keeps the source
// buffer alive and unmodified. Callers that need to retain a value beyond
// the lender's lifetime must call Copy or Mut first.
type Bytes struct {
	data  []byte
	owned bool
}

// Borrow creates a Bytes that references b without copying.
// The caller must keep b alive and unmodified for the lifetime of the value.
func Borrow(b []byte) Bytes {
	return Bytes{data: b}
}

// Own creates a Bytes that takes ownership of b.
// The caller must not reuse b afterwards.
func Own(b []byte) Bytes {
	return Bytes{data: b, owned: true}
}

// FromString creates an owned Bytes holding the UTF-8 bytes of s.
func FromString(s string) Bytes {
	return Bytes{data: []byte(s), owned: true}
}

// Raw returns a read-only view of the content.
// Mutating the returned slice is undefined behavior; use Mut instead.
func (b Bytes) Raw() []byte { return b.data }

// Len returns the content length in bytes.
func (b Bytes) Len() int { return len(b.data) }

// Owned reports whether the value exclusively owns its backing buffer.
func (b Bytes) Owned() bool { return b.owned }

// Copy returns a fully owned deep copy. The receiver is left untouched.
func (b Bytes) Copy() Bytes {
	return Bytes{data: bytes.Clone(b.data), owned: true}
}

// IntoOwned consumes the value and returns an owned buffer.
// No copy is made when the value already owns its buffer.
// The receiver must not be used afterwards.
func (b Bytes) IntoOwned() []byte {
	if b.owned {
		return b.data
	}
	return bytes.Clone(b.data)
}

// Mut guarantees the value owns its buffer and returns it for mutation.
// A borrowed value is promoted to owned by copying exactly once; calling
// Mut on an already-owned value returns the buffer without copying.
func (b *Bytes) Mut() []byte {
	if !b.owned {
		b.data = bytes.Clone(b.data)
		b.owned = true
	}
	return b.data
}

// Truncate keeps only the first n bytes. On a borrowed value this narrows
// the view without allocating; on an owned value it reslices the buffer.
// Truncate panics if n exceeds the current length.
func (b *Bytes) Truncate(n int) {
	if n > len(b.data) {
		panic(fmt.Sprintf("value: truncate length %d out of range for %d bytes", n, len(b.data)))
	}
	b.data = b.data[:n]
}

// Equal reports whether both values hold the same byte content,
// regardless of which value owns its buffer.
func (b Bytes) Equal(other Bytes) bool {
	return bytes.Equal(b.data, other.data)
}

// EqualString reports whether the content equals the UTF-8 bytes of s.
func (b Bytes) EqualString(s string) bool {
	return string(b.data) == s
}

// Sum64 returns a 64-bit FNV-1a hash of the content. Two values with equal
// content hash identically regardless of representation.
func (b Bytes) Sum64() uint64 {
	h := uint64(14695981039346656037)
	for _, c := range b.data {
		h ^= uint64(c)
		h *= 1099511628211
	}
	return h
}

// String implements fmt.Stringer. Content that is not valid UTF-8 is
// rendered in quoted Go syntax with escapes.
func (b Bytes) String() string {
	if utf8.Valid(b.data) {
		return string(b.data)
	}
	return fmt.Sprintf("%q", b.data)
}

// MarshalJSON encodes the content as a JSON string when it is valid UTF-8
// and as an array of integers otherwise. The heuristic is one-way: the
// decoder accepts either shape for any content.
func (b Bytes) MarshalJSON() ([]byte, error) {
	if utf8.Valid(b.data) {
		return json.Marshal(string(b.data))
	}
	ints := make([]int, len(b.data))
	for i, c := range b.data {
		ints[i] = int(c)
	}
	return json.Marshal(ints)
}

// UnmarshalJSON accepts a JSON string (taken as its UTF-8 bytes, invalid
// UTF-8 included) or an array of integers, each one byte. Any other shape
// is a type error. The decoded value always owns its buffer: JSON strings
// require unescaping, so there is no borrowable source region.
func (b *Bytes) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return fmt.Errorf("value: empty input for byte string")
	}
	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*b = FromString(s)
		return nil
	case '[':
		var ints []int64
		if err := json.Unmarshal(data, &ints); err != nil {
			return err
		}
		buf := make([]byte, len(ints))
		for i, n := range ints {
			if n < 0 || n > 255 {
				return fmt.Errorf("value: byte element %d out of range", n)
			}
			buf[i] = byte(n)
		}
		*b = Own(buf)
		return nil
	default:
		return fmt.Errorf("value: expected string or integer array for byte string")
	}
}

// MarshalCBOR encodes the content as a CBOR text string when it is valid
// UTF-8 and as a CBOR byte string otherwise.
func (b Bytes) MarshalCBOR() ([]byte, error) {
	if utf8.Valid(b.data) {
		return cbor.Marshal(string(b.data))
	}
	return cbor.Marshal(b.data)
}

// UnmarshalCBOR accepts a text string, a byte string, or an array of
// integers each interpreted as one byte.
func (b *Bytes) UnmarshalCBOR(data []byte) error {
	var v any
	if err := cbor.Unmarshal(data, &v); err != nil {
		return err
	}
	switch x := v.(type) {
	case string:
		*b = FromString(x)
	case []byte:
		*b = Own(x)
	case []any:
		buf := make([]byte, len(x))
		for i, e := range x {
			n, ok := cborInt(e)
			if !ok || n < 0 || n > 255 {
				return fmt.Errorf("value: byte element %v out of range", e)
			}
			buf[i] = byte(n)
		}
		*b = Own(buf)
	default:
		return fmt.Errorf("value: expected string, bytes or integer array, got %T", v)
	}
	return nil
}

func cborInt(v any) (int64, bool) {
	switch n := v.(type) {
	case uint64:
		return int64(n), true
	case int64:
		return n, true
	default:
		return 0, false
	}
}
