package listmatcher

import (
	"fmt"

	"github.com/hupe1980/filtex/codec"
	"github.com/hupe1980/filtex/value"
)

// Matcher is the live, per-list membership state queried by compiled
// "value in list" predicates.
//
// Matchers are thread-compatible: queries are safe from any number of
// goroutines once population has stabilized, but the library performs no
// internal locking. Callers that mutate a matcher concurrently with queries
// must synchronize externally, e.g. with a per-list RWMutex or by building
// a fresh matcher and swapping it in.
type Matcher interface {
	// MatchValue reports whether val is a member of the list. The list name
	// is passed so a single matcher implementation can disambiguate by
	// logical list identity if it serves several lists.
	MatchValue(listName string, val value.Value) bool

	// Clear removes all membership data, returning the matcher to its
	// initial empty state. It is idempotent.
	Clear()

	// Clone returns a fully independent copy. Mutating the clone never
	// affects the original.
	Clone() Matcher

	// Equal reports whether other is the same concrete kind with equal
	// state. Matchers of different concrete kinds are never equal.
	Equal(other Matcher) bool

	// MarshalPayload serializes the membership state with the given codec.
	// The payload alone does not identify the concrete kind; containers
	// persist the kind and declared value type alongside it.
	MarshalPayload(c codec.Codec) ([]byte, error)
}

// Definition describes one list kind: how to construct a fresh matcher and
// how to reconstruct one from a serialized payload. A definition is
// stateless; the external scheme layer registers one per kind.
//
// There is no global kind registry. Everything that restores matchers takes
// an explicit kind-to-definition mapping.
type Definition interface {
	// Kind returns the stable identifier persisted alongside payloads.
	Kind() string

	// NewMatcher returns a fresh, empty matcher. It always succeeds.
	NewMatcher() Matcher

	// DeserializeMatcher reconstructs a matcher from payload. ty is the
	// value type the list is declared to accept; implementations must fail
	// with ErrTypeMismatch when they cannot match values of that type, and
	// with a decode error when the payload is structurally invalid. They
	// must never silently substitute an empty matcher.
	DeserializeMatcher(ty value.Kind, c codec.Codec, payload []byte) (Matcher, error)
}

// ErrTypeMismatch is returned when a list kind is asked to reconstruct a
// matcher for a value type it does not accept.
type ErrTypeMismatch struct {
	Kind     string
	Expected value.Kind
	Actual   value.Kind
}

func (e *ErrTypeMismatch) Error() string {
	return fmt.Sprintf("list kind %q accepts %s values, declared type is %s", e.Kind, e.Expected, e.Actual)
}

func decodeErr(kind string, c codec.Codec, err error) error {
	return fmt.Errorf("listmatcher: decode %q payload (%s): %w", kind, c.Name(), err)
}
