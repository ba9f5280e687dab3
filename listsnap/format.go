package listsnap

import (
	"errors"
	"fmt"
)

const (
	// MagicNumber identifies list-state snapshot files (ASCII: "FLS0").
	MagicNumber = 0x464C5330
	// Version is the current container format version (v1.0.0).
	Version = 0x00010000

	// maxNameLen bounds list names and kind identifiers on decode.
	maxNameLen = 1 << 12
	// maxPayloadLen bounds a single matcher payload on decode.
	maxPayloadLen = 1 << 30
)

var (
	// ErrInvalidMagic is returned when the container does not start with
	// the snapshot magic number.
	ErrInvalidMagic = errors.New("invalid magic number")
	// ErrInvalidVersion is returned for container versions this build
	// cannot read.
	ErrInvalidVersion = errors.New("unsupported version")
	// ErrChecksumMismatch is returned when the container fails integrity
	// verification.
	ErrChecksumMismatch = errors.New("checksum mismatch")
	// ErrTruncated is returned when the container ends mid-structure.
	ErrTruncated = errors.New("truncated snapshot")
)

// ErrUnknownCodec is returned when the container names a codec this build
// does not provide.
type ErrUnknownCodec struct {
	Name string
}

func (e *ErrUnknownCodec) Error() string {
	return fmt.Sprintf("unknown codec %q", e.Name)
}

// ErrUnknownKind is returned when the container holds a matcher for a list
// kind missing from the caller's definition registry. Restoring aborts
// rather than substituting an empty matcher, so configuration drift
// surfaces instead of silently weakening lists.
type ErrUnknownKind struct {
	List string
	Kind string
}

func (e *ErrUnknownKind) Error() string {
	return fmt.Sprintf("list %q has unregistered kind %q", e.List, e.Kind)
}
