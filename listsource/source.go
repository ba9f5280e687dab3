package listsource

import (
	"bytes"
	"context"
	"os"

	"github.com/hupe1980/filtex/value"
)

// ErrNotFound is returned when a list does not exist at the source.
//
// Implementations should return an error that satisfies
// `errors.Is(err, ErrNotFound)`. The default maps to `os.ErrNotExist`.
var ErrNotFound = os.ErrNotExist

// Source is an abstraction for fetching list membership snapshots.
type Source interface {
	// Fetch returns the raw snapshot for the named list. The returned
	// slice is owned by the caller.
	Fetch(ctx context.Context, name string) ([]byte, error)
}

// Members splits a newline-separated snapshot into per-member views.
// The views borrow from data: they stay valid exactly as long as data
// does, and no member bytes are copied. Empty lines are skipped and a
// trailing \r is stripped, so both Unix and Windows line endings work.
func Members(data []byte) []value.Bytes {
	var members []value.Bytes
	for len(data) > 0 {
		line := data
		if i := bytes.IndexByte(data, '\n'); i >= 0 {
			line = data[:i]
			data = data[i+1:]
		} else {
			data = nil
		}
		if n := len(line); n > 0 && line[n-1] == '\r' {
			line = line[:n-1]
		}
		if len(line) > 0 {
			members = append(members, value.Borrow(line))
		}
	}
	return members
}
