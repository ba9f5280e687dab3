package filtex

import (
	"errors"
	"fmt"

	"github.com/hupe1980/filtex/value"
)

var (
	// ErrListNotRegistered is returned when state restoration references a
	// list name the context has no registration for.
	ErrListNotRegistered = errors.New("list not registered")
)

// ErrListMismatch indicates a persisted list whose kind or value type
// disagrees with the context's registration for the same list name.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrListMismatch struct {
	List         string
	ExpectedKind string
	ActualKind   string
	ExpectedType value.Kind
	ActualType   value.Kind
	cause        error
}

func (e *ErrListMismatch) Error() string {
	if e.ExpectedKind != e.ActualKind {
		return fmt.Sprintf("list %q: registered kind %q, snapshot kind %q", e.List, e.ExpectedKind, e.ActualKind)
	}
	return fmt.Sprintf("list %q: registered type %s, snapshot type %s", e.List, e.ExpectedType, e.ActualType)
}

func (e *ErrListMismatch) Unwrap() error { return e.cause }
