package filtex

import (
	"github.com/hupe1980/filtex/searcher"
	"github.com/hupe1980/filtex/value"
)

// Compare is the contract every compiled predicate implements. The compiler
// wires one Compare per AST comparison node; evaluation calls it with the
// field's runtime value and the execution context.
//
// Implementations must be immutable after construction so a compiled filter
// can be evaluated concurrently.
type Compare interface {
	Compare(val value.Value, ctx *ExecutionContext) bool
}

// mustBytes unwraps the byte-string variant. The compiler type-checks
// predicates before wiring them, so any other variant here is a bug in the
// caller, not a runtime condition.
func mustBytes(val value.Value) value.Bytes {
	b, ok := val.AsBytes()
	if !ok {
		panic("filtex: byte-string predicate evaluated against " + val.Kind().String() + " value")
	}
	return b
}

// Contains returns a predicate testing whether the needle occurs in the
// evaluated byte-string value. The search strategy is selected once, here,
// based on the needle; evaluation never re-decides.
func Contains(needle []byte) Compare {
	return &containsExpr{s: searcher.New(needle)}
}

type containsExpr struct {
	s searcher.Searcher
}

func (e *containsExpr) Compare(val value.Value, _ *ExecutionContext) bool {
	return e.s.Matches(mustBytes(val).Raw())
}

// ContainsAny returns a predicate testing whether any of the needles occurs
// in the evaluated byte-string value.
func ContainsAny(needles []string, cfg searcher.MultiPatternConfig) Compare {
	return &containsAnyExpr{s: searcher.NewMultiPattern(needles, cfg)}
}

type containsAnyExpr struct {
	s *searcher.MultiPattern
}

func (e *containsAnyExpr) Compare(val value.Value, _ *ExecutionContext) bool {
	return e.s.Matches(mustBytes(val).Raw())
}

// InList returns a predicate testing membership of the evaluated value in
// the named list. A list name with no registration in the evaluated context
// never matches; registration consistency is the scheme layer's concern.
func InList(name string) Compare {
	return &inListExpr{name: name}
}

type inListExpr struct {
	name string
}

func (e *inListExpr) Compare(val value.Value, ctx *ExecutionContext) bool {
	m, ok := ctx.Matcher(e.name)
	if !ok {
		return false
	}
	return m.MatchValue(e.name, val)
}
