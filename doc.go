// Package filtex provides the runtime core a compiled filter expression
// evaluates against: tagged values, pattern-search predicates, and
// pluggable list-membership matchers.
//
// The expression compiler (not part of this module) lowers parsed syntax
// into a tree of Compare implementations. At request time the host fills an
// ExecutionContext with field values and evaluates the compiled filter:
// a pure, synchronous call with no allocation on the hot path.
//
// # Quick Start
//
//	ctx := filtex.NewExecutionContext()
//	ctx.RegisterList("blocked-agents", value.KindBytes, &listmatcher.SetList{})
//
//	// Compile-time: strategy selection happens once per predicate.
//	uaContains := filtex.Contains([]byte("curl"))
//	uaBlocked := filtex.InList("blocked-agents")
//
//	// Request time: zero-copy value straight out of the request buffer.
//	ua := value.BytesValue(value.Borrow(req.UserAgent))
//	if uaContains.Compare(ua, ctx) || uaBlocked.Compare(ua, ctx) {
//		// drop the request
//	}
//
// # Concurrency
//
// Compiled predicates and searchers are immutable and safe to share across
// goroutines. ExecutionContext and list matchers are thread-compatible:
// many readers may query concurrently, but mutation (field updates, list
// population) requires external synchronization or the snapshot-and-swap
// pattern via SetMatcher.
package filtex
