package filtex

import (
	"fmt"
	"io"
	"maps"
	"sort"

	"github.com/hupe1980/filtex/codec"
	"github.com/hupe1980/filtex/listmatcher"
	"github.com/hupe1980/filtex/listsnap"
	"github.com/hupe1980/filtex/value"
)

// listState binds one logical list to its definition, declared value type,
// and live matcher.
type listState struct {
	def     listmatcher.Definition
	ty      value.Kind
	matcher listmatcher.Matcher
}

// ExecutionContext stores the per-request field values and the live list
// matchers a compiled filter is evaluated against.
//
// A context is thread-compatible: concurrent evaluation (reads) is safe,
// but field updates and list mutation require external synchronization.
// The usual pattern for long-lived contexts is single-writer population
// followed by many concurrent readers, or snapshot-and-swap via SetMatcher.
type ExecutionContext struct {
	fields      map[string]value.Value
	lists       map[string]*listState
	logger      *Logger
	codec       codec.Codec
	compression listsnap.Compression
}

// NewExecutionContext creates an empty context.
func NewExecutionContext(optFns ...Option) *ExecutionContext {
	o := options{logger: NoopLogger()}
	for _, fn := range optFns {
		fn(&o)
	}
	return &ExecutionContext{
		fields:      make(map[string]value.Value),
		lists:       make(map[string]*listState),
		logger:      o.logger,
		codec:       o.codec,
		compression: o.compression,
	}
}

// SetField sets the runtime value for a field.
func (ctx *ExecutionContext) SetField(name string, v value.Value) {
	ctx.fields[name] = v
}

// Field returns the runtime value for a field.
func (ctx *ExecutionContext) Field(name string) (value.Value, bool) {
	v, ok := ctx.fields[name]
	return v, ok
}

// RegisterList binds a list name to a definition and declared value type,
// instantiating a fresh, empty matcher. Registering an existing name
// replaces its state.
func (ctx *ExecutionContext) RegisterList(name string, ty value.Kind, def listmatcher.Definition) listmatcher.Matcher {
	m := def.NewMatcher()
	ctx.lists[name] = &listState{def: def, ty: ty, matcher: m}
	return m
}

// Matcher returns the live matcher for a list name.
func (ctx *ExecutionContext) Matcher(name string) (listmatcher.Matcher, bool) {
	st, ok := ctx.lists[name]
	if !ok {
		return nil, false
	}
	return st.matcher, true
}

// SetMatcher swaps in a replacement matcher for a registered list. This is
// the write half of the snapshot-and-swap population pattern: build the new
// matcher off to the side, then publish it with one pointer-sized write
// under whatever synchronization the owner uses.
func (ctx *ExecutionContext) SetMatcher(name string, m listmatcher.Matcher) error {
	st, ok := ctx.lists[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrListNotRegistered, name)
	}
	st.matcher = m
	return nil
}

// Clone returns a deep copy: fields are copied and every matcher is cloned,
// so mutating the clone's lists never affects the original.
func (ctx *ExecutionContext) Clone() *ExecutionContext {
	cp := &ExecutionContext{
		fields:      maps.Clone(ctx.fields),
		lists:       make(map[string]*listState, len(ctx.lists)),
		logger:      ctx.logger,
		codec:       ctx.codec,
		compression: ctx.compression,
	}
	for name, st := range ctx.lists {
		cp.lists[name] = &listState{
			def:     st.def,
			ty:      st.ty,
			matcher: st.matcher.Clone(),
		}
	}
	return cp
}

// MarshalState persists every registered list's matcher into a listsnap
// container, in deterministic name order.
func (ctx *ExecutionContext) MarshalState(w io.Writer) error {
	names := make([]string, 0, len(ctx.lists))
	for name := range ctx.lists {
		names = append(names, name)
	}
	sort.Strings(names)

	entries := make([]listsnap.Entry, len(names))
	for i, name := range names {
		st := ctx.lists[name]
		entries[i] = listsnap.Entry{
			Name:    name,
			Kind:    st.def.Kind(),
			Type:    st.ty,
			Matcher: st.matcher,
		}
	}

	opts := []listsnap.Option{listsnap.WithCompression(ctx.compression)}
	if ctx.codec != nil {
		opts = append(opts, listsnap.WithCodec(ctx.codec))
	}
	return listsnap.Write(w, entries, opts...)
}

// UnmarshalState restores matcher state from a listsnap container. Every
// persisted list must already be registered with the same kind and value
// type; any disagreement aborts the restore with the context unchanged.
func (ctx *ExecutionContext) UnmarshalState(r io.Reader) error {
	defs := make(map[string]listmatcher.Definition, len(ctx.lists))
	for _, st := range ctx.lists {
		defs[st.def.Kind()] = st.def
	}

	entries, err := listsnap.Read(r, defs)
	if err != nil {
		return err
	}

	// Validate everything before mutating, so a bad snapshot cannot leave
	// the context half-restored.
	for _, e := range entries {
		st, ok := ctx.lists[e.Name]
		if !ok {
			return fmt.Errorf("%w: %q", ErrListNotRegistered, e.Name)
		}
		if st.def.Kind() != e.Kind || st.ty != e.Type {
			return &ErrListMismatch{
				List:         e.Name,
				ExpectedKind: st.def.Kind(),
				ActualKind:   e.Kind,
				ExpectedType: st.ty,
				ActualType:   e.Type,
			}
		}
	}
	for _, e := range entries {
		ctx.lists[e.Name].matcher = e.Matcher
		ctx.logger.Debug("restored list matcher", "list", e.Name, "kind", e.Kind)
	}
	return nil
}
