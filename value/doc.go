// Package value provides the tagged runtime values filter predicates are
// evaluated against.
//
// The central type is Bytes, a copy-on-write byte string. Hot-path decode
// layers (mmap'd snapshots, network buffers) hand out borrowed views with
// Borrow, avoiding per-request allocations; anything that mutates or
// outlives its source promotes to an owned buffer exactly once.
//
// Value is the small Kind-tagged union consumed by pattern search and list
// matching. The wider engine carries richer types (arrays, maps); this
// package only defines the kinds those two subsystems consume.
package value
