// Package listsnap persists the full list-matcher state of an execution
// context as a single self-describing container.
//
// The container records the codec name, compression type, and per-list
// kind and value-type tags, so restoring needs nothing beyond an explicit
// kind-to-definition registry. A CRC32 trailer guards against storage
// corruption. Restore errors are loud by design: a snapshot that cannot be
// restored exactly aborts instead of degrading lists to empty matchers.
package listsnap
