// Package mmap provides read-only memory-mapped file access.
//
// It backs the local list-source provider: a mapped list snapshot is
// exposed as a plain byte slice, so members can be viewed without
// copying them out of the page cache.
package mmap
