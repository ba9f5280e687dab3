package listsource

import (
	"bytes"
	"context"
	"path/filepath"

	"github.com/hupe1980/filtex/internal/mmap"
	"github.com/hupe1980/filtex/value"
)

// Local is a Source backed by the local file system. Each list lives in
// one file under the root directory, named after the list.
type Local struct {
	root string
}

// NewLocal creates a local source rooted at the given directory.
func NewLocal(root string) *Local {
	return &Local{root: root}
}

// Fetch reads the whole list file. The snapshot is read through mmap and
// copied once into an owned slice, so it outlives the mapping.
func (s *Local) Fetch(_ context.Context, name string) ([]byte, error) {
	m, err := mmap.Open(filepath.Join(s.root, name))
	if err != nil {
		return nil, err
	}
	defer m.Close()
	return bytes.Clone(m.Bytes()), nil
}

// OpenMapped maps the list file without copying. Member views returned by
// Snapshot.Members borrow from the mapping and are valid until Close.
// Use this when the caller controls the snapshot lifetime; use Fetch when
// the data must outlive the file handle.
func (s *Local) OpenMapped(name string) (*Snapshot, error) {
	m, err := mmap.Open(filepath.Join(s.root, name))
	if err != nil {
		return nil, err
	}
	return &Snapshot{m: m}, nil
}

// Snapshot is a zero-copy view of a mapped list file.
type Snapshot struct {
	m *mmap.Mapping
}

// Bytes returns the raw snapshot. Valid until Close.
func (s *Snapshot) Bytes() []byte {
	return s.m.Bytes()
}

// Members returns borrowed per-member views into the mapping.
func (s *Snapshot) Members() []value.Bytes {
	return Members(s.m.Bytes())
}

// Close unmaps the snapshot, invalidating all views derived from it.
func (s *Snapshot) Close() error {
	return s.m.Close()
}
