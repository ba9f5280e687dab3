package listsource

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalFetch(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "agents"), []byte("curl\nwget\n"), 0o644))

	src := NewLocal(dir)

	payload, err := src.Fetch(context.Background(), "agents")
	require.NoError(t, err)
	assert.Equal(t, "curl\nwget\n", string(payload))

	_, err = src.Fetch(context.Background(), "missing")
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestLocalOpenMapped(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "agents"), []byte("curl\nwget\n"), 0o644))

	src := NewLocal(dir)

	snap, err := src.OpenMapped("agents")
	require.NoError(t, err)

	members := snap.Members()
	require.Len(t, members, 2)
	assert.Equal(t, "curl", members[0].String())
	assert.Equal(t, "wget", members[1].String())
	assert.False(t, members[0].Owned())

	require.NoError(t, snap.Close())
	assert.Nil(t, snap.Bytes())
}
