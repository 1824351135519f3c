package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"warehouse-api/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiskStore_PutGetDelete(t *testing.T) {
	store, err := newDiskStore(t.TempDir())
	require.NoError(t, err)

	ctx := context.Background()
	data := []byte("fake image bytes")

	require.NoError(t, store.Put(ctx, "a1b2.png", data, "image/png"))
	assert.True(t, store.Exists(ctx, "a1b2.png"))

	got, err := store.Get(ctx, "a1b2.png")
	require.NoError(t, err)
	assert.Equal(t, data, got)

	require.NoError(t, store.Delete(ctx, "a1b2.png"))
	assert.False(t, store.Exists(ctx, "a1b2.png"))
}

func TestDiskStore_DeleteMissingIsNoop(t *testing.T) {
	store, err := newDiskStore(t.TempDir())
	require.NoError(t, err)

	assert.NoError(t, store.Delete(context.Background(), "never-existed.png"))
}

func TestDiskStore_PathTraversalStripped(t *testing.T) {
	root := t.TempDir()
	store, err := newDiskStore(root)
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, store.Put(ctx, "../../etc/evil.png", []byte("x"), "image/png"))

	// The blob must land inside the root, not above it.
	_, statErr := os.Stat(filepath.Join(root, "evil.png"))
	assert.NoError(t, statErr)
	assert.True(t, store.Exists(ctx, "evil.png"))
}

func TestDiskStore_URL(t *testing.T) {
	store, err := newDiskStore(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "/images/a1b2.png", store.URL("a1b2.png"))
	assert.Equal(t, "/images/a1b2.png", store.URL("../a1b2.png"))
}

func TestNewBlobStore_UnknownDriver(t *testing.T) {
	_, err := NewBlobStore(utils.StorageConfig{Driver: "bogus", Path: t.TempDir()})
	assert.Error(t, err)
}
