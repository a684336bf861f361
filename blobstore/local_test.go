package blobstore

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStore_PutOpen(t *testing.T) {
	ctx := context.Background()
	store, err := NewLocalStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Put(ctx, "models/prod.bkt", []byte("payload")))

	blob, err := store.Open(ctx, "models/prod.bkt")
	require.NoError(t, err)
	defer blob.Close()

	assert.Equal(t, int64(7), blob.Size())

	data, err := ReadAll(ctx, blob)
	require.NoError(t, err)
	assert.Equal(t, []byte("payload"), data)
}

func TestLocalStore_OpenMissing(t *testing.T) {
	store, err := NewLocalStore(t.TempDir())
	require.NoError(t, err)

	_, err = store.Open(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLocalStore_CreateRenamesOnClose(t *testing.T) {
	ctx := context.Background()
	root := t.TempDir()
	store, err := NewLocalStore(root)
	require.NoError(t, err)

	w, err := store.Create(ctx, "m.bkt")
	require.NoError(t, err)
	_, err = w.Write([]byte("data"))
	require.NoError(t, err)

	// Not visible until Close
	_, statErr := os.Stat(filepath.Join(root, "m.bkt"))
	assert.True(t, os.IsNotExist(statErr))

	require.NoError(t, w.Close())

	data, err := os.ReadFile(filepath.Join(root, "m.bkt"))
	require.NoError(t, err)
	assert.Equal(t, []byte("data"), data)
}

func TestLocalStore_DeleteAndList(t *testing.T) {
	ctx := context.Background()
	store, err := NewLocalStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Put(ctx, "models/a.bkt", []byte("a")))
	require.NoError(t, store.Put(ctx, "models/b.bkt", []byte("b")))
	require.NoError(t, store.Put(ctx, "scratch.bkt", []byte("c")))

	names, err := store.List(ctx, "models/")
	require.NoError(t, err)
	assert.Equal(t, []string{"models/a.bkt", "models/b.bkt"}, names)

	require.NoError(t, store.Delete(ctx, "models/a.bkt"))
	require.NoError(t, store.Delete(ctx, "models/a.bkt")) // idempotent

	names, err = store.List(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"models/b.bkt", "scratch.bkt"}, names)
}

func TestLocalStore_ReadRange(t *testing.T) {
	ctx := context.Background()
	store, err := NewLocalStore(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, store.Put(ctx, "r", []byte("0123456789")))

	blob, err := store.Open(ctx, "r")
	require.NoError(t, err)
	defer blob.Close()

	rc, err := blob.ReadRange(ctx, 5, 100)
	require.NoError(t, err)
	defer rc.Close()

	buf := make([]byte, 16)
	n, _ := rc.Read(buf)
	assert.Equal(t, []byte("56789"), buf[:n])
}
