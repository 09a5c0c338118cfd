package blobstore

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStore(t *testing.T) {
	ctx := context.Background()
	store := NewLocalStore(t.TempDir())

	require.NoError(t, store.Put(ctx, "1998/01/grf.rawacf", []byte("one")))
	require.NoError(t, store.Put(ctx, "1998/01/kod.rawacf", []byte("two")))
	require.NoError(t, store.Put(ctx, "1999/01/grf.rawacf", []byte("three")))

	b, err := store.Open(ctx, "1998/01/grf.rawacf")
	require.NoError(t, err)
	assert.Equal(t, int64(3), b.Size())

	got, err := b.(Mappable).Bytes()
	require.NoError(t, err)
	assert.Equal(t, []byte("one"), got)
	require.NoError(t, b.Close())

	names, err := store.List(ctx, "1998/")
	require.NoError(t, err)
	assert.Equal(t, []string{"1998/01/grf.rawacf", "1998/01/kod.rawacf"}, names)
}

func TestLocalStoreOverwrite(t *testing.T) {
	ctx := context.Background()
	store := NewLocalStore(t.TempDir())

	require.NoError(t, store.Put(ctx, "b", []byte("first")))
	require.NoError(t, store.Put(ctx, "b", []byte("second")))

	data, done, err := ReadAll(ctx, store, "b")
	require.NoError(t, err)
	assert.Equal(t, []byte("second"), data)
	require.NoError(t, done())
}

func TestLocalStorePutLeavesNoTempFiles(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	store := NewLocalStore(dir)

	require.NoError(t, store.Put(ctx, "b", []byte("data")))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "b", entries[0].Name())
}

func TestLocalStoreDelete(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	store := NewLocalStore(dir)

	require.NoError(t, store.Put(ctx, "b", []byte("data")))
	require.NoError(t, store.Delete(ctx, "b"))
	_, err := os.Stat(filepath.Join(dir, "b"))
	assert.True(t, os.IsNotExist(err))

	// Deleting again is fine.
	assert.NoError(t, store.Delete(ctx, "b"))

	_, err = store.Open(ctx, "b")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLocalBlobReadAt(t *testing.T) {
	ctx := context.Background()
	store := NewLocalStore(t.TempDir())
	require.NoError(t, store.Put(ctx, "b", []byte("abcdef")))

	b, err := store.Open(ctx, "b")
	require.NoError(t, err)
	defer b.Close()

	p := make([]byte, 2)
	n, err := b.ReadAt(ctx, p, 4)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, []byte("ef"), p)
}
