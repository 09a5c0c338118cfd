package mmap

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempFile(t *testing.T, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "blob")
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func TestOpen(t *testing.T) {
	m, err := Open(writeTempFile(t, []byte("abcdef")))
	require.NoError(t, err)
	defer m.Close()

	assert.Equal(t, int64(6), m.Size())
	assert.Equal(t, []byte("abcdef"), m.Bytes())
}

func TestOpenEmptyFile(t *testing.T) {
	m, err := Open(writeTempFile(t, nil))
	require.NoError(t, err)
	defer m.Close()

	assert.Equal(t, int64(0), m.Size())
	assert.Empty(t, m.Bytes())
}

func TestOpenMissingFile(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "nope"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestReadAt(t *testing.T) {
	m, err := Open(writeTempFile(t, []byte("abcdef")))
	require.NoError(t, err)
	defer m.Close()

	p := make([]byte, 2)
	n, err := m.ReadAt(p, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, []byte("cd"), p)

	// Short read at the tail.
	n, err = m.ReadAt(p, 5)
	assert.ErrorIs(t, err, io.EOF)
	assert.Equal(t, 1, n)

	_, err = m.ReadAt(p, 6)
	assert.ErrorIs(t, err, io.EOF)
	_, err = m.ReadAt(p, -1)
	assert.ErrorIs(t, err, io.EOF)
}

func TestCloseIdempotent(t *testing.T) {
	m, err := Open(writeTempFile(t, []byte("abc")))
	require.NoError(t, err)

	require.NoError(t, m.Close())
	require.NoError(t, m.Close())

	assert.Nil(t, m.Bytes())
	_, err = m.ReadAt(make([]byte, 1), 0)
	assert.ErrorIs(t, err, ErrClosed)
}
