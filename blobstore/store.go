// Package blobstore abstracts access to archives of DMAP files: a local
// directory, an in-memory map for tests, or an object store (S3, MinIO).
//
// DMAP archives are immutable once written, so the interface is a flat
// namespace of named byte blobs with whole-file put and random-access read.
package blobstore

import (
	"context"
	"io"
	"os"
)

// ErrNotFound is returned when a blob does not exist.
//
// Implementations return an error satisfying errors.Is(err, ErrNotFound).
// The default maps to os.ErrNotExist.
var ErrNotFound = os.ErrNotExist

// BlobStore is an archive of named, immutable DMAP files.
type BlobStore interface {
	// Open opens a blob for reading.
	Open(ctx context.Context, name string) (Blob, error)
	// Put writes a blob atomically, replacing any existing blob.
	Put(ctx context.Context, name string, data []byte) error
	// Delete removes a blob. Deleting a missing blob is not an error.
	Delete(ctx context.Context, name string) error
	// List returns the blob names with the given prefix, sorted.
	List(ctx context.Context, prefix string) ([]string, error)
}

// Blob is a read-only handle to one archived file.
type Blob interface {
	io.Closer
	// Size returns the size of the blob in bytes.
	Size() int64
	// ReadAt reads len(p) bytes starting at offset off.
	ReadAt(ctx context.Context, p []byte, off int64) (int, error)
}

// Mappable is an optional interface for Blobs whose bytes are directly
// addressable (memory-mapped local files). The slice is valid until the
// Blob is closed.
type Mappable interface {
	Bytes() ([]byte, error)
}

// ReadAll returns the full contents of a named blob, taking the zero-copy
// path when the blob is Mappable. The returned slice must not be retained
// past the decode when it came from a mapping, so callers decode before the
// blob is closed.
func ReadAll(ctx context.Context, store BlobStore, name string) ([]byte, func() error, error) {
	b, err := store.Open(ctx, name)
	if err != nil {
		return nil, nil, err
	}

	if m, ok := b.(Mappable); ok {
		data, err := m.Bytes()
		if err == nil {
			return data, b.Close, nil
		}
		// Fall through to ReadAt on mapping failure.
	}

	data := make([]byte, b.Size())
	if _, err := b.ReadAt(ctx, data, 0); err != nil && err != io.EOF {
		_ = b.Close()
		return nil, nil, err
	}
	return data, b.Close, nil
}
