// Package godmap reads and writes DMAP files, the self-describing binary
// record format used for scientific radar data.
//
// The generic codec lives in the record and atom subpackages; the product
// schemas (IQDAT, RAWACF, FITACF, GRID, MAP) live in the schema subpackage.
// This package adds the file-level conveniences: extension-selected
// compression, atomic writes, bulk parallel reads and blob-store access.
package godmap

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/hupe1980/godmap/blobstore"
	"github.com/hupe1980/godmap/internal/mmap"
	"github.com/hupe1980/godmap/record"
)

// ReadFile decodes every record in the file at path, in file order.
// Paths ending in .gz, .zst, .lz4 or .bz2 are decompressed first;
// uncompressed files decode zero-copy from a memory mapping.
func ReadFile(path string, opts ...Option) ([]*record.Record, error) {
	o := applyOptions(opts)

	records, err := readFile(path, o)
	o.logger.LogRead(path, len(records), err)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return records, nil
}

func readFile(path string, o options) ([]*record.Record, error) {
	ext, compressed := compressionExt(path)
	if !compressed {
		m, err := mmap.Open(path)
		if err != nil {
			return nil, err
		}
		defer m.Close()
		return record.ReadAll(m.Bytes())
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	dec, err := newDecompressor(ext, bufio.NewReaderSize(f, 256*1024))
	if err != nil {
		return nil, err
	}
	defer dec.Close()

	return record.Read(dec)
}

// WriteFile encodes records and writes their concatenation to path,
// compressed per the path's extension. The write goes through a temp file
// and rename in the target directory, so readers never observe a partial
// file.
func WriteFile(path string, records []*record.Record, opts ...Option) error {
	o := applyOptions(opts)

	err := writeFile(path, records, o)
	o.logger.LogWrite(path, len(records), err)
	if err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func writeFile(path string, records []*record.Record, o options) error {
	ext, compressed := compressionExt(path)

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer func() {
		_ = tmp.Close()
		if tmpName != "" {
			_ = os.Remove(tmpName)
		}
	}()

	_ = tmp.Chmod(0o644)

	buf := bufio.NewWriterSize(tmp, 256*1024)
	if compressed {
		enc, err := newCompressor(ext, buf, o.zstdLevel)
		if err != nil {
			return err
		}
		if err := record.WriteAll(enc, records); err != nil {
			_ = enc.Close()
			return err
		}
		if err := enc.Close(); err != nil {
			return err
		}
	} else {
		if err := record.WriteAll(buf, records); err != nil {
			return err
		}
	}
	if err := buf.Flush(); err != nil {
		return err
	}
	if err := tmp.Sync(); err != nil {
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		return err
	}

	// Best-effort: fsync the directory so the rename is durable on POSIX.
	if d, err := os.Open(dir); err == nil {
		_ = d.Sync()
		_ = d.Close()
	}

	tmpName = ""
	return nil
}

// Read decodes every record from r, in stream order. The stream must be an
// uncompressed record concatenation; compressed inputs go through ReadFile
// or ReadBlob, which select the decoder from the name.
func Read(r io.Reader, opts ...Option) ([]*record.Record, error) {
	o := applyOptions(opts)

	records, err := record.Read(r)
	o.logger.LogRead("stream", len(records), err)
	return records, err
}

// Write encodes records and writes their raw concatenation to w.
func Write(w io.Writer, records []*record.Record, opts ...Option) error {
	o := applyOptions(opts)

	err := record.WriteAll(w, records)
	o.logger.LogWrite("stream", len(records), err)
	return err
}

// ReadBlob decodes every record in a named blob from a store, applying the
// same extension-selected decompression as ReadFile.
func ReadBlob(ctx context.Context, store blobstore.BlobStore, name string, opts ...Option) ([]*record.Record, error) {
	o := applyOptions(opts)

	records, err := readBlob(ctx, store, name)
	o.logger.LogRead(name, len(records), err)
	if err != nil {
		return nil, fmt.Errorf("read blob %s: %w", name, err)
	}
	return records, nil
}

func readBlob(ctx context.Context, store blobstore.BlobStore, name string) ([]*record.Record, error) {
	data, done, err := blobstore.ReadAll(ctx, store, name)
	if err != nil {
		return nil, err
	}
	defer func() { _ = done() }()

	ext, compressed := compressionExt(name)
	if !compressed {
		return record.ReadAll(data)
	}

	dec, err := newDecompressor(ext, bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer dec.Close()

	return record.Read(dec)
}
