package godmap

import (
	"compress/bzip2"
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// ErrBzip2Write is returned when writing to a .bz2 path. The historical
// archives use bzip2, so reading is supported, but Go has no bzip2 encoder;
// new files are written with one of the other extensions.
var ErrBzip2Write = errors.New("bzip2 encoding is not supported")

// Compressed file extensions recognized on read and write paths.
const (
	extGzip  = ".gz"
	extZstd  = ".zst"
	extLz4   = ".lz4"
	extBzip2 = ".bz2"
)

// compressionExt returns the path's compression extension, if any. Paths
// with other extensions (or none) hold raw record streams.
func compressionExt(path string) (string, bool) {
	switch ext := filepath.Ext(path); ext {
	case extGzip, extZstd, extLz4, extBzip2:
		return ext, true
	default:
		return "", false
	}
}

// newDecompressor wraps r with the decoder for ext.
func newDecompressor(ext string, r io.Reader) (io.ReadCloser, error) {
	switch ext {
	case extGzip:
		return gzip.NewReader(r)
	case extZstd:
		zr, err := zstd.NewReader(r)
		if err != nil {
			return nil, err
		}
		return zr.IOReadCloser(), nil
	case extLz4:
		return io.NopCloser(lz4.NewReader(r)), nil
	case extBzip2:
		return io.NopCloser(bzip2.NewReader(r)), nil
	default:
		return nil, fmt.Errorf("unsupported compression extension %q", ext)
	}
}

// newCompressor wraps w with the encoder for ext. The returned WriteCloser
// must be closed before the underlying writer is flushed.
func newCompressor(ext string, w io.Writer, zstdLevel int) (io.WriteCloser, error) {
	switch ext {
	case extGzip:
		return gzip.NewWriter(w), nil
	case extZstd:
		level := zstd.EncoderLevelFromZstd(zstdLevel)
		return zstd.NewWriter(w, zstd.WithEncoderLevel(level))
	case extLz4:
		return lz4.NewWriter(w), nil
	case extBzip2:
		return nil, ErrBzip2Write
	default:
		return nil, fmt.Errorf("unsupported compression extension %q", ext)
	}
}
