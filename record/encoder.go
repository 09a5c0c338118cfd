package record

import (
	"encoding/binary"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/hupe1980/godmap/atom"
)

// EncodeFields serializes ordered scalar and vector fields into one record's
// exact wire layout:
//
//	[code=65537][size=payload+16][numScalars][numVectors][scalars...][vectors...]
//
// Counts are computed from what is actually passed in; absent optional fields
// are simply not in the slices. Field order is preserved as given.
func EncodeFields(scalars []Scalar, vectors []Vector) ([]byte, error) {
	payload := make([]byte, 0, 256)

	for _, s := range scalars {
		var err error
		payload, err = appendScalar(payload, s)
		if err != nil {
			return nil, err
		}
	}
	for _, v := range vectors {
		var err error
		payload, err = appendVector(payload, v)
		if err != nil {
			return nil, err
		}
	}

	out := make([]byte, 0, headerSize+len(payload))
	out = binary.LittleEndian.AppendUint32(out, uint32(RecordCode))
	out = binary.LittleEndian.AppendUint32(out, uint32(int32(len(payload)+headerSize)))
	out = binary.LittleEndian.AppendUint32(out, uint32(int32(len(scalars))))
	out = binary.LittleEndian.AppendUint32(out, uint32(int32(len(vectors))))
	return append(out, payload...), nil
}

// Encode serializes a record. Map iteration order is not stable, so fields
// are emitted in sorted name order; Diff-based round-trip comparison is
// order-insensitive. Callers that need a product's canonical field order go
// through a schema binder instead.
func Encode(r *Record) ([]byte, error) {
	scalars := make([]Scalar, 0, len(r.Scalars))
	for _, s := range r.Scalars {
		scalars = append(scalars, s)
	}
	sort.Slice(scalars, func(i, j int) bool { return scalars[i].Name < scalars[j].Name })

	vectors := make([]Vector, 0, len(r.Vectors))
	for _, v := range r.Vectors {
		vectors = append(vectors, v)
	}
	sort.Slice(vectors, func(i, j int) bool { return vectors[i].Name < vectors[j].Name })

	return EncodeFields(scalars, vectors)
}

// WriteAll encodes records and writes their raw concatenation to w, with no
// separators or trailing padding.
func WriteAll(w io.Writer, records []*Record) error {
	for i, rec := range records {
		data, err := Encode(rec)
		if err != nil {
			return fmt.Errorf("record %d: %w", i, err)
		}
		if _, err := w.Write(data); err != nil {
			return fmt.Errorf("record %d: %w", i, err)
		}
	}
	return nil
}

func appendScalar(buf []byte, s Scalar) ([]byte, error) {
	if !s.Value.Kind.Valid() || s.Value.Kind == atom.KindStructural {
		return nil, fmt.Errorf("scalar %q: %w", s.Name, atom.ErrStructuralValue)
	}
	if strings.IndexByte(s.Name, 0) >= 0 {
		return nil, fmt.Errorf("scalar %q: %w", s.Name, atom.ErrEmbeddedNul)
	}
	buf = append(buf, s.Name...)
	buf = append(buf, 0)
	buf = append(buf, s.Value.Kind.Key())

	out, err := atom.Append(buf, s.Value)
	if err != nil {
		return nil, fmt.Errorf("scalar %q: %w", s.Name, err)
	}
	return out, nil
}

func appendVector(buf []byte, v Vector) ([]byte, error) {
	if !v.Kind.Valid() || v.Kind == atom.KindStructural {
		return nil, fmt.Errorf("vector %q: %w", v.Name, atom.ErrStructuralValue)
	}
	if strings.IndexByte(v.Name, 0) >= 0 {
		return nil, fmt.Errorf("vector %q: %w", v.Name, atom.ErrEmbeddedNul)
	}
	if len(v.Dims) == 0 {
		return nil, &DimensionError{Field: v.Name, Dim: 0}
	}
	if want := v.Elements(); want != len(v.Data) {
		return nil, fmt.Errorf("vector %q: %d elements for dimensions declaring %d: %w",
			v.Name, len(v.Data), want, ErrDimension)
	}

	buf = append(buf, v.Name...)
	buf = append(buf, 0)
	buf = append(buf, v.Kind.Key())
	buf = binary.LittleEndian.AppendUint32(buf, uint32(int32(len(v.Dims))))

	// In-memory order is first-axis-major; the file stores the reverse.
	for i := len(v.Dims) - 1; i >= 0; i-- {
		buf = binary.LittleEndian.AppendUint32(buf, uint32(v.Dims[i]))
	}

	for i, elem := range v.Data {
		if elem.Kind != v.Kind {
			return nil, fmt.Errorf("vector %q: element %d has kind %s, want %s",
				v.Name, i, elem.Kind, v.Kind)
		}
		var err error
		buf, err = atom.Append(buf, elem)
		if err != nil {
			return nil, fmt.Errorf("vector %q: %w", v.Name, err)
		}
	}
	return buf, nil
}
