package record

import (
	"fmt"
	"io"

	"github.com/hupe1980/godmap/atom"
)

// slistField is the one field name permitted to declare a non-positive
// placeholder dimension. Files with no ranges above threshold write an empty
// slist this way; the quirk is part of the format.
const slistField = "slist"

// Parse decodes one record starting at the cursor's current position and
// advances the cursor past it.
//
// Any structural-integrity failure is fatal for the record; the returned
// error unwraps to one of the package sentinels and carries the absolute
// byte offset at which it was detected.
func Parse(c *Cursor) (*Record, error) {
	start := c.Pos()

	// Code is decoded but not semantically validated; writers always emit
	// RecordCode, readers tolerate anything.
	if _, err := c.ReadInt32(); err != nil {
		return nil, err
	}

	sizeOff := c.Pos()
	size, err := c.ReadInt32()
	if err != nil {
		return nil, err
	}
	// The +8 accounts for the code and size fields already consumed.
	avail := c.Remaining() + 8
	if size <= 0 || int(size) > avail {
		return nil, &SizeError{Offset: sizeOff, Expected: size, Actual: int32(avail)}
	}

	countOff := c.Pos()
	numScalars, err := c.ReadInt32()
	if err != nil {
		return nil, err
	}
	numVectors, err := c.ReadInt32()
	if err != nil {
		return nil, err
	}
	if numScalars <= 0 || numVectors <= 0 {
		return nil, &FieldCountError{
			Offset:  countOff,
			Scalars: numScalars,
			Vectors: numVectors,
			Reason:  "counts must be positive",
		}
	}
	if int64(numScalars)+int64(numVectors) > int64(size) {
		return nil, &FieldCountError{
			Offset:  countOff,
			Scalars: numScalars,
			Vectors: numVectors,
			Reason:  "counts exceed record size",
		}
	}

	rec := NewRecord()

	for i := int32(0); i < numScalars; i++ {
		name, kind, err := readFieldHeader(c)
		if err != nil {
			return nil, err
		}
		value, err := c.ReadValue(kind)
		if err != nil {
			return nil, err
		}
		if _, dup := rec.Scalars[name]; dup {
			rec.Duplicates = append(rec.Duplicates, name)
		}
		rec.SetScalar(name, value)
	}

	for i := int32(0); i < numVectors; i++ {
		name, kind, err := readFieldHeader(c)
		if err != nil {
			return nil, err
		}
		vec, err := parseVectorBody(c, name, kind, size)
		if err != nil {
			return nil, err
		}
		if _, dup := rec.Vectors[name]; dup {
			rec.Duplicates = append(rec.Duplicates, name)
		}
		rec.Vectors[name] = vec
	}

	if consumed := c.Pos() - start; int32(consumed) != size {
		return nil, &SizeError{Offset: c.Pos(), Expected: size, Actual: int32(consumed)}
	}

	return rec, nil
}

// readFieldHeader reads a field's NUL-terminated name and validated type key.
func readFieldHeader(c *Cursor) (string, atom.Kind, error) {
	name, err := c.ReadString()
	if err != nil {
		return "", 0, err
	}
	keyOff := c.Pos()
	key, err := c.ReadKey()
	if err != nil {
		return "", 0, err
	}
	kind, ok := atom.KindFromKey(key)
	if !ok || kind == atom.KindStructural {
		// The structural key is in the defined set but never a legal
		// field payload.
		return "", 0, &UnknownKeyError{Offset: keyOff, Key: key}
	}
	return name, kind, nil
}

// parseVectorBody reads the dimension list and flat element buffer of one
// vector field. size is the declared record size, used to bound every count
// before it is trusted.
func parseVectorBody(c *Cursor, name string, kind atom.Kind, size int32) (Vector, error) {
	dimOff := c.Pos()
	dimCount, err := c.ReadInt32()
	if err != nil {
		return Vector{}, err
	}
	if dimCount <= 0 || dimCount > size {
		return Vector{}, &DimensionError{Offset: dimOff, Field: name, Dim: dimCount}
	}

	// Element width for the size bound; strings occupy at least their
	// terminator byte.
	width := int64(kind.Width())
	if width < 1 {
		width = 1
	}

	dims := make([]int32, dimCount)
	empty := false
	total := int64(1)
	for i := range dims {
		off := c.Pos()
		d, err := c.ReadInt32()
		if err != nil {
			return Vector{}, err
		}
		switch {
		case d > size:
			return Vector{}, &DimensionError{Offset: off, Field: name, Dim: d}
		case d <= 0 && name != slistField:
			return Vector{}, &DimensionError{Offset: off, Field: name, Dim: d}
		case d <= 0:
			empty = true
		default:
			total *= int64(d)
			if total*width > int64(size) {
				return Vector{}, &DimensionError{Offset: off, Field: name, Dim: d}
			}
		}
		dims[i] = d
	}
	if empty {
		total = 0
	}

	// The file stores dimensions in reverse-axis order; flip once here so
	// the in-memory list is first-axis-major.
	for i, j := 0, len(dims)-1; i < j; i, j = i+1, j-1 {
		dims[i], dims[j] = dims[j], dims[i]
	}

	data := make([]atom.Value, total)
	for i := range data {
		v, err := c.ReadValue(kind)
		if err != nil {
			return Vector{}, err
		}
		data[i] = v
	}

	return Vector{Name: name, Kind: kind, Dims: dims, Data: data}, nil
}

// ReadAll parses every record in data, in file order. One record's failure
// fails the whole read; there is no resynchronization heuristic.
func ReadAll(data []byte) ([]*Record, error) {
	c := NewCursor(data)
	var records []*Record
	for c.Remaining() > 0 {
		rec, err := Parse(c)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", len(records), err)
		}
		records = append(records, rec)
	}
	return records, nil
}

// Read loads all of r into memory and parses it with ReadAll.
func Read(r io.Reader) ([]*Record, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read stream: %w", err)
	}
	return ReadAll(data)
}
