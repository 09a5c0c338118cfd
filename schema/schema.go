// Package schema maps generic DMAP records to the named radar data products
// (IQDAT, RAWACF, FITACF, GRID, MAP) and back.
//
// A Schema is a mechanical, table-driven description of a product: which
// scalar and vector fields it carries, their kinds, and which are optional.
// Binding validates a parsed record against the table; unbinding emits the
// fields in the product's canonical order for encoding. The generic codec in
// package record never calls into this package.
package schema

import (
	"errors"
	"fmt"
	"slices"

	"github.com/hupe1980/godmap/atom"
	"github.com/hupe1980/godmap/record"
)

var (
	// ErrMissingField indicates a required field absent from the record.
	ErrMissingField = errors.New("missing required field")
	// ErrWrongType indicates a field present with an unexpected kind.
	ErrWrongType = errors.New("wrong field type")
)

// MissingFieldError reports a required field absent from a record.
type MissingFieldError struct {
	Schema string
	Name   string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("%s: missing required field %q", e.Schema, e.Name)
}

func (e *MissingFieldError) Unwrap() error { return ErrMissingField }

// FieldTypeError reports a field whose kind does not match the schema.
type FieldTypeError struct {
	Schema   string
	Name     string
	Expected atom.Kind
	Actual   atom.Kind
}

func (e *FieldTypeError) Error() string {
	return fmt.Sprintf("%s: field %q has kind %s, want %s", e.Schema, e.Name, e.Actual, e.Expected)
}

func (e *FieldTypeError) Unwrap() error { return ErrWrongType }

// FieldDef describes one field of a product schema.
type FieldDef struct {
	Name     string
	Kind     atom.Kind
	Optional bool
}

// Schema is a product's field table. Field order in the slices is the
// canonical wire order used when unbinding.
type Schema struct {
	Name    string
	Scalars []FieldDef
	Vectors []FieldDef
}

// Bind validates rec against the schema. Required fields must be present
// with the declared kind; optional fields may be absent but must match the
// declared kind when present. Fields not named by the schema are tolerated
// and preserved (emitted after the canonical fields on unbind).
func (s *Schema) Bind(rec *record.Record) (*Bound, error) {
	for _, def := range s.Scalars {
		f, ok := rec.Scalars[def.Name]
		if !ok {
			if def.Optional {
				continue
			}
			return nil, &MissingFieldError{Schema: s.Name, Name: def.Name}
		}
		if f.Value.Kind != def.Kind {
			return nil, &FieldTypeError{Schema: s.Name, Name: def.Name, Expected: def.Kind, Actual: f.Value.Kind}
		}
	}
	for _, def := range s.Vectors {
		f, ok := rec.Vectors[def.Name]
		if !ok {
			if def.Optional {
				continue
			}
			return nil, &MissingFieldError{Schema: s.Name, Name: def.Name}
		}
		if f.Kind != def.Kind {
			return nil, &FieldTypeError{Schema: s.Name, Name: def.Name, Expected: def.Kind, Actual: f.Kind}
		}
	}

	return &Bound{
		schema:       s,
		rec:          rec,
		extraScalars: extraNames(rec.Scalars, s.Scalars),
		extraVectors: extraNames(rec.Vectors, s.Vectors),
	}, nil
}

func extraNames[T any](fields map[string]T, defs []FieldDef) []string {
	known := make(map[string]struct{}, len(defs))
	for _, def := range defs {
		known[def.Name] = struct{}{}
	}
	var extras []string
	for name := range fields {
		if _, ok := known[name]; !ok {
			extras = append(extras, name)
		}
	}
	slices.Sort(extras)
	return extras
}

// Bound is a record validated against a schema.
type Bound struct {
	schema       *Schema
	rec          *record.Record
	extraScalars []string
	extraVectors []string
}

// Schema returns the schema the record was bound against.
func (b *Bound) Schema() *Schema { return b.schema }

// Record returns the underlying generic record.
func (b *Bound) Record() *record.Record { return b.rec }

// Extra returns the names of scalar and vector fields the schema does not
// know about, sorted.
func (b *Bound) Extra() (scalars, vectors []string) {
	return b.extraScalars, b.extraVectors
}

// Scalar returns the named scalar field.
func (b *Bound) Scalar(name string) (atom.Value, bool) {
	f, ok := b.rec.Scalars[name]
	return f.Value, ok
}

// Vector returns the named vector field.
func (b *Bound) Vector(name string) (record.Vector, bool) {
	return b.rec.Vector(name)
}

// Int returns the named scalar widened to int64, for any signed integer
// kind.
func (b *Bound) Int(name string) (int64, bool) {
	v, ok := b.Scalar(name)
	if !ok {
		return 0, false
	}
	switch v.Kind {
	case atom.KindInt8, atom.KindInt16, atom.KindInt32, atom.KindInt64:
		return v.I64, true
	default:
		return 0, false
	}
}

// Float returns the named scalar widened to float64, for either float kind.
func (b *Bound) Float(name string) (float64, bool) {
	v, ok := b.Scalar(name)
	if !ok {
		return 0, false
	}
	switch v.Kind {
	case atom.KindFloat32, atom.KindFloat64:
		return v.F64, true
	default:
		return 0, false
	}
}

// String returns the named string scalar.
func (b *Bound) String(name string) (string, bool) {
	v, ok := b.Scalar(name)
	if !ok {
		return "", false
	}
	return v.AsString()
}

// Unbind emits the record's fields in the schema's canonical order. Optional
// fields are included only when present; fields unknown to the schema follow
// the canonical ones in sorted name order.
func (b *Bound) Unbind() ([]record.Scalar, []record.Vector) {
	scalars := make([]record.Scalar, 0, len(b.rec.Scalars))
	for _, def := range b.schema.Scalars {
		if f, ok := b.rec.Scalars[def.Name]; ok {
			scalars = append(scalars, f)
		}
	}
	for _, name := range b.extraScalars {
		scalars = append(scalars, b.rec.Scalars[name])
	}

	vectors := make([]record.Vector, 0, len(b.rec.Vectors))
	for _, def := range b.schema.Vectors {
		if f, ok := b.rec.Vectors[def.Name]; ok {
			vectors = append(vectors, f)
		}
	}
	for _, name := range b.extraVectors {
		vectors = append(vectors, b.rec.Vectors[name])
	}

	return scalars, vectors
}

// Encode serializes the bound record in canonical field order.
func (b *Bound) Encode() ([]byte, error) {
	scalars, vectors := b.Unbind()
	return record.EncodeFields(scalars, vectors)
}
