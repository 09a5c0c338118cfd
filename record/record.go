// Package record implements the generic DMAP record codec: the cursor-based
// byte reader, the record parser with its integrity checks, the byte-exact
// encoder and the structural difference engine.
//
// A DMAP file is a flat concatenation of records. Each record declares its
// own size and field counts, then carries named scalar fields and named
// multi-dimensional vector fields. The codec guarantees structural fidelity
// and round-trip correctness; it does not interpret field semantics.
package record

import "github.com/hupe1980/godmap/atom"

// Wire constants. RecordCode and the +16 header accounting are legacy
// protocol constants and are preserved verbatim.
const (
	// RecordCode is the constant written into every record's code field.
	RecordCode int32 = 65537

	// headerSize is the number of bytes occupied by the record wrapper
	// (code, size, scalar count, vector count). The declared size of a
	// record is its payload length plus headerSize.
	headerSize = 16
)

// Legacy provenance tags carried by the original format's field structures.
// They never appear on the wire; they are kept for fidelity with tooling
// that expects them.
const (
	// ScalarMode is the legacy mode tag of a scalar field.
	ScalarMode = 6
	// VectorMode is the legacy mode tag of a vector field.
	VectorMode = 7
)

// Scalar is a single named, typed value in a record.
type Scalar struct {
	Name  string
	Value atom.Value
}

// Mode returns the legacy provenance tag for scalar fields.
func (Scalar) Mode() int { return ScalarMode }

// Vector is a named, typed, multi-dimensional array of homogeneous values.
//
// Dims is held in first-axis-major order; the file stores the reverse, and
// exactly one reversal happens on read and one on write. Data is the flat
// element buffer, len(Data) == product(Dims).
type Vector struct {
	Name string
	Kind atom.Kind
	Dims []int32
	Data []atom.Value
}

// Mode returns the legacy provenance tag for vector fields.
func (Vector) Mode() int { return VectorMode }

// Elements returns the element count implied by the dimension list.
// A non-positive dimension (the documented "slist" placeholder) yields 0.
func (v *Vector) Elements() int {
	if len(v.Dims) == 0 {
		return 0
	}
	total := int64(1)
	for _, d := range v.Dims {
		if d <= 0 {
			return 0
		}
		total *= int64(d)
	}
	return int(total)
}

// Record holds the decoded fields of one DMAP record. The maps are created
// fresh per parse call; the codec retains no state across records beyond the
// shared cursor position.
type Record struct {
	Scalars map[string]Scalar
	Vectors map[string]Vector

	// Duplicates lists field names that appeared more than once within
	// the record. Duplicate names overwrite silently (last write wins);
	// strict callers can reject records where this is non-empty.
	Duplicates []string
}

// NewRecord returns an empty record with initialized maps.
func NewRecord() *Record {
	return &Record{
		Scalars: make(map[string]Scalar),
		Vectors: make(map[string]Vector),
	}
}

// Scalar returns the named scalar field.
func (r *Record) Scalar(name string) (Scalar, bool) {
	s, ok := r.Scalars[name]
	return s, ok
}

// Vector returns the named vector field.
func (r *Record) Vector(name string) (Vector, bool) {
	v, ok := r.Vectors[name]
	return v, ok
}

// SetScalar inserts or replaces a scalar field.
func (r *Record) SetScalar(name string, v atom.Value) {
	r.Scalars[name] = Scalar{Name: name, Value: v}
}

// SetVector inserts or replaces a vector field.
func (r *Record) SetVector(name string, kind atom.Kind, dims []int32, data []atom.Value) {
	r.Vectors[name] = Vector{Name: name, Kind: kind, Dims: dims, Data: data}
}
