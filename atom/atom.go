// Package atom implements the DMAP primitive type system: the closed set of
// twelve wire-level kinds, their one-byte type keys, their fixed byte widths
// and their little-endian encodings.
//
// Exactly one key<->kind table and one encode/decode pair exist; every other
// package routes through them so the mapping cannot drift between the read
// and write paths.
package atom

import "math"

// Kind identifies the concrete type stored in a Value.
type Kind uint8

const (
	// KindStructural is the reserved structural marker (wire key 0).
	// It has zero width and is never a legal field payload.
	KindStructural Kind = iota
	// KindInt8 represents a signed 8-bit integer ("char" in DMAP terms).
	KindInt8
	// KindInt16 represents a signed 16-bit integer ("short").
	KindInt16
	// KindInt32 represents a signed 32-bit integer ("int").
	KindInt32
	// KindInt64 represents a signed 64-bit integer ("long").
	KindInt64
	// KindUint8 represents an unsigned 8-bit integer ("uchar").
	KindUint8
	// KindUint16 represents an unsigned 16-bit integer ("ushort").
	KindUint16
	// KindUint32 represents an unsigned 32-bit integer ("uint").
	KindUint32
	// KindUint64 represents an unsigned 64-bit integer ("ulong").
	KindUint64
	// KindFloat32 represents a 32-bit IEEE float ("float").
	KindFloat32
	// KindFloat64 represents a 64-bit IEEE float ("double").
	KindFloat64
	// KindString represents a NUL-terminated UTF-8 string.
	KindString

	numKinds
)

// Wire type keys as they appear on disk. The gaps (5-7, 11-15) are part of
// the format and must not be filled.
const (
	keyStructural = 0
	keyInt8       = 1
	keyInt16      = 2
	keyInt32      = 3
	keyFloat32    = 4
	keyFloat64    = 8
	keyString     = 9
	keyInt64      = 10
	keyUint8      = 16
	keyUint16     = 17
	keyUint32     = 18
	keyUint64     = 19
)

var kindKeys = [numKinds]byte{
	KindStructural: keyStructural,
	KindInt8:       keyInt8,
	KindInt16:      keyInt16,
	KindInt32:      keyInt32,
	KindInt64:      keyInt64,
	KindUint8:      keyUint8,
	KindUint16:     keyUint16,
	KindUint32:     keyUint32,
	KindUint64:     keyUint64,
	KindFloat32:    keyFloat32,
	KindFloat64:    keyFloat64,
	KindString:     keyString,
}

var keyKinds = map[byte]Kind{
	keyStructural: KindStructural,
	keyInt8:       KindInt8,
	keyInt16:      KindInt16,
	keyInt32:      KindInt32,
	keyFloat32:    KindFloat32,
	keyFloat64:    KindFloat64,
	keyString:     KindString,
	keyInt64:      KindInt64,
	keyUint8:      KindUint8,
	keyUint16:     KindUint16,
	keyUint32:     KindUint32,
	keyUint64:     KindUint64,
}

var kindWidths = [numKinds]int{
	KindStructural: 0,
	KindInt8:       1,
	KindInt16:      2,
	KindInt32:      4,
	KindInt64:      8,
	KindUint8:      1,
	KindUint16:     2,
	KindUint32:     4,
	KindUint64:     8,
	KindFloat32:    4,
	KindFloat64:    8,
	KindString:     -1,
}

// DMAP names, kept for diagnostics and logging.
var kindNames = [numKinds]string{
	KindStructural: "structural",
	KindInt8:       "char",
	KindInt16:      "short",
	KindInt32:      "int",
	KindInt64:      "long",
	KindUint8:      "uchar",
	KindUint16:     "ushort",
	KindUint32:     "uint",
	KindUint64:     "ulong",
	KindFloat32:    "float",
	KindFloat64:    "double",
	KindString:     "string",
}

// String returns the conventional DMAP name of the kind.
func (k Kind) String() string {
	if k < numKinds {
		return kindNames[k]
	}
	return "unknown"
}

// Valid reports whether k is one of the twelve defined kinds.
func (k Kind) Valid() bool {
	return k < numKinds
}

// Key returns the one-byte wire key for k.
func (k Kind) Key() byte {
	if k < numKinds {
		return kindKeys[k]
	}
	return keyStructural
}

// Width returns the fixed encoded width of k in bytes.
// KindString is variable-length and returns -1; KindStructural returns 0.
func (k Kind) Width() int {
	if k < numKinds {
		return kindWidths[k]
	}
	return 0
}

// KindFromKey resolves a wire type key to its kind.
// The boolean is false for keys outside the defined set.
func KindFromKey(key byte) (Kind, bool) {
	k, ok := keyKinds[key]
	return k, ok
}

// Value is a tagged DMAP primitive. Signed integers share I64, unsigned
// integers share U64 and both float kinds share F64, mirroring the wire
// format's width hierarchy: narrowing back to the declared kind is lossless.
type Value struct {
	Kind Kind
	I64  int64
	U64  uint64
	F64  float64
	S    string
}

// Int8 returns an int8 Value.
func Int8(v int8) Value { return Value{Kind: KindInt8, I64: int64(v)} }

// Int16 returns an int16 Value.
func Int16(v int16) Value { return Value{Kind: KindInt16, I64: int64(v)} }

// Int32 returns an int32 Value.
func Int32(v int32) Value { return Value{Kind: KindInt32, I64: int64(v)} }

// Int64 returns an int64 Value.
func Int64(v int64) Value { return Value{Kind: KindInt64, I64: v} }

// Uint8 returns a uint8 Value.
func Uint8(v uint8) Value { return Value{Kind: KindUint8, U64: uint64(v)} }

// Uint16 returns a uint16 Value.
func Uint16(v uint16) Value { return Value{Kind: KindUint16, U64: uint64(v)} }

// Uint32 returns a uint32 Value.
func Uint32(v uint32) Value { return Value{Kind: KindUint32, U64: uint64(v)} }

// Uint64 returns a uint64 Value.
func Uint64(v uint64) Value { return Value{Kind: KindUint64, U64: v} }

// Float32 returns a float32 Value.
func Float32(v float32) Value { return Value{Kind: KindFloat32, F64: float64(v)} }

// Float64 returns a float64 Value.
func Float64(v float64) Value { return Value{Kind: KindFloat64, F64: v} }

// String returns a string Value.
func String(v string) Value { return Value{Kind: KindString, S: v} }

// AsInt8 returns the int8 value if Kind is KindInt8.
func (v Value) AsInt8() (int8, bool) {
	if v.Kind != KindInt8 {
		return 0, false
	}
	return int8(v.I64), true
}

// AsInt16 returns the int16 value if Kind is KindInt16.
func (v Value) AsInt16() (int16, bool) {
	if v.Kind != KindInt16 {
		return 0, false
	}
	return int16(v.I64), true
}

// AsInt32 returns the int32 value if Kind is KindInt32.
func (v Value) AsInt32() (int32, bool) {
	if v.Kind != KindInt32 {
		return 0, false
	}
	return int32(v.I64), true
}

// AsInt64 returns the int64 value if Kind is KindInt64.
func (v Value) AsInt64() (int64, bool) {
	if v.Kind != KindInt64 {
		return 0, false
	}
	return v.I64, true
}

// AsUint8 returns the uint8 value if Kind is KindUint8.
func (v Value) AsUint8() (uint8, bool) {
	if v.Kind != KindUint8 {
		return 0, false
	}
	return uint8(v.U64), true
}

// AsUint16 returns the uint16 value if Kind is KindUint16.
func (v Value) AsUint16() (uint16, bool) {
	if v.Kind != KindUint16 {
		return 0, false
	}
	return uint16(v.U64), true
}

// AsUint32 returns the uint32 value if Kind is KindUint32.
func (v Value) AsUint32() (uint32, bool) {
	if v.Kind != KindUint32 {
		return 0, false
	}
	return uint32(v.U64), true
}

// AsUint64 returns the uint64 value if Kind is KindUint64.
func (v Value) AsUint64() (uint64, bool) {
	if v.Kind != KindUint64 {
		return 0, false
	}
	return v.U64, true
}

// AsFloat32 returns the float32 value if Kind is KindFloat32.
func (v Value) AsFloat32() (float32, bool) {
	if v.Kind != KindFloat32 {
		return 0, false
	}
	return float32(v.F64), true
}

// AsFloat64 returns the float64 value if Kind is KindFloat64.
func (v Value) AsFloat64() (float64, bool) {
	if v.Kind != KindFloat64 {
		return 0, false
	}
	return v.F64, true
}

// AsString returns the string value if Kind is KindString.
func (v Value) AsString() (string, bool) {
	if v.Kind != KindString {
		return "", false
	}
	return v.S, true
}

// Equal reports whether two values have the same kind and the same payload.
// Floats compare by bit pattern so that NaN payloads survive round-trip
// comparison unchanged.
func Equal(a, b Value) bool {
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case KindInt8, KindInt16, KindInt32, KindInt64:
		return a.I64 == b.I64
	case KindUint8, KindUint16, KindUint32, KindUint64:
		return a.U64 == b.U64
	case KindFloat32, KindFloat64:
		return math.Float64bits(a.F64) == math.Float64bits(b.F64)
	case KindString:
		return a.S == b.S
	default:
		return false
	}
}
