package record

import (
	"errors"
	"fmt"
)

// Sentinel errors for errors.Is checks. Each structural failure is reported
// through a typed error below that unwraps to one of these and carries the
// absolute byte offset at which it was detected, so a corrupt field can be
// located without a second parse pass.
var (
	// ErrBufferBounds indicates a read past the end of the buffer.
	ErrBufferBounds = errors.New("buffer bounds exceeded")
	// ErrUnknownTypeKey indicates a type key outside the defined set, or
	// the reserved structural key used as a field payload.
	ErrUnknownTypeKey = errors.New("unknown type key")
	// ErrFieldCount indicates an invalid scalar or vector count.
	ErrFieldCount = errors.New("invalid field count")
	// ErrDimension indicates an invalid vector dimension.
	ErrDimension = errors.New("invalid vector dimension")
	// ErrSizeMismatch indicates a record whose declared size disagrees
	// with the bytes actually present or consumed.
	ErrSizeMismatch = errors.New("record size mismatch")
	// ErrUnterminatedString indicates a string field with no NUL
	// terminator before the end of the buffer.
	ErrUnterminatedString = errors.New("unterminated string")
)

// BoundsError reports a read that would cross the end of the buffer.
type BoundsError struct {
	Offset int
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("buffer bounds exceeded at offset %d", e.Offset)
}

func (e *BoundsError) Unwrap() error { return ErrBufferBounds }

// UnknownKeyError reports a type key outside the defined set.
type UnknownKeyError struct {
	Offset int
	Key    byte
}

func (e *UnknownKeyError) Error() string {
	return fmt.Sprintf("unknown type key 0x%02x at offset %d", e.Key, e.Offset)
}

func (e *UnknownKeyError) Unwrap() error { return ErrUnknownTypeKey }

// FieldCountError reports invalid scalar/vector counts in a record header.
type FieldCountError struct {
	Offset  int
	Scalars int32
	Vectors int32
	Reason  string
}

func (e *FieldCountError) Error() string {
	return fmt.Sprintf("invalid field counts (%d scalars, %d vectors) at offset %d: %s",
		e.Scalars, e.Vectors, e.Offset, e.Reason)
}

func (e *FieldCountError) Unwrap() error { return ErrFieldCount }

// DimensionError reports an invalid dimension in a vector field.
type DimensionError struct {
	Offset int
	Field  string
	Dim    int32
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("invalid dimension %d for vector %q at offset %d", e.Dim, e.Field, e.Offset)
}

func (e *DimensionError) Unwrap() error { return ErrDimension }

// SizeError reports a record whose declared size does not match the bytes
// present or consumed.
type SizeError struct {
	Offset   int
	Expected int32
	Actual   int32
}

func (e *SizeError) Error() string {
	return fmt.Sprintf("record size mismatch at offset %d: declared %d, actual %d",
		e.Offset, e.Expected, e.Actual)
}

func (e *SizeError) Unwrap() error { return ErrSizeMismatch }

// UnterminatedStringError reports a string with no NUL terminator before the
// end of the buffer.
type UnterminatedStringError struct {
	Offset int
}

func (e *UnterminatedStringError) Error() string {
	return fmt.Sprintf("unterminated string at offset %d", e.Offset)
}

func (e *UnterminatedStringError) Unwrap() error { return ErrUnterminatedString }
