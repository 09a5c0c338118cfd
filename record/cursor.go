package record

import (
	"errors"

	"github.com/hupe1980/godmap/atom"
)

// Cursor is a positional, bounds-checked reader over an in-memory buffer.
// The position only moves forward and every failure carries the absolute
// byte offset at which it was detected.
//
// A Cursor is not safe for concurrent use; independent buffers get
// independent cursors and need no synchronization.
type Cursor struct {
	buf []byte
	pos int
}

// NewCursor returns a cursor positioned at the start of buf.
func NewCursor(buf []byte) *Cursor {
	return &Cursor{buf: buf}
}

// Pos returns the current absolute byte offset.
func (c *Cursor) Pos() int { return c.pos }

// Len returns the total buffer length.
func (c *Cursor) Len() int { return len(c.buf) }

// Remaining returns the number of unread bytes.
func (c *Cursor) Remaining() int { return len(c.buf) - c.pos }

// ReadValue decodes one value of the given kind at the current position and
// advances past it.
func (c *Cursor) ReadValue(kind atom.Kind) (atom.Value, error) {
	if w := kind.Width(); w > 0 && c.pos+w > len(c.buf) {
		return atom.Value{}, &BoundsError{Offset: c.pos}
	}

	v, n, err := atom.Parse(c.buf[c.pos:], kind)
	if err != nil {
		switch {
		case errors.Is(err, atom.ErrUnterminatedString):
			return atom.Value{}, &UnterminatedStringError{Offset: c.pos}
		case errors.Is(err, atom.ErrShortBuffer):
			return atom.Value{}, &BoundsError{Offset: c.pos}
		default:
			return atom.Value{}, err
		}
	}
	c.pos += n
	return v, nil
}

// ReadKey reads one raw type-key byte.
func (c *Cursor) ReadKey() (byte, error) {
	if c.pos >= len(c.buf) {
		return 0, &BoundsError{Offset: c.pos}
	}
	b := c.buf[c.pos]
	c.pos++
	return b, nil
}

// ReadInt32 reads a little-endian int32.
func (c *Cursor) ReadInt32() (int32, error) {
	v, err := c.ReadValue(atom.KindInt32)
	if err != nil {
		return 0, err
	}
	n, _ := v.AsInt32()
	return n, nil
}

// ReadString reads a NUL-terminated string.
func (c *Cursor) ReadString() (string, error) {
	v, err := c.ReadValue(atom.KindString)
	if err != nil {
		return "", err
	}
	s, _ := v.AsString()
	return s, nil
}
