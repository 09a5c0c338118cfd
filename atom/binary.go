package atom

import (
	"bytes"
	"encoding/binary"
	"errors"
	"math"
	"strings"
)

var (
	// ErrStructuralValue is returned when the structural marker is used
	// where a field payload is expected. Key 0 is reserved and carries no
	// encodable value.
	ErrStructuralValue = errors.New("structural kind is not a field value")

	// ErrUnterminatedString is returned when a NUL terminator is not found
	// before the end of the buffer.
	ErrUnterminatedString = errors.New("unterminated string")

	// ErrShortBuffer is returned when a fixed-width decode runs past the
	// end of the buffer.
	ErrShortBuffer = errors.New("short buffer")

	// ErrEmbeddedNul is returned when a string to be encoded contains a NUL
	// byte. NUL is the wire terminator, so such a string cannot survive a
	// round trip.
	ErrEmbeddedNul = errors.New("string contains NUL byte")
)

// Append encodes v in wire form (little-endian, strings NUL-terminated) and
// returns the extended buffer.
func Append(buf []byte, v Value) ([]byte, error) {
	switch v.Kind {
	case KindInt8:
		return append(buf, byte(int8(v.I64))), nil
	case KindInt16:
		return binary.LittleEndian.AppendUint16(buf, uint16(int16(v.I64))), nil
	case KindInt32:
		return binary.LittleEndian.AppendUint32(buf, uint32(int32(v.I64))), nil
	case KindInt64:
		return binary.LittleEndian.AppendUint64(buf, uint64(v.I64)), nil
	case KindUint8:
		return append(buf, uint8(v.U64)), nil
	case KindUint16:
		return binary.LittleEndian.AppendUint16(buf, uint16(v.U64)), nil
	case KindUint32:
		return binary.LittleEndian.AppendUint32(buf, uint32(v.U64)), nil
	case KindUint64:
		return binary.LittleEndian.AppendUint64(buf, v.U64), nil
	case KindFloat32:
		return binary.LittleEndian.AppendUint32(buf, math.Float32bits(float32(v.F64))), nil
	case KindFloat64:
		return binary.LittleEndian.AppendUint64(buf, math.Float64bits(v.F64)), nil
	case KindString:
		if strings.IndexByte(v.S, 0) >= 0 {
			return nil, ErrEmbeddedNul
		}
		buf = append(buf, v.S...)
		return append(buf, 0), nil
	case KindStructural:
		return nil, ErrStructuralValue
	default:
		return nil, ErrStructuralValue
	}
}

// Parse decodes one value of kind k from the front of data and returns the
// value together with the number of bytes consumed. Errors do not carry
// positions; callers that track a cursor wrap them with the absolute offset.
func Parse(data []byte, k Kind) (Value, int, error) {
	w := k.Width()
	if w > 0 && len(data) < w {
		return Value{}, 0, ErrShortBuffer
	}

	switch k {
	case KindInt8:
		return Int8(int8(data[0])), 1, nil
	case KindInt16:
		return Int16(int16(binary.LittleEndian.Uint16(data))), 2, nil
	case KindInt32:
		return Int32(int32(binary.LittleEndian.Uint32(data))), 4, nil
	case KindInt64:
		return Int64(int64(binary.LittleEndian.Uint64(data))), 8, nil
	case KindUint8:
		return Uint8(data[0]), 1, nil
	case KindUint16:
		return Uint16(binary.LittleEndian.Uint16(data)), 2, nil
	case KindUint32:
		return Uint32(binary.LittleEndian.Uint32(data)), 4, nil
	case KindUint64:
		return Uint64(binary.LittleEndian.Uint64(data)), 8, nil
	case KindFloat32:
		return Float32(math.Float32frombits(binary.LittleEndian.Uint32(data))), 4, nil
	case KindFloat64:
		return Float64(math.Float64frombits(binary.LittleEndian.Uint64(data))), 8, nil
	case KindString:
		i := bytes.IndexByte(data, 0)
		if i < 0 {
			return Value{}, 0, ErrUnterminatedString
		}
		return String(string(data[:i])), i + 1, nil
	case KindStructural:
		return Value{}, 0, ErrStructuralValue
	default:
		return Value{}, 0, ErrStructuralValue
	}
}
