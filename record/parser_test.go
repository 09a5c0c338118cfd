package record

import (
	"encoding/binary"
	"testing"

	"github.com/hupe1980/godmap/atom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testRecordBytes returns a minimal well-formed record: one int8 scalar
// "scal"=10 and one int8 vector "arr"=[0,1,2] with dimensions [3].
func testRecordBytes(t *testing.T) []byte {
	t.Helper()
	data, err := EncodeFields(
		[]Scalar{{Name: "scal", Value: atom.Int8(10)}},
		[]Vector{{
			Name: "arr",
			Kind: atom.KindInt8,
			Dims: []int32{3},
			Data: []atom.Value{atom.Int8(0), atom.Int8(1), atom.Int8(2)},
		}},
	)
	require.NoError(t, err)
	return data
}

// header builds the 16-byte record wrapper followed by payload.
func header(size, numScalars, numVectors int32, payload ...byte) []byte {
	buf := binary.LittleEndian.AppendUint32(nil, uint32(RecordCode))
	buf = binary.LittleEndian.AppendUint32(buf, uint32(size))
	buf = binary.LittleEndian.AppendUint32(buf, uint32(numScalars))
	buf = binary.LittleEndian.AppendUint32(buf, uint32(numVectors))
	return append(buf, payload...)
}

func TestParseRecord(t *testing.T) {
	data := testRecordBytes(t)

	c := NewCursor(data)
	rec, err := Parse(c)
	require.NoError(t, err)
	assert.Equal(t, len(data), c.Pos(), "cursor should stop at record end")

	s, ok := rec.Scalar("scal")
	require.True(t, ok)
	got, ok := s.Value.AsInt8()
	require.True(t, ok)
	assert.Equal(t, int8(10), got)

	v, ok := rec.Vector("arr")
	require.True(t, ok)
	assert.Equal(t, atom.KindInt8, v.Kind)
	assert.Equal(t, []int32{3}, v.Dims)
	require.Len(t, v.Data, 3)
	for i, elem := range v.Data {
		e, ok := elem.AsInt8()
		require.True(t, ok)
		assert.Equal(t, int8(i), e)
	}
	assert.Empty(t, rec.Duplicates)
}

func TestReadAllThreeRecords(t *testing.T) {
	var buf []byte
	for i := int8(0); i < 3; i++ {
		data, err := EncodeFields(
			[]Scalar{{Name: "seq", Value: atom.Int8(i)}},
			[]Vector{{
				Name: "arr",
				Kind: atom.KindInt8,
				Dims: []int32{1},
				Data: []atom.Value{atom.Int8(i)},
			}},
		)
		require.NoError(t, err)
		buf = append(buf, data...)
	}

	records, err := ReadAll(buf)
	require.NoError(t, err)
	require.Len(t, records, 3)

	for i, rec := range records {
		s, ok := rec.Scalar("seq")
		require.True(t, ok)
		got, _ := s.Value.AsInt8()
		assert.Equal(t, int8(i), got, "records must come back in file order")
	}
}

func TestParseNegativeSize(t *testing.T) {
	// Only code and size present: the size check must fail before any
	// count is read, or we would see a bounds error instead.
	negSize := int32(-5)
	buf := binary.LittleEndian.AppendUint32(nil, uint32(RecordCode))
	buf = binary.LittleEndian.AppendUint32(buf, uint32(negSize))

	_, err := Parse(NewCursor(buf))
	assert.ErrorIs(t, err, ErrSizeMismatch)

	var se *SizeError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, int32(-5), se.Expected)
	assert.Equal(t, 4, se.Offset)
}

func TestParseTruncatedBuffer(t *testing.T) {
	data := testRecordBytes(t)

	// One byte short: the declared size exceeds the remaining buffer and
	// must fail, never silently truncate.
	_, err := Parse(NewCursor(data[:len(data)-1]))
	assert.ErrorIs(t, err, ErrSizeMismatch)
}

func TestParseZeroCounts(t *testing.T) {
	for _, tt := range []struct {
		name    string
		scalars int32
		vectors int32
	}{
		{"ZeroScalars", 0, 1},
		{"ZeroVectors", 1, 0},
		{"BothZero", 0, 0},
	} {
		t.Run(tt.name, func(t *testing.T) {
			buf := header(16, tt.scalars, tt.vectors)
			_, err := Parse(NewCursor(buf))
			assert.ErrorIs(t, err, ErrFieldCount)
		})
	}
}

func TestParseCountsExceedSize(t *testing.T) {
	buf := header(20, 100, 100, 1, 2, 3, 4)
	_, err := Parse(NewCursor(buf))
	assert.ErrorIs(t, err, ErrFieldCount)
}

func TestParseUnknownTypeKey(t *testing.T) {
	// Scalar "x" with undefined key 5.
	payload := []byte{'x', 0, 5, 0}
	buf := header(int32(16+len(payload)), 1, 1, payload...)

	_, err := Parse(NewCursor(buf))
	assert.ErrorIs(t, err, ErrUnknownTypeKey)

	var ke *UnknownKeyError
	require.ErrorAs(t, err, &ke)
	assert.Equal(t, byte(5), ke.Key)
	assert.Equal(t, 18, ke.Offset, "offset of the key byte itself")
}

func TestParseStructuralKeyRejected(t *testing.T) {
	// Key 0 is defined but never a legal field payload.
	payload := []byte{'x', 0, 0, 0}
	buf := header(int32(16+len(payload)), 1, 1, payload...)

	_, err := Parse(NewCursor(buf))
	assert.ErrorIs(t, err, ErrUnknownTypeKey)
}

func TestParseSlistPlaceholderDimension(t *testing.T) {
	scalars := []Scalar{{Name: "nrang", Value: atom.Int16(75)}}

	slist := Vector{Name: "slist", Kind: atom.KindInt16, Dims: []int32{0}}
	data, err := EncodeFields(scalars, []Vector{slist})
	require.NoError(t, err)

	rec, err := Parse(NewCursor(data))
	require.NoError(t, err, "slist may carry a non-positive placeholder dimension")
	v, ok := rec.Vector("slist")
	require.True(t, ok)
	assert.Equal(t, []int32{0}, v.Dims)
	assert.Empty(t, v.Data)

	// The same bytes under any other field name are invalid.
	bad := Vector{Name: "other", Kind: atom.KindInt16, Dims: []int32{0}}
	data, err = EncodeFields(scalars, []Vector{bad})
	require.NoError(t, err)

	_, err = Parse(NewCursor(data))
	assert.ErrorIs(t, err, ErrDimension)

	var de *DimensionError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, "other", de.Field)
	assert.Equal(t, int32(0), de.Dim)
}

func TestParseDimensionExceedsSize(t *testing.T) {
	// Vector "v" (int8) declaring one dimension far larger than the
	// record could hold.
	payload := []byte{'v', 0, 1}
	payload = binary.LittleEndian.AppendUint32(payload, 1)     // dim count
	payload = binary.LittleEndian.AppendUint32(payload, 1<<30) // dim
	payload = append(payload, make([]byte, 64)...)

	buf := header(0, 1, 1, 'x', 0, 1, 7) // scalar "x" int8(7) first
	buf = append(buf, payload...)
	binary.LittleEndian.PutUint32(buf[4:8], uint32(len(buf)))

	_, err := Parse(NewCursor(buf))
	assert.ErrorIs(t, err, ErrDimension)
}

func TestParseSizeConsumedMismatch(t *testing.T) {
	data := testRecordBytes(t)

	// Declare one byte more than the record actually uses and provide it,
	// so the header checks pass but the final accounting does not.
	grown := make([]byte, len(data)+1)
	copy(grown, data)
	binary.LittleEndian.PutUint32(grown[4:8], uint32(len(data)+1))

	_, err := Parse(NewCursor(grown))
	assert.ErrorIs(t, err, ErrSizeMismatch)

	var se *SizeError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, int32(len(data)+1), se.Expected)
	assert.Equal(t, int32(len(data)), se.Actual)
}

func TestParseUnterminatedName(t *testing.T) {
	// Name runs to the end of the buffer with no NUL.
	payload := []byte{'a', 'b', 'c'}
	buf := header(int32(16+len(payload)), 1, 1, payload...)

	_, err := Parse(NewCursor(buf))
	assert.ErrorIs(t, err, ErrUnterminatedString)
}

func TestParseDuplicateFieldNames(t *testing.T) {
	data, err := EncodeFields(
		[]Scalar{
			{Name: "dup", Value: atom.Int8(1)},
			{Name: "dup", Value: atom.Int8(2)},
		},
		[]Vector{{
			Name: "arr",
			Kind: atom.KindInt8,
			Dims: []int32{1},
			Data: []atom.Value{atom.Int8(0)},
		}},
	)
	require.NoError(t, err)

	rec, err := Parse(NewCursor(data))
	require.NoError(t, err)

	assert.Equal(t, []string{"dup"}, rec.Duplicates)
	s, ok := rec.Scalar("dup")
	require.True(t, ok)
	got, _ := s.Value.AsInt8()
	assert.Equal(t, int8(2), got, "last write wins")
}

func TestReadAllAbortsOnCorruptRecord(t *testing.T) {
	good := testRecordBytes(t)

	buf := append([]byte{}, good...)
	bad := append([]byte{}, good...)
	binary.LittleEndian.PutUint32(bad[4:8], uint32(1<<30)) // corrupt size
	buf = append(buf, bad...)
	buf = append(buf, good...)

	records, err := ReadAll(buf)
	assert.Nil(t, records, "one record's failure fails the whole read")
	assert.ErrorIs(t, err, ErrSizeMismatch)
	assert.ErrorContains(t, err, "record 1", "error names the failing record")
}

func TestCursorBounds(t *testing.T) {
	c := NewCursor([]byte{1, 2})
	_, err := c.ReadInt32()
	assert.ErrorIs(t, err, ErrBufferBounds)

	var be *BoundsError
	require.ErrorAs(t, err, &be)
	assert.Equal(t, 0, be.Offset)
}
