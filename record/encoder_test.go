package record

import (
	"bytes"
	"testing"

	"github.com/hupe1980/godmap/atom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeFieldsExactBytes(t *testing.T) {
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

	want := []byte{
		0x01, 0x00, 0x01, 0x00, // code 65537
		39, 0x00, 0x00, 0x00, // size = 23-byte payload + 16
		1, 0x00, 0x00, 0x00, // one scalar
		1, 0x00, 0x00, 0x00, // one vector
		's', 'c', 'a', 'l', 0, 1, 10,
		'a', 'r', 'r', 0, 1,
		1, 0x00, 0x00, 0x00, // one dimension
		3, 0x00, 0x00, 0x00,
		0, 1, 2,
	}
	assert.Equal(t, want, data)
}

func TestEncodeDimensionOrderReversal(t *testing.T) {
	// In-memory dimensions [2,3]; the file must store [3,2].
	vals := make([]atom.Value, 6)
	for i := range vals {
		vals[i] = atom.Int16(int16(i))
	}
	data, err := EncodeFields(
		[]Scalar{{Name: "n", Value: atom.Int8(1)}},
		[]Vector{{Name: "grid", Kind: atom.KindInt16, Dims: []int32{2, 3}, Data: vals}},
	)
	require.NoError(t, err)

	// dim count 2, then dims reversed.
	dimBytes := []byte{2, 0, 0, 0, 3, 0, 0, 0, 2, 0, 0, 0}
	assert.True(t, bytes.Contains(data, dimBytes), "dimensions must be stored reversed")

	rec, err := Parse(NewCursor(data))
	require.NoError(t, err)
	v, ok := rec.Vector("grid")
	require.True(t, ok)
	assert.Equal(t, []int32{2, 3}, v.Dims, "parse restores in-memory order")
	for i, elem := range v.Data {
		e, _ := elem.AsInt16()
		assert.Equal(t, int16(i), e, "flat element order is preserved")
	}
}

func TestEncodeRoundtripAllKinds(t *testing.T) {
	rec := NewRecord()
	rec.SetScalar("c", atom.Int8(-1))
	rec.SetScalar("s", atom.Int16(-2))
	rec.SetScalar("i", atom.Int32(-3))
	rec.SetScalar("l", atom.Int64(-4))
	rec.SetScalar("uc", atom.Uint8(1))
	rec.SetScalar("us", atom.Uint16(2))
	rec.SetScalar("ui", atom.Uint32(3))
	rec.SetScalar("ul", atom.Uint64(4))
	rec.SetScalar("f", atom.Float32(1.5))
	rec.SetScalar("d", atom.Float64(-2.5))
	rec.SetScalar("str", atom.String("fitacf"))
	rec.SetVector("pwr", atom.KindFloat32, []int32{2},
		[]atom.Value{atom.Float32(0.25), atom.Float32(0.5)})
	rec.SetVector("tags", atom.KindString, []int32{2},
		[]atom.Value{atom.String("a"), atom.String("bb")})

	data, err := Encode(rec)
	require.NoError(t, err)

	got, err := Parse(NewCursor(data))
	require.NoError(t, err)

	diff := Diff(rec, got)
	assert.True(t, diff.Empty(), "roundtrip must be lossless: %+v", diff)
}

func TestEncodeDeterministic(t *testing.T) {
	rec := NewRecord()
	rec.SetScalar("b", atom.Int8(2))
	rec.SetScalar("a", atom.Int8(1))
	rec.SetVector("v", atom.KindInt8, []int32{1}, []atom.Value{atom.Int8(0)})

	first, err := Encode(rec)
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		again, err := Encode(rec)
		require.NoError(t, err)
		assert.Equal(t, first, again, "map-backed records encode in a stable order")
	}
}

func TestEncodeRejectsBadVectors(t *testing.T) {
	scalars := []Scalar{{Name: "x", Value: atom.Int8(0)}}

	t.Run("NoDims", func(t *testing.T) {
		_, err := EncodeFields(scalars, []Vector{{Name: "v", Kind: atom.KindInt8}})
		assert.ErrorIs(t, err, ErrDimension)
	})

	t.Run("ElementCountMismatch", func(t *testing.T) {
		_, err := EncodeFields(scalars, []Vector{{
			Name: "v",
			Kind: atom.KindInt8,
			Dims: []int32{3},
			Data: []atom.Value{atom.Int8(0)},
		}})
		assert.ErrorIs(t, err, ErrDimension)
	})

	t.Run("ElementKindMismatch", func(t *testing.T) {
		_, err := EncodeFields(scalars, []Vector{{
			Name: "v",
			Kind: atom.KindInt8,
			Dims: []int32{1},
			Data: []atom.Value{atom.Int32(0)},
		}})
		assert.Error(t, err)
	})

	t.Run("StructuralScalar", func(t *testing.T) {
		_, err := EncodeFields([]Scalar{{Name: "x"}}, nil)
		assert.ErrorIs(t, err, atom.ErrStructuralValue)
	})
}

func TestEncodeRejectsEmbeddedNul(t *testing.T) {
	// NUL terminates names and string values on the wire, so a field
	// carrying one would encode to bytes that cannot re-parse. The encoder
	// must refuse up front.
	vec := Vector{Name: "v", Kind: atom.KindInt8, Dims: []int32{1}, Data: []atom.Value{atom.Int8(0)}}

	t.Run("ScalarName", func(t *testing.T) {
		_, err := EncodeFields([]Scalar{{Name: "a\x00b", Value: atom.Int8(1)}}, []Vector{vec})
		assert.ErrorIs(t, err, atom.ErrEmbeddedNul)
	})

	t.Run("VectorName", func(t *testing.T) {
		bad := vec
		bad.Name = "a\x00b"
		_, err := EncodeFields([]Scalar{{Name: "x", Value: atom.Int8(1)}}, []Vector{bad})
		assert.ErrorIs(t, err, atom.ErrEmbeddedNul)
	})

	t.Run("StringScalarValue", func(t *testing.T) {
		_, err := EncodeFields([]Scalar{{Name: "x", Value: atom.String("a\x00b")}}, []Vector{vec})
		assert.ErrorIs(t, err, atom.ErrEmbeddedNul)
	})

	t.Run("StringVectorElement", func(t *testing.T) {
		bad := Vector{Name: "v", Kind: atom.KindString, Dims: []int32{1},
			Data: []atom.Value{atom.String("a\x00b")}}
		_, err := EncodeFields([]Scalar{{Name: "x", Value: atom.Int8(1)}}, []Vector{bad})
		assert.ErrorIs(t, err, atom.ErrEmbeddedNul)
	})
}

func TestWriteAllConcatenation(t *testing.T) {
	a := NewRecord()
	a.SetScalar("x", atom.Int8(1))
	a.SetVector("v", atom.KindInt8, []int32{1}, []atom.Value{atom.Int8(0)})
	b := NewRecord()
	b.SetScalar("x", atom.Int8(2))
	b.SetVector("v", atom.KindInt8, []int32{1}, []atom.Value{atom.Int8(1)})

	var buf bytes.Buffer
	require.NoError(t, WriteAll(&buf, []*Record{a, b}))

	ea, err := Encode(a)
	require.NoError(t, err)
	eb, err := Encode(b)
	require.NoError(t, err)
	assert.Equal(t, append(ea, eb...), buf.Bytes(), "no separators or padding between records")
}

func BenchmarkParse(b *testing.B) {
	vals := make([]atom.Value, 300)
	for i := range vals {
		vals[i] = atom.Float32(float32(i) * 0.5)
	}
	data, err := EncodeFields(
		[]Scalar{{Name: "nrang", Value: atom.Int16(300)}},
		[]Vector{{Name: "pwr0", Kind: atom.KindFloat32, Dims: []int32{300}, Data: vals}},
	)
	if err != nil {
		b.Fatal(err)
	}

	b.SetBytes(int64(len(data)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Parse(NewCursor(data)); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkEncode(b *testing.B) {
	rec := NewRecord()
	rec.SetScalar("nrang", atom.Int16(300))
	vals := make([]atom.Value, 300)
	for i := range vals {
		vals[i] = atom.Float32(float32(i) * 0.5)
	}
	rec.SetVector("pwr0", atom.KindFloat32, []int32{300}, vals)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Encode(rec); err != nil {
			b.Fatal(err)
		}
	}
}
