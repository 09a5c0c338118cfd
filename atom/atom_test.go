package atom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyKindBijection(t *testing.T) {
	keys := []byte{0, 1, 2, 3, 4, 8, 9, 10, 16, 17, 18, 19}

	seen := make(map[Kind]struct{})
	for _, key := range keys {
		k, ok := KindFromKey(key)
		require.True(t, ok, "key %d", key)
		assert.Equal(t, key, k.Key(), "key %d should map back", key)

		_, dup := seen[k]
		assert.False(t, dup, "kind %s mapped by two keys", k)
		seen[k] = struct{}{}
	}
	assert.Equal(t, 12, len(seen))

	for _, key := range []byte{5, 6, 7, 11, 15, 20, 42, 255} {
		_, ok := KindFromKey(key)
		assert.False(t, ok, "key %d must be unknown", key)
	}
}

func TestKindWidths(t *testing.T) {
	widths := map[Kind]int{
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
	for k, want := range widths {
		assert.Equal(t, want, k.Width(), "kind %s", k)
	}
}

func TestAppendParseRoundtrip(t *testing.T) {
	tests := []struct {
		name string
		val  Value
	}{
		{"Int8", Int8(-100)},
		{"Int8Max", Int8(math.MaxInt8)},
		{"Int16", Int16(-30000)},
		{"Int32", Int32(65537)},
		{"Int64", Int64(math.MinInt64)},
		{"Uint8", Uint8(200)},
		{"Uint16", Uint16(math.MaxUint16)},
		{"Uint32", Uint32(math.MaxUint32)},
		{"Uint64", Uint64(math.MaxUint64)},
		{"Float32", Float32(3.14159)},
		{"Float32Neg", Float32(-1.5)},
		{"Float64", Float64(2.718281828459045)},
		{"Float64Inf", Float64(math.Inf(-1))},
		{"String", String("rawacf")},
		{"StringEmpty", String("")},
		{"StringNonAscii", String("北海道")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf, err := Append(nil, tt.val)
			require.NoError(t, err)

			if w := tt.val.Kind.Width(); w > 0 {
				assert.Equal(t, w, len(buf))
			}

			got, n, err := Parse(buf, tt.val.Kind)
			require.NoError(t, err)
			assert.Equal(t, len(buf), n)
			assert.True(t, Equal(tt.val, got), "got %+v, want %+v", got, tt.val)
		})
	}
}

func TestAppendLittleEndian(t *testing.T) {
	buf, err := Append(nil, Int32(65537))
	require.NoError(t, err)
	assert.Equal(t, []byte{0x01, 0x00, 0x01, 0x00}, buf)

	buf, err = Append(nil, Uint16(0x1234))
	require.NoError(t, err)
	assert.Equal(t, []byte{0x34, 0x12}, buf)
}

func TestStringTerminator(t *testing.T) {
	buf, err := Append(nil, String("ab"))
	require.NoError(t, err)
	assert.Equal(t, []byte{'a', 'b', 0}, buf)

	_, _, err = Parse([]byte{'a', 'b'}, KindString)
	assert.ErrorIs(t, err, ErrUnterminatedString)

	// An embedded NUL would truncate on re-parse; encoding refuses it.
	_, err = Append(nil, String("a\x00b"))
	assert.ErrorIs(t, err, ErrEmbeddedNul)
}

func TestStructuralNotEncodable(t *testing.T) {
	_, err := Append(nil, Value{Kind: KindStructural})
	assert.ErrorIs(t, err, ErrStructuralValue)

	_, _, err = Parse([]byte{1, 2, 3, 4}, KindStructural)
	assert.ErrorIs(t, err, ErrStructuralValue)
}

func TestParseShortBuffer(t *testing.T) {
	_, _, err := Parse([]byte{1, 2}, KindInt32)
	assert.ErrorIs(t, err, ErrShortBuffer)
}

func TestEqual(t *testing.T) {
	assert.True(t, Equal(Int16(7), Int16(7)))
	assert.False(t, Equal(Int16(7), Int32(7)), "same payload, different kind")
	assert.False(t, Equal(Uint8(1), Uint8(2)))
	assert.True(t, Equal(Float64(math.NaN()), Float64(math.NaN())), "NaN compares by bits")
	assert.True(t, Equal(String("x"), String("x")))
	assert.False(t, Equal(String("x"), String("y")))
}

func TestKindNames(t *testing.T) {
	assert.Equal(t, "char", KindInt8.String())
	assert.Equal(t, "double", KindFloat64.String())
	assert.Equal(t, "ulong", KindUint64.String())
	assert.Equal(t, "unknown", Kind(99).String())
}
