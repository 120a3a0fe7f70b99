package encoding

import (
	"testing"

	"github.com/arloliu/friproof/errs"
	"github.com/stretchr/testify/require"
)

func TestArrayCodec_Encode(t *testing.T) {
	codec := NewArrayCodec(2)

	data, err := codec.Encode([][]byte{{1, 2}, {3, 4}, {5, 6}})
	require.NoError(t, err)
	require.Equal(t, []byte{0, 0, 0, 3, 1, 2, 3, 4, 5, 6}, data)
	require.Equal(t, codec.Size(3), len(data))
	require.Equal(t, len(data), cap(data), "Encode should allocate exactly once")
}

func TestArrayCodec_Empty(t *testing.T) {
	codec := NewArrayCodec(32)

	for _, records := range [][][]byte{nil, {}} {
		data, err := codec.Encode(records)
		require.NoError(t, err)
		require.Equal(t, []byte{0, 0, 0, 0}, data)

		decoded, next, err := codec.Decode(data, 0)
		require.NoError(t, err)
		require.NotNil(t, decoded)
		require.Empty(t, decoded)
		require.Equal(t, CountSize, next)
	}
}

func TestArrayCodec_Decode(t *testing.T) {
	data := []byte{0xaa, 0, 0, 0, 2, 1, 2, 3, 4, 0xbb}

	records, next, err := DecodeArray(data, 1, 2)
	require.NoError(t, err)
	require.Equal(t, [][]byte{{1, 2}, {3, 4}}, records)
	require.Equal(t, 9, next)

	// decoded records must not alias the input
	data[5] = 0xff
	require.Equal(t, byte(1), records[0][0])

	// records must not share spare capacity with their neighbours
	records[0] = append(records[0], 9)
	require.Equal(t, []byte{3, 4}, records[1])
}

func TestArrayCodec_RoundTrip(t *testing.T) {
	tests := []struct {
		name    string
		width   int
		records [][]byte
	}{
		{"single byte records", 1, [][]byte{{0}, {255}, {7}}},
		{"digest records", 32, [][]byte{filled(32, 1), filled(32, 2)}},
		{"one record", 5, [][]byte{{1, 2, 3, 4, 5}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := EncodeArray(tt.records, tt.width)
			require.NoError(t, err)

			decoded, next, err := DecodeArray(data, 0, tt.width)
			require.NoError(t, err)
			require.Equal(t, tt.records, decoded)
			require.Equal(t, len(data), next)
		})
	}
}

func TestArrayCodec_EncodeErrors(t *testing.T) {
	t.Run("record width mismatch", func(t *testing.T) {
		dst := []byte{9}
		out, err := NewArrayCodec(2).Append(dst, [][]byte{{1, 2}, {3}})

		require.ErrorIs(t, err, errs.ErrRecordWidth)
		require.Contains(t, err.Error(), "record 1")
		require.Equal(t, []byte{9}, out)
	})

	t.Run("zero width", func(t *testing.T) {
		_, err := EncodeArray(nil, 0)
		require.ErrorIs(t, err, errs.ErrRecordWidth)
	})
}

func TestArrayCodec_DecodeErrors(t *testing.T) {
	t.Run("truncated count", func(t *testing.T) {
		_, next, err := DecodeArray([]byte{0, 0, 1}, 0, 4)
		require.ErrorIs(t, err, errs.ErrShortBuffer)
		require.Equal(t, 0, next)

		var de *errs.DecodeError
		require.ErrorAs(t, err, &de)
		require.Equal(t, "array.count", de.Field)
		require.Equal(t, CountSize, de.Need)
		require.Equal(t, 3, de.Have)
	})

	t.Run("count exceeds data", func(t *testing.T) {
		data := []byte{0, 0, 0, 3, 1, 2, 3, 4}
		_, _, err := DecodeArray(data, 0, 2)
		require.ErrorIs(t, err, errs.ErrInvalidCount)

		var de *errs.DecodeError
		require.ErrorAs(t, err, &de)
		require.Equal(t, "array.records", de.Field)
		require.Equal(t, 6, de.Need)
		require.Equal(t, 4, de.Have)
	})

	t.Run("huge count is rejected before allocation", func(t *testing.T) {
		data := []byte{0xff, 0xff, 0xff, 0xff}
		_, _, err := DecodeArray(data, 0, 1<<20)
		require.ErrorIs(t, err, errs.ErrInvalidCount)
	})

	t.Run("offset past end", func(t *testing.T) {
		_, _, err := DecodeArray([]byte{0, 0, 0, 0}, 10, 1)
		require.ErrorIs(t, err, errs.ErrShortBuffer)
	})

	t.Run("negative offset", func(t *testing.T) {
		_, _, err := DecodeArray([]byte{0, 0, 0, 0}, -1, 1)
		require.ErrorIs(t, err, errs.ErrShortBuffer)
	})

	t.Run("zero width", func(t *testing.T) {
		_, _, err := DecodeArray([]byte{0, 0, 0, 0}, 0, 0)
		require.ErrorIs(t, err, errs.ErrRecordWidth)
	})
}

func filled(n int, b byte) []byte {
	out := make([]byte, n)
	for i := range out {
		out[i] = b
	}

	return out
}
