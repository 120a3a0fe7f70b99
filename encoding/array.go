package encoding

import (
	"fmt"
	"math"

	"github.com/arloliu/friproof/endian"
	"github.com/arloliu/friproof/errs"
)

// CountSize is the width in bytes of array and matrix count prefixes.
const CountSize = 4

// MaxCount is the largest record or row count a count prefix can carry.
const MaxCount = math.MaxUint32

// ArrayCodec encodes a count-prefixed sequence of fixed-width byte records.
//
// Wire format:
//   - 4 bytes: record count as big-endian uint32
//   - count × width bytes: records, concatenated in order
//
// The codec is immutable and stateless; it is returned by value and can be
// shared across goroutines.
type ArrayCodec struct {
	engine endian.EndianEngine
	width  int
}

// NewArrayCodec creates an array codec for records of exactly width bytes.
func NewArrayCodec(width int) ArrayCodec {
	return ArrayCodec{engine: endian.GetBigEndianEngine(), width: width}
}

// Width returns the record width in bytes.
func (c ArrayCodec) Width() int {
	return c.width
}

// Size returns the encoded size of an array holding count records.
func (c ArrayCodec) Size(count int) int {
	return CountSize + count*c.width
}

// Append appends the encoding of records to dst and returns the extended slice.
//
// Every record must be exactly Width() bytes long.
//
// Returns:
//   - []byte: dst with the encoded array appended (dst unchanged on error)
//   - error: ErrRecordWidth for a zero width or a record of the wrong length,
//     ErrCountOverflow if there are more than MaxCount records
func (c ArrayCodec) Append(dst []byte, records [][]byte) ([]byte, error) {
	if c.width <= 0 {
		return dst, fmt.Errorf("%w: record width %d", errs.ErrRecordWidth, c.width)
	}
	if uint64(len(records)) > MaxCount {
		return dst, fmt.Errorf("%w: %d records", errs.ErrCountOverflow, len(records))
	}
	for i, rec := range records {
		if len(rec) != c.width {
			return dst, fmt.Errorf("%w: record %d is %d bytes, want %d", errs.ErrRecordWidth, i, len(rec), c.width)
		}
	}

	dst = c.engine.AppendUint32(dst, uint32(len(records))) //nolint:gosec
	for _, rec := range records {
		dst = append(dst, rec...)
	}

	return dst, nil
}

// Encode returns the encoding of records in a newly allocated slice of exactly Size(len(records)) bytes.
func (c ArrayCodec) Encode(records [][]byte) ([]byte, error) {
	return c.Append(make([]byte, 0, c.Size(len(records))), records)
}

// Decode reads an array starting at offset.
//
// The declared count is checked against the remaining input before any record
// storage is allocated. Decoded records are copied into one fresh allocation and
// never alias data.
//
// Returns:
//   - [][]byte: decoded records (non-nil, possibly empty)
//   - int: offset just past the array
//   - error: *errs.DecodeError wrapping ErrShortBuffer or ErrInvalidCount
func (c ArrayCodec) Decode(data []byte, offset int) ([][]byte, int, error) {
	r := NewReaderAt(data, offset)

	records, err := r.ReadArray("array", c)
	if err != nil {
		return nil, offset, err
	}

	return records, r.Offset(), nil
}

// EncodeArray encodes records of width bytes each with a count prefix.
func EncodeArray(records [][]byte, width int) ([]byte, error) {
	return NewArrayCodec(width).Encode(records)
}

// DecodeArray decodes a count-prefixed array of width-byte records starting at offset.
func DecodeArray(data []byte, offset int, width int) ([][]byte, int, error) {
	return NewArrayCodec(width).Decode(data, offset)
}
