package encoding

import (
	"fmt"

	"github.com/arloliu/friproof/errs"
)

// MatrixCodec encodes a count-prefixed sequence of rows, each row an array of
// fixed-width records. Rows may differ in length.
//
// Wire format:
//   - 4 bytes: row count as big-endian uint32
//   - per row: the row encoded with ArrayCodec (its own count, then records)
type MatrixCodec struct {
	row ArrayCodec
}

// NewMatrixCodec creates a matrix codec for records of exactly width bytes.
func NewMatrixCodec(width int) MatrixCodec {
	return MatrixCodec{row: NewArrayCodec(width)}
}

// Width returns the record width in bytes.
func (c MatrixCodec) Width() int {
	return c.row.Width()
}

// Size returns the encoded size of rows.
func (c MatrixCodec) Size(rows [][][]byte) int {
	size := CountSize
	for _, row := range rows {
		size += c.row.Size(len(row))
	}

	return size
}

// Append appends the encoding of rows to dst and returns the extended slice.
// On error dst is returned unchanged.
func (c MatrixCodec) Append(dst []byte, rows [][][]byte) ([]byte, error) {
	if uint64(len(rows)) > MaxCount {
		return dst, fmt.Errorf("%w: %d rows", errs.ErrCountOverflow, len(rows))
	}

	out := c.row.engine.AppendUint32(dst, uint32(len(rows))) //nolint:gosec
	for i, row := range rows {
		var err error
		out, err = c.row.Append(out, row)
		if err != nil {
			return dst, fmt.Errorf("matrix row %d: %w", i, err)
		}
	}

	return out, nil
}

// Encode returns the encoding of rows in a newly allocated slice of exactly Size(rows) bytes.
func (c MatrixCodec) Encode(rows [][][]byte) ([]byte, error) {
	return c.Append(make([]byte, 0, c.Size(rows)), rows)
}

// Decode reads a matrix starting at offset and returns the rows and the offset just past them.
func (c MatrixCodec) Decode(data []byte, offset int) ([][][]byte, int, error) {
	r := NewReaderAt(data, offset)

	rows, err := r.ReadMatrix("matrix", c)
	if err != nil {
		return nil, offset, err
	}

	return rows, r.Offset(), nil
}

// EncodeMatrix encodes rows of width-byte records.
func EncodeMatrix(rows [][][]byte, width int) ([]byte, error) {
	return NewMatrixCodec(width).Encode(rows)
}

// DecodeMatrix decodes a matrix of width-byte records starting at offset.
func DecodeMatrix(data []byte, offset int, width int) ([][][]byte, int, error) {
	return NewMatrixCodec(width).Decode(data, offset)
}
