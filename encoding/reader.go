package encoding

import (
	"fmt"
	"math"

	"github.com/arloliu/friproof/endian"
	"github.com/arloliu/friproof/errs"
)

// Reader reads friproof fields from a byte slice while tracking the current offset.
//
// Every read is bounds-checked. A failed read returns an *errs.DecodeError naming
// the field and leaves the offset at the start of that field. Values returned by
// the Reader are copies and never alias the input.
type Reader struct {
	data   []byte
	offset int
	engine endian.EndianEngine
}

// NewReader creates a Reader positioned at the start of data.
func NewReader(data []byte) *Reader {
	return NewReaderAt(data, 0)
}

// NewReaderAt creates a Reader positioned at offset.
// An offset outside data makes every subsequent read fail with ErrShortBuffer.
func NewReaderAt(data []byte, offset int) *Reader {
	return &Reader{data: data, offset: offset, engine: endian.GetBigEndianEngine()}
}

// Offset returns the current read offset.
func (r *Reader) Offset() int {
	return r.offset
}

// Remaining returns the number of unread bytes.
func (r *Reader) Remaining() int {
	if r.offset < 0 || r.offset >= len(r.data) {
		return 0
	}

	return len(r.data) - r.offset
}

// ReadBytes reads exactly n bytes and returns them in a fresh slice.
func (r *Reader) ReadBytes(field string, n int) ([]byte, error) {
	b, err := r.take(field, n)
	if err != nil {
		return nil, err
	}

	out := make([]byte, n)
	copy(out, b)

	return out, nil
}

// ReadUint8 reads a single unsigned byte.
func (r *Reader) ReadUint8(field string) (uint8, error) {
	b, err := r.take(field, 1)
	if err != nil {
		return 0, err
	}

	return b[0], nil
}

// ReadCount reads a CountSize-byte big-endian count prefix.
func (r *Reader) ReadCount(field string) (int, error) {
	b, err := r.take(field, CountSize)
	if err != nil {
		return 0, err
	}

	return int(r.engine.Uint32(b)), nil
}

// ReadArray reads a count-prefixed array of records encoded by c.
func (r *Reader) ReadArray(field string, c ArrayCodec) ([][]byte, error) {
	if c.width <= 0 {
		return nil, fmt.Errorf("%s: %w: record width %d", field, errs.ErrRecordWidth, c.width)
	}

	start := r.offset
	count, err := r.ReadCount(field + ".count")
	if err != nil {
		return nil, err
	}

	if err := r.EnsureCount(field+".records", count, c.width); err != nil {
		r.offset = start
		return nil, err
	}

	n := count * c.width
	buf := make([]byte, n)
	copy(buf, r.data[r.offset:r.offset+n])
	r.offset += n

	records := make([][]byte, count)
	for i := range records {
		lo := i * c.width
		hi := lo + c.width
		records[i] = buf[lo:hi:hi]
	}

	return records, nil
}

// ReadMatrix reads a count-prefixed sequence of arrays encoded by c.
func (r *Reader) ReadMatrix(field string, c MatrixCodec) ([][][]byte, error) {
	start := r.offset
	rowCount, err := r.ReadCount(field + ".rows")
	if err != nil {
		return nil, err
	}

	// every row carries at least its own count prefix
	if err := r.EnsureCount(field+".rows", rowCount, CountSize); err != nil {
		r.offset = start
		return nil, err
	}

	rows := make([][][]byte, rowCount)
	for i := range rows {
		rows[i], err = r.ReadArray(fmt.Sprintf("%s[%d]", field, i), c.row)
		if err != nil {
			r.offset = start
			return nil, err
		}
	}

	return rows, nil
}

// ReadMerkleProof reads a MerkleProof encoded by c.
func (r *Reader) ReadMerkleProof(field string, c MerkleProofCodec) (MerkleProof, error) {
	start := r.offset

	values, err := r.ReadArray(field+".values", c.values)
	if err != nil {
		return MerkleProof{}, err
	}

	nodes, err := r.ReadMatrix(field+".nodes", c.nodes)
	if err != nil {
		r.offset = start
		return MerkleProof{}, err
	}

	return MerkleProof{Values: values, Nodes: nodes}, nil
}

func (r *Reader) take(field string, n int) ([]byte, error) {
	have := r.Remaining()
	if r.offset < 0 || n > have {
		return nil, &errs.DecodeError{Field: field, Offset: r.offset, Need: n, Have: have, Err: errs.ErrShortBuffer}
	}

	b := r.data[r.offset : r.offset+n]
	r.offset += n

	return b, nil
}

// EnsureCount verifies that count items of at least width bytes each fit in the
// remaining input, without consuming anything. Decoders call it before allocating
// storage for count items.
func (r *Reader) EnsureCount(field string, count, width int) error {
	width = max(width, 1)
	have := r.Remaining()
	if count >= 0 && (count == 0 || count <= have/width) {
		return nil
	}

	need := math.MaxInt
	if count >= 0 && count <= math.MaxInt/width {
		need = count * width
	}

	return &errs.DecodeError{Field: field, Offset: r.offset, Need: need, Have: have, Err: errs.ErrInvalidCount}
}
