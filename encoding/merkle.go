package encoding

import (
	"bytes"
	"fmt"
)

// MerkleProof is an authentication bundle for a batch of leaves against one root:
// the opened leaf values and, per leaf, the sibling hashes needed to recompute the root.
type MerkleProof struct {
	Values [][]byte   // opened leaf values, all of the same width
	Nodes  [][][]byte // sibling-hash path per leaf; path lengths may differ
}

// Equal reports whether p and other hold the same values and nodes.
// Nil and empty slices are considered equal.
func (p MerkleProof) Equal(other MerkleProof) bool {
	return RecordsEqual(p.Values, other.Values) && MatrixEqual(p.Nodes, other.Nodes)
}

// MerkleProofCodec encodes a MerkleProof as its values array followed by its nodes matrix.
//
// The leaf value width is supplied by the caller's context: evaluation leaves
// and degree-proof leaves have different widths.
type MerkleProofCodec struct {
	values ArrayCodec
	nodes  MatrixCodec
}

// NewMerkleProofCodec creates a codec for leaves of valueWidth bytes and nodes of nodeWidth bytes.
func NewMerkleProofCodec(valueWidth, nodeWidth int) MerkleProofCodec {
	return MerkleProofCodec{
		values: NewArrayCodec(valueWidth),
		nodes:  NewMatrixCodec(nodeWidth),
	}
}

// ValueWidth returns the leaf value width in bytes.
func (c MerkleProofCodec) ValueWidth() int {
	return c.values.Width()
}

// NodeWidth returns the node width in bytes.
func (c MerkleProofCodec) NodeWidth() int {
	return c.nodes.Width()
}

// Size returns the encoded size of p.
func (c MerkleProofCodec) Size(p MerkleProof) int {
	return c.values.Size(len(p.Values)) + c.nodes.Size(p.Nodes)
}

// Append appends the encoding of p to dst and returns the extended slice.
// On error dst is returned unchanged.
func (c MerkleProofCodec) Append(dst []byte, p MerkleProof) ([]byte, error) {
	out, err := c.values.Append(dst, p.Values)
	if err != nil {
		return dst, fmt.Errorf("merkle proof values: %w", err)
	}

	out, err = c.nodes.Append(out, p.Nodes)
	if err != nil {
		return dst, fmt.Errorf("merkle proof nodes: %w", err)
	}

	return out, nil
}

// Encode returns the encoding of p in a newly allocated slice of exactly Size(p) bytes.
func (c MerkleProofCodec) Encode(p MerkleProof) ([]byte, error) {
	return c.Append(make([]byte, 0, c.Size(p)), p)
}

// Decode reads a MerkleProof starting at offset and returns it with the offset just past it.
func (c MerkleProofCodec) Decode(data []byte, offset int) (MerkleProof, int, error) {
	r := NewReaderAt(data, offset)

	p, err := r.ReadMerkleProof("merkleProof", c)
	if err != nil {
		return MerkleProof{}, offset, err
	}

	return p, r.Offset(), nil
}

// EncodeMerkleProof encodes p with leaves of valueWidth bytes and nodes of nodeWidth bytes.
func EncodeMerkleProof(p MerkleProof, nodeWidth, valueWidth int) ([]byte, error) {
	return NewMerkleProofCodec(valueWidth, nodeWidth).Encode(p)
}

// DecodeMerkleProof decodes a MerkleProof starting at offset.
func DecodeMerkleProof(data []byte, offset int, nodeWidth, valueWidth int) (MerkleProof, int, error) {
	return NewMerkleProofCodec(valueWidth, nodeWidth).Decode(data, offset)
}

// RecordsEqual reports whether two record arrays hold the same bytes.
// Nil and empty slices are considered equal.
func RecordsEqual(a, b [][]byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !bytes.Equal(a[i], b[i]) {
			return false
		}
	}

	return true
}

// MatrixEqual reports whether two record matrices hold the same bytes.
// Nil and empty slices are considered equal.
func MatrixEqual(a, b [][][]byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !RecordsEqual(a[i], b[i]) {
			return false
		}
	}

	return true
}
