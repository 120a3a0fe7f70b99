// Package encoding provides the count-prefixed record codecs the proof format is built from.
//
// Three codecs compose into each other:
//
//   - ArrayCodec: a count followed by fixed-width records
//   - MatrixCodec: a row count followed by one ArrayCodec encoding per row
//   - MerkleProofCodec: an ArrayCodec of leaf values followed by a MatrixCodec of sibling nodes
//
// Counts are 4-byte big-endian unsigned integers (CountSize). Records are
// copied verbatim; the codecs never interpret their contents.
//
// # Usage
//
//	codec := encoding.NewMerkleProofCodec(valueWidth, digestWidth)
//	data, err := codec.Encode(encoding.MerkleProof{Values: leaves, Nodes: paths})
//	if err != nil {
//	    return err
//	}
//
//	proof, next, err := codec.Decode(data, 0)
//
// Larger layouts are assembled with the Append methods and parsed with a Reader,
// which names the field being read in every error:
//
//	r := encoding.NewReader(data)
//	root, err := r.ReadBytes("root", 32)
//	values, err := r.ReadArray("values", encoding.NewArrayCodec(valueWidth))
//
// # Errors
//
// Encoders return errs.ErrRecordWidth for a record of the wrong length and
// errs.ErrCountOverflow for counts beyond MaxCount. Decoders return an
// *errs.DecodeError wrapping errs.ErrShortBuffer when the input ends inside a
// field, or errs.ErrInvalidCount when a declared count cannot fit in the
// remaining input. Counts are validated before any storage is allocated.
//
// # Thread Safety
//
// Codecs are immutable values and safe for concurrent use. A Reader is not.
package encoding
