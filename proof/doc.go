// Package proof serializes FRI-style proof objects and the evaluation rows they open.
//
// A Codec is built from an immutable Config describing the field element width and
// the register counts of the computation:
//
//	cfg, err := proof.NewConfig(
//	    proof.WithFieldElementWidth(32),
//	    proof.WithStateWidth(4),
//	    proof.WithSecretInputCount(1),
//	    proof.WithConstraintCount(3),
//	)
//	codec := proof.NewCodec(cfg)
//
// # Evaluation Rows
//
// MergeRow encodes the values at one position of the register traces as one block
// of field elements: state, secret inputs, boundary values, constraints. SplitRow
// reverses it.
//
// # Proofs
//
// SerializeProof writes a Proof as an evaluation block (root, bpc, depth, leaf
// values, sibling paths) followed by a degree block (root, linear-combination
// proof, folding rounds, remainder). The output size is computed from the proof's
// shape before encoding, so the buffer is allocated once. ParseProof reverses it
// and fails with an *errs.DecodeError naming the field being read when the input
// is truncated or declares counts it cannot hold.
//
// Verifying Merkle paths or field membership is left to the caller.
package proof
