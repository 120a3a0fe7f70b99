// Package friproof is the binary codec for FRI-style succinct proofs.
//
// A proof carries evaluation openings bound to a Merkle commitment and a
// low-degree proof built from a chain of folded commitments. This package
// wraps the proof package with helpers that take the commitment hash algorithm
// instead of a raw digest width.
//
// # Basic Usage
//
//	cfg, _ := friproof.NewConfig(
//	    proof.WithStateWidth(2),
//	    proof.WithConstraintCount(1),
//	)
//	codec := proof.NewCodec(cfg)
//
//	data, err := friproof.Serialize(codec, p, digest.SHA256)
//	...
//	parsed, err := friproof.Parse(codec, data, digest.SHA256)
//
// # Package Structure
//
//   - proof: configuration, row codec and proof codec
//   - encoding: array, matrix and Merkle proof codecs the proof format is built from
//   - field: fixed-width big-endian field element encoding
//   - digest: supported commitment hash algorithms and their digest widths
//   - errs: error values shared by all packages
package friproof

import (
	"fmt"

	"github.com/arloliu/friproof/digest"
	"github.com/arloliu/friproof/errs"
	"github.com/arloliu/friproof/proof"
)

// NewConfig builds a proof codec configuration. See proof.NewConfig.
func NewConfig(opts ...proof.Option) (proof.Config, error) {
	return proof.NewConfig(opts...)
}

// NewCodec builds a proof codec from options.
func NewCodec(opts ...proof.Option) (*proof.Codec, error) {
	cfg, err := proof.NewConfig(opts...)
	if err != nil {
		return nil, err
	}

	return proof.NewCodec(cfg), nil
}

// Serialize encodes p using the digest width of alg.
func Serialize(codec *proof.Codec, p *proof.Proof, alg digest.Algorithm) ([]byte, error) {
	width, err := digestWidth(alg)
	if err != nil {
		return nil, err
	}

	return codec.SerializeProof(p, width)
}

// Parse decodes a proof encoded with the digest width of alg.
func Parse(codec *proof.Codec, data []byte, alg digest.Algorithm) (*proof.Proof, error) {
	width, err := digestWidth(alg)
	if err != nil {
		return nil, err
	}

	return codec.ParseProof(data, width)
}

// Fingerprint returns the xxHash64 of p's encoding under alg.
func Fingerprint(codec *proof.Codec, p *proof.Proof, alg digest.Algorithm) (uint64, error) {
	width, err := digestWidth(alg)
	if err != nil {
		return 0, err
	}

	return codec.Fingerprint(p, width)
}

func digestWidth(alg digest.Algorithm) (int, error) {
	if !alg.Valid() {
		return 0, fmt.Errorf("%w: %s", errs.ErrUnknownAlgorithm, alg)
	}

	return alg.Size(), nil
}
