// Package digest names the hash algorithms a proof can be committed with and
// resolves each one to the digest width used for Merkle roots and nodes.
//
// The proof codec only needs the width; New is provided so producers and
// verifiers build their Merkle trees with the same algorithm they pass to the codec.
package digest

import (
	"crypto/sha256"
	"fmt"
	"hash"
	"strings"

	"github.com/arloliu/friproof/errs"
	"golang.org/x/crypto/blake2s"
	"golang.org/x/crypto/sha3"
)

// Algorithm identifies a hash function used for proof commitments.
type Algorithm uint8

const (
	// SHA256 is SHA-256 (32-byte digests).
	SHA256 Algorithm = iota + 1
	// Blake2s256 is BLAKE2s-256 (32-byte digests).
	Blake2s256
	// SHA3_256 is SHA3-256 (32-byte digests).
	SHA3_256 //nolint:revive
)

var names = map[Algorithm]string{
	SHA256:     "sha256",
	Blake2s256: "blake2s256",
	SHA3_256:   "sha3-256",
}

// Parse resolves an algorithm name such as "sha256" or "blake2s256".
// Matching is case-insensitive.
func Parse(name string) (Algorithm, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for alg, s := range names {
		if s == n {
			return alg, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", errs.ErrUnknownAlgorithm, name)
}

// String returns the canonical lower-case algorithm name.
func (a Algorithm) String() string {
	if s, ok := names[a]; ok {
		return s
	}

	return fmt.Sprintf("Algorithm(%d)", uint8(a))
}

// Valid reports whether a is a known algorithm.
func (a Algorithm) Valid() bool {
	_, ok := names[a]
	return ok
}

// Size returns the digest width in bytes, or 0 for an unknown algorithm.
func (a Algorithm) Size() int {
	switch a {
	case SHA256:
		return sha256.Size
	case Blake2s256:
		return blake2s.Size
	case SHA3_256:
		return 32
	default:
		return 0
	}
}

// New returns a new hash.Hash computing the algorithm's digest.
func (a Algorithm) New() (hash.Hash, error) {
	switch a {
	case SHA256:
		return sha256.New(), nil
	case Blake2s256:
		return blake2s.New256(nil)
	case SHA3_256:
		return sha3.New256(), nil
	default:
		return nil, fmt.Errorf("%w: %s", errs.ErrUnknownAlgorithm, a)
	}
}

// Sum hashes data and returns the digest.
func (a Algorithm) Sum(data []byte) ([]byte, error) {
	h, err := a.New()
	if err != nil {
		return nil, err
	}
	_, _ = h.Write(data)

	return h.Sum(nil), nil
}
