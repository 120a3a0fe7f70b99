package hash

import "github.com/cespare/xxhash/v2"

// Fingerprint computes the xxHash64 of an encoded proof.
//
// The fingerprint is not a cryptographic commitment; it identifies identical
// encodings for de-duplication and cache keys.
func Fingerprint(data []byte) uint64 {
	return xxhash.Sum64(data)
}
