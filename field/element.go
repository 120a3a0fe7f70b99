// Package field encodes field elements as fixed-width big-endian byte strings.
//
// A field element is an arbitrary-precision non-negative integer bound to a
// fixed number of bytes. Encoding left-pads the minimal big-endian form with
// zero bytes and rejects values that do not fit, instead of truncating them.
//
// # Thread Safety
//
// All functions in this package are pure and safe for concurrent use.
// Input values are never modified.
package field

import (
	"fmt"
	"math/big"

	"github.com/arloliu/friproof/errs"
)

// ByteLen returns the length of the minimal big-endian representation of v.
// Zero has a byte length of 0.
func ByteLen(v *big.Int) int {
	return (v.BitLen() + 7) / 8
}

// Fits reports whether v can be encoded as a field element of the given width.
func Fits(v *big.Int, width int) bool {
	return Check(v, width) == nil
}

// Check validates that v is a representable field element of the given width.
//
// Returns:
//   - error: ErrInvalidElementWidth, ErrNilElement, ErrNegativeElement or ErrElementOverflow
func Check(v *big.Int, width int) error {
	if width <= 0 {
		return fmt.Errorf("%w: %d", errs.ErrInvalidElementWidth, width)
	}
	if v == nil {
		return errs.ErrNilElement
	}
	if v.Sign() < 0 {
		return errs.ErrNegativeElement
	}
	if n := ByteLen(v); n > width {
		return fmt.Errorf("%w: value needs %d bytes, width is %d", errs.ErrElementOverflow, n, width)
	}

	return nil
}

// Encode renders v as exactly width big-endian bytes, left-padded with zeros.
//
// Parameters:
//   - v: Non-negative value to encode
//   - width: Number of bytes per field element
//
// Returns:
//   - []byte: Newly allocated slice of length width
//   - error: ErrElementOverflow if v needs more than width bytes, or another Check error
func Encode(v *big.Int, width int) ([]byte, error) {
	if err := Check(v, width); err != nil {
		return nil, err
	}

	return v.FillBytes(make([]byte, width)), nil
}

// Append appends the width-byte encoding of v to dst and returns the extended slice.
//
// On error dst is returned unchanged.
func Append(dst []byte, v *big.Int, width int) ([]byte, error) {
	if err := Check(v, width); err != nil {
		return dst, err
	}

	start := len(dst)
	dst = grow(dst, width)
	v.FillBytes(dst[start : start+width])

	return dst, nil
}

// Decode interprets b as a big-endian unsigned integer.
//
// Decode never fails; an empty slice decodes to zero.
func Decode(b []byte) *big.Int {
	return new(big.Int).SetBytes(b)
}

// MaxValue returns the largest value representable in width bytes, 2^(8*width)-1.
func MaxValue(width int) *big.Int {
	if width <= 0 {
		return new(big.Int)
	}
	v := new(big.Int).Lsh(big.NewInt(1), uint(width)*8) //nolint:gosec

	return v.Sub(v, big.NewInt(1))
}

func grow(dst []byte, n int) []byte {
	if cap(dst)-len(dst) >= n {
		return dst[:len(dst)+n]
	}
	out := make([]byte, len(dst)+n, 2*cap(dst)+n)
	copy(out, dst)

	return out
}
