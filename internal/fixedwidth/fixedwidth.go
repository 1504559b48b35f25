// Package fixedwidth converts non-negative arbitrary-precision integers to
// and from the 25-byte big-endian records used as position identifiers.
package fixedwidth

import (
	"fmt"
	"math/big"

	"github.com/lgbarn/chesscodec-go/internal/errors"
)

// Size is the length of an encoded record in bytes.
const Size = 25

// MaxBits is the widest value a record can hold.
const MaxBits = Size * 8

// Encode returns v as exactly Size big-endian unsigned bytes.
// It fails with errors.ErrRange for negative values and values >= 2^200.
func Encode(v *big.Int) ([]byte, error) {
	if v == nil {
		return nil, errors.Range("fixedwidth.Encode", "", "nil value")
	}
	if v.Sign() < 0 {
		return nil, errors.Range("fixedwidth.Encode", v.String(), "negative value")
	}
	// Bytes() is already the minimal magnitude; there is no sign byte to strip.
	if n := (v.BitLen() + 7) / 8; n > Size {
		return nil, errors.Range("fixedwidth.Encode", v.String(), fmt.Sprintf("needs %d bytes", n))
	}
	out := make([]byte, Size)
	v.FillBytes(out)
	return out, nil
}

// Decode interprets r as an unsigned big-endian integer.
// It fails with errors.ErrFormat unless r is exactly Size bytes long.
func Decode(r []byte) (*big.Int, error) {
	if len(r) != Size {
		return nil, errors.Format("fixedwidth.Decode", fmt.Sprintf("%x", r),
			fmt.Sprintf("got %d bytes, want %d", len(r), Size))
	}
	return new(big.Int).SetBytes(r), nil
}
