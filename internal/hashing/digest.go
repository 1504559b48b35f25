// Package hashing computes short content fingerprints and detects duplicate
// content.
//
// A fingerprint is the SHA-256 digest of the content, truncated to
// DigestBytes bytes and written in base 62 with the digits 0-9A-Za-z.
package hashing

import (
	"fmt"
	"math"
	"math/big"
	"math/bits"
	"strings"

	"github.com/ipfs/go-cid"
	"github.com/multiformats/go-multihash"

	"github.com/lgbarn/chesscodec-go/internal/errors"
)

// EstimatedUniqueStrings is the number of distinct contents a digest must
// tell apart.
const EstimatedUniqueStrings = math.MaxInt64

// DigestBytes is the truncated digest length: twice the bits needed to
// count EstimatedUniqueStrings, rounded up to whole bytes. The doubling
// keeps birthday collisions out of reach.
var DigestBytes = digestLen(EstimatedUniqueStrings)

// MaxDigestLen is the longest base-62 rendering of a DigestBytes digest.
var MaxDigestLen = int(math.Ceil(float64(DigestBytes*8) / math.Log2(float64(base62Radix))))

// base62Digits is ordered by code point, so digests sort the same as strings
// and as integers of equal length.
const base62Digits = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

const base62Radix = len(base62Digits)

var bigRadix = big.NewInt(int64(base62Radix))

func digestLen(unique uint64) int {
	needed := bits.Len64(unique - 1) // ceil(log2(unique))
	return (needed*2 + 7) / 8
}

// Digest is a base-62 content fingerprint.
type Digest string

// String returns the digest text.
func (d Digest) String() string {
	return string(d)
}

// Sum returns the digest of data.
func Sum(data []byte) Digest {
	return Digest(encodeBase62(truncatedSHA256(data)))
}

// truncatedSHA256 returns the first DigestBytes bytes of SHA-256(data).
// A fresh digest engine is used on every call, so this is safe for
// concurrent use.
func truncatedSHA256(data []byte) []byte {
	mh, err := multihash.Sum(data, multihash.SHA2_256, DigestBytes)
	if err != nil {
		// Sum only fails for unknown codes or lengths longer than the hash.
		panic(fmt.Sprintf("hashing: sha2-256 truncated to %d bytes: %v", DigestBytes, err))
	}
	dec, err := multihash.Decode(mh)
	if err != nil {
		panic(fmt.Sprintf("hashing: decoding own multihash: %v", err))
	}
	return dec.Digest
}

func encodeBase62(b []byte) string {
	v := new(big.Int).SetBytes(b)
	var out []byte
	m := new(big.Int)
	for v.Sign() > 0 {
		v.QuoRem(v, bigRadix, m)
		out = append(out, base62Digits[m.Int64()])
	}
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return string(out)
}

// ParseDigest validates s as a digest in the form Sum produces: no
// leading zero digits and never empty.
func ParseDigest(s string) (Digest, error) {
	const op = "hashing.ParseDigest"
	if s == "" {
		return "", errors.Format(op, s, "empty digest")
	}
	d := Digest(s)
	raw, err := d.Bytes()
	if err != nil {
		return "", err
	}
	if encodeBase62(raw) != s {
		return "", errors.Format(op, s, "not in canonical form")
	}
	return d, nil
}

// Bytes returns the truncated SHA-256 digest that d renders.
func (d Digest) Bytes() ([]byte, error) {
	const op = "hashing.Digest.Bytes"
	if len(d) > MaxDigestLen {
		return nil, errors.Format(op, string(d), fmt.Sprintf("longer than %d digits", MaxDigestLen))
	}
	v := new(big.Int)
	for i := 0; i < len(d); i++ {
		n := strings.IndexByte(base62Digits, d[i])
		if n < 0 {
			return nil, errors.Format(op, string(d), fmt.Sprintf("%q is not a base-62 digit", d[i]))
		}
		v.Mul(v, bigRadix)
		v.Add(v, big.NewInt(int64(n)))
	}
	if (v.BitLen()+7)/8 > DigestBytes {
		return nil, errors.Range(op, string(d), fmt.Sprintf("wider than %d bytes", DigestBytes))
	}
	out := make([]byte, DigestBytes)
	v.FillBytes(out)
	return out, nil
}

// Multihash returns d as a truncated sha2-256 multihash.
func (d Digest) Multihash() (multihash.Multihash, error) {
	raw, err := d.Bytes()
	if err != nil {
		return nil, err
	}
	return multihash.Encode(raw, multihash.SHA2_256)
}

// CID returns d as a CIDv1 with the raw codec, for content-addressed
// stores that speak CIDs.
func (d Digest) CID() (cid.Cid, error) {
	mh, err := d.Multihash()
	if err != nil {
		return cid.Undef, err
	}
	return cid.NewCidV1(cid.Raw, mh), nil
}
