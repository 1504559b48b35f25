// Package bitpack converts between fixed-width binary digit sequences and
// machine integers, and packs fields into 32-bit words.
//
// Digit sequences and word fields are both numbered most significant first:
// index 0 of a Bits value and offset 0 of a word are the highest-order bit.
package bitpack

import (
	"strings"

	"github.com/lgbarn/chesscodec-go/internal/errors"
)

// WordSize is the width of a packed word in bits.
const WordSize = 32

// Bits is a sequence of binary digits, each 0 or 1, most significant first.
type Bits []uint8

// String renders the digits as a string of '0' and '1'.
func (b Bits) String() string {
	var sb strings.Builder
	sb.Grow(len(b))
	for _, d := range b {
		if d == 0 {
			sb.WriteByte('0')
		} else {
			sb.WriteByte('1')
		}
	}
	return sb.String()
}

// ParseBits reads a string of '0' and '1' characters.
func ParseBits(s string) (Bits, error) {
	b := make(Bits, len(s))
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '0':
		case '1':
			b[i] = 1
		default:
			return nil, errors.Format("bitpack.ParseBits", s, "digits must be 0 or 1")
		}
	}
	return b, nil
}

// ToInt returns the sum of bit*2^position, position counted from the right.
// Any non-zero digit counts as 1. Sequences longer than 64 digits keep only
// the low-order 64.
func ToInt(b Bits) uint64 {
	var v uint64
	for _, d := range b {
		v <<= 1
		if d != 0 {
			v |= 1
		}
	}
	return v
}

// FromInt returns v as exactly width digits, zero-padded on the left.
// High-order bits of v that do not fit in width are dropped without error;
// persisted records depend on this truncation.
func FromInt(v uint64, width int) Bits {
	if width <= 0 {
		return Bits{}
	}
	b := make(Bits, width)
	for i := width - 1; i >= 0 && v != 0; i-- {
		b[i] = uint8(v & 1)
		v >>= 1
	}
	return b
}

func mask(width int) uint32 {
	if width >= WordSize {
		return ^uint32(0)
	}
	return uint32(1)<<uint(width) - 1
}

// shift returns how far a field at offset with width sits from bit 31.
func shift(offset, width int) uint {
	return uint(WordSize - offset - width)
}

// Put stores the low width bits of v into word at the given offset and
// returns the updated word. Excess high-order bits of v are dropped, as in
// FromInt.
func Put(word uint32, offset, width int, v uint32) uint32 {
	m := mask(width)
	s := shift(offset, width)
	word &^= m << s
	return word | (v&m)<<s
}

// Get extracts the field of the given width at offset.
func Get(word uint32, offset, width int) uint32 {
	return (word >> shift(offset, width)) & mask(width)
}
