// Package alphabet writes non-negative integers as positional numerals whose
// digits are Unicode code points. The digit set is the Basic Multilingual
// Plane minus spacing characters, the general punctuation block, surrogates
// and noncharacters, so encoded strings can serve as compact keys.
package alphabet

import (
	"fmt"
	"math/big"
	"sort"
	"unicode/utf8"

	"github.com/lgbarn/chesscodec-go/internal/errors"
)

// Range is an inclusive span of code points that are valid digits.
type Range struct {
	Lo, Hi rune
}

// Size returns the number of code points in r.
func (r Range) Size() int {
	return int(r.Hi-r.Lo) + 1
}

// Ranges lists the digit code points in ascending order. Digit values are
// assigned in this order, so the table must never be reordered or edited
// once values have been persisted.
var Ranges = []Range{
	{0x0000, 0x001F},
	{0x0021, 0x009F}, // U+0020 space
	{0x00A1, 0x00AC}, // U+00A0 no-break space
	{0x00AE, 0x167F}, // U+00AD soft hyphen
	{0x1681, 0x180D}, // U+1680 ogham space mark
	{0x180F, 0x1FFF}, // U+180E mongolian vowel separator
	{0x2070, 0x2FFF}, // U+2000-U+206F general punctuation
	{0x3001, 0xD7FF}, // U+3000 ideographic space, then surrogates
	{0xE000, 0xFDCF},
	{0xFDF0, 0xFFFD}, // noncharacters U+FDD0-U+FDEF and U+FFFE-U+FFFF
}

// table is the digit lookup derived from Ranges at init.
type table struct {
	ranges []Range
	// prefix[i] is the digit value of ranges[i].Lo.
	prefix []int
	base   int
}

var (
	digits  = newTable(Ranges)
	bigBase = big.NewInt(int64(digits.base))
)

// Base is the radix: the total number of digit code points.
var Base = digits.base

func newTable(ranges []Range) *table {
	sorted := make([]Range, len(ranges))
	copy(sorted, ranges)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Lo < sorted[j].Lo })

	t := &table{ranges: sorted, prefix: make([]int, len(sorted))}
	for i, r := range sorted {
		if r.Hi < r.Lo || (i > 0 && r.Lo <= sorted[i-1].Hi) {
			panic(fmt.Sprintf("alphabet: malformed range %U-%U", r.Lo, r.Hi))
		}
		t.prefix[i] = t.base
		t.base += r.Size()
	}
	return t
}

// codePoint maps a digit value to its code point.
func (t *table) codePoint(digit int) (rune, error) {
	if digit < 0 || digit >= t.base {
		return 0, errors.Range("alphabet.Encode", fmt.Sprint(digit),
			fmt.Sprintf("digit outside [0, %d)", t.base))
	}
	// Last range whose first digit is <= digit.
	i := sort.Search(len(t.prefix), func(i int) bool { return t.prefix[i] > digit }) - 1
	return t.ranges[i].Lo + rune(digit-t.prefix[i]), nil
}

// digit maps a code point to its digit value, or -1 if it is not a digit.
func (t *table) digit(cp rune) int {
	i := sort.Search(len(t.ranges), func(i int) bool { return t.ranges[i].Hi >= cp })
	if i == len(t.ranges) || cp < t.ranges[i].Lo {
		return -1
	}
	return t.prefix[i] + int(cp-t.ranges[i].Lo)
}

// Contains reports whether cp is a digit of the alphabet.
func Contains(cp rune) bool {
	return digits.digit(cp) >= 0
}

// Encode writes v most significant digit first. Zero encodes to the empty
// string, so callers that must tell "no value" from zero need to do so
// themselves. Negative values fail with errors.ErrRange.
func Encode(v *big.Int) (string, error) {
	if v == nil || v.Sign() < 0 {
		in := "<nil>"
		if v != nil {
			in = v.String()
		}
		return "", errors.Range("alphabet.Encode", in, "value must be non-negative")
	}

	var out []rune
	q := new(big.Int).Set(v)
	m := new(big.Int)
	for q.Sign() > 0 {
		q.QuoRem(q, bigBase, m)
		cp, err := digits.codePoint(int(m.Int64()))
		if err != nil {
			return "", err
		}
		out = append(out, cp)
	}

	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return string(out), nil
}

// Decode reads a string produced by Encode. It fails with errors.ErrFormat
// on invalid UTF-8 or any code point outside the alphabet. The empty string
// decodes to zero.
func Decode(s string) (*big.Int, error) {
	v := new(big.Int)
	d := new(big.Int)
	for i, cp := range s {
		if cp == utf8.RuneError {
			if _, size := utf8.DecodeRuneInString(s[i:]); size <= 1 {
				return nil, errors.Format("alphabet.Decode", s, fmt.Sprintf("invalid UTF-8 at byte %d", i))
			}
		}
		n := digits.digit(cp)
		if n < 0 {
			return nil, errors.Format("alphabet.Decode", s, fmt.Sprintf("%U at byte %d is not a digit", cp, i))
		}
		v.Mul(v, bigBase)
		v.Add(v, d.SetInt64(int64(n)))
	}
	return v, nil
}
