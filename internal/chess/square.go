package chess

import (
	"fmt"

	"github.com/lgbarn/chesscodec-go/internal/bitpack"
	"github.com/lgbarn/chesscodec-go/internal/errors"
)

// Constants for board dimensions and coordinates.
const (
	BoardSize = 8

	// CoordBits is the width of one file or rank index.
	CoordBits = 3
	// SquareBits is the width of a square code: file then rank.
	SquareBits = 2 * CoordBits

	RankBase = '1'
	ColBase  = 'a'
)

// Square is a board coordinate. Exactly one Square exists per (file, rank),
// so squares may be compared by pointer.
type Square struct {
	file, rank uint8
}

// squares holds the canonical instances, indexed [file][rank].
var squares = func() (g [BoardSize][BoardSize]Square) {
	for f := 0; f < BoardSize; f++ {
		for r := 0; r < BoardSize; r++ {
			g[f][r] = Square{file: uint8(f), rank: uint8(r)}
		}
	}
	return g
}()

// SquareAt returns the canonical square for file and rank in [0,7].
func SquareAt(file, rank int) (*Square, error) {
	if file < 0 || file >= BoardSize || rank < 0 || rank >= BoardSize {
		return nil, errors.Range("chess.SquareAt", fmt.Sprintf("(%d,%d)", file, rank), "file and rank must be in [0,7]")
	}
	return &squares[file][rank], nil
}

// MustSquareAt is like SquareAt but panics on an off-board coordinate.
func MustSquareAt(file, rank int) *Square {
	s, err := SquareAt(file, rank)
	if err != nil {
		panic(err)
	}
	return s
}

// ParseSquare reads algebraic coordinates such as "e4" or "E4".
func ParseSquare(s string) (*Square, error) {
	if len(s) != 2 {
		return nil, errors.Format("chess.ParseSquare", s, "want file letter and rank digit")
	}
	f := s[0] | 0x20 // lower-case
	r := s[1]
	if f < ColBase || f >= ColBase+BoardSize || r < RankBase || r >= RankBase+BoardSize {
		return nil, errors.Format("chess.ParseSquare", s, "off the board")
	}
	return &squares[f-ColBase][r-RankBase], nil
}

// File returns the file index, 0 for the a-file.
func (s *Square) File() int { return int(s.file) }

// Rank returns the rank index, 0 for the first rank.
func (s *Square) Rank() int { return int(s.rank) }

// FileLetter returns 'A' through 'H'.
func (s *Square) FileLetter() byte { return 'A' + s.file }

// RankNumber returns 1 through 8.
func (s *Square) RankNumber() int { return int(s.rank) + 1 }

// String returns the lower-case algebraic name, e.g. "e4".
func (s *Square) String() string {
	return string([]byte{ColBase + s.file, RankBase + s.rank})
}

// Code returns the 6-bit square code: file in the high three bits, rank in
// the low three.
func (s *Square) Code() uint8 {
	return s.file<<CoordBits | s.rank
}

// Bits returns Code as six binary digits, most significant first.
func (s *Square) Bits() bitpack.Bits {
	return append(bitpack.FromInt(uint64(s.file), CoordBits), bitpack.FromInt(uint64(s.rank), CoordBits)...)
}

// SquareFromCode returns the canonical square for a 6-bit code.
func SquareFromCode(code uint8) (*Square, error) {
	if code >= BoardSize*BoardSize {
		return nil, errors.Format("chess.SquareFromCode", fmt.Sprint(code), "code wider than 6 bits")
	}
	return &squares[code>>CoordBits][code&(BoardSize-1)], nil
}

// DecodeSquare returns the canonical square for six binary digits.
func DecodeSquare(b bitpack.Bits) (*Square, error) {
	if len(b) != SquareBits {
		return nil, errors.Format("chess.DecodeSquare", b.String(), fmt.Sprintf("want %d digits", SquareBits))
	}
	file := bitpack.ToInt(b[:CoordBits])
	rank := bitpack.ToInt(b[CoordBits:])
	if file >= BoardSize || rank >= BoardSize {
		return nil, errors.Format("chess.DecodeSquare", b.String(), "off the board")
	}
	return &squares[file][rank], nil
}
