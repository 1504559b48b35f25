// Package chess provides the chess value types shared by the codecs:
// colours, pieces, move kinds and the 64 canonical board squares.
package chess

import (
	"github.com/lgbarn/chesscodec-go/internal/errors"
)

// Colour represents the colour of a piece or player.
// The numeric values are the colour bit of a packed move record.
type Colour uint8

const (
	Black Colour = iota
	White
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// PieceType is the 3-bit piece code stored in packed move records.
type PieceType uint8

const (
	NoPiece PieceType = iota // All-zero code: no piece
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
	numPieceTypes
)

// PieceTypeBits is the width of a piece type code.
const PieceTypeBits = 3

var pieceNames = [...]string{"None", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}

// String returns the string representation of a piece type.
func (p PieceType) String() string {
	if p.Valid() {
		return pieceNames[p]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a piece (uppercase).
func (p PieceType) Letter() byte {
	letters := []byte{' ', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if p.Valid() {
		return letters[p]
	}
	return '?'
}

// Valid reports whether p is NoPiece or a real piece type.
func (p PieceType) Valid() bool {
	return p < numPieceTypes
}

// ParsePieceType maps a piece letter (either case) to its type.
func ParsePieceType(letter byte) (PieceType, error) {
	switch letter {
	case 'P', 'p':
		return Pawn, nil
	case 'N', 'n':
		return Knight, nil
	case 'B', 'b':
		return Bishop, nil
	case 'R', 'r':
		return Rook, nil
	case 'Q', 'q':
		return Queen, nil
	case 'K', 'k':
		return King, nil
	}
	return NoPiece, errors.Format("chess.ParsePieceType", string(letter), "unknown piece letter")
}

// Piece is a coloured piece. The zero value is no piece.
type Piece struct {
	Type   PieceType
	Colour Colour
}

// None is the absent piece.
var None = Piece{}

// W creates a white piece.
func W(t PieceType) Piece {
	return Piece{Type: t, Colour: White}
}

// B creates a black piece.
func B(t PieceType) Piece {
	return Piece{Type: t, Colour: Black}
}

// IsNone reports whether p is the absent piece.
func (p Piece) IsNone() bool {
	return p.Type == NoPiece
}

// String returns e.g. "White Knight", or "None".
func (p Piece) String() string {
	if p.IsNone() {
		return "None"
	}
	return p.Colour.String() + " " + p.Type.String()
}

// MoveKind classifies a move. Values are the 3-bit codes of a packed record.
type MoveKind uint8

const (
	Normal MoveKind = iota
	Capture
	CaptureEnPassant
	ShortCastle
	LongCastle
	Promote
	PromoteAndCapture
	numMoveKinds
)

var moveKindNames = [...]string{
	"Normal", "Capture", "CaptureEnPassant", "ShortCastle", "LongCastle", "Promote", "PromoteAndCapture",
}

// String returns the string representation of a move kind.
func (k MoveKind) String() string {
	if k.Valid() {
		return moveKindNames[k]
	}
	return "Unknown"
}

// Valid reports whether k is one of the seven move kinds.
func (k MoveKind) Valid() bool {
	return k < numMoveKinds
}

// IsCapture returns true for kinds that remove an enemy piece.
func (k MoveKind) IsCapture() bool {
	switch k {
	case Capture, CaptureEnPassant, PromoteAndCapture:
		return true
	default:
		return false
	}
}

// IsPromotion returns true for kinds that promote a pawn.
func (k MoveKind) IsPromotion() bool {
	return k == Promote || k == PromoteAndCapture
}

// IsCastle returns true for both castling kinds.
func (k MoveKind) IsCastle() bool {
	return k == ShortCastle || k == LongCastle
}

// ParseMoveKind maps a kind name (as printed by String) back to its value.
func ParseMoveKind(name string) (MoveKind, error) {
	for i, n := range moveKindNames {
		if n == name {
			return MoveKind(i), nil
		}
	}
	return 0, errors.Format("chess.ParseMoveKind", name, "unknown move kind")
}
