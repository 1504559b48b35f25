// Package movecode packs a decided chess move, with its outcome flags, into
// the 32-bit integer stored in the moves column, and renders the decoded
// move in short and long algebraic notation.
//
// Bit layout, offset 0 being the most significant bit:
//
//	 0      reserved, always 0
//	 1      moved piece colour (0 black, 1 white)
//	 2-4    moved piece type
//	 5-7    captured piece type (0 = none)
//	 8      another identical piece can reach the destination
//	 9-14   from square (file<<3 | rank)
//	15-16   check count: 0->00, 1 or 2->01, 3->11
//	17-22   to square
//	23      the other piece stands on the same rank
//	24-26   move kind
//	27-29   promoted piece type (0 = none)
//	30      short castle
//	31      long castle
//
// The layout is persisted and must not change.
package movecode

import (
	"fmt"

	"github.com/lgbarn/chesscodec-go/internal/bitpack"
	"github.com/lgbarn/chesscodec-go/internal/chess"
	"github.com/lgbarn/chesscodec-go/internal/errors"
)

// Field offsets and widths.
const (
	offReserved    = 0
	offMoverColour = 1
	offMoverType   = 2
	offCaptured    = 5
	offCanGoTo     = 8
	offFrom        = 9
	offChecks      = 15
	offTo          = 17
	offSameRow     = 23
	offKind        = 24
	offPromoted    = 27
	offShortCastle = 30
	offLongCastle  = 31

	checkBits = 2
	kindBits  = 3
)

// MaxChecks is the largest check count a record accepts.
const MaxChecks = 3

// Spec describes a move to be packed. Captured and promoted pieces carry
// only their type: a captured piece is always the opponent's and a promoted
// piece is always the mover's.
type Spec struct {
	Moved    chess.Piece
	From, To *chess.Square
	Captured chess.PieceType
	Promoted chess.PieceType
	Kind     chess.MoveKind
	Checks   int

	OtherPieceCanGoTo bool
	OtherPieceSameRow bool
}

// Record is a move with its packed value memoized. Only the two
// disambiguation flags can change after construction; changing either one
// drops the memoized value.
//
// A Record is not safe for concurrent mutation. Share one between
// goroutines only if no goroutine calls a setter.
type Record struct {
	spec Spec

	packed uint32
	valid  bool
}

// NewRecord validates spec and returns a Record for it.
func NewRecord(spec Spec) (*Record, error) {
	if err := validate(spec); err != nil {
		return nil, err
	}
	return &Record{spec: spec}, nil
}

func validate(s Spec) error {
	const op = "movecode.NewRecord"
	if s.From == nil || s.To == nil {
		return errors.Format(op, "", "from and to squares are required")
	}
	if s.Moved.IsNone() || !s.Moved.Type.Valid() {
		return errors.Range(op, s.Moved.String(), "moved piece must be a real piece")
	}
	if s.Moved.Colour != chess.White && s.Moved.Colour != chess.Black {
		return errors.Range(op, fmt.Sprint(s.Moved.Colour), "unknown colour")
	}
	if !s.Captured.Valid() || !s.Promoted.Valid() {
		return errors.Range(op, "", fmt.Sprintf("piece codes %d/%d out of range", s.Captured, s.Promoted))
	}
	if !s.Kind.Valid() {
		return errors.Range(op, fmt.Sprint(uint8(s.Kind)), "unknown move kind")
	}
	if s.Checks < 0 || s.Checks > MaxChecks {
		return errors.Range(op, fmt.Sprint(s.Checks), "check count must be 0-3")
	}
	return nil
}

// Spec returns the fields the record was built from.
func (r *Record) Spec() Spec { return r.spec }

// Moved returns the piece that moved.
func (r *Record) Moved() chess.Piece { return r.spec.Moved }

// From returns the origin square.
func (r *Record) From() *chess.Square { return r.spec.From }

// To returns the destination square.
func (r *Record) To() *chess.Square { return r.spec.To }

// Captured returns the captured piece, or chess.None.
func (r *Record) Captured() chess.Piece {
	if r.spec.Captured == chess.NoPiece {
		return chess.None
	}
	return chess.Piece{Type: r.spec.Captured, Colour: r.spec.Moved.Colour.Opposite()}
}

// Promoted returns the piece a pawn became, or chess.None.
func (r *Record) Promoted() chess.Piece {
	if r.spec.Promoted == chess.NoPiece {
		return chess.None
	}
	return chess.Piece{Type: r.spec.Promoted, Colour: r.spec.Moved.Colour}
}

// Kind returns the move kind.
func (r *Record) Kind() chess.MoveKind { return r.spec.Kind }

// Checks returns the number of checks the move gives.
func (r *Record) Checks() int { return r.spec.Checks }

// IsShortCastle reports a king-side castle.
func (r *Record) IsShortCastle() bool { return r.spec.Kind == chess.ShortCastle }

// IsLongCastle reports a queen-side castle.
func (r *Record) IsLongCastle() bool { return r.spec.Kind == chess.LongCastle }

// OtherPieceCanGoTo reports whether another identical piece could also
// reach the destination.
func (r *Record) OtherPieceCanGoTo() bool { return r.spec.OtherPieceCanGoTo }

// OtherPieceSameRow reports whether that other piece is on the same rank.
func (r *Record) OtherPieceSameRow() bool { return r.spec.OtherPieceSameRow }

// SetOtherPieceCanGoTo updates the flag and invalidates the packed value.
func (r *Record) SetOtherPieceCanGoTo(v bool) {
	r.spec.OtherPieceCanGoTo = v
	r.valid = false
}

// SetOtherPieceSameRow updates the flag and invalidates the packed value.
func (r *Record) SetOtherPieceSameRow(v bool) {
	r.spec.OtherPieceSameRow = v
	r.valid = false
}

// Packed returns the 32-bit encoding, computing it on first use.
func (r *Record) Packed() uint32 {
	if !r.valid {
		r.packed = pack(r.spec)
		r.valid = true
	}
	return r.packed
}

// String returns the move in short algebraic notation.
func (r *Record) String() string {
	return r.SAN()
}

func b2u(b bool) uint32 {
	if b {
		return 1
	}
	return 0
}

// encodeChecks folds 1 and 2 checks onto the same code. Stored data relies
// on this, so 2 checks decode as 1.
func encodeChecks(n int) uint32 {
	switch {
	case n <= 0:
		return 0b00
	case n < MaxChecks:
		return 0b01
	default:
		return 0b11
	}
}

func decodeChecks(code uint32) int {
	switch code {
	case 0b00:
		return 0
	case 0b01:
		return 1
	case 0b11:
		return 3
	default:
		// 0b10 is never written.
		return 2
	}
}

func pack(s Spec) uint32 {
	var w uint32
	w = bitpack.Put(w, offMoverColour, 1, uint32(s.Moved.Colour))
	w = bitpack.Put(w, offMoverType, chess.PieceTypeBits, uint32(s.Moved.Type))
	w = bitpack.Put(w, offCaptured, chess.PieceTypeBits, uint32(s.Captured))
	w = bitpack.Put(w, offCanGoTo, 1, b2u(s.OtherPieceCanGoTo))
	w = bitpack.Put(w, offFrom, chess.SquareBits, uint32(s.From.Code()))
	w = bitpack.Put(w, offChecks, checkBits, encodeChecks(s.Checks))
	w = bitpack.Put(w, offTo, chess.SquareBits, uint32(s.To.Code()))
	w = bitpack.Put(w, offSameRow, 1, b2u(s.OtherPieceSameRow))
	w = bitpack.Put(w, offKind, kindBits, uint32(s.Kind))
	w = bitpack.Put(w, offPromoted, chess.PieceTypeBits, uint32(s.Promoted))
	w = bitpack.Put(w, offShortCastle, 1, b2u(s.Kind == chess.ShortCastle))
	w = bitpack.Put(w, offLongCastle, 1, b2u(s.Kind == chess.LongCastle))
	return w
}

// Encode returns the packed value of r.
func Encode(r *Record) uint32 {
	return r.Packed()
}

// Decode unpacks a stored value. Zero and negative values mean no move has
// been stored and yield a nil record without error.
func Decode(value int64) (*Record, error) {
	const op = "movecode.Decode"
	if value <= 0 {
		return nil, nil
	}
	if value > 1<<bitpack.WordSize-1 {
		return nil, errors.Range(op, fmt.Sprint(value), "wider than 32 bits")
	}
	w := uint32(value)
	if bitpack.Get(w, offReserved, 1) != 0 {
		return nil, errors.Range(op, fmt.Sprint(value), "reserved bit set")
	}

	from, err := chess.SquareFromCode(uint8(bitpack.Get(w, offFrom, chess.SquareBits)))
	if err != nil {
		return nil, err
	}
	to, err := chess.SquareFromCode(uint8(bitpack.Get(w, offTo, chess.SquareBits)))
	if err != nil {
		return nil, err
	}

	s := Spec{
		Moved: chess.Piece{
			Type:   chess.PieceType(bitpack.Get(w, offMoverType, chess.PieceTypeBits)),
			Colour: chess.Colour(bitpack.Get(w, offMoverColour, 1)),
		},
		From:              from,
		To:                to,
		Captured:          chess.PieceType(bitpack.Get(w, offCaptured, chess.PieceTypeBits)),
		Promoted:          chess.PieceType(bitpack.Get(w, offPromoted, chess.PieceTypeBits)),
		Kind:              chess.MoveKind(bitpack.Get(w, offKind, kindBits)),
		Checks:            decodeChecks(bitpack.Get(w, offChecks, checkBits)),
		OtherPieceCanGoTo: bitpack.Get(w, offCanGoTo, 1) == 1,
		OtherPieceSameRow: bitpack.Get(w, offSameRow, 1) == 1,
	}

	if !s.Kind.Valid() {
		return nil, errors.Format(op, fmt.Sprint(value), "move kind code 7 is unused")
	}
	if s.Moved.IsNone() || !s.Moved.Type.Valid() || !s.Captured.Valid() || !s.Promoted.Valid() {
		return nil, errors.Format(op, fmt.Sprint(value), "invalid piece code")
	}
	short := bitpack.Get(w, offShortCastle, 1) == 1
	long := bitpack.Get(w, offLongCastle, 1) == 1
	if short != (s.Kind == chess.ShortCastle) || long != (s.Kind == chess.LongCastle) {
		return nil, errors.Format(op, fmt.Sprint(value), "castle flags disagree with move kind")
	}

	return &Record{spec: s, packed: w, valid: true}, nil
}
