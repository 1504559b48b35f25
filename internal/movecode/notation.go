package movecode

import (
	"strconv"
	"strings"

	"github.com/lgbarn/chesscodec-go/internal/chess"
)

const (
	shortCastleText = "O-O"
	longCastleText  = "O-O-O"
	enPassantSuffix = " e.p."
)

// SAN returns the move in short algebraic notation, e.g. "Nbd7", "exd5",
// "e8=Q+", "O-O".
//
// The disambiguator comes only from the stored flags, since a record holds
// no board:
//
//	OtherPieceCanGoTo  OtherPieceSameRow  written after the piece letter
//	false              either             nothing
//	true               true               from-file letter ("Nbd7")
//	true               false              from-rank digit ("N1f3")
//
// A pawn capture always writes its from-file. Checks are written as one
// '+' per decoded check, so a stored 2 reads back as "+".
func (r *Record) SAN() string {
	var sb strings.Builder
	s := r.spec

	switch s.Kind {
	case chess.ShortCastle:
		sb.WriteString(shortCastleText)
	case chess.LongCastle:
		sb.WriteString(longCastleText)
	default:
		isPawn := s.Moved.Type == chess.Pawn
		if !isPawn {
			sb.WriteByte(s.Moved.Type.Letter())
		}
		switch {
		case isPawn && s.Kind.IsCapture():
			sb.WriteByte(fileChar(s.From))
		case s.OtherPieceCanGoTo && s.OtherPieceSameRow:
			sb.WriteByte(fileChar(s.From))
		case s.OtherPieceCanGoTo:
			sb.WriteString(strconv.Itoa(s.From.RankNumber()))
		}
		if s.Kind.IsCapture() {
			sb.WriteByte('x')
		}
		sb.WriteString(s.To.String())
		if s.Promoted != chess.NoPiece {
			sb.WriteByte('=')
			sb.WriteByte(s.Promoted.Letter())
		}
	}

	writeChecks(&sb, s.Checks)
	return sb.String()
}

// LAN returns the move in long coordinate notation, e.g. "Ng1-f3",
// "e4xPd5", "e5xPd6 e.p.", "b7xRa8=Q".
func (r *Record) LAN() string {
	var sb strings.Builder
	s := r.spec

	switch s.Kind {
	case chess.ShortCastle:
		sb.WriteString(shortCastleText)
	case chess.LongCastle:
		sb.WriteString(longCastleText)
	default:
		if s.Moved.Type != chess.Pawn {
			sb.WriteByte(s.Moved.Type.Letter())
		}
		sb.WriteString(s.From.String())
		if s.Kind.IsCapture() {
			sb.WriteByte('x')
			captured := s.Captured
			if captured == chess.NoPiece && s.Kind == chess.CaptureEnPassant {
				captured = chess.Pawn
			}
			if captured != chess.NoPiece {
				sb.WriteByte(captured.Letter())
			}
		} else {
			sb.WriteByte('-')
		}
		sb.WriteString(s.To.String())
		if s.Kind == chess.CaptureEnPassant {
			sb.WriteString(enPassantSuffix)
		}
		if s.Promoted != chess.NoPiece {
			sb.WriteByte('=')
			sb.WriteByte(s.Promoted.Letter())
		}
	}

	writeChecks(&sb, s.Checks)
	return sb.String()
}

func fileChar(sq *chess.Square) byte {
	return chess.ColBase + byte(sq.File())
}

func writeChecks(sb *strings.Builder, n int) {
	for i := 0; i < n; i++ {
		sb.WriteByte('+')
	}
}
