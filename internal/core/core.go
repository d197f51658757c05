// FILE: internal/core/core.go
package core

import "fmt"

type Color int8

const (
	ColorNone Color = iota
	ColorWhite
	ColorBlack
)

func (c Color) String() string {
	switch c {
	case ColorWhite:
		return "w"
	case ColorBlack:
		return "b"
	default:
		return "-"
	}
}

func OppositeColor(c Color) Color {
	if c == ColorWhite {
		return ColorBlack
	}
	return ColorWhite
}

type PieceKind int8

const (
	NoPiece PieceKind = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// Letter returns the uppercase FEN letter for the kind.
func (k PieceKind) Letter() byte {
	switch k {
	case Pawn:
		return 'P'
	case Knight:
		return 'N'
	case Bishop:
		return 'B'
	case Rook:
		return 'R'
	case Queen:
		return 'Q'
	case King:
		return 'K'
	default:
		return '?'
	}
}

// KindFromLetter maps a FEN letter (either case) to a piece kind.
func KindFromLetter(ch byte) PieceKind {
	switch ch {
	case 'P', 'p':
		return Pawn
	case 'N', 'n':
		return Knight
	case 'B', 'b':
		return Bishop
	case 'R', 'r':
		return Rook
	case 'Q', 'q':
		return Queen
	case 'K', 'k':
		return King
	default:
		return NoPiece
	}
}

// Piece is an immutable (kind, color) pair. The zero value is an empty square.
type Piece struct {
	Kind  PieceKind
	Color Color
}

func (p Piece) IsEmpty() bool {
	return p.Kind == NoPiece
}

// Letter returns the FEN letter: uppercase for White, lowercase for Black.
func (p Piece) Letter() byte {
	ch := p.Kind.Letter()
	if p.Color == ColorBlack {
		ch += 'a' - 'A'
	}
	return ch
}

// Square identifies a board cell. Row 0 is Black's back rank (rank 8),
// row 7 is White's back rank (rank 1). Col 0 is file 'a'.
type Square struct {
	Row int
	Col int
}

func (s Square) OnBoard() bool {
	return s.Row >= 0 && s.Row < 8 && s.Col >= 0 && s.Col < 8
}

// String returns algebraic notation, e.g. "e4".
func (s Square) String() string {
	return fmt.Sprintf("%c%c", 'a'+s.Col, '8'-s.Row)
}

// ParseSquare converts algebraic notation ("e4") to a Square.
func ParseSquare(str string) (Square, error) {
	if len(str) != 2 || str[0] < 'a' || str[0] > 'h' || str[1] < '1' || str[1] > '8' {
		return Square{}, fmt.Errorf("invalid square: %q", str)
	}
	return Square{Row: int('8' - str[1]), Col: int(str[0] - 'a')}, nil
}

type CastleSide int8

const (
	NoCastle CastleSide = iota
	CastleKingside
	CastleQueenside
)

// CastlingRights tracks the four castling availabilities. Rights are
// monotonic: once cleared they never come back.
type CastlingRights struct {
	WhiteKingside  bool
	WhiteQueenside bool
	BlackKingside  bool
	BlackQueenside bool
}

func AllCastlingRights() CastlingRights {
	return CastlingRights{true, true, true, true}
}

func (cr CastlingRights) Allows(c Color, side CastleSide) bool {
	switch {
	case c == ColorWhite && side == CastleKingside:
		return cr.WhiteKingside
	case c == ColorWhite && side == CastleQueenside:
		return cr.WhiteQueenside
	case c == ColorBlack && side == CastleKingside:
		return cr.BlackKingside
	case c == ColorBlack && side == CastleQueenside:
		return cr.BlackQueenside
	}
	return false
}

// ClearAll removes both rights for a color.
func (cr *CastlingRights) ClearAll(c Color) {
	if c == ColorWhite {
		cr.WhiteKingside = false
		cr.WhiteQueenside = false
	} else {
		cr.BlackKingside = false
		cr.BlackQueenside = false
	}
}

func (cr *CastlingRights) Clear(c Color, side CastleSide) {
	switch {
	case c == ColorWhite && side == CastleKingside:
		cr.WhiteKingside = false
	case c == ColorWhite && side == CastleQueenside:
		cr.WhiteQueenside = false
	case c == ColorBlack && side == CastleKingside:
		cr.BlackKingside = false
	case c == ColorBlack && side == CastleQueenside:
		cr.BlackQueenside = false
	}
}

// FEN returns the castling field of a FEN string ("KQkq" or "-").
func (cr CastlingRights) FEN() string {
	s := ""
	if cr.WhiteKingside {
		s += "K"
	}
	if cr.WhiteQueenside {
		s += "Q"
	}
	if cr.BlackKingside {
		s += "k"
	}
	if cr.BlackQueenside {
		s += "q"
	}
	if s == "" {
		return "-"
	}
	return s
}

// Move records an applied transition. It is produced by the move applier
// and stored in the position's history.
type Move struct {
	From      Square
	To        Square
	Piece     Piece
	Captured  Piece // zero value when nothing was captured
	Promotion PieceKind
	Castle    CastleSide
	EnPassant bool
}

// UCI returns the move in coordinate notation, e.g. "e2e4" or "e7e8q".
func (m Move) UCI() string {
	s := m.From.String() + m.To.String()
	if m.Promotion != NoPiece {
		s += string(m.Promotion.Letter() + ('a' - 'A'))
	}
	return s
}

// Result classifies a position for the side to move.
type Result int8

const (
	ResultOngoing Result = iota
	ResultCheckmate
	ResultStalemate
)

func (r Result) String() string {
	switch r {
	case ResultCheckmate:
		return "checkmate"
	case ResultStalemate:
		return "stalemate"
	default:
		return "ongoing"
	}
}

// State is the game-level outcome, derived from Result plus the side that
// delivered mate.
type State int

const (
	StateOngoing State = iota
	StateWhiteWins
	StateBlackWins
	StateDraw
	StateStalemate
)

func (s State) String() string {
	switch s {
	case StateWhiteWins:
		return "White wins"
	case StateBlackWins:
		return "Black wins"
	case StateDraw:
		return "Draw"
	case StateStalemate:
		return "Stalemate"
	default:
		return "Ongoing"
	}
}
