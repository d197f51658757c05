// FILE: internal/engine/fen.go
package engine

import (
	"fmt"
	"strings"

	"chesskit/internal/core"
)

const (
	StartingFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"
)

// FromFEN parses a FEN string into a Position. The move history of a
// position restored from FEN starts empty; FEN does not encode it.
func FromFEN(fen string) (Position, error) {
	parts := strings.Fields(fen)
	if len(parts) != 6 {
		return Position{}, fmt.Errorf("invalid FEN: expected 6 parts, got %d", len(parts))
	}

	p := Position{}

	// Parse board
	ranks := strings.Split(parts[0], "/")
	if len(ranks) != 8 {
		return Position{}, fmt.Errorf("invalid FEN: expected 8 ranks")
	}

	for r := 0; r < 8; r++ {
		file := 0
		for _, ch := range ranks[r] {
			if ch >= '1' && ch <= '8' {
				file += int(ch - '0')
			} else {
				if file >= 8 {
					return Position{}, fmt.Errorf("invalid FEN: too many pieces in rank %d", r+1)
				}
				kind := core.KindFromLetter(byte(ch))
				if kind == core.NoPiece {
					return Position{}, fmt.Errorf("invalid FEN: unknown piece %q", ch)
				}
				color := core.ColorWhite
				if ch >= 'a' && ch <= 'z' {
					color = core.ColorBlack
				}
				p.board[r][file] = core.Piece{Kind: kind, Color: color}
				file++
			}
		}
		if file != 8 {
			return Position{}, fmt.Errorf("invalid FEN: rank %d has %d files", r+1, file)
		}
	}

	// Parse game state with validation
	switch parts[1] {
	case "w":
		p.turn = core.ColorWhite
	case "b":
		p.turn = core.ColorBlack
	default:
		return Position{}, fmt.Errorf("invalid FEN: turn must be 'w' or 'b'")
	}

	if parts[2] != "-" {
		for i := 0; i < len(parts[2]); i++ {
			switch parts[2][i] {
			case 'K':
				p.castling.WhiteKingside = true
			case 'Q':
				p.castling.WhiteQueenside = true
			case 'k':
				p.castling.BlackKingside = true
			case 'q':
				p.castling.BlackQueenside = true
			default:
				return Position{}, fmt.Errorf("invalid FEN: castling field %q", parts[2])
			}
		}
	}

	if parts[3] != "-" {
		sq, err := core.ParseSquare(parts[3])
		if err != nil {
			return Position{}, fmt.Errorf("invalid FEN: en passant field: %w", err)
		}
		p.epTarget = sq
		p.hasEP = true
	}

	if _, err := fmt.Sscanf(parts[4], "%d", &p.halfmove); err != nil {
		return Position{}, fmt.Errorf("invalid FEN: halfmove counter")
	}
	if _, err := fmt.Sscanf(parts[5], "%d", &p.fullmove); err != nil {
		return Position{}, fmt.Errorf("invalid FEN: fullmove counter")
	}

	return p, nil
}

// FEN serializes the position to a FEN string. Round-tripping through FEN
// preserves everything except the move history.
func (p Position) FEN() string {
	var sb strings.Builder

	for r := 0; r < 8; r++ {
		empty := 0
		for f := 0; f < 8; f++ {
			pc := p.board[r][f]
			if pc.IsEmpty() {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteByte(pc.Letter())
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
		if r < 7 {
			sb.WriteByte('/')
		}
	}

	ep := "-"
	if p.hasEP {
		ep = p.epTarget.String()
	}

	fmt.Fprintf(&sb, " %s %s %s %d %d", p.turn, p.castling.FEN(), ep, p.halfmove, p.fullmove)
	return sb.String()
}

// ToASCII creates an ASCII representation of the board
func (p Position) ToASCII() string {
	var sb strings.Builder
	sb.WriteString("  a b c d e f g h\n")

	for r := 0; r < 8; r++ {
		sb.WriteString(fmt.Sprintf("%d ", 8-r))
		for f := 0; f < 8; f++ {
			pc := p.board[r][f]
			if pc.IsEmpty() {
				sb.WriteString(". ")
			} else {
				sb.WriteString(fmt.Sprintf("%c ", pc.Letter()))
			}
		}
		sb.WriteString(fmt.Sprintf(" %d\n", 8-r))
	}
	sb.WriteString("  a b c d e f g h")

	return sb.String()
}
