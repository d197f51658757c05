// FILE: internal/engine/position.go

// Package engine implements the chess rules core: board state, move
// generation, legality filtering, evaluation and the minimax search used
// for the computer opponent. A Position is an immutable value; every
// transition returns a new Position, which keeps the recursive search
// free of shared mutable state.
package engine

import (
	"chesskit/internal/core"
)

// Position is the complete game state: the 8x8 board plus the auxiliary
// state needed to generate and apply moves. The zero value is not usable;
// construct with NewPosition or FromFEN.
type Position struct {
	board    [8][8]core.Piece
	turn     core.Color
	castling core.CastlingRights
	epTarget core.Square
	hasEP    bool
	halfmove int
	fullmove int
	history  []core.Move
}

// NewPosition returns the standard starting position: White to move, full
// castling rights, no en-passant target, clocks at zero.
func NewPosition() Position {
	p, err := FromFEN(StartingFEN)
	if err != nil {
		// The starting FEN is a constant; failing to parse it is a bug.
		panic("engine: invalid starting position: " + err.Error())
	}
	return p
}

func (p Position) Turn() core.Color {
	return p.turn
}

func (p Position) PieceAt(sq core.Square) core.Piece {
	return p.board[sq.Row][sq.Col]
}

func (p Position) CastlingRights() core.CastlingRights {
	return p.castling
}

// EnPassantTarget returns the square a pawn skipped on the immediately
// preceding double-step move, if any.
func (p Position) EnPassantTarget() (core.Square, bool) {
	return p.epTarget, p.hasEP
}

func (p Position) HalfmoveClock() int {
	return p.halfmove
}

func (p Position) FullmoveNumber() int {
	return p.fullmove
}

// History returns the applied move records in order. The returned slice is
// a copy; the position's own history never changes after construction.
func (p Position) History() []core.Move {
	out := make([]core.Move, len(p.history))
	copy(out, p.history)
	return out
}

// LastMove returns the most recent move record, if any move was applied.
func (p Position) LastMove() (core.Move, bool) {
	if len(p.history) == 0 {
		return core.Move{}, false
	}
	return p.history[len(p.history)-1], true
}

// kingSquare locates the king of the given color. A legal game state has
// exactly one king per side; its absence means the position is corrupt.
func (p Position) kingSquare(c core.Color) core.Square {
	for r := 0; r < 8; r++ {
		for f := 0; f < 8; f++ {
			pc := p.board[r][f]
			if pc.Kind == core.King && pc.Color == c {
				return core.Square{Row: r, Col: f}
			}
		}
	}
	panic("engine: no king on board for color " + c.String())
}
