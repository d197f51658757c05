// FILE: internal/engine/apply.go
package engine

import (
	"chesskit/internal/core"
)

// Apply is a pure transition: it returns a new Position with the move made
// and a record of what happened appended to the new position's history. The
// original position is unchanged.
//
// Apply performs no legality checking. Callers are expected to pass only
// from/to pairs produced by LegalMoves; anything else is validated upstream.
// A promotion of NoPiece defaults to Queen when a pawn reaches the last rank.
func (p Position) Apply(from, to core.Square, promotion core.PieceKind) Position {
	next, record := p.apply(from, to, promotion)

	// Append to a freshly copied history so positions never share backing
	// arrays; each Position's history is immutable once built.
	next.history = make([]core.Move, len(p.history)+1)
	copy(next.history, p.history)
	next.history[len(p.history)] = record

	return next
}

// apply performs the board transition without touching the history slice.
// The legality filter and the search use it directly: they discard the
// resulting position, so copying history there would be wasted work.
func (p Position) apply(from, to core.Square, promotion core.PieceKind) (Position, core.Move) {
	next := p
	next.history = nil

	mover := p.board[from.Row][from.Col]
	record := core.Move{
		From:     from,
		To:       to,
		Piece:    mover,
		Captured: p.board[to.Row][to.Col],
	}

	// En-passant capture: the captured pawn sits behind the destination.
	if mover.Kind == core.Pawn && p.hasEP && to == p.epTarget && from.Col != to.Col {
		behind := to.Row - pawnDir(mover.Color)
		record.Captured = next.board[behind][to.Col]
		record.EnPassant = true
		next.board[behind][to.Col] = core.Piece{}
	}

	// Castling: a king moving two columns drags the rook next to it.
	if mover.Kind == core.King && to.Col-from.Col == 2 {
		record.Castle = core.CastleKingside
		next.board[from.Row][5] = next.board[from.Row][7]
		next.board[from.Row][7] = core.Piece{}
	} else if mover.Kind == core.King && from.Col-to.Col == 2 {
		record.Castle = core.CastleQueenside
		next.board[from.Row][3] = next.board[from.Row][0]
		next.board[from.Row][0] = core.Piece{}
	}

	next.board[to.Row][to.Col] = mover
	next.board[from.Row][from.Col] = core.Piece{}

	// Promotion: a pawn on the last rank becomes the requested kind,
	// Queen when unspecified.
	if mover.Kind == core.Pawn && to.Row == homeRow(core.OppositeColor(mover.Color)) {
		if promotion == core.NoPiece {
			promotion = core.Queen
		}
		next.board[to.Row][to.Col] = core.Piece{Kind: promotion, Color: mover.Color}
		record.Promotion = promotion
	}

	next.updateCastlingRights(mover, from, to)

	// En-passant target: set to the skipped square only on a pawn
	// double step, cleared otherwise.
	next.hasEP = false
	if mover.Kind == core.Pawn && (to.Row-from.Row == 2 || from.Row-to.Row == 2) {
		next.epTarget = core.Square{Row: (from.Row + to.Row) / 2, Col: from.Col}
		next.hasEP = true
	}

	if !record.Captured.IsEmpty() || mover.Kind == core.Pawn {
		next.halfmove = 0
	} else {
		next.halfmove = p.halfmove + 1
	}
	if p.turn == core.ColorBlack {
		next.fullmove = p.fullmove + 1
	}
	next.turn = core.OppositeColor(p.turn)

	return next, record
}

// updateCastlingRights clears rights after a king move, a rook move off a
// corner column, or a capture landing on a corner. Rights only ever go from
// true to false.
func (next *Position) updateCastlingRights(mover core.Piece, from, to core.Square) {
	if mover.Kind == core.King {
		next.castling.ClearAll(mover.Color)
	}
	if mover.Kind == core.Rook {
		if from.Col == 0 {
			next.castling.Clear(mover.Color, core.CastleQueenside)
		} else if from.Col == 7 {
			next.castling.Clear(mover.Color, core.CastleKingside)
		}
	}

	// A rook captured on its home corner loses that wing's right too.
	switch to {
	case core.Square{Row: 0, Col: 0}:
		next.castling.Clear(core.ColorBlack, core.CastleQueenside)
	case core.Square{Row: 0, Col: 7}:
		next.castling.Clear(core.ColorBlack, core.CastleKingside)
	case core.Square{Row: 7, Col: 0}:
		next.castling.Clear(core.ColorWhite, core.CastleQueenside)
	case core.Square{Row: 7, Col: 7}:
		next.castling.Clear(core.ColorWhite, core.CastleKingside)
	}
}
