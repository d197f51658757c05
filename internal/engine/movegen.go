// FILE: internal/engine/movegen.go
package engine

import (
	"chesskit/internal/core"
)

type delta struct {
	dr int
	dc int
}

var (
	rookDirs   = []delta{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	bishopDirs = []delta{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
	kingDirs   = []delta{{1, 0}, {-1, 0}, {0, 1}, {0, -1}, {1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
	knightDirs = []delta{{2, 1}, {2, -1}, {-2, 1}, {-2, -1}, {1, 2}, {1, -2}, {-1, 2}, {-1, -2}}
)

// pawnDir is the row delta a pawn of the given color advances by.
func pawnDir(c core.Color) int {
	if c == core.ColorWhite {
		return -1
	}
	return 1
}

// pawnStartRow is the rank a pawn of the given color starts on.
func pawnStartRow(c core.Color) int {
	if c == core.ColorWhite {
		return 6
	}
	return 1
}

// homeRow is the back rank of the given color.
func homeRow(c core.Color) int {
	if c == core.ColorWhite {
		return 7
	}
	return 0
}

// PseudoMoves returns the destination squares the piece at from could move
// to, ignoring whether the mover's own king would end up in check. An empty
// or enemy-occupied from square yields no moves.
func (p Position) PseudoMoves(from core.Square) []core.Square {
	pc := p.board[from.Row][from.Col]
	if pc.IsEmpty() {
		return nil
	}

	switch pc.Kind {
	case core.Pawn:
		return p.pawnMoves(from, pc.Color)
	case core.Knight:
		return p.stepMoves(from, pc.Color, knightDirs)
	case core.Bishop:
		return p.slideMoves(from, pc.Color, bishopDirs)
	case core.Rook:
		return p.slideMoves(from, pc.Color, rookDirs)
	case core.Queen:
		return p.slideMoves(from, pc.Color, append(append([]delta(nil), rookDirs...), bishopDirs...))
	case core.King:
		return append(p.stepMoves(from, pc.Color, kingDirs), p.castleMoves(from, pc.Color)...)
	}
	return nil
}

// slideMoves walks each direction until hitting the board edge, an own
// piece (stop before) or an enemy piece (include, then stop).
func (p Position) slideMoves(from core.Square, c core.Color, dirs []delta) []core.Square {
	var moves []core.Square
	for _, d := range dirs {
		sq := core.Square{Row: from.Row + d.dr, Col: from.Col + d.dc}
		for sq.OnBoard() {
			target := p.board[sq.Row][sq.Col]
			if target.IsEmpty() {
				moves = append(moves, sq)
			} else {
				if target.Color != c {
					moves = append(moves, sq)
				}
				break
			}
			sq = core.Square{Row: sq.Row + d.dr, Col: sq.Col + d.dc}
		}
	}
	return moves
}

// stepMoves applies a fixed offset table, filtered to on-board squares not
// occupied by a same-color piece.
func (p Position) stepMoves(from core.Square, c core.Color, dirs []delta) []core.Square {
	var moves []core.Square
	for _, d := range dirs {
		sq := core.Square{Row: from.Row + d.dr, Col: from.Col + d.dc}
		if !sq.OnBoard() {
			continue
		}
		target := p.board[sq.Row][sq.Col]
		if target.IsEmpty() || target.Color != c {
			moves = append(moves, sq)
		}
	}
	return moves
}

func (p Position) pawnMoves(from core.Square, c core.Color) []core.Square {
	var moves []core.Square
	dir := pawnDir(c)

	// Single step onto an empty square, double step from the start rank
	// only if both squares ahead are empty.
	one := core.Square{Row: from.Row + dir, Col: from.Col}
	if one.OnBoard() && p.board[one.Row][one.Col].IsEmpty() {
		moves = append(moves, one)
		if from.Row == pawnStartRow(c) {
			two := core.Square{Row: from.Row + 2*dir, Col: from.Col}
			if p.board[two.Row][two.Col].IsEmpty() {
				moves = append(moves, two)
			}
		}
	}

	// Diagonal capture onto an enemy piece or the en-passant target.
	for _, dc := range []int{-1, 1} {
		sq := core.Square{Row: from.Row + dir, Col: from.Col + dc}
		if !sq.OnBoard() {
			continue
		}
		target := p.board[sq.Row][sq.Col]
		if !target.IsEmpty() && target.Color != c {
			moves = append(moves, sq)
		} else if p.hasEP && sq == p.epTarget {
			moves = append(moves, sq)
		}
	}

	return moves
}

// castleMoves generates the two-square king moves for castling: rights flag
// still set, rook on its corner, squares between king and rook empty. The
// legality filter only checks the resulting position for check; the king's
// path is not verified to be attack-free.
func (p Position) castleMoves(from core.Square, c core.Color) []core.Square {
	row := homeRow(c)
	if from.Row != row || from.Col != 4 {
		return nil
	}

	var moves []core.Square
	rook := core.Piece{Kind: core.Rook, Color: c}

	if p.castling.Allows(c, core.CastleKingside) && p.board[row][7] == rook &&
		p.board[row][5].IsEmpty() && p.board[row][6].IsEmpty() {
		moves = append(moves, core.Square{Row: row, Col: 6})
	}
	if p.castling.Allows(c, core.CastleQueenside) && p.board[row][0] == rook &&
		p.board[row][1].IsEmpty() && p.board[row][2].IsEmpty() && p.board[row][3].IsEmpty() {
		moves = append(moves, core.Square{Row: row, Col: 2})
	}
	return moves
}
