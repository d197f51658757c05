// FILE: internal/engine/check.go
package engine

import (
	"chesskit/internal/core"
)

// InCheck reports whether the given color's king is attacked. A color is in
// check iff any enemy piece's pseudo-move set includes the king's square.
func (p Position) InCheck(c core.Color) bool {
	king := p.kingSquare(c)
	enemy := core.OppositeColor(c)

	for r := 0; r < 8; r++ {
		for f := 0; f < 8; f++ {
			pc := p.board[r][f]
			if pc.IsEmpty() || pc.Color != enemy {
				continue
			}
			for _, to := range p.PseudoMoves(core.Square{Row: r, Col: f}) {
				if to == king {
					return true
				}
			}
		}
	}
	return false
}

// LegalMoves returns the full move records available to the given color, in
// board-scan order (row-major, then per-square pseudo-move order). A pseudo
// move is kept only if applying it does not leave the mover's own king in
// check. Promotions default to Queen in the returned records; callers pick
// the actual promotion kind when applying.
func (p Position) LegalMoves(c core.Color) []core.Move {
	var moves []core.Move
	for r := 0; r < 8; r++ {
		for f := 0; f < 8; f++ {
			pc := p.board[r][f]
			if pc.IsEmpty() || pc.Color != c {
				continue
			}
			from := core.Square{Row: r, Col: f}
			for _, to := range p.PseudoMoves(from) {
				next, record := p.apply(from, to, core.NoPiece)
				if !next.InCheck(c) {
					moves = append(moves, record)
				}
			}
		}
	}
	return moves
}

// Result classifies the position for the side to move: Checkmate when there
// are no legal moves and the king is in check, Stalemate when there are no
// legal moves without check, Ongoing otherwise. The fifty-move rule and
// repetition draws are deliberately not terminal states.
func (p Position) Result() core.Result {
	if len(p.LegalMoves(p.turn)) > 0 {
		return core.ResultOngoing
	}
	if p.InCheck(p.turn) {
		return core.ResultCheckmate
	}
	return core.ResultStalemate
}
