// FILE: internal/engine/eval.go
package engine

import (
	"chesskit/internal/core"
)

// Material values in centipawns. The king carries no material value; king
// safety is handled by the mate scores in the search, not by material.
var materialValue = [...]int{
	core.Pawn:   100,
	core.Knight: 320,
	core.Bishop: 330,
	core.Rook:   500,
	core.Queen:  900,
	core.King:   0,
}

const checkBonus = 50

// Piece-square tables indexed [row][col] with row 0 = rank 8, i.e. from
// White's perspective as-is; Black reads them mirrored vertically.

var pawnTable = [8][8]int{
	{0, 0, 0, 0, 0, 0, 0, 0},
	{50, 50, 50, 50, 50, 50, 50, 50},
	{10, 10, 20, 30, 30, 20, 10, 10},
	{5, 5, 10, 25, 25, 10, 5, 5},
	{0, 0, 0, 20, 20, 0, 0, 0},
	{5, -5, -10, 0, 0, -10, -5, 5},
	{5, 10, 10, -20, -20, 10, 10, 5},
	{0, 0, 0, 0, 0, 0, 0, 0},
}

var knightTable = [8][8]int{
	{-50, -40, -30, -30, -30, -30, -40, -50},
	{-40, -20, 0, 0, 0, 0, -20, -40},
	{-30, 0, 10, 15, 15, 10, 0, -30},
	{-30, 5, 15, 20, 20, 15, 5, -30},
	{-30, 0, 15, 20, 20, 15, 0, -30},
	{-30, 5, 10, 15, 15, 10, 5, -30},
	{-40, -20, 0, 5, 5, 0, -20, -40},
	{-50, -40, -30, -30, -30, -30, -40, -50},
}

// Evaluate scores the position in centipawns from White's perspective:
// material plus positional bonuses for pawns and knights, plus a fixed
// bonus when the opposing king is in check. This is a leaf heuristic only;
// it knows nothing about remaining search depth.
func Evaluate(p Position) int {
	score := 0

	for r := 0; r < 8; r++ {
		for f := 0; f < 8; f++ {
			pc := p.board[r][f]
			if pc.IsEmpty() {
				continue
			}

			value := materialValue[pc.Kind]
			switch pc.Kind {
			case core.Pawn:
				if pc.Color == core.ColorWhite {
					value += pawnTable[r][f]
				} else {
					value += pawnTable[7-r][f]
				}
			case core.Knight:
				if pc.Color == core.ColorWhite {
					value += knightTable[r][f]
				} else {
					value += knightTable[7-r][f]
				}
			}

			if pc.Color == core.ColorWhite {
				score += value
			} else {
				score -= value
			}
		}
	}

	if p.InCheck(core.ColorBlack) {
		score += checkBonus
	}
	if p.InCheck(core.ColorWhite) {
		score -= checkBonus
	}

	return score
}
