// FILE: internal/engine/search.go
package engine

import (
	"chesskit/internal/core"
)

const (
	// mateScore is the magnitude of a checkmate leaf. Mate scores are
	// biased by ply so the search prefers the shortest forced mate.
	mateScore = 10000

	infinity = 1 << 30
)

// SearchResult is the move chosen for the side to move plus the minimax
// score (from White's perspective) and the depth it was searched at.
type SearchResult struct {
	Move  core.Move
	Score int
	Depth int
}

// BestMove runs a depth-limited minimax search with alpha-beta pruning and
// returns the best move for the side to move. The second return value is
// false when there are no legal moves; callers should have checked Result
// before searching. The search is a pure synchronous tree walk: depth is
// the only termination control.
func BestMove(p Position, depth int) (SearchResult, bool) {
	moves := p.LegalMoves(p.turn)
	if len(moves) == 0 {
		return SearchResult{}, false
	}

	maximizing := p.turn == core.ColorWhite
	alpha, beta := -infinity, infinity

	best := moves[0]
	bestScore := infinity
	if maximizing {
		bestScore = -infinity
	}

	for _, mv := range moves {
		next, _ := p.apply(mv.From, mv.To, core.NoPiece)
		score := minimax(next, depth-1, 1, alpha, beta, !maximizing)

		if maximizing {
			if score > bestScore {
				bestScore, best = score, mv
			}
			if score > alpha {
				alpha = score
			}
		} else {
			if score < bestScore {
				bestScore, best = score, mv
			}
			if score < beta {
				beta = score
			}
		}
	}

	return SearchResult{Move: best, Score: bestScore, Depth: depth}, true
}

// minimax explores the tree to the given remaining depth, maintaining the
// running alpha/beta bounds and pruning branches that cannot affect the
// root decision. ply counts half-moves from the root.
func minimax(p Position, depth, ply, alpha, beta int, maximizing bool) int {
	if depth == 0 {
		return Evaluate(p)
	}

	moves := p.LegalMoves(p.turn)
	if len(moves) == 0 {
		if p.InCheck(p.turn) {
			// The side to move is mated; closer mates score stronger.
			if maximizing {
				return -mateScore + ply
			}
			return mateScore - ply
		}
		return 0 // stalemate
	}

	if maximizing {
		best := -infinity
		for _, mv := range moves {
			next, _ := p.apply(mv.From, mv.To, core.NoPiece)
			score := minimax(next, depth-1, ply+1, alpha, beta, false)
			if score > best {
				best = score
			}
			if best > alpha {
				alpha = best
			}
			if beta <= alpha {
				break
			}
		}
		return best
	}

	best := infinity
	for _, mv := range moves {
		next, _ := p.apply(mv.From, mv.To, core.NoPiece)
		score := minimax(next, depth-1, ply+1, alpha, beta, true)
		if score < best {
			best = score
		}
		if best < beta {
			beta = best
		}
		if beta <= alpha {
			break
		}
	}
	return best
}
