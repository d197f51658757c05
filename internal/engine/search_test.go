// FILE: internal/engine/search_test.go
package engine

import (
	"strings"
	"testing"

	"chesskit/internal/core"
)

func TestBestMoveFindsBackRankMate(t *testing.T) {
	p := mustFromFEN(t, "6k1/5ppp/8/8/8/8/8/R3K3 w - - 0 1")

	result, ok := BestMove(p, 2)
	if !ok {
		t.Fatal("BestMove returned no move")
	}
	if got := result.Move.UCI(); got != "a1a8" {
		t.Errorf("best move = %s, want a1a8", got)
	}
	if result.Score != mateScore-1 {
		t.Errorf("score = %d, want %d (mate in one)", result.Score, mateScore-1)
	}
}

func TestBestMoveForBlackFindsMate(t *testing.T) {
	p := mustFromFEN(t, "r3k3/8/8/8/8/8/5PPP/6K1 b - - 0 1")

	result, ok := BestMove(p, 2)
	if !ok {
		t.Fatal("BestMove returned no move")
	}
	if got := result.Move.UCI(); got != "a8a1" {
		t.Errorf("best move = %s, want a8a1", got)
	}
	if result.Score != -(mateScore - 1) {
		t.Errorf("score = %d, want %d", result.Score, -(mateScore - 1))
	}
}

func TestBestMoveTakesHangingQueen(t *testing.T) {
	p := mustFromFEN(t, "k7/8/8/3q4/8/8/3R4/K7 w - - 0 1")

	result, ok := BestMove(p, 1)
	if !ok {
		t.Fatal("BestMove returned no move")
	}
	if got := result.Move.UCI(); got != "d2d5" {
		t.Errorf("best move = %s, want d2d5", got)
	}
}

func TestBestMoveReturnsFalseWithNoMoves(t *testing.T) {
	stalemate := mustFromFEN(t, "k7/2Q5/1K6/8/8/8/8/8 b - - 0 1")
	if _, ok := BestMove(stalemate, 3); ok {
		t.Error("BestMove returned a move in a stalemate position")
	}

	mate := playUCI(t, NewPosition(), "f2f3", "e7e5", "g2g4", "d8h4")
	if _, ok := BestMove(mate, 3); ok {
		t.Error("BestMove returned a move in a checkmate position")
	}
}

// mirrorFEN flips the board vertically and swaps the colors of every piece,
// the side to move, the castling rights and the en-passant rank. The
// mirrored position is the same game from the other side's point of view.
func mirrorFEN(t *testing.T, fen string) string {
	t.Helper()
	parts := strings.Fields(fen)
	if len(parts) != 6 {
		t.Fatalf("malformed FEN %q", fen)
	}

	swapCase := func(s string) string {
		var sb strings.Builder
		for _, ch := range s {
			switch {
			case ch >= 'a' && ch <= 'z':
				sb.WriteRune(ch - 32)
			case ch >= 'A' && ch <= 'Z':
				sb.WriteRune(ch + 32)
			default:
				sb.WriteRune(ch)
			}
		}
		return sb.String()
	}

	ranks := strings.Split(parts[0], "/")
	flipped := make([]string, 8)
	for i, rank := range ranks {
		flipped[7-i] = swapCase(rank)
	}

	turn := "w"
	if parts[1] == "w" {
		turn = "b"
	}

	castling := "-"
	if parts[2] != "-" {
		swapped := swapCase(parts[2])
		out := ""
		for _, ch := range "KQkq" {
			if strings.ContainsRune(swapped, ch) {
				out += string(ch)
			}
		}
		castling = out
	}

	ep := parts[3]
	if ep != "-" {
		ep = string(ep[0]) + string('0'+9-(ep[1]-'0'))
	}

	return strings.Join(flipped, "/") + " " + turn + " " + castling + " " + ep + " " + parts[4] + " " + parts[5]
}

func TestSearchIsColorSymmetric(t *testing.T) {
	cases := []string{
		StartingFEN,
		"rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
		"k7/8/8/3q4/8/8/3R4/K7 w - - 0 1",
	}
	for _, fen := range cases {
		p := mustFromFEN(t, fen)
		m := mustFromFEN(t, mirrorFEN(t, fen))

		got, okP := BestMove(p, 2)
		mirrored, okM := BestMove(m, 2)
		if okP != okM {
			t.Errorf("%s: move availability differs between mirrors", fen)
			continue
		}
		if got.Score != -mirrored.Score {
			t.Errorf("%s: score %d, mirrored score %d, want exact negation", fen, got.Score, mirrored.Score)
		}
	}
}

// plainMinimax is a reference search without pruning. Alpha-beta must agree
// with it exactly: pruning only skips branches that cannot change the value.
func plainMinimax(p Position, depth, ply int, maximizing bool) int {
	if depth == 0 {
		return Evaluate(p)
	}

	moves := p.LegalMoves(p.turn)
	if len(moves) == 0 {
		if p.InCheck(p.turn) {
			if maximizing {
				return -mateScore + ply
			}
			return mateScore - ply
		}
		return 0
	}

	best := -infinity
	if !maximizing {
		best = infinity
	}
	for _, mv := range moves {
		next, _ := p.apply(mv.From, mv.To, core.NoPiece)
		score := plainMinimax(next, depth-1, ply+1, !maximizing)
		if maximizing && score > best {
			best = score
		}
		if !maximizing && score < best {
			best = score
		}
	}
	return best
}

func plainBest(p Position, depth int) (core.Move, int) {
	moves := p.LegalMoves(p.turn)
	maximizing := p.turn == core.ColorWhite

	best := moves[0]
	bestScore := infinity
	if maximizing {
		bestScore = -infinity
	}
	for _, mv := range moves {
		next, _ := p.apply(mv.From, mv.To, core.NoPiece)
		score := plainMinimax(next, depth-1, 1, !maximizing)
		if maximizing && score > bestScore {
			bestScore, best = score, mv
		}
		if !maximizing && score < bestScore {
			bestScore, best = score, mv
		}
	}
	return best, bestScore
}

func TestPruningMatchesPlainMinimax(t *testing.T) {
	cases := []struct {
		fen   string
		depth int
	}{
		{StartingFEN, 1},
		{StartingFEN, 2},
		{"rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1", 2},
		{"k7/8/8/3q4/8/8/3R4/K7 w - - 0 1", 3},
		{"6k1/5ppp/8/8/8/8/8/R3K3 w - - 0 1", 3},
	}
	for _, tc := range cases {
		p := mustFromFEN(t, tc.fen)

		wantMove, wantScore := plainBest(p, tc.depth)
		got, ok := BestMove(p, tc.depth)
		if !ok {
			t.Errorf("%s depth %d: BestMove returned no move", tc.fen, tc.depth)
			continue
		}
		if got.Score != wantScore {
			t.Errorf("%s depth %d: score %d, reference %d", tc.fen, tc.depth, got.Score, wantScore)
		}
		if got.Move.UCI() != wantMove.UCI() {
			t.Errorf("%s depth %d: move %s, reference %s", tc.fen, tc.depth, got.Move.UCI(), wantMove.UCI())
		}
	}
}

func TestSearchResultDepth(t *testing.T) {
	result, ok := BestMove(NewPosition(), 3)
	if !ok {
		t.Fatal("BestMove returned no move")
	}
	if result.Depth != 3 {
		t.Errorf("depth = %d, want 3", result.Depth)
	}
}
