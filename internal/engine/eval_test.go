// FILE: internal/engine/eval_test.go
package engine

import (
	"testing"

	"chesskit/internal/core"
)

func TestEvaluateStartingPositionIsBalanced(t *testing.T) {
	if got := Evaluate(NewPosition()); got != 0 {
		t.Errorf("Evaluate(start) = %d, want 0", got)
	}
}

func TestEvaluateMaterialImbalance(t *testing.T) {
	// White is a rook up; the rook has no piece-square table.
	p := mustFromFEN(t, "4k3/8/8/8/8/8/8/R3K3 w - - 0 1")
	if got := Evaluate(p); got != 500 {
		t.Errorf("Evaluate = %d, want 500", got)
	}

	// Mirrored material gives the mirrored score.
	p = mustFromFEN(t, "r3k3/8/8/8/8/8/8/4K3 w - - 0 1")
	if got := Evaluate(p); got != -500 {
		t.Errorf("Evaluate = %d, want -500", got)
	}
}

func TestEvaluateCheckBonus(t *testing.T) {
	p := mustFromFEN(t, "4k3/4R3/8/8/8/8/8/4K3 b - - 0 1")
	if got := Evaluate(p); got != 550 {
		t.Errorf("Evaluate = %d, want rook value plus check bonus (550)", got)
	}
}

func TestEvaluatePieceSquareMirror(t *testing.T) {
	// A white knight on f3 and a black knight on f6 occupy mirrored
	// squares and read the same table value, so the position is balanced.
	white := mustFromFEN(t, "4k3/8/8/8/8/5N2/8/4K3 w - - 0 1")
	black := mustFromFEN(t, "4k3/8/5n2/8/8/8/8/4K3 w - - 0 1")

	w, b := Evaluate(white), Evaluate(black)
	if w != -b {
		t.Errorf("mirror scores not symmetric: %d vs %d", w, b)
	}
	if w <= materialValue[core.Knight] {
		t.Errorf("developed knight score %d not above bare material %d", w, materialValue[core.Knight])
	}
}

func TestEvaluateCentralPawnAdvance(t *testing.T) {
	start := NewPosition()
	after := start.Apply(sq(t, "e2"), sq(t, "e4"), core.NoPiece)
	if Evaluate(after) <= Evaluate(start) {
		t.Errorf("advancing the e-pawn did not improve the score: %d vs %d",
			Evaluate(after), Evaluate(start))
	}
}
