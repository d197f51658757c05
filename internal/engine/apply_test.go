// FILE: internal/engine/apply_test.go
package engine

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"chesskit/internal/core"
)

func sq(t *testing.T, name string) core.Square {
	t.Helper()
	s, err := core.ParseSquare(name)
	if err != nil {
		t.Fatalf("ParseSquare(%q): %v", name, err)
	}
	return s
}

// playUCI applies a sequence of coordinate moves, failing the test if any
// of them is not legal for the side to move.
func playUCI(t *testing.T, p Position, moves ...string) Position {
	t.Helper()
	for _, uci := range moves {
		found := false
		for _, mv := range p.LegalMoves(p.Turn()) {
			if mv.UCI() == uci {
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("move %s is not legal in %s", uci, p.FEN())
		}
		promo := core.NoPiece
		if len(uci) == 5 {
			promo = core.KindFromLetter(uci[4])
		}
		p = p.Apply(sq(t, uci[:2]), sq(t, uci[2:4]), promo)
	}
	return p
}

func TestApplyRecordsMoveAndFlipsTurn(t *testing.T) {
	start := NewPosition()
	p := start.Apply(sq(t, "e2"), sq(t, "e4"), core.NoPiece)

	if got := p.Turn(); got != core.ColorBlack {
		t.Errorf("turn after White's move = %v, want Black", got)
	}
	last, ok := p.LastMove()
	if !ok {
		t.Fatal("no move recorded")
	}
	if got := last.UCI(); got != "e2e4" {
		t.Errorf("recorded move = %s, want e2e4", got)
	}
	if ep, has := p.EnPassantTarget(); !has || ep.String() != "e3" {
		t.Errorf("en passant target = %v (%v), want e3", ep, has)
	}

	// The original position is untouched.
	if len(start.History()) != 0 {
		t.Errorf("original position's history grew to %d", len(start.History()))
	}
	if got := start.Turn(); got != core.ColorWhite {
		t.Errorf("original position's turn changed to %v", got)
	}
}

func TestHistoryRoundTrip(t *testing.T) {
	uci := []string{"e2e4", "e7e5", "g1f3", "b8c6", "f1b5", "a7a6"}
	p := playUCI(t, NewPosition(), uci...)

	got := make([]string, 0, len(uci))
	for _, mv := range p.History() {
		got = append(got, mv.UCI())
	}
	if diff := cmp.Diff(uci, got); diff != "" {
		t.Errorf("history mismatch (-want +got):\n%s", diff)
	}
	if got := p.FullmoveNumber(); got != 4 {
		t.Errorf("fullmove number = %d, want 4", got)
	}
}

func TestEnPassantCaptureRemovesPawnBehind(t *testing.T) {
	p := playUCI(t, NewPosition(), "e2e4", "a7a6", "e4e5", "d7d5")

	if ep, has := p.EnPassantTarget(); !has || ep.String() != "d6" {
		t.Fatalf("en passant target = %v (%v), want d6", ep, has)
	}

	p = playUCI(t, p, "e5d6")
	last, _ := p.LastMove()
	if !last.EnPassant {
		t.Error("move not recorded as en passant")
	}
	if got := last.Captured; got != (core.Piece{Kind: core.Pawn, Color: core.ColorBlack}) {
		t.Errorf("captured piece = %+v, want black pawn", got)
	}
	if got := p.PieceAt(sq(t, "d5")); !got.IsEmpty() {
		t.Errorf("captured pawn still on d5: %+v", got)
	}
	if got := p.PieceAt(sq(t, "d6")); got != (core.Piece{Kind: core.Pawn, Color: core.ColorWhite}) {
		t.Errorf("d6 = %+v, want white pawn", got)
	}
}

func TestCastlingRelocatesRook(t *testing.T) {
	p := mustFromFEN(t, "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	p = p.Apply(sq(t, "e1"), sq(t, "g1"), core.NoPiece)

	if got := p.PieceAt(sq(t, "g1")); got != (core.Piece{Kind: core.King, Color: core.ColorWhite}) {
		t.Errorf("g1 = %+v, want white king", got)
	}
	if got := p.PieceAt(sq(t, "f1")); got != (core.Piece{Kind: core.Rook, Color: core.ColorWhite}) {
		t.Errorf("f1 = %+v, want white rook", got)
	}
	if got := p.PieceAt(sq(t, "h1")); !got.IsEmpty() {
		t.Errorf("h1 still occupied: %+v", got)
	}

	last, _ := p.LastMove()
	if last.Castle != core.CastleKingside {
		t.Errorf("castle side = %v, want kingside", last.Castle)
	}
	cr := p.CastlingRights()
	if cr.WhiteKingside || cr.WhiteQueenside {
		t.Errorf("white rights not cleared after castling: %+v", cr)
	}
	if !cr.BlackKingside || !cr.BlackQueenside {
		t.Errorf("black rights disturbed: %+v", cr)
	}
}

func TestPromotionDefaultsToQueen(t *testing.T) {
	p := mustFromFEN(t, "8/P7/8/8/8/8/8/k5K1 w - - 0 1")
	p = p.Apply(sq(t, "a7"), sq(t, "a8"), core.NoPiece)

	if got := p.PieceAt(sq(t, "a8")); got != (core.Piece{Kind: core.Queen, Color: core.ColorWhite}) {
		t.Errorf("a8 = %+v, want white queen", got)
	}
	last, _ := p.LastMove()
	if last.Promotion != core.Queen {
		t.Errorf("recorded promotion = %v, want queen", last.Promotion)
	}
	if got := last.UCI(); got != "a7a8q" {
		t.Errorf("recorded move = %s, want a7a8q", got)
	}
}

func TestPromotionHonorsExplicitKind(t *testing.T) {
	p := mustFromFEN(t, "8/P7/8/8/8/8/8/k5K1 w - - 0 1")
	p = p.Apply(sq(t, "a7"), sq(t, "a8"), core.Knight)

	if got := p.PieceAt(sq(t, "a8")); got != (core.Piece{Kind: core.Knight, Color: core.ColorWhite}) {
		t.Errorf("a8 = %+v, want white knight", got)
	}
	last, _ := p.LastMove()
	if got := last.UCI(); got != "a7a8n" {
		t.Errorf("recorded move = %s, want a7a8n", got)
	}
}

func TestCastlingRightsNeverComeBack(t *testing.T) {
	p := NewPosition()
	prev := p.CastlingRights()

	for _, uci := range []string{"e2e4", "e7e5", "g1f3", "b8c6", "f1c4", "g8f6", "e1g1", "h7h6", "h2h3", "h8h7"} {
		p = playUCI(t, p, uci)
		cur := p.CastlingRights()

		regained := (!prev.WhiteKingside && cur.WhiteKingside) ||
			(!prev.WhiteQueenside && cur.WhiteQueenside) ||
			(!prev.BlackKingside && cur.BlackKingside) ||
			(!prev.BlackQueenside && cur.BlackQueenside)
		if regained {
			t.Fatalf("castling right regained after %s: %+v -> %+v", uci, prev, cur)
		}
		prev = cur
	}

	if prev.WhiteKingside || prev.WhiteQueenside {
		t.Errorf("white rights survive after king moved: %+v", prev)
	}
	if prev.BlackKingside {
		t.Errorf("black kingside right survives after h8 rook moved: %+v", prev)
	}
	if !prev.BlackQueenside {
		t.Errorf("black queenside right lost without cause: %+v", prev)
	}
}

func TestRookCapturedOnHomeCornerClearsRight(t *testing.T) {
	p := mustFromFEN(t, "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	p = p.Apply(sq(t, "a1"), sq(t, "a8"), core.NoPiece)

	cr := p.CastlingRights()
	if cr.BlackQueenside {
		t.Error("black queenside right survives with its rook captured")
	}
	if !cr.BlackKingside {
		t.Error("black kingside right lost without cause")
	}
	if cr.WhiteQueenside {
		t.Error("white queenside right survives after a1 rook moved")
	}
	if !cr.WhiteKingside {
		t.Error("white kingside right lost without cause")
	}
}

func TestClocks(t *testing.T) {
	p := playUCI(t, NewPosition(), "g1f3", "g8f6")
	if got := p.HalfmoveClock(); got != 2 {
		t.Errorf("halfmove clock after two knight moves = %d, want 2", got)
	}

	p = playUCI(t, p, "d2d4")
	if got := p.HalfmoveClock(); got != 0 {
		t.Errorf("halfmove clock after pawn move = %d, want 0", got)
	}
	if got := p.FullmoveNumber(); got != 2 {
		t.Errorf("fullmove number = %d, want 2", got)
	}
}
