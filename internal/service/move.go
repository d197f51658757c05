// FILE: internal/service/move.go
package service

import (
	"fmt"
	"time"

	"chesskit/internal/core"
	"chesskit/internal/engine"
	"chesskit/internal/game"
	"chesskit/internal/storage"
)

// IllegalMoveError reports a well-formed move that is not legal in the
// current position. Transports map it to a client error rather than a
// server failure.
type IllegalMoveError struct {
	Move string
}

func (e *IllegalMoveError) Error() string {
	return fmt.Sprintf("illegal move: %s", e.Move)
}

// parseUCI splits coordinate notation ("e2e4", "e7e8q") into its parts.
func parseUCI(moveUCI string) (from, to core.Square, promotion core.PieceKind, err error) {
	if len(moveUCI) != 4 && len(moveUCI) != 5 {
		err = fmt.Errorf("malformed move: %q", moveUCI)
		return
	}
	if from, err = core.ParseSquare(moveUCI[:2]); err != nil {
		return
	}
	if to, err = core.ParseSquare(moveUCI[2:4]); err != nil {
		return
	}
	if len(moveUCI) == 5 {
		promotion = core.KindFromLetter(moveUCI[4])
		switch promotion {
		case core.Queen, core.Rook, core.Bishop, core.Knight:
		default:
			err = fmt.Errorf("invalid promotion piece: %q", moveUCI[4])
		}
	}
	return
}

// MakeHumanMove validates and applies a move supplied by a human player.
// It returns IllegalMoveError when the move is well formed but not legal
// in the current position.
func (s *Service) MakeHumanMove(gameID, moveUCI string) (*game.MoveResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	g, ok := s.games[gameID]
	if !ok {
		return nil, fmt.Errorf("game not found: %s", gameID)
	}
	if g.State() != core.StateOngoing {
		return nil, fmt.Errorf("game is over: %s", g.State())
	}
	if g.NextPlayer().Type != core.PlayerHuman {
		return nil, fmt.Errorf("not a human player's turn")
	}

	from, to, promotion, err := parseUCI(moveUCI)
	if err != nil {
		return nil, err
	}

	pos := g.CurrentPosition()
	legal := false
	for _, mv := range pos.LegalMoves(pos.Turn()) {
		if mv.From == from && mv.To == to {
			legal = true
			break
		}
	}
	if !legal {
		return nil, &IllegalMoveError{Move: moveUCI}
	}

	mover := pos.Turn()
	next := pos.Apply(from, to, promotion)
	applied, _ := next.LastMove()

	result := &game.MoveResult{
		Move:      applied.UCI(),
		Player:    mover,
		GameState: s.advance(gameID, g, next, applied.UCI(), mover),
	}
	g.SetLastResult(result)
	return result, nil
}

// MakeComputerMove runs the search for the side to move and applies the
// chosen move. The caller decides when the computer moves; there is no
// background engine activity.
func (s *Service) MakeComputerMove(gameID string) (*game.MoveResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	g, ok := s.games[gameID]
	if !ok {
		return nil, fmt.Errorf("game not found: %s", gameID)
	}
	if g.State() != core.StateOngoing {
		return nil, fmt.Errorf("game is over: %s", g.State())
	}

	player := g.NextPlayer()
	if player.Type != core.PlayerComputer {
		return nil, fmt.Errorf("not a computer player's turn")
	}

	pos := g.CurrentPosition()
	found, ok := engine.BestMove(pos, player.Depth)
	if !ok {
		// No legal moves: the position was terminal all along (a game
		// resumed from a finished FEN). Settle the state now.
		s.finalize(gameID, g, pos)
		return nil, fmt.Errorf("game is over: %s", g.State())
	}

	mover := pos.Turn()
	next := pos.Apply(found.Move.From, found.Move.To, found.Move.Promotion)
	applied, _ := next.LastMove()

	result := &game.MoveResult{
		Move:      applied.UCI(),
		Player:    mover,
		GameState: s.advance(gameID, g, next, applied.UCI(), mover),
		Score:     found.Score,
		Depth:     found.Depth,
	}
	g.SetLastResult(result)
	return result, nil
}

// LegalTargets lists the destination squares of all legal moves from the
// given square, for client-side highlighting.
func (s *Service) LegalTargets(gameID, fromSquare string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	g, ok := s.games[gameID]
	if !ok {
		return nil, fmt.Errorf("game not found: %s", gameID)
	}

	from, err := core.ParseSquare(fromSquare)
	if err != nil {
		return nil, err
	}

	pos := g.CurrentPosition()
	targets := []string{}
	for _, mv := range pos.LegalMoves(pos.Turn()) {
		if mv.From == from {
			targets = append(targets, mv.To.String())
		}
	}
	return targets, nil
}

// advance commits an applied position to the game, persists the move and
// settles the game state if the new position is terminal. Callers hold the
// write lock.
func (s *Service) advance(gameID string, g *game.Game, next engine.Position, moveUCI string, mover core.Color) core.State {
	g.AddSnapshot(next, moveUCI)

	if s.store != nil {
		s.store.RecordMove(storage.MoveRecord{
			GameID:       gameID,
			MoveNumber:   g.MoveCount(),
			MoveUCI:      moveUCI,
			FENAfterMove: next.FEN(),
			PlayerColor:  mover.String(),
			MoveTimeUTC:  time.Now().UTC(),
		})
	}

	s.finalize(gameID, g, next)
	return g.State()
}

// finalize maps a terminal position onto the game state and records the
// outcome. Checkmate is a win for the side that just moved; stalemate is
// its own state, distinct from a draw.
func (s *Service) finalize(gameID string, g *game.Game, pos engine.Position) {
	var state core.State
	switch pos.Result() {
	case core.ResultCheckmate:
		if pos.Turn() == core.ColorWhite {
			state = core.StateBlackWins
		} else {
			state = core.StateWhiteWins
		}
	case core.ResultStalemate:
		state = core.StateStalemate
	default:
		return
	}

	g.SetState(state)

	if s.store != nil {
		s.store.RecordResult(storage.ResultRecord{
			GameID:     gameID,
			Outcome:    outcome(state),
			EndTimeUTC: time.Now().UTC(),
		})
	}
}

func outcome(state core.State) string {
	switch state {
	case core.StateWhiteWins:
		return "white"
	case core.StateBlackWins:
		return "black"
	case core.StateStalemate:
		return "stalemate"
	default:
		return "draw"
	}
}
