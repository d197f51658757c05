// FILE: internal/game/game.go
package game

import (
	"fmt"

	"chesskit/internal/core"
	"chesskit/internal/engine"
)

// Snapshot is one point in the game timeline: the full position plus the
// move that produced it. Positions are values, so snapshots are cheap to
// keep and undo is a slice truncation.
type Snapshot struct {
	Position     engine.Position
	PreviousMove string // UCI move that created this position (empty for initial)
}

// MoveResult tracks the outcome of a move
type MoveResult struct {
	Move      string
	Player    core.Color
	GameState core.State
	Score     int
	Depth     int
}

type Game struct {
	snapshots  []Snapshot
	players    map[core.Color]*core.Player
	state      core.State
	lastResult *MoveResult
}

func New(initial engine.Position, whitePlayer, blackPlayer *core.Player) *Game {
	return &Game{
		snapshots: []Snapshot{
			{Position: initial},
		},
		players: map[core.Color]*core.Player{
			core.ColorWhite: whitePlayer,
			core.ColorBlack: blackPlayer,
		},
		state: core.StateOngoing,
	}
}

func (g *Game) SetLastResult(result *MoveResult) {
	g.lastResult = result
}

func (g *Game) LastResult() *MoveResult {
	return g.lastResult
}

func (g *Game) CurrentPosition() engine.Position {
	return g.snapshots[len(g.snapshots)-1].Position
}

func (g *Game) CurrentFEN() string {
	return g.CurrentPosition().FEN()
}

func (g *Game) NextTurn() core.Color {
	return g.CurrentPosition().Turn()
}

func (g *Game) NextPlayer() *core.Player {
	return g.players[g.NextTurn()]
}

func (g *Game) Player(c core.Color) *core.Player {
	return g.players[c]
}

func (g *Game) AddSnapshot(pos engine.Position, move string) {
	g.snapshots = append(g.snapshots, Snapshot{
		Position:     pos,
		PreviousMove: move,
	})
}

func (g *Game) UndoMoves(count int) error {
	if count < 1 {
		return fmt.Errorf("invalid undo count: %d", count)
	}

	availableMoves := len(g.snapshots) - 1
	if availableMoves < count {
		return fmt.Errorf("cannot undo %d moves: only %d moves available", count, availableMoves)
	}

	g.snapshots = g.snapshots[:len(g.snapshots)-count]
	g.state = core.StateOngoing // Reset game state when undoing
	g.lastResult = nil          // Clear last result
	return nil
}

func (g *Game) Moves() []string {
	moves := []string{}
	for i := 1; i < len(g.snapshots); i++ {
		if g.snapshots[i].PreviousMove != "" {
			moves = append(moves, g.snapshots[i].PreviousMove)
		}
	}
	return moves
}

func (g *Game) MoveCount() int {
	return len(g.snapshots) - 1
}

func (g *Game) State() core.State {
	return g.state
}

func (g *Game) SetState(s core.State) {
	g.state = s
}

func (g *Game) InitialFEN() string {
	if len(g.snapshots) > 0 {
		return g.snapshots[0].Position.FEN()
	}
	return engine.StartingFEN
}
