// FILE: internal/transport/http/types.go
package http

import (
	"chesskit/internal/core"
	"chesskit/internal/storage"
)

// Request types

type CreateGameRequest struct {
	White core.PlayerConfig `json:"white"`
	Black core.PlayerConfig `json:"black"`
	FEN   string            `json:"fen,omitempty"`
}

type MoveRequest struct {
	Move string `json:"move" validate:"required,min=4,max=5"` // UCI format: "e2e4"
}

type UndoRequest struct {
	Count int `json:"count,omitempty" validate:"omitempty,min=1"` // default: 1
}

// Response types

type GameResponse struct {
	GameID   string      `json:"gameId"`
	FEN      string      `json:"fen"`
	Turn     string      `json:"turn"`  // "w" or "b"
	State    string      `json:"state"` // "ongoing", "white_wins", etc
	Moves    []string    `json:"moves"`
	Players  PlayersInfo `json:"players"`
	LastMove *MoveInfo   `json:"lastMove,omitempty"`
}

type PlayersInfo struct {
	White PlayerInfo `json:"white"`
	Black PlayerInfo `json:"black"`
}

type PlayerInfo struct {
	Type  int `json:"type"` // 1=human, 2=computer
	Depth int `json:"depth,omitempty"`
}

type MoveInfo struct {
	Move   string `json:"move"`
	Player string `json:"player"` // "w" or "b"
	Score  int    `json:"score,omitempty"`
	Depth  int    `json:"depth,omitempty"`
}

type BoardResponse struct {
	FEN   string `json:"fen"`
	Board string `json:"board"` // ASCII representation
}

type LegalMovesResponse struct {
	From    string   `json:"from"`
	Targets []string `json:"targets"`
}

type StatsResponse struct {
	storage.Stats
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code"`
	Details string `json:"details,omitempty"`
}

// Helper functions

func stateToString(s core.State) string {
	switch s {
	case core.StateOngoing:
		return "ongoing"
	case core.StateWhiteWins:
		return "white_wins"
	case core.StateBlackWins:
		return "black_wins"
	case core.StateDraw:
		return "draw"
	case core.StateStalemate:
		return "stalemate"
	default:
		return "unknown"
	}
}

// Error codes
const (
	ErrGameNotFound      = "GAME_NOT_FOUND"
	ErrInvalidMove       = "INVALID_MOVE"
	ErrNotHumanTurn      = "NOT_HUMAN_TURN"
	ErrGameOver          = "GAME_OVER"
	ErrRateLimitExceeded = "RATE_LIMIT_EXCEEDED"
	ErrInvalidContent    = "INVALID_CONTENT_TYPE"
	ErrInvalidRequest    = "INVALID_REQUEST"
	ErrStatsUnavailable  = "STATS_UNAVAILABLE"
	ErrInternalError     = "INTERNAL_ERROR"
)
