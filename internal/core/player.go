// FILE: internal/core/player.go
package core

import (
	"github.com/google/uuid"
)

type PlayerType int

const (
	PlayerHuman PlayerType = iota + 1
	PlayerComputer
)

const (
	// DefaultSearchDepth bounds the engine's minimax recursion when the
	// caller does not configure one.
	DefaultSearchDepth = 3

	MinSearchDepth = 1
	MaxSearchDepth = 5
)

// Player identifies one side of a game
type Player struct {
	ID    string     `json:"id"`
	Color Color      `json:"color"`
	Type  PlayerType `json:"type"`
	Depth int        `json:"depth,omitempty"` // Only for computer
}

// PlayerConfig for API requests and configuration
type PlayerConfig struct {
	Type  PlayerType `json:"type" validate:"required,oneof=1 2"`
	Depth int        `json:"depth,omitempty" validate:"omitempty,min=1,max=5"`
}

// NewPlayer creates a Player from PlayerConfig
func NewPlayer(config PlayerConfig, color Color) *Player {
	player := &Player{
		ID:    uuid.New().String(),
		Color: color,
		Type:  config.Type,
	}

	if config.Type == PlayerComputer {
		player.Depth = config.Depth
		if player.Depth < MinSearchDepth || player.Depth > MaxSearchDepth {
			player.Depth = DefaultSearchDepth
		}
	}

	return player
}
