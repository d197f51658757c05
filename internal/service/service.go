// FILE: internal/service/service.go

// Package service is the state manager between the transports and the
// rules engine: it owns the game registry, runs moves through the engine
// and mirrors everything into storage when persistence is enabled.
package service

import (
	"fmt"
	"sync"
	"time"

	"chesskit/internal/core"
	"chesskit/internal/engine"
	"chesskit/internal/game"
	"chesskit/internal/storage"

	"github.com/google/uuid"
)

// Service is a pure state manager for chess games with optional persistence
type Service struct {
	games map[string]*game.Game
	mu    sync.RWMutex
	store *storage.Store // nil if persistence disabled
}

// New creates a new service instance with optional storage
func New(store *storage.Store) *Service {
	return &Service{
		games: make(map[string]*game.Game),
		store: store,
	}
}

// CreateGame creates a game with player configuration. An empty initialFEN
// starts from the standard position.
func (s *Service) CreateGame(id string, whiteConfig, blackConfig core.PlayerConfig, initialFEN string) error {
	pos := engine.NewPosition()
	if initialFEN != "" {
		var err error
		pos, err = engine.FromFEN(initialFEN)
		if err != nil {
			return err
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.games[id]; exists {
		return fmt.Errorf("game %s already exists", id)
	}

	// Create players with UUIDs and config
	whitePlayer := core.NewPlayer(whiteConfig, core.ColorWhite)
	blackPlayer := core.NewPlayer(blackConfig, core.ColorBlack)

	s.games[id] = game.New(pos, whitePlayer, blackPlayer)

	// Persist if storage enabled
	if s.store != nil {
		s.store.RecordNewGame(storage.GameRecord{
			GameID:        id,
			InitialFEN:    pos.FEN(),
			WhitePlayerID: whitePlayer.ID,
			WhiteType:     int(whitePlayer.Type),
			WhiteDepth:    whitePlayer.Depth,
			BlackPlayerID: blackPlayer.ID,
			BlackType:     int(blackPlayer.Type),
			BlackDepth:    blackPlayer.Depth,
			StartTimeUTC:  time.Now().UTC(),
		})
	}

	return nil
}

// GetGame retrieves a game by ID
func (s *Service) GetGame(gameID string) (*game.Game, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	g, ok := s.games[gameID]
	if !ok {
		return nil, fmt.Errorf("game not found: %s", gameID)
	}
	return g, nil
}

// GenerateGameID creates a new unique game ID
func (s *Service) GenerateGameID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	// Ensure UUID uniqueness (handle potential conflicts)
	for {
		id := uuid.New().String()
		if _, exists := s.games[id]; !exists {
			return id
		}
	}
}

// UndoMoves removes the specified number of moves from game history
func (s *Service) UndoMoves(gameID string, count int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	g, ok := s.games[gameID]
	if !ok {
		return fmt.Errorf("game not found: %s", gameID)
	}

	wasFinished := g.State() != core.StateOngoing
	originalMoveCount := g.MoveCount()

	if err := g.UndoMoves(count); err != nil {
		return err
	}

	// Remove undone moves from storage if enabled
	if s.store != nil {
		s.store.DeleteUndoneMoves(gameID, originalMoveCount-count)
		if wasFinished {
			s.store.DeleteResult(gameID)
		}
	}

	return nil
}

// DeleteGame removes a game from memory
func (s *Service) DeleteGame(gameID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.games[gameID]; !ok {
		return fmt.Errorf("game not found: %s", gameID)
	}

	delete(s.games, gameID)
	return nil
}

// Stats returns aggregate outcomes of recorded games
func (s *Service) Stats() (storage.Stats, error) {
	if s.store == nil {
		return storage.Stats{}, fmt.Errorf("persistence disabled")
	}
	return s.store.QueryStats()
}

// StorageHealthy reports whether the persistence layer is accepting writes.
// A service without storage is trivially healthy.
func (s *Service) StorageHealthy() bool {
	if s.store == nil {
		return true
	}
	return s.store.IsHealthy()
}

// Close releases the storage layer
func (s *Service) Close() error {
	if s.store != nil {
		return s.store.Close()
	}
	return nil
}
