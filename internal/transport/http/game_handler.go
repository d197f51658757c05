// FILE: internal/transport/http/game_handler.go
package http

import (
	"errors"
	"log"
	"strings"

	"chesskit/internal/core"
	"chesskit/internal/game"
	"chesskit/internal/service"

	"github.com/gofiber/fiber/v2"
)

// CreateGame creates a new game with specified player configurations
func (h *HTTPHandler) CreateGame(c *fiber.Ctx) error {
	req, ok := c.Locals("validatedBody").(*CreateGameRequest)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error: "invalid request body",
			Code:  ErrInvalidRequest,
		})
	}

	gameID := h.svc.GenerateGameID()

	if err := h.svc.CreateGame(gameID, req.White, req.Black, req.FEN); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error:   "failed to create game",
			Code:    ErrInvalidRequest,
			Details: err.Error(),
		})
	}

	g, _ := h.svc.GetGame(gameID)
	response := h.buildGameResponse(gameID, g)

	// Execute computer move if computer starts
	if g.NextPlayer().Type == core.PlayerComputer && g.State() == core.StateOngoing {
		if err := h.executeComputerMove(gameID, &response); err != nil {
			// Game was still created; log and return it as-is
			log.Printf("Warning: failed to execute initial computer move: %v", err)
		}
	}

	return c.Status(fiber.StatusCreated).JSON(response)
}

// GetGame retrieves current game state, executing computer move if needed
func (h *HTTPHandler) GetGame(c *fiber.Ctx) error {
	gameID := c.Params("gameId")

	g, err := h.svc.GetGame(gameID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{
			Error: "game not found",
			Code:  ErrGameNotFound,
		})
	}

	response := h.buildGameResponse(gameID, g)

	// Auto-execute computer move if it's computer's turn
	if g.NextPlayer().Type == core.PlayerComputer && g.State() == core.StateOngoing {
		if err := h.executeComputerMove(gameID, &response); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
				Error:   "failed to execute computer move",
				Code:    ErrInternalError,
				Details: err.Error(),
			})
		}
	}

	return c.JSON(response)
}

// MakeMove submits a human player move
func (h *HTTPHandler) MakeMove(c *fiber.Ctx) error {
	gameID := c.Params("gameId")

	req, ok := c.Locals("validatedBody").(*MoveRequest)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error: "invalid request body",
			Code:  ErrInvalidRequest,
		})
	}

	result, err := h.svc.MakeHumanMove(gameID, req.Move)
	if err != nil {
		return h.moveError(c, err)
	}

	g, _ := h.svc.GetGame(gameID)
	response := h.buildGameResponse(gameID, g)
	response.LastMove = &MoveInfo{
		Move:   result.Move,
		Player: result.Player.String(),
	}

	// Execute computer response if needed
	if g.NextPlayer().Type == core.PlayerComputer && g.State() == core.StateOngoing {
		if err := h.executeComputerMove(gameID, &response); err != nil {
			// Computer move failed, but human move succeeded
			log.Printf("Warning: computer move failed: %v", err)
		}
	}

	return c.JSON(response)
}

// moveError maps service errors from a move attempt to HTTP responses
func (h *HTTPHandler) moveError(c *fiber.Ctx, err error) error {
	var illegal *service.IllegalMoveError
	switch {
	case errors.As(err, &illegal):
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid move",
			Code:    ErrInvalidMove,
			Details: err.Error(),
		})
	case strings.Contains(err.Error(), "not found"):
		return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{
			Error: "game not found",
			Code:  ErrGameNotFound,
		})
	case strings.Contains(err.Error(), "game is over"):
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error:   "game is over",
			Code:    ErrGameOver,
			Details: err.Error(),
		})
	case strings.Contains(err.Error(), "not a human"):
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error:   "not human player's turn",
			Code:    ErrNotHumanTurn,
			Details: err.Error(),
		})
	default:
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid move",
			Code:    ErrInvalidMove,
			Details: err.Error(),
		})
	}
}

// UndoMove undoes one or more moves
func (h *HTTPHandler) UndoMove(c *fiber.Ctx) error {
	gameID := c.Params("gameId")

	count := 1
	if req, ok := c.Locals("validatedBody").(*UndoRequest); ok && req.Count > 0 {
		count = req.Count
	}

	if err := h.svc.UndoMoves(gameID, count); err != nil {
		if strings.Contains(err.Error(), "not found") {
			return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{
				Error: "game not found",
				Code:  ErrGameNotFound,
			})
		}
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error:   "cannot undo moves",
			Code:    ErrInvalidRequest,
			Details: err.Error(),
		})
	}

	// Return updated game state
	g, _ := h.svc.GetGame(gameID)
	response := h.buildGameResponse(gameID, g)

	return c.JSON(response)
}

// DeleteGame ends and cleans up a game
func (h *HTTPHandler) DeleteGame(c *fiber.Ctx) error {
	gameID := c.Params("gameId")

	if err := h.svc.DeleteGame(gameID); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{
			Error: "game not found",
			Code:  ErrGameNotFound,
		})
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// GetBoard returns ASCII representation of the board
func (h *HTTPHandler) GetBoard(c *fiber.Ctx) error {
	gameID := c.Params("gameId")

	g, err := h.svc.GetGame(gameID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{
			Error: "game not found",
			Code:  ErrGameNotFound,
		})
	}

	pos := g.CurrentPosition()
	return c.JSON(BoardResponse{
		FEN:   pos.FEN(),
		Board: pos.ToASCII(),
	})
}

// GetLegalMoves lists the legal destination squares from a given square,
// e.g. GET /games/:gameId/legal?from=e2
func (h *HTTPHandler) GetLegalMoves(c *fiber.Ctx) error {
	gameID := c.Params("gameId")
	from := c.Query("from")

	if from == "" {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error:   "missing from square",
			Code:    ErrInvalidRequest,
			Details: "query parameter 'from' is required, e.g. ?from=e2",
		})
	}

	targets, err := h.svc.LegalTargets(gameID, from)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{
				Error: "game not found",
				Code:  ErrGameNotFound,
			})
		}
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid square",
			Code:    ErrInvalidRequest,
			Details: err.Error(),
		})
	}

	return c.JSON(LegalMovesResponse{From: from, Targets: targets})
}

// GetStats returns aggregate outcomes of recorded games
func (h *HTTPHandler) GetStats(c *fiber.Ctx) error {
	stats, err := h.svc.Stats()
	if err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(ErrorResponse{
			Error:   "stats unavailable",
			Code:    ErrStatsUnavailable,
			Details: err.Error(),
		})
	}
	return c.JSON(StatsResponse{Stats: stats})
}

// Helper: Build standard game response
func (h *HTTPHandler) buildGameResponse(gameID string, g *game.Game) GameResponse {
	whitePlayer := g.Player(core.ColorWhite)
	blackPlayer := g.Player(core.ColorBlack)

	return GameResponse{
		GameID: gameID,
		FEN:    g.CurrentFEN(),
		Turn:   g.NextTurn().String(),
		State:  stateToString(g.State()),
		Moves:  g.Moves(),
		Players: PlayersInfo{
			White: PlayerInfo{Type: int(whitePlayer.Type), Depth: whitePlayer.Depth},
			Black: PlayerInfo{Type: int(blackPlayer.Type), Depth: blackPlayer.Depth},
		},
	}
}

// Helper: Execute computer move and update response
func (h *HTTPHandler) executeComputerMove(gameID string, response *GameResponse) error {
	result, err := h.svc.MakeComputerMove(gameID)
	if err != nil {
		return err
	}

	// Refresh game state after computer move
	g, err := h.svc.GetGame(gameID)
	if err != nil {
		return err
	}

	response.FEN = g.CurrentFEN()
	response.Turn = g.NextTurn().String()
	response.State = stateToString(g.State())
	response.Moves = g.Moves()
	response.LastMove = &MoveInfo{
		Move:   result.Move,
		Player: result.Player.String(),
		Score:  result.Score,
		Depth:  result.Depth,
	}

	return nil
}
