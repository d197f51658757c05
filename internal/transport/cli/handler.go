// FILE: internal/transport/cli/handler.go
package cli

import (
	"fmt"
	"strconv"
	"strings"

	"chesskit/internal/cli"
	"chesskit/internal/core"
	"chesskit/internal/service"

	"github.com/chzyer/readline"
)

// LineReader is the subset of readline.Instance the handler drives. It is
// an interface so tests can feed scripted input.
type LineReader interface {
	Readline() (string, error)
	SetPrompt(prompt string)
}

type CLIHandler struct {
	svc    *service.Service
	view   *cli.CLI
	rl     LineReader
	gameID string
}

func New(svc *service.Service, view *cli.CLI) *CLIHandler {
	return &CLIHandler{
		svc:  svc,
		view: view,
	}
}

// Run is the main game loop: prompt, read, dispatch, until quit or EOF.
func (h *CLIHandler) Run(rl LineReader) {
	h.rl = rl

	for {
		rl.SetPrompt(h.getPrompt())

		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			continue
		}
		if err != nil {
			// io.EOF and any other read failure end the session
			break
		}

		cmd := h.view.ParseCommand(strings.TrimSpace(line))
		if !h.ProcessCommand(cmd) {
			break
		}
	}
}

// Generates the appropriate command prompt
func (h *CLIHandler) getPrompt() string {
	prompt := "> "
	if h.gameID != "" {
		g, err := h.svc.GetGame(h.gameID)
		if err == nil && g.State() == core.StateOngoing {
			// Always show whose turn it is
			prompt = fmt.Sprintf("[%s]> ", g.NextTurn())
			if g.NextPlayer().Type == core.PlayerComputer {
				prompt = "ENTER to execute computer move\n" + prompt
			}
		}
	}
	return prompt
}

// Handles user commands - returns false to exit
func (h *CLIHandler) ProcessCommand(cmd *cli.Command) bool {
	switch cmd.Type {
	case cli.CmdQuit:
		return false

	case cli.CmdNone:
		// Empty command triggers computer move if it's computer's turn
		if h.gameID != "" {
			g, err := h.svc.GetGame(h.gameID)
			if err == nil && g.State() == core.StateOngoing &&
				g.NextPlayer().Type == core.PlayerComputer {
				h.executeComputerMove()
			}
		}
		return true

	case cli.CmdNew:
		return h.handleNewGame("")

	case cli.CmdResume:
		if len(cmd.Args) < 1 {
			h.view.ShowMessage("Usage: resume <FEN string>")
			return true
		}
		fen := strings.Join(cmd.Args, " ")
		return h.handleNewGame(fen)

	case cli.CmdMove:
		if h.gameID == "" {
			h.view.ShowMessage("No active game. Use 'new' or 'resume <FEN>'.")
			return true
		}

		g, _ := h.svc.GetGame(h.gameID)
		if g.NextPlayer().Type != core.PlayerHuman {
			h.view.ShowMessage("It's not a human player's turn. Press ENTER to execute computer move.")
			return true
		}

		result, err := h.svc.MakeHumanMove(h.gameID, cmd.Args[0])
		if err != nil {
			h.view.ShowError(fmt.Errorf("invalid move: %v", err))
			return true
		}

		h.view.ShowHumanMove(result.Move)
		h.displayBoard()

		if result.GameState != core.StateOngoing {
			h.view.ShowGameOver(result.GameState)
			h.gameID = ""
		}

	case cli.CmdMoves:
		if h.gameID == "" {
			h.view.ShowMessage("No active game.")
			return true
		}
		if len(cmd.Args) < 1 {
			h.view.ShowMessage("Usage: moves <square>  (e.g., moves e2)")
			return true
		}

		targets, err := h.svc.LegalTargets(h.gameID, cmd.Args[0])
		if err != nil {
			h.view.ShowError(err)
			return true
		}
		if len(targets) == 0 {
			h.view.ShowMessage(fmt.Sprintf("No legal moves from %s.", cmd.Args[0]))
			return true
		}

		g, _ := h.svc.GetGame(h.gameID)
		h.view.DisplayPosition(g.CurrentPosition(), targets)
		h.view.ShowMessage(fmt.Sprintf("Legal from %s: %s", cmd.Args[0], strings.Join(targets, " ")))

	case cli.CmdUndo:
		if h.gameID == "" {
			h.view.ShowMessage("No active game.")
			return true
		}

		// Parse undo count
		count := 1
		if len(cmd.Args) > 0 {
			if n, err := strconv.Atoi(cmd.Args[0]); err == nil && n > 0 {
				count = n
			} else {
				h.view.ShowMessage("Invalid undo count. Usage: undo [count]")
				return true
			}
		}

		if err := h.svc.UndoMoves(h.gameID, count); err != nil {
			h.view.ShowError(err)
		} else {
			if count == 1 {
				h.view.ShowMessage("Move undone")
			} else {
				h.view.ShowMessage(fmt.Sprintf("%d moves undone", count))
			}
			h.displayBoard()
		}

	case cli.CmdColor:
		if len(cmd.Args) < 1 {
			h.view.ShowMessage("Usage: color <off|brown|green|gray>")
			return true
		}

		theme := cli.ColorTheme(cmd.Args[0])
		if err := h.view.SetTheme(theme); err != nil {
			h.view.ShowError(err)
		} else {
			h.view.ShowMessage(fmt.Sprintf("Color theme set to: %s", theme))
			if h.gameID != "" {
				h.displayBoard()
			}
		}

	case cli.CmdVerbose:
		verbose := h.view.ToggleVerbose()
		h.view.ShowMessage(fmt.Sprintf("Verbose mode: %t", verbose))

	case cli.CmdHistory:
		if h.gameID == "" {
			h.view.ShowMessage("No active game.")
			return true
		}
		g, _ := h.svc.GetGame(h.gameID)
		h.view.ShowGameHistory(g)

	case cli.CmdHelp:
		h.view.ShowHelp()
	}

	return true
}

func (h *CLIHandler) displayBoard() {
	g, err := h.svc.GetGame(h.gameID)
	if err != nil {
		return
	}
	h.view.DisplayPosition(g.CurrentPosition(), nil)
}

func (h *CLIHandler) executeComputerMove() {
	result, err := h.svc.MakeComputerMove(h.gameID)
	if err != nil {
		h.view.ShowError(fmt.Errorf("engine error: %v", err))
		return
	}

	h.view.ShowComputerMove(result)
	h.displayBoard()

	if result.GameState != core.StateOngoing {
		h.view.ShowGameOver(result.GameState)
		h.gameID = ""
	}
}

// readLine prompts for one line of input outside the main loop, used for
// game setup questions.
func (h *CLIHandler) readLine(prompt string) string {
	if h.rl == nil {
		return ""
	}
	h.rl.SetPrompt(prompt)
	line, err := h.rl.Readline()
	if err != nil {
		return ""
	}
	return strings.TrimSpace(line)
}

// askPlayer builds one side's configuration interactively.
func (h *CLIHandler) askPlayer(color core.Color) core.PlayerConfig {
	name := "White"
	if color == core.ColorBlack {
		name = "Black"
	}

	input := h.readLine(fmt.Sprintf("Select %s player (h/c): ", name))
	if input != "c" && input != "computer" {
		return core.PlayerConfig{Type: core.PlayerHuman}
	}

	config := core.PlayerConfig{Type: core.PlayerComputer, Depth: core.DefaultSearchDepth}
	depthInput := h.readLine(fmt.Sprintf("Search depth %d-%d (default %d): ",
		core.MinSearchDepth, core.MaxSearchDepth, core.DefaultSearchDepth))
	if n, err := strconv.Atoi(depthInput); err == nil {
		config.Depth = n // NewPlayer clamps out-of-range values
	}
	return config
}

// Starts a new game with player type selection
func (h *CLIHandler) handleNewGame(fen string) bool {
	white := h.askPlayer(core.ColorWhite)
	black := h.askPlayer(core.ColorBlack)

	gameID := h.svc.GenerateGameID()
	if err := h.svc.CreateGame(gameID, white, black, fen); err != nil {
		h.view.ShowError(fmt.Errorf("could not start the game: %v", err))
		return true
	}

	h.gameID = gameID
	h.view.ShowMessage("Game started.")
	h.displayBoard()

	return true
}
