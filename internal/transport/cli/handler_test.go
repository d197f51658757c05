// FILE: internal/transport/cli/handler_test.go
package cli

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"chesskit/internal/cli"
	"chesskit/internal/service"
)

// scriptReader feeds a fixed sequence of input lines, then EOF.
type scriptReader struct {
	lines []string
	next  int
}

func (s *scriptReader) Readline() (string, error) {
	if s.next >= len(s.lines) {
		return "", io.EOF
	}
	line := s.lines[s.next]
	s.next++
	return line, nil
}

func (s *scriptReader) SetPrompt(string) {}

func runScript(t *testing.T, lines ...string) string {
	t.Helper()
	var out bytes.Buffer
	view := cli.New(&out, cli.ThemeOff)
	handler := New(service.New(nil), view)
	handler.Run(&scriptReader{lines: lines})
	return out.String()
}

func TestHumanVsHumanSession(t *testing.T) {
	out := runScript(t,
		"new", "h", "h",
		"e2e4",
		"e7e5",
		"history",
		"quit",
	)

	if !strings.Contains(out, "Game started.") {
		t.Errorf("missing game start message:\n%s", out)
	}
	if !strings.Contains(out, "1. e2e4 | e7e5") {
		t.Errorf("missing history line:\n%s", out)
	}
}

func TestIllegalMoveReported(t *testing.T) {
	out := runScript(t,
		"new", "h", "h",
		"e2e5",
		"quit",
	)

	if !strings.Contains(out, "invalid move") {
		t.Errorf("missing move rejection:\n%s", out)
	}
}

func TestMoveWithoutGame(t *testing.T) {
	out := runScript(t, "e2e4", "quit")

	if !strings.Contains(out, "No active game") {
		t.Errorf("missing no-game message:\n%s", out)
	}
}

func TestComputerMoveOnEnter(t *testing.T) {
	out := runScript(t,
		"new", "h", "c", "1", // black is a depth-1 computer
		"e2e4",
		"", // ENTER executes the computer reply
		"quit",
	)

	if !strings.Contains(out, "Computer (b):") {
		t.Errorf("missing computer move:\n%s", out)
	}
}

func TestResumeFromPuzzle(t *testing.T) {
	out := runScript(t,
		"resume 6k1/5ppp/8/8/8/8/8/R3K3 w K - 0 1", "c", "1", "h",
		"", // computer plays the mate in one
		"quit",
	)

	if !strings.Contains(out, "Computer (w): a1a8") {
		t.Errorf("missing mating move:\n%s", out)
	}
	if !strings.Contains(out, "Game Over: White wins") {
		t.Errorf("missing game over message:\n%s", out)
	}
}

func TestMovesCommandListsTargets(t *testing.T) {
	out := runScript(t,
		"new", "h", "h",
		"moves g1",
		"quit",
	)

	if !strings.Contains(out, "Legal from g1: h3 f3") {
		t.Errorf("missing target listing:\n%s", out)
	}
}

func TestHelpAndThemeCommands(t *testing.T) {
	out := runScript(t,
		"help",
		"color plaid",
		"color green",
		"verbose",
		"quit",
	)

	if !strings.Contains(out, "Commands:") {
		t.Errorf("missing help output:\n%s", out)
	}
	if !strings.Contains(out, "invalid theme") {
		t.Errorf("missing theme rejection:\n%s", out)
	}
	if !strings.Contains(out, "Color theme set to: green") {
		t.Errorf("missing theme confirmation:\n%s", out)
	}
	if !strings.Contains(out, "Verbose mode: true") {
		t.Errorf("missing verbose toggle:\n%s", out)
	}
}
