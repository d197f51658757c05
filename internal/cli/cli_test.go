// FILE: internal/cli/cli_test.go
package cli

import (
	"bytes"
	"strings"
	"testing"

	"chesskit/internal/engine"
)

func TestParseCommand(t *testing.T) {
	c := New(&bytes.Buffer{}, ThemeOff)

	cases := []struct {
		input string
		want  CommandType
	}{
		{"new", CmdNew},
		{"resume 8/8/8/8/8/8/8/8 w - - 0 1", CmdResume},
		{"e2e4", CmdMove},
		{"moves e2", CmdMoves},
		{"undo 2", CmdUndo},
		{"color brown", CmdColor},
		{"verbose", CmdVerbose},
		{"history", CmdHistory},
		{"help", CmdHelp},
		{"?", CmdHelp},
		{"quit", CmdQuit},
		{"exit", CmdQuit},
		{"", CmdNone},
	}
	for _, tc := range cases {
		if got := c.ParseCommand(tc.input).Type; got != tc.want {
			t.Errorf("ParseCommand(%q).Type = %v, want %v", tc.input, got, tc.want)
		}
	}
}

func TestParseCommandArgs(t *testing.T) {
	c := New(&bytes.Buffer{}, ThemeOff)

	cmd := c.ParseCommand("undo 3")
	if len(cmd.Args) != 1 || cmd.Args[0] != "3" {
		t.Errorf("undo args = %v, want [3]", cmd.Args)
	}

	cmd = c.ParseCommand("g1f3")
	if len(cmd.Args) != 1 || cmd.Args[0] != "g1f3" {
		t.Errorf("move args = %v, want [g1f3]", cmd.Args)
	}
}

func TestSetTheme(t *testing.T) {
	c := New(&bytes.Buffer{}, ThemeOff)

	if err := c.SetTheme(ThemeGreen); err != nil {
		t.Errorf("SetTheme(green): %v", err)
	}
	if err := c.SetTheme("plaid"); err == nil {
		t.Error("invalid theme accepted")
	}
}

func TestDefaultTheme(t *testing.T) {
	if got := DefaultTheme(true); got == ThemeOff {
		t.Error("terminal output should default to a colored theme")
	}
	if got := DefaultTheme(false); got != ThemeOff {
		t.Errorf("non-terminal theme = %s, want off", got)
	}
}

func TestDisplayPositionPlain(t *testing.T) {
	var buf bytes.Buffer
	c := New(&buf, ThemeOff)

	c.DisplayPosition(engine.NewPosition(), nil)
	out := buf.String()

	if !strings.Contains(out, "a b c d e f g h") {
		t.Errorf("missing file labels:\n%s", out)
	}
	if !strings.Contains(out, "8 r n b q k b n r") {
		t.Errorf("missing black back rank:\n%s", out)
	}
	if strings.Contains(out, "\033[") {
		t.Errorf("plain theme emitted ANSI escapes:\n%s", out)
	}
}

func TestDisplayPositionHighlightsTargets(t *testing.T) {
	var buf bytes.Buffer
	c := New(&buf, ThemeOff)

	c.DisplayPosition(engine.NewPosition(), []string{"e3", "e4"})
	out := buf.String()

	// Empty legal targets render as '*' markers.
	if strings.Count(out, "*") != 2 {
		t.Errorf("expected 2 target markers:\n%s", out)
	}
}

func TestDisplayPositionThemed(t *testing.T) {
	var buf bytes.Buffer
	c := New(&buf, ThemeBrown)

	c.DisplayPosition(engine.NewPosition(), nil)
	if !strings.Contains(buf.String(), "\033[48;5;") {
		t.Error("themed board missing background escapes")
	}
}
