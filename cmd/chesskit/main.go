// FILE: cmd/chesskit/main.go

// Package main implements the interactive terminal client: a local game
// loop against another human or the built-in engine.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"chesskit/internal/cli"
	"chesskit/internal/service"
	"chesskit/internal/storage"
	clitransport "chesskit/internal/transport/cli"

	"github.com/chzyer/readline"
	"golang.org/x/term"
)

func main() {
	var (
		themeFlag   = flag.String("theme", "", "Board color theme (off|brown|green|gray), auto-detected if empty")
		storagePath = flag.String("storage-path", "", "Path to SQLite database file (disables persistence if empty)")
	)
	flag.Parse()

	var store *storage.Store
	if *storagePath != "" {
		var err error
		store, err = storage.NewStore(*storagePath, false)
		if err != nil {
			log.Fatalf("Failed to initialize storage: %v", err)
		}
		if err := store.InitDB(); err != nil {
			log.Fatalf("Failed to initialize schema: %v", err)
		}
	}

	svc := service.New(store)
	defer svc.Close()

	theme := cli.ColorTheme(*themeFlag)
	if *themeFlag == "" {
		theme = cli.DefaultTheme(term.IsTerminal(int(os.Stdout.Fd())))
	}
	view := cli.New(os.Stdout, theme)

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "> ",
		HistoryFile:     filepath.Join(os.TempDir(), ".chesskit_history"),
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		fmt.Printf("Failed to start: %v\n", err)
		os.Exit(1)
	}
	defer rl.Close()

	view.ShowWelcome()

	handler := clitransport.New(svc, view)
	handler.Run(rl) // All game loop logic is in the handler
}
