// cmd/td-term/main.go
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"

	"curve-defense/internal/defs"
	"curve-defense/internal/tui"

	"github.com/gdamore/tcell/v2"
)

func main() {
	levelPath := flag.String("level", "", "path to a level JSON file (built-in level when empty)")
	seed := flag.Int64("seed", 0, "random seed for shot spread (0 = time based)")
	logPath := flag.String("log", "", "write logs to this file (logs are discarded when empty)")
	flag.Parse()

	// Логи поверх терминальной картинки только мешают
	log.SetOutput(io.Discard)
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "open log: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	level := defs.DefaultLevel()
	if *levelPath != "" {
		loaded, err := defs.LoadLevel(*levelPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "load level: %v\n", err)
			os.Exit(1)
		}
		level = loaded
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}

	app, err := tui.NewApp(screen, level, *seed)
	if err != nil {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	app.Run(ctx)
	screen.Fini()
}
