package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"

	"gridgames/internal/app"
	_ "gridgames/internal/games/life"
	_ "gridgames/internal/games/snake"
	_ "gridgames/internal/games/tetros"
	"gridgames/internal/term"

	"github.com/gdamore/tcell/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	session, err := app.NewSession(cfg.GridConfig())
	if err != nil {
		log.Fatal(err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("open terminal: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("init terminal: %v", err)
	}
	screen.EnableMouse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	runErr := term.New(screen, session, cfg.TPS).Run(ctx)
	screen.Fini()
	if runErr != nil {
		log.Fatal(runErr)
	}
	if msg := session.Message(); msg != "" {
		log.Print(msg)
	}
}
