//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"gridgames/internal/app"
	_ "gridgames/internal/games/life"
	_ "gridgames/internal/games/snake"
	_ "gridgames/internal/games/tetros"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	session, err := app.NewSession(cfg.GridConfig())
	if err != nil {
		log.Fatal(err)
	}

	game := app.New(session, cfg.Scale, cfg.TPS)
	w, h := game.WindowSize()

	ebiten.SetWindowTitle("gridgames - " + cfg.Game)
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
