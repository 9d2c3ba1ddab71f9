package main

import (
	"flag"
	"log"
	"net/http"

	"gridgames/internal/app"
	"gridgames/internal/core"
	_ "gridgames/internal/games/life"
	_ "gridgames/internal/games/snake"
	_ "gridgames/internal/games/tetros"
	"gridgames/internal/remote"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	if _, ok := core.Games()[cfg.Game]; !ok {
		log.Fatalf("unknown game %q (have %v)", cfg.Game, core.GameNames())
	}

	srv := remote.NewServer(cfg.GridConfig(), cfg.TPS)
	log.Printf("serving %s sessions on %s/ws", cfg.Game, cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, srv.Handler()); err != nil {
		log.Fatal(err)
	}
}
