package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"time"

	"gridgames/internal/autoplay"
	"gridgames/internal/core"
	_ "gridgames/internal/games/life"
	_ "gridgames/internal/games/snake"
	_ "gridgames/internal/games/tetros"
)

func main() {
	grid := core.DefaultGridConfig()
	game := flag.String("game", "tetros", fmt.Sprintf("game to play %v", core.GameNames()))
	rows := flag.Int("rows", grid.Rows, "grid rows")
	cols := flag.Int("cols", 10, "grid columns")
	seed := flag.Int64("seed", grid.Seed, "seed of the first game")
	games := flag.Int("games", 64, "number of games to play")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	ticks := flag.Int("ticks", 2000, "tick limit per game")
	every := flag.Int("press-every", 3, "average ticks between random key presses")
	top := flag.Int("top", 5, "number of games to list")
	flag.Parse()

	grid.Game = *game
	grid.Rows = *rows
	grid.Columns = *cols
	grid.Seed = *seed

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	fmt.Printf("Playing %d %s games on %dx%d (%d workers, %d ticks)\n",
		*games, grid.Game, grid.Rows, grid.Columns, *workers, *ticks)

	start := time.Now()
	reports, err := autoplay.Run(ctx, autoplay.Options{
		Grid:       grid,
		Games:      *games,
		Workers:    *workers,
		Ticks:      *ticks,
		PressEvery: *every,
	})
	if err != nil {
		log.Fatal(err)
	}
	elapsed := time.Since(start)

	counts := map[core.Outcome]int{}
	total := 0
	for _, r := range reports {
		counts[r.Outcome]++
		total += r.Ticks
	}

	fmt.Printf("\nTop %d games (elapsed %s):\n", min(*top, len(reports)), elapsed.Round(time.Millisecond))
	for i := 0; i < len(reports) && i < *top; i++ {
		fmt.Printf("%2d) %s\n", i+1, reports[i])
	}
	if len(reports) > 0 {
		fmt.Printf("\nMean ticks %.1f; game over %d, won %d, still running %d\n",
			float64(total)/float64(len(reports)), counts[core.GameOver], counts[core.Win],
			len(reports)-counts[core.GameOver]-counts[core.Win])
	}
}
