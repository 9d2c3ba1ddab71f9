// Package autoplay runs seeded games headless with random input. It is used
// to soak the engines and to compare how long games survive on a given grid.
package autoplay

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"gridgames/internal/app"
	"gridgames/internal/core"
	"gridgames/internal/input"
)

// Options describes a batch of games.
type Options struct {
	Grid    core.GridConfig
	Games   int
	Workers int
	Ticks   int
	// PressEvery is the average number of ticks between random key presses.
	PressEvery int
}

// Report is the result of one game.
type Report struct {
	Seed    int64
	Ticks   int
	Presses int
	Outcome core.Outcome
	Status  core.Status
}

func (r Report) String() string {
	s := fmt.Sprintf("seed=%d ticks=%d presses=%d outcome=%s phase=%s",
		r.Seed, r.Ticks, r.Presses, r.Outcome, r.Status.Phase)
	for _, f := range r.Status.Fields {
		s += fmt.Sprintf(" %s=%s", f.Key, f.Value)
	}
	return s
}

// Play runs a single game to its end or until ticks have elapsed. The game's
// own randomness comes from cfg.Seed and the simulated player draws from a
// separate stream derived from it, so a seed always replays the same game.
func Play(ctx context.Context, cfg core.GridConfig, ticks, pressEvery int) (Report, error) {
	session, err := app.NewSession(cfg)
	if err != nil {
		return Report{}, err
	}
	if pressEvery < 1 {
		pressEvery = 1
	}
	player := core.NewRNG(cfg.Seed ^ 0x5eed)
	grid := session.Grid()
	pick := func() core.CellLocation {
		return core.Loc(player.IntN(grid.Rows()), player.IntN(grid.Columns()))
	}

	if cfg.Game == "life" {
		for i := 0; i < grid.Rows()*grid.Columns()/3; i++ {
			session.Edit(pick(), "1")
		}
	}
	session.Select(pick())
	rep := Report{Seed: cfg.Seed, Outcome: session.Start().Outcome}

	var keys []input.Binding
	for _, b := range input.Bindings(cfg.Game) {
		if b.Command != core.CommandStop {
			keys = append(keys, b)
		}
	}

	for rep.Ticks < ticks && !rep.Outcome.Ended() {
		if err := ctx.Err(); err != nil {
			return rep, err
		}
		if len(keys) > 0 && player.IntN(pressEvery) == 0 {
			session.Key(keys[player.IntN(len(keys))].Key)
			rep.Presses++
		}
		res := session.Tick(ctx)
		rep.Ticks++
		if res.Outcome != core.NoChange {
			rep.Outcome = res.Outcome
		}
	}
	rep.Status = session.Game().Status()
	return rep, nil
}

// Run plays opts.Games games across opts.Workers goroutines. Game i uses seed
// opts.Grid.Seed+i. Reports come back sorted by ticks survived, longest first.
func Run(ctx context.Context, opts Options) ([]Report, error) {
	workers := opts.Workers
	if workers < 1 {
		workers = 1
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	jobs := make(chan int64)
	results := make(chan Report)
	errs := make(chan error, workers)
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for seed := range jobs {
				cfg := opts.Grid
				cfg.Seed = seed
				rep, err := Play(ctx, cfg, opts.Ticks, opts.PressEvery)
				if err != nil {
					errs <- fmt.Errorf("seed %d: %w", seed, err)
					cancel()
					return
				}
				results <- rep
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		defer close(jobs)
		for i := 0; i < opts.Games; i++ {
			select {
			case jobs <- opts.Grid.Seed + int64(i):
			case <-ctx.Done():
				return
			}
		}
	}()

	var all []Report
	for rep := range results {
		all = append(all, rep)
	}
	select {
	case err := <-errs:
		return all, err
	default:
	}

	sort.SliceStable(all, func(i, j int) bool {
		if all[i].Ticks != all[j].Ticks {
			return all[i].Ticks > all[j].Ticks
		}
		return all[i].Seed < all[j].Seed
	})
	return all, nil
}
