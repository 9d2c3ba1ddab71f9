package life

import (
	"context"

	"gridgames/internal/core"
)

// Phase is the lifecycle of a Life game.
type Phase uint8

const (
	Stopped Phase = iota
	Running
)

func (p Phase) String() string {
	if p == Running {
		return "running"
	}
	return "stopped"
}

// Start moves any phase to Running.
func (p Phase) Start() Phase { return Running }

// Stop moves any phase to Stopped.
func (p Phase) Stop() Phase { return Stopped }

// Life runs Conway's Game of Life on a shared grid. The grid is re-read every
// tick so edits made between ticks are picked up.
type Life struct {
	grid       core.Grid
	phase      Phase
	generation int
	population int
}

// New returns a stopped Life game bound to grid.
func New(grid core.Grid) *Life {
	return &Life{grid: grid}
}

// Name returns the game identifier.
func (l *Life) Name() string { return "life" }

// Phase reports the current phase.
func (l *Life) Phase() Phase { return l.phase }

// Generation reports how many steps ran since the last start.
func (l *Life) Generation() int { return l.generation }

// Start begins ticking. The selection is ignored.
func (l *Life) Start(core.Selection) core.Result {
	l.phase = l.phase.Start()
	l.generation = 0
	return core.Result{Outcome: core.NoChange}
}

// Handle reacts to CommandStop; every other command is ignored.
func (l *Life) Handle(cmd core.Command) core.Result {
	if cmd == core.CommandStop {
		l.phase = l.phase.Stop()
	}
	return core.Result{Outcome: core.NoChange}
}

// Advance reads the grid, steps one generation and writes it back.
func (l *Life) Advance(context.Context) core.Result {
	if l.phase != Running {
		return core.Result{Outcome: core.NoChange}
	}
	next := ReadState(l.grid).Step()
	next.Write(l.grid)
	l.generation++
	l.population = next.Population()
	return core.Result{Outcome: core.Changed}
}

// Status reports phase, generation and population.
func (l *Life) Status() core.Status {
	return core.Status{
		Game:  l.Name(),
		Phase: l.phase.String(),
		Fields: []core.StatusField{
			core.IntField("generation", "Generation", l.generation),
			core.IntField("population", "Population", l.population),
		},
	}
}

func init() {
	core.Register("life", func(grid core.Grid, _ *core.RNG) core.Game {
		return New(grid)
	})
}
