package tetros

import (
	"context"

	"gridgames/internal/core"
)

// MsgGameOver is delivered when a new tile cannot be spawned.
const MsgGameOver = "Game Over!"

// Phase is the lifecycle of a Tetros game.
type Phase uint8

const (
	NotStarted Phase = iota
	Falling
	Landed
	Over
)

func (p Phase) String() string {
	switch p {
	case Falling:
		return "falling"
	case Landed:
		return "landed"
	case Over:
		return "game-over"
	}
	return "not-started"
}

// Active reports whether the game accepts input and ticks.
func (p Phase) Active() bool { return p == Falling || p == Landed }

// Start moves any phase to Falling.
func (p Phase) Start() Phase { return Falling }

// Land marks the falling tile as settled.
func (p Phase) Land() Phase {
	if p != Falling {
		return p
	}
	return Landed
}

// Spawn resolves a landing: a new tile either falls or the game is over.
func (p Phase) Spawn(ok bool) Phase {
	if !p.Active() {
		return p
	}
	if ok {
		return Falling
	}
	return Over
}

// Tetros is a falling-block game played on a shared grid.
type Tetros struct {
	pile  pile
	tiles core.TilePicker

	phase   Phase
	falling Tile
	spawned int
	cleared int
}

// New returns a Tetros bound to grid that draws shapes from tiles.
func New(grid core.Grid, tiles core.TilePicker) *Tetros {
	return &Tetros{pile: pile{grid: grid}, tiles: tiles}
}

// Name returns the game identifier.
func (t *Tetros) Name() string { return "tetros" }

// Phase reports the current phase.
func (t *Tetros) Phase() Phase { return t.phase }

// Falling returns the tile currently in flight.
func (t *Tetros) Falling() Tile { return t.falling }

// Cleared reports how many row collapses happened since start.
func (t *Tetros) Cleared() int { return t.cleared }

// Start spawns the first tile. The selection is ignored.
func (t *Tetros) Start(core.Selection) core.Result {
	t.phase = t.phase.Start()
	t.spawned = 0
	t.cleared = 0
	if !t.dropNewTile() {
		t.phase = t.phase.Spawn(false)
		return core.Result{Outcome: core.GameOver, Message: MsgGameOver}
	}
	return core.Result{Outcome: core.Changed}
}

// Handle maps movement, rotation and hard-drop commands.
func (t *Tetros) Handle(cmd core.Command) core.Result {
	if !t.phase.Active() {
		return core.Result{Outcome: core.NoChange}
	}
	switch cmd {
	case core.CommandLeft:
		t.Move(-1)
	case core.CommandRight:
		t.Move(1)
	case core.CommandRotateLeft:
		t.Rotate(-1)
	case core.CommandRotateRight:
		t.Rotate(1)
	case core.CommandDrop:
		t.FullDrop()
	default:
		return core.Result{Outcome: core.NoChange}
	}
	return core.Result{Outcome: core.Changed}
}

// Move shifts the falling tile sideways if it stays on the grid.
func (t *Tetros) Move(distance int) {
	if !t.phase.Active() {
		return
	}
	t.place(t.falling.Move(distance))
}

// Rotate turns the falling tile if the result stays on the grid.
func (t *Tetros) Rotate(direction int) {
	if !t.phase.Active() {
		return
	}
	t.place(t.falling.Rotate(direction))
}

func (t *Tetros) place(next Tile) {
	if t.pile.inBounds(next) {
		t.pile.unrender(t.falling)
		t.falling = next
	}
	t.pile.render(t.falling)
}

// Drop moves the falling tile down one row. It reports false, leaving the
// tile where it was, when the row below is off the grid or occupied.
func (t *Tetros) Drop() bool {
	if !t.phase.Active() {
		return false
	}
	dropped := t.falling.Drop()
	t.pile.unrender(t.falling)
	if !t.pile.inBounds(dropped) || t.pile.touching(dropped) {
		t.pile.render(t.falling)
		return false
	}
	t.falling = dropped
	t.pile.render(t.falling)
	return true
}

// FullDrop drops the falling tile until it lands.
func (t *Tetros) FullDrop() {
	for t.Drop() {
	}
}

func (t *Tetros) dropNewTile() bool {
	t.falling = NewTile(t.tiles.PickTile())
	if t.pile.touching(t.falling) {
		return false
	}
	t.spawned++
	t.pile.render(t.falling)
	return true
}

// Advance drops the falling tile, spawning a new one when it has landed, and
// then collapses full rows.
func (t *Tetros) Advance(context.Context) core.Result {
	if !t.phase.Active() {
		return core.Result{Outcome: core.NoChange}
	}
	res := core.Result{Outcome: core.Changed}
	if !t.Drop() {
		t.phase = t.phase.Land()
		t.phase = t.phase.Spawn(t.dropNewTile())
		if t.phase == Over {
			res = core.Result{Outcome: core.GameOver, Message: MsgGameOver}
		}
	}
	t.cleared += t.pile.clearFullRows(t.falling)
	return res
}

// Status reports phase, tile type and counters.
func (t *Tetros) Status() core.Status {
	st := core.Status{Game: t.Name(), Phase: t.phase.String()}
	if t.phase == NotStarted {
		return st
	}
	st.Fields = []core.StatusField{
		core.IntField("tile", "Tile", t.falling.Type()),
		core.IntField("spawned", "Spawned", t.spawned),
		core.IntField("cleared", "Cleared", t.cleared),
	}
	return st
}

func init() {
	core.Register("tetros", func(grid core.Grid, rng *core.RNG) core.Game {
		return New(grid, rng)
	})
}
