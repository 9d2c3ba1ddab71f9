package snake

import (
	"context"

	"gridgames/internal/core"
)

// Messages delivered to the user.
const (
	MsgSelectStart = "Mr snake kind reminds you to select a starting cell."
	MsgGameOver    = "Game Over!"
	MsgWin         = "You win!"
)

// Phase is the lifecycle of a Snake game.
type Phase uint8

const (
	NotStarted Phase = iota
	Running
	Over
	Won
)

func (p Phase) String() string {
	switch p {
	case Running:
		return "running"
	case Over:
		return "game-over"
	case Won:
		return "won"
	}
	return "not-started"
}

// Start moves any phase to Running.
func (p Phase) Start() Phase { return Running }

// Lose ends a running game. Other phases are unchanged.
func (p Phase) Lose() Phase {
	if p != Running {
		return p
	}
	return Over
}

// Win ends a running game as won. Other phases are unchanged.
func (p Phase) Win() Phase {
	if p != Running {
		return p
	}
	return Won
}

// Snake plays the classic snake game on a shared grid. Food cells are placed
// by the user as "2" before starting; the snake is drawn as "1".
type Snake struct {
	board board
	cells core.CellPicker

	phase    Phase
	state    State
	food     []core.CellLocation
	growNext bool
	turned   bool
}

// New returns a Snake bound to grid that places replacement food using cells.
func New(grid core.Grid, cells core.CellPicker) *Snake {
	return &Snake{board: board{grid: grid}, cells: cells}
}

// Name returns the game identifier.
func (s *Snake) Name() string { return "snake" }

// Phase reports the current phase.
func (s *Snake) Phase() Phase { return s.phase }

// State returns the current snake snapshot.
func (s *Snake) State() State { return s.state }

// Food returns a copy of the current food cells.
func (s *Snake) Food() []core.CellLocation {
	return append([]core.CellLocation(nil), s.food...)
}

// Start spawns a one-cell snake on the selected cell and picks up every food
// marker on the grid.
func (s *Snake) Start(sel core.Selection) core.Result {
	if !sel.Set {
		return core.Result{Outcome: core.NoChange, Message: MsgSelectStart}
	}
	s.phase = s.phase.Start()
	s.state = NewState(sel.Cell)
	s.food = s.board.readFood()
	s.growNext = false
	s.turned = false
	s.board.renderSnake(s.state)
	s.board.renderFood(s.food)
	return core.Result{Outcome: core.Changed}
}

// Handle maps the four direction commands onto ChangeDirection.
func (s *Snake) Handle(cmd core.Command) core.Result {
	switch cmd {
	case core.CommandUp:
		s.ChangeDirection(Up)
	case core.CommandDown:
		s.ChangeDirection(Down)
	case core.CommandLeft:
		s.ChangeDirection(Left)
	case core.CommandRight:
		s.ChangeDirection(Right)
	}
	return core.Result{Outcome: core.NoChange}
}

// ChangeDirection turns the snake before the next advance. At most one turn
// is applied per tick and reversing is refused.
func (s *Snake) ChangeDirection(d Direction) bool {
	if s.phase != Running || s.turned {
		return false
	}
	next, ok := s.state.Turn(d)
	if !ok {
		return false
	}
	s.state = next
	s.turned = true
	return true
}

// Advance moves the snake one cell, checking loss and win conditions and
// replacing eaten food. Growth from eating applies on the following tick.
func (s *Snake) Advance(context.Context) core.Result {
	if s.phase != Running {
		return core.Result{Outcome: core.NoChange}
	}

	grow := s.growNext
	s.growNext = false

	moved := s.state.Move(grow)
	if !s.board.inBounds(moved) || moved.InItself() {
		s.phase = s.phase.Lose()
		return core.Result{Outcome: core.GameOver, Message: MsgGameOver}
	}
	won := moved.Len() == s.board.size()

	s.board.unrenderSnake(s.state)
	s.state = moved
	s.board.renderSnake(s.state)

	s.growNext = s.updateFood()
	s.turned = false

	if won {
		s.phase = s.phase.Win()
		return core.Result{Outcome: core.Win, Message: MsgWin}
	}
	return core.Result{Outcome: core.Changed}
}

// updateFood replaces food under the head with a random cell. When the draw
// lands on the eaten cell the entry is dropped rather than redrawn.
func (s *Snake) updateFood() bool {
	eaten := false
	next := make([]core.CellLocation, 0, len(s.food))
	for _, cell := range s.food {
		if !s.state.HeadAt(cell) {
			next = append(next, cell)
			continue
		}
		eaten = true
		if replacement := s.cells.PickCell(); replacement != cell {
			next = append(next, replacement)
		}
	}
	s.food = next
	s.board.renderFood(s.food)
	return eaten
}

// Status reports phase, length, food count and heading.
func (s *Snake) Status() core.Status {
	st := core.Status{Game: s.Name(), Phase: s.phase.String()}
	if s.phase == NotStarted {
		return st
	}
	st.Fields = []core.StatusField{
		core.IntField("length", "Length", s.state.Len()),
		core.IntField("food", "Food", len(s.food)),
		core.TextField("direction", "Direction", s.state.Direction().String()),
	}
	return st
}

func init() {
	core.Register("snake", func(grid core.Grid, rng *core.RNG) core.Game {
		return New(grid, rng.Cells(grid))
	})
}
