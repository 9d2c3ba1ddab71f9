package snake

import (
	"context"
	"slices"
	"testing"

	"gridgames/internal/core"
)

// scriptedCells returns the queued cells in order, then repeats the last one.
type scriptedCells struct {
	cells []core.CellLocation
	calls int
}

func (s *scriptedCells) PickCell() core.CellLocation {
	s.calls++
	if len(s.cells) == 0 {
		return core.Loc(0, 0)
	}
	next := s.cells[0]
	if len(s.cells) > 1 {
		s.cells = s.cells[1:]
	}
	return next
}

func advance(t *testing.T, s *Snake, want core.Outcome) {
	t.Helper()
	if res := s.Advance(context.Background()); res.Outcome != want {
		t.Fatalf("expected %v, got %v (%q)", want, res.Outcome, res.Message)
	}
}

func TestStartRequiresSelection(t *testing.T) {
	grid := core.NewStringGrid(5, 5)
	game := New(grid, &scriptedCells{})

	res := game.Start(core.Selection{})
	if res.Message != MsgSelectStart {
		t.Fatalf("expected reminder message, got %q", res.Message)
	}
	if res.Repaint() {
		t.Fatal("failed start must not repaint")
	}
	if game.Phase() != NotStarted {
		t.Fatalf("expected not-started, got %v", game.Phase())
	}
	if res := game.Advance(context.Background()); res.Repaint() {
		t.Fatal("advance before start must be a no-op")
	}
}

func TestMovesDownByDefault(t *testing.T) {
	grid := core.NewStringGrid(8, 8)
	game := New(grid, &scriptedCells{})
	game.Start(core.Select(core.Loc(2, 2)))

	for i := 0; i < 3; i++ {
		advance(t, game, core.Changed)
	}

	if got := game.State().Body(); !slices.Equal(got, []core.CellLocation{core.Loc(5, 2)}) {
		t.Fatalf("expected body [(5,2)], got %v", got)
	}
	if game.State().Direction() != Down {
		t.Fatalf("direction changed to %v", game.State().Direction())
	}
	if grid.ValueAt(core.Loc(5, 2)) != "1" {
		t.Fatal("head must be rendered")
	}
	if grid.ValueAt(core.Loc(2, 2)) != core.Blank || grid.ValueAt(core.Loc(4, 2)) != core.Blank {
		t.Fatal("old body cells must be unrendered")
	}
}

func TestReverseIsIgnored(t *testing.T) {
	grid := core.NewStringGrid(8, 8)
	game := New(grid, &scriptedCells{})
	game.Start(core.Select(core.Loc(2, 2)))

	game.Handle(core.CommandUp)
	advance(t, game, core.Changed)

	if head := game.State().Head(); head != core.Loc(3, 2) {
		t.Fatalf("expected head at (3,2), got %v", head)
	}
}

func TestOneTurnPerTick(t *testing.T) {
	grid := core.NewStringGrid(8, 8)
	game := New(grid, &scriptedCells{})
	game.Start(core.Select(core.Loc(2, 2)))

	if !game.ChangeDirection(Left) {
		t.Fatal("first turn should apply")
	}
	if game.ChangeDirection(Down) {
		t.Fatal("second turn in the same tick must be ignored")
	}
	advance(t, game, core.Changed)
	if head := game.State().Head(); head != core.Loc(2, 1) {
		t.Fatalf("expected head at (2,1), got %v", head)
	}

	if !game.ChangeDirection(Up) {
		t.Fatal("turn must be accepted again after a tick")
	}
}

func TestRefusedReverseDoesNotConsumeTurn(t *testing.T) {
	grid := core.NewStringGrid(8, 8)
	game := New(grid, &scriptedCells{})
	game.Start(core.Select(core.Loc(2, 2)))

	if game.ChangeDirection(Up) {
		t.Fatal("reverse must be refused")
	}
	if !game.ChangeDirection(Right) {
		t.Fatal("a refused reverse must not block the next turn")
	}
}

func TestDirectionIgnoredBeforeStart(t *testing.T) {
	game := New(core.NewStringGrid(3, 3), &scriptedCells{})
	if game.ChangeDirection(Left) {
		t.Fatal("turn before start must be ignored")
	}
}

func TestEatingGrowsOnNextTick(t *testing.T) {
	grid := core.NewStringGrid(10, 10)
	grid.Update(core.Loc(4, 2), "2")
	picker := &scriptedCells{cells: []core.CellLocation{core.Loc(0, 7)}}
	game := New(grid, picker)
	game.Start(core.Select(core.Loc(2, 2)))

	if food := game.Food(); !slices.Equal(food, []core.CellLocation{core.Loc(4, 2)}) {
		t.Fatalf("expected food read from grid, got %v", food)
	}

	advance(t, game, core.Changed) // head (3,2)
	advance(t, game, core.Changed) // head (4,2) eats
	if got := game.State().Len(); got != 1 {
		t.Fatalf("growth must be delayed by a tick, length %d", got)
	}
	if food := game.Food(); !slices.Equal(food, []core.CellLocation{core.Loc(0, 7)}) {
		t.Fatalf("expected replacement food at (0,7), got %v", food)
	}
	if grid.ValueAt(core.Loc(0, 7)) != "2" {
		t.Fatal("replacement food must be rendered")
	}

	advance(t, game, core.Changed)
	if got := game.State().Len(); got != 2 {
		t.Fatalf("expected length 2 one tick after eating, got %d", got)
	}
	want := []core.CellLocation{core.Loc(4, 2), core.Loc(5, 2)}
	if got := game.State().Body(); !slices.Equal(got, want) {
		t.Fatalf("expected body %v, got %v", want, got)
	}

	advance(t, game, core.Changed)
	if got := game.State().Len(); got != 2 {
		t.Fatalf("expected growth to stop, got length %d", got)
	}
}

func TestReplacementOnEatenCellDropsFood(t *testing.T) {
	grid := core.NewStringGrid(10, 10)
	grid.Update(core.Loc(3, 2), "2")
	grid.Update(core.Loc(8, 8), "2")
	picker := &scriptedCells{cells: []core.CellLocation{core.Loc(3, 2)}}
	game := New(grid, picker)
	game.Start(core.Select(core.Loc(2, 2)))

	advance(t, game, core.Changed)
	if food := game.Food(); !slices.Equal(food, []core.CellLocation{core.Loc(8, 8)}) {
		t.Fatalf("expected the eaten entry to be dropped, got %v", food)
	}
	if picker.calls != 1 {
		t.Fatalf("expected a single draw, got %d", picker.calls)
	}
}

func TestLeavingGridIsGameOver(t *testing.T) {
	grid := core.NewStringGrid(3, 3)
	game := New(grid, &scriptedCells{})
	game.Start(core.Select(core.Loc(1, 1)))

	advance(t, game, core.Changed)
	res := game.Advance(context.Background())
	if res.Outcome != core.GameOver || res.Message != MsgGameOver {
		t.Fatalf("expected game over, got %v %q", res.Outcome, res.Message)
	}
	if game.Phase() != Over {
		t.Fatalf("expected over phase, got %v", game.Phase())
	}
	if grid.ValueAt(core.Loc(2, 1)) != "1" {
		t.Fatal("losing move must not mutate the grid")
	}
	if res := game.Advance(context.Background()); res.Repaint() {
		t.Fatal("advance after game over must be a no-op")
	}
}

func TestFillingGridWins(t *testing.T) {
	grid := core.NewStringGrid(2, 2)
	grid.Update(core.Loc(1, 0), "2")
	grid.Update(core.Loc(1, 1), "2")
	grid.Update(core.Loc(0, 1), "2")
	// Every replacement lands on the eaten cell, so each food is dropped.
	picker := &scriptedCells{cells: []core.CellLocation{core.Loc(1, 0), core.Loc(1, 1), core.Loc(0, 1)}}
	game := New(grid, picker)
	game.Start(core.Select(core.Loc(0, 0)))

	advance(t, game, core.Changed) // eats (1,0)
	game.ChangeDirection(Right)
	advance(t, game, core.Changed) // eats (1,1), length 2
	game.ChangeDirection(Up)
	advance(t, game, core.Changed) // eats (0,1), length 3
	game.ChangeDirection(Left)
	res := game.Advance(context.Background())
	if res.Outcome != core.Win || res.Message != MsgWin {
		t.Fatalf("expected win, got %v %q", res.Outcome, res.Message)
	}
	if game.Phase() != Won {
		t.Fatalf("expected won phase, got %v", game.Phase())
	}
	if got := game.State().Len(); got != 4 {
		t.Fatalf("expected length 4, got %d", got)
	}
	for _, v := range grid.Cells() {
		if v != "1" {
			t.Fatalf("expected snake to cover the grid, got %q", v)
		}
	}
	if res := game.Advance(context.Background()); res.Repaint() {
		t.Fatal("advance after winning must be a no-op")
	}
}

func TestStateInItself(t *testing.T) {
	s := State{body: []core.CellLocation{
		core.Loc(1, 1), core.Loc(1, 2), core.Loc(2, 2), core.Loc(2, 1), core.Loc(1, 1),
	}, dir: Up}
	if !s.InItself() {
		t.Fatal("expected self collision")
	}
	if NewState(core.Loc(0, 0)).InItself() {
		t.Fatal("single cell snake cannot collide with itself")
	}
}

func TestPhaseTransitions(t *testing.T) {
	if NotStarted.Lose() != NotStarted || NotStarted.Win() != NotStarted {
		t.Fatal("terminal phases must only be reachable from running")
	}
	if Running.Lose() != Over || Running.Win() != Won {
		t.Fatal("running must end in over or won")
	}
	if Over.Start() != Running {
		t.Fatal("a finished game can be restarted")
	}
}

func TestInvalidDirectionPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for invalid direction")
		}
	}()
	Direction(9).Delta()
}
