package life

import (
	"context"
	"testing"

	"gridgames/internal/core"
)

func expectOn(t *testing.T, g core.Grid, step string, want map[core.CellLocation]bool) {
	t.Helper()
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Columns(); c++ {
			loc := core.Loc(r, c)
			alive := g.ValueAt(loc) == OnMarker
			if want[loc] != alive {
				t.Fatalf("%s: cell %v alive=%v, expected %v", step, loc, alive, want[loc])
			}
		}
	}
}

func TestBlinkerOscillation(t *testing.T) {
	grid := core.NewStringGrid(5, 5)
	grid.Update(core.Loc(2, 1), "1")
	grid.Update(core.Loc(2, 2), "1")
	grid.Update(core.Loc(2, 3), "1")

	game := New(grid)
	game.Start(core.Selection{})

	if res := game.Advance(context.Background()); res.Outcome != core.Changed {
		t.Fatalf("expected changed, got %v", res.Outcome)
	}
	expectOn(t, grid, "first step", map[core.CellLocation]bool{
		core.Loc(1, 2): true,
		core.Loc(2, 2): true,
		core.Loc(3, 2): true,
	})

	game.Advance(context.Background())
	expectOn(t, grid, "second step", map[core.CellLocation]bool{
		core.Loc(2, 1): true,
		core.Loc(2, 2): true,
		core.Loc(2, 3): true,
	})

	if got := game.Generation(); got != 2 {
		t.Fatalf("expected generation 2, got %d", got)
	}
}

func TestIsolatedCellDies(t *testing.T) {
	grid := core.NewStringGrid(3, 3)
	grid.Update(core.Loc(1, 1), "1")

	game := New(grid)
	game.Start(core.Selection{})
	game.Advance(context.Background())

	expectOn(t, grid, "after step", nil)
}

func TestStoppedIsNoop(t *testing.T) {
	grid := core.NewStringGrid(3, 3)
	grid.Update(core.Loc(1, 1), "1")

	game := New(grid)
	if res := game.Advance(context.Background()); res.Repaint() {
		t.Fatal("stopped game must not report a change")
	}
	if grid.ValueAt(core.Loc(1, 1)) != "1" {
		t.Fatal("stopped game must not touch the grid")
	}

	game.Start(core.Selection{})
	game.Handle(core.CommandStop)
	if game.Phase() != Stopped {
		t.Fatalf("expected stopped, got %v", game.Phase())
	}
	if res := game.Advance(context.Background()); res.Repaint() {
		t.Fatal("game stopped via command must not report a change")
	}
}

func TestNonMarkerContentIsOff(t *testing.T) {
	grid := core.NewStringGrid(3, 3)
	grid.Update(core.Loc(0, 0), "=A1")
	grid.Update(core.Loc(0, 1), "2")
	grid.Update(core.Loc(0, 2), "1.0")

	state := ReadState(grid)
	if got := state.Population(); got != 0 {
		t.Fatalf("expected no live cells, got %d", got)
	}

	game := New(grid)
	game.Start(core.Selection{})
	game.Advance(context.Background())
	for _, v := range grid.Cells() {
		if v != core.Blank {
			t.Fatalf("expected grid to be cleared of non-marker content, got %q", v)
		}
	}
}

func TestNeighborsBoundedAtEdges(t *testing.T) {
	state := NewState(3, 3)
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			state = state.Set(core.Loc(r, c), true)
		}
	}
	cases := map[core.CellLocation]int{
		core.Loc(0, 0): 3,
		core.Loc(0, 1): 5,
		core.Loc(1, 1): 8,
		core.Loc(2, 2): 3,
	}
	for loc, want := range cases {
		if got := state.Neighbors(loc); got != want {
			t.Fatalf("neighbors of %v = %d, expected %d", loc, got, want)
		}
	}
}

func TestRuleTable(t *testing.T) {
	for n := 0; n <= 8; n++ {
		wantOn := n == 2 || n == 3
		if got := survives(true, n); got != wantOn {
			t.Fatalf("on cell with %d neighbors: got %v", n, got)
		}
		wantBirth := n == 3
		if got := survives(false, n); got != wantBirth {
			t.Fatalf("off cell with %d neighbors: got %v", n, got)
		}
	}
}

func TestStepDoesNotMutateReceiver(t *testing.T) {
	state := NewState(5, 5).
		Set(core.Loc(2, 1), true).
		Set(core.Loc(2, 2), true).
		Set(core.Loc(2, 3), true)
	_ = state.Step()
	if !state.On(core.Loc(2, 1)) || state.On(core.Loc(1, 2)) {
		t.Fatal("Step must compute from the pre-step snapshot without mutating it")
	}
}
