package app

import (
	"context"
	"errors"
	"testing"

	"gridgames/internal/core"
	_ "gridgames/internal/games/life"
	"gridgames/internal/games/snake"
	_ "gridgames/internal/games/tetros"
)

type recorder []string

func (r *recorder) Notify(msg string) { *r = append(*r, msg) }

func newSession(t *testing.T, game string, rows, cols int) *Session {
	t.Helper()
	s, err := NewSession(core.GridConfig{Game: game, Rows: rows, Columns: cols, Seed: 1})
	if err != nil {
		t.Fatalf("new session: %v", err)
	}
	return s
}

func TestUnknownGame(t *testing.T) {
	_, err := NewSession(core.GridConfig{Game: "pong", Rows: 2, Columns: 2})
	if !errors.Is(err, core.ErrUnknownGame) {
		t.Fatalf("expected ErrUnknownGame, got %v", err)
	}
}

func TestSnakeSessionNeedsSelection(t *testing.T) {
	s := newSession(t, "snake", 6, 6)
	var r recorder
	s.SetNotifier(&r)

	s.Start()
	if s.Message() != snake.MsgSelectStart || len(r) != 1 {
		t.Fatalf("expected reminder, got %q %v", s.Message(), r)
	}

	s.Select(core.Loc(1, 1))
	if res := s.Start(); res.Outcome != core.Changed {
		t.Fatalf("expected start, got %v", res.Outcome)
	}
	s.Key('d')
	s.Tick(context.Background())

	f := s.Frame()
	if f.Rows != 6 || f.Columns != 6 || len(f.Cells) != 36 {
		t.Fatalf("unexpected frame shape %dx%d/%d", f.Rows, f.Columns, len(f.Cells))
	}
	if f.Cells[1*6+2] != "1" {
		t.Fatalf("expected head at (1,2), cells %v", f.Cells)
	}
	if f.Selected == nil || *f.Selected != core.Loc(1, 1) {
		t.Fatalf("unexpected selection %v", f.Selected)
	}
	if f.Status.Game != "snake" || f.Status.Phase != "running" {
		t.Fatalf("unexpected status %+v", f.Status)
	}
}

func TestSelectOffGridClears(t *testing.T) {
	s := newSession(t, "life", 3, 3)
	s.Select(core.Loc(1, 1))
	s.Select(core.Loc(5, 5))
	if s.Frame().Selected != nil {
		t.Fatal("selection off the grid must clear")
	}
}

func TestLifeSessionEditsAndStops(t *testing.T) {
	s := newSession(t, "life", 5, 5)
	for _, c := range []int{1, 2, 3} {
		s.Edit(core.Loc(2, c), "1")
	}
	s.Start()
	if res := s.Tick(context.Background()); !res.Repaint() {
		t.Fatal("running life must repaint")
	}
	if s.Grid().ValueAt(core.Loc(1, 2)) != "1" {
		t.Fatal("blinker did not rotate")
	}
	s.Key('x')
	if res := s.Tick(context.Background()); res.Repaint() {
		t.Fatal("stopped life must not repaint")
	}
	if res := s.Key('z'); res.Repaint() {
		t.Fatal("unbound keys are ignored")
	}
}
