package app

import (
	"context"
	"fmt"
	"sync"

	"gridgames/internal/core"
	"gridgames/internal/input"
)

// Frame is a point-in-time copy of a session for drawing or sending over the
// wire.
type Frame struct {
	Rows     int                `json:"rows"`
	Columns  int                `json:"cols"`
	Cells    []string           `json:"cells"`
	Status   core.Status        `json:"status"`
	Message  string             `json:"message,omitempty"`
	Selected *core.CellLocation `json:"selected,omitempty"`
}

// Session owns one grid and the single game playing on it. Drivers call
// Tick once per interval and forward input in between; the mutex keeps
// ticks and inputs from overlapping when they arrive on different
// goroutines.
type Session struct {
	mu       sync.Mutex
	grid     *core.StringGrid
	game     core.Game
	sel      core.Selection
	message  string
	notifier core.Notifier
}

// NewSession builds the grid and game described by cfg.
func NewSession(cfg core.GridConfig) (*Session, error) {
	grid, game, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("new session: %w", err)
	}
	return &Session{grid: grid, game: game}, nil
}

// SetNotifier forwards every message to n as well as keeping it on the session.
func (s *Session) SetNotifier(n core.Notifier) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notifier = n
}

// Game returns the game being played.
func (s *Session) Game() core.Game { return s.game }

// Grid returns the shared grid. Callers must not mutate it while the session
// is ticking on another goroutine; use Edit for that.
func (s *Session) Grid() *core.StringGrid { return s.grid }

// Select marks loc as the selected cell. Locations off the grid clear the
// selection.
func (s *Session) Select(loc core.CellLocation) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.grid.Contains(loc) {
		s.sel = core.Selection{}
		return
	}
	s.sel = core.Select(loc)
}

// Edit writes value into loc, e.g. to place food or live cells before start.
func (s *Session) Edit(loc core.CellLocation, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.grid.Update(loc, value)
}

// Start starts the game from the current selection.
func (s *Session) Start() core.Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.record(s.game.Start(s.sel))
}

// Command forwards cmd to the game.
func (s *Session) Command(cmd core.Command) core.Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.record(s.game.Handle(cmd))
}

// Key resolves key through the game's bindings. Unbound keys are ignored.
func (s *Session) Key(key rune) core.Result {
	cmd, ok := input.Lookup(s.game.Name(), key)
	if !ok {
		return core.Result{}
	}
	return s.Command(cmd)
}

// Tick advances the game once.
func (s *Session) Tick(ctx context.Context) core.Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.record(s.game.Advance(ctx))
}

// Message returns the last message delivered by the game.
func (s *Session) Message() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.message
}

// Frame snapshots the grid, status and message.
func (s *Session) Frame() Frame {
	s.mu.Lock()
	defer s.mu.Unlock()
	f := Frame{
		Rows:    s.grid.Rows(),
		Columns: s.grid.Columns(),
		Cells:   core.Snapshot(s.grid),
		Status:  s.game.Status(),
		Message: s.message,
	}
	if s.sel.Set {
		loc := s.sel.Cell
		f.Selected = &loc
	}
	return f
}

func (s *Session) record(r core.Result) core.Result {
	if r.Message != "" {
		s.message = r.Message
		core.Deliver(s.notifier, r)
	}
	return r
}
