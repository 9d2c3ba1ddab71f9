package core

import (
	"context"
	"errors"
	"fmt"
	"sort"
)

// Outcome classifies what a game operation did to the grid.
type Outcome uint8

const (
	// NoChange means the grid was not touched.
	NoChange Outcome = iota
	// Changed means the grid was mutated and should be repainted.
	Changed
	// GameOver means the game reached its losing terminal state.
	GameOver
	// Win means the game reached its winning terminal state.
	Win
)

func (o Outcome) String() string {
	switch o {
	case NoChange:
		return "no-change"
	case Changed:
		return "changed"
	case GameOver:
		return "game-over"
	case Win:
		return "win"
	}
	return "unknown"
}

// Result is returned by every game operation. Message, when set, is meant for
// the user and is delivered by the driver.
type Result struct {
	Outcome Outcome
	Message string
}

// Repaint reports whether the grid may have been mutated.
func (r Result) Repaint() bool { return r.Outcome != NoChange }

// Ended reports whether the outcome is terminal.
func (o Outcome) Ended() bool { return o == GameOver || o == Win }

// Ended reports whether the game reached a terminal state.
func (r Result) Ended() bool { return r.Outcome.Ended() }

// Command is a keyboard-level input forwarded to a game between ticks.
type Command uint8

const (
	CommandNone Command = iota
	CommandStop
	CommandUp
	CommandDown
	CommandLeft
	CommandRight
	CommandRotateLeft
	CommandRotateRight
	CommandDrop
)

var commandNames = map[Command]string{
	CommandNone:        "none",
	CommandStop:        "stop",
	CommandUp:          "up",
	CommandDown:        "down",
	CommandLeft:        "left",
	CommandRight:       "right",
	CommandRotateLeft:  "rotate-left",
	CommandRotateRight: "rotate-right",
	CommandDrop:        "drop",
}

func (c Command) String() string {
	if name, ok := commandNames[c]; ok {
		return name
	}
	return "unknown"
}

// ParseCommand maps a command name back to its value.
func ParseCommand(name string) (Command, bool) {
	for cmd, n := range commandNames {
		if n == name {
			return cmd, true
		}
	}
	return CommandNone, false
}

// Selection is the cell the user currently has selected, if any.
type Selection struct {
	Cell CellLocation
	Set  bool
}

// Select returns a Selection pointing at loc.
func Select(loc CellLocation) Selection { return Selection{Cell: loc, Set: true} }

// Game is the contract shared by every tick-driven game.
type Game interface {
	Name() string
	Start(sel Selection) Result
	Handle(cmd Command) Result
	Advance(ctx context.Context) Result
	Status() Status
}

// Notifier delivers user-facing messages.
type Notifier interface {
	Notify(msg string)
}

// Deliver forwards the result message, if any, to n.
func Deliver(n Notifier, r Result) {
	if n == nil || r.Message == "" {
		return
	}
	n.Notify(r.Message)
}

// ErrUnknownGame is returned when a game name is not registered.
var ErrUnknownGame = errors.New("unknown game")

// Factory constructs a Game bound to a grid and random source.
type Factory func(grid Grid, rng *RNG) Game

var games = map[string]Factory{}

// Register adds a game factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	games[name] = f
}

// Games exposes the registry of available game factories.
func Games() map[string]Factory {
	return games
}

// GameNames lists registered games in sorted order.
func GameNames() []string {
	names := make([]string, 0, len(games))
	for name := range games {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NewGame looks up name in the registry and builds the game.
func NewGame(name string, grid Grid, rng *RNG) (Game, error) {
	f, ok := games[name]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownGame, name)
	}
	return f(grid, rng), nil
}
