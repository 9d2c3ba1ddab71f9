package input

import "gridgames/internal/core"

// Binding ties a key to a game command.
type Binding struct {
	Key     rune
	Label   string
	Command core.Command
}

var bindings = map[string][]Binding{
	"life": {
		{Key: 'x', Label: "End Game of Life", Command: core.CommandStop},
	},
	"snake": {
		{Key: 'w', Label: "Turn Up", Command: core.CommandUp},
		{Key: 's', Label: "Turn Down", Command: core.CommandDown},
		{Key: 'a', Label: "Turn Left", Command: core.CommandLeft},
		{Key: 'd', Label: "Turn Right", Command: core.CommandRight},
	},
	"tetros": {
		{Key: 'a', Label: "Move Left", Command: core.CommandLeft},
		{Key: 'd', Label: "Move Right", Command: core.CommandRight},
		{Key: 'q', Label: "Rotate Left", Command: core.CommandRotateLeft},
		{Key: 'e', Label: "Rotate Right", Command: core.CommandRotateRight},
		{Key: 's', Label: "Drop", Command: core.CommandDrop},
	},
}

// Bindings lists the keys a game reacts to.
func Bindings(game string) []Binding {
	return bindings[game]
}

// Lookup resolves a key press for game.
func Lookup(game string, key rune) (core.Command, bool) {
	for _, b := range bindings[game] {
		if b.Key == key {
			return b.Command, true
		}
	}
	return core.CommandNone, false
}
