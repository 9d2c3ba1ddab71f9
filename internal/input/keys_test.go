package input

import (
	"testing"

	"gridgames/internal/core"
)

func TestLookup(t *testing.T) {
	cases := []struct {
		game string
		key  rune
		want core.Command
		ok   bool
	}{
		{"snake", 'w', core.CommandUp, true},
		{"snake", 'q', core.CommandNone, false},
		{"tetros", 'a', core.CommandLeft, true},
		{"tetros", 'e', core.CommandRotateRight, true},
		{"tetros", 's', core.CommandDrop, true},
		{"life", 'x', core.CommandStop, true},
		{"chess", 'a', core.CommandNone, false},
	}
	for _, tc := range cases {
		got, ok := Lookup(tc.game, tc.key)
		if got != tc.want || ok != tc.ok {
			t.Fatalf("Lookup(%s, %q) = %v %v, want %v %v", tc.game, tc.key, got, ok, tc.want, tc.ok)
		}
	}
}
