package ui

import (
	"fmt"
	"strings"

	"gridgames/internal/core"
	"gridgames/internal/input"
)

// Lines renders a game's status, its key bindings and the last message as
// plain text lines for HUD panels and status bars.
func Lines(st core.Status, message string) []string {
	lines := []string{fmt.Sprintf("%s [%s]", strings.ToUpper(st.Game), st.Phase)}
	for _, f := range st.Fields {
		lines = append(lines, fmt.Sprintf("%s: %s", f.Label, f.Value))
	}
	lines = append(lines, "", "enter: start")
	for _, b := range input.Bindings(st.Game) {
		lines = append(lines, fmt.Sprintf("%c: %s", b.Key, b.Label))
	}
	if message != "" {
		lines = append(lines, "", message)
	}
	return lines
}
