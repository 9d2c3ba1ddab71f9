//go:build !ebiten

package ui

import "gridgames/internal/core"

// HUD is a no-op placeholder for headless builds.
type HUD struct{}

// NewHUD returns nil in the headless build.
func NewHUD(core.Game, int) *HUD { return nil }

// Notify is a no-op in the headless build.
func (h *HUD) Notify(string) {}

// Draw is a no-op in the headless build.
func (h *HUD) Draw(any, int, int) {}
