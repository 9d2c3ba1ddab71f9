//go:build ebiten

package ui

import (
	"image/color"

	"gridgames/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const (
	panelPadding = 10
	lineHeight   = 16
)

// HUD renders the status panel to the right of the grid view.
type HUD struct {
	game       core.Game
	width      int
	panel      *ebiten.Image
	lastHeight int
	message    string
}

// NewHUD constructs a HUD for the provided game and panel width.
func NewHUD(game core.Game, width int) *HUD {
	if width < 0 {
		width = 0
	}
	return &HUD{game: game, width: width}
}

// Notify records the message shown at the bottom of the panel.
func (h *HUD) Notify(msg string) {
	if h == nil {
		return
	}
	h.message = msg
}

// Draw paints the HUD panel at offsetX with the given height.
func (h *HUD) Draw(screen *ebiten.Image, offsetX, height int) {
	if h == nil || h.width <= 0 || height <= 0 {
		return
	}
	if h.panel == nil || h.panel.Bounds().Dx() != h.width || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})

	face := basicfont.Face7x13
	y := panelPadding + lineHeight
	for i, line := range Lines(h.game.Status(), h.message) {
		fg := color.RGBA{R: 220, G: 220, B: 230, A: 255}
		if i == 0 {
			fg = color.RGBA{R: 200, G: 200, B: 210, A: 255}
		}
		text.Draw(h.panel, line, face, panelPadding, y, fg)
		y += lineHeight
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}
