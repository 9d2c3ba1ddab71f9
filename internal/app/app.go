//go:build ebiten

package app

import (
	"context"
	"image/color"

	"gridgames/internal/core"
	"gridgames/internal/render"
	"gridgames/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const hudWidth = 220

// Game adapts a Session to the ebiten.Game interface. Frames run at the
// ebiten TPS while game ticks are gated by a FixedStep.
type Game struct {
	session *Session
	painter *render.GridPainter
	hud     *ui.HUD
	step    *core.FixedStep

	scale int
	ctx   context.Context
}

// New constructs a Game for the provided session.
func New(session *Session, scale, tps int) *Game {
	grid := session.Grid()
	hud := ui.NewHUD(session.Game(), hudWidth)
	session.SetNotifier(hud)
	return &Game{
		session: session,
		painter: render.NewGridPainter(grid.Rows(), grid.Columns()),
		hud:     hud,
		step:    core.NewFixedStep(tps),
		scale:   scale,
		ctx:     context.Background(),
	}
}

// Update handles per-frame input and advances the game when a tick is due.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		g.session.Select(core.Loc(my/g.scale, mx/g.scale))
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.session.Start()
	}
	for _, r := range ebiten.AppendInputChars(nil) {
		g.session.Key(r)
	}

	if g.step.ShouldStep() {
		g.session.Tick(g.ctx)
	}
	return nil
}

// Draw renders the grid, the selection outline and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	f := g.session.Frame()
	g.painter.Blit(screen, f.Cells, g.scale)
	if f.Selected != nil {
		x := float32(f.Selected.Column * g.scale)
		y := float32(f.Selected.Row * g.scale)
		s := float32(g.scale)
		vector.StrokeRect(screen, x, y, s, s, 2, color.RGBA{R: 255, G: 255, B: 0, A: 255}, false)
	}
	g.hud.Draw(screen, f.Columns*g.scale, f.Rows*g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	grid := g.session.Grid()
	return grid.Columns()*g.scale + hudWidth, grid.Rows() * g.scale
}

// WindowSize reports the window size matching Layout.
func (g *Game) WindowSize() (int, int) {
	return g.Layout(0, 0)
}
