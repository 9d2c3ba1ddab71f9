// Package term drives a game session on a terminal screen.
package term

import (
	"context"
	"time"

	"gridgames/internal/app"
	"gridgames/internal/core"
	"gridgames/internal/render"
	"gridgames/internal/ui"

	"github.com/gdamore/tcell/v2"
)

const cellWidth = 2

// Driver ticks a session at a fixed rate and maps terminal events onto it.
type Driver struct {
	screen  tcell.Screen
	session *app.Session
	tick    time.Duration
	cursor  core.CellLocation
}

// New returns a driver for an initialised screen.
func New(screen tcell.Screen, session *app.Session, tps int) *Driver {
	if tps <= 0 {
		tps = 4
	}
	return &Driver{screen: screen, session: session, tick: time.Second / time.Duration(tps)}
}

// Run blocks until the user quits or ctx is cancelled.
func (d *Driver) Run(ctx context.Context) error {
	events := make(chan tcell.Event)
	quit := make(chan struct{})
	go d.screen.ChannelEvents(events, quit)
	defer close(quit)

	ticker := time.NewTicker(d.tick)
	defer ticker.Stop()

	d.draw()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if d.handle(ev) {
				return nil
			}
			d.draw()
		case <-ticker.C:
			if d.session.Tick(ctx).Repaint() {
				d.draw()
			}
		}
	}
}

// handle applies one event and reports whether the user asked to quit.
func (d *Driver) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return true
		case tcell.KeyEnter:
			d.session.Start()
		case tcell.KeyUp:
			d.moveCursor(-1, 0)
		case tcell.KeyDown:
			d.moveCursor(1, 0)
		case tcell.KeyLeft:
			d.moveCursor(0, -1)
		case tcell.KeyRight:
			d.moveCursor(0, 1)
		case tcell.KeyRune:
			d.session.Key(ev.Rune())
		}
	case *tcell.EventMouse:
		if ev.Buttons()&tcell.Button1 != 0 {
			x, y := ev.Position()
			d.cursor = core.Loc(y, x/cellWidth)
			d.session.Select(d.cursor)
		}
	case *tcell.EventResize:
		d.screen.Sync()
	}
	return false
}

func (d *Driver) moveCursor(dRow, dCol int) {
	next := d.cursor.Offset(dRow, dCol)
	if !d.session.Grid().Contains(next) {
		return
	}
	d.cursor = next
	d.session.Select(d.cursor)
}

func (d *Driver) draw() {
	f := d.session.Frame()
	d.screen.Clear()

	for r := 0; r < f.Rows; r++ {
		for c := 0; c < f.Columns; c++ {
			value := f.Cells[r*f.Columns+c]
			style, glyph := cellStyle(value)
			if f.Selected != nil && *f.Selected == core.Loc(r, c) {
				style = style.Reverse(true)
			}
			x := c * cellWidth
			d.screen.SetContent(x, r, glyph, nil, style)
			d.screen.SetContent(x+1, r, glyph, nil, style)
		}
	}

	left := f.Columns*cellWidth + 2
	for i, line := range ui.Lines(f.Status, f.Message) {
		drawText(d.screen, left, i, line)
	}
	d.screen.Show()
}

func cellStyle(value string) (tcell.Style, rune) {
	if value == core.Blank {
		return tcell.StyleDefault.Foreground(tcell.ColorGray), '.'
	}
	col := render.ColorFor(value)
	return tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(col.R), int32(col.G), int32(col.B))), '█'
}

func drawText(s tcell.Screen, x, y int, text string) {
	for i, r := range []rune(text) {
		s.SetContent(x+i, y, r, nil, tcell.StyleDefault)
	}
}
