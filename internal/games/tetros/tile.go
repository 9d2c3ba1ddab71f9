package tetros

import (
	"fmt"
	"strings"

	"gridgames/internal/core"
)

type shape struct {
	cells [4]core.CellLocation
	kind  int
}

// shapes are indexed by the generation value drawn from a TilePicker. The
// kind doubles as the marker rendered into the grid.
var shapes = [core.TileShapes]shape{
	{cells: [4]core.CellLocation{core.Loc(0, 0), core.Loc(0, 1), core.Loc(1, 1), core.Loc(1, 2)}, kind: 4},
	{cells: [4]core.CellLocation{core.Loc(0, 0), core.Loc(1, 0), core.Loc(2, 0), core.Loc(2, 1)}, kind: 7},
	{cells: [4]core.CellLocation{core.Loc(0, 1), core.Loc(1, 1), core.Loc(2, 1), core.Loc(2, 0)}, kind: 5},
	{cells: [4]core.CellLocation{core.Loc(0, 0), core.Loc(0, 1), core.Loc(0, 2), core.Loc(1, 1)}, kind: 8},
	{cells: [4]core.CellLocation{core.Loc(0, 0), core.Loc(0, 1), core.Loc(1, 0), core.Loc(1, 1)}, kind: 3},
	{cells: [4]core.CellLocation{core.Loc(0, 0), core.Loc(1, 0), core.Loc(2, 0), core.Loc(3, 0)}, kind: 6},
	{cells: [4]core.CellLocation{core.Loc(0, 1), core.Loc(0, 2), core.Loc(1, 1), core.Loc(0, 1)}, kind: 2},
}

// Tile is a falling piece. Every transform returns a new Tile and never
// checks bounds or overlap; that is left to the caller.
type Tile struct {
	cells [4]core.CellLocation
	kind  int
}

// NewTile spawns the shape selected by value at the top-left of the grid.
// Values outside [0, core.TileShapes) panic.
func NewTile(value int) Tile {
	if value < 0 || value >= len(shapes) {
		panic(fmt.Sprintf("tetros: invalid tile value %d", value))
	}
	s := shapes[value]
	return Tile{cells: s.cells, kind: s.kind}
}

// Cells returns the occupied locations.
func (t Tile) Cells() []core.CellLocation {
	out := make([]core.CellLocation, len(t.cells))
	copy(out, t.cells[:])
	return out
}

// Type returns the marker the tile is rendered as.
func (t Tile) Type() int { return t.kind }

// Contains reports whether loc is one of the tile's cells.
func (t Tile) Contains(loc core.CellLocation) bool {
	for _, cell := range t.cells {
		if cell == loc {
			return true
		}
	}
	return false
}

// Move shifts the tile sideways; negative moves left.
func (t Tile) Move(distance int) Tile {
	return t.translate(0, distance)
}

// Drop moves the tile down one row.
func (t Tile) Drop() Tile {
	return t.translate(1, 0)
}

func (t Tile) translate(dRow, dCol int) Tile {
	next := Tile{kind: t.kind}
	for i, cell := range t.cells {
		next.cells[i] = cell.Offset(dRow, dCol)
	}
	return next
}

// Rotate turns the tile about its truncated integer centroid. Positive
// directions turn clockwise, negative anticlockwise, and the magnitude
// scales the result.
func (t Tile) Rotate(direction int) Tile {
	x, y := 0, 0
	for _, cell := range t.cells {
		x += cell.Column
		y += cell.Row
	}
	x /= len(t.cells)
	y /= len(t.cells)

	next := Tile{kind: t.kind}
	for i, cell := range t.cells {
		next.cells[i] = core.Loc(
			y+(x-cell.Column)*direction,
			x+(y-cell.Row)*direction,
		)
	}
	return next
}

func (t Tile) String() string {
	parts := make([]string, len(t.cells))
	for i, cell := range t.cells {
		parts[i] = cell.String()
	}
	return strings.Join(parts, ", ")
}
