package snake

import "gridgames/internal/core"

const (
	// BodyMarker is written into every cell the snake occupies.
	BodyMarker = 1
	// FoodMarker is written into food cells and read back at start.
	FoodMarker = 2
)

// board reads and renders snake state on the shared grid.
type board struct {
	grid core.Grid
}

func (b board) inBounds(s State) bool {
	for _, cell := range s.body {
		if !b.grid.Contains(cell) {
			return false
		}
	}
	return true
}

func (b board) size() int { return b.grid.Rows() * b.grid.Columns() }

// readFood collects every cell currently rendered as food.
func (b board) readFood() []core.CellLocation {
	var food []core.CellLocation
	marker := core.Marker(FoodMarker)
	for r := 0; r < b.grid.Rows(); r++ {
		for c := 0; c < b.grid.Columns(); c++ {
			loc := core.Loc(r, c)
			if b.grid.ValueAt(loc) == marker {
				food = append(food, loc)
			}
		}
	}
	return food
}

func (b board) renderSnake(s State) {
	marker := core.Marker(BodyMarker)
	for _, cell := range s.body {
		b.grid.Update(cell, marker)
	}
}

func (b board) unrenderSnake(s State) {
	for _, cell := range s.body {
		b.grid.Update(cell, core.Blank)
	}
}

func (b board) renderFood(food []core.CellLocation) {
	marker := core.Marker(FoodMarker)
	for _, cell := range food {
		b.grid.Update(cell, marker)
	}
}
