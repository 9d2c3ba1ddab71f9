package tetros

import "gridgames/internal/core"

// pile reads and renders tetros state on the shared grid. The settled pile is
// not stored anywhere else: any non-blank cell that is not the falling tile
// belongs to it.
type pile struct {
	grid core.Grid
}

func (p pile) inBounds(t Tile) bool {
	for _, cell := range t.cells {
		if !p.grid.Contains(cell) {
			return false
		}
	}
	return true
}

// touching reports whether any cell of t is already occupied.
func (p pile) touching(t Tile) bool {
	for _, cell := range t.cells {
		if p.grid.ValueAt(cell) != core.Blank {
			return true
		}
	}
	return false
}

func (p pile) render(t Tile) {
	marker := core.Marker(t.kind)
	for _, cell := range t.cells {
		p.grid.Update(cell, marker)
	}
}

func (p pile) unrender(t Tile) {
	for _, cell := range t.cells {
		p.grid.Update(cell, core.Blank)
	}
}

func (p pile) rowFull(row int) bool {
	for col := 0; col < p.grid.Columns(); col++ {
		if p.grid.ValueAt(core.Loc(row, col)) == core.Blank {
			return false
		}
	}
	return true
}

// clearFullRows scans bottom to top and collapses every full row by copying
// the rows above it down one cell. Cells whose source belongs to falling are
// left alone. A cleared row is examined again since new content moved into
// it; the scan moves on once a collapse no longer changes anything. It
// returns how many collapses happened.
func (p pile) clearFullRows(falling Tile) int {
	cleared := 0
	for row := p.grid.Rows() - 1; row >= 0; row-- {
		for p.rowFull(row) {
			if !p.collapse(row, falling) {
				break
			}
			cleared++
		}
	}
	return cleared
}

func (p pile) collapse(row int, falling Tile) bool {
	changed := false
	for dst := row; dst > 0; dst-- {
		for col := 0; col < p.grid.Columns(); col++ {
			src := core.Loc(dst-1, col)
			if falling.Contains(src) {
				continue
			}
			to := core.Loc(dst, col)
			value := p.grid.ValueAt(src)
			if p.grid.ValueAt(to) != value {
				p.grid.Update(to, value)
				changed = true
			}
		}
	}
	return changed
}
