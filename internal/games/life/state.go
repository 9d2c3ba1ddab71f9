package life

import "gridgames/internal/core"

// OnMarker is the only rendered value a live cell may carry.
const OnMarker = "1"

// State mirrors the on/off flag of every grid cell in row-major order.
type State struct {
	rows, cols int
	on         []bool
}

// NewState returns an all-off state with the provided dimensions.
func NewState(rows, cols int) State {
	if rows < 0 {
		rows = 0
	}
	if cols < 0 {
		cols = 0
	}
	return State{rows: rows, cols: cols, on: make([]bool, rows*cols)}
}

// ReadState snapshots g. A cell is on iff its rendered value is exactly "1".
func ReadState(g core.Grid) State {
	s := NewState(g.Rows(), g.Columns())
	for r := 0; r < s.rows; r++ {
		for c := 0; c < s.cols; c++ {
			s.on[r*s.cols+c] = g.ValueAt(core.Loc(r, c)) == OnMarker
		}
	}
	return s
}

// Rows reports the number of rows.
func (s State) Rows() int { return s.rows }

// Columns reports the number of columns.
func (s State) Columns() int { return s.cols }

// On reports whether loc is on. Locations outside the state are off.
func (s State) On(loc core.CellLocation) bool {
	if loc.Row < 0 || loc.Row >= s.rows || loc.Column < 0 || loc.Column >= s.cols {
		return false
	}
	return s.on[loc.Row*s.cols+loc.Column]
}

// Set returns a copy of s with loc switched on or off.
func (s State) Set(loc core.CellLocation, on bool) State {
	next := State{rows: s.rows, cols: s.cols, on: append([]bool(nil), s.on...)}
	if loc.Row >= 0 && loc.Row < s.rows && loc.Column >= 0 && loc.Column < s.cols {
		next.on[loc.Row*s.cols+loc.Column] = on
	}
	return next
}

// Population counts the cells that are on.
func (s State) Population() int {
	n := 0
	for _, on := range s.on {
		if on {
			n++
		}
	}
	return n
}

// Neighbors counts on cells in the Moore neighbourhood of loc. Cells past the
// edge contribute nothing.
func (s State) Neighbors(loc core.CellLocation) int {
	count := 0
	for dy := -1; dy <= 1; dy++ {
		ny := loc.Row + dy
		if ny < 0 || ny >= s.rows {
			continue
		}
		for dx := -1; dx <= 1; dx++ {
			nx := loc.Column + dx
			if nx < 0 || nx >= s.cols {
				continue
			}
			if dx == 0 && dy == 0 {
				continue
			}
			if s.on[ny*s.cols+nx] {
				count++
			}
		}
	}
	return count
}

// Step applies Conway's rule to every cell. The receiver is not modified.
func (s State) Step() State {
	next := NewState(s.rows, s.cols)
	for y := 0; y < s.rows; y++ {
		for x := 0; x < s.cols; x++ {
			idx := y*s.cols + x
			next.on[idx] = survives(s.on[idx], s.Neighbors(core.Loc(y, x)))
		}
	}
	return next
}

func survives(on bool, neighbors int) bool {
	if on {
		return neighbors == 2 || neighbors == 3
	}
	return neighbors == 3
}

// Write clears g and marks every on cell with "1".
func (s State) Write(g core.Grid) {
	g.Clear()
	for y := 0; y < s.rows; y++ {
		for x := 0; x < s.cols; x++ {
			if s.on[y*s.cols+x] {
				g.Update(core.Loc(y, x), OnMarker)
			}
		}
	}
}
