package core

import "strconv"

// Blank is the rendered value of an empty cell.
const Blank = ""

// CellLocation addresses a single cell by row and column.
type CellLocation struct {
	Row    int
	Column int
}

// Loc is shorthand for constructing a CellLocation.
func Loc(row, column int) CellLocation { return CellLocation{Row: row, Column: column} }

// Offset returns the location translated by the given row and column deltas.
func (c CellLocation) Offset(dRow, dColumn int) CellLocation {
	return CellLocation{Row: c.Row + dRow, Column: c.Column + dColumn}
}

func (c CellLocation) String() string {
	return "(" + strconv.Itoa(c.Row) + "," + strconv.Itoa(c.Column) + ")"
}

// Marker renders a numeric marker the way engines write it into cells.
func Marker(n int) string { return strconv.Itoa(n) }

// Grid is the cell storage the games read from and write to.
type Grid interface {
	Rows() int
	Columns() int
	ValueAt(loc CellLocation) string
	Update(loc CellLocation, value string)
	Clear()
	Contains(loc CellLocation) bool
}

// StringGrid stores rendered cell values in row-major order.
type StringGrid struct {
	rows, cols int
	data       []string
}

// NewStringGrid allocates a blank grid with the given dimensions.
func NewStringGrid(rows, cols int) *StringGrid {
	if rows <= 0 {
		rows = 1
	}
	if cols <= 0 {
		cols = 1
	}
	return &StringGrid{rows: rows, cols: cols, data: make([]string, rows*cols)}
}

// Rows reports the number of rows.
func (g *StringGrid) Rows() int { return g.rows }

// Columns reports the number of columns.
func (g *StringGrid) Columns() int { return g.cols }

// Index returns the linear slice index for loc.
func (g *StringGrid) Index(loc CellLocation) int { return loc.Row*g.cols + loc.Column }

// Contains reports whether loc lies inside the grid.
func (g *StringGrid) Contains(loc CellLocation) bool {
	return loc.Row >= 0 && loc.Row < g.rows && loc.Column >= 0 && loc.Column < g.cols
}

// ValueAt returns the value at loc, or Blank outside the grid.
func (g *StringGrid) ValueAt(loc CellLocation) string {
	if !g.Contains(loc) {
		return Blank
	}
	return g.data[g.Index(loc)]
}

// Update writes value at loc. Writes outside the grid are dropped.
func (g *StringGrid) Update(loc CellLocation, value string) {
	if !g.Contains(loc) {
		return
	}
	g.data[g.Index(loc)] = value
}

// Clear blanks every cell.
func (g *StringGrid) Clear() {
	for i := range g.data {
		g.data[i] = Blank
	}
}

// Cells exposes the backing slice in row-major order.
func (g *StringGrid) Cells() []string { return g.data }

// Snapshot returns a copy of every value in row-major order.
func Snapshot(g Grid) []string {
	rows, cols := g.Rows(), g.Columns()
	out := make([]string, 0, rows*cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			out = append(out, g.ValueAt(Loc(r, c)))
		}
	}
	return out
}
