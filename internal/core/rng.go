package core

import "math/rand/v2"

// TileShapes is the number of distinct falling tile shapes a TilePicker chooses from.
const TileShapes = 7

// CellPicker supplies random cells, e.g. for food placement.
type CellPicker interface {
	PickCell() CellLocation
}

// TilePicker supplies random tile shape indices in [0, TileShapes).
type TilePicker interface {
	PickTile() int
}

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// IntN returns a random int in [0, n). It returns 0 when n <= 0.
func (r *RNG) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	return r.r.IntN(n)
}

// PickTile returns a random shape index.
func (r *RNG) PickTile() int { return r.r.IntN(TileShapes) }

// Cells returns a CellPicker drawing uniformly from every cell of g.
func (r *RNG) Cells(g Grid) CellPicker { return gridPicker{rng: r, grid: g} }

// Source exposes the underlying rand.Rand for advanced use.
func (r *RNG) Source() *rand.Rand { return r.r }

type gridPicker struct {
	rng  *RNG
	grid Grid
}

func (p gridPicker) PickCell() CellLocation {
	return Loc(p.rng.IntN(p.grid.Rows()), p.rng.IntN(p.grid.Columns()))
}
