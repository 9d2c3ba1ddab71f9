package snake

import "gridgames/internal/core"

// State is an immutable snapshot of the snake: its body, tail first and head
// last, and its direction of travel.
type State struct {
	body []core.CellLocation
	dir  Direction
}

// NewState returns a single-cell snake at origin heading down.
func NewState(origin core.CellLocation) State {
	return State{body: []core.CellLocation{origin}, dir: Down}
}

// Body returns a copy of the occupied cells, tail first.
func (s State) Body() []core.CellLocation {
	return append([]core.CellLocation(nil), s.body...)
}

// Len reports how many cells the snake occupies.
func (s State) Len() int { return len(s.body) }

// Head returns the cell at the front of the snake.
func (s State) Head() core.CellLocation { return s.body[len(s.body)-1] }

// Tail returns the cell at the back of the snake.
func (s State) Tail() core.CellLocation { return s.body[0] }

// Direction reports the direction of travel.
func (s State) Direction() Direction { return s.dir }

// HeadAt reports whether the head sits on loc.
func (s State) HeadAt(loc core.CellLocation) bool { return s.Head() == loc }

// InItself reports whether the head overlaps any other body cell.
func (s State) InItself() bool {
	head := s.Head()
	for _, cell := range s.body[:len(s.body)-1] {
		if cell == head {
			return true
		}
	}
	return false
}

// Turn returns the snake heading in d. A snake cannot reverse through itself,
// so turning to the opposite direction reports false and leaves s unchanged.
func (s State) Turn(d Direction) (State, bool) {
	if d == s.dir.Opposite() {
		return s, false
	}
	return State{body: s.body, dir: d}, true
}

// Move returns the snake advanced one cell. Without grow the tail cell is
// dropped so the length is unchanged.
func (s State) Move(grow bool) State {
	dRow, dCol := s.dir.Delta()
	next := make([]core.CellLocation, 0, len(s.body)+1)
	next = append(next, s.body...)
	next = append(next, s.Head().Offset(dRow, dCol))
	if !grow {
		next = next[1:]
	}
	return State{body: next, dir: s.dir}
}
