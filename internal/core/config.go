package core

import "strconv"

// GridConfig describes the board a game session runs on.
type GridConfig struct {
	Game    string
	Rows    int
	Columns int
	Seed    int64
}

// DefaultGridConfig returns the standard configuration.
func DefaultGridConfig() GridConfig {
	return GridConfig{Game: "life", Rows: 20, Columns: 20, Seed: 42}
}

// FromMap populates a GridConfig from a string map (flag- or query-style
// key/value pairs). Invalid entries keep their defaults.
func FromMap(cfg map[string]string) GridConfig {
	c := DefaultGridConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["game"]; ok && v != "" {
		c.Game = v
	}
	if v, ok := cfg["rows"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Rows = parsed
		}
	}
	if v, ok := cfg["cols"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Columns = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	return c
}

// Build allocates the grid and game described by c.
func (c GridConfig) Build() (*StringGrid, Game, error) {
	grid := NewStringGrid(c.Rows, c.Columns)
	game, err := NewGame(c.Game, grid, NewRNG(c.Seed))
	if err != nil {
		return nil, nil, err
	}
	return grid, game, nil
}

// Values renders c back into the string map understood by FromMap.
func (c GridConfig) Values() map[string]string {
	return map[string]string{
		"game": c.Game,
		"rows": strconv.Itoa(c.Rows),
		"cols": strconv.Itoa(c.Columns),
		"seed": strconv.FormatInt(c.Seed, 10),
	}
}
