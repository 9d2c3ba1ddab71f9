package app

import (
	"flag"

	"gridgames/internal/core"
)

// Config represents the command-line parameters shared by every driver.
type Config struct {
	Game    string
	Rows    int
	Columns int
	Scale   int
	TPS     int
	Seed    int64
	Addr    string
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	d := core.DefaultGridConfig()
	return &Config{
		Game:    d.Game,
		Rows:    d.Rows,
		Columns: d.Columns,
		Scale:   24,
		TPS:     4,
		Seed:    d.Seed,
		Addr:    ":8080",
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Game, "game", c.Game, "game to play (life, snake, tetros)")
	fs.IntVar(&c.Rows, "rows", c.Rows, "grid rows")
	fs.IntVar(&c.Columns, "cols", c.Columns, "grid columns")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "game ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for random food and tiles")
	fs.StringVar(&c.Addr, "addr", c.Addr, "listen address for the websocket server")
}

// GridConfig extracts the board description.
func (c *Config) GridConfig() core.GridConfig {
	return core.GridConfig{Game: c.Game, Rows: c.Rows, Columns: c.Columns, Seed: c.Seed}
}
