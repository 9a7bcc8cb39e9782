// Package config provides configuration loading and validation for a game
// session.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"gridsnake/game/types"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Config holds all game configuration parameters.
type Config struct {
	Board          BoardConfig    `yaml:"board"`
	TickIntervalMs int            `yaml:"tick_interval_ms"`
	GameSpeed      int            `yaml:"game_speed"`
	Snake          SnakeConfig    `yaml:"snake"`
	Apples         AppleConfig    `yaml:"apples"`
	Seed           int64          `yaml:"seed"`
	Players        []PlayerConfig `yaml:"players"`

	// Derived values computed by Validate
	Derived DerivedConfig `yaml:"-"`
}

// BoardConfig holds the grid dimensions in cells.
type BoardConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

type SnakeConfig struct {
	StartingLength int `yaml:"starting_length"`
}

// AppleConfig controls how many apples are kept on the board and how much
// they grow a snake.
type AppleConfig struct {
	Count              int `yaml:"count"`
	LengthBonus        int `yaml:"length_bonus"`         // global bonus added on every eat, also the bonus of the first apples
	RespawnLengthBonus int `yaml:"respawn_length_bonus"` // bonus of apples spawned later
}

// PlayerConfig places one snake and binds its controls. Keys, when set,
// override the named Controls scheme.
type PlayerConfig struct {
	Start    CellConfig           `yaml:"start"`
	Facing   types.Direction      `yaml:"facing"`
	Controls string               `yaml:"controls"`
	Keys     types.ControlBinding `yaml:"keys,omitempty"`
}

type CellConfig struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// DerivedConfig holds values computed after loading.
type DerivedConfig struct {
	Grid         types.Grid
	TickInterval time.Duration
	Bindings     []types.ControlBinding // one per player
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Default returns the embedded defaults. It panics if they do not validate.
func Default() *Config {
	cfg, err := Load("")
	if err != nil {
		panic(fmt.Sprintf("config: embedded defaults: %v", err))
	}
	return cfg
}

// Validate checks every field and fills in Derived.
func (c *Config) Validate() error {
	if c.Board.Width <= 0 || c.Board.Height <= 0 {
		return invalid("board must be at least 1x1, got %dx%d", c.Board.Width, c.Board.Height)
	}
	if c.GameSpeed < 0 || c.GameSpeed > 99 {
		return invalid("game_speed %d outside 0..99", c.GameSpeed)
	}
	if c.TickIntervalMs < 0 {
		return invalid("tick_interval_ms %d is negative", c.TickIntervalMs)
	}
	interval := c.tickInterval()
	if interval <= 0 {
		return invalid("tick interval must be positive")
	}
	if c.Snake.StartingLength <= 0 {
		return invalid("starting_length must be positive, got %d", c.Snake.StartingLength)
	}
	if c.Apples.Count < 0 {
		return invalid("apple count %d is negative", c.Apples.Count)
	}
	if c.Apples.LengthBonus < 0 || c.Apples.RespawnLengthBonus < 0 {
		return invalid("apple length bonuses must not be negative")
	}
	if len(c.Players) == 0 {
		return invalid("at least one player is required")
	}

	grid := types.Grid{Width: c.Board.Width, Height: c.Board.Height}
	bindings := make([]types.ControlBinding, len(c.Players))
	taken := make(map[types.Cell]int)
	for i, p := range c.Players {
		if !p.Facing.Valid() {
			return invalid("player %d: facing must be up, down, left or right", i+1)
		}
		b, err := types.ResolveBinding(p.Controls, p.Keys)
		if err != nil {
			return invalid("player %d: %v", i+1, err)
		}
		bindings[i] = b

		for _, cell := range p.Body(c.Snake.StartingLength) {
			if !grid.Contains(cell) {
				return invalid("player %d: starting body cell %v is off the %dx%d board", i+1, cell, grid.Width, grid.Height)
			}
			if other, dup := taken[cell]; dup {
				return invalid("players %d and %d overlap at %v", other+1, i+1, cell)
			}
			taken[cell] = i
		}
	}

	c.Derived = DerivedConfig{
		Grid:         grid,
		TickInterval: interval,
		Bindings:     bindings,
	}
	return nil
}

// tickInterval derives the period from game_speed (0 slowest, 99 fastest)
// unless tick_interval_ms is set.
func (c *Config) tickInterval() time.Duration {
	if c.TickIntervalMs > 0 {
		return time.Duration(c.TickIntervalMs) * time.Millisecond
	}
	ms := float64(100-c.GameSpeed) / 100 * 250
	return time.Duration(ms * float64(time.Millisecond))
}

// Body returns the cells of the player's starting snake, head first.
func (p PlayerConfig) Body(length int) []types.Cell {
	cells := make([]types.Cell, 0, length)
	c := types.Cell{X: p.Start.X, Y: p.Start.Y}
	for i := 0; i < length; i++ {
		cells = append(cells, c)
		c = c.Add(p.Facing.Opposite())
	}
	return cells
}

// Head returns the starting head cell.
func (p PlayerConfig) Head() types.Cell {
	return types.Cell{X: p.Start.X, Y: p.Start.Y}
}

// WriteYAML saves the configuration to path.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalid, fmt.Sprintf(format, args...))
}
