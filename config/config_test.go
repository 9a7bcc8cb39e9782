package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"gridsnake/game/types"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaults(t *testing.T) {
	cfg := Default()
	if cfg.Derived.Grid != (types.Grid{Width: 40, Height: 30}) {
		t.Errorf("grid = %+v", cfg.Derived.Grid)
	}
	// speed 60 -> 40% of 250ms
	if cfg.Derived.TickInterval != 100*time.Millisecond {
		t.Errorf("tick interval = %v, want 100ms", cfg.Derived.TickInterval)
	}
	if cfg.Apples.RespawnLengthBonus != 2 {
		t.Errorf("respawn bonus = %d, want 2", cfg.Apples.RespawnLengthBonus)
	}
	if len(cfg.Derived.Bindings) != 1 || cfg.Derived.Bindings[0] != types.ControlSchemes["UDLR"] {
		t.Errorf("bindings = %+v", cfg.Derived.Bindings)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
board: {width: 10, height: 10}
tick_interval_ms: 50
snake: {starting_length: 3}
players:
  - {start: {x: 5, y: 5}, facing: right, controls: WASD}
  - start: {x: 5, y: 8}
    facing: left
    keys: {up: "8", down: "2", left: "4", right: "6"}
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Derived.TickInterval != 50*time.Millisecond {
		t.Errorf("tick interval = %v", cfg.Derived.TickInterval)
	}
	// untouched fields keep their defaults
	if cfg.Apples.Count != 3 {
		t.Errorf("apple count = %d, want default 3", cfg.Apples.Count)
	}
	if len(cfg.Players) != 2 {
		t.Fatalf("players = %d", len(cfg.Players))
	}
	if cfg.Players[1].Facing != types.Left {
		t.Errorf("facing = %v", cfg.Players[1].Facing)
	}
	if d, ok := cfg.Derived.Bindings[1].Lookup("4"); !ok || d != types.Left {
		t.Errorf("custom keys not bound: %v %v", d, ok)
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"zero width", func(c *Config) { c.Board.Width = 0 }},
		{"negative height", func(c *Config) { c.Board.Height = -3 }},
		{"speed too high", func(c *Config) { c.GameSpeed = 100 }},
		{"negative interval", func(c *Config) { c.TickIntervalMs = -1 }},
		{"zero length", func(c *Config) { c.Snake.StartingLength = 0 }},
		{"negative apples", func(c *Config) { c.Apples.Count = -1 }},
		{"negative bonus", func(c *Config) { c.Apples.LengthBonus = -1 }},
		{"no players", func(c *Config) { c.Players = nil }},
		{"bad facing", func(c *Config) { c.Players[0].Facing = types.None }},
		{"unknown scheme", func(c *Config) { c.Players[0].Controls = "ESDF" }},
		{"body off board", func(c *Config) { c.Players[0].Start = CellConfig{X: 1, Y: 1} }},
		{"overlapping players", func(c *Config) {
			c.Players = append(c.Players, PlayerConfig{Start: c.Players[0].Start, Facing: types.Up, Controls: "WASD"})
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if !errors.Is(err, ErrInvalid) {
				t.Errorf("Validate() = %v, want ErrInvalid", err)
			}
		})
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing file accepted")
	}
	if _, err := Load(writeConfig(t, "board: [1, 2")); err == nil {
		t.Error("malformed yaml accepted")
	}
	if _, err := Load(writeConfig(t, "players: [{start: {x: 5, y: 5}, facing: sideways, controls: UDLR}]")); err == nil {
		t.Error("unknown facing accepted")
	}
}

func TestPlayerBody(t *testing.T) {
	p := PlayerConfig{Start: CellConfig{X: 5, Y: 5}, Facing: types.Up}
	body := p.Body(3)
	want := []types.Cell{{X: 5, Y: 5}, {X: 5, Y: 6}, {X: 5, Y: 7}}
	for i := range want {
		if body[i] != want[i] {
			t.Fatalf("body = %v, want %v", body, want)
		}
	}
}

func TestWriteYAMLRoundTrip(t *testing.T) {
	cfg := Default()
	path := filepath.Join(t.TempDir(), "out.yaml")
	if err := cfg.WriteYAML(path); err != nil {
		t.Fatal(err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if loaded.Players[0].Facing != cfg.Players[0].Facing || loaded.Board != cfg.Board {
		t.Errorf("round trip lost data: %+v", loaded)
	}
}
