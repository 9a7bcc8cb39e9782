package ai

import (
	"log/slog"
	"testing"

	"gridsnake/config"
	"gridsnake/game"
	"gridsnake/game/types"
)

func view(w, h int, facing types.Direction, apples []types.Cell, bodies ...[]types.Cell) game.View {
	return game.View{
		Grid:   types.Grid{Width: w, Height: h},
		Player: 0,
		Head:   bodies[0][0],
		Facing: facing,
		Bodies: bodies,
		Apples: apples,
	}
}

func TestSteer(t *testing.T) {
	tests := []struct {
		name string
		v    game.View
		want types.Direction
	}{
		{
			name: "keeps straight towards apple",
			v:    view(10, 10, types.Right, []types.Cell{{X: 8, Y: 5}}, []types.Cell{{X: 5, Y: 5}, {X: 4, Y: 5}}),
			want: types.Right,
		},
		{
			name: "turns towards apple",
			v:    view(10, 10, types.Right, []types.Cell{{X: 5, Y: 1}}, []types.Cell{{X: 5, Y: 5}, {X: 4, Y: 5}}),
			want: types.Up,
		},
		{
			name: "avoids wall",
			v:    view(10, 10, types.Right, nil, []types.Cell{{X: 9, Y: 5}, {X: 8, Y: 5}}),
			want: types.Up,
		},
		{
			name: "avoids other snake",
			v: view(10, 10, types.Right, []types.Cell{{X: 9, Y: 7}},
				[]types.Cell{{X: 5, Y: 5}, {X: 4, Y: 5}},
				[]types.Cell{{X: 6, Y: 4}, {X: 6, Y: 5}, {X: 6, Y: 6}}),
			want: types.Down,
		},
		{
			name: "trapped keeps facing",
			v: view(3, 1, types.Right, nil,
				[]types.Cell{{X: 1, Y: 0}, {X: 0, Y: 0}},
				[]types.Cell{{X: 2, Y: 0}}),
			want: types.None,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NewAutopilot().Steer(tt.v); got != tt.want {
				t.Errorf("Steer() = %v, want %v (moves %v)", got, tt.want, NewAutopilot().Moves(tt.v))
			}
		})
	}
}

// The apple sits in a dead end one cell wide; the snake is too long to
// get back out, so the autopilot passes it by.
func TestAvoidsSmallPocket(t *testing.T) {
	// row 0 is a corridor closed by the other snake at (3,0)
	other := []types.Cell{{X: 3, Y: 0}, {X: 3, Y: 1}, {X: 2, Y: 1}, {X: 1, Y: 1}}
	me := []types.Cell{{X: 0, Y: 2}, {X: 0, Y: 3}, {X: 0, Y: 4}, {X: 0, Y: 5}, {X: 0, Y: 6}}
	v := view(8, 8, types.Up, []types.Cell{{X: 0, Y: 0}}, me, other)

	if got := NewAutopilot().Steer(v); got != types.Right {
		t.Errorf("Steer() = %v, want right", got)
	}
}

func TestNearest(t *testing.T) {
	from := types.Cell{X: 5, Y: 5}
	got, ok := nearest(from, []types.Cell{{X: 0, Y: 0}, {X: 6, Y: 7}, {X: 5, Y: 8}})
	if !ok || got != (types.Cell{X: 6, Y: 7}) {
		t.Errorf("nearest = %v, %v", got, ok)
	}
	if _, ok := nearest(from, nil); ok {
		t.Error("nearest of nothing found a cell")
	}
}

func TestAutopilotPlaysSession(t *testing.T) {
	cfg := config.Default()
	cfg.Board = config.BoardConfig{Width: 12, Height: 12}
	cfg.Snake.StartingLength = 3
	cfg.Seed = 42
	cfg.Players = []config.PlayerConfig{{Start: config.CellConfig{X: 5, Y: 5}, Facing: types.Right, Controls: "UDLR"}}

	s, err := game.NewSession(cfg, game.WithController(0, NewAutopilot()), game.WithLogger(slog.New(slog.DiscardHandler)))
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Start(); err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 200 && s.Tick(); i++ {
	}
	if got := s.Summary().Score; got <= 3 {
		t.Errorf("autopilot never ate: score %d after %d ticks", got, s.Ticks())
	}
}
