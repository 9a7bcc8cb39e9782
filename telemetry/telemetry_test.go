package telemetry

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gocarina/gocsv"
	"github.com/google/uuid"

	"gridsnake/config"
	"gridsnake/game"
	"gridsnake/game/types"
)

func TestComputeBatchStats(t *testing.T) {
	records := []GameRecord{
		{Score: 3, Ticks: 10, Reason: "wall"},
		{Score: 9, Ticks: 40, Reason: "self"},
		{Score: 6, Ticks: 25, Reason: "wall"},
	}
	bs := ComputeBatchStats(records)

	tests := []struct {
		name string
		got  float64
		want float64
	}{
		{"mean", bs.MeanScore, 6},
		{"std", bs.StdDevScore, 3},
		{"median", bs.MedianScore, 6},
		{"min", bs.MinScore, 3},
		{"max", bs.MaxScore, 9},
		{"ticks", bs.MeanTicks, 25},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if math.Abs(tt.got-tt.want) > 0.001 {
				t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.want)
			}
		})
	}
	if bs.Reasons["wall"] != 2 || bs.Reasons["self"] != 1 {
		t.Errorf("reasons = %v", bs.Reasons)
	}
}

func TestComputeBatchStatsSmall(t *testing.T) {
	if bs := ComputeBatchStats(nil); bs.Games != 0 || bs.MeanScore != 0 {
		t.Errorf("empty batch = %+v", bs)
	}
	bs := ComputeBatchStats([]GameRecord{{Score: 4}})
	if bs.StdDevScore != 0 || bs.MedianScore != 4 {
		t.Errorf("single game = %+v", bs)
	}
}

func TestNewGameRecord(t *testing.T) {
	id := uuid.New()
	r := NewGameRecord(2, game.Summary{
		SessionID:   id,
		Score:       7,
		Scores:      []int{7, 4},
		ApplesEaten: []int{2, 1},
		Ticks:       30,
		Reason:      types.SnakeCollision,
		Culprit:     1,
		Duration:    1500 * time.Millisecond,
	})
	want := GameRecord{Game: 2, SessionID: id.String(), Score: 7, Ticks: 30, ApplesEaten: 2, Reason: "snake", Culprit: 1, DurationSec: 1.5}
	if r != want {
		t.Errorf("record = %+v, want %+v", r, want)
	}
}

func TestOutputManager(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "run")
	om, err := NewOutputManager(dir)
	if err != nil {
		t.Fatal(err)
	}
	if err := om.WriteConfig(config.Default()); err != nil {
		t.Fatal(err)
	}
	for i := 1; i <= 2; i++ {
		if err := om.WriteGame(GameRecord{Game: i, Score: i * 3, Reason: "wall"}); err != nil {
			t.Fatal(err)
		}
	}
	if err := om.Close(); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "games.csv"))
	if err != nil {
		t.Fatal(err)
	}
	if n := strings.Count(string(data), "game,session"); n != 1 {
		t.Errorf("header written %d times:\n%s", n, data)
	}
	var back []GameRecord
	if err := gocsv.UnmarshalBytes(data, &back); err != nil {
		t.Fatal(err)
	}
	if len(back) != 2 || back[1].Score != 6 {
		t.Errorf("read back %+v", back)
	}
	if _, err := os.Stat(filepath.Join(dir, "config.yaml")); err != nil {
		t.Errorf("config not written: %v", err)
	}
}

func TestOutputManagerDisabled(t *testing.T) {
	om, err := NewOutputManager("")
	if err != nil || om != nil {
		t.Fatalf("NewOutputManager(\"\") = %v, %v", om, err)
	}
	if err := om.WriteGame(GameRecord{}); err != nil {
		t.Error(err)
	}
	if om.Dir() != "" || om.Close() != nil {
		t.Error("nil manager not inert")
	}
}
