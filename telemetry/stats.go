// Package telemetry records finished games and aggregates them.
package telemetry

import (
	"log/slog"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"gridsnake/game"
)

// GameRecord is one finished game.
type GameRecord struct {
	Game        int     `csv:"game"`
	SessionID   string  `csv:"session"`
	Score       int     `csv:"score"`
	Ticks       int     `csv:"ticks"`
	ApplesEaten int     `csv:"apples_eaten"`
	Reason      string  `csv:"reason"`
	Culprit     int     `csv:"culprit"`
	DurationSec float64 `csv:"duration_sec"`
}

// NewGameRecord flattens a session summary. n is the game's position in the
// batch, starting at 1.
func NewGameRecord(n int, s game.Summary) GameRecord {
	r := GameRecord{
		Game:        n,
		SessionID:   s.SessionID.String(),
		Score:       s.Score,
		Ticks:       s.Ticks,
		Reason:      s.Reason.String(),
		Culprit:     s.Culprit,
		DurationSec: s.Duration.Seconds(),
	}
	if len(s.ApplesEaten) > 0 {
		r.ApplesEaten = s.ApplesEaten[0]
	}
	return r
}

// BatchStats summarizes the scores of a batch of games.
type BatchStats struct {
	Games       int
	MeanScore   float64
	StdDevScore float64
	MedianScore float64
	MinScore    float64
	MaxScore    float64
	MeanTicks   float64
	Reasons     map[string]int
}

// ComputeBatchStats aggregates records. An empty batch yields zeroes.
func ComputeBatchStats(records []GameRecord) BatchStats {
	bs := BatchStats{Games: len(records), Reasons: make(map[string]int)}
	if len(records) == 0 {
		return bs
	}

	scores := make([]float64, len(records))
	ticks := make([]float64, len(records))
	for i, r := range records {
		scores[i] = float64(r.Score)
		ticks[i] = float64(r.Ticks)
		bs.Reasons[r.Reason]++
	}

	bs.MeanScore = stat.Mean(scores, nil)
	if len(scores) > 1 {
		bs.StdDevScore = stat.StdDev(scores, nil)
	}
	bs.MinScore = floats.Min(scores)
	bs.MaxScore = floats.Max(scores)
	bs.MeanTicks = stat.Mean(ticks, nil)

	sorted := make([]float64, len(scores))
	copy(sorted, scores)
	sort.Float64s(sorted)
	bs.MedianScore = stat.Quantile(0.5, stat.Empirical, sorted, nil)

	return bs
}

// LogValue implements slog.LogValuer for structured logging.
func (s BatchStats) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.Int("games", s.Games),
		slog.Float64("score_mean", s.MeanScore),
		slog.Float64("score_std", s.StdDevScore),
		slog.Float64("score_median", s.MedianScore),
		slog.Float64("score_min", s.MinScore),
		slog.Float64("score_max", s.MaxScore),
		slog.Float64("ticks_mean", s.MeanTicks),
	}
	for reason, n := range s.Reasons {
		attrs = append(attrs, slog.Int("reason_"+reason, n))
	}
	return slog.GroupValue(attrs...)
}
