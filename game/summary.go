package game

import (
	"log/slog"
	"time"

	"github.com/google/uuid"

	"gridsnake/game/types"
)

// Summary is the final report of a session.
type Summary struct {
	SessionID   uuid.UUID
	Score       int   // first snake's length
	Scores      []int // every snake's length, registration order
	ApplesEaten []int
	Ticks       int
	Reason      types.Collision
	Culprit     int // index of the snake whose move ended the game, -1 if none
	Duration    time.Duration
}

func (s Summary) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("session", s.SessionID.String()),
		slog.Int("score", s.Score),
		slog.Any("scores", s.Scores),
		slog.Int("ticks", s.Ticks),
		slog.String("reason", s.Reason.String()),
		slog.Int("culprit", s.Culprit),
		slog.Duration("duration", s.Duration),
	)
}
