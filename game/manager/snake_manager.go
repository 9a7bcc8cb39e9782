package manager

import (
	"gridsnake/game/entity"
)

// SnakeManager keeps snakes in registration order, which is also the order
// they advance in every tick.
type SnakeManager struct {
	snakes []*entity.Snake
}

func NewSnakeManager() *SnakeManager {
	return &SnakeManager{}
}

func (sm *SnakeManager) AddSnake(snake *entity.Snake) {
	sm.snakes = append(sm.snakes, snake)
}

func (sm *SnakeManager) GetSnakes() []*entity.Snake {
	return sm.snakes
}

// Snake returns the snake registered at index i, or nil.
func (sm *SnakeManager) Snake(i int) *entity.Snake {
	if i < 0 || i >= len(sm.snakes) {
		return nil
	}
	return sm.snakes[i]
}

func (sm *SnakeManager) Count() int {
	return len(sm.snakes)
}

// Mark contributes every snake body to idx without moving anything.
func (sm *SnakeManager) Mark(idx *entity.Occupancy) {
	for _, s := range sm.snakes {
		s.Mark(idx)
	}
}

// Advance moves every snake once, in order. A snake only sees the marks of
// snakes advanced before it in the same tick.
func (sm *SnakeManager) Advance(idx *entity.Occupancy, w entity.World) []entity.Outcome {
	outcomes := make([]entity.Outcome, len(sm.snakes))
	for i, s := range sm.snakes {
		outcomes[i] = s.Advance(idx, w)
	}
	return outcomes
}

// Scores returns each snake's length in registration order.
func (sm *SnakeManager) Scores() []int {
	scores := make([]int, len(sm.snakes))
	for i, s := range sm.snakes {
		scores[i] = s.Len()
	}
	return scores
}

// Cells returns the number of cells covered by all bodies.
func (sm *SnakeManager) Cells() int {
	n := 0
	for _, s := range sm.snakes {
		n += s.Len()
	}
	return n
}
