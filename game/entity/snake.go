package entity

import (
	"slices"

	"gridsnake/game/types"
)

// World is what a snake needs from the session while advancing.
type World interface {
	Grid() types.Grid
	AppleLengthBonus() int
	// KillApple removes a from the live apple set.
	KillApple(a *Apple)
}

// Outcome describes what happened to a snake during one Advance.
type Outcome struct {
	Head      types.Cell
	Ate       *Apple
	Collision types.Collision
}

type Snake struct {
	ID       int
	Body     []types.Cell // head first, tail last
	Controls types.ControlBinding

	facing        types.Direction
	lockedFacing  types.Direction
	pendingGrowth int
}

// NewSnake lays out a straight body of the given length with the head at
// head, extending away from facing.
func NewSnake(id int, head types.Cell, facing types.Direction, length int, controls types.ControlBinding) *Snake {
	body := make([]types.Cell, 0, length)
	back := facing.Opposite()
	c := head
	for i := 0; i < length; i++ {
		body = append(body, c)
		c = c.Add(back)
	}
	return &Snake{
		ID:           id,
		Body:         body,
		Controls:     controls,
		facing:       facing,
		lockedFacing: facing,
	}
}

func (s *Snake) Kind() types.Kind { return types.KindSnake }
func (s *Snake) isEntity()        {}

func (s *Snake) Head() types.Cell {
	return s.Body[0]
}

// Len is the authoritative length, which is also the score.
func (s *Snake) Len() int {
	return len(s.Body)
}

func (s *Snake) Facing() types.Direction {
	return s.facing
}

func (s *Snake) PendingGrowth() int {
	return s.pendingGrowth
}

// SetDirection changes facing unless d reverses the facing locked at the
// start of the last tick. It reports whether the request was taken.
func (s *Snake) SetDirection(d types.Direction) bool {
	if !d.Valid() || d == s.lockedFacing.Opposite() {
		return false
	}
	s.facing = d
	return true
}

// Advance moves the snake one cell. idx must already hold this tick's apple
// marks and the marks of every snake advanced before this one.
func (s *Snake) Advance(idx *Occupancy, w World) Outcome {
	s.lockedFacing = s.facing

	head := s.Head().Add(s.facing)
	s.Body = slices.Insert(s.Body, 0, head)
	out := Outcome{Head: head}

	if a := idx.AppleAt(head); a != nil {
		s.pendingGrowth += w.AppleLengthBonus() + a.LengthBonus
		w.KillApple(a)
		out.Ate = a
	}

	if s.pendingGrowth == 0 {
		s.Body = s.Body[:len(s.Body)-1]
	} else {
		s.pendingGrowth--
	}

	s.Mark(idx)

	if hits := idx.SnakesAt(head); len(hits) > 1 {
		out.Collision = types.SelfCollision
		for _, other := range hits {
			if other != s {
				out.Collision = types.SnakeCollision
				break
			}
		}
	} else if !w.Grid().Contains(head) {
		out.Collision = types.WallCollision
	}
	return out
}

// Mark contributes one snake mark per body cell.
func (s *Snake) Mark(idx *Occupancy) {
	for _, c := range s.Body {
		idx.Mark(c, s)
	}
}
