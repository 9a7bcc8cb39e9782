// Package ai steers snakes without a human at the keys.
package ai

import (
	"sort"

	"gridsnake/game"
	"gridsnake/game/manager"
	"gridsnake/game/types"
)

// Movement is one candidate step and how far it leaves the head from the
// target apple.
type Movement struct {
	Direction types.Direction
	Target    types.Cell
	Magnitude float64
}

type Movements []*Movement

func (p Movements) Len() int           { return len(p) }
func (p Movements) Less(i, j int) bool { return p[i].Magnitude < p[j].Magnitude }
func (p Movements) Swap(i, j int)      { p[i], p[j] = p[j], p[i] }

// Autopilot is a greedy controller: of the moves that do not hit a wall or
// a body right away it takes the one closest to the nearest apple, and
// avoids pockets too small to hold the snake.
type Autopilot struct{}

func NewAutopilot() *Autopilot {
	return &Autopilot{}
}

// Steer implements game.Controller.
func (a *Autopilot) Steer(v game.View) types.Direction {
	moves := a.Moves(v)
	if len(moves) == 0 {
		return types.None
	}
	return moves[0].Direction
}

// Moves ranks the safe moves for v's player, best first. Going straight,
// then left, then right breaks ties.
func (a *Autopilot) Moves(v game.View) Movements {
	cm := manager.NewCollisionManager(v.Grid)
	blocked := make(map[types.Cell]bool)
	for _, body := range v.Bodies {
		for _, c := range body {
			blocked[c] = true
		}
	}
	length := len(v.Bodies[v.Player])
	target, hasTarget := nearest(v.Head, v.Apples)

	var moves Movements
	for _, d := range []types.Direction{v.Facing, v.Facing.TurnLeft(), v.Facing.TurnRight()} {
		next := v.Head.Add(d)
		if cm.IsDanger(next, v.Bodies...) {
			continue
		}
		m := &Movement{Direction: d, Target: next}
		if hasTarget {
			m.Magnitude = vec(next).Minus(vec(target)).Length()
		}
		// a pocket smaller than the snake is a trap
		if openArea(v.Grid, blocked, next, length) < length {
			m.Magnitude += float64(v.Grid.Area())
		}
		moves = append(moves, m)
	}
	sort.Stable(moves)
	return moves
}
