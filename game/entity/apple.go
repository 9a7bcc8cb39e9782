package entity

import "gridsnake/game/types"

// Apple is a single-cell collectible. Eating it adds LengthBonus (plus the
// session-wide bonus) to the eater's pending growth.
type Apple struct {
	Position    types.Cell
	LengthBonus int
	dead        bool
}

func NewApple(pos types.Cell, lengthBonus int) *Apple {
	return &Apple{Position: pos, LengthBonus: lengthBonus}
}

func (a *Apple) Kind() types.Kind { return types.KindApple }
func (a *Apple) isEntity()        {}

// Alive reports whether the apple has not been eaten yet.
func (a *Apple) Alive() bool {
	return !a.dead
}

// Mark contributes this tick's single occupancy mark.
func (a *Apple) Mark(idx *Occupancy) {
	idx.Mark(a.Position, a)
}

// Kill flags the apple as eaten. Calling it twice is harmless.
func (a *Apple) Kill() {
	a.dead = true
}
