package entity

import "gridsnake/game/types"

// Entity is anything that can occupy grid cells. Only *Apple and *Snake
// implement it.
type Entity interface {
	Kind() types.Kind
	isEntity()
}

// Mark records that Owner occupies Cell during the current tick.
// The owner reference is non-owning.
type Mark struct {
	Cell  types.Cell
	Kind  types.Kind
	Owner Entity
}

// Occupancy is the per-tick scratch index used for collision queries.
// A fresh one is built every tick and dropped when the tick ends.
type Occupancy struct {
	marks map[types.Cell][]Mark
	count int
}

// NewOccupancy returns an empty index sized for roughly hint marks.
func NewOccupancy(hint int) *Occupancy {
	return &Occupancy{marks: make(map[types.Cell][]Mark, hint)}
}

// Mark adds one mark for owner at cell.
func (o *Occupancy) Mark(cell types.Cell, owner Entity) {
	o.marks[cell] = append(o.marks[cell], Mark{Cell: cell, Kind: owner.Kind(), Owner: owner})
	o.count++
}

// Query returns all marks at cell in insertion order. The result is empty,
// never nil-dereferencing, for unoccupied cells.
func (o *Occupancy) Query(cell types.Cell) []Mark {
	return o.marks[cell]
}

// Len returns the total number of marks in the index.
func (o *Occupancy) Len() int {
	return o.count
}

// AppleAt returns the first live apple marked at cell, or nil.
func (o *Occupancy) AppleAt(cell types.Cell) *Apple {
	for _, m := range o.marks[cell] {
		if m.Kind != types.KindApple {
			continue
		}
		if a, ok := m.Owner.(*Apple); ok && a.Alive() {
			return a
		}
	}
	return nil
}

// SnakesAt returns the snake owner of every snake mark at cell, one entry
// per mark.
func (o *Occupancy) SnakesAt(cell types.Cell) []*Snake {
	var out []*Snake
	for _, m := range o.marks[cell] {
		if m.Kind != types.KindSnake {
			continue
		}
		if s, ok := m.Owner.(*Snake); ok {
			out = append(out, s)
		}
	}
	return out
}

// Occupied reports whether cell holds a snake mark or a live apple mark.
// Marks of apples eaten earlier in the tick do not count.
func (o *Occupancy) Occupied(cell types.Cell) bool {
	for _, m := range o.marks[cell] {
		switch m.Kind {
		case types.KindSnake:
			return true
		case types.KindApple:
			if a, ok := m.Owner.(*Apple); ok && a.Alive() {
				return true
			}
		}
	}
	return false
}
