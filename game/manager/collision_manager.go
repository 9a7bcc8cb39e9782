package manager

import (
	"gridsnake/game/entity"
	"gridsnake/game/types"
)

type CollisionManager struct {
	grid types.Grid
}

func NewCollisionManager(grid types.Grid) *CollisionManager {
	return &CollisionManager{
		grid: grid,
	}
}

func (cm *CollisionManager) Grid() types.Grid {
	return cm.grid
}

// IsWallCollision checks if a position lies outside the board
func (cm *CollisionManager) IsWallCollision(pos types.Cell) bool {
	return !cm.grid.Contains(pos)
}

// ValidateSpawnPosition checks if a position is free for a new apple
func (cm *CollisionManager) ValidateSpawnPosition(idx *entity.Occupancy, pos types.Cell) bool {
	if cm.IsWallCollision(pos) {
		return false
	}
	return !idx.Occupied(pos)
}

// FreeCells lists every in-bounds cell without a snake or live apple mark,
// row by row.
func (cm *CollisionManager) FreeCells(idx *entity.Occupancy) []types.Cell {
	free := make([]types.Cell, 0, cm.grid.Area())
	for y := 0; y < cm.grid.Height; y++ {
		for x := 0; x < cm.grid.Width; x++ {
			p := types.Cell{X: x, Y: y}
			if !idx.Occupied(p) {
				free = append(free, p)
			}
		}
	}
	return free
}

// IsDanger reports whether moving a head onto pos would end the game,
// treating every listed body cell as solid. Tails that are about to move
// are still counted, which keeps the check conservative.
func (cm *CollisionManager) IsDanger(pos types.Cell, bodies ...[]types.Cell) bool {
	if cm.IsWallCollision(pos) {
		return true
	}
	for _, body := range bodies {
		for _, part := range body {
			if part == pos {
				return true
			}
		}
	}
	return false
}
