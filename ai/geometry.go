package ai

import (
	"github.com/joonazan/vec2"

	"gridsnake/game/types"
)

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// manhattanDistance between two cells. The board has walls, so there is
// no wrap-around.
func manhattanDistance(a, b types.Cell) int {
	return abs(b.X-a.X) + abs(b.Y-a.Y)
}

func vec(c types.Cell) vec2.Vector {
	return vec2.Vector{X: float64(c.X), Y: float64(c.Y)}
}

// nearest returns the cell of targets closest to from, first one wins ties.
func nearest(from types.Cell, targets []types.Cell) (types.Cell, bool) {
	if len(targets) == 0 {
		return types.Cell{}, false
	}
	best := targets[0]
	bestDist := manhattanDistance(from, best)
	for _, t := range targets[1:] {
		if d := manhattanDistance(from, t); d < bestDist {
			best, bestDist = t, d
		}
	}
	return best, true
}

// openArea counts the cells reachable from start without crossing a
// blocked cell, stopping once limit cells have been found.
func openArea(grid types.Grid, blocked map[types.Cell]bool, start types.Cell, limit int) int {
	if !grid.Contains(start) || blocked[start] {
		return 0
	}
	seen := map[types.Cell]bool{start: true}
	queue := []types.Cell{start}
	for len(queue) > 0 && len(seen) < limit {
		c := queue[0]
		queue = queue[1:]
		for _, d := range types.Directions {
			n := c.Add(d)
			if !grid.Contains(n) || blocked[n] || seen[n] {
				continue
			}
			seen[n] = true
			queue = append(queue, n)
		}
	}
	return len(seen)
}
