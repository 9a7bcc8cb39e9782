package game

import "gridsnake/game/types"

// Sprite is one filled cell of a frame. Owner is the player index for snake
// cells and -1 for apples.
type Sprite struct {
	Cell  types.Cell
	Kind  types.Kind
	Owner int
}

// Frame is everything a renderer needs for one tick, apples first, then
// every snake body head first in registration order.
type Frame struct {
	Tick    int
	Sprites []Sprite
}

// Renderer draws frames. Begin is called once with the board size before
// the first frame.
type Renderer interface {
	Begin(grid types.Grid)
	Draw(frame Frame)
}

// HUD shows scores while running and the final summary once.
type HUD interface {
	Scores(scores []int)
	GameOver(summary Summary)
}

// Controller steers a player from a snapshot of the board. It is consulted
// right before every tick; returning types.None keeps the current facing.
type Controller interface {
	Steer(v View) types.Direction
}

// View is a read-only snapshot of the board from one player's seat.
type View struct {
	Grid   types.Grid
	Player int
	Head   types.Cell
	Facing types.Direction
	Bodies [][]types.Cell // every snake, registration order; own body included
	Apples []types.Cell
}

type nopRenderer struct{}

func (nopRenderer) Begin(types.Grid) {}
func (nopRenderer) Draw(Frame)       {}

type nopHUD struct{}

func (nopHUD) Scores([]int)     {}
func (nopHUD) GameOver(Summary) {}
