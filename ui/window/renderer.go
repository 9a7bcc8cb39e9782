// Package window plays the game in a raylib window.
package window

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"gridsnake/game"
	"gridsnake/game/types"
)

const (
	borderPadding = 10
	panelMinWidth = 220
)

var palette = []rl.Color{
	{R: 0, G: 200, B: 80, A: 255},
	{R: 60, G: 140, B: 240, A: 255},
	{R: 240, G: 160, B: 20, A: 255},
	{R: 190, G: 80, B: 230, A: 255},
}

func playerColor(i int) rl.Color {
	return palette[i%len(palette)]
}

// Renderer keeps the latest frame and scores handed over by the session and
// draws them on every window refresh.
type Renderer struct {
	grid    types.Grid
	frame   game.Frame
	scores  []int
	summary *game.Summary

	cellSize        int32
	screenWidth     int32
	screenHeight    int32
	statsPanel      int32
	gameWidth       int32
	totalGridWidth  int32
	totalGridHeight int32
	offsetX         int32
	offsetY         int32
}

func NewRenderer() *Renderer {
	r := &Renderer{}
	r.UpdateDimensions()
	return r
}

func (r *Renderer) Begin(grid types.Grid) {
	r.grid = grid
	r.frame = game.Frame{}
	r.scores = nil
	r.summary = nil
}

func (r *Renderer) Draw(frame game.Frame) {
	r.frame = frame
}

func (r *Renderer) Scores(scores []int) {
	r.scores = scores
}

func (r *Renderer) GameOver(summary game.Summary) {
	r.summary = &summary
}

// UpdateDimensions recomputes the layout from the current window size.
func (r *Renderer) UpdateDimensions() {
	r.screenWidth = int32(rl.GetScreenWidth())
	r.screenHeight = int32(rl.GetScreenHeight())

	r.statsPanel = max(r.screenWidth/5, panelMinWidth)
	r.gameWidth = r.screenWidth - r.statsPanel

	if r.grid.Width == 0 || r.grid.Height == 0 {
		return
	}
	availableWidth := r.gameWidth - borderPadding*2
	availableHeight := r.screenHeight - borderPadding*2
	r.cellSize = max(min(availableWidth/int32(r.grid.Width), availableHeight/int32(r.grid.Height)), 1)

	r.totalGridWidth = r.cellSize * int32(r.grid.Width)
	r.totalGridHeight = r.cellSize * int32(r.grid.Height)
	r.offsetX = borderPadding
	r.offsetY = (r.screenHeight - r.totalGridHeight) / 2
}

// Render draws the board and the score panel. It must be called between
// rl.BeginDrawing and rl.EndDrawing.
func (r *Renderer) Render() {
	r.UpdateDimensions()
	rl.ClearBackground(rl.Black)

	rl.DrawRectangle(r.offsetX-1, r.offsetY-1, r.totalGridWidth+2, r.totalGridHeight+2, rl.DarkGray)
	rl.DrawRectangle(r.offsetX, r.offsetY, r.totalGridWidth, r.totalGridHeight, rl.Black)

	sprites := r.frame.Sprites
	for i, sp := range sprites {
		if !r.grid.Contains(sp.Cell) {
			continue
		}
		x, y := r.cellOrigin(sp.Cell)
		if sp.Kind == types.KindApple {
			rl.DrawRectangle(x, y, r.cellSize, r.cellSize, rl.Red)
			continue
		}

		color := playerColor(sp.Owner)
		head := i == 0 || sprites[i-1].Kind != types.KindSnake || sprites[i-1].Owner != sp.Owner
		if !head {
			rl.DrawRectangle(x, y, r.cellSize, r.cellSize, color)
			continue
		}
		color = rl.Color{
			R: uint8(min(float32(color.R)*1.3, 255)),
			G: uint8(min(float32(color.G)*1.3, 255)),
			B: uint8(min(float32(color.B)*1.3, 255)),
			A: 255,
		}
		rl.DrawRectangle(x, y, r.cellSize, r.cellSize, color)
		if i+1 < len(sprites) && sprites[i+1].Owner == sp.Owner {
			r.drawHeading(x, y, types.Towards(sprites[i+1].Cell, sp.Cell))
		}
	}

	r.drawStatsPanel()
}

func (r *Renderer) cellOrigin(c types.Cell) (int32, int32) {
	return r.offsetX + int32(c.X)*r.cellSize, r.offsetY + int32(c.Y)*r.cellSize
}

// drawHeading puts a small triangle on the head pointing where the snake
// last moved.
func (r *Renderer) drawHeading(headX, headY int32, d types.Direction) {
	cs := float32(r.cellSize)
	half := cs / 2
	x, y := float32(headX), float32(headY)
	switch d {
	case types.Right:
		rl.DrawTriangle(rl.Vector2{X: x + cs, Y: y + half}, rl.Vector2{X: x + half, Y: y}, rl.Vector2{X: x + half, Y: y + cs}, rl.Yellow)
	case types.Left:
		rl.DrawTriangle(rl.Vector2{X: x, Y: y + half}, rl.Vector2{X: x + half, Y: y + cs}, rl.Vector2{X: x + half, Y: y}, rl.Yellow)
	case types.Down:
		rl.DrawTriangle(rl.Vector2{X: x + half, Y: y + cs}, rl.Vector2{X: x + cs, Y: y + half}, rl.Vector2{X: x, Y: y + half}, rl.Yellow)
	case types.Up:
		rl.DrawTriangle(rl.Vector2{X: x + half, Y: y}, rl.Vector2{X: x, Y: y + half}, rl.Vector2{X: x + cs, Y: y + half}, rl.Yellow)
	}
}

func (r *Renderer) drawStatsPanel() {
	fontSize := max(min(r.screenHeight/35, r.statsPanel/12), 10)
	lineHeight := fontSize + 6
	statsX := r.gameWidth + 5
	statsY := int32(borderPadding)

	rl.DrawRectangle(r.gameWidth, 0, r.statsPanel, r.screenHeight, rl.DarkGray)
	rl.DrawText("Score", statsX, statsY, fontSize, rl.White)
	statsY += lineHeight
	for i, score := range r.scores {
		rl.DrawText(fmt.Sprintf("Player %d: %d", i+1, score), statsX+5, statsY, fontSize, playerColor(i))
		statsY += lineHeight
	}
	rl.DrawText(fmt.Sprintf("Tick %d", r.frame.Tick), statsX, statsY+lineHeight/2, fontSize, rl.LightGray)
}

// panelOrigin is where the on-screen controls go, below the scores.
func (r *Renderer) panelOrigin() (float32, float32) {
	fontSize := max(min(r.screenHeight/35, r.statsPanel/12), 10)
	lineHeight := fontSize + 6
	return float32(r.gameWidth + 10), float32(borderPadding + lineHeight*int32(len(r.scores)+3))
}
