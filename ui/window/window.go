package window

import (
	"fmt"
	"log/slog"
	"time"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"gridsnake/config"
	"gridsnake/game"
	"gridsnake/game/types"
	"gridsnake/input"
)

const noticeDuration = 2 * time.Second

// Window is the raylib frontend. It owns the tick loop: ticks run on the
// window's goroutine whenever the session interval has elapsed.
type Window struct {
	cfg        *config.Config
	logger     *slog.Logger
	renderer   *Renderer
	dispatcher *input.Dispatcher

	notice      string
	noticeUntil time.Time
}

func New(cfg *config.Config, logger *slog.Logger) *Window {
	return &Window{
		cfg:        cfg,
		logger:     logger,
		dispatcher: input.NewDispatcher(cfg.Derived.Bindings),
	}
}

// Run opens the window and plays one session after another until the
// window is closed, a quit key is pressed, or the player declines a new
// game. opts are passed to every new session.
func (w *Window) Run(opts ...game.Option) error {
	rl.SetConfigFlags(rl.FlagWindowResizable)
	rl.InitWindow(1280, 800, "Snake")
	defer rl.CloseWindow()
	rl.SetExitKey(0)
	rl.SetTargetFPS(60)

	w.renderer = NewRenderer()
	opts = append(opts, game.WithRenderer(w.renderer), game.WithHUD(w.renderer), game.WithLogger(w.logger))

	for {
		s, err := game.NewSession(w.cfg, opts...)
		if err != nil {
			return err
		}
		again, err := w.play(s)
		if err != nil {
			return err
		}
		if !again {
			return nil
		}
	}
}

// play runs s until game over and asks whether to start another one.
func (w *Window) play(s *game.Session) (bool, error) {
	if err := s.Start(); err != nil {
		return false, err
	}
	lastUpdate := time.Now()

	for !rl.WindowShouldClose() {
		for _, key := range pressedKeys() {
			action, err := w.dispatcher.Apply(s, key)
			if err != nil {
				w.logger.Debug("key_ignored", "key", key, "error", err)
			}
			switch action {
			case input.ActionPause:
				w.pause()
			case input.ActionQuit:
				return false, nil
			}
		}

		if s.Running() && time.Since(lastUpdate) >= s.Interval() {
			s.Tick()
			lastUpdate = time.Now()
		}

		rl.BeginDrawing()
		w.renderer.Render()
		w.drawControls(s)
		if w.renderer.summary != nil {
			switch w.promptNewGame(w.renderer.summary.Score) {
			case 1:
				rl.EndDrawing()
				return true, nil
			case 0, 2:
				rl.EndDrawing()
				return false, nil
			}
		}
		rl.EndDrawing()
	}
	return false, nil
}

// drawControls adds the on-screen buttons that steer player one and the
// pause button.
func (w *Window) drawControls(s *game.Session) {
	x, y := w.renderer.panelOrigin()
	const size = 40
	buttons := []struct {
		bounds rl.Rectangle
		label  string
		dir    types.Direction
	}{
		{rl.Rectangle{X: x + size, Y: y, Width: size, Height: size}, "Up", types.Up},
		{rl.Rectangle{X: x, Y: y + size, Width: size, Height: size}, "Left", types.Left},
		{rl.Rectangle{X: x + 2*size, Y: y + size, Width: size, Height: size}, "Right", types.Right},
		{rl.Rectangle{X: x + size, Y: y + 2*size, Width: size, Height: size}, "Down", types.Down},
	}
	for _, b := range buttons {
		if gui.Button(b.bounds, b.label) {
			if err := s.SetDirection(0, b.dir); err != nil {
				w.logger.Debug("button_ignored", "button", b.label, "error", err)
			}
		}
	}
	if gui.Button(rl.Rectangle{X: x, Y: y + 3*size + 10, Width: 3 * size, Height: 30}, "Pause") {
		w.pause()
	}

	if w.notice != "" && time.Now().Before(w.noticeUntil) {
		rl.DrawText(w.notice, int32(x), int32(y+3*size+50), 16, rl.Yellow)
	}
}

// pause is not supported by the game loop; it only tells the player so.
func (w *Window) pause() {
	w.notice = "Pause is not available"
	w.noticeUntil = time.Now().Add(noticeDuration)
	w.logger.Debug("pause_requested")
}

// promptNewGame shows the game-over box. It returns 1 for yes, 2 for no,
// 0 when the box is closed and -1 while waiting.
func (w *Window) promptNewGame(score int) int32 {
	width, height := float32(360), float32(160)
	bounds := rl.Rectangle{
		X:      (float32(rl.GetScreenWidth()) - width) / 2,
		Y:      (float32(rl.GetScreenHeight()) - height) / 2,
		Width:  width,
		Height: height,
	}
	return gui.MessageBox(bounds, "Game Over", fmt.Sprintf("Game Over! You scored %d. Start a new game?", score), "Yes;No")
}
