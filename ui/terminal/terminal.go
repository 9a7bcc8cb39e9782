package terminal

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/gdamore/tcell/v2"

	"gridsnake/config"
	"gridsnake/game"
	"gridsnake/game/types"
	"gridsnake/input"
)

const noticeDuration = 2 * time.Second

// Terminal is the tcell frontend. The session ticks on its own goroutine
// through Session.Run; key presses reach it as commands.
type Terminal struct {
	screen     tcell.Screen
	cfg        *config.Config
	logger     *slog.Logger
	renderer   *Renderer
	dispatcher *input.Dispatcher
	events     chan tcell.Event
}

// New wraps an initialized screen. The caller keeps ownership and calls
// Fini.
func New(screen tcell.Screen, cfg *config.Config, logger *slog.Logger) *Terminal {
	return &Terminal{
		screen:     screen,
		cfg:        cfg,
		logger:     logger,
		renderer:   NewRenderer(screen),
		dispatcher: input.NewDispatcher(cfg.Derived.Bindings),
		events:     make(chan tcell.Event, 100),
	}
}

// Run plays one session after another until the player quits or declines
// a new game, or ctx is done.
func (t *Terminal) Run(ctx context.Context, opts ...game.Option) error {
	go func() {
		for {
			ev := t.screen.PollEvent()
			if ev == nil {
				return // screen finalized
			}
			t.events <- ev
		}
	}()

	opts = append(opts, game.WithRenderer(t.renderer), game.WithHUD(t.renderer), game.WithLogger(t.logger))
	for {
		s, err := game.NewSession(t.cfg, opts...)
		if err != nil {
			return err
		}
		again, err := t.play(ctx, s)
		if err != nil || !again {
			return err
		}
	}
}

type runResult struct {
	summary game.Summary
	err     error
}

func (t *Terminal) play(ctx context.Context, s *game.Session) (bool, error) {
	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	commands := make(chan game.Command, 16)
	done := make(chan runResult, 1)
	go func() {
		summary, err := s.Run(runCtx, commands)
		done <- runResult{summary, err}
	}()

	for {
		select {
		case ev := <-t.events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				action, cmds := t.dispatcher.Dispatch(keyName(ev))
				switch action {
				case input.ActionSteer:
					for _, c := range cmds {
						select {
						case commands <- c:
						default:
							t.logger.Debug("command_dropped", "player", c.Player, "direction", c.Direction)
						}
					}
				case input.ActionPause:
					t.renderer.Notice("Pause is not available", noticeDuration)
				case input.ActionQuit:
					cancel()
					<-done
					return false, nil
				}
			case *tcell.EventResize:
				t.screen.Sync()
			}

		case res := <-done:
			if res.err != nil {
				if errors.Is(res.err, context.Canceled) && ctx.Err() != nil {
					return false, nil
				}
				return false, res.err
			}
			return t.prompt(ctx, res.summary)
		}
	}
}

// prompt asks whether to play again and waits for y or n.
func (t *Terminal) prompt(ctx context.Context, summary game.Summary) (bool, error) {
	t.renderer.Prompt(fmt.Sprintf("Game Over! You scored %d. Start a new game? (y/n)", summary.Score))
	for {
		select {
		case <-ctx.Done():
			return false, nil
		case ev := <-t.events:
			key, ok := ev.(*tcell.EventKey)
			if !ok {
				continue
			}
			switch keyName(key) {
			case "y", "Y", "Enter":
				return true, nil
			case "n", "N", "q", "Q", input.KeyEscape:
				return false, nil
			}
		}
	}
}

// keyName maps a tcell key event onto binding key names.
func keyName(ev *tcell.EventKey) string {
	switch ev.Key() {
	case tcell.KeyUp:
		return types.KeyArrowUp
	case tcell.KeyDown:
		return types.KeyArrowDown
	case tcell.KeyLeft:
		return types.KeyArrowLeft
	case tcell.KeyRight:
		return types.KeyArrowRight
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return input.KeyEscape
	case tcell.KeyEnter:
		return "Enter"
	case tcell.KeyRune:
		return string(ev.Rune())
	}
	return ""
}
