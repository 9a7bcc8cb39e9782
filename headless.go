package main

import (
	"context"
	"fmt"
	"log/slog"

	"gridsnake/ai"
	"gridsnake/config"
	"gridsnake/game"
	"gridsnake/game/types"
	"gridsnake/telemetry"
)

type headlessOptions struct {
	Games     int
	MaxTicks  int // 0 = unlimited
	OutputDir string
}

// runHeadless plays autopilot games back to back as fast as possible and
// logs the batch statistics at the end.
func runHeadless(ctx context.Context, cfg *config.Config, opts headlessOptions, logger *slog.Logger) error {
	out, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		return err
	}
	defer out.Close()
	if err := out.WriteConfig(cfg); err != nil {
		return fmt.Errorf("writing config snapshot: %w", err)
	}

	logger.Info("starting headless batch",
		"games", opts.Games,
		"max_ticks", opts.MaxTicks,
		"seed", cfg.Seed,
		"output", out.Dir(),
	)

	records := make([]telemetry.GameRecord, 0, opts.Games)
	for i := 1; i <= opts.Games; i++ {
		if err := ctx.Err(); err != nil {
			logger.Info("batch interrupted", "played", len(records))
			break
		}

		sessionOpts := []game.Option{game.WithLogger(logger)}
		if cfg.Seed != 0 {
			sessionOpts = append(sessionOpts, game.WithSeed(cfg.Seed+int64(i-1)))
		}
		for p := range cfg.Players {
			sessionOpts = append(sessionOpts, game.WithController(p, ai.NewAutopilot()))
		}

		summary, err := playHeadless(cfg, opts.MaxTicks, sessionOpts...)
		if err != nil {
			return fmt.Errorf("game %d: %w", i, err)
		}
		if summary.Reason == types.NoCollision {
			logger.Info("max ticks reached", "game", i, "summary", summary)
		}

		rec := telemetry.NewGameRecord(i, summary)
		records = append(records, rec)
		if err := out.WriteGame(rec); err != nil {
			return err
		}
	}

	logger.Info("batch finished", "stats", telemetry.ComputeBatchStats(records))
	return nil
}

// playHeadless ticks one session directly, without a timer.
func playHeadless(cfg *config.Config, maxTicks int, opts ...game.Option) (game.Summary, error) {
	s, err := game.NewSession(cfg, opts...)
	if err != nil {
		return game.Summary{}, err
	}
	if err := s.Start(); err != nil {
		return game.Summary{}, err
	}
	for s.Tick() {
		if maxTicks > 0 && s.Ticks() >= maxTicks {
			break
		}
	}
	return s.Summary(), nil
}
