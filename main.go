package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/gdamore/tcell/v2"

	"gridsnake/ai"
	"gridsnake/config"
	"gridsnake/game"
	"gridsnake/ui/terminal"
	"gridsnake/ui/window"
)

func main() {
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	uiMode := flag.String("ui", "window", "Frontend: window or terminal")
	headless := flag.Bool("headless", false, "Play autopilot games without graphics")
	games := flag.Int("games", 1, "Number of games to play in headless mode")
	maxTicks := flag.Int("max-ticks", 10000, "Stop a headless game after N ticks (0 = unlimited)")
	seed := flag.Int64("seed", 0, "Apple placement seed (0 = config value, then time-based)")
	autopilot := flag.Bool("autopilot", false, "Let the computer steer every snake")
	outputDir := flag.String("output", "", "Output directory for games.csv and config snapshot")
	logLevel := flag.String("log-level", "info", "Log level: debug, info, warn, error")
	logFile := flag.String("log-file", "", "Write logs to this file (terminal UI logs nowhere otherwise)")

	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(*logLevel)); err != nil {
		slog.Error("bad log level", "level", *logLevel, "error", err)
		os.Exit(1)
	}
	logger, closeLog, err := newLogger(*headless, *uiMode, *logFile, level)
	if err != nil {
		slog.Error("failed to open log file", "error", err)
		os.Exit(1)
	}
	defer closeLog()
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if *headless {
		err = runHeadless(ctx, cfg, headlessOptions{
			Games:     *games,
			MaxTicks:  *maxTicks,
			OutputDir: *outputDir,
		}, logger)
	} else {
		var opts []game.Option
		if *autopilot {
			for i := range cfg.Players {
				opts = append(opts, game.WithController(i, ai.NewAutopilot()))
			}
		}
		err = runInteractive(ctx, cfg, *uiMode, logger, opts)
	}
	if err != nil {
		logger.Error("exiting", "error", err)
		closeLog()
		os.Exit(1)
	}
}

// newLogger picks the handler by frontend: JSON to stdout when headless,
// text to stderr for the window, and nothing for the terminal unless a log
// file is given, so the screen stays clean.
func newLogger(headless bool, uiMode, path string, level slog.Level) (*slog.Logger, func(), error) {
	opts := &slog.HandlerOptions{Level: level}
	closer := func() {}

	var out io.Writer = os.Stderr
	switch {
	case path != "":
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, nil, err
		}
		out = f
		closer = func() { f.Close() }
	case headless:
		out = os.Stdout
	case uiMode == "terminal":
		return slog.New(slog.DiscardHandler), closer, nil
	}

	if headless {
		return slog.New(slog.NewJSONHandler(out, opts)), closer, nil
	}
	return slog.New(slog.NewTextHandler(out, opts)), closer, nil
}

func runInteractive(ctx context.Context, cfg *config.Config, uiMode string, logger *slog.Logger, opts []game.Option) error {
	switch uiMode {
	case "window":
		return window.New(cfg, logger).Run(opts...)
	case "terminal":
		screen, err := tcell.NewScreen()
		if err != nil {
			return fmt.Errorf("creating screen: %w", err)
		}
		if err := screen.Init(); err != nil {
			return fmt.Errorf("initializing screen: %w", err)
		}
		defer screen.Fini()
		return terminal.New(screen, cfg, logger).Run(ctx, opts...)
	default:
		return fmt.Errorf("unknown ui %q (want window or terminal)", uiMode)
	}
}
