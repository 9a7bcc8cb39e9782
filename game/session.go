// Package game runs one snake game from construction to game over.
package game

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"gridsnake/config"
	"gridsnake/game/entity"
	"gridsnake/game/manager"
	"gridsnake/game/types"
)

var (
	ErrUnknownPlayer = errors.New("unknown player")
	ErrNotRunning    = errors.New("session not running")
)

// Command is a direction request for one player, delivered to Run between
// ticks.
type Command struct {
	Player    int
	Direction types.Direction
}

// Session owns every entity of one game. It is not safe for concurrent use;
// Run serializes input and ticks on a single goroutine.
type Session struct {
	ID  uuid.UUID
	cfg *config.Config

	grid         types.Grid
	state        *manager.StateManager
	snakes       *manager.SnakeManager
	apples       *manager.AppleManager
	collisionMgr *manager.CollisionManager

	eaten       []int
	controllers map[int]Controller

	renderer Renderer
	hud      HUD
	logger   *slog.Logger
	clock    Clock
	seed     int64
}

type Option func(*Session)

func WithRenderer(r Renderer) Option { return func(s *Session) { s.renderer = r } }
func WithHUD(h HUD) Option           { return func(s *Session) { s.hud = h } }
func WithLogger(l *slog.Logger) Option {
	return func(s *Session) { s.logger = l }
}
func WithClock(c Clock) Option { return func(s *Session) { s.clock = c } }

// WithSeed overrides the configured seed for apple placement.
func WithSeed(seed int64) Option { return func(s *Session) { s.seed = seed } }

// WithController hands a player's steering to c.
func WithController(player int, c Controller) Option {
	return func(s *Session) { s.controllers[player] = c }
}

// NewSession validates cfg and builds the snakes and the initial apples.
// The session stays in Initializing until Start or Run.
func NewSession(cfg *config.Config, opts ...Option) (*Session, error) {
	if cfg == nil {
		return nil, fmt.Errorf("new session: %w: nil config", config.ErrInvalid)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("new session: %w", err)
	}

	s := &Session{
		ID:          uuid.New(),
		cfg:         cfg,
		grid:        cfg.Derived.Grid,
		eaten:       make([]int, len(cfg.Players)),
		controllers: make(map[int]Controller),
		renderer:    nopRenderer{},
		hud:         nopHUD{},
		logger:      slog.Default(),
		clock:       realClock{},
		seed:        cfg.Seed,
	}
	for _, opt := range opts {
		opt(s)
	}
	for player := range s.controllers {
		if player < 0 || player >= len(cfg.Players) {
			return nil, fmt.Errorf("new session: controller for player %d: %w", player, ErrUnknownPlayer)
		}
	}
	if s.seed == 0 {
		s.seed = s.clock.Now().UnixNano()
	}
	s.logger = s.logger.With("session", s.ID.String())

	s.state = manager.NewStateManager(s.clock.Now)
	s.collisionMgr = manager.NewCollisionManager(s.grid)
	s.apples = manager.NewAppleManager(s.collisionMgr, uint64(s.seed))
	s.snakes = manager.NewSnakeManager()
	for i, p := range cfg.Players {
		s.snakes.AddSnake(entity.NewSnake(i, p.Head(), p.Facing, cfg.Snake.StartingLength, cfg.Derived.Bindings[i]))
	}

	idx := s.newIndex()
	s.snakes.Mark(idx)
	s.apples.Spawn(idx, cfg.Apples.Count, cfg.Apples.LengthBonus)
	return s, nil
}

// Start enters Running, announces the board to the renderer and draws the
// opening frame.
func (s *Session) Start() error {
	if err := s.state.Start(); err != nil {
		return fmt.Errorf("start session: %w", err)
	}
	s.logger.Info("session_started",
		"width", s.grid.Width,
		"height", s.grid.Height,
		"players", s.snakes.Count(),
		"interval", s.cfg.Derived.TickInterval,
		"seed", s.seed,
	)
	s.renderer.Begin(s.grid)
	s.renderer.Draw(s.frame())
	s.hud.Scores(s.snakes.Scores())
	return nil
}

// Tick advances the game by one step and reports whether it is still
// running. Ticks on a session that is not running do nothing.
func (s *Session) Tick() bool {
	if !s.state.Running() {
		return false
	}
	s.consultControllers()

	idx := s.newIndex()
	s.apples.Mark(idx)
	outcomes := s.snakes.Advance(idx, s)
	s.state.CountTick()

	for i, out := range outcomes {
		if out.Ate != nil {
			s.eaten[i]++
			s.logger.Debug("apple_eaten", "player", i, "cell", out.Ate.Position, "bonus", out.Ate.LengthBonus)
		}
		if out.Collision != types.NoCollision {
			// only the first collision of the tick is recorded
			s.state.Terminate(out.Collision, i)
		}
	}

	if !s.state.Running() {
		summary := s.Summary()
		s.logger.Info("session_ended", "summary", summary)
		s.hud.GameOver(summary)
		return false
	}

	s.apples.TopUp(idx, s.cfg.Apples.Count, s.cfg.Apples.RespawnLengthBonus)
	s.renderer.Draw(s.frame())
	s.hud.Scores(s.snakes.Scores())
	return true
}

// Run starts the session if needed and ticks it on the configured interval
// until game over or ctx is done. Commands are applied between ticks.
// The ticker is stopped exactly once, on return.
func (s *Session) Run(ctx context.Context, commands <-chan Command) (Summary, error) {
	if s.state.State() == manager.Initializing {
		if err := s.Start(); err != nil {
			return Summary{}, err
		}
	}
	if !s.state.Running() {
		return s.Summary(), ErrNotRunning
	}

	ticker := s.clock.NewTicker(s.cfg.Derived.TickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return s.Summary(), ctx.Err()
		case cmd, ok := <-commands:
			if !ok {
				commands = nil
				continue
			}
			if err := s.SetDirection(cmd.Player, cmd.Direction); err != nil {
				s.logger.Debug("command_dropped", "player", cmd.Player, "error", err)
			}
		case <-ticker.C():
			if !s.Tick() {
				return s.Summary(), nil
			}
		}
	}
}

// SetDirection requests a new facing for a player. A reversal is silently
// ignored; only unknown players and stopped sessions are errors.
func (s *Session) SetDirection(player int, d types.Direction) error {
	snake := s.snakes.Snake(player)
	if snake == nil {
		return fmt.Errorf("player %d: %w", player, ErrUnknownPlayer)
	}
	if s.state.State() == manager.Terminal {
		return ErrNotRunning
	}
	if !snake.SetDirection(d) {
		s.logger.Debug("direction_rejected", "player", player, "requested", d, "facing", snake.Facing())
	}
	return nil
}

func (s *Session) consultControllers() {
	for player, c := range s.controllers {
		if d := c.Steer(s.View(player)); d != types.None {
			s.snakes.Snake(player).SetDirection(d)
		}
	}
}

// Grid, AppleLengthBonus and KillApple make the session the world snakes
// advance in.

func (s *Session) Grid() types.Grid {
	return s.grid
}

func (s *Session) AppleLengthBonus() int {
	return s.cfg.Apples.LengthBonus
}

func (s *Session) KillApple(a *entity.Apple) {
	s.apples.Kill(a)
}

func (s *Session) State() manager.State {
	return s.state.State()
}

func (s *Session) Running() bool {
	return s.state.Running()
}

func (s *Session) Ticks() int {
	return s.state.Ticks()
}

func (s *Session) Config() *config.Config {
	return s.cfg
}

// Snakes returns the snakes in registration order. Callers must not mutate
// them.
func (s *Session) Snakes() []*entity.Snake {
	return s.snakes.GetSnakes()
}

// Apples returns the live apples.
func (s *Session) Apples() []*entity.Apple {
	return s.apples.Apples()
}

// Scores returns every snake's current length.
func (s *Session) Scores() []int {
	return s.snakes.Scores()
}

// View snapshots the board for player. It panics on an unknown player.
func (s *Session) View(player int) View {
	snakes := s.snakes.GetSnakes()
	me := snakes[player]
	v := View{
		Grid:   s.grid,
		Player: player,
		Head:   me.Head(),
		Facing: me.Facing(),
		Bodies: make([][]types.Cell, len(snakes)),
		Apples: make([]types.Cell, 0, s.apples.Count()),
	}
	for i, sn := range snakes {
		v.Bodies[i] = append([]types.Cell(nil), sn.Body...)
	}
	for _, a := range s.apples.Apples() {
		v.Apples = append(v.Apples, a.Position)
	}
	return v
}

// Summary reports the session as it stands. Once terminal it is final.
func (s *Session) Summary() Summary {
	scores := s.snakes.Scores()
	reason, culprit := s.state.Reason()
	sum := Summary{
		SessionID:   s.ID,
		Scores:      scores,
		ApplesEaten: append([]int(nil), s.eaten...),
		Ticks:       s.state.Ticks(),
		Reason:      reason,
		Culprit:     culprit,
		Duration:    s.state.Duration(),
	}
	if len(scores) > 0 {
		sum.Score = scores[0]
	}
	return sum
}

func (s *Session) frame() Frame {
	f := Frame{
		Tick:    s.state.Ticks(),
		Sprites: make([]Sprite, 0, s.apples.Count()+s.snakes.Cells()),
	}
	for _, a := range s.apples.Apples() {
		f.Sprites = append(f.Sprites, Sprite{Cell: a.Position, Kind: types.KindApple, Owner: -1})
	}
	for i, sn := range s.snakes.GetSnakes() {
		for _, c := range sn.Body {
			f.Sprites = append(f.Sprites, Sprite{Cell: c, Kind: types.KindSnake, Owner: i})
		}
	}
	return f
}

func (s *Session) newIndex() *entity.Occupancy {
	return entity.NewOccupancy(s.snakes.Cells() + s.cfg.Apples.Count)
}

// Interval is the tick period for frontends that call Tick themselves.
func (s *Session) Interval() time.Duration {
	return s.cfg.Derived.TickInterval
}
