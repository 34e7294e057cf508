package game

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/plus3/blockfall/board"
	"github.com/plus3/blockfall/piece"
)

type options struct {
	rules    Rules
	source   piece.Source
	board    *board.Board
	keeper   ScoreKeeper
	listener Listener
	logger   zerolog.Logger
}

// Option configures a Game.
type Option func(*options)

// WithRules replaces DefaultRules.
func WithRules(rules Rules) Option {
	return func(o *options) { o.rules = rules }
}

// WithSource sets where pieces come from. The default is a uniform source
// seeded from the current time.
func WithSource(source piece.Source) Option {
	return func(o *options) { o.source = source }
}

// WithBoard starts the game on a pre-filled board. Its size must match the
// rules.
func WithBoard(b *board.Board) Option {
	return func(o *options) { o.board = b }
}

// WithScoreKeeper sets the high score store. If keeper also implements
// ResultRecorder every finished game is recorded.
func WithScoreKeeper(keeper ScoreKeeper) Option {
	return func(o *options) { o.keeper = keeper }
}

// WithListener receives the events of every tick.
func WithListener(listener Listener) Option {
	return func(o *options) { o.listener = listener }
}

func WithLogger(logger zerolog.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// Game is a single falling-block game. It is driven one tick at a time and is
// not safe for concurrent use.
type Game struct {
	state     *State
	commands  *Commands
	scheduler *Scheduler
	logger    zerolog.Logger
}

// New validates the options and returns a game ready for its first tick.
func New(opts ...Option) (*Game, error) {
	o := options{
		rules:  DefaultRules(),
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	if err := o.rules.Validate(); err != nil {
		return nil, err
	}
	if o.board != nil && (o.board.Width() != o.rules.Width || o.board.Height() != o.rules.Height) {
		return nil, fmt.Errorf("%w: board is %dx%d, rules want %dx%d",
			ErrInvalidRules, o.board.Width(), o.board.Height(), o.rules.Width, o.rules.Height)
	}
	if o.source == nil {
		o.source = piece.NewUniform(uint64(time.Now().UnixNano()))
	}
	if o.keeper == nil {
		o.keeper = noKeeper{}
	}

	state := newState(o.rules, o.board)
	state.HighScore = o.keeper.LoadHighScore()

	commands := newCommands()
	scheduler := NewScheduler(state, commands)
	scheduler.OnEvent(o.listener)

	scheduler.Register(&SpawnSystem{Source: o.source, Keeper: o.keeper, Logger: o.logger})
	scheduler.Register(&InputSystem{Logger: o.logger})
	scheduler.Register(&GravitySystem{})
	scheduler.Register(&LockSystem{Logger: o.logger})

	o.logger.Debug().
		Int("width", o.rules.Width).
		Int("height", o.rules.Height).
		Int("high_score", state.HighScore).
		Msg("new game")

	return &Game{
		state:     state,
		commands:  commands,
		scheduler: scheduler,
		logger:    o.logger,
	}, nil
}

// Register appends a system that runs after the built-in ones on every tick.
func (g *Game) Register(system System) {
	g.scheduler.Register(system)
}

// Push queues player commands for the next tick.
func (g *Game) Push(cmds ...Command) {
	g.commands.Push(cmds...)
}

// Tick advances the game by dt seconds.
func (g *Game) Tick(dt float64) {
	g.scheduler.Once(dt)
}

// Advance ticks once with the time elapsed on clock.
func (g *Game) Advance(clock Clock) {
	g.scheduler.Once(clock.Elapsed())
}

// Run ticks every interval until ctx is cancelled. A non-positive interval
// uses DefaultInterval.
func (g *Game) Run(ctx context.Context, interval time.Duration, clock Clock) {
	g.scheduler.Run(ctx, interval, clock)
}

// State exposes the live state. Callers must not hold on to it across ticks
// from another goroutine.
func (g *Game) State() *State {
	return g.state
}

func (g *Game) Over() bool {
	return g.state.Over
}

func (g *Game) Paused() bool {
	return g.state.Paused
}

// Stats returns the scheduler's per-system timings.
func (g *Game) Stats() *SchedulerStats {
	return g.scheduler.GetStats()
}
