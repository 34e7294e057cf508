// Command blockfall-soak plays games with a random command stream as fast as
// the engine allows and reports throughput and per-system timings.
package main

import (
	"context"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"runtime"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"

	"github.com/plus3/blockfall/game"
	"github.com/plus3/blockfall/internal/highscore"
	"github.com/plus3/blockfall/piece"
)

// moves are the commands the random player picks from. Pause is left out so
// every tick does work.
var moves = []game.Command{
	game.CommandMoveLeft,
	game.CommandMoveRight,
	game.CommandRotate,
	game.CommandSoftDrop,
	game.CommandHardDrop,
}

type options struct {
	duration       time.Duration
	seed           uint64
	rate           float64
	dt             float64
	scores         string
	gcPauseMetrics bool
}

func main() {
	var opts options
	pflag.DurationVar(&opts.duration, "duration", 10*time.Second, "The total duration the soak should run for.")
	pflag.Uint64Var(&opts.seed, "seed", 1, "Seed for pieces and commands.")
	pflag.Float64Var(&opts.rate, "rate", 0.3, "Chance of a command on each tick.")
	pflag.Float64Var(&opts.dt, "dt", 1.0/60, "Simulated seconds per tick.")
	pflag.StringVar(&opts.scores, "scores", "", "Record every finished game in this SQLite database.")
	pflag.BoolVar(&opts.gcPauseMetrics, "gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	pflag.Parse()

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).With().Timestamp().Logger()
	if err := run(opts, os.Stdout, logger); err != nil {
		logger.Error().Err(err).Msg("soak failed")
		os.Exit(1)
	}
}

// run plays until opts.duration elapses and writes the report to out.
func run(opts options, out io.Writer, logger zerolog.Logger) error {
	logger.Info().Dur("duration", opts.duration).Uint64("seed", opts.seed).Msg("starting soak")

	report := &Report{
		Duration: opts.duration,
		Seed:     opts.seed,
		Rate:     opts.rate,
		DT:       opts.dt,

		GCPauseMetrics: opts.gcPauseMetrics,
		Events:         make(map[string]int),
	}

	gameOpts := []game.Option{
		game.WithSource(piece.NewBag(opts.seed)),
		game.WithLogger(logger.Level(zerolog.WarnLevel)),
		game.WithListener(report.HandleEvent),
	}
	if opts.scores != "" {
		store, err := highscore.OpenSQLite(opts.scores, logger)
		if err != nil {
			return fmt.Errorf("open scores: %w", err)
		}
		defer store.Close()
		gameOpts = append(gameOpts, game.WithScoreKeeper(store))
	}

	g, err := game.New(gameOpts...)
	if err != nil {
		return fmt.Errorf("create game: %w", err)
	}
	rng := rand.New(rand.NewPCG(opts.seed, opts.seed^0x9e3779b97f4a7c15))

	runtime.ReadMemStats(&report.MemStatsStart)

	ctx, cancel := context.WithTimeout(context.Background(), opts.duration)
	defer cancel()

	startTime := time.Now()

Loop:
	for {
		select {
		case <-ctx.Done():
			break Loop
		default:
			if g.Over() {
				g.Push(game.CommandRestart)
			} else if rng.Float64() < opts.rate {
				g.Push(moves[rng.IntN(len(moves))])
			}

			tickStart := time.Now()
			g.Tick(opts.dt)
			report.TickTime.Samples = append(report.TickTime.Samples, time.Since(tickStart))
		}
	}

	report.TotalTime = time.Since(startTime)
	report.TickTime.Finalize()
	report.Scheduler = g.Stats()
	runtime.ReadMemStats(&report.MemStatsEnd)

	logger.Info().Int("games", report.Games).Msg("soak finished")

	if err := report.Generate(out); err != nil {
		return fmt.Errorf("generate report: %w", err)
	}
	return nil
}
