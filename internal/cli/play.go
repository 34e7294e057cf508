package cli

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/plus3/blockfall/game"
	"github.com/plus3/blockfall/internal/config"
	"github.com/plus3/blockfall/internal/highscore"
	"github.com/plus3/blockfall/internal/ui/term"
	"github.com/plus3/blockfall/internal/ui/window"
)

const (
	uiWindow = "window"
	uiTerm   = "term"
)

// PlayOptions holds flags specific to the play command.
type PlayOptions struct {
	UI string
}

// NewPlayCommand creates the play command.
func NewPlayCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &PlayOptions{}

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Start a game",
		Long: `Start a game in a desktop window or in the terminal.

Window keys: arrows or WASD move and rotate, space drops, P pauses,
R restarts, Q or Escape quits. With --debug an overlay shows system
timings and the game state.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		Annotations:  map[string]string{interactiveAnnotation: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlay(cmd, rootOpts, opts)
		},
	}

	cmd.Flags().StringVar(&opts.UI, "ui", uiWindow, "frontend to play in (window|term)")
	cmd.Flags().Uint64("seed", 0, "piece randomizer seed (0 picks one)")
	cmd.Flags().String("randomizer", config.RandomizerUniform, "piece randomizer (uniform|bag)")
	cmd.Flags().Bool("debug", false, "show the debug overlay (window only)")
	cmd.Flags().Int("cell-size", 30, "cell size in pixels (window only)")
	addScoresFlags(cmd)

	return cmd
}

func addScoresFlags(cmd *cobra.Command) {
	cmd.Flags().String("scores-backend", highscore.BackendFile, "where scores are kept (file|sqlite)")
	cmd.Flags().String("scores-path", "", "score file or database path")
}

func runPlay(cmd *cobra.Command, rootOpts *RootOptions, opts *PlayOptions) error {
	cfg, logger := rootOpts.Config, rootOpts.Logger

	if opts.UI != uiWindow && opts.UI != uiTerm {
		return fmt.Errorf("unknown ui %q (want %s or %s)", opts.UI, uiWindow, uiTerm)
	}

	store, err := highscore.Open(cfg.Scores.Backend, cfg.Scores.Path, logger)
	if err != nil {
		return err
	}
	defer store.Close()

	logger.Info().
		Str("ui", opts.UI).
		Str("randomizer", cfg.Randomizer).
		Str("scores", cfg.Scores.Path).
		Msg("starting game")

	switch opts.UI {
	case uiTerm:
		model := term.New(logger)
		g, err := newGame(cfg, store, model.HandleEvent, logger)
		if err != nil {
			return err
		}
		return term.Run(cmd.Context(), model, g)
	default:
		app := window.New(window.Options{
			CellSize: cfg.Window.CellSize,
			Debug:    cfg.Window.Debug,
			Logger:   logger,
		})
		g, err := newGame(cfg, store, app.HandleEvent, logger)
		if err != nil {
			return err
		}
		return app.Run(g, cfg.Window.Debug)
	}
}

func newGame(cfg *config.Config, keeper game.ScoreKeeper, listener game.Listener, logger zerolog.Logger) (*game.Game, error) {
	return game.New(
		game.WithRules(cfg.Rules),
		game.WithSource(cfg.Source()),
		game.WithScoreKeeper(keeper),
		game.WithListener(listener),
		game.WithLogger(logger.With().Str("component", "game").Logger()),
	)
}
