// Package cli wires the blockfall commands together.
package cli

import (
	"io"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/plus3/blockfall/internal/config"
	"github.com/plus3/blockfall/internal/logging"
)

// interactiveAnnotation marks commands whose display owns the terminal, so
// their logs go to a file.
const interactiveAnnotation = "blockfall/interactive"

// flagKeys binds config keys to the flags that may override them. A command
// only binds the flags it defines.
var flagKeys = map[string]string{
	"log.level":        "log-level",
	"log.file":         "log-file",
	"seed":             "seed",
	"randomizer":       "randomizer",
	"scores.backend":   "scores-backend",
	"scores.path":      "scores-path",
	"window.cell_size": "cell-size",
	"window.debug":     "debug",
}

// RootOptions holds global flags and what PersistentPreRunE builds from them.
type RootOptions struct {
	ConfigFile string
	LogLevel   string
	LogFile    string

	Config *config.Config
	Logger zerolog.Logger

	closeLog func() error
}

// NewRootCommand creates the root command for the blockfall CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{Logger: zerolog.Nop()}

	cmd := &cobra.Command{
		Use:   "blockfall",
		Short: "A falling-block puzzle game",
		Long: `blockfall drops pieces into a well; complete rows to clear them.

Settings are read from config.yaml in ` + config.Dir() + `,
then BLOCKFALL_* environment variables, then flags.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup(cmd)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if opts.closeLog != nil {
				return opts.closeLog()
			}
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&opts.ConfigFile, "config", "", "config file (default "+filepath.Join(config.Dir(), "config.yaml")+")")
	cmd.PersistentFlags().StringVar(&opts.LogLevel, "log-level", "info", "log level (trace|debug|info|warn|error)")
	cmd.PersistentFlags().StringVar(&opts.LogFile, "log-file", "", "write JSON logs to this file")

	cmd.AddCommand(NewPlayCommand(opts))
	cmd.AddCommand(NewScoresCommand(opts))
	cmd.AddCommand(NewConfigCommand(opts))

	return cmd
}

func (opts *RootOptions) setup(cmd *cobra.Command) error {
	v := viper.New()
	for key, name := range flagKeys {
		if f := cmd.Flags().Lookup(name); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return err
			}
		}
	}

	cfg, err := config.Load(v, opts.ConfigFile)
	if err != nil {
		return err
	}

	logFile := cfg.Log.File
	if logFile == "" && cmd.Annotations[interactiveAnnotation] != "" {
		logFile = filepath.Join(config.Dir(), "blockfall.log")
	}
	logger, closeLog, err := logging.New(logging.Options{
		Level:   cfg.Log.Level,
		File:    logFile,
		Console: cmd.ErrOrStderr(),
	})
	if err != nil {
		return err
	}

	opts.Config = cfg
	opts.Logger = logger
	opts.closeLog = closeLog
	return nil
}

// Execute runs the root command with the given arguments and output streams.
func Execute(args []string, stdout, stderr io.Writer) error {
	cmd := NewRootCommand()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	return cmd.Execute()
}
